package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/rules"
	"github.com/gemini-ocs/ocs/internal/types"
	"golang.org/x/text/cases"
)

const (
	msgUnavailable        = "Unable to save the science plan due to network or system error. Please try again later."
	msgMissingFields      = "Please complete all required fields before saving the science plan."
	msgDateOrder          = "Start date cannot be after the end date."
	msgInvalidFunding     = "Funding amount must be a positive numerical value."
	msgDuplicateName      = "A science plan with this name already exists. Please use a different plan name."
	msgUnknownTarget      = "Selected target not found in the star catalogue. Please choose a valid target."
	msgScheduleConflict   = "Selected date range conflicts with another scheduled plan for this telescope."
	msgOutOfRange         = "Invalid input value. Please enter valid decimal numbers within the allowed range."
	msgModeFields         = "Please complete all required fields for the selected data processing mode."
	msgLegacyIncompatible = "Input data is not compatible with the legacy OCS system."
)

// check is one stage of the create pipeline. It returns ReasonOK when the
// plan passes.
type check func(e *Engine, p *types.SciencePlan) (types.ReasonCode, string)

// createPipeline runs in order; the first failing stage decides the outcome.
var createPipeline = []check{
	checkRequiredFields,
	checkDateOrder,
	checkFunding,
	checkUniqueName,
	checkTarget,
	checkScheduleConflict,
	checkImagingRanges,
	checkColorModeFields,
	checkContrastPresent,
	checkLegacyCompatibility,
}

// Create validates plan and stores it in the complete collection, or in
// the draft collection when any check fails. A plan number is consumed
// either way. plan is updated in place with its number, creator and
// CREATED status; the engine keeps its own copy.
func (e *Engine) Create(ctx context.Context, plan *types.SciencePlan, creator types.Astronomer) types.Result {
	if plan == nil {
		return types.Failed(types.ReasonMissingFields, 0, "", msgMissingFields)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	actor := astronomerActor(creator)
	if e.offline {
		e.logger.Warn("science plan refused while offline", "name", plan.Name, "actor", actor)
		return types.Failed(types.ReasonUnavailable, 0, "", msgUnavailable)
	}

	plan.PlanNo = e.nextPlanNo
	e.nextPlanNo++
	c := creator
	plan.Creator = &c
	plan.Status = types.StatusCreated

	reason, detail := types.ReasonOK, ""
	for _, stage := range createPipeline {
		if reason, detail = stage(e, plan); reason != types.ReasonOK {
			break
		}
	}

	stored := plan.Clone()
	if reason != types.ReasonOK {
		e.drafts = append(e.drafts, stored)
		msg := fmt.Sprintf("%s Draft saved as #%d", detail, plan.PlanNo)
		e.logger.Warn("science plan saved as draft",
			"plan_no", plan.PlanNo, "name", plan.Name, "reason", reason, "actor", actor)
		e.record(ctx, events.New(events.EventTypePlanDrafted, plan.PlanNo, actor, events.SeverityWarning, msg).
			WithData("reason", string(reason)))
		return types.Failed(reason, plan.PlanNo, types.StatusCreated, msg)
	}

	e.plans = append(e.plans, stored)
	msg := fmt.Sprintf("Science plan #%d '%s' created successfully.", plan.PlanNo, plan.Name)
	e.logger.Info("science plan created",
		"plan_no", plan.PlanNo, "name", plan.Name, "telescope", plan.Telescope, "target", plan.Target, "actor", actor)
	e.record(ctx, events.New(events.EventTypePlanCreated, plan.PlanNo, actor, events.SeverityInfo, msg).
		WithData("telescope", plan.Telescope).
		WithData("target", plan.Target))
	return types.Succeeded(plan.PlanNo, types.StatusCreated, msg)
}

func checkRequiredFields(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if len(p.MissingRequiredFields()) > 0 {
		return types.ReasonMissingFields, msgMissingFields
	}
	return types.ReasonOK, ""
}

func checkDateOrder(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if p.StartDate.After(p.EndDate) {
		return types.ReasonDateOrder, msgDateOrder
	}
	return types.ReasonOK, ""
}

func checkFunding(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	// Written as !(x > 0) so NaN is rejected too.
	if !(p.Funding > 0) {
		return types.ReasonInvalidFunding, msgInvalidFunding
	}
	return types.ReasonOK, ""
}

func checkUniqueName(e *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	key := foldName(p.Name)
	for _, existing := range e.plans {
		if foldName(existing.Name) == key {
			return types.ReasonDuplicateName, msgDuplicateName
		}
	}
	return types.ReasonOK, ""
}

func checkTarget(e *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if !e.catalog.Contains(p.Target) {
		return types.ReasonUnknownTarget, msgUnknownTarget
	}
	return types.ReasonOK, ""
}

func checkScheduleConflict(e *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	for _, existing := range e.plans {
		if !sameTelescope(existing.Telescope, p.Telescope) {
			continue
		}
		if rules.RangesConflict(existing.StartDate, existing.EndDate, p.StartDate, p.EndDate) {
			return types.ReasonScheduleConflict, msgScheduleConflict
		}
	}
	return types.ReasonOK, ""
}

func checkImagingRanges(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	violations := rules.RangeViolations(rules.Imaging{
		Contrast:   p.Contrast,
		Brightness: p.Brightness,
		Saturation: p.Saturation,
		Exposure:   p.Exposure,
	})
	if len(violations) > 0 {
		return types.ReasonOutOfRange, msgOutOfRange + " " + strings.Join(violations, ". ") + "."
	}
	return types.ReasonOK, ""
}

func checkColorModeFields(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if p.ColorType == types.ColorColor && (p.Brightness == nil || p.Saturation == nil || p.Exposure == nil) {
		return types.ReasonModeFieldsMissing, msgModeFields
	}
	return types.ReasonOK, ""
}

func checkContrastPresent(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if p.Contrast == nil {
		return types.ReasonContrastMissing, msgModeFields
	}
	return types.ReasonOK, ""
}

func checkLegacyCompatibility(_ *Engine, p *types.SciencePlan) (types.ReasonCode, string) {
	if !rules.LegacyCompatible(string(p.FileType), string(p.FileQuality)) {
		return types.ReasonLegacyIncompatible, msgLegacyIncompatible
	}
	return types.ReasonOK, ""
}

// foldName normalizes plan names for case-insensitive uniqueness.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func sameTelescope(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
