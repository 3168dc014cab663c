package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/rules"
	"github.com/gemini-ocs/ocs/internal/types"
)

// programGate is one independent check on observing program parameters.
type programGate func(site string, params types.ProgramParams) (types.ReasonCode, string)

var programGates = []programGate{
	checkOptics,
	checkSecondaryRMS,
	checkFoldMirror,
	checkModuleContent,
}

// CreateObservingProgram converts a VALIDATED plan into an observing
// program. On success the program is registered and the plan moves to
// RUNNING. On failure nothing changes and the returned program is nil.
func (e *Engine) CreateObservingProgram(ctx context.Context, planNo int, params types.ProgramParams, observer types.ScienceObserver) (*types.ObservingProgram, types.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor := observerActor(observer)
	p, draft := e.find(planNo)
	if p == nil {
		return nil, e.notFound(ctx, planNo, types.OpStartProgram, actor)
	}

	if _, reason, ok := types.Transition(p.Status, types.OpStartProgram); !ok {
		return nil, e.reject(ctx, p, types.OpStartProgram, reason, actor,
			fmt.Sprintf("Science plan must be VALIDATED. Current status: %s", p.Status))
	}
	if draft {
		return nil, e.reject(ctx, p, types.OpStartProgram, types.ReasonDraftFrozen, actor, draftFrozenMessage(p.PlanNo))
	}

	for _, gate := range programGates {
		if reason, msg := gate(p.Telescope, params); reason != types.ReasonOK {
			e.logger.Warn("observing program rejected",
				"plan_no", p.PlanNo, "reason", reason, "diagnostic", msg, "actor", actor)
			e.record(ctx, events.New(events.EventTypeProgramRejected, p.PlanNo, actor, events.SeverityWarning, msg).
				WithData("reason", string(reason)))
			return nil, types.Failed(reason, p.PlanNo, p.Status, msg)
		}
	}

	configs := types.NewObservingProgramConfigs(params)
	program := &types.ObservingProgram{
		ID:               e.nextProgramID,
		PlanNo:           p.PlanNo,
		Observer:         observer,
		Configs:          configs,
		Site:             p.Telescope,
		OpticsPrimary:    configs.OpticsPrimary(),
		FStop:            configs.FStop(),
		SecondaryRMS:     configs.SecondaryRMS(),
		FoldMirrorDegree: configs.FoldMirrorDegree(),
		ModuleContent:    configs.ModuleContent(),
	}
	e.nextProgramID++
	e.programs = append(e.programs, program)

	msg := fmt.Sprintf("ObservingProgram created successfully with ID: %d", program.ID)
	e.record(ctx, events.New(events.EventTypeProgramCreated, p.PlanNo, actor, events.SeverityInfo, msg).
		WithData("program_id", program.ID).
		WithData("optics_primary", program.OpticsPrimary))
	res := e.advance(ctx, p, types.OpStartProgram, actor, msg)

	cp := *program
	return &cp, res
}

func checkOptics(_ string, params types.ProgramParams) (types.ReasonCode, string) {
	r, ok := rules.FStopRange(params.OpticsPrimary)
	if !ok {
		return types.ReasonInvalidOptics, fmt.Sprintf("Optics primary must be GNZ or GSZ. Got: %s", params.OpticsPrimary)
	}
	if !r.Contains(params.FStop) {
		return types.ReasonInvalidFStop, fmt.Sprintf("F-stop for %s must be in range %.1f-%.1f. Got: %g",
			strings.ToUpper(strings.TrimSpace(params.OpticsPrimary)), r.Min, r.Max, params.FStop)
	}
	return types.ReasonOK, ""
}

func checkSecondaryRMS(site string, params types.ProgramParams) (types.ReasonCode, string) {
	r, ok := rules.SecondaryRMSRange(site)
	if !ok {
		return types.ReasonOK, ""
	}
	if !r.Contains(params.SecondaryRMS) {
		return types.ReasonInvalidRMS, fmt.Sprintf("Optics secondary RMS for %s must be %.1f-%.1fnm. Got: %g",
			strings.TrimSpace(site), r.Min, r.Max, params.SecondaryRMS)
	}
	return types.ReasonOK, ""
}

func checkFoldMirror(_ string, params types.ProgramParams) (types.ReasonCode, string) {
	if !rules.FoldMirrorDegree.Contains(params.FoldMirrorDegree) {
		return types.ReasonInvalidFoldMirror, fmt.Sprintf("Fold mirror degree must be %.1f-%.1f. Got: %g",
			rules.FoldMirrorDegree.Min, rules.FoldMirrorDegree.Max, params.FoldMirrorDegree)
	}
	return types.ReasonOK, ""
}

func checkModuleContent(_ string, params types.ProgramParams) (types.ReasonCode, string) {
	if !rules.ValidModuleContent(params.ModuleContent) {
		return types.ReasonInvalidModuleContent, fmt.Sprintf("Module content must be %d-%d. Got: %d",
			rules.ModuleContentMin, rules.ModuleContentMax, params.ModuleContent)
	}
	return types.ReasonOK, ""
}

// SaveObservingProgram registers a program built outside the factory. A
// program whose ID is already registered is left as is and reported as
// saved. Programs referencing an unknown plan are refused.
func (e *Engine) SaveObservingProgram(ctx context.Context, program *types.ObservingProgram) bool {
	if program == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := program.Validate(); err != nil {
		e.logger.Warn("refusing observing program", "error", err)
		return false
	}
	for _, existing := range e.programs {
		if existing.ID == program.ID {
			return true
		}
	}
	if p, _ := e.find(program.PlanNo); p == nil {
		e.logger.Warn("refusing observing program for unknown plan", "program_id", program.ID, "plan_no", program.PlanNo)
		return false
	}

	cp := *program
	e.programs = append(e.programs, &cp)
	if program.ID >= e.nextProgramID {
		e.nextProgramID = program.ID + 1
	}
	e.logger.Info("observing program saved", "program_id", program.ID, "plan_no", program.PlanNo)
	e.record(ctx, events.New(events.EventTypeProgramCreated, program.PlanNo, observerActor(program.Observer), events.SeverityInfo,
		fmt.Sprintf("ObservingProgram %d saved.", program.ID)).WithData("program_id", program.ID))
	return true
}

// ObservingProgramForPlan returns a copy of the first program registered
// for planNo.
func (e *Engine) ObservingProgramForPlan(planNo int) (*types.ObservingProgram, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, prog := range e.programs {
		if prog.PlanNo == planNo {
			cp := *prog
			return &cp, true
		}
	}
	return nil, false
}

// ObservingPrograms returns copies of every registered program in
// registration order.
func (e *Engine) ObservingPrograms() []*types.ObservingProgram {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*types.ObservingProgram, len(e.programs))
	for i, prog := range e.programs {
		cp := *prog
		out[i] = &cp
	}
	return out
}
