package lifecycle

import (
	"context"
	"fmt"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
)

const msgNotFound = "Science plan not found."

// Test runs the pre-submission checks on a CREATED plan. With
// markAsTested the plan moves to TESTED; without it the checks run as a
// dry run and the plan stays CREATED. Drafts may be dry-run tested but
// never leave CREATED.
func (e *Engine) Test(ctx context.Context, planNo int, markAsTested bool) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor := "tester"
	p, draft := e.find(planNo)
	if p == nil {
		return e.notFound(ctx, planNo, types.OpTest, actor)
	}

	if p.Status != types.StatusCreated {
		_, reason, _ := types.Transition(p.Status, types.OpTest)
		return e.reject(ctx, p, types.OpTest, reason, actor,
			fmt.Sprintf("TEST FAILED: Science plan must be in CREATED status. Current status: %s", p.Status))
	}

	if failure := testFailure(p); failure != "" {
		return e.reject(ctx, p, types.OpTest, types.ReasonTestFailed, actor, "TEST FAILED: "+failure)
	}

	if !markAsTested {
		msg := fmt.Sprintf("Science plan #%d passed the test. Status remains CREATED.", p.PlanNo)
		e.logger.Info("science plan passed dry-run test", "plan_no", p.PlanNo)
		e.record(ctx, events.New(events.EventTypePlanTested, p.PlanNo, actor, events.SeverityInfo, msg).
			WithData("committed", false))
		return types.Succeeded(p.PlanNo, p.Status, msg)
	}

	if draft {
		return e.reject(ctx, p, types.OpTest, types.ReasonDraftFrozen, actor,
			fmt.Sprintf("Science plan #%d passed the test but is a draft and remains CREATED. Create a corrected plan to continue.", p.PlanNo))
	}

	return e.advance(ctx, p, types.OpTest, actor,
		fmt.Sprintf("Science plan #%d passed the test. Status updated to TESTED.", p.PlanNo))
}

// testFailure returns the first failed test check, or "".
func testFailure(p *types.SciencePlan) string {
	switch {
	case !(p.Funding > 0):
		return "Invalid funding amount."
	case isBlank(p.Objective):
		return "Missing objective."
	case isBlank(p.Target):
		return "Missing target."
	}
	return ""
}

// Submit moves a TESTED plan to SUBMITTED for observer validation.
func (e *Engine) Submit(ctx context.Context, planNo int, astronomer types.Astronomer) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor := astronomerActor(astronomer)
	p, draft := e.find(planNo)
	if p == nil {
		return e.notFound(ctx, planNo, types.OpSubmit, actor)
	}

	_, reason, ok := types.Transition(p.Status, types.OpSubmit)
	if !ok {
		return e.reject(ctx, p, types.OpSubmit, reason, actor, submitRejection(reason, p.Status))
	}
	if draft {
		return e.reject(ctx, p, types.OpSubmit, types.ReasonDraftFrozen, actor, draftFrozenMessage(p.PlanNo))
	}
	return e.advance(ctx, p, types.OpSubmit, actor,
		fmt.Sprintf("Science plan #%d submitted successfully. It now awaits validation by a Science Observer.", p.PlanNo))
}

func submitRejection(reason types.ReasonCode, status types.Status) string {
	switch reason {
	case types.ReasonNotTested:
		return "This science plan is created but not tested. Please test it before submission."
	case types.ReasonAlreadySubmitted:
		return "This science plan has already been submitted or executed."
	case types.ReasonTerminalState:
		return fmt.Sprintf("This science plan cannot be submitted because it is %s.", status)
	}
	return fmt.Sprintf("This science plan must be tested before submission. Current status: %s", status)
}

// Validate accepts a SUBMITTED plan on behalf of a science observer. It
// returns a copy of the updated plan, or nil when the plan is missing or
// not SUBMITTED.
func (e *Engine) Validate(ctx context.Context, planNo int, observer types.ScienceObserver) (*types.SciencePlan, types.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.apply(ctx, planNo, types.OpValidate, observerActor(observer), "validated")
	if !res.OK {
		return nil, res
	}
	p, _ := e.find(planNo)
	return p.Clone(), res
}

// Invalidate rejects a SUBMITTED plan on behalf of a science observer.
// The plan moves to the terminal INVALIDATED status; nothing else changes.
func (e *Engine) Invalidate(ctx context.Context, planNo int, observer types.ScienceObserver) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(ctx, planNo, types.OpInvalidate, observerActor(observer), "invalidated")
}

// Complete marks a RUNNING plan as COMPLETE.
func (e *Engine) Complete(ctx context.Context, planNo int, observer types.ScienceObserver) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(ctx, planNo, types.OpComplete, observerActor(observer), "completed")
}

// Cancel withdraws a plan that has not started running.
func (e *Engine) Cancel(ctx context.Context, planNo int, actor string) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(ctx, planNo, types.OpCancel, actor, "cancelled")
}

// apply runs a status-only operation through the transition table.
// Caller holds mu.
func (e *Engine) apply(ctx context.Context, planNo int, op types.Operation, actor, verb string) types.Result {
	p, draft := e.find(planNo)
	if p == nil {
		return e.notFound(ctx, planNo, op, actor)
	}
	_, reason, ok := types.Transition(p.Status, op)
	if !ok {
		return e.reject(ctx, p, op, reason, actor,
			fmt.Sprintf("Science plan #%d cannot be %s. Current status: %s", p.PlanNo, verb, p.Status))
	}
	if draft {
		return e.reject(ctx, p, op, types.ReasonDraftFrozen, actor, draftFrozenMessage(p.PlanNo))
	}
	return e.advance(ctx, p, op, actor, fmt.Sprintf("Science plan #%d %s.", p.PlanNo, verb))
}

// advance applies an allowed transition to a stored plan. Caller holds mu
// and has already checked the transition table.
func (e *Engine) advance(ctx context.Context, p *types.SciencePlan, op types.Operation, actor, msg string) types.Result {
	from := p.Status
	to, _, _ := types.Transition(from, op)
	p.Status = to
	e.logger.Info("science plan status changed",
		"plan_no", p.PlanNo, "operation", op, "from", from, "to", to, "actor", actor)
	e.record(ctx, events.NewStatusChangedEvent(p.PlanNo, actor, string(op), string(from), string(to), msg))
	return types.Succeeded(p.PlanNo, to, msg)
}

// reject reports a refused operation without mutating anything.
func (e *Engine) reject(ctx context.Context, p *types.SciencePlan, op types.Operation, reason types.ReasonCode, actor, msg string) types.Result {
	e.logger.Warn("science plan operation rejected",
		"plan_no", p.PlanNo, "operation", op, "status", p.Status, "reason", reason, "actor", actor)
	e.record(ctx, events.NewRejectedEvent(p.PlanNo, actor, string(op), string(reason), msg).
		WithData("status", string(p.Status)))
	return types.Failed(reason, p.PlanNo, p.Status, msg)
}

func (e *Engine) notFound(ctx context.Context, planNo int, op types.Operation, actor string) types.Result {
	e.logger.Warn("science plan not found", "plan_no", planNo, "operation", op, "actor", actor)
	e.record(ctx, events.NewRejectedEvent(planNo, actor, string(op), string(types.ReasonNotFound), msgNotFound))
	return types.Failed(types.ReasonNotFound, planNo, "", msgNotFound)
}

func draftFrozenMessage(planNo int) string {
	return fmt.Sprintf("Science plan #%d is a draft and remains CREATED. Create a corrected plan to continue.", planNo)
}
