package lifecycle

import (
	"context"
	"fmt"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
)

// AttachAstronomicalData appends a collected result to a running or
// completed plan. A zero CollectedAt is stamped with the engine clock.
func (e *Engine) AttachAstronomicalData(ctx context.Context, planNo int, data types.AstronomicalData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid astronomical data: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, _ := e.find(planNo)
	if p == nil {
		return fmt.Errorf("plan %d: %w", planNo, ErrPlanNotFound)
	}
	if p.Status != types.StatusRunning && p.Status != types.StatusComplete {
		return fmt.Errorf("plan %d is %s: %w", planNo, p.Status, ErrNotCollecting)
	}

	if data.CollectedAt.IsZero() {
		data.CollectedAt = e.now()
	}
	p.AstronomicalData = append(p.AstronomicalData, data)
	e.logger.Info("astronomical data attached", "plan_no", planNo, "file", data.FileName)
	e.record(ctx, events.New(events.EventTypeDataAttached, planNo, "", events.SeverityInfo,
		fmt.Sprintf("Attached %s to science plan #%d.", data.FileName, planNo)).
		WithData("file_name", data.FileName))
	return nil
}

// AstronomicalData returns a copy of the data attached to a plan.
func (e *Engine) AstronomicalData(planNo int) ([]types.AstronomicalData, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, _ := e.find(planNo)
	if p == nil {
		return nil, fmt.Errorf("plan %d: %w", planNo, ErrPlanNotFound)
	}
	return append([]types.AstronomicalData(nil), p.AstronomicalData...), nil
}
