// Package lifecycle runs the science plan workflow: creation with its
// ordered validation pipeline, test/submit/validate transitions, conversion
// of validated plans into observing programs, and the facility schedule.
//
// An Engine owns all of its state. Every exported method holds the engine
// lock for its full read-decide-write sequence, so concurrent callers never
// interleave on the same plan and conflict detection sees every earlier
// insert on the same telescope.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gemini-ocs/ocs/internal/catalog"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
)

var (
	// ErrPlanNotFound is returned when no plan has the requested number.
	ErrPlanNotFound = errors.New("science plan not found")
	// ErrNotCollecting is returned when data is attached to a plan that is not running or complete.
	ErrNotCollecting = errors.New("science plan is not collecting data")
)

// Config holds engine dependencies. Nil fields get defaults.
type Config struct {
	Logger   *slog.Logger
	Recorder events.Recorder
	Catalog  *catalog.Catalog
	Clock    func() time.Time
}

// Engine is the science plan lifecycle state machine.
type Engine struct {
	mu sync.Mutex

	logger   *slog.Logger
	recorder events.Recorder
	catalog  *catalog.Catalog
	now      func() time.Time

	plans      []*types.SciencePlan // complete collection, insertion order
	drafts     []*types.SciencePlan // draft collection, insertion order
	nextPlanNo int

	programs      []*types.ObservingProgram
	nextProgramID int

	unavailable []time.Time
	offline     bool
}

// New creates an engine with empty collections.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	e := &Engine{
		logger:        cfg.Logger,
		recorder:      cfg.Recorder,
		catalog:       cfg.Catalog,
		now:           cfg.Clock,
		nextPlanNo:    1,
		nextProgramID: 1,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.recorder == nil {
		e.recorder = events.Discard{}
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.catalog.Len() == 0 {
		return nil, fmt.Errorf("catalog must contain at least one target")
	}
	return e, nil
}

// SetOffline simulates a facility outage. While offline, Create refuses
// plans without consuming a plan number.
func (e *Engine) SetOffline(offline bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.offline = offline
}

// Catalog returns the catalogue used for target checks.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Plan returns a copy of the plan with the given number, searching the
// complete collection before drafts.
func (e *Engine) Plan(planNo int) (*types.SciencePlan, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, _ := e.find(planNo)
	if p == nil {
		return nil, false
	}
	return p.Clone(), true
}

// IsDraft reports whether planNo is held in the draft collection.
func (e *Engine) IsDraft(planNo int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, draft := e.find(planNo)
	return p != nil && draft
}

// Plans returns copies of the complete plans in creation order.
func (e *Engine) Plans() []*types.SciencePlan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePlans(e.plans)
}

// Drafts returns copies of the draft plans in creation order.
func (e *Engine) Drafts() []*types.SciencePlan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePlans(e.drafts)
}

// PlansByStatus returns copies of complete plans currently in status.
func (e *Engine) PlansByStatus(status types.Status) []*types.SciencePlan {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []*types.SciencePlan
	for _, p := range e.plans {
		if p.Status == status {
			out = append(out, p.Clone())
		}
	}
	return out
}

// StatusSummary counts complete plans per status. Every status is present.
func (e *Engine) StatusSummary() map[types.Status]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	counts := make(map[types.Status]int, len(types.Statuses()))
	for _, s := range types.Statuses() {
		counts[s] = 0
	}
	for _, p := range e.plans {
		counts[p.Status]++
	}
	return counts
}

// DeleteByNo removes a plan from whichever collection holds it, along with
// its observing programs. Plan numbers are not reused afterwards.
func (e *Engine) DeleteByNo(ctx context.Context, planNo int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	var removed bool
	e.plans, removed = removePlan(e.plans, planNo)
	if !removed {
		e.drafts, removed = removePlan(e.drafts, planNo)
	}
	if !removed {
		return false
	}
	e.programs = removePrograms(e.programs, planNo)
	e.logger.Info("science plan deleted", "plan_no", planNo)
	e.record(ctx, events.New(events.EventTypePlanDeleted, planNo, "", events.SeverityInfo,
		fmt.Sprintf("Science plan #%d deleted.", planNo)))
	return true
}

// DeleteAll clears both plan collections and every observing program, and
// restarts plan and program numbering at 1.
func (e *Engine) DeleteAll(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cleared := len(e.plans) + len(e.drafts)
	e.plans = nil
	e.drafts = nil
	e.programs = nil
	e.nextPlanNo = 1
	e.nextProgramID = 1
	e.logger.Info("all science plans deleted", "count", cleared)
	e.record(ctx, events.New(events.EventTypePlansCleared, 0, "", events.SeverityInfo,
		fmt.Sprintf("Deleted %d science plans.", cleared)).WithData("count", cleared))
}

// find returns the stored plan and whether it is a draft. Caller holds mu.
func (e *Engine) find(planNo int) (*types.SciencePlan, bool) {
	for _, p := range e.plans {
		if p.PlanNo == planNo {
			return p, false
		}
	}
	for _, p := range e.drafts {
		if p.PlanNo == planNo {
			return p, true
		}
	}
	return nil, false
}

// record stores an audit event. Failures are logged and never change the
// outcome of the operation that produced the event.
func (e *Engine) record(ctx context.Context, event *events.Event) {
	if err := e.recorder.Record(ctx, event); err != nil {
		e.logger.Warn("failed to record lifecycle event", "type", event.Type, "plan_no", event.PlanNo, "error", err)
	}
}

func removePlan(plans []*types.SciencePlan, planNo int) ([]*types.SciencePlan, bool) {
	for i, p := range plans {
		if p.PlanNo == planNo {
			return append(plans[:i:i], plans[i+1:]...), true
		}
	}
	return plans, false
}

func removePrograms(programs []*types.ObservingProgram, planNo int) []*types.ObservingProgram {
	kept := programs[:0]
	for _, prog := range programs {
		if prog.PlanNo != planNo {
			kept = append(kept, prog)
		}
	}
	return kept
}

func clonePlans(plans []*types.SciencePlan) []*types.SciencePlan {
	out := make([]*types.SciencePlan, len(plans))
	for i, p := range plans {
		out[i] = p.Clone()
	}
	return out
}

func astronomerActor(a types.Astronomer) string {
	if name := a.FullName(); name != "" {
		return name
	}
	return fmt.Sprintf("astronomer-%d", a.ID)
}

func observerActor(o types.ScienceObserver) string {
	if name := o.FullName(); name != "" {
		return name
	}
	return fmt.Sprintf("observer-%d", o.ID)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
