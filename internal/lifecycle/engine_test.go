package lifecycle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gemini-ocs/ocs/internal/catalog"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var (
	fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	alice = types.Astronomer{ID: 1, FirstName: "Alice", LastName: "Moreau", Institution: "NOIRLab"}
	bob   = types.ScienceObserver{ID: 7, FirstName: "Bob", LastName: "Kealoha", Department: "Science Operations"}
)

func newTestEngine(t *testing.T) (*Engine, *events.Log) {
	t.Helper()
	log := events.NewLog(0)
	e, err := New(&Config{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Recorder: log,
		Clock:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return e, log
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validPlan returns a plan that passes every create check on an empty engine.
func validPlan(name string, start time.Time, days int) *types.SciencePlan {
	return &types.SciencePlan{
		Name:        name,
		Objective:   "Map the spiral arms",
		Funding:     25000,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days),
		Telescope:   types.TelescopeHawaii,
		Target:      "Andromeda",
		FileType:    types.FilePNG,
		FileQuality: types.QualityLow,
		ColorType:   types.ColorBW,
		Contrast:    types.Float(1.0),
	}
}

func mustCreate(t *testing.T, e *Engine, p *types.SciencePlan) int {
	t.Helper()
	res := e.Create(context.Background(), p, alice)
	require.True(t, res.OK, res.Message)
	return res.PlanNo
}

func TestNewDefaults(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 88, e.Catalog().Len())
	assert.Empty(t, e.Plans())
	assert.Empty(t, e.Drafts())
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	_, err = New(&Config{Catalog: empty})
	assert.Error(t, err)
}

func TestCreateValidPlan(t *testing.T) {
	e, log := newTestEngine(t)
	p := validPlan("Andromeda survey", day(2026, 4, 1), 5)

	res := e.Create(context.Background(), p, alice)
	require.True(t, res.OK)
	assert.Equal(t, types.ReasonOK, res.Code)
	assert.Equal(t, 1, res.PlanNo)
	assert.Equal(t, "Science plan #1 'Andromeda survey' created successfully.", res.Message)

	// caller's value is updated in place
	assert.Equal(t, 1, p.PlanNo)
	assert.Equal(t, types.StatusCreated, p.Status)
	require.NotNil(t, p.Creator)
	assert.Equal(t, alice.ID, p.Creator.ID)

	stored, ok := e.Plan(1)
	require.True(t, ok)
	assert.Equal(t, "Andromeda survey", stored.Name)
	assert.False(t, e.IsDraft(1))

	// engine keeps its own copy
	p.Name = "changed"
	stored, _ = e.Plan(1)
	assert.Equal(t, "Andromeda survey", stored.Name)

	created := log.Events(events.EventFilter{Type: events.EventTypePlanCreated})
	require.Len(t, created, 1)
	assert.Equal(t, "Alice Moreau", created[0].Actor)
}

func TestCreatePipeline(t *testing.T) {
	start := day(2026, 4, 1)
	tests := []struct {
		name    string
		mutate  func(p *types.SciencePlan)
		reason  types.ReasonCode
		message string
	}{
		{"missing name", func(p *types.SciencePlan) { p.Name = "  " }, types.ReasonMissingFields, "complete all required fields"},
		{"missing objective", func(p *types.SciencePlan) { p.Objective = "" }, types.ReasonMissingFields, "complete all required fields"},
		{"missing start date", func(p *types.SciencePlan) { p.StartDate = time.Time{} }, types.ReasonMissingFields, "complete all required fields"},
		{"missing telescope", func(p *types.SciencePlan) { p.Telescope = "" }, types.ReasonMissingFields, "complete all required fields"},
		{"start after end", func(p *types.SciencePlan) { p.StartDate, p.EndDate = p.EndDate, p.StartDate }, types.ReasonDateOrder, "Start date cannot be after the end date"},
		{"zero funding", func(p *types.SciencePlan) { p.Funding = 0 }, types.ReasonInvalidFunding, "positive numerical value"},
		{"negative funding", func(p *types.SciencePlan) { p.Funding = -10 }, types.ReasonInvalidFunding, "positive numerical value"},
		{"NaN funding", func(p *types.SciencePlan) { p.Funding = math.NaN() }, types.ReasonInvalidFunding, "positive numerical value"},
		{"unknown target", func(p *types.SciencePlan) { p.Target = "Tatooine" }, types.ReasonUnknownTarget, "not found in the star catalogue"},
		{"contrast out of range", func(p *types.SciencePlan) { p.Contrast = types.Float(2.5) }, types.ReasonOutOfRange, "Contrast must be between 0.0 to 2.0"},
		{"color without extras", func(p *types.SciencePlan) { p.ColorType = types.ColorColor }, types.ReasonModeFieldsMissing, "selected data processing mode"},
		{"missing contrast", func(p *types.SciencePlan) { p.Contrast = nil }, types.ReasonContrastMissing, "selected data processing mode"},
		{"raw fine", func(p *types.SciencePlan) { p.FileType, p.FileQuality = types.FileRAW, types.QualityFine }, types.ReasonLegacyIncompatible, "legacy OCS system"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			p := validPlan("Plan", start, 3)
			tt.mutate(p)

			res := e.Create(context.Background(), p, alice)
			assert.False(t, res.OK)
			assert.Equal(t, tt.reason, res.Code)
			assert.True(t, res.Code.IsDraft())
			assert.Contains(t, res.Message, tt.message)
			assert.Contains(t, res.Message, "Draft saved as #1")
			assert.Equal(t, types.StatusCreated, res.Status)
			assert.Len(t, e.Drafts(), 1)
			assert.Empty(t, e.Plans())
			assert.True(t, e.IsDraft(1))
		})
	}
}

func TestCreateFirstFailureWins(t *testing.T) {
	e, _ := newTestEngine(t)
	p := validPlan("", day(2026, 4, 10), 1)
	p.EndDate = day(2026, 4, 1)
	p.Funding = -1

	res := e.Create(context.Background(), p, alice)
	assert.Equal(t, types.ReasonMissingFields, res.Code)
}

func TestCreateAggregatesRangeViolations(t *testing.T) {
	e, _ := newTestEngine(t)
	p := validPlan("Color plan", day(2026, 4, 1), 1)
	p.ColorType = types.ColorColor
	p.Contrast = types.Float(3)
	p.Brightness = types.Float(-2)
	p.Saturation = types.Float(1)
	p.Exposure = types.Float(4)

	res := e.Create(context.Background(), p, alice)
	require.Equal(t, types.ReasonOutOfRange, res.Code)
	assert.Contains(t, res.Message, "Contrast must be between 0.0 to 2.0")
	assert.Contains(t, res.Message, "Brightness")
	assert.Contains(t, res.Message, "Exposure")
	assert.NotContains(t, res.Message, "Saturation")
}

func TestCreateColorPlanWithAllFields(t *testing.T) {
	e, _ := newTestEngine(t)
	p := validPlan("Color plan", day(2026, 4, 1), 1)
	p.ColorType = types.ColorColor
	p.Brightness = types.Float(0)
	p.Saturation = types.Float(1.5)
	p.Exposure = types.Float(-3)

	res := e.Create(context.Background(), p, alice)
	assert.True(t, res.OK, res.Message)
}

func TestCreateDuplicateNameIsCaseInsensitive(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreate(t, e, validPlan("Andromeda Survey", day(2026, 4, 1), 1))

	res := e.Create(context.Background(), validPlan("  ANDROMEDA survey ", day(2026, 6, 1), 1), alice)
	assert.Equal(t, types.ReasonDuplicateName, res.Code)
	assert.Equal(t, 2, res.PlanNo)
}

func TestCreateDraftNamesDoNotBlockReuse(t *testing.T) {
	e, _ := newTestEngine(t)
	bad := validPlan("Retry me", day(2026, 4, 1), 1)
	bad.Funding = 0
	require.False(t, e.Create(context.Background(), bad, alice).OK)

	// drafts are never promoted; a corrected plan gets a new number
	no := mustCreate(t, e, validPlan("Retry me", day(2026, 4, 1), 1))
	assert.Equal(t, 2, no)
	assert.True(t, e.IsDraft(1))
}

func TestCreateTargetLookupIsCaseInsensitive(t *testing.T) {
	e, _ := newTestEngine(t)
	p := validPlan("Lower case target", day(2026, 4, 1), 1)
	p.Target = "cassiopeia"
	mustCreate(t, e, p)
}

// Scenario B
func TestCreateScheduleConflict(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreate(t, e, validPlan("First", day(2026, 5, 1), 10))

	overlapping := validPlan("Second", day(2026, 5, 5), 10)
	res := e.Create(context.Background(), overlapping, alice)
	assert.Equal(t, types.ReasonScheduleConflict, res.Code)
	assert.Contains(t, res.Message, "conflicts with another scheduled plan")
	assert.True(t, e.IsDraft(res.PlanNo))
}

func TestCreateScheduleBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		telescope string
		conflict  bool
	}{
		{"touching end", day(2026, 5, 11), day(2026, 5, 20), types.TelescopeHawaii, true},
		{"touching start", day(2026, 4, 20), day(2026, 5, 1), types.TelescopeHawaii, true},
		{"contained", day(2026, 5, 3), day(2026, 5, 4), types.TelescopeHawaii, true},
		{"strictly after", day(2026, 5, 12), day(2026, 5, 20), types.TelescopeHawaii, false},
		{"strictly before", day(2026, 4, 1), day(2026, 4, 30), types.TelescopeHawaii, false},
		{"other telescope", day(2026, 5, 3), day(2026, 5, 4), types.TelescopeChile, false},
		{"telescope case differs", day(2026, 5, 3), day(2026, 5, 4), "hawaii", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			mustCreate(t, e, validPlan("Base", day(2026, 5, 1), 10))

			p := validPlan("Candidate", tt.start, 0)
			p.EndDate = tt.end
			p.Telescope = tt.telescope
			res := e.Create(context.Background(), p, alice)
			if tt.conflict {
				assert.Equal(t, types.ReasonScheduleConflict, res.Code)
			} else {
				assert.True(t, res.OK, res.Message)
			}
		})
	}
}

func TestCreateOffline(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetOffline(true)

	res := e.Create(context.Background(), validPlan("Offline", day(2026, 4, 1), 1), alice)
	assert.Equal(t, types.ReasonUnavailable, res.Code)
	assert.False(t, res.Code.IsDraft())
	assert.Empty(t, e.Plans())
	assert.Empty(t, e.Drafts())

	e.SetOffline(false)
	assert.Equal(t, 1, mustCreate(t, e, validPlan("Online", day(2026, 4, 1), 1)))
}

func TestCreateNilPlan(t *testing.T) {
	e, _ := newTestEngine(t)
	res := e.Create(context.Background(), nil, alice)
	assert.Equal(t, types.ReasonMissingFields, res.Code)
	assert.Empty(t, e.Drafts())
}

func TestCompletePlansInvariants(t *testing.T) {
	e, _ := newTestEngine(t)
	names := []string{"Alpha", "alpha", "Beta", "BETA ", "Gamma"}
	for i, name := range names {
		p := validPlan(name, day(2026, 1, 1).AddDate(0, 0, i*3), 4)
		if i%2 == 0 {
			p.Telescope = types.TelescopeChile
		}
		e.Create(context.Background(), p, alice)
	}

	plans := e.Plans()
	seen := map[string]bool{}
	for _, p := range plans {
		assert.Equal(t, types.StatusCreated, p.Status)
		key := strings.ToLower(strings.TrimSpace(p.Name))
		assert.False(t, seen[key], "duplicate name %q", p.Name)
		seen[key] = true
	}
	for i, a := range plans {
		for _, b := range plans[i+1:] {
			if !strings.EqualFold(a.Telescope, b.Telescope) {
				continue
			}
			overlap := !(b.EndDate.Before(a.StartDate) || b.StartDate.After(a.EndDate))
			assert.False(t, overlap, "plans #%d and #%d overlap", a.PlanNo, b.PlanNo)
		}
	}
	assert.Equal(t, len(names), len(plans)+len(e.Drafts()))
}

func TestDeleteByNoKeepsNumbering(t *testing.T) {
	e, log := newTestEngine(t)
	mustCreate(t, e, validPlan("One", day(2026, 4, 1), 1))
	draft := validPlan("Two", day(2026, 4, 5), 1)
	draft.Target = "Nowhere"
	e.Create(context.Background(), draft, alice)

	assert.True(t, e.DeleteByNo(context.Background(), 1))
	assert.True(t, e.DeleteByNo(context.Background(), 2))
	assert.False(t, e.DeleteByNo(context.Background(), 2))
	assert.Empty(t, e.Plans())
	assert.Empty(t, e.Drafts())
	assert.Len(t, log.Events(events.EventFilter{Type: events.EventTypePlanDeleted}), 2)

	assert.Equal(t, 3, mustCreate(t, e, validPlan("Three", day(2026, 4, 1), 1)))
}

func TestDeleteAllResetsNumbering(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreate(t, e, validPlan("One", day(2026, 4, 1), 1))
	mustCreate(t, e, validPlan("Two", day(2026, 4, 5), 1))

	e.DeleteAll(context.Background())
	assert.Empty(t, e.Plans())
	assert.Equal(t, 1, mustCreate(t, e, validPlan("One", day(2026, 4, 1), 1)))
}

func TestDeleteAllDropsObservingPrograms(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	no := validatedOn(t, e, types.TelescopeHawaii)
	_, res := e.CreateObservingProgram(ctx, no, gnzParams(), bob)
	require.True(t, res.OK, res.Message)

	e.DeleteAll(ctx)
	assert.Empty(t, e.ObservingPrograms())

	fresh := validPlan("Fresh", day(2026, 9, 1), 3)
	fresh.Telescope = types.TelescopeChile
	require.Equal(t, 1, mustCreate(t, e, fresh))
	_, ok := e.ObservingProgramForPlan(1)
	assert.False(t, ok, "fresh plan #1 must not inherit the deleted plan's program")

	no = validatedOn(t, e, types.TelescopeHawaii)
	prog, res := e.CreateObservingProgram(ctx, no, gnzParams(), bob)
	require.True(t, res.OK, res.Message)
	assert.Equal(t, 1, prog.ID)
}

func TestDeleteByNoDropsObservingPrograms(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	first := planIn(t, e, "First", types.StatusValidated)
	second := validatedOn(t, e, types.TelescopeChile)
	for _, no := range []int{first, second} {
		_, res := e.CreateObservingProgram(ctx, no, gnzParams(), bob)
		require.True(t, res.OK, res.Message)
	}

	require.True(t, e.DeleteByNo(ctx, first))
	_, ok := e.ObservingProgramForPlan(first)
	assert.False(t, ok)
	progs := e.ObservingPrograms()
	require.Len(t, progs, 1)
	assert.Equal(t, second, progs[0].PlanNo)
}

func TestStatusSummary(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreate(t, e, validPlan("One", day(2026, 4, 1), 1))
	no := mustCreate(t, e, validPlan("Two", day(2026, 4, 5), 1))
	require.True(t, e.Test(context.Background(), no, true).OK)

	summary := e.StatusSummary()
	assert.Len(t, summary, len(types.Statuses()))
	assert.Equal(t, 1, summary[types.StatusCreated])
	assert.Equal(t, 1, summary[types.StatusTested])
	assert.Equal(t, 0, summary[types.StatusRunning])

	tested := e.PlansByStatus(types.StatusTested)
	require.Len(t, tested, 1)
	assert.Equal(t, no, tested[0].PlanNo)
}

func TestConcurrentCreatesOnSameTelescope(t *testing.T) {
	e, _ := newTestEngine(t)
	const n = 16

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			e.Create(context.Background(), validPlan(fmt.Sprintf("Plan %d", i), day(2026, 7, 1), 5), alice)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, e.Plans(), 1)
	assert.Len(t, e.Drafts(), n-1)

	seen := map[int]bool{}
	for _, p := range append(e.Plans(), e.Drafts()...) {
		assert.False(t, seen[p.PlanNo], "plan number %d reused", p.PlanNo)
		seen[p.PlanNo] = true
	}
}
