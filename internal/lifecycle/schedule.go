package lifecycle

import (
	"context"
	"sort"
	"time"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
)

const dateLayout = "2006-01-02"

// AddUnavailableDate marks a calendar day as unavailable for observation.
// The time of day and zone are discarded.
func (e *Engine) AddUnavailableDate(ctx context.Context, date time.Time) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	day := normalizeDay(date)
	if e.unavailableIndex(day) >= 0 {
		return types.Failed(types.ReasonDuplicate, 0, "", "Date already exists.")
	}
	e.unavailable = append(e.unavailable, day)
	msg := "Added unavailable date: " + day.Format(dateLayout)
	e.logger.Info("unavailable date added", "date", day.Format(dateLayout))
	e.record(ctx, events.New(events.EventTypeScheduleChanged, 0, "", events.SeverityInfo, msg).
		WithData("date", day.Format(dateLayout)).
		WithData("action", "add"))
	return types.Succeeded(0, "", msg)
}

// DeleteUnavailableDate makes a calendar day available again.
func (e *Engine) DeleteUnavailableDate(ctx context.Context, date time.Time) types.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	day := normalizeDay(date)
	i := e.unavailableIndex(day)
	if i < 0 {
		return types.Failed(types.ReasonNotFound, 0, "", "Date not found.")
	}
	e.unavailable = append(e.unavailable[:i:i], e.unavailable[i+1:]...)
	msg := "Removed unavailable date: " + day.Format(dateLayout)
	e.logger.Info("unavailable date removed", "date", day.Format(dateLayout))
	e.record(ctx, events.New(events.EventTypeScheduleChanged, 0, "", events.SeverityInfo, msg).
		WithData("date", day.Format(dateLayout)).
		WithData("action", "remove"))
	return types.Succeeded(0, "", msg)
}

// UnavailableDates returns the unavailable days in ascending order.
func (e *Engine) UnavailableDates() []time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]time.Time(nil), e.unavailable...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsUnavailable reports whether the calendar day of date is marked
// unavailable.
func (e *Engine) IsUnavailable(date time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unavailableIndex(normalizeDay(date)) >= 0
}

func (e *Engine) unavailableIndex(day time.Time) int {
	for i, d := range e.unavailable {
		if d.Equal(day) {
			return i
		}
	}
	return -1
}

// normalizeDay keeps the calendar day of t as seen in its own zone.
func normalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
