package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableDates(t *testing.T) {
	e, log := newTestEngine(t)
	ctx := context.Background()

	res := e.AddUnavailableDate(ctx, day(2026, 12, 25))
	require.True(t, res.OK)
	assert.Equal(t, "Added unavailable date: 2026-12-25", res.Message)

	res = e.AddUnavailableDate(ctx, time.Date(2026, 12, 25, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, types.ReasonDuplicate, res.Code)
	assert.Equal(t, "Date already exists.", res.Message)

	require.True(t, e.AddUnavailableDate(ctx, day(2026, 1, 1)).OK)
	require.True(t, e.AddUnavailableDate(ctx, day(2026, 6, 30)).OK)

	dates := e.UnavailableDates()
	require.Len(t, dates, 3)
	assert.Equal(t, day(2026, 1, 1), dates[0])
	assert.Equal(t, day(2026, 6, 30), dates[1])
	assert.Equal(t, day(2026, 12, 25), dates[2])

	assert.True(t, e.IsUnavailable(time.Date(2026, 6, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, e.IsUnavailable(day(2026, 7, 1)))

	res = e.DeleteUnavailableDate(ctx, day(2026, 6, 30))
	require.True(t, res.OK)
	assert.Equal(t, "Removed unavailable date: 2026-06-30", res.Message)

	res = e.DeleteUnavailableDate(ctx, day(2026, 6, 30))
	assert.Equal(t, types.ReasonNotFound, res.Code)
	assert.Equal(t, "Date not found.", res.Message)

	assert.Len(t, e.UnavailableDates(), 2)
	assert.Len(t, log.Events(events.EventFilter{Type: events.EventTypeScheduleChanged}), 4)
}

func TestUnavailableDateKeepsLocalCalendarDay(t *testing.T) {
	e, _ := newTestEngine(t)
	hst := time.FixedZone("HST", -10*60*60)

	require.True(t, e.AddUnavailableDate(context.Background(), time.Date(2026, 3, 14, 22, 0, 0, 0, hst)).OK)
	assert.Equal(t, []time.Time{day(2026, 3, 14)}, e.UnavailableDates())
}

func TestUnavailableDatesReturnsCopy(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.AddUnavailableDate(context.Background(), day(2026, 2, 2)).OK)

	dates := e.UnavailableDates()
	dates[0] = day(2030, 1, 1)
	assert.True(t, e.IsUnavailable(day(2026, 2, 2)))
}
