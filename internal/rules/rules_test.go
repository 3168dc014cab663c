package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestInRangeInclusive(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0.0, true},
		{2.0, true},
		{1.0, true},
		{-0.01, false},
		{2.01, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Contrast.Contains(tt.v), "contrast %v", tt.v)
	}
	assert.True(t, InRange(-3, -3, 3))
	assert.False(t, InRange(3.0001, -3, 3))
}

func TestRangesConflict(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", day(10), day(12), day(1), day(5), false},
		{"disjoint after", day(1), day(5), day(10), day(12), false},
		{"overlap", day(1), day(5), day(4), day(8), true},
		{"contained", day(1), day(10), day(3), day(4), true},
		{"touching end to start", day(1), day(5), day(5), day(8), true},
		{"touching start to end", day(5), day(8), day(1), day(5), true},
		{"identical", day(1), day(5), day(1), day(5), true},
		{"one day apart", day(1), day(5), day(6), day(8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesConflict(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, RangesConflict(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "symmetric")
		})
	}
}

func TestRangeViolationsAggregates(t *testing.T) {
	got := RangeViolations(Imaging{
		Contrast:   f(2.5),
		Brightness: f(0.5),
		Saturation: f(-1),
		Exposure:   f(4),
	})
	assert.Equal(t, []string{
		"Contrast must be between 0.0 to 2.0",
		"Saturation must be between 0.0 to 2.0",
		"Exposure must be between -3.0 to 3.0",
	}, got)

	assert.Empty(t, RangeViolations(Imaging{}), "unsupplied values are skipped")
	assert.Empty(t, RangeViolations(Imaging{Contrast: f(0), Brightness: f(-1), Saturation: f(2), Exposure: f(3)}))
}

func TestFStopRange(t *testing.T) {
	r, ok := FStopRange("gnz")
	assert.True(t, ok)
	assert.Equal(t, GNZFStop, r)

	r, ok = FStopRange("GSZ")
	assert.True(t, ok)
	assert.False(t, r.Contains(1.0))
	assert.True(t, r.Contains(18.0))

	_, ok = FStopRange("GXZ")
	assert.False(t, ok)
}

func TestSecondaryRMSRange(t *testing.T) {
	r, ok := SecondaryRMSRange("hawaii")
	assert.True(t, ok)
	assert.True(t, r.Contains(17.0))

	r, ok = SecondaryRMSRange("Chile")
	assert.True(t, ok)
	assert.False(t, r.Contains(14.0))

	_, ok = SecondaryRMSRange("La Palma")
	assert.False(t, ok)
}

func TestModuleContentAndLegacy(t *testing.T) {
	for n := 1; n <= 4; n++ {
		assert.True(t, ValidModuleContent(n))
	}
	assert.False(t, ValidModuleContent(0))
	assert.False(t, ValidModuleContent(5))

	assert.False(t, LegacyCompatible("RAW", "FINE"))
	assert.True(t, LegacyCompatible("RAW", "LOW"))
	assert.True(t, LegacyCompatible("PNG", "FINE"))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "1.8 to 8.1", GNZFStop.String())
	assert.Equal(t, "-1.0 to 1.0", Brightness.String())
}
