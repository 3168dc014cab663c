// Package rules holds the numeric limits and pure checks applied to science
// plans and observing program parameters. All ranges are closed intervals.
package rules

import (
	"fmt"
	"strings"
	"time"
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v float64) bool {
	return InRange(v, r.Min, r.Max)
}

// String formats the range the way operators see it: "0.0 to 2.0".
func (r Range) String() string {
	return fmt.Sprintf("%.1f to %.1f", r.Min, r.Max)
}

// Image processing limits
var (
	Contrast   = Range{Min: 0.0, Max: 2.0}
	Brightness = Range{Min: -1.0, Max: 1.0}
	Saturation = Range{Min: 0.0, Max: 2.0}
	Exposure   = Range{Min: -3.0, Max: 3.0}
)

// Observing program limits
var (
	GNZFStop         = Range{Min: 1.8, Max: 8.1}
	GSZFStop         = Range{Min: 2.9, Max: 18.0}
	HawaiiRMS        = Range{Min: 5.0, Max: 17.0}
	ChileRMS         = Range{Min: 5.0, Max: 13.0}
	FoldMirrorDegree = Range{Min: 30.0, Max: 45.0}
)

const (
	ModuleContentMin = 1
	ModuleContentMax = 4
)

// InRange reports whether lo <= v <= hi.
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// RangesConflict reports whether [aStart, aEnd] and [bStart, bEnd] share
// at least one instant. Touching endpoints count as a conflict; two ranges
// are free only when one ends strictly before the other starts.
func RangesConflict(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(bEnd.Before(aStart) || bStart.After(aEnd))
}

// Imaging carries the optional image processing values of a plan.
type Imaging struct {
	Contrast   *float64
	Brightness *float64
	Saturation *float64
	Exposure   *float64
}

// RangeViolations returns one message per supplied value that falls
// outside its range, in the order contrast, brightness, saturation,
// exposure. Values that were not supplied are skipped.
func RangeViolations(img Imaging) []string {
	checks := []struct {
		label string
		value *float64
		r     Range
	}{
		{"Contrast", img.Contrast, Contrast},
		{"Brightness", img.Brightness, Brightness},
		{"Saturation", img.Saturation, Saturation},
		{"Exposure", img.Exposure, Exposure},
	}
	var out []string
	for _, c := range checks {
		if c.value != nil && !c.r.Contains(*c.value) {
			out = append(out, fmt.Sprintf("%s must be between %s", c.label, c.r))
		}
	}
	return out
}

// FStopRange returns the f-stop range for a primary optics code. The code
// is matched case-insensitively; ok is false for unknown optics.
func FStopRange(opticsPrimary string) (Range, bool) {
	switch strings.ToUpper(strings.TrimSpace(opticsPrimary)) {
	case "GNZ":
		return GNZFStop, true
	case "GSZ":
		return GSZFStop, true
	}
	return Range{}, false
}

// SecondaryRMSRange returns the secondary optics RMS range (nm) for a
// telescope site. ok is false for sites without a limit.
func SecondaryRMSRange(site string) (Range, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(site), "Hawaii"):
		return HawaiiRMS, true
	case strings.EqualFold(strings.TrimSpace(site), "Chile"):
		return ChileRMS, true
	}
	return Range{}, false
}

// ValidModuleContent reports whether n names one of the four modules.
func ValidModuleContent(n int) bool {
	return n >= ModuleContentMin && n <= ModuleContentMax
}

// LegacyCompatible reports whether the legacy pipeline can process the
// output format. RAW files at FINE quality are not supported.
func LegacyCompatible(fileType, fileQuality string) bool {
	return !(fileType == "RAW" && fileQuality == "FINE")
}
