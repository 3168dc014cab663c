package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar date format used in facility files.
const DateLayout = "2006-01-02"

// Facility describes the telescopes and schedule loaded at startup.
//
// Example:
//
//	telescopes: [Hawaii, Chile]
//	configurations:
//	  - /etc/ocs/gmos-north.conf
//	unavailable_dates:
//	  - 2026-12-25
type Facility struct {
	Telescopes       []string `yaml:"telescopes"`
	Configurations   []string `yaml:"configurations"`
	UnavailableDates []string `yaml:"unavailable_dates"`
}

// DefaultFacility returns the two Gemini sites with nothing installed.
func DefaultFacility() *Facility {
	return &Facility{Telescopes: []string{"Hawaii", "Chile"}}
}

// LoadFacility reads and validates a facility file.
func LoadFacility(path string) (*Facility, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facility file: %w", err)
	}
	f, err := ParseFacility(data)
	if err != nil {
		return nil, fmt.Errorf("facility file %s: %w", path, err)
	}
	return f, nil
}

// ParseFacility decodes facility YAML. Missing telescopes default to the
// Gemini sites.
func ParseFacility(data []byte) (*Facility, error) {
	var f Facility
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse facility: %w", err)
	}
	if len(f.Telescopes) == 0 {
		f.Telescopes = DefaultFacility().Telescopes
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks if the facility has valid field values
func (f *Facility) Validate() error {
	seen := make(map[string]bool, len(f.Telescopes))
	for _, t := range f.Telescopes {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			return fmt.Errorf("telescope name cannot be empty")
		}
		if seen[key] {
			return fmt.Errorf("duplicate telescope %q", t)
		}
		seen[key] = true
	}
	for _, c := range f.Configurations {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("configuration path cannot be empty")
		}
	}
	if _, err := f.Dates(); err != nil {
		return err
	}
	return nil
}

// Dates parses UnavailableDates as UTC calendar days.
func (f *Facility) Dates() ([]time.Time, error) {
	out := make([]time.Time, 0, len(f.UnavailableDates))
	for _, s := range f.UnavailableDates {
		d, err := time.Parse(DateLayout, strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid unavailable date %q: expected %s", s, DateLayout)
		}
		out = append(out, d)
	}
	return out, nil
}
