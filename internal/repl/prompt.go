package repl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

func (r *REPL) askText(label string) (string, error) {
	line, err := r.ask(label + ": ")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askFloat returns nil for a blank answer.
func (r *REPL) askFloat(label string) (*float64, error) {
	s, err := r.askText(label)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number for %s: %q", strings.ToLower(label), s)
	}
	return &v, nil
}

func (r *REPL) askInt(label string) (int, error) {
	s, err := r.askText(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", strings.ToLower(label), s)
	}
	return v, nil
}

// askDate returns the zero time for a blank answer.
func (r *REPL) askDate(label string) (time.Time, error) {
	s, err := r.askText(label + " (yyyy-mm-dd [hh:mm])")
	if err != nil || s == "" {
		return time.Time{}, err
	}
	return parseDate(s)
}

// askChoice accepts an option by name (any case) or by 1-based position.
// A blank answer returns "".
func (r *REPL) askChoice(label string, options []string) (string, error) {
	s, err := r.askText(fmt.Sprintf("%s [%s]", label, strings.Join(options, "/")))
	if err != nil || s == "" {
		return "", err
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= len(options) {
		return options[i-1], nil
	}
	for _, o := range options {
		if strings.EqualFold(o, s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%s must be one of %s", strings.ToLower(label), strings.Join(options, ", "))
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-mm-dd)", s)
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
