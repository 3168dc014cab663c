package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gemini-ocs/ocs/internal/config"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRuntimeDefaults(t *testing.T) {
	r, err := newRuntime(context.Background(), config.DefaultEngineConfig(), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hawaii", "Chile"}, r.facility.Telescopes)
	assert.Empty(t, r.engine.UnavailableDates())
	assert.Equal(t, "No configurations installed.", r.console.ConfigurationsSummary())
}

func TestNewRuntimeLoadsFacility(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facility.yaml")
	data := `
telescopes: [Hawaii, Chile, La Palma]
configurations: [/etc/ocs/gmos.conf]
unavailable_dates: ["2026-12-25", "2026-12-25"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := config.DefaultEngineConfig()
	cfg.FacilityFile = path
	cfg.Offline = true
	r, err := newRuntime(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	assert.Len(t, r.facility.Telescopes, 3)
	assert.Equal(t, "/etc/ocs/gmos.conf", r.console.ConfigurationsSummary())
	assert.Equal(t, []time.Time{time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)}, r.engine.UnavailableDates())

	res := r.engine.Create(context.Background(), &types.SciencePlan{Name: "x"}, types.Astronomer{})
	assert.Equal(t, types.ReasonUnavailable, res.Code)
}

func TestNewRuntimeMissingFacility(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.FacilityFile = filepath.Join(t.TempDir(), "nope.yaml")
	_, err := newRuntime(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	r, err := newRuntime(context.Background(), config.DefaultEngineConfig(), quietLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runDemo(context.Background(), &out, r))

	s := out.String()
	assert.Contains(t, s, "Please complete all required fields before saving the science plan. Draft saved as #1")
	assert.Contains(t, s, "Science plan #2 'Andromeda rotation' created successfully.")
	assert.Contains(t, s, "conflicts with another scheduled plan")
	assert.Contains(t, s, "Status remains CREATED.")
	assert.Contains(t, s, "F-stop for GSZ must be in range 2.9-18.0. Got: 1")
	assert.Contains(t, s, "ObservingProgram created successfully with ID: 1")

	p, ok := r.engine.Plan(2)
	require.True(t, ok)
	assert.Equal(t, types.StatusRunning, p.Status)
	assert.Len(t, r.engine.Drafts(), 2)
}

func TestNewAstronomerSplitsName(t *testing.T) {
	a := newAstronomer("Vera Rubin")
	assert.Equal(t, "Vera", a.FirstName)
	assert.Equal(t, "Rubin", a.LastName)

	o := newObserver("")
	assert.Equal(t, "Science Operations", o.FullName())
}
