package repl

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/gemini-ocs/ocs/internal/console"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/lifecycle"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	repl    *REPL
	engine  *lifecycle.Engine
	out     *bytes.Buffer
	answers []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	history := events.NewLog(0)
	engine, err := lifecycle.New(&lifecycle.Config{Logger: logger, Recorder: history})
	require.NoError(t, err)

	h := &harness{engine: engine, out: &bytes.Buffer{}}
	h.repl, err = New(&Config{
		Engine:     engine,
		Console:    console.New(console.Options{Logger: logger}),
		History:    history,
		Astronomer: types.Astronomer{ID: 1, FirstName: "Alice", LastName: "Moreau"},
		Observer:   types.ScienceObserver{ID: 2, FirstName: "Bob", LastName: "Kealoha"},
		Out:        h.out,
	})
	require.NoError(t, err)
	h.repl.ask = func(string) (string, error) {
		if len(h.answers) == 0 {
			return "", io.EOF
		}
		a := h.answers[0]
		h.answers = h.answers[1:]
		return a, nil
	}
	return h
}

// run executes one command line and returns its output.
func (h *harness) run(t *testing.T, line string, answers ...string) string {
	t.Helper()
	h.out.Reset()
	h.answers = answers
	require.NoError(t, h.repl.processInput(line))
	return h.out.String()
}

var validPlanAnswers = []string{
	"Andromeda survey", // name
	"Map the disk",     // objective
	"25000",            // funding
	"2026-04-01",       // start
	"2026-04-05 06:00", // end
	"1",                // telescope
	"andromeda",        // target
	"png",              // file type
	"LOW",              // quality
	"BW",               // color type
	"1.0",              // contrast
}

func TestNewRequiresEngine(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)
	_, err = New(nil)
	assert.Error(t, err)
}

func TestCreateAndWalkLifecycle(t *testing.T) {
	h := newHarness(t)

	out := h.run(t, "create", validPlanAnswers...)
	assert.Contains(t, out, "Science plan #1 'Andromeda survey' created successfully.")

	p, ok := h.engine.Plan(1)
	require.True(t, ok)
	assert.Equal(t, types.TelescopeHawaii, p.Telescope)
	assert.Equal(t, types.FilePNG, p.FileType)

	assert.Contains(t, h.run(t, "test 1 --dry-run"), "remains CREATED")
	assert.Contains(t, h.run(t, "submit 1"), "created but not tested")
	assert.Contains(t, h.run(t, "test 1"), "Status updated to TESTED")
	assert.Contains(t, h.run(t, "submit #1"), "submitted successfully")
	assert.Contains(t, h.run(t, "validate 1"), "validated")

	out = h.run(t, "program 1", "gnz", "5.0", "10", "35", "2", "2", "Argon", "1", "10:20, 30:45")
	assert.Contains(t, out, "ObservingProgram created successfully with ID: 1")

	prog, ok := h.engine.ObservingProgramForPlan(1)
	require.True(t, ok)
	assert.Equal(t, types.FoldCassegrainFocus, prog.Configs.FoldMirrorType())
	assert.Len(t, prog.Configs.TelePositions(), 2)

	assert.Contains(t, h.run(t, "programs"), "#1 plan=1 site=Hawaii optics=GNZ")
	assert.Contains(t, h.run(t, "data 1 m31.fits first light"), "Attached m31.fits")
	assert.Contains(t, h.run(t, "data 1"), "m31.fits  first light")
	assert.Contains(t, h.run(t, "complete 1"), "completed")
	assert.Contains(t, h.run(t, "summary"), "COMPLETE")
	assert.Contains(t, h.run(t, "history 1"), "status_changed")
}

func TestCreateDraftFromBadInput(t *testing.T) {
	h := newHarness(t)
	answers := append([]string(nil), validPlanAnswers...)
	answers[2] = "-5" // funding

	out := h.run(t, "create", answers...)
	assert.Contains(t, out, "Funding amount must be a positive numerical value. Draft saved as #1")
	assert.Contains(t, out, "invalid_funding")
	assert.Contains(t, h.run(t, "list drafts"), "Andromeda survey")
	assert.Contains(t, h.run(t, "show 1"), "(draft)")
}

func TestCreateRejectsUnparsableFunding(t *testing.T) {
	h := newHarness(t)
	answers := append([]string(nil), validPlanAnswers...)
	answers[2] = "lots"
	h.answers = answers

	err := h.repl.processInput("create")
	assert.ErrorContains(t, err, `invalid number for funding (usd): "lots"`)
	assert.Empty(t, h.engine.Plans())
	assert.Empty(t, h.engine.Drafts())
}

func TestCreateBlankFundingIsDrafted(t *testing.T) {
	h := newHarness(t)
	answers := append([]string(nil), validPlanAnswers...)
	answers[2] = ""

	out := h.run(t, "create", answers...)
	assert.Contains(t, out, "Funding amount must be a positive numerical value. Draft saved as #1")
}

func TestCreateCancelledInput(t *testing.T) {
	h := newHarness(t)
	h.answers = []string{"Only a name"}
	err := h.repl.processInput("create")
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, h.engine.Plans())
	assert.Empty(t, h.engine.Drafts())
}

func TestCreateRejectsUnknownChoice(t *testing.T) {
	h := newHarness(t)
	answers := append([]string(nil), validPlanAnswers...)
	answers[5] = "Mars"
	h.answers = answers
	err := h.repl.processInput("create")
	assert.ErrorContains(t, err, "telescope must be one of Hawaii, Chile")
}

func TestPlanNumberArguments(t *testing.T) {
	h := newHarness(t)
	for _, line := range []string{"test", "submit x", "validate 0", "show -1"} {
		assert.Error(t, h.repl.processInput(line), line)
	}
	assert.Contains(t, h.run(t, "submit 7"), "Science plan not found.")
}

func TestDeleteCommands(t *testing.T) {
	h := newHarness(t)
	h.run(t, "create", validPlanAnswers...)

	assert.Error(t, h.repl.processInput("delete 5"))
	assert.Contains(t, h.run(t, "delete 1"), "Science plan #1 deleted.")
	h.run(t, "create", validPlanAnswers...)
	assert.Contains(t, h.run(t, "delete all"), "Numbering restarts at 1")
	assert.Contains(t, h.run(t, "create", validPlanAnswers...), "#1")
}

func TestScheduleCommands(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.run(t, "schedule"), "No unavailable dates.")
	assert.Contains(t, h.run(t, "schedule add 2026-12-25"), "Added unavailable date: 2026-12-25")
	assert.Contains(t, h.run(t, "schedule add 2026-12-25"), "Date already exists.")
	assert.Contains(t, h.run(t, "schedule list"), "2026-12-25")
	assert.Contains(t, h.run(t, "schedule check 2026-12-25"), "2026-12-25 is unavailable.")
	assert.Contains(t, h.run(t, "schedule check 2026-12-26"), "2026-12-26 is available.")
	assert.Contains(t, h.run(t, "schedule remove 2026-12-25"), "Removed unavailable date")
	assert.Contains(t, h.run(t, "schedule check 2026-12-25"), "2026-12-25 is available.")
	assert.Error(t, h.repl.processInput("schedule add christmas"))
}

func TestCatalogCommand(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.run(t, "catalog"), "88 targets")
	assert.Contains(t, h.run(t, "catalog cassiopeia"), "Cassiopeia")
	assert.Contains(t, h.run(t, "catalog SOUTH"), "Crux")
	assert.NotContains(t, h.run(t, "catalog north"), "Crux")
	assert.Error(t, h.repl.processInput("catalog Tatooine"))
}

func TestConsoleCommands(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.run(t, "config"), "No configurations installed.")
	assert.Contains(t, h.run(t, "config add /etc/ocs/gmos.conf"), "installed")
	assert.Error(t, h.repl.processInput("config add /etc/ocs/gmos.conf"))
	assert.Contains(t, h.run(t, "config list"), "/etc/ocs/gmos.conf")
	assert.Contains(t, h.run(t, "config default"), `"default"`)
	assert.Contains(t, h.run(t, "config current"), `"current"`)
	assert.Contains(t, h.run(t, "config update"), "Configuration updated successfully.")
	assert.Contains(t, h.run(t, "config remove 0"), "removed")
	assert.Error(t, h.repl.processInput("config remove 0"))

	assert.Contains(t, h.run(t, "liveview"), console.DefaultLiveViewURL)
	assert.Contains(t, h.run(t, "exec open dome"), "Executed command: OPEN DOME")
	assert.ErrorIs(t, h.repl.processInput("exec"), console.ErrEmptyCommand)
}

func TestOfflineCommand(t *testing.T) {
	h := newHarness(t)
	h.run(t, "offline on")
	out := h.run(t, "create", validPlanAnswers...)
	assert.Contains(t, out, "network or system error")
	assert.Empty(t, h.engine.Drafts())

	h.run(t, "offline off")
	assert.Contains(t, h.run(t, "create", validPlanAnswers...), "#1")
}

func TestOptionsAndHelp(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "options")
	assert.Contains(t, out, "REFLECTIVE_CONVERGING_BEAM")
	assert.Contains(t, out, "CuAr")
	assert.Contains(t, out, "CerroPachonSkyEmission")

	assert.Contains(t, h.run(t, "help"), "Available Commands")
	assert.Contains(t, h.run(t, "frobnicate"), "Unknown command")
	assert.ErrorIs(t, h.repl.processInput("exit"), errExit)
}

func TestParseTelePositions(t *testing.T) {
	got, err := parseTelePositions("10:20, 30.5:45")
	require.NoError(t, err)
	assert.Equal(t, []types.TelePositionPair{{Direction: 10, Degree: 20}, {Direction: 30.5, Degree: 45}}, got)

	got, err = parseTelePositions("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseTelePositions("10-20")
	assert.Error(t, err)
}
