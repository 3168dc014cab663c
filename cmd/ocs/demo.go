package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk a science plan through its whole lifecycle",
	Long: `Run a scripted session against a fresh engine: a draft caused by a
missing field, a telescope time conflict, a dry-run and committed test,
submission, validation, and observing program creation with one rejected
and one accepted parameter set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), os.Stdout, rt)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(ctx context.Context, w io.Writer, rt *runtime) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	astronomer := newAstronomer("Vera Rubin")
	observer := newObserver("Science Observer")
	e := rt.engine

	step := func(title string, res types.Result) {
		mark := green("✓")
		if !res.OK {
			mark = yellow("✗")
		}
		fmt.Fprintf(w, "%s %-34s %s\n", mark, title, res.Message)
	}

	base := time.Date(2026, time.May, 1, 20, 0, 0, 0, time.UTC)
	plan := func(name string, start time.Time) *types.SciencePlan {
		return &types.SciencePlan{
			Name:        name,
			Objective:   "Measure rotation curves of the disk",
			Funding:     50000,
			StartDate:   start,
			EndDate:     start.Add(72 * time.Hour),
			Telescope:   types.TelescopeHawaii,
			Target:      "Andromeda",
			FileType:    types.FilePNG,
			FileQuality: types.QualityFine,
			ColorType:   types.ColorBW,
			Contrast:    types.Float(1.2),
		}
	}

	fmt.Fprintf(w, "\n%s\n", cyan("Science plan lifecycle"))

	unnamed := plan("", base)
	step("create without a name", e.Create(ctx, unnamed, astronomer))

	andromeda := plan("Andromeda rotation", base)
	res := e.Create(ctx, andromeda, astronomer)
	step("create", res)
	if !res.OK {
		return fmt.Errorf("demo plan was not accepted: %s", res.Message)
	}
	no := res.PlanNo

	step("create overlapping on Hawaii", e.Create(ctx, plan("Andromeda follow-up", base.Add(24*time.Hour)), astronomer))
	step("submit before testing", e.Submit(ctx, no, astronomer))
	step("test (dry run)", e.Test(ctx, no, false))
	step("test", e.Test(ctx, no, true))
	step("submit", e.Submit(ctx, no, astronomer))
	_, res = e.Validate(ctx, no, observer)
	step("validate", res)

	fmt.Fprintf(w, "\n%s\n", cyan("Observing program"))
	params := types.ProgramParams{
		OpticsPrimary:    types.OpticsGSZ,
		FStop:            1.0,
		SecondaryRMS:     10,
		FoldMirrorDegree: 35,
		FoldMirrorType:   types.FoldReflectiveConvergingBeam,
		ModuleContent:    2,
		CalibrationUnit:  types.CalibrationThAr,
		LightType:        types.LightMaunaKeaSkyEmission,
	}
	_, res = e.CreateObservingProgram(ctx, no, params, observer)
	step("program with GSZ f/1.0", res)

	params.OpticsPrimary, params.FStop = types.OpticsGNZ, 5.0
	params.TelePositions = []types.TelePositionPair{{Direction: 45, Degree: 30}}
	_, res = e.CreateObservingProgram(ctx, no, params, observer)
	step("program with GNZ f/5.0", res)

	fmt.Fprintf(w, "\n%s\n", cyan("Status"))
	summary := e.StatusSummary()
	for _, s := range types.Statuses() {
		if summary[s] > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", s, summary[s])
		}
	}
	fmt.Fprintf(w, "  %-10s %d\n", "DRAFTS", len(e.Drafts()))
	fmt.Fprintf(w, "  %-10s %d\n\n", "EVENTS", rt.history.Len())
	return nil
}
