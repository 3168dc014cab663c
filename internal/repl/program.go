package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/types"
)

func (r *REPL) cmdProgram(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}

	var params types.ProgramParams
	if params.OpticsPrimary, err = r.askChoice("Primary optics", []string{types.OpticsGNZ, types.OpticsGSZ}); err != nil {
		return err
	}
	if params.FStop, err = r.askRequiredFloat("F-stop"); err != nil {
		return err
	}
	if params.SecondaryRMS, err = r.askRequiredFloat("Secondary optics RMS (nm)"); err != nil {
		return err
	}
	if params.FoldMirrorDegree, err = r.askRequiredFloat("Fold mirror degree"); err != nil {
		return err
	}
	foldType, err := r.askChoice("Fold mirror type", toStrings(types.FoldMirrorTypes()))
	if err != nil {
		return err
	}
	params.FoldMirrorType = types.FoldMirrorType(foldType)
	if params.ModuleContent, err = r.askInt("Module content (1-4)"); err != nil {
		return err
	}
	calibration, err := r.askChoice("Calibration unit", toStrings(types.CalibrationUnits()))
	if err != nil {
		return err
	}
	params.CalibrationUnit = types.CalibrationUnit(calibration)
	light, err := r.askChoice("Light type", toStrings(types.LightTypes()))
	if err != nil {
		return err
	}
	params.LightType = types.LightType(light)

	positions, err := r.askText("Tele positions (direction:degree, comma separated)")
	if err != nil {
		return err
	}
	if params.TelePositions, err = parseTelePositions(positions); err != nil {
		return err
	}

	_, res := r.engine.CreateObservingProgram(r.ctx, no, params, r.observer)
	r.printResult(res)
	return nil
}

func (r *REPL) askRequiredFloat(label string) (float64, error) {
	v, err := r.askFloat(label)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%s is required", strings.ToLower(label))
	}
	return *v, nil
}

// parseTelePositions reads "10:20, 30:45" into pointing pairs.
func parseTelePositions(s string) ([]types.TelePositionPair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []types.TelePositionPair
	for _, item := range strings.Split(s, ",") {
		dir, deg, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("invalid tele position %q (expected direction:degree)", item)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(dir), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tele position direction %q", dir)
		}
		g, err := strconv.ParseFloat(strings.TrimSpace(deg), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tele position degree %q", deg)
		}
		out = append(out, types.TelePositionPair{Direction: d, Degree: g})
	}
	return out, nil
}

func (r *REPL) cmdPrograms(args []string) error {
	programs := r.engine.ObservingPrograms()
	if len(programs) == 0 {
		fmt.Fprintln(r.out, "No observing programs.")
		return nil
	}
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n", cyan("Observing Programs"))
	for _, p := range programs {
		fmt.Fprintf(r.out, "  #%d plan=%d site=%s optics=%s f/%.1f rms=%.1fnm fold=%.1f module=%d observer=%s\n",
			p.ID, p.PlanNo, p.Site, p.OpticsPrimary, p.FStop, p.SecondaryRMS,
			p.FoldMirrorDegree, p.ModuleContent, p.Observer.FullName())
	}
	fmt.Fprintln(r.out)
	return nil
}

// cmdOptions lists every enumerated choice offered by the forms.
func (r *REPL) cmdOptions(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n", cyan("Options"))
	for _, o := range []struct {
		label  string
		values []string
	}{
		{"Telescopes", r.telescopes},
		{"File types", toStrings(types.FileTypes())},
		{"File qualities", toStrings(types.FileQualities())},
		{"Color types", toStrings(types.ColorTypes())},
		{"Primary optics", []string{types.OpticsGNZ, types.OpticsGSZ}},
		{"Fold mirror types", toStrings(types.FoldMirrorTypes())},
		{"Calibration units", toStrings(types.CalibrationUnits())},
		{"Light types", toStrings(types.LightTypes())},
	} {
		fmt.Fprintf(r.out, "  %-18s %s\n", o.label+":", strings.Join(o.values, ", "))
	}
	fmt.Fprintln(r.out)
	return nil
}
