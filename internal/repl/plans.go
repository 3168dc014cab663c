package repl

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/types"
)

// cmdCreate collects a science plan field by field and hands it to the
// engine. Blank answers leave a field unset; the engine decides whether
// the plan is complete or a draft.
func (r *REPL) cmdCreate(args []string) error {
	p := &types.SciencePlan{}
	var err error

	if p.Name, err = r.askText("Plan name"); err != nil {
		return err
	}
	if p.Objective, err = r.askText("Objective"); err != nil {
		return err
	}
	funding, err := r.askFloat("Funding (USD)")
	if err != nil {
		return err
	}
	// blank funding stays 0 and is reported by the engine
	if funding != nil {
		p.Funding = *funding
	}

	if p.StartDate, err = r.askDate("Start date"); err != nil {
		return err
	}
	if p.EndDate, err = r.askDate("End date"); err != nil {
		return err
	}
	if p.Telescope, err = r.askChoice("Telescope", r.telescopes); err != nil {
		return err
	}
	if p.Target, err = r.askText("Target star system"); err != nil {
		return err
	}

	fileType, err := r.askChoice("File type", toStrings(types.FileTypes()))
	if err != nil {
		return err
	}
	p.FileType = types.FileType(fileType)
	quality, err := r.askChoice("File quality", toStrings(types.FileQualities()))
	if err != nil {
		return err
	}
	p.FileQuality = types.FileQuality(quality)
	colorType, err := r.askChoice("Color type", toStrings(types.ColorTypes()))
	if err != nil {
		return err
	}
	p.ColorType = types.ColorType(colorType)

	if p.Contrast, err = r.askFloat("Contrast"); err != nil {
		return err
	}
	if p.ColorType == types.ColorColor {
		if p.Brightness, err = r.askFloat("Brightness"); err != nil {
			return err
		}
		if p.Saturation, err = r.askFloat("Saturation"); err != nil {
			return err
		}
		if p.Exposure, err = r.askFloat("Exposure"); err != nil {
			return err
		}
	}

	r.printResult(r.engine.Create(r.ctx, p, r.astronomer))
	return nil
}

// cmdList shows plans; "drafts" or a status name narrows the listing.
func (r *REPL) cmdList(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	if len(args) > 0 && strings.EqualFold(args[0], "drafts") {
		r.printPlans(cyan("Draft Plans"), r.engine.Drafts())
		return nil
	}
	if len(args) > 0 {
		status := types.Status(strings.ToUpper(args[0]))
		if !status.IsValid() {
			return fmt.Errorf("unknown status %q", args[0])
		}
		r.printPlans(cyan(fmt.Sprintf("%s Plans", status)), r.engine.PlansByStatus(status))
		return nil
	}

	r.printPlans(cyan("Science Plans"), r.engine.Plans())
	r.printPlans(cyan("Draft Plans"), r.engine.Drafts())
	return nil
}

func (r *REPL) printPlans(title string, plans []*types.SciencePlan) {
	fmt.Fprintf(r.out, "\n%s\n", title)
	if len(plans) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		return
	}
	for _, p := range plans {
		fmt.Fprintf(r.out, "  %s\n", p)
	}
}

func (r *REPL) cmdShow(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	p, ok := r.engine.Plan(no)
	if !ok {
		return fmt.Errorf("science plan #%d not found", no)
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	title := fmt.Sprintf("Science Plan #%d", p.PlanNo)
	if r.engine.IsDraft(no) {
		title += " (draft)"
	}
	fmt.Fprintf(r.out, "\n%s\n", cyan(title))
	fmt.Fprintf(r.out, "  Name:       %s\n", p.Name)
	fmt.Fprintf(r.out, "  Objective:  %s\n", p.Objective)
	if p.Creator != nil {
		fmt.Fprintf(r.out, "  Creator:    %s\n", p.Creator.FullName())
	}
	fmt.Fprintf(r.out, "  Funding:    %.2f\n", p.Funding)
	fmt.Fprintf(r.out, "  Dates:      %s to %s\n", p.StartDate.Format("2006-01-02 15:04"), p.EndDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(r.out, "  Telescope:  %s\n", p.Telescope)
	fmt.Fprintf(r.out, "  Target:     %s\n", p.Target)
	fmt.Fprintf(r.out, "  Status:     %s\n", p.Status)
	fmt.Fprintf(r.out, "  Output:     %s %s %s\n", p.FileType, p.FileQuality, p.ColorType)
	for _, v := range []struct {
		label string
		value *float64
	}{
		{"Contrast", p.Contrast},
		{"Brightness", p.Brightness},
		{"Saturation", p.Saturation},
		{"Exposure", p.Exposure},
	} {
		if v.value != nil {
			fmt.Fprintf(r.out, "  %-11s %.2f\n", v.label+":", *v.value)
		}
	}
	if next := p.Status.ValidTransitions(); len(next) > 0 && !r.engine.IsDraft(no) {
		fmt.Fprintf(r.out, "  Next:       %s\n", strings.Join(toStrings(next), ", "))
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *REPL) cmdSummary(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	summary := r.engine.StatusSummary()
	fmt.Fprintf(r.out, "\n%s\n", cyan("Plan Status"))
	for _, s := range types.Statuses() {
		fmt.Fprintf(r.out, "  %-12s %d\n", s, summary[s])
	}
	fmt.Fprintf(r.out, "  %-12s %d\n\n", "DRAFTS", len(r.engine.Drafts()))
	return nil
}

func (r *REPL) cmdTest(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	commit := true
	for _, a := range args[1:] {
		if a == "--dry-run" {
			commit = false
		}
	}
	r.printResult(r.engine.Test(r.ctx, no, commit))
	return nil
}

func (r *REPL) cmdSubmit(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	r.printResult(r.engine.Submit(r.ctx, no, r.astronomer))
	return nil
}

func (r *REPL) cmdValidate(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	_, res := r.engine.Validate(r.ctx, no, r.observer)
	r.printResult(res)
	return nil
}

func (r *REPL) cmdInvalidate(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	r.printResult(r.engine.Invalidate(r.ctx, no, r.observer))
	return nil
}

func (r *REPL) cmdComplete(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	r.printResult(r.engine.Complete(r.ctx, no, r.observer))
	return nil
}

func (r *REPL) cmdCancel(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	r.printResult(r.engine.Cancel(r.ctx, no, r.astronomer.FullName()))
	return nil
}

func (r *REPL) cmdDelete(args []string) error {
	if len(args) > 0 && strings.EqualFold(args[0], "all") {
		r.engine.DeleteAll(r.ctx)
		fmt.Fprintln(r.out, "All science plans deleted. Numbering restarts at 1.")
		return nil
	}
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	if !r.engine.DeleteByNo(r.ctx, no) {
		return fmt.Errorf("science plan #%d not found", no)
	}
	fmt.Fprintf(r.out, "Science plan #%d deleted.\n", no)
	return nil
}

// cmdHistory shows the most recent lifecycle events, optionally for one plan.
func (r *REPL) cmdHistory(args []string) error {
	if r.history == nil {
		return fmt.Errorf("event history is not enabled")
	}
	filter := events.EventFilter{Limit: 20}
	if len(args) > 0 {
		no, err := parsePlanNo(args)
		if err != nil {
			return err
		}
		filter.PlanNo = no
	}

	list := r.history.Events(filter)
	if len(list) == 0 {
		fmt.Fprintln(r.out, "No events recorded.")
		return nil
	}
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, e := range list {
		line := fmt.Sprintf("%s  %-20s #%-3d %s", e.Timestamp.Format("15:04:05"), e.Type, e.PlanNo, e.Message)
		if e.Severity != events.SeverityInfo {
			line = yellow(line)
		}
		fmt.Fprintln(r.out, line)
	}
	return nil
}

// cmdData lists a plan's astronomical data, or attaches a file when one
// is given.
func (r *REPL) cmdData(args []string) error {
	no, err := parsePlanNo(args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		data := types.AstronomicalData{FileName: args[1], Description: strings.Join(args[2:], " ")}
		if err := r.engine.AttachAstronomicalData(r.ctx, no, data); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Attached %s to science plan #%d.\n", data.FileName, no)
		return nil
	}

	list, err := r.engine.AstronomicalData(no)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintf(r.out, "No astronomical data for science plan #%d.\n", no)
		return nil
	}
	for _, d := range list {
		fmt.Fprintf(r.out, "  %s  %s  %s\n", d.CollectedAt.Format("2006-01-02 15:04"), d.FileName, d.Description)
	}
	return nil
}
