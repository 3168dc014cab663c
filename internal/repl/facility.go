package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/catalog"
)

func (r *REPL) cmdSchedule(args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "list") {
		dates := r.engine.UnavailableDates()
		if len(dates) == 0 {
			fmt.Fprintln(r.out, "No unavailable dates.")
			return nil
		}
		for _, d := range dates {
			fmt.Fprintf(r.out, "  %s\n", d.Format("2006-01-02"))
		}
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("usage: schedule add|remove|check <yyyy-mm-dd>")
	}
	date, err := parseDate(args[1])
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "add":
		r.printResult(r.engine.AddUnavailableDate(r.ctx, date))
	case "remove":
		r.printResult(r.engine.DeleteUnavailableDate(r.ctx, date))
	case "check":
		if r.engine.IsUnavailable(date) {
			fmt.Fprintf(r.out, "%s is unavailable.\n", date.Format("2006-01-02"))
		} else {
			fmt.Fprintf(r.out, "%s is available.\n", date.Format("2006-01-02"))
		}
	default:
		return fmt.Errorf("unknown schedule action %q", args[0])
	}
	return nil
}

// cmdCatalog lists targets. The argument may be a hemisphere, a quadrant
// or a constellation name.
func (r *REPL) cmdCatalog(args []string) error {
	cat := r.engine.Catalog()
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%d targets: %s\n", cat.Len(), strings.Join(cat.Names(), ", "))
		return nil
	}

	query := strings.Join(args, " ")
	var filter catalog.Filter
	switch q := catalog.Quadrant(strings.ToUpper(query)); {
	case strings.EqualFold(query, string(catalog.North)):
		filter.Hemisphere = catalog.North
	case strings.EqualFold(query, string(catalog.South)):
		filter.Hemisphere = catalog.South
	case q.IsValid():
		filter.Quadrant = q
	default:
		c, ok := cat.Get(query)
		if !ok {
			return fmt.Errorf("%q is not in the star catalogue", query)
		}
		printConstellation(r, c)
		return nil
	}

	for _, c := range cat.Find(filter) {
		printConstellation(r, c)
	}
	return nil
}

func printConstellation(r *REPL, c catalog.Constellation) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.out, "  %-16s %-24s %s  %8.3f sq deg  lat %d to %d  best month %d\n",
		green(c.Name), c.EnglishName, c.Quadrant, c.Area, c.StartLatitude, c.EndLatitude, c.Month)
}

func (r *REPL) cmdConfig(args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "list") {
		fmt.Fprintln(r.out, r.console.ConfigurationsSummary())
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: config add <path>")
		}
		if !r.console.AddConfiguration(args[1]) {
			return fmt.Errorf("configuration %q is already installed", args[1])
		}
		fmt.Fprintf(r.out, "Configuration %s installed.\n", args[1])
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: config remove <index>")
		}
		i, err := strconv.Atoi(args[1])
		if err != nil || !r.console.RemoveConfiguration(i) {
			return fmt.Errorf("no configuration at index %s", args[1])
		}
		fmt.Fprintf(r.out, "Configuration %d removed.\n", i)
	case "default":
		fmt.Fprintln(r.out, r.console.DefaultConfiguration())
	case "current":
		fmt.Fprintln(r.out, r.console.CurrentConfiguration())
	case "update":
		fmt.Fprintln(r.out, r.console.UpdateConfiguration())
	default:
		return fmt.Errorf("unknown config action %q", args[0])
	}
	return nil
}

func (r *REPL) cmdLiveView(args []string) error {
	fmt.Fprintf(r.out, "Telescope live view: %s\n", r.console.LiveViewURL())
	return nil
}

func (r *REPL) cmdExec(args []string) error {
	out, err := r.console.ExecuteCommand(r.ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, out)
	return nil
}

func (r *REPL) cmdOffline(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: offline on|off")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		r.engine.SetOffline(true)
		fmt.Fprintln(r.out, "Facility offline: new science plans will be refused.")
	case "off":
		r.engine.SetOffline(false)
		fmt.Fprintln(r.out, "Facility online.")
	default:
		return fmt.Errorf("usage: offline on|off")
	}
	return nil
}
