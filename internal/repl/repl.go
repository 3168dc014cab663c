package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/console"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/lifecycle"
	"github.com/gemini-ocs/ocs/internal/types"
)

// errExit is returned by the exit command to stop the loop.
var errExit = errors.New("exit")

// REPL represents the interactive operator shell
type REPL struct {
	engine     *lifecycle.Engine
	console    *console.Console
	history    *events.Log
	astronomer types.Astronomer
	observer   types.ScienceObserver
	telescopes []string

	rl       *readline.Instance
	ctx      context.Context
	out      io.Writer
	ask      func(prompt string) (string, error)
	commands map[string]CommandHandler
}

// CommandHandler handles a specific command
type CommandHandler func(args []string) error

// Config holds REPL configuration
type Config struct {
	Engine  *lifecycle.Engine
	Console *console.Console
	// History is the event log the engine records to. Optional.
	History    *events.Log
	Astronomer types.Astronomer
	Observer   types.ScienceObserver
	// Telescopes offered when creating plans. Defaults to the Gemini sites.
	Telescopes []string
	// Out receives all output. Defaults to stdout.
	Out io.Writer
}

// New creates a new REPL instance
func New(cfg *Config) (*REPL, error) {
	if cfg == nil || cfg.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if cfg.Console == nil {
		return nil, fmt.Errorf("console is required")
	}

	r := &REPL{
		engine:     cfg.Engine,
		console:    cfg.Console,
		history:    cfg.History,
		astronomer: cfg.Astronomer,
		observer:   cfg.Observer,
		telescopes: cfg.Telescopes,
		out:        cfg.Out,
		ctx:        context.Background(),
		commands:   make(map[string]CommandHandler),
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if len(r.telescopes) == 0 {
		r.telescopes = types.Telescopes()
	}
	r.ask = func(string) (string, error) { return "", io.EOF }

	r.registerCommands()
	return r, nil
}

// Run starts the REPL loop
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	prompt := cyan("ocs> ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		AutoComplete:      r.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            r.out,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	r.rl = rl
	r.ask = func(p string) (string, error) {
		rl.SetPrompt(p)
		defer rl.SetPrompt(prompt)
		return rl.Readline()
	}

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(r.out, "%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	if handler, ok := r.commands[command]; ok {
		return handler(args)
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(r.out, "%s Unknown command %q. Use 'help' for available commands.\n", yellow("Note:"), command)
	return nil
}

// registerCommands registers all built-in commands
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit

	r.commands["create"] = r.cmdCreate
	r.commands["list"] = r.cmdList
	r.commands["show"] = r.cmdShow
	r.commands["summary"] = r.cmdSummary
	r.commands["test"] = r.cmdTest
	r.commands["submit"] = r.cmdSubmit
	r.commands["validate"] = r.cmdValidate
	r.commands["invalidate"] = r.cmdInvalidate
	r.commands["complete"] = r.cmdComplete
	r.commands["cancel"] = r.cmdCancel
	r.commands["delete"] = r.cmdDelete
	r.commands["history"] = r.cmdHistory

	r.commands["program"] = r.cmdProgram
	r.commands["programs"] = r.cmdPrograms
	r.commands["data"] = r.cmdData
	r.commands["options"] = r.cmdOptions

	r.commands["schedule"] = r.cmdSchedule
	r.commands["catalog"] = r.cmdCatalog
	r.commands["config"] = r.cmdConfig
	r.commands["liveview"] = r.cmdLiveView
	r.commands["exec"] = r.cmdExec
	r.commands["offline"] = r.cmdOffline
}

// completer offers the registered command names.
func (r *REPL) completer() *readline.PrefixCompleter {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		if name != "?" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}

func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n", cyan("Gemini Observatory Control System"))
	fmt.Fprintf(r.out, "Astronomer: %s  Observer: %s\n", r.astronomer.FullName(), r.observer.FullName())
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"create", "Create a science plan (prompts for each field)"},
		{"list [status|drafts]", "List science plans"},
		{"show <no>", "Show a science plan"},
		{"summary", "Count plans per status"},
		{"test <no> [--dry-run]", "Test a plan; --dry-run leaves it CREATED"},
		{"submit <no>", "Submit a tested plan"},
		{"validate <no>", "Validate a submitted plan"},
		{"invalidate <no>", "Reject a submitted plan"},
		{"program <no>", "Create the observing program for a validated plan"},
		{"programs", "List observing programs"},
		{"complete <no>", "Mark a running plan complete"},
		{"cancel <no>", "Cancel a plan that has not started"},
		{"data <no> [file [description]]", "List or attach astronomical data"},
		{"delete <no>|all", "Delete one plan or all plans"},
		{"history [no]", "Show lifecycle events"},
		{"options", "Show instrument and image options"},
		{"schedule [add|remove|check <yyyy-mm-dd>]", "Manage unavailable dates"},
		{"catalog [north|south|<quadrant>|<name>]", "Browse observation targets"},
		{"config [add <path>|remove <index>|default|current|update]", "Manage configurations"},
		{"liveview", "Show the telescope live view address"},
		{"exec <command>", "Send a command to the telescope"},
		{"offline on|off", "Simulate a facility outage"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the REPL"},
	}
	for _, cmd := range commands {
		fmt.Fprintf(r.out, "  %s  %s\n", green(cmd.name), cmd.desc)
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *REPL) cmdExit(args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.out, "\n%s Goodbye!\n", green("✓"))
	if r.rl != nil {
		r.rl.Close()
	}
	return errExit
}

// printResult shows a lifecycle outcome.
func (r *REPL) printResult(res types.Result) {
	if res.OK {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(r.out, "%s %s\n", green("✓"), res.Message)
		return
	}
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(r.out, "%s %s (%s)\n", yellow("✗"), res.Message, res.Code)
}

func parsePlanNo(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("plan number is required")
	}
	no, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || no <= 0 {
		return 0, fmt.Errorf("invalid plan number %q", args[0])
	}
	return no, nil
}
