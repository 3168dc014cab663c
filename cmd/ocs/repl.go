package main

import (
	"strings"

	"github.com/gemini-ocs/ocs/internal/repl"
	"github.com/gemini-ocs/ocs/internal/types"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive operator shell",
	Long: `Start an interactive shell over a fresh in-memory engine.

The shell acts as one astronomer (who creates, tests and submits plans)
and one science observer (who validates plans and creates observing
programs). Type 'help' in the shell for available commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		astronomer, _ := cmd.Flags().GetString("astronomer")
		observer, _ := cmd.Flags().GetString("observer")

		r, err := repl.New(&repl.Config{
			Engine:     rt.engine,
			Console:    rt.console,
			History:    rt.history,
			Astronomer: newAstronomer(astronomer),
			Observer:   newObserver(observer),
			Telescopes: rt.facility.Telescopes,
		})
		if err != nil {
			return err
		}
		return r.Run(cmd.Context())
	},
}

func newAstronomer(name string) types.Astronomer {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return types.Astronomer{ID: 1, FirstName: first, LastName: last}
}

func newObserver(name string) types.ScienceObserver {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return types.ScienceObserver{ID: 1, FirstName: first, LastName: last, Department: "Science Operations"}
}

func init() {
	replCmd.Flags().String("astronomer", "Vera Rubin", "Name of the astronomer creating plans")
	replCmd.Flags().String("observer", "Science Observer", "Name of the science observer validating plans")
	rootCmd.AddCommand(replCmd)
}
