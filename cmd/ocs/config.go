package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration resolved from the environment and the facility file.

Environment variables:
  OCS_LOG_LEVEL                debug, info, warn or error (default: info)
  OCS_FACILITY_FILE            YAML file with telescopes, configurations and unavailable dates
  OCS_LIVE_VIEW_URL            Telescope live view address
  OCS_COMMAND_RATE             Telescope commands per second, 0 disables limiting (default: 5)
  OCS_COMMAND_BURST            Commands allowed back to back (default: 5)
  OCS_MAX_CONCURRENT_COMMANDS  In-flight telescope commands, 0 for unbounded (default: 1)
  OCS_EVENT_LOG_CAPACITY       Lifecycle events kept in memory, 0 for unlimited (default: 1000)
  OCS_OFFLINE                  Refuse new science plans (default: false)`,
	Run: func(cmd *cobra.Command, args []string) {
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n", cyan("Engine"))
		fmt.Printf("  %s\n", engineCfg)

		fmt.Printf("\n%s\n", cyan("Facility"))
		fmt.Printf("  Telescopes:        %s\n", strings.Join(rt.facility.Telescopes, ", "))
		fmt.Printf("  Configurations:    %s\n", rt.console.ConfigurationsSummary())
		dates := rt.engine.UnavailableDates()
		if len(dates) == 0 {
			fmt.Printf("  Unavailable dates: %s\n", gray("none"))
		} else {
			parts := make([]string, len(dates))
			for i, d := range dates {
				parts[i] = d.Format(config.DateLayout)
			}
			fmt.Printf("  Unavailable dates: %s\n", strings.Join(parts, ", "))
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
