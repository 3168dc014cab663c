package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gemini-ocs/ocs/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [name]",
	Short: "List observation targets",
	Long:  `List the constellations plans may target, or show one by name (any case).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := rt.engine.Catalog()
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

		if len(args) == 1 {
			c, ok := cat.Get(args[0])
			if !ok {
				return fmt.Errorf("%q is not in the star catalogue", args[0])
			}
			fmt.Printf("\n%s (%s)\n", cyan(c.Name), c.EnglishName)
			fmt.Printf("  Quadrant:   %s (%s hemisphere)\n", c.Quadrant, c.Hemisphere())
			fmt.Printf("  Area:       %.3f sq deg\n", c.Area)
			fmt.Printf("  Latitudes:  %d to %d\n", c.StartLatitude, c.EndLatitude)
			fmt.Printf("  Best month: %d\n\n", c.Month)
			return nil
		}

		hemisphere, _ := cmd.Flags().GetString("hemisphere")
		quadrant, _ := cmd.Flags().GetString("quadrant")
		month, _ := cmd.Flags().GetInt("month")

		filter := catalog.Filter{
			Hemisphere: catalog.Hemisphere(strings.ToLower(hemisphere)),
			Quadrant:   catalog.Quadrant(strings.ToUpper(quadrant)),
			Month:      month,
		}
		if filter.Quadrant != "" && !filter.Quadrant.IsValid() {
			return fmt.Errorf("invalid quadrant %q", quadrant)
		}
		if month < 0 || month > 12 {
			return fmt.Errorf("month must be between 1 and 12 (got %d)", month)
		}

		found := cat.Find(filter)
		fmt.Printf("\n%s\n", cyan(fmt.Sprintf("%d targets", len(found))))
		for _, c := range found {
			fmt.Printf("  %-16s %-24s %s  month %2d\n", c.Name, c.EnglishName, c.Quadrant, c.Month)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("hemisphere", "", "Filter by hemisphere (north, south)")
	catalogCmd.Flags().StringP("quadrant", "q", "", "Filter by quadrant (NQ1-NQ4, SQ1-SQ4)")
	catalogCmd.Flags().IntP("month", "m", 0, "Filter by best viewing month (1-12)")
	rootCmd.AddCommand(catalogCmd)
}
