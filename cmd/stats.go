package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tracked time per project",
	Long: `Show aggregated statistics for tracked time.

Displays the overall totals (hours, tasks, employees, time entries) followed
by one block per project with its hours, task count and the time each
employee tracked against it. Projects are ordered by hours, most first.

Examples:

  timora stats                       Human-readable summary
  timora stats --format json         Machine-readable report
  timora stats --format csv          One row per project and employee`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("format", "f", handlers.FormatText, "Output format: text, json or csv")
	_ = statsCmd.RegisterFlagCompletionFunc("format", completeFormat)
}

func runStats(cmd *cobra.Command) {
	format, _ := cmd.Flags().GetString("format")
	deps, ok := loadedDeps()
	if !ok {
		return
	}
	handlers.ShowStats(deps, format)
}
