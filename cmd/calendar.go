package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli/handlers"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month calendar of task due dates",
	Long: `Show a month grid with the days that have tasks due, followed by the
list of tasks due that month.

Today is shown as [15*]; other days with tasks due carry a *. The first
day of the week follows the week_start_day setting.

Examples:

  timora calendar                       Current month
  timora calendar --month 2024-03       March 2024`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCalendar(cmd)
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringP("month", "m", "", "Month to show as YYYY-MM (default: current month)")
	_ = calendarCmd.RegisterFlagCompletionFunc("month", completeMonth)
}

func runCalendar(cmd *cobra.Command) {
	month, _ := cmd.Flags().GetString("month")
	deps, ok := loadedDeps()
	if !ok {
		return
	}
	handlers.ShowCalendar(deps, month)
}
