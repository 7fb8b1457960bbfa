package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for timora.

Views available:
  - Tasks: Today's tasks with completion progress
  - Calendar: Month grid of due dates
  - Timer: Focus timer bound to a task
  - Assign: Search, filter and assign tasks
  - Stats: Time per project and employee
  - Config: View configuration and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-6: Jump to specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI bootstraps the store and runs the TUI application
func runTUI() {
	deps, ok := loadedDeps()
	if !ok {
		return
	}
	defer deps.Services.Close()

	if err := tui.Run(deps.Services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
