package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "timora",
	Short: "Tasks, calendar and focus timer for small teams",
	Long: `timora keeps a team's tasks, projects and tracked time in one place.

Usage:
  timora                                  Launch the terminal UI
  timora tasks --today                    List tasks due today
  timora calendar --month 2024-01         Show a month of due dates
  timora stats --format csv               Time per project and employee
  timora mcp                              Serve the MCP tools over stdio
  timora seed > team.yaml                 Write the demo dataset as YAML
  timora --seed team.yaml                 Start from a seed file

State lives in memory for the lifetime of the process. At startup the store
is filled from --seed, the seed_file setting, or the built-in demo data.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML seed file loaded into the empty store")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	app.Version, app.Commit, app.Date = version, commit, date
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		app.Name + " version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
