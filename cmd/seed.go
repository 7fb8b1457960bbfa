package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/cli/handlers"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print or check seed data",
	Long: `Print the built-in demo dataset as YAML, or check a seed file.

The printed dataset is a valid seed file: save it, edit it, and start
timora with --seed or the seed_file setting to use your own team.

Examples:

  timora seed > team.yaml               Write the demo dataset
  timora seed --check team.yaml         Load a seed file and report what it holds`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().String("check", "", "Seed file to validate by loading it into an empty store")
}

func runSeed(cmd *cobra.Command) {
	check, _ := cmd.Flags().GetString("check")
	deps := cli.GetDeps()
	if check != "" {
		handlers.ApplySeed(deps, check)
		return
	}
	handlers.PrintSeed(deps)
}
