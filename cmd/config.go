package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for timora.

Shows the configuration file location, whether it exists, and all current
settings. timora works without a configuration file; every setting has a
default.

Examples:

  timora config                       Show all current settings
  timora config init                  Write a commented sample config.toml
  timora config path                  Print the config file location

Configuration file location:
  ~/.config/timora/config.toml        Linux
  ~/Library/Application Support/timora/config.toml   macOS
  %AppData%\timora\config.toml        Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfigPath(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
}
