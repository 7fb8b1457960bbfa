package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/app"
	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/logging"
	"github.com/xolan/timora/internal/mcp"
	"github.com/xolan/timora/internal/service"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout.

The server exposes tools for tasks, projects, employees, time entries, the
focus timer and project statistics. The timer advances once per second in
the background while it runs. Logs go to stderr, or to log_file when set,
because stdout carries the protocol.

Example client configuration:

  {"command": "timora", "args": ["mcp", "--seed", "/path/to/team.yaml"]}`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMCP()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// runMCP builds services with a stderr logger and the background tick
// driver, then serves until stdin closes
func runMCP() {
	deps := cli.GetDeps()
	cfg := deps.Config

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}, deps.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check the log_file setting")
		deps.Exit(1)
		return
	}
	defer func() { _ = closer.Close() }()

	services := service.NewServicesWithPaths(deps.Services.Config.GetPath(), cfg, service.Options{Logger: logger})
	defer services.Close()

	if _, err := services.Bootstrap(seedFile); err != nil {
		logger.Error("failed to load seed data", slog.Any("error", err))
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	logger.Info("mcp server starting", slog.String("name", app.Name), slog.String("version", app.Version))
	if err := mcp.Serve(mcp.NewServer(services)); err != nil {
		logger.Error("mcp server stopped", slog.Any("error", err))
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}
