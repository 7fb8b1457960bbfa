package main

import (
	"fmt"
	"os"

	"github.com/xolan/timora/cmd"
	"github.com/xolan/timora/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run validates the config location, executes the root command and returns
// the process exit code
func run() int {
	cmd.SetVersionInfo(version, commit, date)

	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(os.Stderr, "Details: %v\n", err)
		return 1
	}
	if _, err := config.LoadOrDefault(configPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		_, _ = fmt.Fprintf(os.Stderr, "Hint: Fix or remove %s\n", configPath)
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
