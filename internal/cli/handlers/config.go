package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timora/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "acting_employee: %s\n", cfg.ActingEmployee)
	_, _ = fmt.Fprintf(deps.Stdout, "duration_source: %s\n", cfg.DurationSource)
	_, _ = fmt.Fprintf(deps.Stdout, "seed_file:       %s\n", orNone(cfg.SeedFile))
	_, _ = fmt.Fprintf(deps.Stdout, "load_demo_data:  %t\n", cfg.LoadDemoData)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day:  %s\n", cfg.WeekStartDay)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:       %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "log_format:      %s\n", cfg.LogFormat)
	_, _ = fmt.Fprintf(deps.Stdout, "log_file:        %s\n", orNone(cfg.LogFile))
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// ShowConfigPath prints the config file location
func ShowConfigPath(deps *cli.Deps) {
	_, _ = fmt.Fprintln(deps.Stdout, deps.Services.Config.GetPath())
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
