package handlers

import (
	"fmt"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/seed"
)

// PrintSeed writes the built-in demo dataset as YAML. The output is a valid
// seed file for the --seed flag or the seed_file setting.
func PrintSeed(deps *cli.Deps) {
	data, err := seed.Marshal(seed.Demo(deps.Services.Now()))
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = deps.Stdout.Write(data)
}

// ApplySeed loads a seed file into the store and reports which collections
// it filled
func ApplySeed(deps *cli.Deps, path string) {
	res, err := deps.Services.Bootstrap(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	if !res.Any() {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing loaded: store already populated")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Loaded: projects=%t employees=%t tasks=%t time_entries=%t\n",
		res.Projects, res.Employees, res.Tasks, res.TimeEntries)
}
