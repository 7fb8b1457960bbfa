package cmd

import (
	"fmt"

	"github.com/xolan/timora/internal/cli"
)

// seedFile holds the global --seed flag
var seedFile string

// loadedDeps returns the CLI deps with the store filled from the --seed
// flag, the configured seed file or the demo data. On failure the error is
// reported, Exit(1) is called and ok is false.
func loadedDeps() (deps *cli.Deps, ok bool) {
	deps = cli.GetDeps()
	if _, err := deps.Services.Bootstrap(seedFile); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load seed data")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'timora seed' to see a valid seed file")
		deps.Exit(1)
		return deps, false
	}
	return deps, true
}
