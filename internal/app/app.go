// Package app holds process-wide identity constants.
package app

// Name is the application name, used for the config directory and logs
const Name = "timora"

// Version information, set via ldflags at build time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
