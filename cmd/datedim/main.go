// Package main is the entrypoint for the datedim CLI.
// The CLI provides commands for generating the date dimension table,
// listing holiday calendars, and running diagnostics.
package main

import (
	"os"

	"github.com/datedim-labs/datedim/internal/cli"
)

// Build information (set via ldflags)
var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	os.Exit(cli.New().Execute())
}
