// Package main is the entry point of the vogel CLI.
//
// All commands live in internal/cli; main only injects the build
// information set through ldflags and runs the root command.
package main

import (
	"github.com/katalvlaran/vogel/internal/cli"
)

// version, commit and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
