// Package main is the entry point for the cookbook CLI.
package main

import "github.com/dbmrq/cookbook/cmd/cookbook/cmd"

// Version information, set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
