// Package cmd provides the CLI commands for cookbook.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
)

// Version information, set from main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const rootLong = `Cookbook is a terminal recipe browser.

It fetches recipes from a remote catalogue, lets you search and sort them,
and keeps a list of saved recipes on disk. Run it without a subcommand to
open the interactive browser.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "cookbook",
	Short:        "Browse, search and save recipes from the terminal",
	Long:         rootLong,
	RunE:         runBrowse,
	SilenceUsage: true,
	// Execute prints errors itself so typed errors can show suggestions.
	SilenceErrors: true,
}

func init() {
	addPersistentFlags(rootCmd)
}

// addPersistentFlags registers the flags shared by every subcommand.
func addPersistentFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to config file (default: <user config dir>/cookbook/config.yaml)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	c.PersistentFlags().Bool("ephemeral", false, "Keep saved recipes in memory for this run only")
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("cookbook {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		if cberrors.IsUserError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

func printError(c *cobra.Command, err error) {
	if ce, ok := cberrors.As(err); ok {
		fmt.Fprint(c.ErrOrStderr(), ce.Format())
		return
	}
	fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
}
