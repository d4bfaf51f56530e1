package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/tui"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive recipe browser",
	Long: `Open the interactive recipe browser.

This is what cookbook does when run without a subcommand. Press ? inside
the browser for the key bindings.

Examples:
  cookbook                       # Open the browser
  cookbook browse -v             # Open it with debug logging
  cookbook --config ./dev.yaml   # Use another config file`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runBrowse starts the TUI.
func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	ctx, e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	runner, err := tui.NewRunner(ctx, tui.RunnerOptions{
		Options: tui.Options{
			Fetcher: e.client,
			Store:   e.store,
			State:   session.NewState(e.cfg.UI.Theme),
			Logger:  e.logger,
			Order:   e.cfg.UI.Sort,
		},
		WatchPath: e.watchPath,
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}
