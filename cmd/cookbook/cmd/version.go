package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/cookbook/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Print the cookbook version together with the commit, build date
and Go toolchain it was built with.

Examples:
  cookbook version           # Build details
  cookbook version --json    # The same, as JSON
  cookbook version --check   # Also look for a newer release`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

func addVersionFlags(c *cobra.Command) {
	c.Flags().BoolP("check", "c", false, "Check for a newer release")
	c.Flags().Bool("json", false, "Print build details as JSON")
}

// checker is replaced in tests.
var checker = version.NewChecker

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := writeJSON(cmd.OutOrStdout(), info); err != nil {
			return err
		}
	} else {
		cmd.Println(info.FullString())
	}

	if check, _ := cmd.Flags().GetBool("check"); !check {
		return nil
	}
	ctx, stop := signalContext(cmd)
	defer stop()
	return reportUpdate(ctx, cmd)
}

// reportUpdate prints whether a newer release than Version exists.
func reportUpdate(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c := checker()
	c.UserAgent = "cookbook/" + Version
	rel, err := c.CheckForUpdate(ctx, Version)
	if err != nil {
		return err
	}

	cmd.Println()
	if rel == nil {
		cmd.Println("✓ You are running the latest version.")
		return nil
	}
	cmd.Printf("📦 A new version is available: %s (current: %s)\n", rel.TagName, Version)
	cmd.Printf("Release notes: %s\n", rel.HTMLURL)
	return nil
}
