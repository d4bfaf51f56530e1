package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/cookbook/internal/config"
	cberrors "github.com/dbmrq/cookbook/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file with every setting at its default value.

The file goes to the path given by --config, or to the default location in
your user config directory. Use --force to overwrite an existing file.

Examples:
  cookbook init                          # Write the default config
  cookbook init --config ./cookbook.yaml # Write it somewhere else
  cookbook init --force                  # Overwrite an existing config`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

func addInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit writes the default configuration.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cberrors.WithSuggestion(cberrors.ErrConfig,
			"config file already exists: "+path,
			"Use --force to overwrite it").WithDetails("path", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cberrors.Wrap(err, cberrors.ErrConfig, "failed to access config file").WithDetails("path", path)
	}

	if err := config.Save(path, config.NewConfig()); err != nil {
		return cberrors.Wrap(err, cberrors.ErrConfig, "failed to write config file").WithDetails("path", path)
	}

	cmd.Printf("Wrote %s\n", path)
	cmd.Println("Edit it to change the API address, storage or theme.")
	return nil
}
