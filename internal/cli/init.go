package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/config"
)

var (
	initDB     string
	initStrict bool
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default exlog.yaml in the current directory",
	Long: `Init creates exlog.yaml with the default settings so they can be edited.

Examples:
  exlog init
  exlog init --database ~/exercise.db --strict-intensity
  exlog init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initDB, "database", "", "database path to write into the config")
	initCmd.Flags().BoolVar(&initStrict, "strict-intensity", false, "only accept Low, Medium or High intensities")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing exlog.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	return writeDefaultConfig(cmd, cwd)
}

func writeDefaultConfig(cmd *cobra.Command, dir string) error {
	path := filepath.Join(dir, config.FileName)

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	c := config.DefaultConfig()
	if initDB != "" {
		c.Database.Path = initDB
	}
	c.Entry.StrictIntensity = initStrict
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.Save(path); err != nil {
		return err
	}
	logger.Info("config written", "path", path)

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  database: %s\n", c.Database.Path)
	return nil
}
