package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/sweet/internal/config"
)

// InitCmd returns the init command that writes a default config file.
func InitCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .sweet/config.json in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if _, err := config.Load(cwd); err == nil {
				return fmt.Errorf(".sweet/config.json already exists")
			}

			cfg := config.Default()
			cfg.DatabasePath = dbPath
			if err := config.Save(cwd, cfg); err != nil {
				return err
			}

			color.New(color.FgGreen).Println("✓ wrote .sweet/config.json")
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path to record in the config")
	return cmd
}
