package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/sweet/internal/config"
	"github.com/example/sweet/internal/db"
	"github.com/example/sweet/internal/ddl"
	"github.com/example/sweet/internal/demo"
)

// DeployCmd returns the deploy command that creates the declared tables.
func DeployCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create the example tables in sqlite",
		Long: `Builds the World example models and creates their tables and indexes.

The database location is taken from --db, then .sweet/config.json, then the
default ~/.sweet/sweet.db.

Examples:
  sweet deploy
  sweet deploy --db ./world.db
  sweet deploy --db :memory:    # dry run against a throwaway database`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDBPath(dbPath)
			if err != nil {
				return err
			}

			targets, err := demo.World()
			if err != nil {
				return err
			}

			dbh, err := db.Open(path)
			if err != nil {
				return err
			}
			defer dbh.Close()

			if err := ddl.Deploy(dbh, targets...); err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("✓ deployed %d tables", len(targets))
			fmt.Printf(" to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path (default from config)")
	return cmd
}

// resolveDBPath picks the database path: flag, then config file, then the
// default location.
func resolveDBPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := config.Load(cwd); err == nil && cfg.DatabasePath != "" {
			return cfg.DatabasePath, nil
		}
	}
	return db.DefaultPath()
}
