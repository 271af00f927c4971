package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/sweet/internal/cli"
	"github.com/example/sweet/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "sweet",
		Short:   "sweet - declarative table definitions over sqlite",
		Version: version.String(),
		Long: `sweet is a CLI companion to the sweet library. It builds the example
models, shows their schemas in several formats, and deploys them to sqlite.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.SchemaCmd())
	rootCmd.AddCommand(cli.DeployCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
