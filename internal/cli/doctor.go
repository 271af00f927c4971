package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/sweet/internal/config"
	"github.com/example/sweet/internal/db"
	"github.com/example/sweet/internal/ddl"
	"github.com/example/sweet/internal/demo"
	"github.com/example/sweet/pkg/sweet"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the sweet environment",
		Long: `Environment health check for sweet.

Validates:
- Config file (.sweet/config.json), if present
- sqlite driver availability
- Baseline and configured components
- Example model definitions and their DDL

Examples:
  sweet doctor              # Run full health check
  sweet doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDriver(),
				checkComponents(),
				checkModels(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress output, exit code only")
	return cmd
}

func checkConfig() CheckResult {
	cwd, err := os.Getwd()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: err.Error()}
	}
	if _, err := config.Load(cwd); err != nil {
		return CheckResult{Name: "Config", Status: "⚠", Details: "no .sweet/config.json, defaults apply"}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

func checkDriver() CheckResult {
	dbh, err := db.Open(":memory:")
	if err != nil {
		return CheckResult{Name: "sqlite driver", Status: "✗", Details: err.Error()}
	}
	defer dbh.Close()
	if _, err := dbh.Exec("SELECT 1"); err != nil {
		return CheckResult{Name: "sqlite driver", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "sqlite driver", Status: "✓"}
}

func checkComponents() CheckResult {
	required := append([]string(nil), sweet.BaselineComponents...)
	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := config.Load(cwd); err == nil {
			required = append(required, cfg.Components...)
		}
	}

	probe := sweet.NewModel("Doctor.Probe")
	if err := probe.LoadComponents(required...); err != nil {
		return CheckResult{Name: "Components", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "Components", Status: "✓"}
}

func checkModels() CheckResult {
	targets, err := demo.World()
	if err != nil {
		return CheckResult{Name: "Models", Status: "✗", Details: err.Error()}
	}
	for _, t := range targets {
		if _, err := ddl.CreateTableSQL(t.Schema()); err != nil {
			return CheckResult{Name: "Models", Status: "✗", Details: err.Error()}
		}
	}
	return CheckResult{Name: "Models", Status: "✓"}
}
