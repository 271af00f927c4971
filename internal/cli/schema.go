package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/sweet/internal/ddl"
	"github.com/example/sweet/internal/demo"
	"github.com/example/sweet/pkg/sweet"
)

// SchemaCmd returns the schema command for inspecting declared models.
func SchemaCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the schemas of the example models",
		Long: `Builds the World example models and prints their schemas.

Examples:
  sweet schema                # human-readable listing
  sweet schema --format sql   # CREATE TABLE statements
  sweet schema --format yaml  # machine-readable dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := demo.World()
			if err != nil {
				return err
			}

			switch format {
			case "table":
				printTables(targets)
				return nil
			case "sql":
				return printSQL(targets)
			case "yaml":
				return printYAML(targets)
			default:
				return fmt.Errorf("unknown format %q (want table, sql or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, sql or yaml")
	return cmd
}

func printTables(targets []sweet.Target) {
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	for _, t := range targets {
		s := t.Schema()
		heading.Printf("%s", s.Table)
		dim.Printf("  (%s)\n", t.ModelName())

		for _, c := range s.Columns {
			marker := ""
			if isPrimaryKey(s, c.Name) {
				marker = color.New(color.FgYellow).Sprint(" [pk]")
			}
			notNull := ""
			if c.NotNull {
				notNull = " not null"
			}
			fmt.Printf("  %-14s %s%s%s\n", c.Name, c.Type, notNull, marker)
		}
		for _, r := range s.Relations {
			fmt.Printf("  %s %s -> %s", r.Kind, r.Name, r.Target)
			if r.ForeignKey != "" {
				fmt.Printf(" (%s)", r.ForeignKey)
			}
			fmt.Println()
		}
		for _, ix := range s.Indexes {
			kind := "index"
			if ix.Unique {
				kind = "unique index"
			}
			fmt.Printf("  %s %s (%s)\n", kind, ix.Name, strings.Join(ix.Columns, ", "))
		}
		fmt.Println()
	}
}

func printSQL(targets []sweet.Target) error {
	for _, t := range targets {
		stmt, err := ddl.CreateTableSQL(t.Schema())
		if err != nil {
			return err
		}
		fmt.Println(stmt)
		for _, ix := range ddl.CreateIndexSQL(t.Schema()) {
			fmt.Println(ix)
		}
		fmt.Println()
	}
	return nil
}

func printYAML(targets []sweet.Target) error {
	schemas := make([]*sweet.Schema, len(targets))
	for i, t := range targets {
		schemas[i] = t.Schema()
	}
	out, err := yaml.Marshal(schemas)
	if err != nil {
		return fmt.Errorf("failed to marshal schemas: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func isPrimaryKey(s *sweet.Schema, col string) bool {
	for _, pk := range s.PrimaryKey {
		if pk == col {
			return true
		}
	}
	return false
}
