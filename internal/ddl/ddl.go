// Package ddl turns sweet schemas into sqlite DDL and applies it.
package ddl

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/sweet/pkg/sweet"
)

// typeMap maps logical column types to sqlite storage types. Unknown types
// fall back to TEXT, which sqlite accepts for any value anyway.
var typeMap = map[string]string{
	"blob":     "BLOB",
	"bool":     "INTEGER",
	"boolean":  "INTEGER",
	"datetime": "DATETIME",
	"float":    "REAL",
	"int":      "INTEGER",
	"integer":  "INTEGER",
	"real":     "REAL",
	"string":   "TEXT",
	"text":     "TEXT",
}

func columnType(typ string) string {
	if t, ok := typeMap[strings.ToLower(typ)]; ok {
		return t
	}
	return "TEXT"
}

// CreateTableSQL renders a CREATE TABLE IF NOT EXISTS statement for the
// schema. belongs_to relations become FOREIGN KEY clauses referencing the
// target model's derived table name; the referenced column is assumed to be
// "id", the framework's conventional key.
func CreateTableSQL(s *sweet.Schema) (string, error) {
	if s.Table == "" {
		return "", fmt.Errorf("ddl: schema has no table name")
	}
	if len(s.Columns) == 0 {
		return "", fmt.Errorf("ddl: table %s has no columns", s.Table)
	}

	singleIntPK := len(s.PrimaryKey) == 1 && s.AutoIncrement
	if singleIntPK {
		if col, ok := s.Column(s.PrimaryKey[0]); !ok || columnType(col.Type) != "INTEGER" {
			singleIntPK = false
		}
	}

	var lines []string
	for _, c := range s.Columns {
		line := fmt.Sprintf("\t%s %s", c.Name, columnType(c.Type))
		if singleIntPK && c.Name == s.PrimaryKey[0] {
			line += " PRIMARY KEY AUTOINCREMENT"
		} else if c.NotNull {
			line += " NOT NULL"
		}
		if c.Default != "" {
			line += " DEFAULT " + c.Default
		}
		lines = append(lines, line)
	}

	if len(s.PrimaryKey) > 0 && !singleIntPK {
		lines = append(lines, fmt.Sprintf("\tPRIMARY KEY (%s)", strings.Join(s.PrimaryKey, ", ")))
	}

	for _, r := range s.Relations {
		if r.Kind != sweet.BelongsToRel {
			continue
		}
		lines = append(lines, fmt.Sprintf("\tFOREIGN KEY (%s) REFERENCES %s(id)",
			r.ForeignKey, sweet.DefaultTableName(r.Target)))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", s.Table, strings.Join(lines, ",\n")), nil
}

// CreateIndexSQL renders CREATE INDEX statements for the schema's declared
// indexes.
func CreateIndexSQL(s *sweet.Schema) []string {
	var stmts []string
	for _, ix := range s.Indexes {
		unique := ""
		if ix.Unique {
			unique = "UNIQUE "
		}
		stmts = append(stmts, fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s);",
			unique, ix.Name, s.Table, strings.Join(ix.Columns, ", ")))
	}
	return stmts
}

// Deploy creates the tables and indexes for the given targets. Targets
// without belongs_to relations are created first so that, in the common
// case, referenced tables exist before the tables that point at them.
func Deploy(dbh *sql.DB, targets ...sweet.Target) error {
	var independent, dependent []sweet.Target
	for _, t := range targets {
		if hasBelongsTo(t.Schema()) {
			dependent = append(dependent, t)
		} else {
			independent = append(independent, t)
		}
	}

	for _, t := range append(independent, dependent...) {
		s := t.Schema()
		stmt, err := CreateTableSQL(s)
		if err != nil {
			return err
		}
		if _, err := dbh.Exec(stmt); err != nil {
			return fmt.Errorf("ddl: create table %s: %w", s.Table, err)
		}
		for _, ix := range CreateIndexSQL(s) {
			if _, err := dbh.Exec(ix); err != nil {
				return fmt.Errorf("ddl: index on %s: %w", s.Table, err)
			}
		}
	}
	return nil
}

func hasBelongsTo(s *sweet.Schema) bool {
	for _, r := range s.Relations {
		if r.Kind == sweet.BelongsToRel {
			return true
		}
	}
	return false
}
