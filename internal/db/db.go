// Package db manages the sqlite connection the CLI deploys schemas into.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the default database location, ~/.sweet/sweet.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".sweet", "sweet.db"), nil
}

// Open opens (creating if needed) the sqlite database at path and enables
// foreign key enforcement. ":memory:" is passed through untouched.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dbh, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := dbh.Exec("PRAGMA foreign_keys = ON"); err != nil {
		dbh.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return dbh, nil
}
