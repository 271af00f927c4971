package ddl_test

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/sweet/internal/ddl"
	"github.com/example/sweet/pkg/sweet"
)

// defineWorld builds the Country and Person models used by these tests.
func defineWorld(t *testing.T) (country, person *sweet.Model) {
	t.Helper()

	country = sweet.NewModel("World.Country")
	if err := sweet.Setup(country, func(d *sweet.Definition) {
		d.Column("id", "integer")
		d.Columns("name", "code")
		d.PrimaryKey("id")
		d.Call("autoIncrement")
		d.Call("addUniqueIndex", "country_code", "code")
	}); err != nil {
		t.Fatalf("Setup country failed: %v", err)
	}

	person = sweet.NewModel("World.Person")
	if err := sweet.Setup(person, func(d *sweet.Definition) {
		d.Column("id", "integer")
		d.Columns("name", "country_id")
		d.Column("country_id", "integer")
		d.PrimaryKey("id")
		d.BelongsTo("country", "World.Country", "country_id")
	}); err != nil {
		t.Fatalf("Setup person failed: %v", err)
	}
	return country, person
}

func TestCreateTableSQL(t *testing.T) {
	country, person := defineWorld(t)

	countrySQL, err := ddl.CreateTableSQL(country.Schema())
	if err != nil {
		t.Fatalf("CreateTableSQL failed: %v", err)
	}
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS country",
		"id INTEGER PRIMARY KEY AUTOINCREMENT",
		"name TEXT",
	} {
		if !strings.Contains(countrySQL, want) {
			t.Errorf("country DDL missing %q:\n%s", want, countrySQL)
		}
	}

	personSQL, err := ddl.CreateTableSQL(person.Schema())
	if err != nil {
		t.Fatalf("CreateTableSQL failed: %v", err)
	}
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS person",
		"country_id INTEGER",
		"PRIMARY KEY (id)",
		"FOREIGN KEY (country_id) REFERENCES country(id)",
	} {
		if !strings.Contains(personSQL, want) {
			t.Errorf("person DDL missing %q:\n%s", want, personSQL)
		}
	}
}

func TestCreateTableSQLErrors(t *testing.T) {
	if _, err := ddl.CreateTableSQL(&sweet.Schema{}); err == nil {
		t.Error("empty schema accepted")
	}
	if _, err := ddl.CreateTableSQL(&sweet.Schema{Table: "empty"}); err == nil {
		t.Error("table without columns accepted")
	}
}

func TestCreateIndexSQL(t *testing.T) {
	country, _ := defineWorld(t)

	stmts := ddl.CreateIndexSQL(country.Schema())
	if len(stmts) != 1 {
		t.Fatalf("index statements = %d, want 1", len(stmts))
	}
	if !strings.Contains(stmts[0], "CREATE UNIQUE INDEX IF NOT EXISTS country_code ON country (code)") {
		t.Errorf("unexpected index SQL: %s", stmts[0])
	}
}

func TestDeploy(t *testing.T) {
	country, person := defineWorld(t)

	dbh, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	defer dbh.Close()
	// Every pool connection gets its own :memory: database.
	dbh.SetMaxOpenConns(1)
	if _, err := dbh.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("pragma failed: %v", err)
	}

	// Pass the dependent table first; Deploy reorders it after country.
	if err := ddl.Deploy(dbh, person, country); err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}

	if _, err := dbh.Exec(`INSERT INTO country (name, code) VALUES ('Portugal', 'PT')`); err != nil {
		t.Fatalf("insert country failed: %v", err)
	}
	if _, err := dbh.Exec(`INSERT INTO person (id, name, country_id) VALUES (1, 'Ana', 1)`); err != nil {
		t.Fatalf("insert person failed: %v", err)
	}

	// The foreign key constraint made it into the database.
	if _, err := dbh.Exec(`INSERT INTO person (id, name, country_id) VALUES (2, 'Bo', 99)`); err == nil {
		t.Error("insert with dangling foreign key succeeded")
	}

	// Deploy is idempotent thanks to IF NOT EXISTS.
	if err := ddl.Deploy(dbh, country, person); err != nil {
		t.Fatalf("second Deploy failed: %v", err)
	}
}
