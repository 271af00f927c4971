package sweet

// RelationKind identifies how two models relate.
type RelationKind string

const (
	BelongsToRel  RelationKind = "belongs_to"
	HasManyRel    RelationKind = "has_many"
	HasOneRel     RelationKind = "has_one"
	ManyToManyRel RelationKind = "many_to_many"
)

// Column describes a single table column. Type is a logical type name
// ("text", "integer", "real", "blob"); storage-specific mapping happens at
// DDL generation time. The zero value of NotNull means the column is
// nullable.
type Column struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	NotNull bool   `yaml:"not_null,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Relation describes a named association to another model.
type Relation struct {
	Kind       RelationKind `yaml:"kind"`
	Name       string       `yaml:"name"`
	Target     string       `yaml:"target"`
	ForeignKey string       `yaml:"foreign_key,omitempty"`
}

// Index describes a secondary index over one or more declared columns.
type Index struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique,omitempty"`
}

// Schema is the mutable configuration a definition block builds up.
// Columns and Relations preserve declaration order.
type Schema struct {
	Table         string     `yaml:"table"`
	Columns       []Column   `yaml:"columns"`
	PrimaryKey    []string   `yaml:"primary_key,omitempty"`
	AutoIncrement bool       `yaml:"auto_increment,omitempty"`
	Relations     []Relation `yaml:"relations,omitempty"`
	Indexes       []Index    `yaml:"indexes,omitempty"`
	Components    []string   `yaml:"components,omitempty"`
}

// AddColumn appends a column, or replaces the existing declaration of the
// same name in place. Redeclaring keeps the original position so that
// "declare the column list first, refine one column later" works without
// reordering the table.
func (s *Schema) AddColumn(c Column) {
	for i := range s.Columns {
		if s.Columns[i].Name == c.Name {
			s.Columns[i] = c
			return
		}
	}
	s.Columns = append(s.Columns, c)
}

// Column returns the declared column with the given name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether a column with the given name is declared.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.Column(name)
	return ok
}

// ColumnNames returns the declared column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
