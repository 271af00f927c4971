package sweet

import (
	"fmt"
	"sync"
)

// Provider is a capability component that contributes operations to the
// models that load it. Every exported method whose first parameter is Target
// becomes dispatchable under the lowerCamel form of its Go name.
type Provider interface {
	ProviderName() string
}

// BaselineComponents are loaded into every target by Setup before its block
// runs.
var BaselineComponents = []string{"core", "pk_auto"}

var (
	componentMu sync.RWMutex
	components  = map[string]Provider{}
)

// RegisterComponent makes a provider loadable by name. Registering a name
// twice replaces the earlier provider; models that already loaded it keep
// the one they were given.
func RegisterComponent(p Provider) {
	componentMu.Lock()
	defer componentMu.Unlock()
	components[p.ProviderName()] = p
}

func lookupComponent(name string) (Provider, bool) {
	componentMu.RLock()
	defer componentMu.RUnlock()
	p, ok := components[name]
	return p, ok
}

func init() {
	RegisterComponent(coreComponent{})
	RegisterComponent(pkAutoComponent{})
}

// coreComponent supplies the column, key, relation and index declarations.
type coreComponent struct{}

func (coreComponent) ProviderName() string { return "core" }

// AddColumns declares nullable text columns with the given names. Use
// AddColumn afterwards to refine an individual column's type.
func (coreComponent) AddColumns(t Target, names ...string) {
	s := t.Schema()
	for _, n := range names {
		s.AddColumn(Column{Name: n, Type: "text"})
	}
}

// AddColumn declares a single column with an explicit type, replacing any
// earlier declaration of the same name.
func (coreComponent) AddColumn(t Target, name, typ string) {
	t.Schema().AddColumn(Column{Name: name, Type: typ})
}

// SetPrimaryKey declares the primary key. Every named column must already be
// declared.
func (coreComponent) SetPrimaryKey(t Target, cols ...string) error {
	s := t.Schema()
	if len(cols) == 0 {
		return fmt.Errorf("model %s: empty primary key", t.ModelName())
	}
	for _, c := range cols {
		if !s.HasColumn(c) {
			return fmt.Errorf("model %s: primary key column %q is not declared", t.ModelName(), c)
		}
	}
	s.PrimaryKey = append([]string(nil), cols...)
	return nil
}

// BelongsTo declares a to-one association held by a foreign key column on
// this model. The foreign key must already be declared.
func (coreComponent) BelongsTo(t Target, name, target, foreignKey string) error {
	s := t.Schema()
	if !s.HasColumn(foreignKey) {
		return fmt.Errorf("model %s: belongs_to %q: foreign key column %q is not declared", t.ModelName(), name, foreignKey)
	}
	s.Relations = append(s.Relations, Relation{Kind: BelongsToRel, Name: name, Target: target, ForeignKey: foreignKey})
	return nil
}

// HasMany declares a to-many association; the foreign key lives on the
// related model.
func (coreComponent) HasMany(t Target, name, target, foreignKey string) {
	s := t.Schema()
	s.Relations = append(s.Relations, Relation{Kind: HasManyRel, Name: name, Target: target, ForeignKey: foreignKey})
}

// HasOne declares a to-one association whose foreign key lives on the
// related model.
func (coreComponent) HasOne(t Target, name, target, foreignKey string) {
	s := t.Schema()
	s.Relations = append(s.Relations, Relation{Kind: HasOneRel, Name: name, Target: target, ForeignKey: foreignKey})
}

// ManyToMany declares a to-many association mediated by a link table.
func (coreComponent) ManyToMany(t Target, name, target, link string) {
	s := t.Schema()
	s.Relations = append(s.Relations, Relation{Kind: ManyToManyRel, Name: name, Target: target, ForeignKey: link})
}

// AddIndex declares a secondary index over declared columns.
func (coreComponent) AddIndex(t Target, name string, cols ...string) error {
	s := t.Schema()
	if len(cols) == 0 {
		return fmt.Errorf("model %s: index %q has no columns", t.ModelName(), name)
	}
	for _, c := range cols {
		if !s.HasColumn(c) {
			return fmt.Errorf("model %s: index %q: column %q is not declared", t.ModelName(), name, c)
		}
	}
	s.Indexes = append(s.Indexes, Index{Name: name, Columns: append([]string(nil), cols...)})
	return nil
}

// AddUniqueIndex declares a unique secondary index over declared columns.
func (coreComponent) AddUniqueIndex(t Target, name string, cols ...string) error {
	s := t.Schema()
	if err := (coreComponent{}).AddIndex(t, name, cols...); err != nil {
		return err
	}
	s.Indexes[len(s.Indexes)-1].Unique = true
	return nil
}

// pkAutoComponent marks single-column integer primary keys as
// auto-incrementing.
type pkAutoComponent struct{}

func (pkAutoComponent) ProviderName() string { return "pk_auto" }

// AutoIncrement enables auto-increment for the primary key.
func (pkAutoComponent) AutoIncrement(t Target) {
	t.Schema().AutoIncrement = true
}
