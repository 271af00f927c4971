package sweet

import "fmt"

// Target is anything a definition block can configure. Model implements it;
// user types normally embed Model and pick up the implementation, adding
// their own methods on top. Own methods always win over component methods
// during dispatch.
type Target interface {
	// ModelName returns the qualified model name, e.g. "World.Person".
	ModelName() string

	// Schema returns the mutable schema configuration.
	Schema() *Schema

	// SetTable sets the table name. Later writes win, including over the
	// default derived by Setup.
	SetTable(name string)

	// LoadComponents loads the named components into the ancestor chain,
	// in order. Already-loaded components are skipped, so the call is
	// idempotent.
	LoadComponents(names ...string) error

	// AncestorChain returns the loaded capability providers in resolution
	// order.
	AncestorChain() []Provider
}

// Model is the embeddable base implementation of Target.
type Model struct {
	name   string
	schema Schema
	chain  []Provider
}

// NewModel creates a model with the given qualified name. The name's final
// segment also seeds the default table name once Setup runs.
func NewModel(name string) *Model {
	return &Model{name: name}
}

// ModelName returns the qualified model name.
func (m *Model) ModelName() string { return m.name }

// Schema returns the model's mutable schema.
func (m *Model) Schema() *Schema { return &m.schema }

// SetTable sets the table name.
func (m *Model) SetTable(name string) { m.schema.Table = name }

// LoadComponents appends the named components to the ancestor chain. Names
// already present are skipped. Unknown names fail without loading any of the
// remaining ones.
func (m *Model) LoadComponents(names ...string) error {
	for _, n := range names {
		if m.hasComponent(n) {
			continue
		}
		p, ok := lookupComponent(n)
		if !ok {
			return fmt.Errorf("model %s: unknown component %q", m.name, n)
		}
		m.chain = append(m.chain, p)
		m.schema.Components = append(m.schema.Components, n)
	}
	return nil
}

func (m *Model) hasComponent(name string) bool {
	for _, p := range m.chain {
		if p.ProviderName() == name {
			return true
		}
	}
	return false
}

// AncestorChain returns a copy of the loaded providers in load order.
func (m *Model) AncestorChain() []Provider {
	chain := make([]Provider, len(m.chain))
	copy(chain, m.chain)
	return chain
}
