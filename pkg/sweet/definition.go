package sweet

import "fmt"

// defState tracks a Definition through its lifecycle. The binding is built,
// registered as the active one for its target, run, and removed again on
// every exit path.
type defState int

const (
	stateIdle defState = iota
	stateInstalled
	stateExecuting
	stateRemoved
)

// Definition is the scoped binding a Setup block receives. It resolves
// operation names against its target's dispatch table and forwards the
// calls. It is only valid while its Setup call is running and is not safe
// for concurrent use.
type Definition struct {
	target Target
	table  map[string]boundOp
	state  defState
	err    error
}

// Target returns the target being configured.
func (d *Definition) Target() Target { return d.target }

// Err returns the first error recorded by Call or a typed helper, nil if
// none. Setup returns the same error.
func (d *Definition) Err() error { return d.err }

// ResolvedBy reports whether name resolves, and if so which provider would
// service it: a component name, or "" for one of the target's own methods.
func (d *Definition) ResolvedBy(name string) (provider string, ok bool) {
	bound, ok := d.table[opKey(unqualifyOp(name))]
	return bound.provider, ok
}

// Invoke resolves name against the target's dispatch table and calls the
// operation with the given arguments, returning its result. The name may
// carry a namespace qualifier ("World.Person.addColumns"); only the final
// segment is used. A name with no match anywhere in the table fails with
// *UnknownOperationError. Errors returned by the resolved operation itself
// are passed through unchanged.
func (d *Definition) Invoke(name string, args ...any) (any, error) {
	if d.state != stateExecuting {
		return nil, fmt.Errorf("%w: %q on %s", ErrDefinitionClosed, name, d.target.ModelName())
	}
	op := unqualifyOp(name)
	bound, ok := d.table[opKey(op)]
	if !ok {
		return nil, &UnknownOperationError{Op: op, Target: d.target.ModelName()}
	}
	in, err := bound.adaptArgs(d.target, args)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", op, d.target.ModelName(), err)
	}
	// Errors from the resolved operation itself pass through unchanged.
	return bound.invoke(in)
}

// Call is the statement form of Invoke: the result is discarded and the
// first failure is recorded, turning every later Call into a no-op. Setup
// returns the recorded error, so a block written with Call reads as a plain
// sequence of declarations.
func (d *Definition) Call(name string, args ...any) {
	if d.err != nil {
		return
	}
	if _, err := d.Invoke(name, args...); err != nil {
		d.err = err
	}
}

// Columns declares nullable text columns.
func (d *Definition) Columns(names ...string) {
	d.Call("addColumns", anySlice(names)...)
}

// Column declares one column with an explicit type, replacing any earlier
// declaration of the same name.
func (d *Definition) Column(name, typ string) {
	d.Call("addColumn", name, typ)
}

// PrimaryKey declares the primary key columns.
func (d *Definition) PrimaryKey(cols ...string) {
	d.Call("setPrimaryKey", anySlice(cols)...)
}

// BelongsTo declares a to-one association held by foreignKey on this model.
func (d *Definition) BelongsTo(name, target, foreignKey string) {
	d.Call("belongsTo", name, target, foreignKey)
}

// HasMany declares a to-many association keyed on the related model.
func (d *Definition) HasMany(name, target, foreignKey string) {
	d.Call("hasMany", name, target, foreignKey)
}

// HasOne declares a to-one association keyed on the related model.
func (d *Definition) HasOne(name, target, foreignKey string) {
	d.Call("hasOne", name, target, foreignKey)
}

// ManyToMany declares a to-many association mediated by a link table.
func (d *Definition) ManyToMany(name, target, link string) {
	d.Call("manyToMany", name, target, link)
}

// Index declares a secondary index over declared columns.
func (d *Definition) Index(name string, cols ...string) {
	args := append([]any{name}, anySlice(cols)...)
	d.Call("addIndex", args...)
}

// Table overrides the table name derived by Setup.
func (d *Definition) Table(name string) {
	d.Call("setTable", name)
}

// LoadComponents loads additional components; their operations become
// resolvable for the rest of the block.
func (d *Definition) LoadComponents(names ...string) {
	if d.err != nil {
		return
	}
	if err := d.target.LoadComponents(names...); err != nil {
		d.err = err
		return
	}
	// Newly loaded providers may contribute operations.
	d.table = buildDispatch(d.target)
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
