/*
Package sweet provides a declarative way to describe database tables. A model
is configured inside a single definition block; the calls issued in that block
are resolved dynamically against the model and the capability components
loaded into it, so a definition reads as a flat list of declarations:

	person := sweet.NewModel("World.Person")
	err := sweet.Setup(person, func(d *sweet.Definition) {
		d.Columns("id", "name", "country_id")
		d.Column("id", "integer")
		d.PrimaryKey("id")
		d.BelongsTo("country", "World.Country", "country_id")
	})

Before the block runs, Setup loads a baseline set of components into the model
and derives a default table name from the model name ("World.Person" becomes
"person"). Both defaults can be overridden from inside the block.

Every declaration, including the typed helpers above, goes through a single
dispatch table built from the model's own methods and its loaded components.
Unknown names fail with an UnknownOperationError that is returned by Setup.
The generic entry point is available directly when the operation name is only
known at runtime:

	width, err := d.Invoke("addColumn", "width", "real")

A Definition is only valid while its Setup call is running and is not safe
for concurrent use. Concurrent Setup calls on distinct models are fine.
*/
package sweet
