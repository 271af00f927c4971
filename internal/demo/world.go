// Package demo defines the World example models the CLI operates on.
package demo

import "github.com/example/sweet/pkg/sweet"

// World builds and registers the Country, City and Person models, returning
// them in deploy-friendly order.
func World() ([]sweet.Target, error) {
	country := sweet.NewModel("World.Country")
	if err := sweet.Setup(country, func(d *sweet.Definition) {
		d.Column("id", "integer")
		d.Columns("name", "code")
		d.PrimaryKey("id")
		d.Call("autoIncrement")
		d.Index("country_code", "code")
		d.HasMany("cities", "World.City", "country_id")
		d.HasMany("people", "World.Person", "country_id")
	}); err != nil {
		return nil, err
	}

	city := sweet.NewModel("World.City")
	if err := sweet.Setup(city, func(d *sweet.Definition) {
		d.Column("id", "integer")
		d.Columns("name")
		d.Column("country_id", "integer")
		d.PrimaryKey("id")
		d.Call("autoIncrement")
		d.BelongsTo("country", "World.Country", "country_id")
	}); err != nil {
		return nil, err
	}

	person := sweet.NewModel("World.Person")
	if err := sweet.Setup(person, func(d *sweet.Definition) {
		d.Columns("id", "name", "country_id")
		d.Column("id", "integer")
		d.Column("country_id", "integer")
		d.PrimaryKey("id")
		d.BelongsTo("country", "World.Country", "country_id")
	}); err != nil {
		return nil, err
	}

	targets := []sweet.Target{country, city, person}
	for _, t := range targets {
		sweet.Register(t)
	}
	return targets, nil
}
