package sweet_test

import (
	"reflect"
	"testing"

	"github.com/example/sweet/pkg/sweet"
)

// timestampsComponent is a user-defined component adding the usual pair of
// bookkeeping columns. Methods without a leading Target parameter are not
// dispatchable and must stay invisible to definition blocks.
type timestampsComponent struct{}

func (timestampsComponent) ProviderName() string { return "timestamps" }

func (timestampsComponent) Timestamps(t sweet.Target) {
	s := t.Schema()
	s.AddColumn(sweet.Column{Name: "created_at", Type: "datetime", NotNull: true})
	s.AddColumn(sweet.Column{Name: "updated_at", Type: "datetime", NotNull: true})
}

func (timestampsComponent) Helper(prefix string) string { return prefix + "-helper" }

func TestCustomComponent(t *testing.T) {
	sweet.RegisterComponent(timestampsComponent{})

	note := sweet.NewModel("App.Note")
	err := sweet.Setup(note, func(d *sweet.Definition) {
		d.Columns("id", "body")
		d.LoadComponents("timestamps")
		d.Call("timestamps")
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	want := []string{"id", "body", "created_at", "updated_at"}
	if got := note.Schema().ColumnNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}

	created, _ := note.Schema().Column("created_at")
	if created.Type != "datetime" || !created.NotNull {
		t.Errorf("created_at = %+v, want not-null datetime", created)
	}
}

func TestComponentMethodWithoutTargetNotDispatchable(t *testing.T) {
	sweet.RegisterComponent(timestampsComponent{})

	note := sweet.NewModel("App.Note")
	err := sweet.Setup(note, func(d *sweet.Definition) {
		d.LoadComponents("timestamps")
		d.Call("helper", "x")
	})
	if err == nil {
		t.Fatal("helper resolved, want UnknownOperationError")
	}
}

func TestAutoIncrement(t *testing.T) {
	item := sweet.NewModel("Shop.Item")
	err := sweet.Setup(item, func(d *sweet.Definition) {
		d.Column("id", "integer")
		d.PrimaryKey("id")
		d.Call("autoIncrement")
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if !item.Schema().AutoIncrement {
		t.Error("AutoIncrement not set")
	}
}

func TestIndexDeclaration(t *testing.T) {
	item := sweet.NewModel("Shop.Item")
	err := sweet.Setup(item, func(d *sweet.Definition) {
		d.Columns("id", "sku", "name")
		d.Index("item_sku", "sku")
		d.Call("addUniqueIndex", "item_name", "name")
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	s := item.Schema()
	if len(s.Indexes) != 2 {
		t.Fatalf("indexes = %d, want 2", len(s.Indexes))
	}
	if s.Indexes[0].Name != "item_sku" || s.Indexes[0].Unique {
		t.Errorf("first index = %+v, want non-unique item_sku", s.Indexes[0])
	}
	if s.Indexes[1].Name != "item_name" || !s.Indexes[1].Unique {
		t.Errorf("second index = %+v, want unique item_name", s.Indexes[1])
	}

	other := sweet.NewModel("Shop.Other")
	err = sweet.Setup(other, func(d *sweet.Definition) {
		d.Index("bad", "nope")
	})
	if err == nil {
		t.Error("index over undeclared column succeeded")
	}
}
