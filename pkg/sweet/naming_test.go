package sweet

import "testing"

func TestDefaultTableName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dotted namespace", in: "World.Person", want: "person"},
		{name: "deep namespace", in: "A.B.MyTable", want: "mytable"},
		{name: "no namespace", in: "Simple", want: "simple"},
		{name: "double colon namespace", in: "World::Person", want: "person"},
		{name: "already lower", in: "world.person", want: "person"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultTableName(tt.in); got != tt.want {
				t.Errorf("DefaultTableName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnqualifyOp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "addColumns", want: "addColumns"},
		{in: "World.Person.addColumns", want: "addColumns"},
		{in: "World::Person::addColumns", want: "addColumns"},
		{in: "SetPrimaryKey", want: "SetPrimaryKey"},
	}

	for _, tt := range tests {
		if got := unqualifyOp(tt.in); got != tt.want {
			t.Errorf("unqualifyOp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "AddColumns", want: "addColumns"},
		{in: "addColumns", want: "addColumns"},
		{in: "Table", want: "table"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := opKey(tt.in); got != tt.want {
			t.Errorf("opKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
