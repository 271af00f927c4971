package sweet

import "strings"

// DefaultTableName derives a table name from a qualified model name: the
// segment after the last namespace separator, lower-cased. Both "." and "::"
// are accepted as separators, so "World.Person" and "World::Person" each
// yield "person".
func DefaultTableName(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// unqualifyOp strips a namespace qualifier from an operation name, keeping
// only the final segment. Mirrors DefaultTableName but preserves case.
func unqualifyOp(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// opKey canonicalizes an operation name to its dispatch-table key: the
// lowerCamel form of a Go method name. "AddColumns" and "addColumns" share
// the key "addColumns".
func opKey(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
