package sweet

import (
	"fmt"
	"reflect"
)

var (
	targetType = reflect.TypeOf((*Target)(nil)).Elem()
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// boundOp is one dispatchable operation. Own methods are stored with the
// receiver already bound; component methods keep their leading Target
// parameter and have the target prepended at call time.
type boundOp struct {
	fn          reflect.Value
	provider    string // "" for the target's own methods
	needsTarget bool
}

// buildDispatch assembles the dispatch table for one target: the target's
// own exported methods first, then each provider in ancestor-chain order.
// First registration of a name wins, so a method defined on the target
// shadows a same-named component operation.
func buildDispatch(target Target) map[string]boundOp {
	table := make(map[string]boundOp)

	tv := reflect.ValueOf(target)
	tt := tv.Type()
	for i := 0; i < tt.NumMethod(); i++ {
		key := opKey(tt.Method(i).Name)
		if _, ok := table[key]; ok {
			continue
		}
		table[key] = boundOp{fn: tv.Method(i)}
	}

	for _, p := range target.AncestorChain() {
		pv := reflect.ValueOf(p)
		pt := pv.Type()
		for i := 0; i < pt.NumMethod(); i++ {
			ft := pv.Method(i).Type()
			if ft.NumIn() == 0 || ft.In(0) != targetType {
				continue
			}
			key := opKey(pt.Method(i).Name)
			if _, ok := table[key]; ok {
				continue
			}
			table[key] = boundOp{fn: pv.Method(i), provider: p.ProviderName(), needsTarget: true}
		}
	}

	return table
}

// invoke calls the bound operation and unpacks the result: a trailing error
// return is split off and passed through unchanged, and the first remaining
// return value (if any) becomes the result.
func (op boundOp) invoke(in []reflect.Value) (any, error) {
	out := op.fn.Call(in)

	ft := op.fn.Type()
	n := ft.NumOut()
	if n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

// adaptArgs converts caller arguments to the operation's parameter types.
// For a variadic operation, a single slice argument in the variadic position
// is flattened, so Invoke("addColumns", []string{"id", "name"}) and
// Invoke("addColumns", "id", "name") are equivalent.
func (op boundOp) adaptArgs(target Target, args []any) ([]reflect.Value, error) {
	ft := op.fn.Type()
	var in []reflect.Value
	if op.needsTarget {
		in = append(in, reflect.ValueOf(target))
	}

	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	need := fixed - len(in)
	if len(args) < need {
		return nil, fmt.Errorf("want at least %d arguments, got %d", need, len(args))
	}
	for _, a := range args[:need] {
		v, err := adaptArg(a, ft.In(len(in)))
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	rest := args[need:]
	if !ft.IsVariadic() {
		if len(rest) > 0 {
			return nil, fmt.Errorf("want %d arguments, got %d", need, len(args))
		}
		return in, nil
	}

	elem := ft.In(ft.NumIn() - 1).Elem()
	if len(rest) == 1 {
		if rv := reflect.ValueOf(rest[0]); rv.IsValid() &&
			(rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) &&
			!rv.Type().AssignableTo(elem) {
			flat := make([]any, rv.Len())
			for i := range flat {
				flat[i] = rv.Index(i).Interface()
			}
			rest = flat
		}
	}
	for _, a := range rest {
		v, err := adaptArg(a, elem)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	return in, nil
}

// adaptArg converts one argument. Assignability is accepted as-is;
// conversions are limited to numeric widening/narrowing and same-kind
// conversions so that, say, an int argument fits an int64 parameter without
// letting an int silently become a string.
func adaptArg(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Type().ConvertibleTo(t) && (v.Kind() == t.Kind() || isNumericKind(v.Kind()) && isNumericKind(t.Kind())) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", a, t)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
