package pattern

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Result holds the values captured by a successful Parse.
type Result struct {
	// Args are the positional values ordered by ascending placeholder index.
	// Gaps in the indices are closed: tokens {0} and {5} yield two Args.
	Args []any `json:"args"`

	// Kwargs are the named values keyed by placeholder token.
	Kwargs map[string]any `json:"kwargs"`
}

// Apply calls fn with the captured values.
func (r *Result) Apply(fn func(args []any, kwargs map[string]any) (any, error)) (any, error) {
	return fn(r.Args, r.Kwargs)
}

var (
	kwargsType = reflect.TypeFor[map[string]any]()
	errorType  = reflect.TypeFor[error]()
)

// Call invokes fn with Args expanded as positional parameters. If the last
// parameter of fn is a map[string]any it receives Kwargs; otherwise Kwargs
// must be empty. Variadic functions take surplus Args in their variadic
// parameter.
//
// Call returns the results of fn. When the last result is an error, it is
// removed from the slice and returned as is. Functions whose signature does
// not fit the Result fail with ErrCallMismatch before fn runs.
func (r *Result) Call(fn any) ([]any, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not a function", ErrCallMismatch, fn)
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrCallMismatch, fn)
	}
	ft := fv.Type()

	in, err := r.callArgs(ft)
	if err != nil {
		return nil, err
	}

	out := fv.Call(in)

	var callErr error
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			callErr = e.Interface().(error)
		}
		out = out[:n-1]
	}

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, callErr
}

func (r *Result) callArgs(ft reflect.Type) ([]reflect.Value, error) {
	params := ft.NumIn()
	variadic := ft.IsVariadic()
	takesKwargs := !variadic && params > 0 && ft.In(params-1) == kwargsType

	fixed := params
	if variadic || takesKwargs {
		fixed--
	}

	switch {
	case len(r.Args) < fixed:
		return nil, fmt.Errorf("%w: want %d positional values, have %d", ErrCallMismatch, fixed, len(r.Args))
	case len(r.Args) > fixed && !variadic:
		return nil, fmt.Errorf("%w: want %d positional values, have %d", ErrCallMismatch, fixed, len(r.Args))
	case len(r.Kwargs) > 0 && !takesKwargs:
		return nil, fmt.Errorf("%w: unexpected named values %s", ErrCallMismatch, strings.Join(slices.Sorted(maps.Keys(r.Kwargs)), ", "))
	}

	in := make([]reflect.Value, 0, params+len(r.Args))
	for i, arg := range r.Args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(params - 1).Elem()
		}
		v, err := argValue(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrCallMismatch, i, err)
		}
		in = append(in, v)
	}

	if takesKwargs {
		kwargs := r.Kwargs
		if kwargs == nil {
			kwargs = map[string]any{}
		}
		in = append(in, reflect.ValueOf(kwargs))
	}
	return in, nil
}

func argValue(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", t)
		}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), t)
	}
	return v, nil
}

// String renders the result for debugging, e.g. Result("1", "2", a="3456").
// Named values are sorted by token.
func (r *Result) String() string {
	parts := make([]string, 0, len(r.Args)+len(r.Kwargs))
	for _, a := range r.Args {
		parts = append(parts, reprValue(a))
	}
	for _, k := range slices.Sorted(maps.Keys(r.Kwargs)) {
		parts = append(parts, k+"="+reprValue(r.Kwargs[k]))
	}
	return "Result(" + strings.Join(parts, ", ") + ")"
}

func reprValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
