package asserts

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// deepOpts lets the deep comparison look inside unexported
// fields instead of panicking on them.
var deepOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// toFloat converts any numeric value to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// valuesEqual implements value equality: two numeric values of
// any type are compared numerically (5 equals 5.0), everything
// else is compared structurally.
func valuesEqual(first, second any) bool {
	if first == nil || second == nil {
		return first == nil && second == nil
	}
	if f, ok := toFloat(first); ok {
		if s, ok := toFloat(second); ok {
			return f == s
		}
		return false
	}
	return cmp.Equal(first, second, deepOpts...)
}

// Equal fails unless first equals second by value: numeric
// values compare across types, containers and structs compare
// deeply.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func Equal(first, second any, msgFmt ...string) {
	if !valuesEqual(first, second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" != "+format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// NotEqual fails if first equals second by value.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func NotEqual(first, second any, msgFmt ...string) {
	if valuesEqual(first, second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" == "+format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// sameObject reports whether two values are the same object.
// The second result is false when the arguments are not
// reference values, for which identity is not defined.
func sameObject(first, second any) (same, defined bool) {
	if first == nil || second == nil {
		return first == nil && second == nil, true
	}
	a := reflect.ValueOf(first)
	b := reflect.ValueOf(second)
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		if b.Kind() != a.Kind() {
			return false, true
		}
		return a.Pointer() == b.Pointer(), true
	case reflect.Slice:
		if b.Kind() != reflect.Slice {
			return false, true
		}
		return a.Pointer() == b.Pointer() &&
			a.Len() == b.Len(), true
	}
	return false, false
}

// requireReference raises UsageError for arguments whose
// identity is undefined.
func requireReference(defined bool, fn string) {
	if !defined {
		signal.Raisef(
			signal.UsageError,
			"%s requires reference values "+
				"(pointer, map, slice, channel, or function)",
			fn,
		)
	}
}

// Same fails if first and second do not refer to the same
// object. Both arguments must be reference values.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func Same(first, second any, msgFmt ...string) {
	same, defined := sameObject(first, second)
	requireReference(defined, "Same")
	if !same {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" is not "+format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// NotSame fails if first and second refer to the same object.
// Both arguments must be reference values.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func NotSame(first, second any, msgFmt ...string) {
	same, defined := sameObject(first, second)
	requireReference(defined, "NotSame")
	if same {
		raiseFailure(
			pickFmt(msgFmt),
			"both arguments refer to "+format.Display(first),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}
