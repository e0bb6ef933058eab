package asserts

import (
	"reflect"

	"digital.vasic.asserts/pkg/format"
)

// isTruthy reports whether a value is non-zero: false, zero
// numbers, empty strings, empty containers, and nil references
// are all falsy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}

// isNil reports whether a value is nil, either untyped or a nil
// reference of a concrete type.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// True fails unless the expression is truthy.
//
// The following template names are supported:
//   - msg - the default error message
//   - expr - the tested expression
func True(expr any, msgFmt ...string) {
	if !isTruthy(expr) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(expr)+" is not truthy",
			format.Context{{Key: "expr", Value: expr}},
		)
	}
}

// False fails unless the expression is falsy.
//
// The following template names are supported:
//   - msg - the default error message
//   - expr - the tested expression
func False(expr any, msgFmt ...string) {
	if isTruthy(expr) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(expr)+" is not falsy",
			format.Context{{Key: "expr", Value: expr}},
		)
	}
}

// Nil fails if the expression is not nil.
//
// The following template names are supported:
//   - msg - the default error message
//   - expr - the tested expression
func Nil(expr any, msgFmt ...string) {
	if !isNil(expr) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(expr)+" is not nil",
			format.Context{{Key: "expr", Value: expr}},
		)
	}
}

// NotNil fails if the expression is nil.
//
// The following template names are supported:
//   - msg - the default error message
//   - expr - the tested expression
func NotNil(expr any, msgFmt ...string) {
	if isNil(expr) {
		raiseFailure(
			pickFmt(msgFmt),
			"expression is nil",
			format.Context{{Key: "expr", Value: expr}},
		)
	}
}
