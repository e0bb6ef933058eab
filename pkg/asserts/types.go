package asserts

import (
	"reflect"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// typeOf resolves the expected-type argument: either a
// reflect.Type directly or an example value whose type is used.
func typeOf(expected any) reflect.Type {
	if t, ok := expected.(reflect.Type); ok {
		return t
	}
	t := reflect.TypeOf(expected)
	if t == nil {
		signal.Raise(
			signal.UsageError,
			"expected type cannot be derived from nil",
		)
	}
	return t
}

// typeName names the dynamic type of a value, treating nil as
// "nil".
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return t.String()
}

// IsType fails if the object's dynamic type is not the expected
// type. The expected type can be given as a reflect.Type or as
// an example value.
//
// The following template names are supported:
//   - msg - the default error message
//   - obj - the object under test
//   - actual - the object's type name
//   - expected - the expected type name
func IsType(obj, expected any, msgFmt ...string) {
	want := typeOf(expected)
	if reflect.TypeOf(obj) != want {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(obj)+" is of type "+typeName(obj)+
				", expected "+want.String(),
			format.Context{
				{Key: "obj", Value: obj},
				{Key: "actual", Value: typeName(obj)},
				{Key: "expected", Value: want.String()},
			},
		)
	}
}

// NotIsType fails if the object's dynamic type is the expected
// type.
//
// The following template names are supported:
//   - msg - the default error message
//   - obj - the object under test
//   - actual - the object's type name
//   - expected - the expected type name
func NotIsType(obj, expected any, msgFmt ...string) {
	want := typeOf(expected)
	if reflect.TypeOf(obj) == want {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(obj)+" is of type "+typeName(obj),
			format.Context{
				{Key: "obj", Value: obj},
				{Key: "actual", Value: typeName(obj)},
				{Key: "expected", Value: want.String()},
			},
		)
	}
}

// hasAttr reports whether the object has an exported field or
// method of the given name, looking through pointers.
func hasAttr(obj any, name string) bool {
	if obj == nil {
		return false
	}
	v := reflect.ValueOf(obj)
	if v.MethodByName(name).IsValid() {
		return true
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
		if v.MethodByName(name).IsValid() {
			return true
		}
	}
	if v.Kind() != reflect.Struct {
		return false
	}
	field, found := v.Type().FieldByName(name)
	return found && field.IsExported()
}

// HasAttr fails if the object does not have an exported field
// or method with the given name.
//
// The following template names are supported:
//   - msg - the default error message
//   - obj - the object under test
//   - attribute - the name of the attribute checked
func HasAttr(obj any, attribute string, msgFmt ...string) {
	if !hasAttr(obj, attribute) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(obj)+
				" does not have attribute '"+attribute+"'",
			format.Context{
				{Key: "obj", Value: obj},
				{Key: "attribute", Value: attribute},
			},
		)
	}
}
