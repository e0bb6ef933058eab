package asserts

import (
	"reflect"
	"strings"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// containerHolds reports whether a container holds an element:
// substring for strings, element for slices and arrays, key for
// maps. The second result is false when the value is not a
// container.
func containerHolds(container, element any) (found, ok bool) {
	c := reflect.ValueOf(container)
	switch c.Kind() {
	case reflect.String:
		s, isString := element.(string)
		if !isString {
			return false, false
		}
		return strings.Contains(c.String(), s), true
	case reflect.Slice, reflect.Array:
		for i := 0; i < c.Len(); i++ {
			if valuesEqual(c.Index(i).Interface(), element) {
				return true, true
			}
		}
		return false, true
	case reflect.Map:
		for _, key := range c.MapKeys() {
			if valuesEqual(key.Interface(), element) {
				return true, true
			}
		}
		return false, true
	}
	return false, false
}

// requireContainer raises UsageError when membership is tested
// against a non-container value.
func requireContainer(ok bool, container any) {
	if !ok {
		signal.Raisef(
			signal.UsageError,
			"%s is not a container", format.Display(container),
		)
	}
}

// In fails if the element is not in the container. Containers
// are strings (substring test), slices, arrays, and maps (key
// test).
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the element looked for
//   - second - the container looked in
func In(first, second any, msgFmt ...string) {
	found, ok := containerHolds(second, first)
	requireContainer(ok, second)
	if !found {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" not in "+format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// NotIn fails if the element is in the container.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the element looked for
//   - second - the container looked in
func NotIn(first, second any, msgFmt ...string) {
	found, ok := containerHolds(second, first)
	requireContainer(ok, second)
	if found {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" is in "+format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// sequenceItems flattens a sequence into its elements: slices
// and arrays element-wise, strings as single-character strings.
// The second result is false for non-sequences.
func sequenceItems(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	case reflect.String:
		runes := []rune(rv.String())
		items := make([]any, len(runes))
		for i, r := range runes {
			items[i] = string(r)
		}
		return items, true
	}
	return nil, false
}

// CountEqual compares the items of two sequences as multisets,
// ignoring order. Items missing from either sequence are listed
// in the failure message, making duplicates visible.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first sequence
//   - second - the second sequence
func CountEqual(first, second any, msgFmt ...string) {
	items1, ok := sequenceItems(first)
	if !ok {
		signal.Raisef(
			signal.UsageError,
			"%s is not a sequence", format.Display(first),
		)
	}
	items2, ok := sequenceItems(second)
	if !ok {
		signal.Raisef(
			signal.UsageError,
			"%s is not a sequence", format.Display(second),
		)
	}

	missingFrom1 := append([]any(nil), items2...)
	var missingFrom2 []any
	for _, item := range items1 {
		removed := false
		for i, candidate := range missingFrom1 {
			if valuesEqual(candidate, item) {
				missingFrom1 = append(
					missingFrom1[:i], missingFrom1[i+1:]...,
				)
				removed = true
				break
			}
		}
		if !removed {
			missingFrom2 = append(missingFrom2, item)
		}
	}

	if len(missingFrom1) == 0 && len(missingFrom2) == 0 {
		return
	}

	var parts []string
	if len(missingFrom1) > 0 {
		parts = append(parts,
			"missing from sequence 1: "+displayList(missingFrom1))
	}
	if len(missingFrom2) > 0 {
		parts = append(parts,
			"missing from sequence 2: "+displayList(missingFrom2))
	}
	raiseFailure(
		pickFmt(msgFmt),
		strings.Join(parts, "; "),
		format.Context{
			{Key: "first", Value: first},
			{Key: "second", Value: second},
		},
	)
}

// displayList renders a list of values as a comma-separated
// sequence of displays.
func displayList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format.Display(item)
	}
	return strings.Join(parts, ", ")
}
