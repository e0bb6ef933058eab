package asserts

import (
	"reflect"
	"sort"
	"strings"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// mapView converts a string-keyed map of any value type into a
// uniform map[string]any. Non-map arguments are a caller bug.
func mapView(v any, arg string) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map ||
		rv.Type().Key().Kind() != reflect.String {
		signal.Raisef(
			signal.UsageError,
			"%s argument is not a string-keyed map, got %T",
			arg, v,
		)
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

// sortedKeys returns a map's keys in sorted order so failure
// messages are deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// quotedList renders key names as a comma-separated list of
// quoted strings.
func quotedList(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = "'" + k + "'"
	}
	return strings.Join(parts, ", ")
}

// MapEqual fails unless two string-keyed maps are equal. Key-set
// differences and value differences are reported separately,
// each with its own default message.
func MapEqual(first, second any, msgFmt ...string) {
	tmpl := pickFmt(msgFmt)
	MapEqualFmt(first, second, tmpl, tmpl)
}

// MapEqualFmt is MapEqual with independent message templates for
// the key-set mismatch and the value mismatch cases.
//
// Key mismatch template names:
//   - msg - the default error message
//   - first, second - the compared maps
//   - missing - keys present only in second, sorted
//   - extra - keys present only in first, sorted
//
// Value mismatch template names:
//   - msg - the default error message
//   - first, second - the compared maps
//   - key - the differing key
//   - first_value, second_value - the differing values
func MapEqualFmt(
	first, second any,
	keyMsgFmt, valueMsgFmt string,
) {
	fm := mapView(first, "first")
	sm := mapView(second, "second")

	var missing, extra []string
	for _, k := range sortedKeys(sm) {
		if _, ok := fm[k]; !ok {
			missing = append(missing, k)
		}
	}
	for _, k := range sortedKeys(fm) {
		if _, ok := sm[k]; !ok {
			extra = append(extra, k)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		var parts []string
		if len(missing) > 0 {
			parts = append(parts,
				"missing keys: "+quotedList(missing))
		}
		if len(extra) > 0 {
			parts = append(parts,
				"extra keys: "+quotedList(extra))
		}
		raiseFailure(
			keyMsgFmt,
			"key sets differ: "+strings.Join(parts, "; "),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
				{Key: "missing", Value: missing},
				{Key: "extra", Value: extra},
			},
		)
	}

	for _, k := range sortedKeys(fm) {
		if !valuesEqual(fm[k], sm[k]) {
			raiseFailure(
				valueMsgFmt,
				"value of key '"+k+"' differs: "+
					format.Display(fm[k])+" != "+
					format.Display(sm[k]),
				format.Context{
					{Key: "first", Value: first},
					{Key: "second", Value: second},
					{Key: "key", Value: k},
					{Key: "first_value", Value: fm[k]},
					{Key: "second_value", Value: sm[k]},
				},
			)
		}
	}
}

// MapSuperset fails unless every entry of the part map is
// present, with an equal value, in the whole map.
func MapSuperset(part, whole any, msgFmt ...string) {
	tmpl := pickFmt(msgFmt)
	MapSupersetFmt(part, whole, tmpl, tmpl)
}

// MapSupersetFmt is MapSuperset with independent message
// templates for the missing-key and the value mismatch cases.
//
// Key mismatch template names:
//   - msg - the default error message
//   - part, whole - the compared maps
//   - missing - part keys absent from whole, sorted
//
// Value mismatch template names:
//   - msg - the default error message
//   - part, whole - the compared maps
//   - key - the differing key
//   - part_value, whole_value - the differing values
func MapSupersetFmt(
	part, whole any,
	keyMsgFmt, valueMsgFmt string,
) {
	pm := mapView(part, "part")
	wm := mapView(whole, "whole")

	var missing []string
	for _, k := range sortedKeys(pm) {
		if _, ok := wm[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		raiseFailure(
			keyMsgFmt,
			"missing keys: "+quotedList(missing),
			format.Context{
				{Key: "part", Value: part},
				{Key: "whole", Value: whole},
				{Key: "missing", Value: missing},
			},
		)
	}

	for _, k := range sortedKeys(pm) {
		if !valuesEqual(pm[k], wm[k]) {
			raiseFailure(
				valueMsgFmt,
				"value of key '"+k+"' differs: "+
					format.Display(pm[k])+" != "+
					format.Display(wm[k]),
				format.Context{
					{Key: "part", Value: part},
					{Key: "whole", Value: whole},
					{Key: "key", Value: k},
					{Key: "part_value", Value: pm[k]},
					{Key: "whole_value", Value: wm[k]},
				},
			)
		}
	}
}
