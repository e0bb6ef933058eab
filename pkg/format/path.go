package format

import (
	"reflect"
	"strconv"
	"strings"

	"digital.vasic.asserts/pkg/signal"
)

// pathStep is one accessor in a placeholder path: either an
// attribute name (".attr") or a bracketed index ("[key]").
type pathStep struct {
	text    string
	bracket bool
}

// parsePath splits a placeholder path into its root name and
// accessor steps. The grammar is name(.attr | [index])*.
func parsePath(path string) (string, []pathStep) {
	rest := path
	end := strings.IndexAny(rest, ".[")
	if end == 0 || rest == "" {
		signal.Raisef(
			signal.FormatError,
			"empty placeholder name in path %q", path,
		)
	}

	var root string
	if end < 0 {
		return rest, nil
	}
	root = rest[:end]
	rest = rest[end:]

	var steps []pathStep
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			stop := strings.IndexAny(rest, ".[")
			if stop < 0 {
				stop = len(rest)
			}
			if stop == 0 {
				signal.Raisef(
					signal.FormatError,
					"empty attribute in path %q", path,
				)
			}
			steps = append(steps, pathStep{text: rest[:stop]})
			rest = rest[stop:]
		case '[':
			closing := strings.IndexByte(rest, ']')
			if closing < 0 {
				signal.Raisef(
					signal.FormatError,
					"unterminated index in path %q", path,
				)
			}
			if closing == 1 {
				signal.Raisef(
					signal.FormatError,
					"empty index in path %q", path,
				)
			}
			steps = append(steps, pathStep{
				text:    rest[1:closing],
				bracket: true,
			})
			rest = rest[closing+1:]
		default:
			signal.Raisef(
				signal.FormatError,
				"unexpected %q in path %q",
				string(rest[0]), path,
			)
		}
	}
	return root, steps
}

// resolvePath resolves a placeholder path against the context,
// drilling into structured values step by step.
func resolvePath(path string, ctx Context) any {
	root, steps := parsePath(path)

	value, ok := ctx.Lookup(root)
	if !ok {
		signal.Raisef(
			signal.FormatError,
			"message template references unknown name %q",
			root,
		)
	}

	for _, step := range steps {
		if step.bracket {
			value = resolveIndex(value, step.text, path)
		} else {
			value = resolveAttr(value, step.text, path)
		}
	}
	return value
}

// resolveAttr resolves ".attr" against a struct field or a
// string-keyed map entry.
func resolveAttr(value any, attr, path string) any {
	v := indirect(reflect.ValueOf(value))

	switch v.Kind() {
	case reflect.Map:
		return mapLookup(v, attr, path)
	case reflect.Struct:
		field := v.FieldByName(attr)
		if !field.IsValid() || !field.CanInterface() {
			signal.Raisef(
				signal.FormatError,
				"%q has no accessible field %q in path %q",
				v.Type(), attr, path,
			)
		}
		return field.Interface()
	default:
		signal.Raisef(
			signal.FormatError,
			"cannot access attribute %q on %s value in path %q",
			attr, kindName(v), path,
		)
	}
	return nil
}

// resolveIndex resolves "[key]" against a sequence position or a
// string-keyed map entry. All-digit keys index sequences; any
// other key is a map lookup.
func resolveIndex(value any, key, path string) any {
	v := indirect(reflect.ValueOf(value))

	if v.Kind() == reflect.Map {
		return mapLookup(v, key, path)
	}

	n, err := strconv.Atoi(key)
	if err != nil {
		signal.Raisef(
			signal.FormatError,
			"non-numeric index %q for %s value in path %q",
			key, kindName(v), path,
		)
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if n < 0 || n >= v.Len() {
			signal.Raisef(
				signal.FormatError,
				"index %d out of range (len %d) in path %q",
				n, v.Len(), path,
			)
		}
		return v.Index(n).Interface()
	case reflect.String:
		runes := []rune(v.String())
		if n < 0 || n >= len(runes) {
			signal.Raisef(
				signal.FormatError,
				"index %d out of range (len %d) in path %q",
				n, len(runes), path,
			)
		}
		return string(runes[n])
	default:
		signal.Raisef(
			signal.FormatError,
			"cannot index %s value in path %q",
			kindName(v), path,
		)
	}
	return nil
}

// mapLookup fetches a string key from a string-keyed map.
func mapLookup(v reflect.Value, key, path string) any {
	if v.Type().Key().Kind() != reflect.String {
		signal.Raisef(
			signal.FormatError,
			"map key type %q is not addressable by name in path %q",
			v.Type().Key(), path,
		)
	}
	entry := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
	if !entry.IsValid() {
		signal.Raisef(
			signal.FormatError,
			"map has no key %q in path %q", key, path,
		)
	}
	return entry.Interface()
}

// indirect unwraps interfaces and pointers down to the concrete
// value.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// kindName names a reflect value's kind for error text, treating
// the zero Value as nil.
func kindName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Kind().String()
}
