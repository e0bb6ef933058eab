package asserts

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// normalizeTree converts an arbitrary value into the generic
// tree shape used by the subset walk: string-keyed maps become
// map[string]any, slices and arrays become []any, numbers
// become float64. Parsed JSON and YAML documents already arrive
// in this shape.
func normalizeTree(v any) any {
	if v == nil {
		return nil
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			signal.Raisef(
				signal.UsageError,
				"tree node has non-string map keys: %T", v,
			)
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] =
				normalizeTree(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalizeTree(rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalizeTree(rv.Elem().Interface())
	default:
		return v
	}
}

// treeWalker carries the templates of one subset walk.
type treeWalker struct {
	part         any
	whole        any
	structureFmt string
	valueFmt     string
}

func (w *treeWalker) failStructure(defaultMsg, path string) {
	raiseFailure(
		w.structureFmt,
		defaultMsg,
		format.Context{
			{Key: "path", Value: path},
			{Key: "part", Value: w.part},
			{Key: "whole", Value: w.whole},
		},
	)
}

func (w *treeWalker) walk(path string, part, whole any) {
	switch p := part.(type) {
	case map[string]any:
		wm, ok := whole.(map[string]any)
		if !ok {
			w.failStructure(
				"element "+path+" is not an object", path,
			)
		}
		for _, k := range sortedKeys(p) {
			child, ok := wm[k]
			childPath := path + "." + k
			if !ok {
				w.failStructure(
					"element "+childPath+" missing", childPath,
				)
			}
			w.walk(childPath, p[k], child)
		}
	case []any:
		ws, ok := whole.([]any)
		if !ok {
			w.failStructure(
				"element "+path+" is not an array", path,
			)
		}
		if len(ws) != len(p) {
			w.failStructure(
				fmt.Sprintf(
					"element %s has length %d, expected %d",
					path, len(ws), len(p),
				),
				path,
			)
		}
		for i, item := range p {
			w.walk(fmt.Sprintf("%s[%d]", path, i), item, ws[i])
		}
	default:
		if !valuesEqual(part, whole) {
			raiseFailure(
				w.valueFmt,
				"element "+path+" differs: "+
					format.Display(part)+" != "+
					format.Display(whole),
				format.Context{
					{Key: "path", Value: path},
					{Key: "first", Value: part},
					{Key: "second", Value: whole},
				},
			)
		}
	}
}

// Subset fails unless the part tree is structurally contained
// in the whole tree: object keys of part must exist in whole
// and match recursively, arrays must have equal length and
// match element-wise, scalars must be equal (numbers compare
// across types). Failure messages name the offending path,
// rooted at "$".
func Subset(part, whole any, msgFmt ...string) {
	tmpl := pickFmt(msgFmt)
	SubsetFmt(part, whole, tmpl, tmpl)
}

// SubsetFmt is Subset with independent message templates for
// structural mismatches (missing element, wrong shape, wrong
// length) and scalar value mismatches.
//
// Structural template names:
//   - msg - the default error message
//   - path - the offending tree path
//   - part, whole - the compared trees
//
// Value template names:
//   - msg - the default error message
//   - path - the offending tree path
//   - first, second - the differing scalar values
func SubsetFmt(
	part, whole any,
	structureMsgFmt, valueMsgFmt string,
) {
	w := &treeWalker{
		part:         part,
		whole:        whole,
		structureFmt: structureMsgFmt,
		valueFmt:     valueMsgFmt,
	}
	w.walk("$", normalizeTree(part), normalizeTree(whole))
}

// decodeJSON parses a JSON document into a generic tree. A
// malformed document is a caller bug, not a test failure.
func decodeJSON(doc []byte, arg string) any {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		signal.Raisef(
			signal.UsageError,
			"invalid JSON in %s document: %v", arg, err,
		)
	}
	return v
}

// decodeYAML parses a YAML document into a generic tree.
func decodeYAML(doc []byte, arg string) any {
	var v any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		signal.Raisef(
			signal.UsageError,
			"invalid YAML in %s document: %v", arg, err,
		)
	}
	return v
}

// JSONSubset parses two JSON documents and fails unless the
// first is structurally contained in the second. See Subset for
// the containment rules.
func JSONSubset(part, whole []byte, msgFmt ...string) {
	tmpl := pickFmt(msgFmt)
	JSONSubsetFmt(part, whole, tmpl, tmpl)
}

// JSONSubsetFmt is JSONSubset with independent structural and
// value mismatch templates, as in SubsetFmt.
func JSONSubsetFmt(
	part, whole []byte,
	structureMsgFmt, valueMsgFmt string,
) {
	SubsetFmt(
		decodeJSON(part, "part"),
		decodeJSON(whole, "whole"),
		structureMsgFmt, valueMsgFmt,
	)
}

// YAMLSubset parses two YAML documents and fails unless the
// first is structurally contained in the second. See Subset for
// the containment rules.
func YAMLSubset(part, whole []byte, msgFmt ...string) {
	tmpl := pickFmt(msgFmt)
	YAMLSubsetFmt(part, whole, tmpl, tmpl)
}

// YAMLSubsetFmt is YAMLSubset with independent structural and
// value mismatch templates, as in SubsetFmt.
func YAMLSubsetFmt(
	part, whole []byte,
	structureMsgFmt, valueMsgFmt string,
) {
	SubsetFmt(
		decodeYAML(part, "part"),
		decodeYAML(whole, "whole"),
		structureMsgFmt, valueMsgFmt,
	)
}
