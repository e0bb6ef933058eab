// Package format renders assertion failure messages. A message
// template contains named placeholders that are resolved against
// an ordered context of values; placeholders support attribute
// and index access into structured values. Templates that
// reference anything the context cannot resolve raise a
// FormatError signal, which marks a bug in the calling test code
// rather than a failed assertion.
package format

// Field is a single named value made available to a message
// template.
type Field struct {
	Key   string
	Value any
}

// Context is the ordered set of named values for one message.
// It is assembled fresh for every assertion call. Lookup scans
// in order, so earlier entries shadow later duplicates.
type Context []Field

// Lookup returns the first value registered under the given
// name.
func (c Context) Lookup(name string) (any, bool) {
	for _, f := range c {
		if f.Key == name {
			return f.Value, true
		}
	}
	return nil, false
}
