package format

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// displayState renders composite values deterministically: map
// keys are sorted and pointer addresses suppressed so the same
// inputs always produce the same message text.
var displayState = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Display renders a value for use inside a failure message.
// Strings are single-quoted so empty and whitespace-only values
// stay visible; nil renders as "nil"; scalars use their natural
// form and composite values are rendered by spew.
func Display(v any) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case string:
		return "'" + t + "'"
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprintf("%v", t)
	case fmt.Stringer:
		return t.String()
	case error:
		return "'" + t.Error() + "'"
	}
	return displayState.Sprintf("%v", v)
}

// renderValue converts a resolved placeholder value to its
// in-template text. Unlike Display, strings are inserted bare,
// matching how a substituted value reads inside a sentence.
func renderValue(v any) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(string); ok {
		return s
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return displayState.Sprintf("%v", v)
}
