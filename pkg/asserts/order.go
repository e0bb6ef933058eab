package asserts

import (
	stdcmp "cmp"
	"fmt"

	"digital.vasic.asserts/pkg/format"
)

// Less fails if first is not less than second.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func Less[T stdcmp.Ordered](first, second T, msgFmt ...string) {
	if !(first < second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" is not less than "+
				format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// LessEqual fails if first is not less than or equal to second.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func LessEqual[T stdcmp.Ordered](first, second T, msgFmt ...string) {
	if !(first <= second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+
				" is not less than or equal to "+
				format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// Greater fails if first is not greater than second.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func Greater[T stdcmp.Ordered](first, second T, msgFmt ...string) {
	if !(first > second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+" is not greater than "+
				format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// GreaterEqual fails if first is not greater than or equal to
// second.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
func GreaterEqual[T stdcmp.Ordered](first, second T, msgFmt ...string) {
	if !(first >= second) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(first)+
				" is not greater than or equal to "+
				format.Display(second),
			format.Context{
				{Key: "first", Value: first},
				{Key: "second", Value: second},
			},
		)
	}
}

// Between fails if an expression is not between certain bounds
// (inclusive).
//
// The following template names are supported:
//   - msg - the default error message
//   - lower - the lower bound
//   - upper - the upper bound
//   - expr - the tested expression
func Between[T stdcmp.Ordered](
	lower, upper, expr T,
	msgFmt ...string,
) {
	if !(lower <= expr && expr <= upper) {
		raiseFailure(
			pickFmt(msgFmt),
			fmt.Sprintf(
				"%s is not between %v and %v",
				format.Display(expr), lower, upper,
			),
			format.Context{
				{Key: "lower", Value: lower},
				{Key: "upper", Value: upper},
				{Key: "expr", Value: expr},
			},
		)
	}
}
