package asserts

import (
	"fmt"
	"math"

	"digital.vasic.asserts/pkg/format"
)

// defaultPlaces is the rounding precision used by AlmostEqual.
const defaultPlaces = 7

// roundsToZero reports whether the difference rounds to zero at
// the given number of decimal places.
func roundsToZero(diff float64, places int) bool {
	return math.Round(diff*math.Pow(10, float64(places))) == 0
}

func almostEqualPlaces(
	first, second float64,
	places int,
	msgFmt string,
	want bool,
) {
	equal := roundsToZero(second-first, places)
	if equal == want {
		return
	}
	op := " != "
	if !want {
		op = " == "
	}
	raiseFailure(
		msgFmt,
		format.Display(first)+op+format.Display(second)+
			fmt.Sprintf(" within %d places", places),
		format.Context{
			{Key: "first", Value: first},
			{Key: "second", Value: second},
			{Key: "places", Value: places},
		},
	)
}

func almostEqualDelta(
	first, second, delta float64,
	msgFmt string,
	want bool,
) {
	equal := math.Abs(second-first) < delta
	if equal == want {
		return
	}
	op := " != "
	if !want {
		op = " == "
	}
	raiseFailure(
		msgFmt,
		format.Display(first)+op+format.Display(second)+
			fmt.Sprintf(" with delta=%v", delta),
		format.Context{
			{Key: "first", Value: first},
			{Key: "second", Value: second},
			{Key: "delta", Value: delta},
		},
	)
}

// AlmostEqual fails if first and second are not equal after
// rounding their difference to 7 decimal places.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - places - the rounding precision
func AlmostEqual(first, second float64, msgFmt ...string) {
	almostEqualPlaces(
		first, second, defaultPlaces, pickFmt(msgFmt), true,
	)
}

// AlmostEqualPlaces fails if first and second are not equal
// after rounding their difference to the given number of
// decimal places.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - places - the rounding precision
func AlmostEqualPlaces(
	first, second float64,
	places int,
	msgFmt ...string,
) {
	almostEqualPlaces(first, second, places, pickFmt(msgFmt), true)
}

// AlmostEqualDelta fails if the difference between first and
// second is not smaller than delta.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - delta - the maximum allowed difference
func AlmostEqualDelta(
	first, second, delta float64,
	msgFmt ...string,
) {
	almostEqualDelta(first, second, delta, pickFmt(msgFmt), true)
}

// NotAlmostEqual fails if first and second are equal after
// rounding their difference to 7 decimal places.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - places - the rounding precision
func NotAlmostEqual(first, second float64, msgFmt ...string) {
	almostEqualPlaces(
		first, second, defaultPlaces, pickFmt(msgFmt), false,
	)
}

// NotAlmostEqualPlaces fails if first and second are equal
// after rounding their difference to the given number of
// decimal places.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - places - the rounding precision
func NotAlmostEqualPlaces(
	first, second float64,
	places int,
	msgFmt ...string,
) {
	almostEqualPlaces(first, second, places, pickFmt(msgFmt), false)
}

// NotAlmostEqualDelta fails if the difference between first and
// second is smaller than delta.
//
// The following template names are supported:
//   - msg - the default error message
//   - first - the first argument
//   - second - the second argument
//   - delta - the maximum allowed difference
func NotAlmostEqualDelta(
	first, second, delta float64,
	msgFmt ...string,
) {
	almostEqualDelta(first, second, delta, pickFmt(msgFmt), false)
}
