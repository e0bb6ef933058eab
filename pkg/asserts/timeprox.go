package asserts

import (
	"time"

	"digital.vasic.asserts/pkg/format"
)

// epsilon is the tolerance window of TimeAboutNow.
const epsilon = 5 * time.Second

// TimeAboutNow fails if the given time is not within 5 seconds
// of the current time. The reference time is sampled once and
// shared by both bounds. A zero time value fails with its own
// message.
//
// The following template names are supported:
//   - msg - the default error message
//   - actual - the time under test
//   - now - the current time tested against
func TimeAboutNow(actual time.Time, msgFmt ...string) {
	now := time.Now()
	ctx := format.Context{
		{Key: "actual", Value: actual},
		{Key: "now", Value: now},
	}
	if actual.IsZero() {
		raiseFailure(
			pickFmt(msgFmt),
			"zero time is not a valid date/time",
			ctx,
		)
	}
	lower := now.Add(-epsilon)
	upper := now.Add(epsilon)
	if actual.Before(lower) || actual.After(upper) {
		raiseFailure(
			pickFmt(msgFmt),
			format.Display(actual)+
				" is not close to current date/time",
			ctx,
		)
	}
}
