// Package asserts provides standalone rich assertions for unit
// tests and production invariant checks. Every assertion
// evaluates a predicate and raises an AssertionFailure signal
// with a human-readable message when it does not hold. The
// default message can be replaced via an optional trailing
// message template that keeps access to the assertion's computed
// values:
//
//	asserts.Equal(13, 14)
//	// AssertionFailure: 13 != 14
//
//	asserts.Equal(13, 14, "unexpected result: {first} != {second}")
//	// AssertionFailure: unexpected result: 13 != 14
//
// Scoped matchers verify that a delimited block raises (or does
// not raise) a signal of an expected kind:
//
//	asserts.Raises(myKind).Do(func() {
//		signal.Raise(myKind, "boom")
//	})
package asserts

import (
	"regexp"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// pickFmt selects the message template from an optional trailing
// argument, defaulting to the passthrough template.
func pickFmt(msgFmt []string) string {
	if len(msgFmt) > 0 && msgFmt[0] != "" {
		return msgFmt[0]
	}
	return format.Default
}

// raiseFailure renders the failure message and raises an
// AssertionFailure signal.
func raiseFailure(msgFmt, defaultMsg string, ctx format.Context) {
	signal.Raise(
		signal.Failure,
		format.Message(msgFmt, defaultMsg, ctx),
	)
}

// compilePattern accepts a regular expression given either as a
// pattern string or as a compiled *regexp.Regexp. Anything else,
// including an invalid pattern string, is a caller bug and
// raises UsageError.
func compilePattern(pattern any) *regexp.Regexp {
	switch p := pattern.(type) {
	case *regexp.Regexp:
		return p
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			signal.Raisef(
				signal.UsageError,
				"invalid regular expression %q: %v", p, err,
			)
		}
		return re
	}
	signal.Raisef(
		signal.UsageError,
		"pattern must be a string or *regexp.Regexp, got %T",
		pattern,
	)
	return nil
}

// Fail raises an AssertionFailure with the given message. An
// empty message falls back to "assertion failure". It never
// returns.
func Fail(msg string) {
	if msg == "" {
		msg = "assertion failure"
	}
	signal.Raise(signal.Failure, msg)
}
