package asserts

import (
	"fmt"
	"strings"

	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// State classifies the lifecycle of a scoped matcher.
type State int

const (
	// StateNew is a matcher that has not entered its scope.
	StateNew State = iota
	// StateArmed is a matcher whose scope is running.
	StateArmed
	// StateSatisfied means the expected signal was raised and
	// suppressed.
	StateSatisfied
	// StateUnsatisfiedAbsent means the scope ended without any
	// signal.
	StateUnsatisfiedAbsent
	// StateUnsatisfiedWrongKind means an unexpected signal was
	// raised and passed on unchanged.
	StateUnsatisfiedWrongKind
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateArmed:
		return "armed"
	case StateSatisfied:
		return "satisfied"
	case StateUnsatisfiedAbsent:
		return "unsatisfied (absent)"
	case StateUnsatisfiedWrongKind:
		return "unsatisfied (wrong kind)"
	default:
		return "unknown"
	}
}

// RaisesContext is a scoped matcher that verifies an expected
// signal is raised inside a delimited block. The scope is
// entered before the block and exited with the block's outcome;
// a context is single-use.
//
// When the scope exits without a signal, an AssertionFailure is
// raised. A signal of an unexpected kind is passed on unchanged.
// A matching signal is suppressed after running any registered
// supplementary checks against it, and stays available through
// Caught.
type RaisesContext struct {
	kinds  []*signal.Kind
	msgFmt string
	checks []func(*signal.Signal)
	extra  format.Context
	state  State
	caught *signal.Signal
}

// Raises creates a matcher expecting a signal of the given kind
// (or any kind derived from it) inside the scope.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the expected kind
//   - name - the expected kind's display name
func Raises(kind *signal.Kind, msgFmt ...string) *RaisesContext {
	return &RaisesContext{
		kinds:  []*signal.Kind{kind},
		msgFmt: pickFmt(msgFmt),
	}
}

// RaisesOneOf creates a matcher expecting a signal matching at
// least one of the given kinds.
func RaisesOneOf(
	kinds []*signal.Kind,
	msgFmt ...string,
) *RaisesContext {
	if len(kinds) == 0 {
		signal.Raise(
			signal.UsageError,
			"RaisesOneOf requires at least one kind",
		)
	}
	return &RaisesContext{
		kinds:  kinds,
		msgFmt: pickFmt(msgFmt),
	}
}

// displayName joins the expected kind names for messages.
func (c *RaisesContext) displayName() string {
	names := make([]string, len(c.kinds))
	for i, k := range c.kinds {
		names[i] = k.Name()
	}
	return strings.Join(names, ", ")
}

// exitContext assembles the template context for failures
// raised at scope exit.
func (c *RaisesContext) exitContext() format.Context {
	var kind any = c.kinds[0]
	if len(c.kinds) > 1 {
		kind = c.kinds
	}
	ctx := format.Context{
		{Key: "kind", Value: kind},
		{Key: "name", Value: c.displayName()},
	}
	return append(ctx, c.extra...)
}

// AddCheck registers a supplementary check to run against the
// captured signal once its kind has been confirmed. Checks run
// in registration order; the first failing check wins.
func (c *RaisesContext) AddCheck(check func(*signal.Signal)) {
	if c.state != StateNew && c.state != StateArmed {
		signal.Raise(
			signal.UsageError,
			"cannot add checks to a finished raises context",
		)
	}
	c.checks = append(c.checks, check)
}

// Enter arms the matcher. A context cannot be re-entered.
func (c *RaisesContext) Enter() {
	if c.state != StateNew {
		signal.Raise(
			signal.UsageError,
			"raises context is not reusable",
		)
	}
	c.state = StateArmed
}

// Exit classifies the block's outcome: nil when the block
// completed normally, otherwise the value recovered from it.
func (c *RaisesContext) Exit(outcome any) {
	if c.state != StateArmed {
		signal.Raise(
			signal.UsageError,
			"raises context exited without entering",
		)
	}

	if outcome == nil {
		c.state = StateUnsatisfiedAbsent
		raiseFailure(
			c.msgFmt,
			c.displayName()+" not raised",
			c.exitContext(),
		)
	}

	s, ok := outcome.(*signal.Signal)
	if !ok || !s.Kind().IsAny(c.kinds...) {
		c.state = StateUnsatisfiedWrongKind
		panic(outcome)
	}

	c.state = StateSatisfied
	c.caught = s
	for _, check := range c.checks {
		check(s)
	}
}

// Do runs the block inside the scope: Enter, the block, then
// Exit with whatever the block produced. Exit runs under defer,
// so classification happens however the block terminates.
func (c *RaisesContext) Do(block func()) {
	c.Enter()
	defer func() {
		c.Exit(recover())
	}()
	block()
}

// Caught returns the captured signal after the scope has exited
// satisfied. Reading it before scope exit, or when no matching
// signal was captured, is a caller bug.
func (c *RaisesContext) Caught() *signal.Signal {
	switch c.state {
	case StateSatisfied:
		return c.caught
	case StateNew, StateArmed:
		signal.Raise(
			signal.UsageError,
			"captured signal read before scope exit",
		)
	default:
		signal.Raise(
			signal.UsageError,
			"no signal was captured",
		)
	}
	return nil
}

// State returns the matcher's classification.
func (c *RaisesContext) State() State {
	return c.state
}

// RaisesRegex creates a matcher expecting a signal of the given
// kind whose message matches the regular expression. A matching
// signal without any message fails with its own default
// message. The pattern can be a string or a *regexp.Regexp.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the expected kind
//   - name - the expected kind's display name
//   - text - the actual signal message
//   - pattern - the regular expression pattern as a string
func RaisesRegex(
	kind *signal.Kind,
	pattern any,
	msgFmt ...string,
) *RaisesContext {
	re := compilePattern(pattern)
	tmpl := pickFmt(msgFmt)

	c := Raises(kind, tmpl)
	c.extra = format.Context{
		{Key: "text", Value: ""},
		{Key: "pattern", Value: re.String()},
	}
	c.AddCheck(func(s *signal.Signal) {
		ctx := format.Context{
			{Key: "text", Value: s.Message()},
			{Key: "pattern", Value: re.String()},
			{Key: "kind", Value: kind},
			{Key: "name", Value: kind.Name()},
		}
		if s.Message() == "" {
			raiseFailure(
				tmpl,
				kind.Name()+" without message",
				ctx,
			)
		}
		if !re.MatchString(s.Message()) {
			raiseFailure(
				tmpl,
				"'"+s.Message()+"' does not match '"+
					re.String()+"'",
				ctx,
			)
		}
	})
	return c
}

// RaisesCode creates a matcher expecting a signal of the given
// kind carrying the given numeric code. A matching signal
// without any code fails with its own default message.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the expected kind
//   - name - the expected kind's display name
//   - expected_code - the code the matcher expects
//   - actual_code - the code the signal carried, or nil
func RaisesCode(
	kind *signal.Kind,
	code int,
	msgFmt ...string,
) *RaisesContext {
	tmpl := pickFmt(msgFmt)

	c := Raises(kind, tmpl)
	c.extra = format.Context{
		{Key: "expected_code", Value: code},
		{Key: "actual_code", Value: nil},
	}
	c.AddCheck(func(s *signal.Signal) {
		actual, ok := s.Code()
		if !ok {
			raiseFailure(
				tmpl,
				kind.Name()+" without code",
				format.Context{
					{Key: "expected_code", Value: code},
					{Key: "actual_code", Value: nil},
					{Key: "kind", Value: kind},
					{Key: "name", Value: kind.Name()},
				},
			)
		}
		if actual != code {
			raiseFailure(
				tmpl,
				fmt.Sprintf("wrong code: %d != %d", code, actual),
				format.Context{
					{Key: "expected_code", Value: code},
					{Key: "actual_code", Value: actual},
					{Key: "kind", Value: kind},
					{Key: "name", Value: kind.Name()},
				},
			)
		}
	})
	return c
}
