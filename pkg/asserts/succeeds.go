package asserts

import (
	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
)

// SucceedsContext is the inverse scoped matcher: it fails when
// a signal of the declared kind is raised inside the scope.
// Signals of other kinds pass through unchanged, so unrelated
// errors still surface normally. A context is single-use.
type SucceedsContext struct {
	kind    *signal.Kind
	msgFmt  string
	entered bool
	exited  bool
}

// Succeeds creates a matcher declaring that running the block
// without the given signal kind is the success condition of the
// scope.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the declared kind
//   - name - the declared kind's display name
//   - signal - the signal that was raised
func Succeeds(kind *signal.Kind, msgFmt ...string) *SucceedsContext {
	return &SucceedsContext{
		kind:   kind,
		msgFmt: pickFmt(msgFmt),
	}
}

// Enter arms the matcher. A context cannot be re-entered.
func (c *SucceedsContext) Enter() {
	if c.entered {
		signal.Raise(
			signal.UsageError,
			"succeeds context is not reusable",
		)
	}
	c.entered = true
}

// Exit inspects the block's outcome: a signal of the declared
// kind raises an AssertionFailure, any other non-nil outcome is
// passed on unchanged.
func (c *SucceedsContext) Exit(outcome any) {
	if !c.entered || c.exited {
		signal.Raise(
			signal.UsageError,
			"succeeds context exited without entering",
		)
	}
	c.exited = true

	if outcome == nil {
		return
	}
	if s, ok := outcome.(*signal.Signal); ok && s.Kind().Is(c.kind) {
		raiseFailure(
			c.msgFmt,
			c.kind.Name()+" was unexpectedly raised",
			format.Context{
				{Key: "kind", Value: c.kind},
				{Key: "name", Value: c.kind.Name()},
				{Key: "signal", Value: s},
			},
		)
	}
	panic(outcome)
}

// Do runs the block inside the scope with Exit under defer.
func (c *SucceedsContext) Do(block func()) {
	c.Enter()
	defer func() {
		c.Exit(recover())
	}()
	block()
}
