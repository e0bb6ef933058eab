package asserts

import (
	"digital.vasic.asserts/pkg/format"
	"digital.vasic.asserts/pkg/signal"
	"digital.vasic.asserts/pkg/warn"
)

// WarnsContext is the scoped matcher for advisory signals. On
// entry it installs an interception handler that redirects
// every advisory signal raised during the scope into a capture
// buffer; on exit the handler is uninstalled unconditionally and
// the buffer is checked for at least one record matching the
// expected kind and all registered predicates. Records are never
// consumed, so duplicate matches are fine. A context is
// single-use.
type WarnsContext struct {
	kind     *signal.Kind
	msgFmt   string
	unmetMsg string
	extra    format.Context
	checks   []func(warn.Record) bool
	records  []warn.Record
	restore  func()
	entered  bool
	exited   bool
}

// Warns creates a matcher expecting an advisory signal of the
// given kind (or any kind derived from it) inside the scope.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the expected kind
//   - name - the expected kind's display name
func Warns(kind *signal.Kind, msgFmt ...string) *WarnsContext {
	return &WarnsContext{
		kind:     kind,
		msgFmt:   pickFmt(msgFmt),
		unmetMsg: kind.Name() + " not issued",
	}
}

// AddCheck registers a predicate that a captured record must
// satisfy, in addition to the kind match, for the expectation
// to be met.
func (c *WarnsContext) AddCheck(check func(warn.Record) bool) {
	if c.exited {
		signal.Raise(
			signal.UsageError,
			"cannot add checks to a finished warns context",
		)
	}
	c.checks = append(c.checks, check)
}

// Enter installs the interception handler. A context cannot be
// re-entered.
func (c *WarnsContext) Enter() {
	if c.entered {
		signal.Raise(
			signal.UsageError,
			"warns context is not reusable",
		)
	}
	c.entered = true
	c.restore = warn.Push(func(r warn.Record) {
		c.records = append(c.records, r)
	})
}

// Exit uninstalls the interception handler first, whatever the
// outcome, so advisory signals raised after the scope are never
// captured retroactively. A non-nil outcome is then passed on
// unchanged without evaluating the expectation. Otherwise the
// expectation is checked against the captured records.
func (c *WarnsContext) Exit(outcome any) {
	if !c.entered || c.exited {
		signal.Raise(
			signal.UsageError,
			"warns context exited without entering",
		)
	}
	c.exited = true
	c.restore()

	if outcome != nil {
		panic(outcome)
	}

	for _, r := range c.records {
		if c.matches(r) {
			return
		}
	}
	ctx := format.Context{
		{Key: "kind", Value: c.kind},
		{Key: "name", Value: c.kind.Name()},
	}
	raiseFailure(c.msgFmt, c.unmetMsg, append(ctx, c.extra...))
}

// matches reports whether a captured record has the expected
// kind and satisfies every registered predicate.
func (c *WarnsContext) matches(r warn.Record) bool {
	if r.Kind == nil || !r.Kind.Is(c.kind) {
		return false
	}
	for _, check := range c.checks {
		if !check(r) {
			return false
		}
	}
	return true
}

// Do runs the block inside the scope with Exit under defer, so
// the interception handler is uninstalled however the block
// terminates.
func (c *WarnsContext) Do(block func()) {
	c.Enter()
	defer func() {
		c.Exit(recover())
	}()
	block()
}

// Records returns every advisory signal captured during the
// scope, of any kind, in capture order. Reading the buffer
// before the scope has exited is a caller bug.
func (c *WarnsContext) Records() []warn.Record {
	if !c.exited {
		signal.Raise(
			signal.UsageError,
			"captured records read before scope exit",
		)
	}
	return c.records
}

// WarnsRegex creates a matcher expecting an advisory signal of
// the given kind whose message matches the regular expression.
// The pattern can be a string or a *regexp.Regexp.
//
// The following template names are supported:
//   - msg - the default error message
//   - kind - the expected kind
//   - name - the expected kind's display name
//   - pattern - the regular expression pattern as a string
func WarnsRegex(
	kind *signal.Kind,
	pattern any,
	msgFmt ...string,
) *WarnsContext {
	re := compilePattern(pattern)

	c := Warns(kind, msgFmt...)
	c.unmetMsg = "no " + kind.Name() + " matching '" +
		re.String() + "' issued"
	c.extra = format.Context{
		{Key: "pattern", Value: re.String()},
	}
	c.AddCheck(func(r warn.Record) bool {
		return re.MatchString(r.Message)
	})
	return c
}
