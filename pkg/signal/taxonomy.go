package signal

// The module's own signal taxonomy. The three kinds are distinct
// roots: none matches the others, so a scope expecting assertion
// failures never swallows a template or usage bug.
var (
	// Failure is the kind of every normal "assertion did not
	// hold" signal.
	Failure = NewKind("AssertionFailure")

	// FormatError marks a message template that references an
	// unknown name or an unresolvable path. It indicates a bug
	// in the calling test code, not a failed assertion.
	FormatError = NewKind("FormatError")

	// UsageError marks misuse of the library API itself, such
	// as reading a matcher's captured signal before its scope
	// has closed.
	UsageError = NewKind("UsageError")
)
