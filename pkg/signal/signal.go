package signal

import "fmt"

// Signal is a raised error, failure, or advisory value. It
// carries a kind for matching, a human-readable message, and an
// optional numeric code (the OS errno analogue). Signals are
// immutable once created.
type Signal struct {
	kind    *Kind
	message string
	code    int
	hasCode bool
}

// New creates a signal of the given kind with a message.
func New(kind *Kind, message string) *Signal {
	return &Signal{kind: kind, message: message}
}

// Newf creates a signal with a fmt.Sprintf-formatted message.
func Newf(kind *Kind, format string, args ...any) *Signal {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithCode returns a copy of the signal carrying a numeric code.
func (s *Signal) WithCode(code int) *Signal {
	copied := *s
	copied.code = code
	copied.hasCode = true
	return &copied
}

// Kind returns the signal's kind.
func (s *Signal) Kind() *Kind {
	return s.kind
}

// Message returns the signal's message text.
func (s *Signal) Message() string {
	return s.message
}

// Code returns the signal's numeric code and whether one was
// set.
func (s *Signal) Code() (int, bool) {
	return s.code, s.hasCode
}

// Error implements the error interface so signals recovered by
// callers integrate with ordinary error handling.
func (s *Signal) Error() string {
	if s.message == "" {
		return s.kind.Name()
	}
	return s.kind.Name() + ": " + s.message
}

// Raise panics with a new signal of the given kind. It never
// returns.
func Raise(kind *Kind, message string) {
	panic(New(kind, message))
}

// Raisef panics with a new signal carrying a formatted message.
// It never returns.
func Raisef(kind *Kind, format string, args ...any) {
	panic(Newf(kind, format, args...))
}
