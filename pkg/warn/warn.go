// Package warn implements advisory signals: non-propagating
// notifications that flow to an ambient destination instead of
// unwinding the stack. A process-wide handler stack lets scoped
// matchers intercept every advisory signal emitted during a
// delimited block and restore the previous destination on exit.
package warn

import (
	"fmt"
	"sync"

	"digital.vasic.asserts/pkg/logging"
	"digital.vasic.asserts/pkg/signal"
)

// Built-in advisory kinds. Advisory is the root; deriving from
// it keeps user-defined warning kinds matchable against the
// whole family.
var (
	// Advisory is the root kind of all advisory signals.
	Advisory = signal.NewKind("Warning")

	// Deprecation marks use of a feature scheduled for
	// removal.
	Deprecation = Advisory.Derive("DeprecationWarning")

	// User is the general-purpose advisory kind.
	User = Advisory.Derive("UserWarning")
)

// Record is one captured advisory signal.
type Record struct {
	// Kind is the advisory signal's category.
	Kind *signal.Kind

	// Message is the advisory signal's payload text.
	Message string
}

// Handler receives advisory signals emitted while it is the top
// of the interception stack.
type Handler func(Record)

var (
	mu       sync.Mutex
	handlers []Handler
	fallback logging.Logger = logging.NewConsoleLogger(false)
)

// Emit raises an advisory signal. It is delivered to the
// topmost installed handler, or to the default logger when no
// handler is installed. Emit never interrupts control flow.
func Emit(kind *signal.Kind, message string) {
	mu.Lock()
	var top Handler
	if len(handlers) > 0 {
		top = handlers[len(handlers)-1]
	}
	dest := fallback
	mu.Unlock()

	if top != nil {
		top(Record{Kind: kind, Message: message})
		return
	}
	dest.Warn(message, logging.StringField("kind", kind.Name()))
}

// Emitf raises an advisory signal with a formatted message.
func Emitf(kind *signal.Kind, format string, args ...any) {
	Emit(kind, fmt.Sprintf(format, args...))
}

// Push installs a handler on top of the interception stack and
// returns a restore function that removes it together with any
// handlers pushed above it and not yet restored. Restore is
// idempotent and must be called when the installing scope ends,
// whatever the outcome.
func Push(h Handler) (restore func()) {
	mu.Lock()
	handlers = append(handlers, h)
	depth := len(handlers)
	mu.Unlock()

	return func() {
		mu.Lock()
		if len(handlers) >= depth {
			handlers = handlers[:depth-1]
		}
		mu.Unlock()
	}
}

// SetDefaultLogger replaces the destination used when no
// handler is installed and returns the previous one. Tests use
// this to silence advisory output.
func SetDefaultLogger(l logging.Logger) logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := fallback
	fallback = l
	return prev
}
