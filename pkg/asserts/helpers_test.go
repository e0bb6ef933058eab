package asserts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"digital.vasic.asserts/pkg/signal"
)

// captureSignal runs fn, which must panic with a *signal.Signal,
// and returns the captured signal.
func captureSignal(t *testing.T, fn func()) *signal.Signal {
	t.Helper()
	var caught *signal.Signal
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a raised signal")
			s, ok := r.(*signal.Signal)
			require.True(t, ok, "panic value is not a signal: %v", r)
			caught = s
		}()
		fn()
	}()
	return caught
}

// captureFailure runs fn and returns the AssertionFailure it
// raises, failing the test for any other outcome.
func captureFailure(t *testing.T, fn func()) *signal.Signal {
	t.Helper()
	s := captureSignal(t, fn)
	require.True(
		t, s.Kind().Is(signal.Failure),
		"expected AssertionFailure, got %s", s.Kind(),
	)
	return s
}

// captureUsageError runs fn and returns the UsageError it
// raises, failing the test for any other outcome.
func captureUsageError(t *testing.T, fn func()) *signal.Signal {
	t.Helper()
	s := captureSignal(t, fn)
	require.True(
		t, s.Kind().Is(signal.UsageError),
		"expected UsageError, got %s", s.Kind(),
	)
	return s
}

// requireNoPanic runs fn and fails the test if it panics.
func requireNoPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}
