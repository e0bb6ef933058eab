package logging

// NullLogger discards all log output. It is useful for tests
// and benchmarks where logging overhead is not desired.
type NullLogger struct{}

// Info is a no-op.
func (NullLogger) Info(_ string, _ ...Field) {}

// Warn is a no-op.
func (NullLogger) Warn(_ string, _ ...Field) {}

// Error is a no-op.
func (NullLogger) Error(_ string, _ ...Field) {}

// Debug is a no-op.
func (NullLogger) Debug(_ string, _ ...Field) {}

// Close is a no-op.
func (NullLogger) Close() error { return nil }
