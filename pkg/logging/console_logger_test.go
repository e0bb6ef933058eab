package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	logger := NewConsoleLogger(verbose)
	logger.color = false
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	return logger, buf
}

func TestConsoleLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *ConsoleLogger)
		level string
	}{
		{
			"info",
			func(l *ConsoleLogger) { l.Info("hello") },
			"[INFO ]",
		},
		{
			"warn",
			func(l *ConsoleLogger) { l.Warn("hello") },
			"[WARN ]",
		},
		{
			"error",
			func(l *ConsoleLogger) { l.Error("hello") },
			"[ERROR]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(false)
			tt.log(logger)
			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "hello")
		})
	}
}

func TestConsoleLoggerFields(t *testing.T) {
	logger, buf := newTestLogger(false)
	logger.Warn(
		"deprecated call",
		StringField("kind", "DeprecationWarning"),
		IntField("count", 2),
	)
	out := buf.String()
	assert.Contains(t, out, "deprecated call")
	assert.Contains(t, out, "{kind=DeprecationWarning, count=2}")
}

func TestConsoleLoggerDebugRespectsVerbose(t *testing.T) {
	logger, buf := newTestLogger(false)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger, buf = newTestLogger(true)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestConsoleLoggerClose(t *testing.T) {
	logger, _ := newTestLogger(false)
	require.NoError(t, logger.Close())
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	logger := NullLogger{}
	logger.Info("a")
	logger.Warn("b", LogField("k", 1))
	logger.Error("c")
	logger.Debug("d")
	assert.NoError(t, logger.Close())
}
