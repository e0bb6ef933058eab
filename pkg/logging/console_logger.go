package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// ConsoleLogger provides colored console output. Colors are
// suppressed when the NO_COLOR environment variable is set.
type ConsoleLogger struct {
	mu      sync.Mutex
	output  io.Writer
	verbose bool
	color   bool
}

// NewConsoleLogger creates a console logger writing to stderr.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &ConsoleLogger{
		output:  os.Stderr,
		verbose: verbose,
		color:   !noColor,
	}
}

// SetOutput redirects log output, mainly for tests.
func (c *ConsoleLogger) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output = w
}

func (c *ConsoleLogger) paint(color, text string) string {
	if !c.color {
		return text
	}
	return color + text + colorReset
}

func (c *ConsoleLogger) log(
	level LogLevel, color, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")

	var fieldStr string
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(
				parts,
				fmt.Sprintf("%s=%v", f.Key, f.Value),
			)
		}
		fieldStr = " " + c.paint(
			colorGray,
			fmt.Sprintf("{%s}", strings.Join(parts, ", ")),
		)
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		c.paint(colorGray, ts),
		c.paint(color, fmt.Sprintf("%-5s", level.String())),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, colorBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, colorYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, colorRed, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, colorGray, msg, fields...)
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
