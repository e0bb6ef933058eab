package asserts

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegexPasses(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern any
	}{
		{"literal", "hello world", "world"},
		{"anchored", "hello", "^hello$"},
		{"class", "abc123", `[a-z]+\d+`},
		{"unanchored search", "xx foo yy", "foo"},
		{
			"compiled pattern",
			"hello",
			regexp.MustCompile(`^h.*o$`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() {
				Regex(tt.text, tt.pattern)
			})
		})
	}
}

func TestRegexFails(t *testing.T) {
	s := captureFailure(t, func() {
		Regex("hello", "^world$")
	})
	assert.Equal(
		t, "'hello' does not match '^world$'", s.Message(),
	)
}

func TestRegexCustomTemplate(t *testing.T) {
	s := captureFailure(t, func() {
		Regex("abc", "xyz", "no {pattern} in {text}")
	})
	assert.Equal(t, "no xyz in abc", s.Message())
}

func TestRegexInvalidPattern(t *testing.T) {
	captureUsageError(t, func() { Regex("abc", "[") })
	captureUsageError(t, func() { Regex("abc", 42) })
}
