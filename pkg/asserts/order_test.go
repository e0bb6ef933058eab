package asserts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderingPasses(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"less ints", func() { Less(1, 2) }},
		{"less strings", func() { Less("a", "b") }},
		{"less floats", func() { Less(1.5, 1.6) }},
		{"less equal strict", func() { LessEqual(1, 2) }},
		{"less equal same", func() { LessEqual(2, 2) }},
		{"greater", func() { Greater(3, 2) }},
		{"greater equal strict", func() { GreaterEqual(3, 2) }},
		{"greater equal same", func() { GreaterEqual(2, 2) }},
		{"between inside", func() { Between(5, 15, 10) }},
		{"between lower bound", func() { Between(5, 15, 5) }},
		{"between upper bound", func() { Between(5, 15, 15) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, tt.fn)
		})
	}
}

func TestOrderingFails(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		msg  string
	}{
		{
			"less equal args",
			func() { Less(2, 2) },
			"2 is not less than 2",
		},
		{
			"less reversed",
			func() { Less(3, 2) },
			"3 is not less than 2",
		},
		{
			"less equal reversed",
			func() { LessEqual(3, 2) },
			"3 is not less than or equal to 2",
		},
		{
			"greater equal args",
			func() { Greater(2, 2) },
			"2 is not greater than 2",
		},
		{
			"greater equal reversed",
			func() { GreaterEqual(1, 2) },
			"1 is not greater than or equal to 2",
		},
		{
			"between below",
			func() { Between(5.0, 15.0, 4.9) },
			"4.9 is not between 5 and 15",
		},
		{
			"between above",
			func() { Between(5, 15, 16) },
			"16 is not between 5 and 15",
		},
		{
			"between strings",
			func() { Between("b", "d", "a") },
			"'a' is not between b and d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := captureFailure(t, tt.fn)
			assert.Equal(t, tt.msg, s.Message())
		})
	}
}

func TestBetweenCustomTemplate(t *testing.T) {
	s := captureFailure(t, func() {
		Between(5, 15, 16, "{expr} outside [{lower}, {upper}]")
	})
	assert.Equal(t, "16 outside [5, 15]", s.Message())
}
