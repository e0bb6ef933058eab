package asserts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruePasses(t *testing.T) {
	tests := []struct {
		name string
		expr any
	}{
		{"bool", true},
		{"non-zero int", 1},
		{"negative int", -1},
		{"non-empty string", "x"},
		{"non-empty slice", []int{0}},
		{"non-empty map", map[string]int{"a": 1}},
		{"non-zero struct", struct{ N int }{N: 1}},
		{"pointer", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() { True(tt.expr) })
		})
	}
}

func TestTrueFails(t *testing.T) {
	tests := []struct {
		name string
		expr any
		msg  string
	}{
		{"false", false, "false is not truthy"},
		{"zero", 0, "0 is not truthy"},
		{"empty string", "", "'' is not truthy"},
		{"nil", nil, "nil is not truthy"},
		{"empty slice", []int{}, "[] is not truthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := captureFailure(t, func() { True(tt.expr) })
			assert.Equal(t, tt.msg, s.Message())
		})
	}
}

func TestFalse(t *testing.T) {
	requireNoPanic(t, func() { False(false) })
	requireNoPanic(t, func() { False(0) })
	requireNoPanic(t, func() { False("") })
	requireNoPanic(t, func() { False(nil) })

	s := captureFailure(t, func() { False(3) })
	assert.Equal(t, "3 is not falsy", s.Message())
}

func TestNil(t *testing.T) {
	var p *int
	var m map[string]int
	requireNoPanic(t, func() { Nil(nil) })
	requireNoPanic(t, func() { Nil(p) })
	requireNoPanic(t, func() { Nil(m) })

	s := captureFailure(t, func() { Nil(5) })
	assert.Equal(t, "5 is not nil", s.Message())
}

func TestNotNil(t *testing.T) {
	requireNoPanic(t, func() { NotNil(0) })
	requireNoPanic(t, func() { NotNil("") })
	requireNoPanic(t, func() { NotNil(new(int)) })

	s := captureFailure(t, func() { NotNil(nil) })
	assert.Equal(t, "expression is nil", s.Message())

	var p *int
	s = captureFailure(t, func() { NotNil(p) })
	assert.Equal(t, "expression is nil", s.Message())
}

func TestTruthCustomTemplate(t *testing.T) {
	s := captureFailure(t, func() {
		True(0, "check failed: {msg} (value was {expr})")
	})
	assert.Equal(
		t,
		"check failed: 0 is not truthy (value was 0)",
		s.Message(),
	)
}

func TestFail(t *testing.T) {
	s := captureFailure(t, func() { Fail("custom reason") })
	assert.Equal(t, "custom reason", s.Message())

	s = captureFailure(t, func() { Fail("") })
	assert.Equal(t, "assertion failure", s.Message())
}
