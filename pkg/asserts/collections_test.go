package asserts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInPasses(t *testing.T) {
	tests := []struct {
		name      string
		element   any
		container any
	}{
		{"slice element", 2, []int{1, 2, 3}},
		{"numeric coercion", 2.0, []int{1, 2, 3}},
		{"array element", "b", [2]string{"a", "b"}},
		{"substring", "ell", "hello"},
		{"map key", "a", map[string]int{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() {
				In(tt.element, tt.container)
			})
		})
	}
}

func TestInFails(t *testing.T) {
	s := captureFailure(t, func() { In(5, []int{1, 2, 3}) })
	assert.Equal(t, "5 not in [1 2 3]", s.Message())

	s = captureFailure(t, func() { In("xyz", "hello") })
	assert.Equal(t, "'xyz' not in 'hello'", s.Message())
}

func TestNotIn(t *testing.T) {
	requireNoPanic(t, func() { NotIn(5, []int{1, 2, 3}) })
	requireNoPanic(t, func() { NotIn("xyz", "hello") })

	s := captureFailure(t, func() { NotIn(2, []int{1, 2}) })
	assert.Equal(t, "2 is in [1 2]", s.Message())
}

func TestInRequiresContainer(t *testing.T) {
	captureUsageError(t, func() { In(1, 5) })
	captureUsageError(t, func() { NotIn(1, 5) })
	// Substring search needs a string element.
	captureUsageError(t, func() { In(5, "hello") })
}

func TestCountEqualPasses(t *testing.T) {
	tests := []struct {
		name   string
		first  any
		second any
	}{
		{"same order", []int{1, 2, 3}, []int{1, 2, 3}},
		{"shuffled", []int{1, 2, 3}, []int{3, 1, 2}},
		{
			"duplicates preserved",
			[]int{1, 1, 2},
			[]int{2, 1, 1},
		},
		{"strings as runes", "abc", "cba"},
		{"empty", []int{}, []int{}},
		{
			"cross type numeric",
			[]any{1, 2.0},
			[]any{2, 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() {
				CountEqual(tt.first, tt.second)
			})
		})
	}
}

func TestCountEqualFails(t *testing.T) {
	tests := []struct {
		name   string
		first  any
		second any
		msg    string
	}{
		{
			"extra in second",
			[]int{1, 2},
			[]int{1, 2, 3},
			"missing from sequence 1: 3",
		},
		{
			"extra in first",
			[]int{1, 2, 3},
			[]int{1, 2},
			"missing from sequence 2: 3",
		},
		{
			"duplicate counts differ",
			[]int{1, 1, 2},
			[]int{1, 2, 2},
			"missing from sequence 1: 2; " +
				"missing from sequence 2: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := captureFailure(t, func() {
				CountEqual(tt.first, tt.second)
			})
			assert.Equal(t, tt.msg, s.Message())
		})
	}
}

func TestCountEqualRequiresSequences(t *testing.T) {
	captureUsageError(t, func() { CountEqual(5, []int{}) })
	captureUsageError(t, func() { CountEqual([]int{}, 5) })
	captureUsageError(t, func() {
		CountEqual(map[string]int{}, []int{})
	})
}
