package asserts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEqualPasses(t *testing.T) {
	tests := []struct {
		name   string
		first  any
		second any
	}{
		{
			"identical",
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1, "b": 2},
		},
		{
			"cross type values",
			map[string]int{"a": 1},
			map[string]float64{"a": 1.0},
		},
		{"empty", map[string]int{}, map[string]int{}},
		{
			"nested values",
			map[string][]int{"a": {1, 2}},
			map[string][]int{"a": {1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() {
				MapEqual(tt.first, tt.second)
			})
		})
	}
}

func TestMapEqualKeyMismatch(t *testing.T) {
	tests := []struct {
		name   string
		first  any
		second any
		msg    string
	}{
		{
			"missing key",
			map[string]int{"a": 1},
			map[string]int{"a": 1, "b": 2},
			"key sets differ: missing keys: 'b'",
		},
		{
			"extra key",
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1},
			"key sets differ: extra keys: 'b'",
		},
		{
			"both sorted",
			map[string]int{"c": 3, "a": 1},
			map[string]int{"b": 2, "d": 4, "a": 1},
			"key sets differ: missing keys: 'b', 'd'; " +
				"extra keys: 'c'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := captureFailure(t, func() {
				MapEqual(tt.first, tt.second)
			})
			assert.Equal(t, tt.msg, s.Message())
		})
	}
}

func TestMapEqualValueMismatch(t *testing.T) {
	s := captureFailure(t, func() {
		MapEqual(
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1, "b": 3},
		)
	})
	assert.Equal(
		t, "value of key 'b' differs: 2 != 3", s.Message(),
	)
}

func TestMapEqualFmtTemplates(t *testing.T) {
	s := captureFailure(t, func() {
		MapEqualFmt(
			map[string]int{"a": 1},
			map[string]int{"b": 1},
			"keys wrong: {msg}",
			"value wrong for {key}",
		)
	})
	assert.Equal(
		t,
		"keys wrong: key sets differ: "+
			"missing keys: 'b'; extra keys: 'a'",
		s.Message(),
	)

	s = captureFailure(t, func() {
		MapEqualFmt(
			map[string]int{"a": 1},
			map[string]int{"a": 2},
			"keys wrong: {msg}",
			"value wrong for {key}: {first_value} vs {second_value}",
		)
	})
	assert.Equal(t, "value wrong for a: 1 vs 2", s.Message())
}

func TestMapEqualRequiresMaps(t *testing.T) {
	captureUsageError(t, func() {
		MapEqual(5, map[string]int{})
	})
	captureUsageError(t, func() {
		MapEqual(map[string]int{}, []int{})
	})
	captureUsageError(t, func() {
		MapEqual(map[int]int{1: 1}, map[string]int{})
	})
}

func TestMapSupersetPasses(t *testing.T) {
	tests := []struct {
		name  string
		part  any
		whole any
	}{
		{
			"strict subset",
			map[string]int{"a": 1},
			map[string]int{"a": 1, "b": 2},
		},
		{
			"equal maps",
			map[string]int{"a": 1},
			map[string]int{"a": 1},
		},
		{
			"empty part",
			map[string]int{},
			map[string]int{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNoPanic(t, func() {
				MapSuperset(tt.part, tt.whole)
			})
		})
	}
}

func TestMapSupersetFails(t *testing.T) {
	s := captureFailure(t, func() {
		MapSuperset(
			map[string]int{"a": 1, "x": 9},
			map[string]int{"a": 1},
		)
	})
	assert.Equal(t, "missing keys: 'x'", s.Message())

	s = captureFailure(t, func() {
		MapSuperset(
			map[string]int{"a": 2},
			map[string]int{"a": 1, "b": 2},
		)
	})
	assert.Equal(
		t, "value of key 'a' differs: 2 != 1", s.Message(),
	)
}

func TestMapSupersetFmtTemplates(t *testing.T) {
	s := captureFailure(t, func() {
		MapSupersetFmt(
			map[string]int{"a": 2},
			map[string]int{"a": 1},
			"structure: {msg}",
			"{key} holds {whole_value}, wanted {part_value}",
		)
	})
	assert.Equal(t, "a holds 1, wanted 2", s.Message())
}
