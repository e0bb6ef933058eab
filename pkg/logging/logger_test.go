package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"generic", LogField("k", 3.5), "k", 3.5},
		{"string", StringField("name", "x"), "name", "x"},
		{"int", IntField("count", 7), "count", 7},
		{
			"error",
			ErrorField(errors.New("boom")),
			"error", "boom",
		},
		{"nil error", ErrorField(nil), "error", "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}
