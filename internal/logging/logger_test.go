package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Debug("hidden")
	logger.Info("Grid loaded", slog.Int("rows", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Grid loaded", entry["msg"])
	assert.Equal(t, float64(2), entry["rows"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("careful")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=careful")
}
