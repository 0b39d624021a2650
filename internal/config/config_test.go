package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ezgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\n  format: json\ngrid:\n  values: number\noutput:\n  pretty: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "number", cfg.Grid.Values)
	assert.True(t, cfg.Output.Pretty)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\n")
	t.Setenv("EZGRID_LOGGING_LEVEL", "error")
	t.Setenv("EZGRID_GRID_VALUES", "number")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "number", cfg.Grid.Values)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"bad values", "grid:\n  values: dates\n"},
		{"bad yaml", "logging: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
