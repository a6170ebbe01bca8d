package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fsbrowse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// No fsbrowse.yaml in the working directory of the test binary
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.CaseSensitive)
	assert.False(t, cfg.StrictReparse)
	assert.Empty(t, cfg.IgnoreFile)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `root: /data
format: JSON
case_sensitive: true
strict_reparse: true
ignore_file: /data/.fsignore
log_level: debug
no_color: true
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.Root)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.StrictReparse)
	assert.Equal(t, "/data/.fsignore", cfg.IgnoreFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")
	t.Setenv("FSBROWSE_FORMAT", "json")
	t.Setenv("FSBROWSE_STRICT_REPARSE", "true")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.StrictReparse)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("MissingExplicitFile", func(t *testing.T) {
		_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := Load(New(), writeConfig(t, "format: xml\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("UnknownLogLevel", func(t *testing.T) {
		_, err := Load(New(), writeConfig(t, "log_level: loud\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loud")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn"}
	logger := cfg.NewLogger(&buf)

	logger.Debug("hidden")
	logger.Warn("shown", slog.String("path", "/tmp"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=/tmp")
}
