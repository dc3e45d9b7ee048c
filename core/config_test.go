package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cubes.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ColorBlack, cfg.ClearColor)
	assert.True(t, cfg.Window.VSync)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
seed = 42

[window]
width = 800
title = "cubes"

[clear_color]
r = 0.1
a = 1.0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 640, cfg.Window.Height, "missing keys keep defaults")
	assert.Equal(t, "cubes", cfg.Window.Title)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Color{R: 0.1, A: 1}, cfg.ClearColor)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[window\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[window]\nwidth = -1\n"))
	assert.ErrorContains(t, err, "window size")

	_, err = LoadConfig(writeConfig(t, "log_level = \"loud\"\n"))
	assert.ErrorContains(t, err, "log level")
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLogLevel("")
	assert.Error(t, err)
}
