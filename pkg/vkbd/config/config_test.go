package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VKBD_CONFIG_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "toml", cfg.Prefs.Backend)
	assert.Equal(t, filepath.Join(dir, "prefs.toml"), cfg.Prefs.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Keyboard.Highlight())
	assert.Equal(t, 4, cfg.Keyboard.TabWidth)
	assert.Equal(t, "cannoli", cfg.Display.Theme)
	assert.Empty(t, cfg.File)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("VKBD_CONFIG_DIR", t.TempDir())
	path := writeConfig(t, `
[log]
level = "DEBUG"

[prefs]
backend = "sqlite"
path = "/tmp/vkbd-test/prefs.db"

[keyboard]
highlight_ms = 250

[display]
theme = "nextui"
accent_color = "#FF00AA"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Prefs.Backend)
	assert.Equal(t, "/tmp/vkbd-test/prefs.db", cfg.Prefs.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Keyboard.Highlight())
	assert.Equal(t, "nextui", cfg.Display.Theme)
	assert.Equal(t, "#FF00AA", cfg.Display.AccentColor)
}

func TestSQLiteBackendGetsDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VKBD_CONFIG_DIR", dir)
	t.Setenv("VKBD_PREFS_BACKEND", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prefs.db"), cfg.Prefs.Path)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("VKBD_CONFIG_DIR", t.TempDir())
	t.Setenv("VKBD_KEYBOARD_HIGHLIGHT_MS", "40")
	t.Setenv("VKBD_INPUT_DEVICE", "/dev/input/event3")
	path := writeConfig(t, "[keyboard]\nhighlight_ms = 250\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Keyboard.HighlightMS)
	assert.Equal(t, "/dev/input/event3", cfg.Input.Device)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("VKBD_CONFIG_DIR", t.TempDir())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"backend", "[prefs]\nbackend = \"redis\"\n", "prefs.backend"},
		{"theme", "[display]\ntheme = \"aqua\"\n", "display.theme"},
		{"highlight", "[keyboard]\nhighlight_ms = 0\n", "keyboard.highlight_ms"},
		{"tab width", "[keyboard]\ntab_width = -1\n", "keyboard.tab_width"},
		{"log level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"accent", "[display]\naccent_color = \"blue\"\n", "display.accent_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("VKBD_CONFIG_DIR", t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Setenv("VKBD_CONFIG_DIR", t.TempDir())
	cfg := Default()
	assert.NoError(t, validate(cfg))
}
