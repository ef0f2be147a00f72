package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config lookup at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CALDIARY_DATA_DIR", filepath.Join(dir, "data"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Storage)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	assert.Equal(t, 0, cfg.MaxWidth)
	assert.False(t, cfg.SystemClipboard)
	assert.Equal(t, "default-dark", cfg.Theme.Preset)
	assert.Empty(t, cfg.Theme.MarkdownStyle, "uses preset default")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "data", "caldiary.log"), cfg.Log.File)

	wd, err := cfg.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.toml")

	content := `
storage = "sqlite"
max_width = 100
week_start = "sunday"
system_clipboard = true

[theme]
preset = "default-light"
primary = "#FF0000"
markdown_style = "light"

[log]
level = "debug"
file = "/tmp/caldiary-test.log"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 100, cfg.MaxWidth)
	assert.True(t, cfg.SystemClipboard)
	assert.Equal(t, "default-light", cfg.Theme.Preset)
	assert.Equal(t, "#FF0000", cfg.Theme.Primary)
	assert.Equal(t, "light", cfg.Theme.MarkdownStyle)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/caldiary-test.log", cfg.Log.File)

	wd, err := cfg.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}

func TestLoadFromXDG(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "caldiary"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "caldiary", "config.toml"), []byte(`storage = "diskv"`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "diskv", cfg.Storage)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`storage = "sqlite"`), 0644))
	t.Setenv("CALDIARY_STORAGE", "diskv")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "diskv", cfg.Storage)
}

func TestMissingExplicitFileIsError(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestInvalidWeekStart(t *testing.T) {
	isolate(t)
	t.Setenv("CALDIARY_WEEK_START", "friday")
	_, err := Load("")
	assert.ErrorContains(t, err, "week_start")
}

func TestDataDirTildeExpansion(t *testing.T) {
	isolate(t)
	t.Setenv("CALDIARY_DATA_DIR", "~/diary-data")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotContains(t, cfg.DataDir, "~")
	assert.Equal(t, "diary-data", filepath.Base(cfg.DataDir))
}
