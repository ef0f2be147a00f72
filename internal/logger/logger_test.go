package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestInitWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, slog.LevelWarn)
	t.Cleanup(func() { Log = nil })

	Debug("hidden")
	Warn("shown", "date", "2025-03-01")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "2025-03-01", rec["date"])
}

func TestInitCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "caldiary.log")
	require.NoError(t, Init(slog.LevelInfo, path))
	t.Cleanup(func() {
		Close()
		Log = nil
	})

	Info("hello")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Equal(t, path, LogPath)
}
