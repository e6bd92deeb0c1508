package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Level: slog.LevelWarn, Stderr: &buf})
	require.NoError(t, err)
	defer closeLog()

	logger.Info("hidden")
	logger.Warn("fetch failed", "status", 503)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=503")
}

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trivia.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	logger, closeLog, err := New(Options{Level: slog.LevelDebug, File: path})
	require.NoError(t, err)
	logger.Debug("state transition", "from", "Title", "to", "Menu")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier run\n")
	assert.Contains(t, string(data), "to=Menu")
}

func TestNewCreatesLogDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "trivia.log")
	_, closeLog, err := New(Options{File: path})
	require.NoError(t, err)
	require.NoError(t, closeLog())
	assert.FileExists(t, path)
}
