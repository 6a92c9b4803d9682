package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/bookshelf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestSetupLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bookshelf.log")

	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "WARN"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	logger.Info("dropped")
	logger.Warn("kept", "books", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"books":3`)
}

func TestSetupLogger_ConsoleGetsWarningsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.log")
	var console bytes.Buffer

	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "DEBUG"}, &console)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	logger.With("catalog", "sample").Debug("parsed")
	logger.Warn("snapshot cache unavailable", "error", "locked")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"parsed"`)
	assert.Contains(t, string(data), `"msg":"snapshot cache unavailable"`)

	assert.NotContains(t, console.String(), "parsed")
	assert.Contains(t, console.String(), "level=WARN")
	assert.Contains(t, console.String(), "catalog=sample")
	assert.NotContains(t, console.String(), "time=")
}

func TestSetupLogger_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, err := SetupLogger(&config.LoggingConfig{File: "~/logs/bookshelf.log"}, nil)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	assert.FileExists(t, filepath.Join(home, "logs", "bookshelf.log"))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleLogger(&buf)

	logger.Info("hidden")
	logger.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNullLogger(t *testing.T) {
	logger := NullLogger()
	require.NotNil(t, logger)
	logger.Error("nothing happens")
}
