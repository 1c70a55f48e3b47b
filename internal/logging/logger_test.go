package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memcurve/internal/config"
)

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, l)

	l, ok = ParseLevel("chatty")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestSetupWritesJSONToRunFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeLog, err := Setup(config.LogConfig{Level: "info", Dir: dir}, "RUN1")
	require.NoError(t, err)

	logger.Debug("hidden")
	slog.Info("session committed", "known", 2)
	require.NoError(t, closeLog())

	b, err := os.ReadFile(filepath.Join(dir, "RUN1.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "session committed", entry["msg"])
	assert.Equal(t, "RUN1", entry["run"])
	assert.EqualValues(t, 2, entry["known"])
}

func TestSetupFallsBackToStderr(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	logger, closeLog, err := Setup(config.LogConfig{Level: "warn", Dir: filepath.Join(blocker, "logs")}, "RUN2")
	assert.Error(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closeLog())
}
