package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Writer: &buf}))
	Info("hidden")
	assert.Zero(t, buf.Len())
}

func TestInit_TextLevel(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &buf}))
	Debug("below threshold")
	Info("run started", "n", 3)
	out := buf.String()
	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, "msg=\"run started\"")
	assert.Contains(t, out, "n=3")
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, JSON: true, Level: slog.LevelDebug, Writer: &buf}))
	Debug("vector reallocated", "new_cap", 8)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "vector reallocated", rec["msg"])
	assert.EqualValues(t, 8, rec["new_cap"])
}

func TestInit_LogDirRetention(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	stale := filepath.Join(dir, logPrefix+time.Now().AddDate(0, 0, -retentionDays-1).Format(time.DateOnly)+logSuffix)
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Warn("written to file")

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale log removed")
	assert.FileExists(t, other)

	today := filepath.Join(dir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix)
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
