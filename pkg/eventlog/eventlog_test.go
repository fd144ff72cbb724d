package eventlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, 7)
	require.NoError(t, err)

	require.NoError(t, logger.Log(Event{
		Type:    "session_started",
		Message: "coding session 7",
	}))
	require.NoError(t, logger.Log(Event{
		Type: "tool_call",
		Data: map[string]any{"tool": "bash", "command": "go test ./..."},
	}))
	require.NoError(t, logger.Close())

	base := logger.Base()
	assert.Contains(t, base, "session_007_")

	events, err := ReadEvents(dir, base)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "session_started", events[0].Type)
	assert.Equal(t, "bash", events[1].Data["tool"])
	assert.False(t, events[0].Timestamp.IsZero())

	text, err := ReadText(dir, base)
	require.NoError(t, err)
	assert.Contains(t, text, "session_started: coding session 7")
	assert.Contains(t, text, "tool_call")
}

func TestReadEventsSkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	base := "session_003_20250101_120000"

	content := `{"timestamp":"2025-01-01T12:00:00Z","type":"session_started"}
{"timestamp":"2025-01-01T12:00:01Z","type":"tool_call","data":{"tool":"bash"}}
{"timestamp":"2025-01-01T12:00:02Z","type":"trunc
{"timestamp":"2025-01-01T12:00:03Z","type":"session_completed"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, base+".jsonl"), []byte(content), 0o644))

	events, err := ReadEvents(dir, base)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "session_started", events[0].Type)
	assert.Equal(t, "session_completed", events[2].Type)
}

func TestResolveLogName(t *testing.T) {
	dir := t.TempDir()

	touch := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	touch("session_003_20250101_120000.jsonl")
	touch("session_003_20250102_090000.jsonl")
	touch("session_012_20250102_100000.jsonl")
	touch("unrelated.log")

	t.Run("full name passes through", func(t *testing.T) {
		name, err := ResolveLogName(dir, "session_003_20250101_120000")
		require.NoError(t, err)
		assert.Equal(t, "session_003_20250101_120000", name)
	})

	t.Run("bare prefix resolves to newest", func(t *testing.T) {
		name, err := ResolveLogName(dir, "session_3")
		require.NoError(t, err)
		assert.Equal(t, "session_003_20250102_090000", name)
	})

	t.Run("two digit number", func(t *testing.T) {
		name, err := ResolveLogName(dir, "session_12")
		require.NoError(t, err)
		assert.Equal(t, "session_012_20250102_100000", name)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := ResolveLogName(dir, "session_99")
		assert.Error(t, err)
	})
}

func TestListLogNames(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_001_20250101_120000.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_001_20250101_120000.jsonl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_002_20250101_130000.jsonl"), nil, 0o644))

	names, err := ListLogNames(dir)
	require.NoError(t, err)
	// Deduplicated across extensions, newest first
	assert.Equal(t, []string{
		"session_002_20250101_130000",
		"session_001_20250101_120000",
	}, names)

	// Missing directory is empty, not an error
	names, err = ListLogNames(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoggerDefaultsTimestamp(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, 1)
	require.NoError(t, err)

	before := time.Now().Add(-time.Second)
	require.NoError(t, logger.Log(Event{Type: "x"}))
	require.NoError(t, logger.Close())

	events, err := ReadEvents(dir, logger.Base())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Timestamp.After(before))
}
