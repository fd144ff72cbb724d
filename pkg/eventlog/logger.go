// Package eventlog writes per-session logs in two parallel formats: a
// human-readable .txt transcript and a machine-readable .jsonl event
// stream consumed by the quality pipeline.
package eventlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event is one logged session event.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      string         `json:"type"`
	Message   string         `json:"message,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Logger writes session events to paired txt/jsonl files.
type Logger struct {
	mu    sync.Mutex
	txt   *os.File
	jsonl *os.File
	base  string
}

// filenameTimeLayout keeps log files sortable by name.
const filenameTimeLayout = "20060102_150405"

// NewLogger creates the log file pair for a session under dir. The base
// name is session_<number>_<timestamp> so later runs of the same number
// sort after earlier ones.
func NewLogger(dir string, sessionNumber int) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	base := fmt.Sprintf("session_%03d_%s", sessionNumber, time.Now().Format(filenameTimeLayout))

	txt, err := os.OpenFile(filepath.Join(dir, base+".txt"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open txt log: %w", err)
	}
	jsonl, err := os.OpenFile(filepath.Join(dir, base+".jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = txt.Close()
		return nil, fmt.Errorf("failed to open jsonl log: %w", err)
	}

	return &Logger{txt: txt, jsonl: jsonl, base: base}, nil
}

// Base returns the shared file name without extension.
func (l *Logger) Base() string {
	return l.base
}

// Log writes an event to both files. Write failures on one file do not
// prevent the write to the other.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error

	line := fmt.Sprintf("[%s] %s", event.Timestamp.Format(time.RFC3339), event.Type)
	if event.Message != "" {
		line += ": " + event.Message
	}
	if _, err := fmt.Fprintln(l.txt, line); err != nil {
		firstErr = fmt.Errorf("failed to write txt log: %w", err)
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to encode event: %w", err)
		}
		return firstErr
	}
	if _, err := l.jsonl.Write(append(encoded, '\n')); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to write jsonl log: %w", err)
	}

	return firstErr
}

// Close flushes and closes both files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	txtErr := l.txt.Close()
	jsonlErr := l.jsonl.Close()
	if txtErr != nil {
		return txtErr
	}
	return jsonlErr
}
