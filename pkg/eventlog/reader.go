package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListLogNames returns the base names (without extension) of all session
// logs under dir, newest first by name.
func ListLogNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "session_") {
			continue
		}
		var base string
		switch {
		case strings.HasSuffix(name, ".jsonl"):
			base = strings.TrimSuffix(name, ".jsonl")
		case strings.HasSuffix(name, ".txt"):
			base = strings.TrimSuffix(name, ".txt")
		default:
			continue
		}
		if !seen[base] {
			seen[base] = true
			names = append(names, base)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// ResolveLogName resolves a log reference to a full base name. A full
// base name passes through; a bare session_<n> prefix resolves to the
// newest matching log.
func ResolveLogName(dir, ref string) (string, error) {
	names, err := ListLogNames(dir)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if name == ref {
			return name, nil
		}
	}

	// Prefix form: pad the number the way the logger writes it, so
	// session_7 matches session_007_<ts>.
	prefix := ref
	var n int
	if _, err := fmt.Sscanf(ref, "session_%d", &n); err == nil {
		prefix = fmt.Sprintf("session_%03d_", n)
	}
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			return name, nil
		}
	}

	return "", fmt.Errorf("no session log matching %q", ref)
}

// ReadText returns the raw txt transcript for a log base name.
func ReadText(dir, base string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, base+".txt"))
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}

// ReadEvents parses the jsonl event stream for a log base name. Corrupt
// lines (truncated writes after a crash) are skipped with a warning
// rather than failing the whole read.
func ReadEvents(dir, base string) ([]Event, error) {
	path := filepath.Join(dir, base+".jsonl")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var event Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			slog.Warn("Skipping corrupt event log line",
				"file", path,
				"line", lineNo,
				"error", err)
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("failed to scan event log: %w", err)
	}

	return events, nil
}
