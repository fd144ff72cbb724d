// Package quality computes the deterministic quick check after each
// session, schedules LLM deep reviews, and analyzes test coverage after
// project initialization.
package quality

import (
	"strings"

	"github.com/autoforge-dev/autoforge/pkg/eventlog"
)

// QuickMetrics is the deterministic per-session metric set extracted from
// the structured event stream plus the runner's summary blob.
type QuickMetrics struct {
	TotalToolUses             int     `json:"total_tool_uses"`
	ErrorCount                int     `json:"error_count"`
	ErrorRate                 float64 `json:"error_rate"`
	PlaywrightCount           int     `json:"playwright_count"`
	PlaywrightScreenshotCount int     `json:"playwright_screenshot_count"`
	TasksCompleted            int     `json:"tasks_completed"`
	TestsPassed               int     `json:"tests_passed"`
	TokensInput               int64   `json:"tokens_input"`
	TokensOutput              int64   `json:"tokens_output"`
	CostUSD                   float64 `json:"cost_usd"`
	DurationSeconds           float64 `json:"duration_seconds"`
}

// ExtractMetrics computes quick metrics from a session's structured events
// and its summary blob. Either input may be partial; missing data yields
// zero values, never an error.
func ExtractMetrics(events []eventlog.Event, summary map[string]any) QuickMetrics {
	var m QuickMetrics

	for _, ev := range events {
		switch ev.Type {
		case "tool_use":
			m.TotalToolUses++
			name, _ := ev.Data["name"].(string)
			if isBrowserTool(name) {
				m.PlaywrightCount++
				if strings.Contains(strings.ToLower(name), "screenshot") {
					m.PlaywrightScreenshotCount++
				}
			}
		case "tool_result":
			if ok, present := ev.Data["ok"].(bool); present && !ok {
				m.ErrorCount++
			}
		}
	}

	if m.TotalToolUses > 0 {
		m.ErrorRate = float64(m.ErrorCount) / float64(m.TotalToolUses)
	}

	m.TasksCompleted = asInt(summary["tasks_completed"])
	m.TestsPassed = asInt(summary["tests_passed"])
	m.TokensInput = int64(asInt(summary["tokens_input"]))
	m.TokensOutput = int64(asInt(summary["tokens_output"]))
	m.CostUSD = asFloat(summary["cost_usd"])
	m.DurationSeconds = asFloat(summary["duration_seconds"])

	return m
}

// Map renders the metrics for JSON storage on a quality check row.
func (m QuickMetrics) Map() map[string]any {
	return map[string]any{
		"total_tool_uses":             m.TotalToolUses,
		"error_count":                 m.ErrorCount,
		"error_rate":                  m.ErrorRate,
		"playwright_count":            m.PlaywrightCount,
		"playwright_screenshot_count": m.PlaywrightScreenshotCount,
		"tasks_completed":             m.TasksCompleted,
		"tests_passed":                m.TestsPassed,
		"tokens_input":                m.TokensInput,
		"tokens_output":               m.TokensOutput,
		"cost_usd":                    m.CostUSD,
		"duration_seconds":            m.DurationSeconds,
	}
}

func isBrowserTool(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "browser_") || strings.Contains(lower, "playwright")
}

// Summary blobs arrive either as native Go values or as float64 after a
// JSON round trip.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
