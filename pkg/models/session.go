package models

import (
	"time"

	"github.com/autoforge-dev/autoforge/ent"
)

// StartSessionRequest contains optional overrides for starting a session
type StartSessionRequest struct {
	Model         string `json:"model,omitempty"`
	MaxIterations *int   `json:"max_iterations,omitempty"`
	AutoContinue  *bool  `json:"auto_continue,omitempty"`
}

// StopSessionRequest selects graceful or immediate stop
type StopSessionRequest struct {
	Immediate bool   `json:"immediate,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Type         string     `json:"type,omitempty"`
	Status       string     `json:"status,omitempty"`
	StartedAfter *time.Time `json:"started_after,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.AgentSession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// SessionAck acknowledges a long-running session operation. Progress is
// delivered over the event bus.
type SessionAck struct {
	SessionID     string `json:"session_id"`
	SessionNumber int    `json:"session_number"`
	Status        string `json:"status"`
}

// SessionMetrics is the typed view of the session metrics blob.
type SessionMetrics struct {
	DurationSeconds      float64 `json:"duration_seconds"`
	MessageCount         int     `json:"message_count"`
	ToolCallsCount       int     `json:"tool_calls_count"`
	ErrorsCount          int     `json:"errors_count"`
	TasksCompleted       int     `json:"tasks_completed"`
	TestsPassed          int     `json:"tests_passed"`
	BrowserVerifications int     `json:"browser_verifications"`
	ResponseLength       int     `json:"response_length"`
	TokensInput          int     `json:"tokens_input"`
	TokensOutput         int     `json:"tokens_output"`
	TokensCacheCreation  int     `json:"tokens_cache_creation"`
	TokensCacheRead      int     `json:"tokens_cache_read"`
	CostUSD              float64 `json:"cost_usd"`
}
