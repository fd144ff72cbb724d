// Package events carries typed broadcast payloads from the orchestrator
// to subscribers, over an in-process bus and a WebSocket surface.
package events

import "time"

// Broadcast event types.
const (
	TypeSessionStarted         = "session_started"
	TypeSessionCompleted       = "session_completed"
	TypeSessionError           = "session_error"
	TypeProgress               = "progress"
	TypeAutoContinueDelay      = "auto_continue_delay"
	TypeAutoContinueStopped    = "auto_continue_stopped"
	TypeAllEpicsComplete       = "all_epics_complete"
	TypeProjectComplete        = "project_complete"
	TypeProjectReset           = "project_reset"
	TypeInitializationComplete = "initialization_complete"
	TypeInitializationError    = "initialization_error"
	TypeCodingSessionsComplete = "coding_sessions_complete"
	TypeCodingSessionsError    = "coding_sessions_error"
	TypeDeepReviewComplete     = "deep_review_complete"
)

// Reasons carried by auto_continue_stopped.
const (
	StopReasonStopRequested      = "stop_requested"
	StopReasonSessionError       = "session_error"
	StopReasonSessionInterrupted = "session_interrupted"
	StopReasonAllEpicsComplete   = "all_epics_complete"
	StopReasonMaxIterations      = "max_iterations"
	StopReasonProjectComplete    = "project_complete"
)

// Payload is any broadcast payload; Topic is the project id it fans
// out under.
type Payload interface {
	Topic() string
}

// BasePayload is embedded by every broadcast payload.
type BasePayload struct {
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// Topic implements Payload.
func (b BasePayload) Topic() string { return b.ProjectID }

// NewBase stamps a payload header.
func NewBase(eventType, projectID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		ProjectID: projectID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// SessionPayload covers session_started / session_completed /
// session_error.
type SessionPayload struct {
	BasePayload
	SessionID     string `json:"session_id"`
	SessionNumber int    `json:"session_number"`
	SessionType   string `json:"session_type"`
	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ProgressPayload is published per tool event during a session.
type ProgressPayload struct {
	BasePayload
	SessionID string `json:"session_id"`
	Tool      string `json:"tool"`
	Detail    string `json:"detail,omitempty"`
}

// AutoContinuePayload covers auto_continue_delay and
// auto_continue_stopped.
type AutoContinuePayload struct {
	BasePayload
	DelaySeconds int    `json:"delay_seconds,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Sessions     int    `json:"sessions_run,omitempty"`
}

// ProjectPayload covers project-level lifecycle events.
type ProjectPayload struct {
	BasePayload
	Detail string `json:"detail,omitempty"`
}

// DeepReviewPayload is published when a background deep review finishes.
type DeepReviewPayload struct {
	BasePayload
	SessionID     string `json:"session_id"`
	SessionNumber int    `json:"session_number"`
	OverallRating int    `json:"overall_rating"`
}
