package models

import (
	"time"

	"github.com/autoforge-dev/autoforge/ent"
)

// StartAnalysisRequest contains parameters for a prompt-improvement run
type StartAnalysisRequest struct {
	SandboxType string     `json:"sandbox_type,omitempty"`
	Since       *time.Time `json:"since,omitempty"`
	Until       *time.Time `json:"until,omitempty"`
	TriggeredBy string     `json:"triggered_by,omitempty"`
}

// AnalysisListResponse contains a paginated analysis list
type AnalysisListResponse struct {
	Analyses   []*ent.PromptAnalysis `json:"analyses"`
	TotalCount int                   `json:"total_count"`
}

// UpdateProposalStatusRequest carries a proposal status transition
type UpdateProposalStatusRequest struct {
	Status string `json:"status"`
}

// ApplyProposalRequest identifies who applied a proposal
type ApplyProposalRequest struct {
	AppliedBy string `json:"applied_by,omitempty"`
}

// ApplyProposalResponse reports the version created by applying a proposal
type ApplyProposalResponse struct {
	Proposal *ent.PromptProposal `json:"proposal"`
	Version  *ent.PromptVersion  `json:"version"`
}

// ThemePattern is one aggregated failure theme inside an analysis patterns
// blob.
type ThemePattern struct {
	Theme          string   `json:"theme"`
	Frequency      int      `json:"frequency"`
	UniqueSessions int      `json:"unique_sessions"`
	AvgQuality     float64  `json:"avg_quality"`
	Examples       []string `json:"examples"`
}

// ThresholdIssue is a metric-derived finding inside an analysis patterns
// blob.
type ThresholdIssue struct {
	Kind     string  `json:"kind"`
	Severity string  `json:"severity"`
	Value    float64 `json:"value"`
	Detail   string  `json:"detail"`
}
