package quality

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

// Error-rate boundaries for the quick rules. Candidates for promotion to
// configuration; these are the production values.
const (
	criticalErrorRate = 0.30
	warningErrorRate  = 0.15
)

// Assessment is the outcome of the quick rule set.
type Assessment struct {
	Rating         int
	CriticalIssues []string
	Warnings       []string
}

// Assess applies the quick rules to a session's metrics. Critical findings
// carry the "CRITICAL:" prefix, warnings "WARNING:". The rating starts at
// 10 and is clamped to 1..10.
func Assess(sessionType, terminalStatus string, m QuickMetrics) Assessment {
	a := Assessment{Rating: 10}

	if terminalStatus != "completed" {
		a.Rating -= 3
		a.CriticalIssues = append(a.CriticalIssues,
			fmt.Sprintf("CRITICAL: session terminated abnormally (status %s)", terminalStatus))
	}

	switch {
	case m.ErrorRate > criticalErrorRate:
		a.Rating -= 2
		a.CriticalIssues = append(a.CriticalIssues,
			fmt.Sprintf("CRITICAL: tool error rate %.0f%% exceeds %.0f%%",
				m.ErrorRate*100, criticalErrorRate*100))
	case m.ErrorRate > warningErrorRate:
		a.Rating--
		a.Warnings = append(a.Warnings,
			fmt.Sprintf("WARNING: tool error rate %.0f%% exceeds %.0f%%",
				m.ErrorRate*100, warningErrorRate*100))
	}

	if sessionType == "coding" && m.PlaywrightCount == 0 {
		a.Rating -= 2
		a.CriticalIssues = append(a.CriticalIssues,
			"CRITICAL: no browser verification performed during a coding session")
	}

	if m.TestsPassed == 0 && m.TasksCompleted > 0 {
		a.Rating--
		a.Warnings = append(a.Warnings,
			fmt.Sprintf("WARNING: %d tasks completed without any passing tests", m.TasksCompleted))
	}

	if a.Rating < 1 {
		a.Rating = 1
	}
	return a
}

// Checker runs the quality pipeline for finished sessions.
type Checker struct {
	quality  *services.QualityService
	analysis llm.AnalysisTransport
	model    string
	logger   *slog.Logger
}

// NewChecker creates a checker. analysis may be nil, which disables deep
// reviews.
func NewChecker(quality *services.QualityService, analysis llm.AnalysisTransport, model string, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		quality:  quality,
		analysis: analysis,
		model:    model,
		logger:   logger,
	}
}

// RunQuickCheck extracts metrics, applies the rules, and stores the
// resulting quick check. Initializer sessions are not checked.
func (c *Checker) RunQuickCheck(ctx context.Context, session *ent.AgentSession, events []eventlog.Event) (*ent.QualityCheck, QuickMetrics, error) {
	metrics := ExtractMetrics(events, session.Metrics)
	assessment := Assess(session.Type.String(), session.Status.String(), metrics)

	check, err := c.quality.CreateQualityCheck(ctx, services.QualityCheckInput{
		SessionID:      session.ID,
		Kind:           "quick",
		OverallRating:  assessment.Rating,
		Metrics:        metrics.Map(),
		CriticalIssues: assessment.CriticalIssues,
		Warnings:       assessment.Warnings,
	})
	if err != nil {
		return nil, metrics, fmt.Errorf("failed to store quick check: %w", err)
	}
	return check, metrics, nil
}
