package quality

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

const (
	deepReviewInterval = 5
	deepReviewMinN     = 5
	lowQuickRating     = 7

	deepReviewTimeout   = 5 * time.Minute
	deepReviewMaxEvents = 200
	deepReviewMaxChars  = 500
)

// ShouldTriggerDeepReview decides whether a deep review runs after a
// session. lastReviewed is -1 when the project has never been deep
// reviewed.
func ShouldTriggerDeepReview(sessionNumber, lastReviewed, quickRating int) bool {
	if sessionNumber >= deepReviewMinN && sessionNumber%deepReviewInterval == 0 {
		return true
	}
	if lastReviewed < 0 && sessionNumber >= deepReviewMinN {
		return true
	}
	if lastReviewed >= 0 && sessionNumber-lastReviewed >= deepReviewInterval {
		return true
	}
	return quickRating < lowQuickRating
}

// deepReviewResponse is the shape the model is asked to return.
type deepReviewResponse struct {
	OverallRating      int      `json:"overall_rating"`
	CriticalIssues     []string `json:"critical_issues"`
	Warnings           []string `json:"warnings"`
	ReviewText         string   `json:"review_text"`
	PromptImprovements []string `json:"prompt_improvements"`
}

// MaybeDeepReview evaluates the trigger policy and, when it fires, runs
// the deep review on a detached goroutine. Failures are logged and never
// escalated; onDone (optional) receives the stored check.
func (c *Checker) MaybeDeepReview(session *ent.AgentSession, events []eventlog.Event, metrics QuickMetrics, quickRating int, onDone func(*ent.QualityCheck)) bool {
	if c.analysis == nil {
		return false
	}

	lookupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	lastReviewed, err := c.quality.LastDeepReviewNumber(lookupCtx, session.ProjectID)
	cancel()
	if err != nil {
		c.logger.Warn("Deep review trigger lookup failed",
			"session_id", session.ID, "error", err)
		return false
	}

	if !ShouldTriggerDeepReview(session.SessionNumber, lastReviewed, quickRating) {
		return false
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deepReviewTimeout)
		defer cancel()

		check, err := c.RunDeepReview(ctx, session, events, metrics)
		if err != nil {
			c.logger.Warn("Deep review failed",
				"session_id", session.ID, "session_number", session.SessionNumber, "error", err)
			return
		}
		c.logger.Info("Deep review completed",
			"session_id", session.ID, "rating", check.OverallRating, "status", check.Status)
		if onDone != nil {
			onDone(check)
		}
	}()
	return true
}

// RunDeepReview submits the session transcript for review and stores the
// result. A response that cannot be parsed is stored as a failed deep
// check rather than returned as an error.
func (c *Checker) RunDeepReview(ctx context.Context, session *ent.AgentSession, events []eventlog.Event, metrics QuickMetrics) (*ent.QualityCheck, error) {
	prompt := buildDeepReviewPrompt(session, events, metrics)

	text, err := c.analysis.Analyze(ctx, llm.AnalysisRequest{
		Model:  c.model,
		System: deepReviewSystem,
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("deep review request failed: %w", err)
	}

	parsed, parseErr := parseDeepReview(text)
	if parseErr != nil {
		c.logger.Warn("Deep review response unparseable",
			"session_id", session.ID, "error", parseErr)
		return c.quality.CreateQualityCheck(ctx, services.QualityCheckInput{
			SessionID:     session.ID,
			Kind:          "deep",
			Status:        "failed",
			OverallRating: 1,
			Metrics:       metrics.Map(),
			ReviewText:    text,
		})
	}

	return c.quality.CreateQualityCheck(ctx, services.QualityCheckInput{
		SessionID:          session.ID,
		Kind:               "deep",
		OverallRating:      parsed.OverallRating,
		Metrics:            metrics.Map(),
		CriticalIssues:     parsed.CriticalIssues,
		Warnings:           parsed.Warnings,
		ReviewText:         parsed.ReviewText,
		PromptImprovements: parsed.PromptImprovements,
	})
}

const deepReviewSystem = `You are a senior engineer reviewing the transcript of an autonomous coding session. Respond with a single JSON object:
{"overall_rating": <1-10>, "critical_issues": [...], "warnings": [...], "review_text": "...", "prompt_improvements": [...]}
prompt_improvements are concrete suggestions for improving the system prompt that drove the session. Respond with JSON only.`

func buildDeepReviewPrompt(session *ent.AgentSession, events []eventlog.Event, metrics QuickMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %d (%s) finished with status %s.\n",
		session.SessionNumber, session.Type, session.Status)
	fmt.Fprintf(&b, "Quick metrics: %d tool uses, %d errors (rate %.2f), %d browser verifications, %d tasks completed, %d tests passed.\n\n",
		metrics.TotalToolUses, metrics.ErrorCount, metrics.ErrorRate,
		metrics.PlaywrightCount, metrics.TasksCompleted, metrics.TestsPassed)
	b.WriteString("Transcript:\n")

	if len(events) > deepReviewMaxEvents {
		events = events[len(events)-deepReviewMaxEvents:]
	}
	for _, ev := range events {
		line := ev.Message
		switch ev.Type {
		case "tool_use":
			if name, ok := ev.Data["name"].(string); ok {
				line = "tool: " + name + " " + line
			}
		case "assistant_text":
			line = "assistant: " + line
		case "tool_result":
			if ok, present := ev.Data["ok"].(bool); present && !ok {
				line = "tool error: " + line
			} else {
				line = "tool ok: " + line
			}
		default:
			continue
		}
		if len(line) > deepReviewMaxChars {
			line = line[:deepReviewMaxChars] + "..."
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// parseDeepReview tolerates fenced code blocks and surrounding prose but
// requires a JSON object with a usable rating.
func parseDeepReview(text string) (*deepReviewResponse, error) {
	cleaned := stripFences(text)
	if cleaned == "" || cleaned == "null" {
		return nil, fmt.Errorf("empty review response")
	}

	var parsed deepReviewResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// The object may be embedded in prose.
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("no JSON object in review response: %w", err)
		}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
			return nil, fmt.Errorf("invalid review JSON: %w", err)
		}
	}

	if parsed.OverallRating < 1 || parsed.OverallRating > 10 {
		return nil, fmt.Errorf("review rating %d out of range", parsed.OverallRating)
	}
	return &parsed, nil
}

func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if i := strings.LastIndex(cleaned, "```"); i >= 0 {
			cleaned = cleaned[:i]
		}
	}
	return strings.TrimSpace(cleaned)
}
