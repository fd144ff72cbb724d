// Package agent drives a single LLM session: it submits the prompt,
// routes tool calls to the sandbox and the work tree, feeds results back,
// and accumulates the session summary.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/sandbox"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

// Terminal statuses returned by Run.
const (
	StatusCompleted   = "completed"
	StatusError       = "error"
	StatusInterrupted = "interrupted"
)

const (
	defaultMaxTurns = 100
	argumentsDigest = 200
)

// Claude per-million-token rates used for the cost estimate.
const (
	rateInput         = 3.0
	rateOutput        = 15.0
	rateCacheCreation = 3.75
	rateCacheRead     = 0.30
)

// Runner executes sessions against an AgentTransport.
type Runner struct {
	transport llm.AgentTransport
	items     *services.WorkItemService
	logger    *slog.Logger
}

// NewRunner creates a runner.
func NewRunner(transport llm.AgentTransport, items *services.WorkItemService, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{transport: transport, items: items, logger: logger}
}

// RunInput carries everything one session needs.
type RunInput struct {
	ProjectID     string
	SessionNumber int
	SessionType   string
	Model         string
	SystemPrompt  string
	UserMessage   string
	Sandbox       sandbox.Sandbox
	WorkDir       string
	Browser       BrowserDriver
	Log           *eventlog.Logger
	Progress      func(tool, detail string)
	MaxTurns      int
}

// Result is the terminal triple of a session.
type Result struct {
	Status    string
	FinalText string
	Summary   map[string]any
}

// Run drives the conversation loop until the model stops requesting tools,
// the context is cancelled, or the transport fails. Cancellation is
// observed between turns; tool failures are reported back to the model
// rather than ending the session.
func (r *Runner) Run(ctx context.Context, in RunInput) Result {
	start := time.Now()
	maxTurns := in.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	browser := in.Browser
	if browser == nil {
		browser = newRodDriver(in.WorkDir)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			r.logger.Warn("Browser close failed",
				"project_id", in.ProjectID, "session_number", in.SessionNumber, "error", err)
		}
	}()

	router := &toolRouter{
		projectID: in.ProjectID,
		sandbox:   in.Sandbox,
		items:     r.items,
		browser:   browser,
	}
	tools := toolDefinitions()

	r.logEvent(in, eventlog.Event{
		Type:    "session_start",
		Message: fmt.Sprintf("session %d (%s) started", in.SessionNumber, in.SessionType),
		Data: map[string]any{
			"session_number": in.SessionNumber,
			"session_type":   in.SessionType,
			"model":          in.Model,
		},
	})

	var (
		messages       = []llm.Message{{Role: llm.RoleUser, Text: in.UserMessage}}
		usage          llm.Usage
		finalText      string
		messageCount   int
		toolCalls      int
		toolErrors     int
		tasksCompleted int
		testsPassed    int
		browserChecks  int
		responseLength int
	)

	finish := func(st, detail string) Result {
		summary := summaryMap(time.Since(start), messageCount, toolCalls, toolErrors,
			tasksCompleted, testsPassed, browserChecks, responseLength, usage)
		r.logEvent(in, eventlog.Event{
			Type:    "session_end",
			Message: fmt.Sprintf("session %d ended with status %s", in.SessionNumber, st),
			Data:    map[string]any{"status": st, "metrics": summary, "detail": detail},
		})
		return Result{Status: st, FinalText: finalText, Summary: summary}
	}

	for turn := 0; ; turn++ {
		if ctx.Err() != nil {
			return finish(StatusInterrupted, "cancelled")
		}
		if turn >= maxTurns {
			return finish(StatusError, fmt.Sprintf("turn limit %d exceeded", maxTurns))
		}

		reply, err := r.transport.Converse(ctx, llm.ConversationRequest{
			Model:    in.Model,
			System:   in.SystemPrompt,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return finish(StatusInterrupted, "cancelled")
			}
			r.logger.Error("Transport call failed",
				"project_id", in.ProjectID, "session_number", in.SessionNumber, "error", err)
			return finish(StatusError, err.Error())
		}

		messageCount++
		responseLength += len(reply.Text)
		usage.InputTokens += reply.Usage.InputTokens
		usage.OutputTokens += reply.Usage.OutputTokens
		usage.CacheCreationTokens += reply.Usage.CacheCreationTokens
		usage.CacheReadTokens += reply.Usage.CacheReadTokens

		if reply.Text != "" {
			finalText = reply.Text
			r.logEvent(in, eventlog.Event{Type: "assistant_text", Message: reply.Text})
		}

		if len(reply.ToolCalls) == 0 {
			return finish(StatusCompleted, reply.StopReason)
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Text:      reply.Text,
			ToolCalls: reply.ToolCalls,
		})

		results := make([]llm.ToolResult, 0, len(reply.ToolCalls))
		for _, call := range reply.ToolCalls {
			if ctx.Err() != nil {
				return finish(StatusInterrupted, "cancelled")
			}

			toolCalls++
			if isBrowserTool(call.Name) {
				browserChecks++
			}

			digest := digestInput(call.Input)
			r.logEvent(in, eventlog.Event{
				Type:    "tool_use",
				Message: call.Name,
				Data:    map[string]any{"name": call.Name, "arguments": digest},
			})
			if in.Progress != nil {
				in.Progress(call.Name, digest)
			}

			output, execErr := router.execute(ctx, call)
			ok := execErr == nil
			summary := output
			if execErr != nil {
				toolErrors++
				summary = execErr.Error()
			} else {
				switch call.Name {
				case "task_update":
					if s, _ := call.Input["status"].(string); s == "done" {
						tasksCompleted++
					}
				case "test_update":
					if s, _ := call.Input["status"].(string); s == "passing" {
						testsPassed++
					}
				}
			}

			r.logEvent(in, eventlog.Event{
				Type:    "tool_result",
				Message: truncate(summary, argumentsDigest),
				Data:    map[string]any{"tool_use_id": call.ID, "ok": ok, "summary": truncate(summary, 1000)},
			})

			results = append(results, llm.ToolResult{
				ToolUseID: call.ID,
				Content:   summary,
				IsError:   !ok,
			})
		}

		messages = append(messages, llm.Message{Role: llm.RoleUser, ToolResults: results})
	}
}

func (r *Runner) logEvent(in RunInput, ev eventlog.Event) {
	if in.Log == nil {
		return
	}
	if err := in.Log.Log(ev); err != nil {
		r.logger.Warn("Failed to write event log",
			"project_id", in.ProjectID, "session_number", in.SessionNumber, "error", err)
	}
}

func summaryMap(duration time.Duration, messages, toolCalls, toolErrors, tasks, tests, browser, responseLen int, usage llm.Usage) map[string]any {
	return map[string]any{
		"duration_seconds":      duration.Seconds(),
		"message_count":         messages,
		"tool_calls_count":      toolCalls,
		"errors_count":          toolErrors,
		"tasks_completed":       tasks,
		"tests_passed":          tests,
		"browser_verifications": browser,
		"response_length":       responseLen,
		"tokens_input":          usage.InputTokens,
		"tokens_output":         usage.OutputTokens,
		"tokens_cache_creation": usage.CacheCreationTokens,
		"tokens_cache_read":     usage.CacheReadTokens,
		"cost_usd":              estimateCost(usage),
	}
}

func estimateCost(u llm.Usage) float64 {
	const m = 1_000_000.0
	return float64(u.InputTokens)/m*rateInput +
		float64(u.OutputTokens)/m*rateOutput +
		float64(u.CacheCreationTokens)/m*rateCacheCreation +
		float64(u.CacheReadTokens)/m*rateCacheRead
}

func digestInput(input map[string]any) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return truncate(string(raw), argumentsDigest)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
