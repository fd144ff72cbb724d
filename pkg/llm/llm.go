// Package llm defines the model transport used by agent sessions and the
// analysis pipeline, with an implementation backed by the Anthropic
// Messages API.
package llm

import "context"

// Roles for conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolDefinition describes one tool surfaced to the model.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResult carries the outcome of a tool invocation back to the model.
type ToolResult struct {
	ToolUseID string
	Content   string
	IsError   bool
}

// Message is one conversation turn. Assistant messages may carry tool
// calls; user messages may carry tool results.
type Message struct {
	Role        string
	Text        string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Usage reports token accounting for one model call.
type Usage struct {
	InputTokens         int64
	OutputTokens        int64
	CacheCreationTokens int64
	CacheReadTokens     int64
}

// Turn is the model's response to one conversation request.
type Turn struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason string
	Usage      Usage
}

// ConversationRequest is a multi-turn request with tools.
type ConversationRequest struct {
	Model     string
	System    string
	Messages  []Message
	Tools     []ToolDefinition
	MaxTokens int
}

// AnalysisRequest is a single-turn request without tools, used by the
// deep-review and prompt-improvement pipelines.
type AnalysisRequest struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// AgentTransport drives multi-turn tool-using conversations.
type AgentTransport interface {
	Converse(ctx context.Context, req ConversationRequest) (*Turn, error)
}

// AnalysisTransport answers single-turn prompts with plain text.
type AnalysisTransport interface {
	Analyze(ctx context.Context, req AnalysisRequest) (string, error)
}
