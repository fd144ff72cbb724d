package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// defaultMaxTokens caps completions when a request does not set one.
const defaultMaxTokens = 8192

// MessagesClient captures the subset of the Anthropic SDK used here. It
// is satisfied by *sdk.MessageService so tests can pass a mock.
type MessagesClient interface {
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// AnthropicClient implements AgentTransport and AnalysisTransport on top
// of the Anthropic Messages API.
type AnthropicClient struct {
	msg MessagesClient
}

// NewAnthropicClient builds a transport from an existing Messages client.
func NewAnthropicClient(msg MessagesClient) (*AnthropicClient, error) {
	if msg == nil {
		return nil, errors.New("anthropic messages client is required")
	}
	return &AnthropicClient{msg: msg}, nil
}

// NewAnthropicClientFromAPIKey constructs a client with the default
// Anthropic HTTP stack.
func NewAnthropicClientFromAPIKey(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicClient(&ac.Messages)
}

// Converse streams one Messages call for the conversation, accumulates
// the events into a complete message, and translates text and tool_use
// blocks back into generic structures. Streaming keeps long completions
// inside the API's per-request time limits.
func (c *AnthropicClient) Converse(ctx context.Context, req ConversationRequest) (*Turn, error) {
	if req.Model == "" {
		return nil, errors.New("anthropic: model identifier is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("anthropic: messages are required")
	}

	params, err := encodeParams(req)
	if err != nil {
		return nil, err
	}

	stream := c.msg.NewStreaming(ctx, *params)
	defer func() {
		_ = stream.Close()
	}()

	acc := sdk.Message{}
	for stream.Next() {
		if err := acc.Accumulate(stream.Current()); err != nil {
			return nil, fmt.Errorf("anthropic stream accumulate: %w", err)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("anthropic messages.stream: %w", err)
	}
	return translateMessage(&acc)
}

// Analyze issues a single-turn request and returns the concatenated text.
func (c *AnthropicClient) Analyze(ctx context.Context, req AnalysisRequest) (string, error) {
	turn, err := c.Converse(ctx, ConversationRequest{
		Model:     req.Model,
		System:    req.System,
		Messages:  []Message{{Role: RoleUser, Text: req.Prompt}},
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return turn.Text, nil
}

func encodeParams(req ConversationRequest) (*sdk.MessageNewParams, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	msgs, err := encodeMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	params := &sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		tools, err := encodeTools(req.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
	}
	return params, nil
}

func encodeMessages(msgs []Message) ([]sdk.MessageParam, error) {
	conversation := make([]sdk.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(m.ToolCalls)+len(m.ToolResults))

		if m.Text != "" {
			blocks = append(blocks, sdk.NewTextBlock(m.Text))
		}
		for _, call := range m.ToolCalls {
			if call.Name == "" {
				return nil, errors.New("anthropic: tool call missing name")
			}
			blocks = append(blocks, sdk.NewToolUseBlock(call.ID, call.Input, call.Name))
		}
		for _, result := range m.ToolResults {
			blocks = append(blocks, sdk.NewToolResultBlock(result.ToolUseID, result.Content, result.IsError))
		}
		if len(blocks) == 0 {
			continue
		}

		switch m.Role {
		case RoleUser:
			conversation = append(conversation, sdk.NewUserMessage(blocks...))
		case RoleAssistant:
			conversation = append(conversation, sdk.NewAssistantMessage(blocks...))
		default:
			return nil, fmt.Errorf("anthropic: unsupported message role %q", m.Role)
		}
	}
	if len(conversation) == 0 {
		return nil, errors.New("anthropic: at least one non-empty message is required")
	}
	return conversation, nil
}

func encodeTools(defs []ToolDefinition) ([]sdk.ToolUnionParam, error) {
	tools := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			continue
		}
		if def.Description == "" {
			return nil, fmt.Errorf("anthropic: tool %q is missing description", def.Name)
		}
		schema := sdk.ToolInputSchemaParam{}
		if def.InputSchema != nil {
			schema.ExtraFields = def.InputSchema
		}
		u := sdk.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil {
			u.OfTool.Description = sdk.String(def.Description)
		}
		tools = append(tools, u)
	}
	return tools, nil
}

func translateMessage(msg *sdk.Message) (*Turn, error) {
	if msg == nil {
		return nil, errors.New("anthropic: response message is nil")
	}

	turn := &Turn{
		StopReason: string(msg.StopReason),
		Usage: Usage{
			InputTokens:         msg.Usage.InputTokens,
			OutputTokens:        msg.Usage.OutputTokens,
			CacheCreationTokens: msg.Usage.CacheCreationInputTokens,
			CacheReadTokens:     msg.Usage.CacheReadInputTokens,
		},
	}

	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if turn.Text != "" && block.Text != "" {
				turn.Text += "\n"
			}
			turn.Text += block.Text
		case "tool_use":
			var input map[string]any
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &input); err != nil {
					return nil, fmt.Errorf("anthropic: tool_use input for %q: %w", block.Name, err)
				}
			}
			turn.ToolCalls = append(turn.ToolCalls, ToolCall{
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		}
	}
	return turn, nil
}
