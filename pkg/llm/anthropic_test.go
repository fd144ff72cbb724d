package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMessagesClient streams the configured message back as SSE events,
// the same shape the accumulator sees in production.
type stubMessagesClient struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessagesClient) NewStreaming(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion] {
	s.lastParams = body
	if s.err != nil {
		return ssestream.NewStream[sdk.MessageStreamEventUnion](&eventDecoder{}, s.err)
	}
	return ssestream.NewStream[sdk.MessageStreamEventUnion](&eventDecoder{events: messageEvents(s.resp)}, nil)
}

// eventDecoder replays a fixed event sequence.
type eventDecoder struct {
	events []ssestream.Event
	i      int
}

func (d *eventDecoder) Event() ssestream.Event { return d.events[d.i-1] }

func (d *eventDecoder) Next() bool {
	if d.i >= len(d.events) {
		return false
	}
	d.i++
	return true
}

func (d *eventDecoder) Close() error { return nil }
func (d *eventDecoder) Err() error   { return nil }

func mustJSON(t any) []byte {
	data, err := json.Marshal(t)
	if err != nil {
		panic(err)
	}
	return data
}

func event(doc map[string]any) ssestream.Event {
	return ssestream.Event{Type: doc["type"].(string), Data: mustJSON(doc)}
}

// messageEvents decomposes a message into the event stream a live call
// would deliver: message_start, per-block start/delta/stop, then a
// message_delta carrying the stop reason and output tokens.
func messageEvents(msg *sdk.Message) []ssestream.Event {
	events := []ssestream.Event{event(map[string]any{
		"type": "message_start",
		"message": map[string]any{
			"id":      "msg_test",
			"type":    "message",
			"role":    "assistant",
			"model":   "test-model",
			"content": []any{},
			"usage": map[string]any{
				"input_tokens":                msg.Usage.InputTokens,
				"output_tokens":               0,
				"cache_creation_input_tokens": msg.Usage.CacheCreationInputTokens,
				"cache_read_input_tokens":     msg.Usage.CacheReadInputTokens,
			},
		},
	})}

	for i, block := range msg.Content {
		switch block.Type {
		case "text":
			events = append(events,
				event(map[string]any{
					"type": "content_block_start", "index": i,
					"content_block": map[string]any{"type": "text", "text": ""},
				}),
				event(map[string]any{
					"type": "content_block_delta", "index": i,
					"delta": map[string]any{"type": "text_delta", "text": block.Text},
				}),
			)
		case "tool_use":
			events = append(events,
				event(map[string]any{
					"type": "content_block_start", "index": i,
					"content_block": map[string]any{"type": "tool_use", "id": block.ID, "name": block.Name},
				}),
				event(map[string]any{
					"type": "content_block_delta", "index": i,
					"delta": map[string]any{"type": "input_json_delta", "partial_json": string(block.Input)},
				}),
			)
		}
		events = append(events, event(map[string]any{"type": "content_block_stop", "index": i}))
	}

	return append(events,
		event(map[string]any{
			"type":  "message_delta",
			"delta": map[string]any{"stop_reason": string(msg.StopReason)},
			"usage": map[string]any{"output_tokens": msg.Usage.OutputTokens},
		}),
		event(map[string]any{"type": "message_stop"}),
	)
}

func TestConverse_TextOnly(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "hello back"},
			},
			StopReason: sdk.StopReasonEndTurn,
			Usage: sdk.Usage{
				InputTokens:  10,
				OutputTokens: 5,
			},
		},
	}
	client, err := NewAnthropicClient(stub)
	require.NoError(t, err)

	turn, err := client.Converse(context.Background(), ConversationRequest{
		Model:    "test-model",
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Text: "hello"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello back", turn.Text)
	assert.Empty(t, turn.ToolCalls)
	assert.Equal(t, string(sdk.StopReasonEndTurn), turn.StopReason)
	assert.Equal(t, int64(10), turn.Usage.InputTokens)
	assert.Equal(t, int64(5), turn.Usage.OutputTokens)

	// Request encoding
	assert.Equal(t, sdk.Model("test-model"), stub.lastParams.Model)
	require.Len(t, stub.lastParams.System, 1)
	assert.Equal(t, "be helpful", stub.lastParams.System[0].Text)
	assert.Equal(t, int64(defaultMaxTokens), stub.lastParams.MaxTokens)
}

func TestConverse_ToolUse(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "running tests"},
				{
					Type:  "tool_use",
					ID:    "tu_1",
					Name:  "bash",
					Input: json.RawMessage(`{"command":"go test ./..."}`),
				},
			},
			StopReason: sdk.StopReasonToolUse,
		},
	}
	client, err := NewAnthropicClient(stub)
	require.NoError(t, err)

	turn, err := client.Converse(context.Background(), ConversationRequest{
		Model:    "test-model",
		Messages: []Message{{Role: RoleUser, Text: "run the tests"}},
		Tools: []ToolDefinition{{
			Name:        "bash",
			Description: "run a shell command",
			InputSchema: map[string]any{"type": "object"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, turn.ToolCalls, 1)
	assert.Equal(t, "tu_1", turn.ToolCalls[0].ID)
	assert.Equal(t, "bash", turn.ToolCalls[0].Name)
	assert.Equal(t, "go test ./...", turn.ToolCalls[0].Input["command"])
	assert.Equal(t, string(sdk.StopReasonToolUse), turn.StopReason)

	require.Len(t, stub.lastParams.Tools, 1)
}

func TestConverse_EncodesToolResults(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{
			Content:    []sdk.ContentBlockUnion{{Type: "text", Text: "done"}},
			StopReason: sdk.StopReasonEndTurn,
		},
	}
	client, err := NewAnthropicClient(stub)
	require.NoError(t, err)

	_, err = client.Converse(context.Background(), ConversationRequest{
		Model: "test-model",
		Messages: []Message{
			{Role: RoleUser, Text: "run it"},
			{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "tu_1", Name: "bash", Input: map[string]any{"command": "ls"}}}},
			{Role: RoleUser, ToolResults: []ToolResult{{ToolUseID: "tu_1", Content: "ok"}}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, stub.lastParams.Messages, 3)
}

func TestConverse_Validation(t *testing.T) {
	client, err := NewAnthropicClient(&stubMessagesClient{})
	require.NoError(t, err)

	_, err = client.Converse(context.Background(), ConversationRequest{
		Messages: []Message{{Role: RoleUser, Text: "x"}},
	})
	assert.Error(t, err, "model is required")

	_, err = client.Converse(context.Background(), ConversationRequest{Model: "m"})
	assert.Error(t, err, "messages are required")

	_, err = client.Converse(context.Background(), ConversationRequest{
		Model:    "m",
		Messages: []Message{{Role: "tool", Text: "x"}},
	})
	assert.Error(t, err, "unknown role is rejected")
}

func TestConverse_TransportError(t *testing.T) {
	stub := &stubMessagesClient{err: errors.New("boom")}
	client, err := NewAnthropicClient(stub)
	require.NoError(t, err)

	_, err = client.Converse(context.Background(), ConversationRequest{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Text: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAnalyze(t *testing.T) {
	stub := &stubMessagesClient{
		resp: &sdk.Message{
			Content:    []sdk.ContentBlockUnion{{Type: "text", Text: `{"overall_rating": 7}`}},
			StopReason: sdk.StopReasonEndTurn,
		},
	}
	client, err := NewAnthropicClient(stub)
	require.NoError(t, err)

	out, err := client.Analyze(context.Background(), AnalysisRequest{
		Model:  "test-model",
		Prompt: "review this session",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"overall_rating": 7}`, out)
}
