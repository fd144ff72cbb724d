package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/sandbox"
	"github.com/autoforge-dev/autoforge/pkg/services"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

// scriptedTransport replays a fixed sequence of turns and records each
// request it receives.
type scriptedTransport struct {
	turns    []*llm.Turn
	errs     []error
	requests []llm.ConversationRequest
	onTurn   func(i int)
}

func (s *scriptedTransport) Converse(_ context.Context, req llm.ConversationRequest) (*llm.Turn, error) {
	i := len(s.requests)
	s.requests = append(s.requests, req)
	if s.onTurn != nil {
		s.onTurn(i)
	}
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.turns) {
		return &llm.Turn{Text: "nothing left to do", StopReason: "end_turn"}, nil
	}
	return s.turns[i], nil
}

// fakeBrowser records browser tool activity without launching Chrome.
type fakeBrowser struct {
	visited []string
	clicked []string
	shots   int
	closed  bool
}

func (f *fakeBrowser) Navigate(_ context.Context, url string) (string, error) {
	f.visited = append(f.visited, url)
	return "navigated to " + url, nil
}

func (f *fakeBrowser) Screenshot(context.Context) (string, error) {
	f.shots++
	return "screenshot saved", nil
}

func (f *fakeBrowser) Click(_ context.Context, selector string) (string, error) {
	f.clicked = append(f.clicked, selector)
	return "clicked " + selector, nil
}

func (f *fakeBrowser) Close() error {
	f.closed = true
	return nil
}

func newEventLogger(t *testing.T) (*eventlog.Logger, string) {
	t.Helper()
	dir := t.TempDir()
	logger, err := eventlog.NewLogger(dir, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, dir
}

func readLoggedEvents(t *testing.T, logger *eventlog.Logger, dir string) []eventlog.Event {
	t.Helper()
	require.NoError(t, logger.Close())
	events, err := eventlog.ReadEvents(dir, logger.Base())
	require.NoError(t, err)
	return events
}

func eventTypes(events []eventlog.Event) []string {
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func TestRunnerTextOnlySession(t *testing.T) {
	transport := &scriptedTransport{turns: []*llm.Turn{{
		Text:       "all epics look complete",
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: 100, OutputTokens: 50},
	}}}
	runner := NewRunner(transport, nil, nil)
	logger, dir := newEventLogger(t)

	res := runner.Run(context.Background(), RunInput{
		ProjectID:     "p1",
		SessionNumber: 1,
		SessionType:   "coding",
		Model:         "test-model",
		SystemPrompt:  "be helpful",
		UserMessage:   "continue working",
		Log:           logger,
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "all epics look complete", res.FinalText)
	assert.Equal(t, 1, res.Summary["message_count"])
	assert.Equal(t, 0, res.Summary["tool_calls_count"])
	assert.Equal(t, int64(100), res.Summary["tokens_input"])
	assert.Greater(t, res.Summary["cost_usd"].(float64), 0.0)

	require.Len(t, transport.requests, 1)
	assert.Equal(t, "be helpful", transport.requests[0].System)
	assert.NotEmpty(t, transport.requests[0].Tools)

	events := readLoggedEvents(t, logger, dir)
	assert.Equal(t, []string{"session_start", "assistant_text", "session_end"}, eventTypes(events))
}

func TestRunnerToolLoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	items := services.NewWorkItemService(client.Client)
	ctx := context.Background()

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "runner-tools"})
	require.NoError(t, err)
	epic, err := items.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "epic one"})
	require.NoError(t, err)
	task, err := items.CreateTask(ctx, epic.ID, models.CreateTaskRequest{Description: "build the thing"})
	require.NoError(t, err)
	test, err := items.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{Description: "it works"})
	require.NoError(t, err)

	workDir := t.TempDir()
	box := sandbox.NewLocalSandbox(workDir)
	require.NoError(t, box.Start(ctx))

	transport := &scriptedTransport{turns: []*llm.Turn{
		{
			Text:       "running the build",
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "bash", Input: map[string]any{"command": "echo built"}},
				{ID: "t2", Name: "browser_navigate", Input: map[string]any{"url": "http://localhost:3000"}},
				{ID: "t3", Name: "test_update", Input: map[string]any{"test_id": test.ID, "status": "passing", "result": "ok"}},
				{ID: "t4", Name: "task_update", Input: map[string]any{"task_id": task.ID, "status": "done"}},
			},
		},
		{Text: "task finished", StopReason: "end_turn"},
	}}

	runner := NewRunner(transport, items, nil)
	logger, dir := newEventLogger(t)
	browser := &fakeBrowser{}

	res := runner.Run(ctx, RunInput{
		ProjectID:   p.ID,
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "work on the next task",
		Sandbox:     box,
		Browser:     browser,
		Log:         logger,
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "task finished", res.FinalText)
	assert.Equal(t, 4, res.Summary["tool_calls_count"])
	assert.Equal(t, 0, res.Summary["errors_count"])
	assert.Equal(t, 1, res.Summary["tasks_completed"])
	assert.Equal(t, 1, res.Summary["tests_passed"])
	assert.Equal(t, 1, res.Summary["browser_verifications"])
	assert.Equal(t, []string{"http://localhost:3000"}, browser.visited)
	assert.True(t, browser.closed)

	// Tool results went back to the model on the second request
	require.Len(t, transport.requests, 2)
	followUp := transport.requests[1].Messages
	last := followUp[len(followUp)-1]
	require.Len(t, last.ToolResults, 4)
	assert.Equal(t, "t1", last.ToolResults[0].ToolUseID)
	assert.False(t, last.ToolResults[0].IsError)
	assert.Contains(t, last.ToolResults[0].Content, "built")

	// Work tree mutations landed; the epic auto-completed with its last task
	updatedEpic, err := items.ListEpics(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", updatedEpic[0].Status.String())

	events := readLoggedEvents(t, logger, dir)
	types := eventTypes(events)
	assert.Equal(t, "session_start", types[0])
	assert.Equal(t, "session_end", types[len(types)-1])
	assert.Contains(t, types, "tool_use")
	assert.Contains(t, types, "tool_result")
}

func TestRunnerToolErrorIsReportedNotFatal(t *testing.T) {
	transport := &scriptedTransport{turns: []*llm.Turn{
		{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "no_such_tool", Input: map[string]any{}},
			},
		},
		{Text: "recovered", StopReason: "end_turn"},
	}}
	runner := NewRunner(transport, nil, nil)
	logger, _ := newEventLogger(t)

	res := runner.Run(context.Background(), RunInput{
		ProjectID:   "p1",
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "go",
		Log:         logger,
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 1, res.Summary["errors_count"])

	require.Len(t, transport.requests, 2)
	followUp := transport.requests[1].Messages
	last := followUp[len(followUp)-1]
	require.Len(t, last.ToolResults, 1)
	assert.True(t, last.ToolResults[0].IsError)
}

func TestRunnerCancellationBetweenTurns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	transport := &scriptedTransport{
		turns: []*llm.Turn{{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "browser_navigate", Input: map[string]any{"url": "x"}},
			},
		}},
		onTurn: func(i int) {
			if i == 0 {
				cancel()
			}
		},
	}
	runner := NewRunner(transport, nil, nil)
	logger, dir := newEventLogger(t)

	res := runner.Run(ctx, RunInput{
		ProjectID:   "p1",
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "go",
		Log:         logger,
	})

	assert.Equal(t, StatusInterrupted, res.Status)
	require.Len(t, transport.requests, 1)

	events := readLoggedEvents(t, logger, dir)
	last := events[len(events)-1]
	assert.Equal(t, "session_end", last.Type)
	assert.Equal(t, "interrupted", last.Data["status"])
}

func TestRunnerTransportFailure(t *testing.T) {
	transport := &scriptedTransport{errs: []error{assert.AnError}}
	runner := NewRunner(transport, nil, nil)
	logger, _ := newEventLogger(t)

	res := runner.Run(context.Background(), RunInput{
		ProjectID:   "p1",
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "go",
		Log:         logger,
	})

	assert.Equal(t, StatusError, res.Status)
}

func TestRunnerProgressCallback(t *testing.T) {
	transport := &scriptedTransport{turns: []*llm.Turn{
		{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "browser_take_screenshot", Input: map[string]any{}},
			},
		},
		{Text: "done", StopReason: "end_turn"},
	}}
	runner := NewRunner(transport, nil, nil)

	var seen []string
	res := runner.Run(context.Background(), RunInput{
		ProjectID:   "p1",
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "go",
		Browser:     &fakeBrowser{},
		Progress:    func(tool, _ string) { seen = append(seen, tool) },
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, []string{"browser_take_screenshot"}, seen)
}

func TestRunnerInitializerBuildsWorkTree(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	items := services.NewWorkItemService(client.Client)
	ctx := context.Background()

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "runner-init"})
	require.NoError(t, err)

	// The later turns reference ids minted by the earlier ones, so their
	// inputs are filled in as the tree grows.
	transport := &scriptedTransport{turns: []*llm.Turn{
		{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "create_epic", Input: map[string]any{
					"name": "Core features", "description": "The basics", "priority": float64(1),
				}},
			},
		},
		{
			StopReason: "tool_use",
			ToolCalls:  []llm.ToolCall{{ID: "t2", Name: "create_task", Input: map[string]any{}}},
		},
		{
			StopReason: "tool_use",
			ToolCalls:  []llm.ToolCall{{ID: "t3", Name: "create_test", Input: map[string]any{}}},
		},
		{Text: "work tree ready", StopReason: "end_turn"},
	}}
	transport.onTurn = func(i int) {
		switch i {
		case 1:
			epics, err := items.ListEpics(ctx, p.ID)
			require.NoError(t, err)
			require.Len(t, epics, 1)
			transport.turns[1].ToolCalls[0].Input = map[string]any{
				"epic_id": epics[0].ID, "description": "Add the login form", "action": "Build and wire it up",
			}
		case 2:
			epics, err := items.ListEpics(ctx, p.ID)
			require.NoError(t, err)
			tasks, err := items.ListTasks(ctx, epics[0].ID)
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			transport.turns[2].ToolCalls[0].Input = map[string]any{
				"task_id": tasks[0].ID, "description": "Login form submits and redirects",
			}
		}
	}

	runner := NewRunner(transport, items, nil)
	logger, _ := newEventLogger(t)

	res := runner.Run(ctx, RunInput{
		ProjectID:   p.ID,
		SessionType: "initializer",
		Model:       "test-model",
		UserMessage: "break the spec down",
		Browser:     &fakeBrowser{},
		Log:         logger,
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 3, res.Summary["tool_calls_count"])
	assert.Equal(t, 0, res.Summary["errors_count"])

	epics, err := items.ListEpics(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, epics, 1)
	assert.Equal(t, "Core features", epics[0].Name)

	tasks, err := items.ListTasks(ctx, epics[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Add the login form", tasks[0].Description)

	tests, err := items.ListTestCases(ctx, tasks[0].ID)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "Login form submits and redirects", tests[0].Description)
}

func TestRunnerBrowserToolsDriveTheBrowser(t *testing.T) {
	transport := &scriptedTransport{turns: []*llm.Turn{
		{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "browser_navigate", Input: map[string]any{"url": "http://localhost:8080"}},
				{ID: "t2", Name: "browser_take_screenshot", Input: map[string]any{}},
				{ID: "t3", Name: "browser_click", Input: map[string]any{"selector": "#submit"}},
			},
		},
		{Text: "verified", StopReason: "end_turn"},
	}}
	runner := NewRunner(transport, nil, nil)
	browser := &fakeBrowser{}

	res := runner.Run(context.Background(), RunInput{
		ProjectID:   "p1",
		SessionType: "coding",
		Model:       "test-model",
		UserMessage: "verify the page",
		Browser:     browser,
	})

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 0, res.Summary["errors_count"])
	assert.Equal(t, 3, res.Summary["browser_verifications"])
	assert.Equal(t, []string{"http://localhost:8080"}, browser.visited)
	assert.Equal(t, 1, browser.shots)
	assert.Equal(t, []string{"#submit"}, browser.clicked)
	assert.True(t, browser.closed)

	// The driver's outputs flow back to the model as tool results.
	require.Len(t, transport.requests, 2)
	followUp := transport.requests[1].Messages
	last := followUp[len(followUp)-1]
	require.Len(t, last.ToolResults, 3)
	assert.Contains(t, last.ToolResults[0].Content, "localhost:8080")
	assert.Contains(t, last.ToolResults[2].Content, "#submit")
}
