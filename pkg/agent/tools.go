package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/sandbox"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

// bashOutputLimit caps the tool result fed back to the model.
const bashOutputLimit = 12000

// toolDefinitions is the tool set surfaced to the model for every
// session type.
func toolDefinitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        "bash",
			Description: "Run a shell command inside the project workspace. Returns stdout, stderr and the exit code.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"command": map[string]any{"type": "string", "description": "The shell command to run"},
				},
				"required": []string{"command"},
			},
		},
		{
			Name:        "create_epic",
			Description: "Create an epic in the project work tree. Used during initialization to break the specification into feature groups.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"priority":    map[string]any{"type": "integer", "description": "Lower numbers are worked first"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "create_task",
			Description: "Create a task under an epic.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"epic_id":     map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"action":      map[string]any{"type": "string", "description": "How to carry the task out"},
				},
				"required": []string{"epic_id", "description"},
			},
		},
		{
			Name:        "create_test",
			Description: "Create a test case under a task. Every task needs at least one test before it can be verified.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"task_id":     map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []string{"task_id", "description"},
			},
		},
		{
			Name:        "task_update",
			Description: "Update the status of a task. Use status 'done' when the task is finished and verified.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"task_id": map[string]any{"type": "string"},
					"status":  map[string]any{"type": "string", "enum": []string{"pending", "in_progress", "done"}},
				},
				"required": []string{"task_id", "status"},
			},
		},
		{
			Name:        "test_update",
			Description: "Record the result of running a test case.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"test_id": map[string]any{"type": "string"},
					"status":  map[string]any{"type": "string", "enum": []string{"pending", "passing", "failing"}},
					"result":  map[string]any{"type": "string", "description": "Details of the test run"},
				},
				"required": []string{"test_id", "status"},
			},
		},
		{
			Name:        "epic_complete",
			Description: "Mark an epic completed once every one of its tasks is done.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"epic_id": map[string]any{"type": "string"},
				},
				"required": []string{"epic_id"},
			},
		},
		{
			Name:        "browser_navigate",
			Description: "Open a URL in the verification browser.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url": map[string]any{"type": "string"},
				},
				"required": []string{"url"},
			},
		},
		{
			Name:        "browser_take_screenshot",
			Description: "Capture a screenshot of the current browser page.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "browser_click",
			Description: "Click an element on the current browser page.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"selector": map[string]any{"type": "string"},
				},
				"required": []string{"selector"},
			},
		},
	}
}

// toolRouter executes tool calls against the sandbox, the work tree and
// the verification browser.
type toolRouter struct {
	projectID string
	sandbox   sandbox.Sandbox
	items     *services.WorkItemService
	browser   BrowserDriver
}

// execute runs one tool call. The returned error marks a tool-level
// failure reported back to the model, never an abort of the session.
func (r *toolRouter) execute(ctx context.Context, call llm.ToolCall) (string, error) {
	switch call.Name {
	case "bash":
		return r.runBash(ctx, call)
	case "create_epic":
		return r.createEpic(ctx, call)
	case "create_task":
		return r.createTask(ctx, call)
	case "create_test":
		return r.createTest(ctx, call)
	case "task_update":
		return r.updateTask(ctx, call)
	case "test_update":
		return r.updateTest(ctx, call)
	case "epic_complete":
		return r.completeEpic(ctx, call)
	case "browser_navigate":
		return r.browserNavigate(ctx, call)
	case "browser_take_screenshot":
		return r.browserScreenshot(ctx)
	case "browser_click":
		return r.browserClick(ctx, call)
	default:
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
}

func (r *toolRouter) runBash(ctx context.Context, call llm.ToolCall) (string, error) {
	command, _ := call.Input["command"].(string)
	if command == "" {
		return "", fmt.Errorf("bash: command is required")
	}
	if r.sandbox == nil {
		return "", fmt.Errorf("bash: no sandbox attached to this session")
	}

	res, err := r.sandbox.Execute(ctx, command)
	if err != nil {
		return "", fmt.Errorf("bash: %w", err)
	}

	out := res.Stdout
	if res.Stderr != "" {
		out += "\n" + res.Stderr
	}
	if len(out) > bashOutputLimit {
		out = out[:bashOutputLimit] + "\n... (output truncated)"
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("exit code %d\n%s", res.ExitCode, out)
	}
	return out, nil
}

func (r *toolRouter) createEpic(ctx context.Context, call llm.ToolCall) (string, error) {
	name, _ := call.Input["name"].(string)
	description, _ := call.Input["description"].(string)

	epic, err := r.items.CreateEpic(ctx, r.projectID, models.CreateEpicRequest{
		Name:        name,
		Description: description,
		Priority:    intInput(call.Input["priority"]),
	})
	if err != nil {
		return "", fmt.Errorf("create_epic: %w", err)
	}
	return fmt.Sprintf("epic %s created: %s", epic.ID, epic.Name), nil
}

func (r *toolRouter) createTask(ctx context.Context, call llm.ToolCall) (string, error) {
	epicID, _ := call.Input["epic_id"].(string)
	description, _ := call.Input["description"].(string)
	action, _ := call.Input["action"].(string)

	task, err := r.items.CreateTask(ctx, epicID, models.CreateTaskRequest{
		Description: description,
		Action:      action,
	})
	if err != nil {
		return "", fmt.Errorf("create_task: %w", err)
	}
	return fmt.Sprintf("task %s created under epic %s", task.ID, epicID), nil
}

func (r *toolRouter) createTest(ctx context.Context, call llm.ToolCall) (string, error) {
	taskID, _ := call.Input["task_id"].(string)
	description, _ := call.Input["description"].(string)

	test, err := r.items.CreateTestCase(ctx, taskID, models.CreateTestCaseRequest{
		Description: description,
	})
	if err != nil {
		return "", fmt.Errorf("create_test: %w", err)
	}
	return fmt.Sprintf("test %s created under task %s", test.ID, taskID), nil
}

func (r *toolRouter) updateTask(ctx context.Context, call llm.ToolCall) (string, error) {
	taskID, _ := call.Input["task_id"].(string)
	status, _ := call.Input["status"].(string)

	task, err := r.items.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		return "", fmt.Errorf("task_update: %w", err)
	}

	if status == "done" {
		if _, completed, err := r.items.CompleteEpicIfDone(ctx, task.EpicID); err == nil && completed {
			return fmt.Sprintf("task %s done; epic %s is now complete", taskID, task.EpicID), nil
		}
	}
	return fmt.Sprintf("task %s is now %s", taskID, status), nil
}

func (r *toolRouter) updateTest(ctx context.Context, call llm.ToolCall) (string, error) {
	testID, _ := call.Input["test_id"].(string)
	status, _ := call.Input["status"].(string)
	result, _ := call.Input["result"].(string)

	if _, err := r.items.UpdateTestStatus(ctx, testID, status, result); err != nil {
		return "", fmt.Errorf("test_update: %w", err)
	}
	return fmt.Sprintf("test %s recorded as %s", testID, status), nil
}

func (r *toolRouter) completeEpic(ctx context.Context, call llm.ToolCall) (string, error) {
	epicID, _ := call.Input["epic_id"].(string)

	if _, err := r.items.UpdateEpicStatus(ctx, epicID, "completed"); err != nil {
		return "", fmt.Errorf("epic_complete: %w", err)
	}
	return fmt.Sprintf("epic %s completed", epicID), nil
}

func (r *toolRouter) browserNavigate(ctx context.Context, call llm.ToolCall) (string, error) {
	url, _ := call.Input["url"].(string)
	if url == "" {
		return "", fmt.Errorf("browser_navigate: url is required")
	}
	if r.browser == nil {
		return "", fmt.Errorf("browser_navigate: no browser attached to this session")
	}
	out, err := r.browser.Navigate(ctx, url)
	if err != nil {
		return "", fmt.Errorf("browser_navigate: %w", err)
	}
	return out, nil
}

func (r *toolRouter) browserScreenshot(ctx context.Context) (string, error) {
	if r.browser == nil {
		return "", fmt.Errorf("browser_take_screenshot: no browser attached to this session")
	}
	out, err := r.browser.Screenshot(ctx)
	if err != nil {
		return "", fmt.Errorf("browser_take_screenshot: %w", err)
	}
	return out, nil
}

func (r *toolRouter) browserClick(ctx context.Context, call llm.ToolCall) (string, error) {
	selector, _ := call.Input["selector"].(string)
	if selector == "" {
		return "", fmt.Errorf("browser_click: selector is required")
	}
	if r.browser == nil {
		return "", fmt.Errorf("browser_click: no browser attached to this session")
	}
	out, err := r.browser.Click(ctx, selector)
	if err != nil {
		return "", fmt.Errorf("browser_click: %w", err)
	}
	return out, nil
}

func isBrowserTool(name string) bool {
	return strings.HasPrefix(name, "browser_")
}

// intInput reads an integer tool argument; the SDK decodes JSON numbers
// as float64.
func intInput(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
