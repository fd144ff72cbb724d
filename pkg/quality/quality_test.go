package quality

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/services"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func toolUse(name string) eventlog.Event {
	return eventlog.Event{Type: "tool_use", Message: name, Data: map[string]any{"name": name}}
}

func toolResult(ok bool) eventlog.Event {
	return eventlog.Event{Type: "tool_result", Message: "done", Data: map[string]any{"ok": ok}}
}

func TestExtractMetrics(t *testing.T) {
	events := []eventlog.Event{
		{Type: "session_start", Message: "start"},
		toolUse("bash"),
		toolResult(true),
		toolUse("browser_navigate"),
		toolResult(true),
		toolUse("browser_take_screenshot"),
		toolResult(false),
		toolUse("task_update"),
		toolResult(true),
		{Type: "assistant_text", Message: "working on it"},
	}
	summary := map[string]any{
		"tasks_completed":  2,
		"tests_passed":     1,
		"tokens_input":     float64(1500), // JSON round trip yields floats
		"tokens_output":    float64(900),
		"cost_usd":         0.42,
		"duration_seconds": 61.5,
	}

	m := ExtractMetrics(events, summary)
	assert.Equal(t, 4, m.TotalToolUses)
	assert.Equal(t, 1, m.ErrorCount)
	assert.InDelta(t, 0.25, m.ErrorRate, 0.001)
	assert.Equal(t, 2, m.PlaywrightCount)
	assert.Equal(t, 1, m.PlaywrightScreenshotCount)
	assert.Equal(t, 2, m.TasksCompleted)
	assert.Equal(t, 1, m.TestsPassed)
	assert.Equal(t, int64(1500), m.TokensInput)
	assert.Equal(t, int64(900), m.TokensOutput)
	assert.InDelta(t, 0.42, m.CostUSD, 0.001)
	assert.InDelta(t, 61.5, m.DurationSeconds, 0.001)
}

func TestExtractMetricsEmptyInputs(t *testing.T) {
	m := ExtractMetrics(nil, nil)
	assert.Zero(t, m.TotalToolUses)
	assert.Zero(t, m.ErrorRate)
}

func TestExtractMetricsFromTruncatedLog(t *testing.T) {
	dir := t.TempDir()
	jsonl := `{"timestamp":"2026-08-20T10:00:00Z","type":"tool_use","message":"bash","data":{"name":"bash"}}
{"timestamp":"2026-08-20T10:00:01Z","type":"tool_result","message":"done","data":{"ok":false}}
{"timestamp":"2026-08-20T10:00:02Z","type":"tool_use","message":"browser_navigate","data":{"name":"br`
	name := "session_001_20260820_100000"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".jsonl"), []byte(jsonl), 0o644))

	events, err := eventlog.ReadEvents(dir, name)
	require.NoError(t, err)

	m := ExtractMetrics(events, nil)
	assert.Equal(t, 1, m.TotalToolUses)
	assert.Equal(t, 1, m.ErrorCount)
	assert.InDelta(t, 1.0, m.ErrorRate, 0.001)
}

func TestAssessRules(t *testing.T) {
	t.Run("clean coding session scores ten", func(t *testing.T) {
		a := Assess("coding", "completed", QuickMetrics{
			TotalToolUses: 20, PlaywrightCount: 3, TasksCompleted: 2, TestsPassed: 4,
		})
		assert.Equal(t, 10, a.Rating)
		assert.Empty(t, a.CriticalIssues)
		assert.Empty(t, a.Warnings)
	})

	t.Run("abnormal termination is critical", func(t *testing.T) {
		a := Assess("coding", "error", QuickMetrics{PlaywrightCount: 1})
		assert.Equal(t, 7, a.Rating)
		require.Len(t, a.CriticalIssues, 1)
		assert.Contains(t, a.CriticalIssues[0], "CRITICAL:")
	})

	t.Run("high error rate is critical", func(t *testing.T) {
		a := Assess("coding", "completed", QuickMetrics{
			TotalToolUses: 10, ErrorCount: 4, ErrorRate: 0.4, PlaywrightCount: 1,
		})
		assert.Equal(t, 8, a.Rating)
		require.Len(t, a.CriticalIssues, 1)
		assert.Contains(t, a.CriticalIssues[0], "error rate")
	})

	t.Run("moderate error rate is a warning", func(t *testing.T) {
		a := Assess("coding", "completed", QuickMetrics{
			TotalToolUses: 10, ErrorCount: 2, ErrorRate: 0.2, PlaywrightCount: 1,
		})
		assert.Equal(t, 9, a.Rating)
		assert.Empty(t, a.CriticalIssues)
		require.Len(t, a.Warnings, 1)
		assert.Contains(t, a.Warnings[0], "WARNING:")
	})

	t.Run("coding without browser verification is critical", func(t *testing.T) {
		a := Assess("coding", "completed", QuickMetrics{TotalToolUses: 5})
		assert.Equal(t, 8, a.Rating)
		require.Len(t, a.CriticalIssues, 1)
		assert.Contains(t, a.CriticalIssues[0], "browser")
	})

	t.Run("review session needs no browser work", func(t *testing.T) {
		a := Assess("review", "completed", QuickMetrics{TotalToolUses: 5})
		assert.Equal(t, 10, a.Rating)
	})

	t.Run("tasks done without passing tests is a warning", func(t *testing.T) {
		a := Assess("coding", "completed", QuickMetrics{
			PlaywrightCount: 1, TasksCompleted: 3, TestsPassed: 0,
		})
		assert.Equal(t, 9, a.Rating)
		require.Len(t, a.Warnings, 1)
	})

	t.Run("rating clamps at one", func(t *testing.T) {
		a := Assess("coding", "error", QuickMetrics{
			TotalToolUses: 10, ErrorCount: 5, ErrorRate: 0.5, TasksCompleted: 1,
		})
		assert.Equal(t, 2, a.Rating)

		// Pile on enough deductions and the floor holds
		a = Assess("coding", "interrupted", QuickMetrics{
			TotalToolUses: 2, ErrorCount: 2, ErrorRate: 1.0, TasksCompleted: 5,
		})
		assert.GreaterOrEqual(t, a.Rating, 1)
	})
}

func TestShouldTriggerDeepReview(t *testing.T) {
	// lastReviewed -1 means never reviewed
	cases := []struct {
		name          string
		sessionNumber int
		lastReviewed  int
		quickRating   int
		want          bool
	}{
		{"session 4 never reviewed", 4, -1, 9, false},
		{"session 5 never reviewed", 5, -1, 9, true},
		{"session 6 never reviewed", 6, -1, 9, true},
		{"session 6 reviewed at 5", 6, 5, 9, false},
		{"session 9 reviewed at 5", 9, 5, 9, false},
		{"session 10 reviewed at 5", 10, 5, 9, true},
		{"session 11 reviewed at 10", 11, 10, 9, false},
		{"session 11 reviewed at 5", 11, 5, 9, true},
		{"low quick rating always triggers", 2, 1, 6, true},
		{"rating seven does not trigger", 3, 1, 7, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ShouldTriggerDeepReview(tc.sessionNumber, tc.lastReviewed, tc.quickRating)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDeepReview(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		parsed, err := parseDeepReview(`{"overall_rating": 8, "warnings": ["w"], "review_text": "solid"}`)
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.OverallRating)
		assert.Equal(t, []string{"w"}, parsed.Warnings)
	})

	t.Run("fenced json", func(t *testing.T) {
		parsed, err := parseDeepReview("```json\n{\"overall_rating\": 6}\n```")
		require.NoError(t, err)
		assert.Equal(t, 6, parsed.OverallRating)
	})

	t.Run("json embedded in prose", func(t *testing.T) {
		parsed, err := parseDeepReview(`Here is my review: {"overall_rating": 7, "critical_issues": []} hope it helps`)
		require.NoError(t, err)
		assert.Equal(t, 7, parsed.OverallRating)
	})

	t.Run("null response fails", func(t *testing.T) {
		_, err := parseDeepReview("null")
		assert.Error(t, err)
	})

	t.Run("missing rating fails", func(t *testing.T) {
		_, err := parseDeepReview(`{"warnings": []}`)
		assert.Error(t, err)
	})

	t.Run("out of range rating fails", func(t *testing.T) {
		_, err := parseDeepReview(`{"overall_rating": 11}`)
		assert.Error(t, err)
	})

	t.Run("prose only fails", func(t *testing.T) {
		_, err := parseDeepReview("I could not review this session.")
		assert.Error(t, err)
	})
}

type stubAnalysis struct {
	response string
	err      error
}

func (s *stubAnalysis) Analyze(_ context.Context, _ llm.AnalysisRequest) (string, error) {
	return s.response, s.err
}

func finishedSession(t *testing.T, client *ent.Client, projectID string, metrics map[string]any) *ent.AgentSession {
	t.Helper()
	ctx := context.Background()
	sessions := services.NewSessionService(client)

	s, err := sessions.AllocateSession(ctx, projectID, "coding", "test-model", nil)
	require.NoError(t, err)
	_, err = sessions.MarkRunning(ctx, s.ID)
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateMetrics(ctx, s.ID, metrics))
	s, err = sessions.MarkSessionTerminal(ctx, s.ID, "completed", "")
	require.NoError(t, err)
	return s
}

func TestCheckerRunQuickCheck(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	qualitySvc := services.NewQualityService(client.Client)
	ctx := context.Background()

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "quick-check"})
	require.NoError(t, err)

	session := finishedSession(t, client.Client, p.ID, map[string]any{
		"tasks_completed": 1, "tests_passed": 2,
	})

	events := []eventlog.Event{
		toolUse("bash"), toolResult(true),
		toolUse("browser_navigate"), toolResult(true),
	}

	checker := NewChecker(qualitySvc, nil, "", nil)
	check, metrics, err := checker.RunQuickCheck(ctx, session, events)
	require.NoError(t, err)

	assert.Equal(t, 10, check.OverallRating)
	assert.Equal(t, 2, metrics.TotalToolUses)
	assert.Equal(t, 1, metrics.PlaywrightCount)

	stored, err := qualitySvc.GetChecksForSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "quick", stored[0].Kind.String())
}

func TestCheckerRunDeepReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	qualitySvc := services.NewQualityService(client.Client)
	ctx := context.Background()

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "deep-review"})
	require.NoError(t, err)
	session := finishedSession(t, client.Client, p.ID, nil)

	t.Run("stores parsed review", func(t *testing.T) {
		analysis := &stubAnalysis{response: `{"overall_rating": 8, "review_text": "good work", "prompt_improvements": ["remind the agent to verify in the browser"]}`}
		checker := NewChecker(qualitySvc, analysis, "test-model", nil)

		check, err := checker.RunDeepReview(ctx, session, nil, QuickMetrics{})
		require.NoError(t, err)
		assert.Equal(t, "deep", check.Kind.String())
		assert.Equal(t, "completed", check.Status.String())
		assert.Equal(t, 8, check.OverallRating)
		assert.Equal(t, []string{"remind the agent to verify in the browser"}, check.PromptImprovements)
	})

	t.Run("unparseable response stores a failed check", func(t *testing.T) {
		other := finishedSession(t, client.Client, p.ID, nil)
		analysis := &stubAnalysis{response: "sorry, I cannot rate this"}
		checker := NewChecker(qualitySvc, analysis, "test-model", nil)

		check, err := checker.RunDeepReview(ctx, other, nil, QuickMetrics{})
		require.NoError(t, err)
		assert.Equal(t, "failed", check.Status.String())
	})
}

func TestCoverageAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	items := services.NewWorkItemService(client.Client)
	ctx := context.Background()

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "coverage"})
	require.NoError(t, err)

	covered, err := items.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "covered epic", Priority: 1})
	require.NoError(t, err)
	bare, err := items.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "bare epic", Priority: 2})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		task, err := items.CreateTask(ctx, covered.ID, models.CreateTaskRequest{
			Description: "tested task", SortOrder: i,
		})
		require.NoError(t, err)
		_, err = items.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{
			Description: "has a test",
		})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := items.CreateTask(ctx, bare.ID, models.CreateTaskRequest{
			Description: "untested task", SortOrder: i,
		})
		require.NoError(t, err)
	}

	report, err := AnalyzeCoverage(ctx, items, p.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalTasks)
	assert.Equal(t, 2, report.TasksWithTests)
	assert.InDelta(t, 40.0, report.CoveragePercent, 0.001)
	require.Len(t, report.Epics, 2)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "bare epic")

	require.NoError(t, SaveCoverage(ctx, projects, p.ID, report))
	stored, err := projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Contains(t, stored.Metadata, "test_coverage")
	coverage := stored.Metadata["test_coverage"].(map[string]any)
	assert.InDelta(t, 40.0, coverage["coverage_percent"].(float64), 0.001)
}
