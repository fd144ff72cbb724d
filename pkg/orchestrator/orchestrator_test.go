package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/agent"
	"github.com/autoforge-dev/autoforge/pkg/config"
	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/quality"
	"github.com/autoforge-dev/autoforge/pkg/sandbox"
	"github.com/autoforge-dev/autoforge/pkg/services"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

type fakeSandbox struct{}

func (f *fakeSandbox) Start(context.Context) error { return nil }
func (f *fakeSandbox) Execute(context.Context, string) (*sandbox.ExecResult, error) {
	return &sandbox.ExecResult{}, nil
}
func (f *fakeSandbox) Stop(context.Context) error { return nil }
func (f *fakeSandbox) Handle() string             { return "fake" }

func fakeSandboxFactory(config.SandboxConfig, string, string, int) (sandbox.Sandbox, error) {
	return &fakeSandbox{}, nil
}

type runnerFunc func(ctx context.Context, in agent.RunInput) agent.Result

func (f runnerFunc) Run(ctx context.Context, in agent.RunInput) agent.Result { return f(ctx, in) }

func completedResult() agent.Result {
	return agent.Result{
		Status:    agent.StatusCompleted,
		FinalText: "done",
		Summary:   map[string]any{"message_count": 1},
	}
}

type harness struct {
	orch     *Orchestrator
	projects *services.ProjectService
	sessions *services.SessionService
	items    *services.WorkItemService
	quality  *services.QualityService
	bus      *events.Bus
}

func newHarness(t *testing.T, runner SessionRunner) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := config.DefaultConfig()
	cfg.Project.GenerationsDir = t.TempDir()
	cfg.Timing.AutoContinueDelaySeconds = 0
	cfg.Sandbox.Type = "local"

	h := &harness{
		projects: services.NewProjectService(client.Client),
		sessions: services.NewSessionService(client.Client),
		items:    services.NewWorkItemService(client.Client),
		quality:  services.NewQualityService(client.Client),
		bus:      events.NewBus(),
	}
	h.orch = New(Deps{
		Config:   cfg,
		Projects: h.projects,
		Sessions: h.sessions,
		Items:    h.items,
		Quality:  quality.NewChecker(h.quality, nil, "", nil),
		Runner:   runner,
		Prompts:  prompts.NewManager("", nil, nil),
		Bus:      h.bus,
		Sandbox:  fakeSandboxFactory,
	})
	return h
}

func (h *harness) createProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	p, err := h.projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name:        name,
		SpecContent: "# build a todo app",
	})
	require.NoError(t, err)
	return p
}

func (h *harness) createEpicWithTask(t *testing.T, projectID string) (*ent.Epic, *ent.Task) {
	t.Helper()
	ctx := context.Background()
	epic, err := h.items.CreateEpic(ctx, projectID, models.CreateEpicRequest{Name: "epic"})
	require.NoError(t, err)
	task, err := h.items.CreateTask(ctx, epic.ID, models.CreateTaskRequest{Description: "task"})
	require.NoError(t, err)
	return epic, task
}

// collect drains events of the given types until the subscription closes
// or the timeout hits.
func collectEvents(t *testing.T, sub *events.Subscription, want string, timeout time.Duration) []any {
	t.Helper()
	deadline := time.After(timeout)
	var got []any
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return got
			}
			got = append(got, ev)
			if payloadType(ev) == want {
				return got
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %q (saw %d events)", want, len(got))
		}
	}
}

func payloadType(ev any) string {
	switch p := ev.(type) {
	case events.SessionPayload:
		return p.Type
	case events.ProgressPayload:
		return p.Type
	case events.AutoContinuePayload:
		return p.Type
	case events.ProjectPayload:
		return p.Type
	case events.DeepReviewPayload:
		return p.Type
	}
	return ""
}

func TestStartInitialization(t *testing.T) {
	runner := runnerFunc(func(_ context.Context, in agent.RunInput) agent.Result {
		if in.SessionType != "initializer" {
			t.Errorf("expected initializer session, got %s", in.SessionType)
		}
		return completedResult()
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "init-ok")
	sub := h.bus.Subscribe(p.ID)
	defer sub.Close()

	session, err := h.orch.StartInitialization(context.Background(), p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, session.SessionNumber)

	collectEvents(t, sub, events.TypeInitializationComplete, 10*time.Second)
	h.orch.Wait(p.ID)

	final, err := h.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", final.Status.String())
	assert.NotNil(t, final.EndedAt)

	// Coverage report stored even for an empty tree
	stored, err := h.projects.GetProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Metadata, "test_coverage")
}

func TestStartInitializationRequiresEmptyTree(t *testing.T) {
	h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		return completedResult()
	}))
	p := h.createProject(t, "init-nonempty")
	h.createEpicWithTask(t, p.ID)

	_, err := h.orch.StartInitialization(context.Background(), p.ID, "")
	assert.ErrorIs(t, err, services.ErrStateViolation)
}

func TestStartCodingRequiresEpics(t *testing.T) {
	h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		return completedResult()
	}))
	p := h.createProject(t, "code-no-epics")

	_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	assert.ErrorIs(t, err, services.ErrStateViolation)
}

func TestAdmissionConflict(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, _ agent.RunInput) agent.Result {
		close(started)
		<-release
		return completedResult()
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "admission")
	h.createEpicWithTask(t, p.ID)

	_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", intPtr(1))
	require.NoError(t, err)
	<-started

	_, err = h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	assert.True(t, services.IsBusyError(err), "expected busy error, got %v", err)

	_, err = h.orch.StartInitialization(context.Background(), p.ID, "")
	assert.Error(t, err)

	close(release)
	h.orch.Wait(p.ID)
}

func TestCodingLoopCompletesProject(t *testing.T) {
	h := newHarness(t, nil)
	p := h.createProject(t, "code-complete")
	epic, task := h.createEpicWithTask(t, p.ID)

	// The "agent" finishes the only task and completes the epic.
	h.orch.runner = runnerFunc(func(ctx context.Context, in agent.RunInput) agent.Result {
		_, err := h.items.UpdateTaskStatus(ctx, task.ID, "done")
		require.NoError(t, err)
		_, _, err = h.items.CompleteEpicIfDone(ctx, epic.ID)
		require.NoError(t, err)
		return completedResult()
	})

	sub := h.bus.Subscribe(p.ID)
	defer sub.Close()

	first, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SessionNumber)

	got := collectEvents(t, sub, events.TypeAutoContinueStopped, 10*time.Second)
	h.orch.Wait(p.ID)

	var sawProjectComplete bool
	for _, ev := range got {
		if payloadType(ev) == events.TypeProjectComplete {
			sawProjectComplete = true
		}
	}
	assert.True(t, sawProjectComplete)

	last := got[len(got)-1].(events.AutoContinuePayload)
	assert.Equal(t, events.StopReasonProjectComplete, last.Reason)
	assert.Equal(t, 1, last.Sessions)

	stored, err := h.projects.GetProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.CompletedAt)
}

func TestCodingLoopMaxIterations(t *testing.T) {
	runs := 0
	runner := runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		runs++
		return completedResult()
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "code-max-iter")
	h.createEpicWithTask(t, p.ID)

	_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", intPtr(2))
	require.NoError(t, err)
	h.orch.Wait(p.ID)

	assert.Equal(t, 2, runs)

	list, err := h.sessions.ListSessions(context.Background(), p.ID, models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)
	for _, s := range list.Sessions {
		assert.Equal(t, "completed", s.Status.String())
	}
}

func TestCodingLoopZeroMaxIterationsMeansUnlimited(t *testing.T) {
	runs := 0
	h := newHarness(t, nil)
	p := h.createProject(t, "code-unlimited")
	epic, task := h.createEpicWithTask(t, p.ID)

	h.orch.runner = runnerFunc(func(ctx context.Context, _ agent.RunInput) agent.Result {
		runs++
		if runs == 3 {
			_, err := h.items.UpdateTaskStatus(ctx, task.ID, "done")
			require.NoError(t, err)
			_, _, err = h.items.CompleteEpicIfDone(ctx, epic.ID)
			require.NoError(t, err)
		}
		return completedResult()
	})

	// 0 normalizes to unlimited; the loop ends on project completion
	_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", intPtr(0))
	require.NoError(t, err)
	h.orch.Wait(p.ID)

	assert.Equal(t, 3, runs)
}

func TestGracefulStop(t *testing.T) {
	started := make(chan struct{}, 10)
	release := make(chan struct{})
	runner := runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		started <- struct{}{}
		<-release
		return completedResult()
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "graceful-stop")
	h.createEpicWithTask(t, p.ID)

	sub := h.bus.Subscribe(p.ID)
	defer sub.Close()

	first, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	require.NoError(t, err)
	<-started

	h.orch.SetStopAfterCurrent(p.ID)
	close(release)

	got := collectEvents(t, sub, events.TypeAutoContinueStopped, 10*time.Second)
	h.orch.Wait(p.ID)

	last := got[len(got)-1].(events.AutoContinuePayload)
	assert.Equal(t, events.StopReasonStopRequested, last.Reason)

	// The in-flight session finished normally
	final, err := h.sessions.GetSession(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", final.Status.String())
}

func TestImmediateStop(t *testing.T) {
	started := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, _ agent.RunInput) agent.Result {
		close(started)
		<-ctx.Done()
		return agent.Result{Status: agent.StatusInterrupted, Summary: map[string]any{}}
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "immediate-stop")
	h.createEpicWithTask(t, p.ID)

	sub := h.bus.Subscribe(p.ID)
	defer sub.Close()

	first, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	require.NoError(t, err)
	<-started

	stopped, err := h.orch.StopSession(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stopped)

	got := collectEvents(t, sub, events.TypeAutoContinueStopped, 10*time.Second)
	last := got[len(got)-1].(events.AutoContinuePayload)
	assert.Equal(t, events.StopReasonSessionInterrupted, last.Reason)

	final, err := h.sessions.GetSession(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", final.Status.String())
}

func TestStopWithoutActiveSession(t *testing.T) {
	h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		return completedResult()
	}))
	p := h.createProject(t, "stop-idle")

	_, err := h.orch.StopSession(context.Background(), p.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCancelInitialization(t *testing.T) {
	started := make(chan struct{})
	h := newHarness(t, nil)
	p := h.createProject(t, "cancel-init")

	h.orch.runner = runnerFunc(func(ctx context.Context, _ agent.RunInput) agent.Result {
		// Simulate the initializer creating part of the tree before the cancel
		_, err := h.items.CreateEpic(context.Background(), p.ID, models.CreateEpicRequest{Name: "partial"})
		require.NoError(t, err)
		close(started)
		<-ctx.Done()
		return agent.Result{Status: agent.StatusInterrupted, Summary: map[string]any{}}
	})

	session, err := h.orch.StartInitialization(context.Background(), p.ID, "")
	require.NoError(t, err)
	<-started

	require.NoError(t, h.orch.CancelInitialization(context.Background(), p.ID))

	epics, err := h.items.ListEpics(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, epics)

	final, err := h.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", final.Status.String())

	// Spec content survives for a re-run
	stored, err := h.projects.GetProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.SpecContent)
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
		return completedResult()
	}))
	p := h.createProject(t, "snapshot")
	h.createEpicWithTask(t, p.ID)

	snap, err := h.orch.Snapshot(context.Background(), p.ID)
	require.NoError(t, err)

	doc := snap.(map[string]any)
	assert.Contains(t, doc, "project")
	assert.Contains(t, doc, "progress")
	assert.Contains(t, doc, "recent_sessions")
	progress := doc["progress"].(*models.ProjectProgress)
	assert.Equal(t, 1, progress.TasksTotal)
}

func TestQuickCheckSeesSessionLogEvents(t *testing.T) {
	h := newHarness(t, nil)
	p := h.createProject(t, "quick-check-log")
	epic, task := h.createEpicWithTask(t, p.ID)

	// The "agent" logs tool activity the way the real runner does, then
	// finishes the work tree.
	h.orch.runner = runnerFunc(func(ctx context.Context, in agent.RunInput) agent.Result {
		require.NotNil(t, in.Log)
		for _, name := range []string{"bash", "browser_navigate", "browser_take_screenshot"} {
			require.NoError(t, in.Log.Log(eventlog.Event{
				Type: "tool_use", Message: name, Data: map[string]any{"name": name},
			}))
			require.NoError(t, in.Log.Log(eventlog.Event{
				Type: "tool_result", Data: map[string]any{"ok": true},
			}))
		}
		_, err := h.items.UpdateTaskStatus(ctx, task.ID, "done")
		require.NoError(t, err)
		_, _, err = h.items.CompleteEpicIfDone(ctx, epic.ID)
		require.NoError(t, err)
		return completedResult()
	})

	first, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", intPtr(1))
	require.NoError(t, err)
	h.orch.Wait(p.ID)

	checks, err := h.quality.GetChecksForSession(context.Background(), first.ID)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "quick", checks[0].Kind.String())

	// The check read the session's own log file, timestamp suffix and all.
	metrics := checks[0].Metrics
	assert.EqualValues(t, 3, metrics["total_tool_uses"])
	assert.EqualValues(t, 2, metrics["playwright_count"])
	assert.EqualValues(t, 1, metrics["playwright_screenshot_count"])
	for _, issue := range checks[0].CriticalIssues {
		assert.NotContains(t, issue, "no browser verification")
	}
}

func TestProjectSettingsOverrideDefaults(t *testing.T) {
	var gotModel string
	runner := runnerFunc(func(_ context.Context, in agent.RunInput) agent.Result {
		gotModel = in.Model
		return completedResult()
	})
	h := newHarness(t, runner)
	p := h.createProject(t, "settings-overrides")
	h.createEpicWithTask(t, p.ID)

	_, err := h.projects.UpdateSettings(context.Background(), p.ID, map[string]any{
		"sandbox_type":   "container",
		"model":          "claude-custom",
		"max_iterations": float64(1),
	})
	require.NoError(t, err)

	var sandboxTypes []string
	h.orch.sandbox = func(sc config.SandboxConfig, _, _ string, _ int) (sandbox.Sandbox, error) {
		sandboxTypes = append(sandboxTypes, sc.Type)
		return &fakeSandbox{}, nil
	}

	// No explicit model or iteration cap; the project settings supply both.
	_, err = h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
	require.NoError(t, err)
	h.orch.Wait(p.ID)

	assert.Equal(t, "claude-custom", gotModel)
	assert.Equal(t, []string{"container"}, sandboxTypes)

	list, err := h.sessions.ListSessions(context.Background(), p.ID, models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestCodingLoopPublishesTerminalEvents(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
			return completedResult()
		}))
		p := h.createProject(t, "loop-terminal-ok")
		h.createEpicWithTask(t, p.ID)

		sub := h.bus.Subscribe(p.ID)
		defer sub.Close()

		_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", intPtr(1))
		require.NoError(t, err)

		got := collectEvents(t, sub, events.TypeCodingSessionsComplete, 10*time.Second)
		h.orch.Wait(p.ID)

		last := got[len(got)-1].(events.ProjectPayload)
		assert.Contains(t, last.Detail, events.StopReasonMaxIterations)
	})

	t.Run("error", func(t *testing.T) {
		h := newHarness(t, runnerFunc(func(context.Context, agent.RunInput) agent.Result {
			return agent.Result{Status: agent.StatusError, FinalText: "boom", Summary: map[string]any{}}
		}))
		p := h.createProject(t, "loop-terminal-err")
		h.createEpicWithTask(t, p.ID)

		sub := h.bus.Subscribe(p.ID)
		defer sub.Close()

		_, err := h.orch.StartCodingSessions(context.Background(), p.ID, "", nil)
		require.NoError(t, err)

		collectEvents(t, sub, events.TypeCodingSessionsError, 10*time.Second)
		h.orch.Wait(p.ID)
	})
}

func intPtr(n int) *int { return &n }
