// Package orchestrator owns the session state machine: admission, the
// auto-continue coding loop, stop semantics, and the stale-session
// sweeper. It is the only writer of session terminal states during
// normal operation.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/agent"
	"github.com/autoforge-dev/autoforge/pkg/config"
	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/quality"
	"github.com/autoforge-dev/autoforge/pkg/sandbox"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

// SessionRunner abstracts the agent runner for tests.
type SessionRunner interface {
	Run(ctx context.Context, in agent.RunInput) agent.Result
}

// SandboxFactory builds a sandbox for one session.
type SandboxFactory func(cfg config.SandboxConfig, projectName, workDir string, sessionNumber int) (sandbox.Sandbox, error)

// Deps wires the orchestrator's collaborators.
type Deps struct {
	Config   *config.Config
	Projects *services.ProjectService
	Sessions *services.SessionService
	Items    *services.WorkItemService
	Quality  *quality.Checker
	Runner   SessionRunner
	Prompts  *prompts.Manager
	Bus      *events.Bus
	Sandbox  SandboxFactory
	Logger   *slog.Logger
}

// Orchestrator coordinates session execution per project.
type Orchestrator struct {
	cfg      *config.Config
	projects *services.ProjectService
	sessions *services.SessionService
	items    *services.WorkItemService
	quality  *quality.Checker
	runner   SessionRunner
	prompts  *prompts.Manager
	bus      *events.Bus
	sandbox  SandboxFactory
	logger   *slog.Logger

	mu        sync.Mutex
	active    map[string]*run // keyed by project id
	stopAfter map[string]bool
}

// run tracks one in-flight session or coding loop.
type run struct {
	sessionID string
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates an orchestrator.
func New(d Deps) *Orchestrator {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	factory := d.Sandbox
	if factory == nil {
		factory = sandbox.New
	}
	return &Orchestrator{
		cfg:       d.Config,
		projects:  d.Projects,
		sessions:  d.Sessions,
		items:     d.Items,
		quality:   d.Quality,
		runner:    d.Runner,
		prompts:   d.Prompts,
		bus:       d.Bus,
		sandbox:   factory,
		logger:    logger,
		active:    make(map[string]*run),
		stopAfter: make(map[string]bool),
	}
}

// Workspace returns the on-disk workspace for a project.
func (o *Orchestrator) Workspace(project *ent.Project) string {
	if project.LocalPath != "" {
		return project.LocalPath
	}
	return filepath.Join(o.cfg.Project.GenerationsDir, project.Name)
}

// LogsDir returns the event-log directory for a project.
func (o *Orchestrator) LogsDir(project *ent.Project) string {
	return filepath.Join(o.Workspace(project), "logs")
}

// StartInitialization runs exactly one initializer session. It requires
// an empty work tree, allocates the session synchronously so conflicts
// surface to the caller, and executes in the background.
func (o *Orchestrator) StartInitialization(ctx context.Context, projectID, model string) (*ent.AgentSession, error) {
	project, err := o.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	epics, err := o.items.ListEpics(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(epics) > 0 {
		return nil, fmt.Errorf("%w: project already has %d epics; reset it to re-initialize",
			services.ErrStateViolation, len(epics))
	}

	if err := o.sessions.CheckAdmission(ctx, projectID); err != nil {
		return nil, err
	}
	if model == "" {
		model = settingString(project, "model")
	}
	if model == "" {
		model = o.cfg.Models.ModelFor("initializer")
	}
	session, err := o.sessions.AllocateSession(ctx, projectID, "initializer", model, nil)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r := o.register(projectID, session.ID, cancel)

	go func() {
		defer o.finishRun(projectID, r)
		final := o.executeSession(runCtx, project, session)

		switch final.Status.String() {
		case "completed":
			o.afterInitialization(project)
			o.publish(events.ProjectPayload{
				BasePayload: events.NewBase(events.TypeInitializationComplete, projectID),
			})
		default:
			o.publish(events.ProjectPayload{
				BasePayload: events.NewBase(events.TypeInitializationError, projectID),
				Detail:      terminalDetail(final),
			})
		}
	}()

	return session, nil
}

// StartCodingSessions begins the auto-continue coding loop. The first
// session is allocated synchronously; the loop runs in the background.
// maxIterations nil or 0 means unlimited.
func (o *Orchestrator) StartCodingSessions(ctx context.Context, projectID, model string, maxIterations *int) (*ent.AgentSession, error) {
	project, err := o.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	epics, err := o.items.ListEpics(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(epics) == 0 {
		return nil, fmt.Errorf("%w: project has no epics; run initialization first",
			services.ErrStateViolation)
	}

	if err := o.sessions.CheckAdmission(ctx, projectID); err != nil {
		return nil, err
	}
	if model == "" {
		model = settingString(project, "model")
	}
	if model == "" {
		model = o.cfg.Models.ModelFor("coding")
	}
	if maxIterations == nil {
		if n := settingInt(project, "max_iterations"); n > 0 {
			maxIterations = &n
		}
	}

	limit := 0
	if maxIterations != nil {
		limit = *maxIterations
	}
	if o.cfg.Project.MaxIterations > 0 && limit == 0 {
		limit = o.cfg.Project.MaxIterations
	}

	first, err := o.sessions.AllocateSession(ctx, projectID, "coding", model, maxIterations)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r := o.register(projectID, first.ID, cancel)

	go func() {
		defer o.finishRun(projectID, r)
		o.codingLoop(runCtx, project, model, limit, first, r)
	}()

	return first, nil
}

// codingLoop runs coding sessions until a stop condition fires.
func (o *Orchestrator) codingLoop(ctx context.Context, project *ent.Project, model string, limit int, first *ent.AgentSession, r *run) {
	projectID := project.ID
	sessionsRun := 0

	stop := func(reason string) {
		o.publish(events.AutoContinuePayload{
			BasePayload: events.NewBase(events.TypeAutoContinueStopped, projectID),
			Reason:      reason,
			Sessions:    sessionsRun,
		})

		// Terminal loop event mirrors the initializer pair.
		loopEvent := events.TypeCodingSessionsComplete
		if reason == events.StopReasonSessionError {
			loopEvent = events.TypeCodingSessionsError
		}
		o.publish(events.ProjectPayload{
			BasePayload: events.NewBase(loopEvent, projectID),
			Detail:      fmt.Sprintf("coding loop stopped after %d sessions: %s", sessionsRun, reason),
		})
	}

	session := first
	for iteration := 0; ; iteration++ {
		if limit > 0 && iteration >= limit {
			o.abandonPending(session)
			stop(events.StopReasonMaxIterations)
			return
		}
		if o.consumeStopAfter(projectID) {
			o.abandonPending(session)
			stop(events.StopReasonStopRequested)
			return
		}

		progress, err := o.projects.Progress(ctx, projectID)
		if err != nil {
			o.logger.Error("Progress read failed", "project_id", projectID, "error", err)
			o.abandonPending(session)
			stop(events.StopReasonSessionError)
			return
		}
		if progress.AllEpicsDone {
			o.abandonPending(session)
			o.publish(events.ProjectPayload{
				BasePayload: events.NewBase(events.TypeAllEpicsComplete, projectID),
			})
			stop(events.StopReasonAllEpicsComplete)
			return
		}

		if iteration > 0 {
			delay := o.cfg.Timing.AutoContinueDelay()
			o.publish(events.AutoContinuePayload{
				BasePayload:  events.NewBase(events.TypeAutoContinueDelay, projectID),
				DelaySeconds: int(delay.Seconds()),
				Sessions:     sessionsRun,
			})
			if !sleepCtx(ctx, delay) {
				stop(events.StopReasonStopRequested)
				return
			}

			session, err = o.sessions.AllocateSession(ctx, projectID, "coding", model, nil)
			if err != nil {
				o.logger.Error("Session allocation failed", "project_id", projectID, "error", err)
				stop(events.StopReasonSessionError)
				return
			}
		}

		o.setActiveSession(projectID, session.ID)
		final := o.executeSession(ctx, project, session)
		sessionsRun++

		switch final.Status.String() {
		case "error":
			stop(events.StopReasonSessionError)
			return
		case "interrupted":
			stop(events.StopReasonSessionInterrupted)
			return
		}

		progress, err = o.projects.Progress(ctx, projectID)
		if err != nil {
			o.logger.Error("Progress read failed", "project_id", projectID, "error", err)
			stop(events.StopReasonSessionError)
			return
		}
		if progress.TasksTotal > 0 && progress.TasksDone == progress.TasksTotal {
			if _, err := o.projects.CompleteProject(ctx, projectID); err != nil {
				o.logger.Error("Project completion failed", "project_id", projectID, "error", err)
			}
			o.publish(events.ProjectPayload{
				BasePayload: events.NewBase(events.TypeProjectComplete, projectID),
			})
			stop(events.StopReasonProjectComplete)
			return
		}
	}
}

// executeSession runs one allocated session end to end and returns the
// terminal row.
func (o *Orchestrator) executeSession(ctx context.Context, project *ent.Project, session *ent.AgentSession) *ent.AgentSession {
	projectID := project.ID

	fail := func(detail string) *ent.AgentSession {
		final, err := o.sessions.MarkSessionTerminal(context.Background(), session.ID, "error", detail)
		if err != nil {
			o.logger.Error("Failed to mark session error", "session_id", session.ID, "error", err)
			return session
		}
		o.publish(events.SessionPayload{
			BasePayload:   events.NewBase(events.TypeSessionError, projectID),
			SessionID:     session.ID,
			SessionNumber: session.SessionNumber,
			SessionType:   session.Type.String(),
			Status:        "error",
			Error:         detail,
		})
		return final
	}

	if _, err := o.sessions.MarkRunning(ctx, session.ID); err != nil {
		return fail(fmt.Sprintf("admission failed: %v", err))
	}

	workDir := o.Workspace(project)
	sandboxCfg := o.sandboxConfig(project)
	box, err := o.sandbox(sandboxCfg, project.Name, workDir, session.SessionNumber)
	if err != nil {
		return fail(fmt.Sprintf("sandbox setup failed: %v", err))
	}
	if err := box.Start(ctx); err != nil {
		return fail(fmt.Sprintf("sandbox start failed: %v", err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := box.Stop(stopCtx); err != nil {
			o.logger.Warn("Sandbox stop failed", "handle", box.Handle(), "error", err)
		}
	}()

	logger, err := eventlog.NewLogger(o.LogsDir(project), session.SessionNumber)
	if err != nil {
		return fail(fmt.Sprintf("event log setup failed: %v", err))
	}
	defer func() {
		if err := logger.Close(); err != nil {
			o.logger.Warn("Event log close failed", "session_id", session.ID, "error", err)
		}
	}()

	sessionType := session.Type.String()
	promptFile, err := prompts.FileFor(sessionType, sandboxCfg.Type)
	if err != nil {
		return fail(err.Error())
	}
	systemPrompt, err := o.prompts.Resolve(ctx, promptFile)
	if err != nil {
		return fail(fmt.Sprintf("prompt resolution failed: %v", err))
	}
	userMessage, err := o.buildUserMessage(ctx, project, sessionType)
	if err != nil {
		return fail(fmt.Sprintf("session setup failed: %v", err))
	}

	o.publish(events.SessionPayload{
		BasePayload:   events.NewBase(events.TypeSessionStarted, projectID),
		SessionID:     session.ID,
		SessionNumber: session.SessionNumber,
		SessionType:   sessionType,
		Status:        "running",
	})

	result := o.runner.Run(ctx, agent.RunInput{
		ProjectID:     projectID,
		SessionNumber: session.SessionNumber,
		SessionType:   sessionType,
		Model:         session.Model,
		SystemPrompt:  systemPrompt,
		UserMessage:   userMessage,
		Sandbox:       box,
		WorkDir:       workDir,
		Log:           logger,
		Progress: func(tool, detail string) {
			o.publish(events.ProgressPayload{
				BasePayload: events.NewBase(events.TypeProgress, projectID),
				SessionID:   session.ID,
				Tool:        tool,
				Detail:      detail,
			})
		},
	})

	// Terminal writes outlive a cancelled session context.
	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelFinish()

	if err := o.sessions.UpdateMetrics(finishCtx, session.ID, result.Summary); err != nil {
		o.logger.Error("Failed to store session metrics", "session_id", session.ID, "error", err)
	}

	detail := ""
	if result.Status != agent.StatusCompleted {
		detail = result.FinalText
		if detail == "" {
			detail = "session did not complete"
		}
	}
	final, err := o.sessions.MarkSessionTerminal(finishCtx, session.ID, result.Status, detail)
	if err != nil {
		o.logger.Error("Failed to mark session terminal", "session_id", session.ID, "error", err)
		final = session
	}

	o.afterSession(finishCtx, project, final)

	eventType := events.TypeSessionCompleted
	if result.Status == agent.StatusError {
		eventType = events.TypeSessionError
	}
	o.publish(events.SessionPayload{
		BasePayload:   events.NewBase(eventType, projectID),
		SessionID:     session.ID,
		SessionNumber: session.SessionNumber,
		SessionType:   sessionType,
		Status:        result.Status,
		Error:         detail,
	})

	return final
}

// afterSession runs the quick quality check and schedules a deep review.
// Initializer sessions skip both.
func (o *Orchestrator) afterSession(ctx context.Context, project *ent.Project, session *ent.AgentSession) {
	if o.quality == nil || session.Type.String() == "initializer" {
		return
	}

	// Log files carry a timestamp suffix; resolve the session prefix to
	// the actual file name before reading.
	logsDir := o.LogsDir(project)
	var logEvents []eventlog.Event
	logName, err := eventlog.ResolveLogName(logsDir, fmt.Sprintf("session_%d", session.SessionNumber))
	if err != nil {
		o.logger.Warn("Event log lookup failed for quality check",
			"session_id", session.ID, "error", err)
	} else {
		logEvents, err = eventlog.ReadEvents(logsDir, logName)
		if err != nil {
			o.logger.Warn("Event log read failed for quality check",
				"session_id", session.ID, "error", err)
		}
	}

	check, metrics, err := o.quality.RunQuickCheck(ctx, session, logEvents)
	if err != nil {
		o.logger.Warn("Quick quality check failed", "session_id", session.ID, "error", err)
		return
	}

	o.quality.MaybeDeepReview(session, logEvents, metrics, check.OverallRating, func(deep *ent.QualityCheck) {
		o.publish(events.DeepReviewPayload{
			BasePayload:   events.NewBase(events.TypeDeepReviewComplete, project.ID),
			SessionID:     session.ID,
			SessionNumber: session.SessionNumber,
			OverallRating: deep.OverallRating,
		})
	})
}

// afterInitialization stores the test-coverage report for a freshly
// initialized project.
func (o *Orchestrator) afterInitialization(project *ent.Project) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := quality.AnalyzeCoverage(ctx, o.items, project.ID)
	if err != nil {
		o.logger.Warn("Coverage analysis failed", "project_id", project.ID, "error", err)
		return
	}
	if err := quality.SaveCoverage(ctx, o.projects, project.ID, report); err != nil {
		o.logger.Warn("Coverage save failed", "project_id", project.ID, "error", err)
	}
}

// buildUserMessage produces the opening user turn for a session.
func (o *Orchestrator) buildUserMessage(ctx context.Context, project *ent.Project, sessionType string) (string, error) {
	if sessionType == "initializer" {
		return fmt.Sprintf("Project specification:\n\n%s\n\nBreak this down into epics, tasks and test cases, then prepare the workspace.", project.SpecContent), nil
	}

	task, err := o.items.NextPendingTask(ctx, project.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return "Continue working through the remaining work tree. Verify everything in the browser before marking tasks done.", nil
		}
		return "", err
	}
	return fmt.Sprintf("Continue working. The next pending task is:\n\n%s\n\nVerify your work in the browser before marking it done.", task.Description), nil
}

// sandboxConfig applies the project's sandbox_type override to the
// configured sandbox.
func (o *Orchestrator) sandboxConfig(project *ent.Project) config.SandboxConfig {
	sc := o.cfg.Sandbox
	if t := settingString(project, "sandbox_type"); t != "" {
		sc.Type = t
	}
	return sc
}

func settingString(project *ent.Project, key string) string {
	if project.Settings == nil {
		return ""
	}
	s, _ := project.Settings[key].(string)
	return s
}

// settingInt reads a numeric setting. JSON round trips deliver numbers
// as float64.
func settingInt(project *ent.Project, key string) int {
	if project.Settings == nil {
		return 0
	}
	switch n := project.Settings[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func terminalDetail(session *ent.AgentSession) string {
	if session.ErrorMessage != nil && *session.ErrorMessage != "" {
		return *session.ErrorMessage
	}
	if session.InterruptionReason != nil {
		return *session.InterruptionReason
	}
	return ""
}

// abandonPending marks a pre-allocated session the loop decided not to
// run.
func (o *Orchestrator) abandonPending(session *ent.AgentSession) {
	if session == nil || session.Status.String() != "pending" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := o.sessions.MarkSessionTerminal(ctx, session.ID, "interrupted", "not started: loop stopped before execution"); err != nil {
		o.logger.Warn("Failed to abandon pending session", "session_id", session.ID, "error", err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (o *Orchestrator) publish(payload events.Payload) {
	if o.bus == nil {
		return
	}
	o.bus.Publish(payload.Topic(), payload)
}
