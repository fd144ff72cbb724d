package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

// register records a new in-flight run for a project.
func (o *Orchestrator) register(projectID, sessionID string, cancel context.CancelFunc) *run {
	r := &run{sessionID: sessionID, cancel: cancel, done: make(chan struct{})}
	o.mu.Lock()
	o.active[projectID] = r
	o.mu.Unlock()
	return r
}

// finishRun clears the registry entry if it still points at this run.
func (o *Orchestrator) finishRun(projectID string, r *run) {
	o.mu.Lock()
	if o.active[projectID] == r {
		delete(o.active, projectID)
	}
	o.mu.Unlock()
	close(r.done)
}

func (o *Orchestrator) setActiveSession(projectID, sessionID string) {
	o.mu.Lock()
	if r := o.active[projectID]; r != nil {
		r.sessionID = sessionID
	}
	o.mu.Unlock()
}

// consumeStopAfter reads and clears the graceful-stop flag.
func (o *Orchestrator) consumeStopAfter(projectID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopAfter[projectID] {
		delete(o.stopAfter, projectID)
		return true
	}
	return false
}

// SetStopAfterCurrent requests a graceful stop: the active session
// finishes normally and the coding loop exits before the next one.
func (o *Orchestrator) SetStopAfterCurrent(projectID string) {
	o.mu.Lock()
	o.stopAfter[projectID] = true
	o.mu.Unlock()
}

// ClearStopAfter withdraws a pending graceful-stop request.
func (o *Orchestrator) ClearStopAfter(projectID string) {
	o.mu.Lock()
	delete(o.stopAfter, projectID)
	o.mu.Unlock()
}

// StopSession cancels the project's in-flight run immediately. The
// running session terminates with status interrupted. Returns the
// cancelled session id.
func (o *Orchestrator) StopSession(ctx context.Context, projectID string) (string, error) {
	o.mu.Lock()
	r := o.active[projectID]
	o.mu.Unlock()

	if r == nil {
		return "", fmt.Errorf("%w: no active session for project %s", services.ErrNotFound, projectID)
	}

	r.cancel()
	select {
	case <-r.done:
	case <-ctx.Done():
		return r.sessionID, ctx.Err()
	}
	return r.sessionID, nil
}

// CancelInitialization stops a running initializer and deletes whatever
// work tree it created. The project's spec content and workspace are
// preserved so initialization can be re-run.
func (o *Orchestrator) CancelInitialization(ctx context.Context, projectID string) error {
	if _, err := o.StopSession(ctx, projectID); err != nil {
		return err
	}

	deleted, err := o.items.DeleteAllEpics(ctx, projectID)
	if err != nil {
		return err
	}
	o.logger.Info("Initialization cancelled",
		"project_id", projectID, "epics_deleted", deleted)

	o.publish(events.ProjectPayload{
		BasePayload: events.NewBase(events.TypeProjectReset, projectID),
		Detail:      "initialization cancelled",
	})
	return nil
}

// Wait blocks until the project's current run finishes. Used by tests
// and graceful shutdown.
func (o *Orchestrator) Wait(projectID string) {
	o.mu.Lock()
	r := o.active[projectID]
	o.mu.Unlock()
	if r != nil {
		<-r.done
	}
}

// ActiveSessionID returns the session id of the project's in-flight run,
// or empty.
func (o *Orchestrator) ActiveSessionID(projectID string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if r := o.active[projectID]; r != nil {
		return r.sessionID
	}
	return ""
}

// SweepStaleSessions marks sessions whose heartbeat thresholds have
// passed as interrupted, and announces each one.
func (o *Orchestrator) SweepStaleSessions(ctx context.Context) {
	swept, err := o.sessions.CleanupStaleSessions(ctx)
	if err != nil {
		o.logger.Error("Stale session sweep failed", "error", err)
		return
	}
	for _, s := range swept {
		o.logger.Warn("Swept stale session",
			"session_id", s.ID, "project_id", s.ProjectID, "session_number", s.SessionNumber)
		o.publish(events.SessionPayload{
			BasePayload:   events.NewBase(events.TypeSessionError, s.ProjectID),
			SessionID:     s.ID,
			SessionNumber: s.SessionNumber,
			SessionType:   s.Type.String(),
			Status:        s.Status.String(),
			Error:         "session went stale and was interrupted",
		})
	}
}

// StartStaleSweeper sweeps once immediately and then on the configured
// interval until the context ends.
func (o *Orchestrator) StartStaleSweeper(ctx context.Context) {
	interval := o.cfg.Timing.StaleSweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	go func() {
		o.SweepStaleSessions(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				o.SweepStaleSessions(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Snapshot builds the initial_state document for a new WebSocket
// subscriber.
func (o *Orchestrator) Snapshot(ctx context.Context, projectID string) (any, error) {
	project, err := o.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	progress, err := o.projects.Progress(ctx, projectID)
	if err != nil {
		return nil, err
	}
	recent, err := o.sessions.ListSessions(ctx, projectID, models.SessionFilters{Limit: 10})
	if err != nil {
		return nil, err
	}

	var active *ent.AgentSession
	if current, err := o.sessions.GetActiveSession(ctx, projectID); err == nil {
		active = current
	}

	return map[string]any{
		"project":         project,
		"progress":        progress,
		"active_session":  active,
		"recent_sessions": recent.Sessions,
	}, nil
}
