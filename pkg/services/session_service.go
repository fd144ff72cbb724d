package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/pkg/models"
)

// Stale thresholds per session type. A running session whose start is
// older than its threshold is presumed dead and swept.
const (
	StaleInitializerAfter = 30 * time.Minute
	StaleCodingAfter      = 10 * time.Minute
	StaleReviewAfter      = 5 * time.Minute
)

// allocateRetries bounds the session-number race retry loop.
const allocateRetries = 3

// SessionService manages agent session records
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// AllocateSession creates a pending session with the next session number
// for the project. Number 0 is the initializer; coding and review sessions
// continue from the current maximum. Concurrent allocations race on the
// (project_id, session_number) unique index and the loser retries with a
// fresh number.
func (s *SessionService) AllocateSession(ctx context.Context, projectID, sessionType, model string, maxIterations *int) (*ent.AgentSession, error) {
	switch sessionType {
	case agentsession.TypeInitializer.String(), agentsession.TypeCoding.String(), agentsession.TypeReview.String():
	default:
		return nil, NewValidationError("type", fmt.Sprintf("unknown session type %q", sessionType))
	}
	if model == "" {
		return nil, NewValidationError("model", "required")
	}

	var lastErr error
	for attempt := 0; attempt < allocateRetries; attempt++ {
		number, err := s.nextSessionNumber(ctx, projectID, sessionType)
		if err != nil {
			return nil, err
		}

		builder := s.client.AgentSession.Create().
			SetID(uuid.New().String()).
			SetProjectID(projectID).
			SetSessionNumber(number).
			SetType(agentsession.Type(sessionType)).
			SetModel(model).
			SetStatus(agentsession.StatusPending)
		if maxIterations != nil {
			builder.SetMaxIterations(*maxIterations)
		}

		session, err := builder.Save(ctx)
		if err == nil {
			return session, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		// Number 0 is fixed, so a conflict means the project was already
		// initialized and retrying cannot help.
		if sessionType == agentsession.TypeInitializer.String() {
			return nil, fmt.Errorf("%w: project already initialized", ErrAlreadyExists)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to allocate session number after %d attempts: %w", allocateRetries, lastErr)
}

func (s *SessionService) nextSessionNumber(ctx context.Context, projectID, sessionType string) (int, error) {
	// The initializer claims number 0; everything else continues the
	// sequence.
	if sessionType == agentsession.TypeInitializer.String() {
		return 0, nil
	}

	last, err := s.client.AgentSession.Query().
		Where(agentsession.ProjectID(projectID)).
		Order(ent.Desc(agentsession.FieldSessionNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query last session number: %w", err)
	}
	return last.SessionNumber + 1, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetActiveSession returns the running session for a project, or ErrNotFound.
func (s *SessionService) GetActiveSession(ctx context.Context, projectID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(
			agentsession.ProjectID(projectID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	return session, nil
}

// ListSessions returns sessions for a project, newest first.
func (s *SessionService) ListSessions(ctx context.Context, projectID string, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.AgentSession.Query().
		Where(agentsession.ProjectID(projectID))

	if filters.Type != "" {
		query = query.Where(agentsession.TypeEQ(agentsession.Type(filters.Type)))
	}
	if filters.Status != "" {
		query = query.Where(agentsession.StatusEQ(agentsession.Status(filters.Status)))
	}
	if filters.StartedAfter != nil {
		query = query.Where(agentsession.StartedAtGTE(*filters.StartedAfter))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	query = query.Order(ent.Desc(agentsession.FieldSessionNumber))
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

// MarkRunning transitions a pending session to running and stamps
// started_at. The partial unique index on (project_id) WHERE running
// rejects a second concurrent claim.
func (s *SessionService) MarkRunning(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != agentsession.StatusPending {
		return nil, fmt.Errorf("%w: session %s is %s, not pending", ErrStateViolation, sessionID, session.Status)
	}

	updated, err := session.Update().
		SetStatus(agentsession.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, s.busyError(ctx, session.ProjectID)
		}
		return nil, fmt.Errorf("failed to mark session running: %w", err)
	}
	return updated, nil
}

func (s *SessionService) busyError(ctx context.Context, projectID string) error {
	active, err := s.GetActiveSession(ctx, projectID)
	if err != nil {
		return &BusyError{ProjectID: projectID}
	}
	return &BusyError{
		ProjectID:     projectID,
		SessionID:     active.ID,
		SessionNumber: active.SessionNumber,
		StartedAt:     active.StartedAt,
	}
}

// CheckAdmission returns a BusyError when the project already has a
// running session. This is the admission gate; the partial unique index
// is the backstop.
func (s *SessionService) CheckAdmission(ctx context.Context, projectID string) error {
	active, err := s.GetActiveSession(ctx, projectID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	return &BusyError{
		ProjectID:     projectID,
		SessionID:     active.ID,
		SessionNumber: active.SessionNumber,
		StartedAt:     active.StartedAt,
	}
}

// MarkSessionTerminal moves a session to a terminal status. Calling it
// on an already terminal session is a no-op so crash recovery and
// normal completion can race safely.
func (s *SessionService) MarkSessionTerminal(ctx context.Context, sessionID, status, detail string) (*ent.AgentSession, error) {
	switch status {
	case agentsession.StatusCompleted.String(), agentsession.StatusError.String(), agentsession.StatusInterrupted.String():
	default:
		return nil, NewValidationError("status", fmt.Sprintf("%q is not a terminal status", status))
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if isTerminal(session.Status) {
		return session, nil
	}

	builder := session.Update().
		SetStatus(agentsession.Status(status)).
		SetEndedAt(time.Now())
	switch status {
	case agentsession.StatusError.String():
		builder.SetErrorMessage(detail)
	case agentsession.StatusInterrupted.String():
		builder.SetInterruptionReason(detail)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize session: %w", err)
	}
	return updated, nil
}

func isTerminal(status agentsession.Status) bool {
	switch status {
	case agentsession.StatusCompleted, agentsession.StatusError, agentsession.StatusInterrupted:
		return true
	}
	return false
}

// UpdateMetrics stores the session metrics blob.
func (s *SessionService) UpdateMetrics(ctx context.Context, sessionID string, metrics map[string]interface{}) error {
	err := s.client.AgentSession.UpdateOneID(sessionID).
		SetMetrics(metrics).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session metrics: %w", err)
	}
	return nil
}

// CleanupStaleSessions interrupts running sessions whose start time is
// older than the per-type staleness threshold. Returns the swept sessions.
func (s *SessionService) CleanupStaleSessions(ctx context.Context) ([]*ent.AgentSession, error) {
	now := time.Now()

	stale, err := s.client.AgentSession.Query().
		Where(
			agentsession.StatusEQ(agentsession.StatusRunning),
			agentsession.Or(
				agentsession.And(
					agentsession.TypeEQ(agentsession.TypeInitializer),
					agentsession.StartedAtLT(now.Add(-StaleInitializerAfter)),
				),
				agentsession.And(
					agentsession.TypeEQ(agentsession.TypeCoding),
					agentsession.StartedAtLT(now.Add(-StaleCodingAfter)),
				),
				agentsession.And(
					agentsession.TypeEQ(agentsession.TypeReview),
					agentsession.StartedAtLT(now.Add(-StaleReviewAfter)),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale sessions: %w", err)
	}

	swept := make([]*ent.AgentSession, 0, len(stale))
	for _, session := range stale {
		reason := fmt.Sprintf("stale: no heartbeat within %s threshold", staleThresholdFor(session.Type))
		updated, err := s.MarkSessionTerminal(ctx, session.ID,
			agentsession.StatusInterrupted.String(), reason)
		if err != nil {
			return swept, fmt.Errorf("failed to sweep session %s: %w", session.ID, err)
		}
		swept = append(swept, updated)
	}
	return swept, nil
}

// staleThresholdFor returns the staleness threshold applied to a session
// type.
func staleThresholdFor(sessionType agentsession.Type) time.Duration {
	switch sessionType {
	case agentsession.TypeInitializer:
		return StaleInitializerAfter
	case agentsession.TypeReview:
		return StaleReviewAfter
	default:
		return StaleCodingAfter
	}
}
