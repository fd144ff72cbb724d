package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/pkg/models"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func createTestProject(t *testing.T, svc *ProjectService, name string) *ent.Project {
	t.Helper()
	p, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

func TestSessionService_AllocateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("initializer takes session number zero", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-init")

		session, err := service.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, session.SessionNumber)
		assert.Equal(t, agentsession.StatusPending, session.Status)
		assert.Nil(t, session.StartedAt)
	})

	t.Run("second initializer conflicts", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-init-dup")

		_, err := service.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
		require.NoError(t, err)

		_, err = service.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("coding sessions continue the sequence", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-seq")

		_, err := service.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
		require.NoError(t, err)

		s1, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, s1.SessionNumber)

		s2, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		assert.Equal(t, 2, s2.SessionNumber)
	})

	t.Run("coding without initializer starts at one", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-no-init")

		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, s.SessionNumber)
	})

	t.Run("stores max iterations when provided", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-maxiter")

		maxIter := 7
		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", &maxIter)
		require.NoError(t, err)
		require.NotNil(t, s.MaxIterations)
		assert.Equal(t, 7, *s.MaxIterations)
	})

	t.Run("rejects unknown session type", func(t *testing.T) {
		p := createTestProject(t, projects, "alloc-badtype")

		_, err := service.AllocateSession(ctx, p.ID, "deploy", "test-model", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_AdmissionGate(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "admission")

	s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
	require.NoError(t, err)

	// No running session yet
	require.NoError(t, service.CheckAdmission(ctx, p.ID))

	running, err := service.MarkRunning(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusRunning, running.Status)
	require.NotNil(t, running.StartedAt)

	// Gate rejects while running, with context about the holder
	err = service.CheckAdmission(ctx, p.ID)
	require.Error(t, err)
	var busy *BusyError
	require.ErrorAs(t, err, &busy)
	assert.Equal(t, running.ID, busy.SessionID)
	assert.Equal(t, running.SessionNumber, busy.SessionNumber)

	// A second session cannot claim running: partial unique index backstop
	s2, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
	require.NoError(t, err)
	_, err = service.MarkRunning(ctx, s2.ID)
	require.Error(t, err)
	assert.True(t, IsBusyError(err))

	// Gate opens again after the session finishes
	_, err = service.MarkSessionTerminal(ctx, running.ID, "completed", "")
	require.NoError(t, err)
	require.NoError(t, service.CheckAdmission(ctx, p.ID))
}

func TestSessionService_MarkSessionTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("records error detail", func(t *testing.T) {
		p := createTestProject(t, projects, "terminal-error")
		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		_, err = service.MarkRunning(ctx, s.ID)
		require.NoError(t, err)

		done, err := service.MarkSessionTerminal(ctx, s.ID, "error", "transport failed")
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusError, done.Status)
		require.NotNil(t, done.ErrorMessage)
		assert.Equal(t, "transport failed", *done.ErrorMessage)
		assert.NotNil(t, done.EndedAt)
	})

	t.Run("records interruption reason", func(t *testing.T) {
		p := createTestProject(t, projects, "terminal-interrupt")
		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		_, err = service.MarkRunning(ctx, s.ID)
		require.NoError(t, err)

		done, err := service.MarkSessionTerminal(ctx, s.ID, "interrupted", "user_stop")
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusInterrupted, done.Status)
		require.NotNil(t, done.InterruptionReason)
		assert.Equal(t, "user_stop", *done.InterruptionReason)
	})

	t.Run("idempotent on already terminal session", func(t *testing.T) {
		p := createTestProject(t, projects, "terminal-idem")
		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
		_, err = service.MarkRunning(ctx, s.ID)
		require.NoError(t, err)

		first, err := service.MarkSessionTerminal(ctx, s.ID, "completed", "")
		require.NoError(t, err)

		// A later sweep must not overwrite the recorded outcome
		second, err := service.MarkSessionTerminal(ctx, s.ID, "interrupted", "stale")
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusCompleted, second.Status)
		assert.Equal(t, first.EndedAt.Unix(), second.EndedAt.Unix())
	})

	t.Run("rejects non-terminal status", func(t *testing.T) {
		p := createTestProject(t, projects, "terminal-bad")
		s, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)

		_, err = service.MarkSessionTerminal(ctx, s.ID, "running", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_CleanupStaleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	mkRunning := func(t *testing.T, projectName, sessionType string, startedAgo time.Duration) *ent.AgentSession {
		t.Helper()
		p := createTestProject(t, projects, projectName)
		s, err := service.AllocateSession(ctx, p.ID, sessionType, "test-model", nil)
		require.NoError(t, err)
		updated, err := client.AgentSession.UpdateOneID(s.ID).
			SetStatus(agentsession.StatusRunning).
			SetStartedAt(time.Now().Add(-startedAgo)).
			Save(ctx)
		require.NoError(t, err)
		return updated
	}

	staleInit := mkRunning(t, "stale-init", "initializer", 31*time.Minute)
	freshInit := mkRunning(t, "fresh-init", "initializer", 20*time.Minute)
	staleCoding := mkRunning(t, "stale-coding", "coding", 11*time.Minute)
	freshCoding := mkRunning(t, "fresh-coding", "coding", 9*time.Minute)
	staleReview := mkRunning(t, "stale-review", "review", 6*time.Minute)

	swept, err := service.CleanupStaleSessions(ctx)
	require.NoError(t, err)

	sweptIDs := make(map[string]bool)
	reasons := make(map[string]string)
	for _, s := range swept {
		sweptIDs[s.ID] = true
		assert.Equal(t, agentsession.StatusInterrupted, s.Status)
		require.NotNil(t, s.InterruptionReason)
		assert.Contains(t, *s.InterruptionReason, "stale")
		reasons[s.ID] = *s.InterruptionReason
	}

	assert.True(t, sweptIDs[staleInit.ID])
	assert.True(t, sweptIDs[staleCoding.ID])
	assert.True(t, sweptIDs[staleReview.ID])

	// The reason names the threshold that tripped
	assert.Contains(t, reasons[staleInit.ID], StaleInitializerAfter.String())
	assert.Contains(t, reasons[staleCoding.ID], StaleCodingAfter.String())
	assert.Contains(t, reasons[staleReview.ID], StaleReviewAfter.String())
	assert.False(t, sweptIDs[freshInit.ID])
	assert.False(t, sweptIDs[freshCoding.ID])

	// Survivors still running
	fresh, err := service.GetSession(ctx, freshCoding.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusRunning, fresh.Status)
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "list-sessions")

	_, err := service.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := service.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
		require.NoError(t, err)
	}

	resp, err := service.ListSessions(ctx, p.ID, models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCount)
	// Newest first
	assert.Equal(t, 3, resp.Sessions[0].SessionNumber)

	resp, err = service.ListSessions(ctx, p.ID, models.SessionFilters{Type: "coding", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Sessions, 2)
}
