package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func completedCodingSession(t *testing.T, sessions *SessionService, projectID string) *ent.AgentSession {
	t.Helper()
	ctx := context.Background()
	s, err := sessions.AllocateSession(ctx, projectID, "coding", "test-model", nil)
	require.NoError(t, err)
	_, err = sessions.MarkRunning(ctx, s.ID)
	require.NoError(t, err)
	done, err := sessions.MarkSessionTerminal(ctx, s.ID, "completed", "")
	require.NoError(t, err)
	return done
}

func TestQualityService_CreateQualityCheck(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client)
	service := NewQualityService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "quality")
	s := completedCodingSession(t, sessions, p.ID)

	t.Run("stores a quick check", func(t *testing.T) {
		check, err := service.CreateQualityCheck(ctx, QualityCheckInput{
			SessionID:     s.ID,
			Kind:          "quick",
			OverallRating: 8,
			Metrics:       map[string]interface{}{"errors_count": 0.0},
			Warnings:      []string{"no browser verification"},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, check.OverallRating)
		assert.Equal(t, "completed", check.Status.String())
	})

	t.Run("rejects a duplicate kind for the same session", func(t *testing.T) {
		_, err := service.CreateQualityCheck(ctx, QualityCheckInput{
			SessionID:     s.ID,
			Kind:          "quick",
			OverallRating: 5,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("allows a deep check alongside the quick one", func(t *testing.T) {
		check, err := service.CreateQualityCheck(ctx, QualityCheckInput{
			SessionID:      s.ID,
			Kind:           "deep",
			OverallRating:  6,
			CriticalIssues: []string{"tests not run before commit"},
			ReviewText:     "overall solid, testing discipline slipping",
		})
		require.NoError(t, err)
		assert.Equal(t, "deep", check.Kind.String())

		checks, err := service.GetChecksForSession(ctx, s.ID)
		require.NoError(t, err)
		assert.Len(t, checks, 2)
	})

	t.Run("validates rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 11, -3} {
			_, err := service.CreateQualityCheck(ctx, QualityCheckInput{
				SessionID:     s.ID,
				Kind:          "quick",
				OverallRating: rating,
			})
			assert.True(t, IsValidationError(err), "rating %d should be rejected", rating)
		}
	})
}

func TestQualityService_LastDeepReviewNumber(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client)
	service := NewQualityService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "deep-number")

	n, err := service.LastDeepReviewNumber(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	s1 := completedCodingSession(t, sessions, p.ID)
	s2 := completedCodingSession(t, sessions, p.ID)

	_, err = service.CreateQualityCheck(ctx, QualityCheckInput{
		SessionID: s1.ID, Kind: "deep", OverallRating: 7,
	})
	require.NoError(t, err)

	n, err = service.LastDeepReviewNumber(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, s1.SessionNumber, n)

	_, err = service.CreateQualityCheck(ctx, QualityCheckInput{
		SessionID: s2.ID, Kind: "deep", OverallRating: 8,
	})
	require.NoError(t, err)

	n, err = service.LastDeepReviewNumber(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, s2.SessionNumber, n)
}

func TestQualityService_RecentCompletedChecks(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client)
	service := NewQualityService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "recent-checks")

	s := completedCodingSession(t, sessions, p.ID)
	_, err := service.CreateQualityCheck(ctx, QualityCheckInput{
		SessionID: s.ID, Kind: "quick", OverallRating: 6,
	})
	require.NoError(t, err)

	// Deep checks are excluded from the analyzer feed
	s2 := completedCodingSession(t, sessions, p.ID)
	_, err = service.CreateQualityCheck(ctx, QualityCheckInput{
		SessionID: s2.ID, Kind: "deep", OverallRating: 6,
	})
	require.NoError(t, err)

	now := time.Now()
	checks, err := service.RecentCompletedChecks(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, s.ID, checks[0].Edges.Session.ID)

	// Outside the window
	checks, err = service.RecentCompletedChecks(ctx, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, checks)
}
