package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func newAnalysis(t *testing.T, service *AnalysisService) *ent.PromptAnalysis {
	t.Helper()
	a, err := service.CreateAnalysis(context.Background(), "container", "manual",
		time.Now().Add(-7*24*time.Hour), time.Now())
	require.NoError(t, err)
	return a
}

func TestAnalysisService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("completes with findings", func(t *testing.T) {
		a := newAnalysis(t, service)
		assert.Equal(t, "running", a.Status.String())

		completed, err := service.CompleteAnalysis(ctx, a.ID, AnalysisResult{
			ProjectsAnalyzed: []string{"p1", "p2"},
			SessionsAnalyzed: 12,
			Patterns: map[string]interface{}{
				"themes": []interface{}{map[string]interface{}{"theme": "testing", "frequency": 4.0}},
			},
			QualityImpactEstimate: 1.5,
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", completed.Status.String())
		assert.Equal(t, 12, completed.SessionsAnalyzed)
		assert.NotNil(t, completed.CompletedAt)
		assert.InDelta(t, 1.5, completed.QualityImpactEstimate, 0.001)
	})

	t.Run("fails with reason in notes", func(t *testing.T) {
		a := newAnalysis(t, service)

		failed, err := service.FailAnalysis(ctx, a.ID, "llm transport unavailable")
		require.NoError(t, err)
		assert.Equal(t, "failed", failed.Status.String())
		assert.Equal(t, "llm transport unavailable", failed.Notes)
	})

	t.Run("delete cascades to proposals", func(t *testing.T) {
		a := newAnalysis(t, service)
		_, err := service.CreateProposals(ctx, a.ID, []ProposalInput{{
			PromptFile:   "coding_prompt_container.md",
			SectionName:  "Testing",
			ChangeType:   "addition",
			ProposedText: "Always run the test suite before committing.",
			Rationale:    "testing failures recur",
			Confidence:   7,
		}})
		require.NoError(t, err)

		require.NoError(t, service.DeleteAnalysis(ctx, a.ID))

		count, err := client.PromptProposal.Query().
			Where(promptproposal.AnalysisID(a.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestAnalysisService_Proposals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	a := newAnalysis(t, service)

	_, err := service.CreateProposals(ctx, a.ID, []ProposalInput{
		{
			PromptFile:   "coding_prompt_container.md",
			SectionName:  "Verification",
			ChangeType:   "addition",
			ProposedText: "Verify UI changes in the browser.",
			Rationale:    "browser checks skipped",
			Confidence:   5,
		},
		{
			PromptFile:   "coding_prompt_container.md",
			SectionName:  "Testing",
			ChangeType:   "modification",
			OriginalText: "Run tests.",
			ProposedText: "Run the full test suite and report failures.",
			Rationale:    "tests skipped in 5 sessions",
			Confidence:   9,
			Evidence:     []map[string]interface{}{{"session": "s1", "note": "no tests run"}},
		},
	})
	require.NoError(t, err)

	t.Run("lists by confidence desc", func(t *testing.T) {
		proposals, err := service.ListProposals(ctx, a.ID, "")
		require.NoError(t, err)
		require.Len(t, proposals, 2)
		assert.Equal(t, 9, proposals[0].Confidence)
		assert.Equal(t, 5, proposals[1].Confidence)
	})

	t.Run("filters by status", func(t *testing.T) {
		all, err := service.ListProposals(ctx, a.ID, "")
		require.NoError(t, err)
		require.Len(t, all, 2)

		_, err = service.UpdateProposalStatus(ctx, all[1].ID, "rejected")
		require.NoError(t, err)

		rejected, err := service.ListProposals(ctx, a.ID, "rejected")
		require.NoError(t, err)
		require.Len(t, rejected, 1)
		assert.Equal(t, all[1].ID, rejected[0].ID)

		proposed, err := service.ListProposals(ctx, a.ID, "proposed")
		require.NoError(t, err)
		assert.Len(t, proposed, 1)

		_, err = service.ListProposals(ctx, a.ID, "bogus")
		assert.True(t, IsValidationError(err))

		// Back to proposed so the later subtests see both rows
		_, err = service.UpdateProposalStatus(ctx, all[1].ID, "proposed")
		require.NoError(t, err)
	})

	t.Run("status transitions", func(t *testing.T) {
		proposals, err := service.ListProposals(ctx, a.ID, "")
		require.NoError(t, err)
		p := proposals[0]

		accepted, err := service.UpdateProposalStatus(ctx, p.ID, "accepted")
		require.NoError(t, err)
		assert.Equal(t, promptproposal.StatusAccepted, accepted.Status)

		_, err = service.UpdateProposalStatus(ctx, p.ID, "implemented")
		assert.True(t, IsValidationError(err), "implemented is reachable only via apply")
	})

	t.Run("validates confidence bounds", func(t *testing.T) {
		_, err := service.CreateProposals(ctx, a.ID, []ProposalInput{{
			PromptFile:   "coding_prompt_container.md",
			SectionName:  "X",
			ChangeType:   "addition",
			ProposedText: "text",
			Rationale:    "r",
			Confidence:   11,
		}})
		assert.True(t, IsValidationError(err))
	})
}

func TestPromptVersionService_Activation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPromptVersionService(client.Client)
	ctx := context.Background()

	v1, err := service.CreateVersion(ctx, "coding_prompt_container.md", "v1", "content one", true)
	require.NoError(t, err)
	v2, err := service.CreateVersion(ctx, "coding_prompt_container.md", "v2", "content two", false)
	require.NoError(t, err)

	// Duplicate label for the same file conflicts
	_, err = service.CreateVersion(ctx, "coding_prompt_container.md", "v2", "other", false)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Nothing active yet
	_, err = service.GetActiveVersion(ctx, "coding_prompt_container.md")
	assert.ErrorIs(t, err, ErrNotFound)

	activated, err := service.ActivateVersion(ctx, v1.ID)
	require.NoError(t, err)
	assert.True(t, activated.Active)

	// Activating another version swaps atomically
	_, err = service.ActivateVersion(ctx, v2.ID)
	require.NoError(t, err)

	active, err := service.GetActiveVersion(ctx, "coding_prompt_container.md")
	require.NoError(t, err)
	assert.Equal(t, v2.ID, active.ID)

	old, err := client.PromptVersion.Get(ctx, v1.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)
}

func TestPromptVersionService_ApplyProposal(t *testing.T) {
	client := testdb.NewTestClient(t)
	analyses := NewAnalysisService(client.Client)
	service := NewPromptVersionService(client.Client)
	ctx := context.Background()

	a := newAnalysis(t, analyses)
	proposals, err := analyses.CreateProposals(ctx, a.ID, []ProposalInput{{
		PromptFile:   "initializer_prompt.md",
		SectionName:  "Planning",
		ChangeType:   "addition",
		ProposedText: "Break epics into small tasks.",
		Rationale:    "oversized tasks recur",
		Confidence:   7,
	}})
	require.NoError(t, err)
	p := proposals[0]

	t.Run("requires accepted status", func(t *testing.T) {
		_, _, err := service.ApplyProposal(ctx, p.ID, "reviewer", "full new prompt content")
		assert.ErrorIs(t, err, ErrStateViolation)
	})

	t.Run("creates version and marks implemented", func(t *testing.T) {
		_, err := analyses.UpdateProposalStatus(ctx, p.ID, "accepted")
		require.NoError(t, err)

		applied, version, err := service.ApplyProposal(ctx, p.ID, "reviewer", "full new prompt content")
		require.NoError(t, err)
		assert.Equal(t, promptproposal.StatusImplemented, applied.Status)
		assert.Equal(t, "reviewer", applied.AppliedBy)
		assert.NotNil(t, applied.AppliedAt)
		assert.Equal(t, version.ID, applied.PromptVersionID)
		assert.Equal(t, "initializer_prompt.md", version.PromptFile)
		assert.Equal(t, "full new prompt content", version.Content)
		assert.True(t, version.Active)

		active, err := service.GetActiveVersion(ctx, "initializer_prompt.md")
		require.NoError(t, err)
		assert.Equal(t, version.ID, active.ID)
	})

	t.Run("implemented proposals are frozen", func(t *testing.T) {
		_, err := analyses.UpdateProposalStatus(ctx, p.ID, "rejected")
		assert.ErrorIs(t, err, ErrStateViolation)
	})
}
