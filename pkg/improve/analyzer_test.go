package improve

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/services"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func TestBucketRecommendation(t *testing.T) {
	assert.Equal(t, []string{ThemeBrowserVerification},
		BucketRecommendation("Always verify changes with a Playwright screenshot"))
	assert.Contains(t,
		BucketRecommendation("Add tests and commit to git after each task"), ThemeTesting)
	assert.Contains(t,
		BucketRecommendation("Add tests and commit to git after each task"), ThemeGitCommits)
	assert.Equal(t, []string{ThemeGeneral},
		BucketRecommendation("Be more careful"))
}

func TestConfidenceTable(t *testing.T) {
	cases := []struct {
		sessions int
		quality  float64
		claude   bool
		want     int
	}{
		{1, 7, false, 3},
		{2, 7, false, 3},
		{3, 7, false, 5},
		{5, 7, false, 7},
		{6, 7, false, 9},
		{5, 9.2, false, 8},  // high quality bumps up
		{5, 5.0, false, 6},  // low quality bumps down
		{5, 7, true, 8},     // Claude enhancement bumps up
		{6, 9.5, true, 10},  // clamped at ten
		{1, 5.0, false, 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("s%d_q%.1f_c%v", tc.sessions, tc.quality, tc.claude), func(t *testing.T) {
			assert.Equal(t, tc.want, Confidence(tc.sessions, tc.quality, tc.claude))
		})
	}
}

func TestShortestRecommendations(t *testing.T) {
	recs := []string{"a much longer recommendation", "short", "short", "medium one", "tiny"}
	got := shortestRecommendations(recs, 3)
	assert.Equal(t, []string{"tiny", "short", "medium one"}, got)
}

type improveHarness struct {
	analyses *services.AnalysisService
	quality  *services.QualityService
	projects *services.ProjectService
	sessions *services.SessionService
	items    *services.WorkItemService
	client   *ent.Client
}

func newImproveHarness(t *testing.T) *improveHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &improveHarness{
		analyses: services.NewAnalysisService(client.Client),
		quality:  services.NewQualityService(client.Client),
		projects: services.NewProjectService(client.Client),
		sessions: services.NewSessionService(client.Client),
		items:    services.NewWorkItemService(client.Client),
		client:   client.Client,
	}
}

func (h *improveHarness) analyzer(transport llm.AnalysisTransport) *Analyzer {
	return NewAnalyzer(h.analyses, h.quality, h.projects, prompts.NewManager("", nil, nil), transport, "test-model", nil)
}

// seedSession creates one completed coding session with a quick check and
// optionally a deep review carrying recommendations.
func (h *improveHarness) seedSession(t *testing.T, projectID string, rating int, metrics map[string]any, improvements []string) *ent.AgentSession {
	t.Helper()
	ctx := context.Background()

	s, err := h.sessions.AllocateSession(ctx, projectID, "coding", "test-model", nil)
	require.NoError(t, err)
	_, err = h.sessions.MarkRunning(ctx, s.ID)
	require.NoError(t, err)
	s, err = h.sessions.MarkSessionTerminal(ctx, s.ID, "completed", "")
	require.NoError(t, err)

	_, err = h.quality.CreateQualityCheck(ctx, services.QualityCheckInput{
		SessionID: s.ID, Kind: "quick", OverallRating: rating, Metrics: metrics,
	})
	require.NoError(t, err)

	if len(improvements) > 0 {
		_, err = h.quality.CreateQualityCheck(ctx, services.QualityCheckInput{
			SessionID: s.ID, Kind: "deep", OverallRating: rating,
			ReviewText: "review", PromptImprovements: improvements,
		})
		require.NoError(t, err)
	}
	return s
}

func TestAnalyzerFiveSessionScenario(t *testing.T) {
	h := newImproveHarness(t)
	ctx := context.Background()

	p, err := h.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "improve-scenario"})
	require.NoError(t, err)

	// Five completed coding sessions, none with browser verification;
	// every deep review flags the browser gap.
	var seeded []string
	for i := 0; i < 5; i++ {
		s := h.seedSession(t, p.ID, 8,
			map[string]any{"playwright_count": 0, "error_rate": 0.05},
			[]string{
				fmt.Sprintf("Use the browser to verify the result of change %d", i),
				"Take a screenshot after each UI change",
			})
		seeded = append(seeded, s.ID)
	}

	analysis, err := h.analyzer(nil).Run(ctx, models.StartAnalysisRequest{TriggeredBy: "test"})
	require.NoError(t, err)

	assert.Equal(t, "completed", analysis.Status.String())
	assert.Equal(t, 5, analysis.SessionsAnalyzed)
	assert.Equal(t, []string{p.ID}, analysis.ProjectsAnalyzed)
	assert.Greater(t, analysis.QualityImpactEstimate, 0.0)
	assert.LessOrEqual(t, analysis.QualityImpactEstimate, 3.0)
	require.Contains(t, analysis.Patterns, "themes")

	proposals, err := h.analyses.ListProposals(ctx, analysis.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, proposals)

	var browser *ent.PromptProposal
	for _, prop := range proposals {
		if prop.SectionName == "Browser Verification" && prop.ChangeType.String() == "modification" && prop.OriginalText == "" {
			browser = prop
			break
		}
	}
	require.NotNil(t, browser, "expected a browser verification theme proposal")
	assert.GreaterOrEqual(t, browser.Confidence, 7)
	assert.Contains(t, browser.ProposedText, "- ")
	assert.Equal(t, prompts.CodingPromptContainer, browser.PromptFile)

	// Evidence names the sessions that contributed, not just their count.
	require.NotEmpty(t, browser.Evidence)
	raw, ok := browser.Evidence[0]["sessions"].([]any)
	require.True(t, ok, "evidence sessions missing: %v", browser.Evidence[0])
	contributed := make([]string, len(raw))
	for i, v := range raw {
		contributed[i] = v.(string)
	}
	assert.ElementsMatch(t, seeded, contributed)
}

func TestAnalyzerNotEligible(t *testing.T) {
	h := newImproveHarness(t)
	ctx := context.Background()

	p, err := h.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "improve-small"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		h.seedSession(t, p.ID, 8, map[string]any{"playwright_count": 1}, nil)
	}

	analysis, err := h.analyzer(nil).Run(ctx, models.StartAnalysisRequest{})
	require.NoError(t, err)

	assert.Equal(t, "completed", analysis.Status.String())
	assert.Equal(t, 0, analysis.SessionsAnalyzed)
	assert.Contains(t, analysis.Notes, "no projects")

	proposals, err := h.analyses.ListProposals(ctx, analysis.ID, "")
	require.NoError(t, err)
	assert.Empty(t, proposals)
}

type recordingTransport struct {
	response string
	calls    int
}

func (r *recordingTransport) Analyze(_ context.Context, _ llm.AnalysisRequest) (string, error) {
	r.calls++
	return r.response, nil
}

func TestAnalyzerClaudeEnhancement(t *testing.T) {
	h := newImproveHarness(t)
	ctx := context.Background()

	p, err := h.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "improve-claude"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		h.seedSession(t, p.ID, 8,
			map[string]any{"playwright_count": 1, "error_rate": 0.0},
			[]string{"Verify every change in the browser before moving on"})
	}

	transport := &recordingTransport{response: "```json\n" +
		`{"section_name": "Browser Verification", "change_type": "addition", "original_text": "", "proposed_text": "After every UI change, open the page and confirm it renders.", "rationale": "reviews keep flagging this"}` +
		"\n```"}

	analysis, err := h.analyzer(transport).Run(ctx, models.StartAnalysisRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, transport.calls)

	proposals, err := h.analyses.ListProposals(ctx, analysis.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, proposals)

	enhanced := proposals[0] // highest confidence first
	assert.Equal(t, "addition", enhanced.ChangeType.String())
	assert.Contains(t, enhanced.ProposedText, "confirm it renders")
	// Base 7 for five unique sessions, +1 for the Claude elaboration
	assert.Equal(t, 8, enhanced.Confidence)
}

func TestAnalyzerClaudeNullFallsBack(t *testing.T) {
	h := newImproveHarness(t)
	ctx := context.Background()

	p, err := h.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "improve-null"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		h.seedSession(t, p.ID, 8,
			map[string]any{"playwright_count": 1, "error_rate": 0.0},
			[]string{"Verify in the browser"})
	}

	transport := &recordingTransport{response: "null"}
	analysis, err := h.analyzer(transport).Run(ctx, models.StartAnalysisRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, transport.calls)

	proposals, err := h.analyses.ListProposals(ctx, analysis.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, proposals)
	assert.Contains(t, proposals[0].ProposedText, "- Verify in the browser")
	// No Claude bump on the fallback
	assert.Equal(t, 7, proposals[0].Confidence)
}

func TestAnalyzerSandboxFilter(t *testing.T) {
	h := newImproveHarness(t)
	ctx := context.Background()

	p, err := h.projects.CreateProject(ctx, models.CreateProjectRequest{
		Name:     "improve-filtered",
		Settings: map[string]any{"sandbox_type": "local"},
	})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		h.seedSession(t, p.ID, 8, map[string]any{"playwright_count": 1}, nil)
	}

	analysis, err := h.analyzer(nil).Run(ctx, models.StartAnalysisRequest{SandboxType: "container"})
	require.NoError(t, err)
	assert.Equal(t, 0, analysis.SessionsAnalyzed)

	analysis, err = h.analyzer(nil).Run(ctx, models.StartAnalysisRequest{SandboxType: "local"})
	require.NoError(t, err)
	assert.Equal(t, 5, analysis.SessionsAnalyzed)
}
