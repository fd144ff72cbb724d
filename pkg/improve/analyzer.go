package improve

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/services"
)

const (
	eligibilityMinSessions = 5
	eligibilityWindowDays  = 7

	minThemeFrequency       = 2
	claudeBudget            = 3
	claudeMinUniqueSessions = 3

	impactCap = 3.0

	// Threshold-issue boundaries over the window's session population.
	browserMissingThreshold = 0.005
	errorRateThreshold      = 0.15
	lowQualityThreshold     = 0.10
	lowQualityRating        = 6
)

var severityWeights = map[string]float64{
	"critical": 2.0,
	"moderate": 1.0,
	"low":      0.5,
}

// Analyzer runs one cross-project prompt-improvement pass.
type Analyzer struct {
	analyses  *services.AnalysisService
	quality   *services.QualityService
	projects  *services.ProjectService
	prompts   *prompts.Manager
	transport llm.AnalysisTransport
	model     string
	logger    *slog.Logger
}

// NewAnalyzer creates an analyzer. transport may be nil, which disables
// Claude-enhanced proposals.
func NewAnalyzer(analyses *services.AnalysisService, quality *services.QualityService, projects *services.ProjectService, promptMgr *prompts.Manager, transport llm.AnalysisTransport, model string, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		analyses:  analyses,
		quality:   quality,
		projects:  projects,
		prompts:   promptMgr,
		transport: transport,
		model:     model,
		logger:    logger,
	}
}

// themeStats accumulates one theme's evidence during aggregation.
type themeStats struct {
	frequency       int
	sessions        map[string]struct{}
	qualitySum      float64
	qualityCount    int
	recommendations []string
}

// Run executes one analysis over the trailing window and stores its
// proposals. Failures mark the analysis record failed and are returned.
func (a *Analyzer) Run(ctx context.Context, req models.StartAnalysisRequest) (*ent.PromptAnalysis, error) {
	until := time.Now()
	if req.Until != nil {
		until = *req.Until
	}
	since := until.AddDate(0, 0, -eligibilityWindowDays)
	if req.Since != nil {
		since = *req.Since
	}

	analysis, err := a.analyses.CreateAnalysis(ctx, req.SandboxType, req.TriggeredBy, since, until)
	if err != nil {
		return nil, err
	}

	result, runErr := a.analyze(ctx, analysis, since, until)
	if runErr != nil {
		if _, failErr := a.analyses.FailAnalysis(ctx, analysis.ID, runErr.Error()); failErr != nil {
			a.logger.Error("Failed to mark analysis failed", "analysis_id", analysis.ID, "error", failErr)
		}
		return nil, runErr
	}

	return a.analyses.CompleteAnalysis(ctx, analysis.ID, *result)
}

func (a *Analyzer) analyze(ctx context.Context, analysis *ent.PromptAnalysis, since, until time.Time) (*services.AnalysisResult, error) {
	quickChecks, err := a.quality.RecentCompletedChecks(ctx, since, until)
	if err != nil {
		return nil, err
	}

	eligible, err := a.eligibleProjects(ctx, quickChecks, analysis.SandboxType)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return &services.AnalysisResult{
			Notes: fmt.Sprintf("no projects with %d+ completed coding sessions in the window", eligibilityMinSessions),
		}, nil
	}

	// Only sessions of eligible projects contribute to aggregation.
	var windowChecks []*ent.QualityCheck
	quickRatings := make(map[string]int)
	for _, c := range quickChecks {
		if c.Edges.Session == nil {
			continue
		}
		if _, ok := eligible[c.Edges.Session.ProjectID]; !ok {
			continue
		}
		windowChecks = append(windowChecks, c)
		quickRatings[c.SessionID] = c.OverallRating
	}

	deepReviews, err := a.quality.RecentDeepReviews(ctx, since, until)
	if err != nil {
		return nil, err
	}

	themes := aggregateThemes(deepReviews, eligible, quickRatings)
	patterns := patternsFor(themes)

	proposals := a.themeProposals(ctx, themes)
	issues := thresholdIssues(windowChecks)
	proposals = append(proposals, issueProposals(issues)...)

	if len(proposals) > 0 {
		if _, err := a.analyses.CreateProposals(ctx, analysis.ID, proposals); err != nil {
			return nil, err
		}
	}

	projectIDs := make([]string, 0, len(eligible))
	for id := range eligible {
		projectIDs = append(projectIDs, id)
	}
	sort.Strings(projectIDs)

	issueBlobs := make([]any, 0, len(issues))
	impact := 0.0
	for _, issue := range issues {
		impact += issue.Value * severityWeights[issue.Severity]
		issueBlobs = append(issueBlobs, map[string]any{
			"kind": issue.Kind, "severity": issue.Severity,
			"value": issue.Value, "detail": issue.Detail,
		})
	}
	if impact > impactCap {
		impact = impactCap
	}

	return &services.AnalysisResult{
		ProjectsAnalyzed:      projectIDs,
		SessionsAnalyzed:      len(windowChecks),
		Patterns:              map[string]any{"themes": patterns, "threshold_issues": issueBlobs},
		QualityImpactEstimate: impact,
	}, nil
}

// eligibleProjects returns projects with enough completed coding sessions
// in the window, honoring the sandbox filter via project settings.
func (a *Analyzer) eligibleProjects(ctx context.Context, checks []*ent.QualityCheck, sandboxType string) (map[string]struct{}, error) {
	perProject := make(map[string]int)
	for _, c := range checks {
		if c.Edges.Session != nil {
			perProject[c.Edges.Session.ProjectID]++
		}
	}

	eligible := make(map[string]struct{})
	for projectID, n := range perProject {
		if n < eligibilityMinSessions {
			continue
		}
		if sandboxType != "" && sandboxType != "all" {
			settings, err := a.projects.GetSettings(ctx, projectID)
			if err != nil {
				return nil, err
			}
			if kind, _ := settings["sandbox_type"].(string); kind != sandboxType {
				continue
			}
		}
		eligible[projectID] = struct{}{}
	}
	return eligible, nil
}

func aggregateThemes(deepReviews []*ent.QualityCheck, eligible map[string]struct{}, quickRatings map[string]int) map[string]*themeStats {
	themes := make(map[string]*themeStats)
	for _, review := range deepReviews {
		session := review.Edges.Session
		if session == nil {
			continue
		}
		if _, ok := eligible[session.ProjectID]; !ok {
			continue
		}

		quality := float64(review.OverallRating)
		if quick, ok := quickRatings[review.SessionID]; ok {
			quality = float64(quick)
		}

		for _, rec := range review.PromptImprovements {
			for _, theme := range BucketRecommendation(rec) {
				stats := themes[theme]
				if stats == nil {
					stats = &themeStats{sessions: make(map[string]struct{})}
					themes[theme] = stats
				}
				stats.frequency++
				stats.recommendations = append(stats.recommendations, rec)
				if _, seen := stats.sessions[review.SessionID]; !seen {
					stats.sessions[review.SessionID] = struct{}{}
					stats.qualitySum += quality
					stats.qualityCount++
				}
			}
		}
	}
	return themes
}

func (s *themeStats) avgQuality() float64 {
	if s.qualityCount == 0 {
		return 0
	}
	return s.qualitySum / float64(s.qualityCount)
}

// evidenceSessionCap bounds the session ids embedded in proposal evidence.
const evidenceSessionCap = 5

// sessionIDs returns up to evidenceSessionCap contributing session ids,
// sorted for stable output.
func (s *themeStats) sessionIDs() []string {
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > evidenceSessionCap {
		ids = ids[:evidenceSessionCap]
	}
	return ids
}

func patternsFor(themes map[string]*themeStats) []any {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	blobs := make([]any, 0, len(names))
	for _, name := range names {
		stats := themes[name]
		pattern := models.ThemePattern{
			Theme:          name,
			Frequency:      stats.frequency,
			UniqueSessions: len(stats.sessions),
			AvgQuality:     stats.avgQuality(),
			Examples:       shortestRecommendations(stats.recommendations, 3),
		}
		blobs = append(blobs, map[string]any{
			"theme": pattern.Theme, "frequency": pattern.Frequency,
			"unique_sessions": pattern.UniqueSessions,
			"avg_quality":     pattern.AvgQuality, "examples": pattern.Examples,
		})
	}
	return blobs
}

// themeProposals emits one proposal per theme above the frequency floor.
// The strongest themes get a Claude elaboration within the call budget.
func (a *Analyzer) themeProposals(ctx context.Context, themes map[string]*themeStats) []services.ProposalInput {
	names := make([]string, 0, len(themes))
	for name, stats := range themes {
		if stats.frequency >= minThemeFrequency {
			names = append(names, name)
		}
	}
	// Strongest evidence first; alphabetical keeps ties stable.
	sort.Slice(names, func(i, j int) bool {
		left, right := themes[names[i]], themes[names[j]]
		if len(left.sessions) != len(right.sessions) {
			return len(left.sessions) > len(right.sessions)
		}
		return names[i] < names[j]
	})

	callsLeft := claudeBudget
	proposals := make([]services.ProposalInput, 0, len(names))
	for _, name := range names {
		stats := themes[name]

		var proposal *services.ProposalInput
		enhanced := false
		if callsLeft > 0 && len(stats.sessions) >= claudeMinUniqueSessions && a.transport != nil {
			callsLeft--
			if p, err := a.enhanceProposal(ctx, name, stats); err != nil {
				a.logger.Warn("Claude proposal enhancement failed", "theme", name, "error", err)
			} else if p != nil {
				proposal = p
				enhanced = true
			}
		}
		if proposal == nil {
			proposal = fallbackProposal(name, stats)
		}

		proposal.Confidence = Confidence(len(stats.sessions), stats.avgQuality(), enhanced)
		proposal.Evidence = []map[string]any{{
			"theme":           name,
			"frequency":       stats.frequency,
			"unique_sessions": len(stats.sessions),
			"sessions":        stats.sessionIDs(),
			"avg_quality":     stats.avgQuality(),
			"examples":        shortestRecommendations(stats.recommendations, 3),
		}}
		proposals = append(proposals, *proposal)
	}
	return proposals
}

// fallbackProposal is the deterministic proposal: the theme's three
// shortest recommendations as bullets.
func fallbackProposal(theme string, stats *themeStats) *services.ProposalInput {
	bullets := shortestRecommendations(stats.recommendations, 3)
	var b strings.Builder
	for _, rec := range bullets {
		b.WriteString("- ")
		b.WriteString(rec)
		b.WriteByte('\n')
	}
	return &services.ProposalInput{
		PromptFile:   prompts.CodingPromptContainer,
		SectionName:  SectionFor(theme),
		ChangeType:   "modification",
		ProposedText: b.String(),
		Rationale:    fmt.Sprintf("%d recommendations across %d sessions converge on %s", stats.frequency, len(stats.sessions), theme),
	}
}

// enhancement is the strict JSON shape Claude must return; a null reply
// means the prompt already covers the theme.
type enhancement struct {
	SectionName  string `json:"section_name"`
	ChangeType   string `json:"change_type"`
	OriginalText string `json:"original_text"`
	ProposedText string `json:"proposed_text"`
	Rationale    string `json:"rationale"`
}

func (a *Analyzer) enhanceProposal(ctx context.Context, theme string, stats *themeStats) (*services.ProposalInput, error) {
	current, err := a.prompts.Resolve(ctx, prompts.CodingPromptContainer)
	if err != nil {
		return nil, err
	}

	var recs strings.Builder
	for _, rec := range shortestRecommendations(stats.recommendations, 5) {
		recs.WriteString("- ")
		recs.WriteString(rec)
		recs.WriteByte('\n')
	}

	prompt := fmt.Sprintf(`The coding-agent system prompt below has a recurring weakness around %q (%d mentions across %d sessions):

%sCurrent prompt:
---
%s
---

Propose one precise change. Respond with a single JSON object {"section_name": "...", "change_type": "addition|modification|deletion", "original_text": "...", "proposed_text": "...", "rationale": "..."} or the literal null if the prompt already addresses this.`,
		theme, stats.frequency, len(stats.sessions), recs.String(), current)

	text, err := a.transport.Analyze(ctx, llm.AnalysisRequest{
		Model:  a.model,
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	cleaned := stripFences(text)
	if cleaned == "" || cleaned == "null" {
		return nil, nil
	}
	var parsed enhancement
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("invalid enhancement JSON: %w", err)
	}
	if parsed.ProposedText == "" {
		return nil, fmt.Errorf("enhancement missing proposed_text")
	}
	switch parsed.ChangeType {
	case "addition", "modification", "deletion":
	default:
		parsed.ChangeType = "modification"
	}

	return &services.ProposalInput{
		PromptFile:   prompts.CodingPromptContainer,
		SectionName:  parsed.SectionName,
		ChangeType:   parsed.ChangeType,
		OriginalText: parsed.OriginalText,
		ProposedText: parsed.ProposedText,
		Rationale:    parsed.Rationale,
	}, nil
}

// Confidence maps evidence strength to 1..10.
func Confidence(uniqueSessions int, avgQuality float64, claudeEnhanced bool) int {
	var c int
	switch {
	case uniqueSessions <= 2:
		c = 3
	case uniqueSessions <= 3:
		c = 5
	case uniqueSessions <= 5:
		c = 7
	default:
		c = 9
	}
	if avgQuality >= 9 {
		c++
	} else if avgQuality > 0 && avgQuality < 6 {
		c--
	}
	if claudeEnhanced {
		c++
	}
	if c < 1 {
		c = 1
	}
	if c > 10 {
		c = 10
	}
	return c
}

// thresholdIssues derives metric-level findings from the window's quick
// checks.
func thresholdIssues(checks []*ent.QualityCheck) []models.ThresholdIssue {
	total := len(checks)
	if total == 0 {
		return nil
	}

	var noBrowser, lowQuality int
	var errorRateSum float64
	for _, c := range checks {
		if playwright, ok := c.Metrics["playwright_count"]; ok && numeric(playwright) == 0 {
			noBrowser++
		}
		if rate, ok := c.Metrics["error_rate"]; ok {
			errorRateSum += numeric(rate)
		}
		if c.OverallRating < lowQualityRating {
			lowQuality++
		}
	}

	var issues []models.ThresholdIssue
	if rate := float64(noBrowser) / float64(total); rate > browserMissingThreshold {
		issues = append(issues, models.ThresholdIssue{
			Kind:     "missing_browser_verification",
			Severity: "critical",
			Value:    rate,
			Detail:   fmt.Sprintf("%d of %d sessions performed no browser verification", noBrowser, total),
		})
	}
	if avg := errorRateSum / float64(total); avg > errorRateThreshold {
		issues = append(issues, models.ThresholdIssue{
			Kind:     "high_tool_error_rate",
			Severity: "moderate",
			Value:    avg,
			Detail:   fmt.Sprintf("average tool error rate %.0f%% across the window", avg*100),
		})
	}
	if rate := float64(lowQuality) / float64(total); rate > lowQualityThreshold {
		issues = append(issues, models.ThresholdIssue{
			Kind:     "frequent_low_quality",
			Severity: "moderate",
			Value:    rate,
			Detail:   fmt.Sprintf("%d of %d sessions rated below %d", lowQuality, total, lowQualityRating),
		})
	}
	return issues
}

// issueSections maps threshold issues to prompt sections.
var issueSections = map[string]string{
	"missing_browser_verification": "Browser Verification",
	"high_tool_error_rate":         "Error Handling",
	"frequent_low_quality":         "General Guidance",
}

func issueProposals(issues []models.ThresholdIssue) []services.ProposalInput {
	proposals := make([]services.ProposalInput, 0, len(issues))
	for _, issue := range issues {
		proposals = append(proposals, services.ProposalInput{
			PromptFile:   prompts.CodingPromptContainer,
			SectionName:  issueSections[issue.Kind],
			ChangeType:   "modification",
			ProposedText: fmt.Sprintf("Strengthen guidance: %s.", issue.Detail),
			Rationale:    fmt.Sprintf("%s severity threshold exceeded (%.1f%%)", issue.Severity, issue.Value*100),
			Confidence:   Confidence(2, 0, false),
			Evidence: []map[string]any{{
				"kind": issue.Kind, "severity": issue.Severity,
				"value": issue.Value, "detail": issue.Detail,
			}},
		})
	}
	return proposals
}

// shortestRecommendations returns up to n distinct recommendations,
// shortest first.
func shortestRecommendations(recs []string, n int) []string {
	seen := make(map[string]struct{}, len(recs))
	unique := make([]string, 0, len(recs))
	for _, rec := range recs {
		if _, dup := seen[rec]; dup {
			continue
		}
		seen[rec] = struct{}{}
		unique = append(unique, rec)
	}
	sort.Slice(unique, func(i, j int) bool {
		if len(unique[i]) != len(unique[j]) {
			return len(unique[i]) < len(unique[j])
		}
		return unique[i] < unique[j]
	})
	if len(unique) > n {
		unique = unique[:n]
	}
	return unique
}

func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if i := strings.LastIndex(cleaned, "```"); i >= 0 {
			cleaned = cleaned[:i]
		}
	}
	return strings.TrimSpace(cleaned)
}

func numeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}
