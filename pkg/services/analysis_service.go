package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
)

// AnalysisService stores prompt-improvement analyses and their proposals
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// CreateAnalysis records a new running analysis
func (s *AnalysisService) CreateAnalysis(ctx context.Context, sandboxType, triggeredBy string, since, until time.Time) (*ent.PromptAnalysis, error) {
	if sandboxType == "" {
		sandboxType = "all"
	}
	if triggeredBy == "" {
		triggeredBy = "manual"
	}

	a, err := s.client.PromptAnalysis.Create().
		SetID(uuid.New().String()).
		SetSandboxType(sandboxType).
		SetTriggeredBy(triggeredBy).
		SetStatus(promptanalysis.StatusRunning).
		SetDateRangeStart(since).
		SetDateRangeEnd(until).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return a, nil
}

// AnalysisResult carries the outcome of a completed analysis
type AnalysisResult struct {
	ProjectsAnalyzed      []string
	SessionsAnalyzed      int
	Patterns              map[string]interface{}
	QualityImpactEstimate float64
	Notes                 string
}

// CompleteAnalysis finalizes an analysis with its findings
func (s *AnalysisService) CompleteAnalysis(ctx context.Context, analysisID string, result AnalysisResult) (*ent.PromptAnalysis, error) {
	builder := s.client.PromptAnalysis.UpdateOneID(analysisID).
		SetStatus(promptanalysis.StatusCompleted).
		SetSessionsAnalyzed(result.SessionsAnalyzed).
		SetQualityImpactEstimate(result.QualityImpactEstimate).
		SetCompletedAt(time.Now())
	if len(result.ProjectsAnalyzed) > 0 {
		builder.SetProjectsAnalyzed(result.ProjectsAnalyzed)
	}
	if result.Patterns != nil {
		builder.SetPatterns(result.Patterns)
	}
	if result.Notes != "" {
		builder.SetNotes(result.Notes)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete analysis: %w", err)
	}
	return a, nil
}

// FailAnalysis marks an analysis failed, keeping the failure reason in
// notes
func (s *AnalysisService) FailAnalysis(ctx context.Context, analysisID, reason string) (*ent.PromptAnalysis, error) {
	a, err := s.client.PromptAnalysis.UpdateOneID(analysisID).
		SetStatus(promptanalysis.StatusFailed).
		SetNotes(reason).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark analysis failed: %w", err)
	}
	return a, nil
}

// GetAnalysis retrieves an analysis by ID
func (s *AnalysisService) GetAnalysis(ctx context.Context, analysisID string) (*ent.PromptAnalysis, error) {
	a, err := s.client.PromptAnalysis.Get(ctx, analysisID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses returns analyses, newest first
func (s *AnalysisService) ListAnalyses(ctx context.Context) ([]*ent.PromptAnalysis, error) {
	analyses, err := s.client.PromptAnalysis.Query().
		Order(ent.Desc(promptanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// DeleteAnalysis removes an analysis and its proposals via cascade
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, analysisID string) error {
	err := s.client.PromptAnalysis.DeleteOneID(analysisID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

// ProposalInput carries one change proposal produced by an analysis
type ProposalInput struct {
	PromptFile   string
	SectionName  string
	ChangeType   string
	OriginalText string
	ProposedText string
	Rationale    string
	Evidence     []map[string]interface{}
	Confidence   int
}

// CreateProposals stores a batch of proposals for an analysis
func (s *AnalysisService) CreateProposals(ctx context.Context, analysisID string, inputs []ProposalInput) ([]*ent.PromptProposal, error) {
	proposals := make([]*ent.PromptProposal, 0, len(inputs))
	for _, input := range inputs {
		if input.ProposedText == "" {
			return nil, NewValidationError("proposed_text", "required")
		}
		if input.Confidence < 1 || input.Confidence > 10 {
			return nil, NewValidationError("confidence", "must be between 1 and 10")
		}

		builder := s.client.PromptProposal.Create().
			SetID(uuid.New().String()).
			SetAnalysisID(analysisID).
			SetPromptFile(input.PromptFile).
			SetSectionName(input.SectionName).
			SetChangeType(promptproposal.ChangeType(input.ChangeType)).
			SetProposedText(input.ProposedText).
			SetRationale(input.Rationale).
			SetConfidence(input.Confidence)
		if input.OriginalText != "" {
			builder.SetOriginalText(input.OriginalText)
		}
		if len(input.Evidence) > 0 {
			builder.SetEvidence(input.Evidence)
		}

		p, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

// ListProposals returns an analysis's proposals ordered by confidence,
// highest first. An empty status returns all of them.
func (s *AnalysisService) ListProposals(ctx context.Context, analysisID, status string) ([]*ent.PromptProposal, error) {
	query := s.client.PromptProposal.Query().
		Where(promptproposal.AnalysisID(analysisID))
	if status != "" {
		switch status {
		case promptproposal.StatusProposed.String(),
			promptproposal.StatusAccepted.String(),
			promptproposal.StatusRejected.String(),
			promptproposal.StatusImplemented.String():
		default:
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
		}
		query = query.Where(promptproposal.StatusEQ(promptproposal.Status(status)))
	}

	proposals, err := query.
		Order(ent.Desc(promptproposal.FieldConfidence), ent.Asc(promptproposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// GetProposal retrieves a proposal by ID
func (s *AnalysisService) GetProposal(ctx context.Context, proposalID string) (*ent.PromptProposal, error) {
	p, err := s.client.PromptProposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

// UpdateProposalStatus transitions a proposal between review states.
// Implemented proposals are immutable.
func (s *AnalysisService) UpdateProposalStatus(ctx context.Context, proposalID, status string) (*ent.PromptProposal, error) {
	switch status {
	case promptproposal.StatusProposed.String(),
		promptproposal.StatusAccepted.String(),
		promptproposal.StatusRejected.String():
	default:
		return nil, NewValidationError("status", fmt.Sprintf("cannot transition to %q", status))
	}

	p, err := s.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.Status == promptproposal.StatusImplemented {
		return nil, fmt.Errorf("%w: proposal already implemented", ErrStateViolation)
	}

	updated, err := p.Update().
		SetStatus(promptproposal.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal status: %w", err)
	}
	return updated, nil
}
