package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
)

// QualityService stores quality check results
type QualityService struct {
	client *ent.Client
}

// NewQualityService creates a new QualityService
func NewQualityService(client *ent.Client) *QualityService {
	return &QualityService{client: client}
}

// QualityCheckInput carries the fields of a completed check
type QualityCheckInput struct {
	SessionID          string
	Kind               string
	Status             string
	OverallRating      int
	Metrics            map[string]interface{}
	CriticalIssues     []string
	Warnings           []string
	ReviewText         string
	PromptImprovements []string
}

// CreateQualityCheck records a check result. One check per (session, kind);
// a duplicate returns ErrAlreadyExists.
func (s *QualityService) CreateQualityCheck(ctx context.Context, input QualityCheckInput) (*ent.QualityCheck, error) {
	switch input.Kind {
	case qualitycheck.KindQuick.String(), qualitycheck.KindDeep.String():
	default:
		return nil, NewValidationError("kind", fmt.Sprintf("unknown check kind %q", input.Kind))
	}
	if input.OverallRating < 1 || input.OverallRating > 10 {
		return nil, NewValidationError("overall_rating", "must be between 1 and 10")
	}

	status := input.Status
	if status == "" {
		status = qualitycheck.StatusCompleted.String()
	}

	builder := s.client.QualityCheck.Create().
		SetID(uuid.New().String()).
		SetSessionID(input.SessionID).
		SetKind(qualitycheck.Kind(input.Kind)).
		SetStatus(qualitycheck.Status(status)).
		SetOverallRating(input.OverallRating)
	if input.Metrics != nil {
		builder.SetMetrics(input.Metrics)
	}
	if len(input.CriticalIssues) > 0 {
		builder.SetCriticalIssues(input.CriticalIssues)
	}
	if len(input.Warnings) > 0 {
		builder.SetWarnings(input.Warnings)
	}
	if input.ReviewText != "" {
		builder.SetReviewText(input.ReviewText)
	}
	if len(input.PromptImprovements) > 0 {
		builder.SetPromptImprovements(input.PromptImprovements)
	}

	check, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %s check for session %s", ErrAlreadyExists, input.Kind, input.SessionID)
		}
		return nil, fmt.Errorf("failed to create quality check: %w", err)
	}
	return check, nil
}

// GetChecksForSession returns all checks recorded for a session
func (s *QualityService) GetChecksForSession(ctx context.Context, sessionID string) ([]*ent.QualityCheck, error) {
	checks, err := s.client.QualityCheck.Query().
		Where(qualitycheck.SessionID(sessionID)).
		Order(ent.Asc(qualitycheck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quality checks: %w", err)
	}
	return checks, nil
}

// ListChecksForProject returns checks for a project's sessions, newest
// first
func (s *QualityService) ListChecksForProject(ctx context.Context, projectID string) ([]*ent.QualityCheck, error) {
	checks, err := s.client.QualityCheck.Query().
		Where(qualitycheck.HasSessionWith(agentsession.ProjectID(projectID))).
		Order(ent.Desc(qualitycheck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project quality checks: %w", err)
	}
	return checks, nil
}

// LastDeepReviewNumber returns the session number of the most recent deep
// review for a project, or -1 when none exists.
func (s *QualityService) LastDeepReviewNumber(ctx context.Context, projectID string) (int, error) {
	check, err := s.client.QualityCheck.Query().
		Where(
			qualitycheck.KindEQ(qualitycheck.KindDeep),
			qualitycheck.HasSessionWith(agentsession.ProjectID(projectID)),
		).
		WithSession().
		Order(ent.Desc(qualitycheck.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return -1, nil
		}
		return -1, fmt.Errorf("failed to query last deep review: %w", err)
	}
	if check.Edges.Session == nil {
		return -1, nil
	}
	return check.Edges.Session.SessionNumber, nil
}

// RecentCompletedChecks returns quick checks for completed coding sessions
// within the window, for the improvement analyzer.
func (s *QualityService) RecentCompletedChecks(ctx context.Context, since, until time.Time) ([]*ent.QualityCheck, error) {
	checks, err := s.client.QualityCheck.Query().
		Where(
			qualitycheck.KindEQ(qualitycheck.KindQuick),
			qualitycheck.CreatedAtGTE(since),
			qualitycheck.CreatedAtLTE(until),
			qualitycheck.HasSessionWith(
				agentsession.TypeEQ(agentsession.TypeCoding),
				agentsession.StatusEQ(agentsession.StatusCompleted),
			),
		).
		WithSession().
		Order(ent.Asc(qualitycheck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent checks: %w", err)
	}
	return checks, nil
}

// RecentDeepReviews returns completed deep reviews in a window that carry
// at least one prompt improvement, with their sessions loaded.
func (s *QualityService) RecentDeepReviews(ctx context.Context, since, until time.Time) ([]*ent.QualityCheck, error) {
	checks, err := s.client.QualityCheck.Query().
		Where(
			qualitycheck.KindEQ(qualitycheck.KindDeep),
			qualitycheck.StatusEQ(qualitycheck.StatusCompleted),
			qualitycheck.CreatedAtGTE(since),
			qualitycheck.CreatedAtLTE(until),
		).
		WithSession().
		Order(ent.Asc(qualitycheck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deep reviews: %w", err)
	}

	withImprovements := checks[:0]
	for _, c := range checks {
		if len(c.PromptImprovements) > 0 {
			withImprovements = append(withImprovements, c)
		}
	}
	return withImprovements, nil
}
