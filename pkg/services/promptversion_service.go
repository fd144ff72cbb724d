package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
)

// PromptVersionService manages versioned prompt content
type PromptVersionService struct {
	client *ent.Client
}

// NewPromptVersionService creates a new PromptVersionService
func NewPromptVersionService(client *ent.Client) *PromptVersionService {
	return &PromptVersionService{client: client}
}

// CreateVersion stores a new version of a prompt file
func (s *PromptVersionService) CreateVersion(ctx context.Context, promptFile, label, content string, isDefault bool) (*ent.PromptVersion, error) {
	if promptFile == "" {
		return nil, NewValidationError("prompt_file", "required")
	}
	if label == "" {
		return nil, NewValidationError("version_label", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	v, err := s.client.PromptVersion.Create().
		SetID(uuid.New().String()).
		SetPromptFile(promptFile).
		SetVersionLabel(label).
		SetContent(content).
		SetIsDefault(isDefault).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: version %q of %s", ErrAlreadyExists, label, promptFile)
		}
		return nil, fmt.Errorf("failed to create prompt version: %w", err)
	}
	return v, nil
}

// ListVersions returns all versions, newest first, optionally filtered by
// prompt file
func (s *PromptVersionService) ListVersions(ctx context.Context, promptFile string) ([]*ent.PromptVersion, error) {
	query := s.client.PromptVersion.Query()
	if promptFile != "" {
		query = query.Where(promptversion.PromptFile(promptFile))
	}

	versions, err := query.
		Order(ent.Desc(promptversion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt versions: %w", err)
	}
	return versions, nil
}

// GetActiveVersion returns the active version for a prompt file, or
// ErrNotFound when the embedded default is in effect.
func (s *PromptVersionService) GetActiveVersion(ctx context.Context, promptFile string) (*ent.PromptVersion, error) {
	v, err := s.client.PromptVersion.Query().
		Where(
			promptversion.PromptFile(promptFile),
			promptversion.Active(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active version: %w", err)
	}
	return v, nil
}

// ActivateVersion makes a version the active one for its prompt file,
// deactivating any other in the same transaction. The partial unique
// index enforces the single-active invariant against races.
func (s *PromptVersionService) ActivateVersion(ctx context.Context, versionID string) (*ent.PromptVersion, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	v, err := tx.PromptVersion.Get(ctx, versionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	_, err = tx.PromptVersion.Update().
		Where(
			promptversion.PromptFile(v.PromptFile),
			promptversion.Active(true),
			promptversion.IDNEQ(versionID),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate current version: %w", err)
	}

	v, err = tx.PromptVersion.UpdateOneID(versionID).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return v, nil
}

// ApplyProposal creates a new active prompt version from an accepted
// proposal and marks the proposal implemented, in one transaction. The
// previously active version is deactivated so the change takes effect on
// the next prompt resolution.
func (s *PromptVersionService) ApplyProposal(ctx context.Context, proposalID, appliedBy, content string) (*ent.PromptProposal, *ent.PromptVersion, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := tx.PromptProposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	if p.Status != promptproposal.StatusAccepted {
		return nil, nil, fmt.Errorf("%w: proposal is %s, not accepted", ErrStateViolation, p.Status)
	}

	now := time.Now()
	label := fmt.Sprintf("proposal-%s-%s", shortID(proposalID), now.Format("20060102-150405"))

	_, err = tx.PromptVersion.Update().
		Where(
			promptversion.PromptFile(p.PromptFile),
			promptversion.Active(true),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to deactivate current version: %w", err)
	}

	v, err := tx.PromptVersion.Create().
		SetID(uuid.New().String()).
		SetPromptFile(p.PromptFile).
		SetVersionLabel(label).
		SetContent(content).
		SetActive(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, fmt.Errorf("%w: version %q of %s", ErrAlreadyExists, label, p.PromptFile)
		}
		return nil, nil, fmt.Errorf("failed to create version: %w", err)
	}

	p, err = tx.PromptProposal.UpdateOneID(proposalID).
		SetStatus(promptproposal.StatusImplemented).
		SetAppliedAt(now).
		SetAppliedBy(appliedBy).
		SetPromptVersionID(v.ID).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mark proposal implemented: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, v, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
