package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/epic"
	"github.com/autoforge-dev/autoforge/ent/project"
	"github.com/autoforge-dev/autoforge/ent/task"
	"github.com/autoforge-dev/autoforge/ent/testcase"
	"github.com/autoforge-dev/autoforge/pkg/models"
)

var projectNameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ProjectService manages project lifecycle and settings
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject registers a new project
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !projectNameRe.MatchString(req.Name) {
		return nil, NewValidationError("name", "must match [a-z0-9_-]+")
	}

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)
	if req.SpecContent != "" {
		builder.SetSpecContent(req.SpecContent)
	}
	if req.SpecPath != "" {
		builder.SetSpecPath(req.SpecPath)
	}
	if req.Settings != nil {
		builder.SetSettings(req.Settings)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %q", ErrAlreadyExists, req.Name)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectByName retrieves a project by its unique name
func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}
	return p, nil
}

// ListProjects returns projects ordered by creation time, newest first
func (s *ProjectService) ListProjects(ctx context.Context, filters models.ProjectFilters) (*models.ProjectListResponse, error) {
	query := s.client.Project.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	query = query.Order(ent.Desc(project.FieldCreatedAt))
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	projects, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectListResponse{
		Projects:   projects,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

// DeleteProject removes a project. Epics, tasks, tests, and sessions go
// with it via cascade. A project with a running session cannot be deleted.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.requireNoRunningSession(ctx, projectID); err != nil {
		return err
	}

	err := s.client.Project.DeleteOneID(projectID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// RenameProject changes the project name, subject to the same naming rule
// as creation
func (s *ProjectService) RenameProject(ctx context.Context, projectID, name string) (*ent.Project, error) {
	if !projectNameRe.MatchString(name) {
		return nil, NewValidationError("name", "must match [a-z0-9_-]+")
	}

	p, err := s.client.Project.UpdateOneID(projectID).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to rename project: %w", err)
	}
	return p, nil
}

// ResetProject wipes the work tree and session history so the project can
// be re-initialized. Settings and the spec are kept. Refused while a
// session is running.
func (s *ProjectService) ResetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.requireNoRunningSession(ctx, projectID); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Tasks and tests cascade from epics; sessions cascade their
	// quality checks.
	if _, err := tx.Epic.Delete().Where(epic.ProjectID(projectID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete epics: %w", err)
	}
	if _, err := tx.AgentSession.Delete().Where(agentsession.ProjectID(projectID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete sessions: %w", err)
	}

	p, err := tx.Project.UpdateOneID(projectID).
		ClearCompletedAt().
		ClearMetadata().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// GetSettings returns the project settings document
func (s *ProjectService) GetSettings(ctx context.Context, projectID string) (map[string]any, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Settings == nil {
		return map[string]any{}, nil
	}
	return p.Settings, nil
}

// UpdateSettings replaces the project settings document
func (s *ProjectService) UpdateSettings(ctx context.Context, projectID string, settings map[string]any) (*ent.Project, error) {
	p, err := s.client.Project.UpdateOneID(projectID).
		SetSettings(settings).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return p, nil
}

// MarkEnvConfigured records that the project workspace environment has
// been prepared
func (s *ProjectService) MarkEnvConfigured(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.UpdateOneID(projectID).
		SetEnvConfigured(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark env configured: %w", err)
	}
	return p, nil
}

// CompleteProject stamps completed_at. Idempotent.
func (s *ProjectService) CompleteProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.CompletedAt != nil {
		return p, nil
	}

	updated, err := p.Update().
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete project: %w", err)
	}
	return updated, nil
}

// SetMetadata replaces the project metadata blob (coverage reports and
// similar derived artifacts)
func (s *ProjectService) SetMetadata(ctx context.Context, projectID string, metadata map[string]any) error {
	err := s.client.Project.UpdateOneID(projectID).
		SetMetadata(metadata).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set metadata: %w", err)
	}
	return nil
}

// Progress computes work-tree completion counters for a project
func (s *ProjectService) Progress(ctx context.Context, projectID string) (*models.ProjectProgress, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	epicsTotal, err := s.client.Epic.Query().
		Where(epic.ProjectID(projectID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count epics: %w", err)
	}
	epicsDone, err := s.client.Epic.Query().
		Where(epic.ProjectID(projectID), epic.StatusEQ(epic.StatusCompleted)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed epics: %w", err)
	}

	tasksTotal, err := s.client.Task.Query().
		Where(task.ProjectID(projectID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	tasksDone, err := s.client.Task.Query().
		Where(task.ProjectID(projectID), task.StatusEQ(task.StatusDone)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count done tasks: %w", err)
	}

	testsTotal, err := s.client.TestCase.Query().
		Where(testcase.HasTaskWith(task.ProjectID(projectID))).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tests: %w", err)
	}
	testsPassing, err := s.client.TestCase.Query().
		Where(
			testcase.HasTaskWith(task.ProjectID(projectID)),
			testcase.StatusEQ(testcase.StatusPassing),
		).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count passing tests: %w", err)
	}

	progress := &models.ProjectProgress{
		ProjectID:      projectID,
		EpicsTotal:     epicsTotal,
		EpicsCompleted: epicsDone,
		TasksTotal:     tasksTotal,
		TasksDone:      tasksDone,
		TestsTotal:     testsTotal,
		TestsPassing:   testsPassing,
		AllEpicsDone:   epicsTotal > 0 && epicsDone == epicsTotal,
		CompletedAt:    p.CompletedAt,
	}

	active, err := s.client.AgentSession.Query().
		Where(
			agentsession.ProjectID(projectID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		Only(ctx)
	if err == nil {
		progress.ActiveSessionID = active.ID
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}

	return progress, nil
}

func (s *ProjectService) requireNoRunningSession(ctx context.Context, projectID string) error {
	active, err := s.client.AgentSession.Query().
		Where(
			agentsession.ProjectID(projectID),
			agentsession.StatusEQ(agentsession.StatusRunning),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to query active session: %w", err)
	}
	return &BusyError{
		ProjectID:     projectID,
		SessionID:     active.ID,
		SessionNumber: active.SessionNumber,
		StartedAt:     active.StartedAt,
	}
}
