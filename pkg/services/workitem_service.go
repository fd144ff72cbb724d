package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/ent/epic"
	"github.com/autoforge-dev/autoforge/ent/task"
	"github.com/autoforge-dev/autoforge/ent/testcase"
	"github.com/autoforge-dev/autoforge/pkg/models"
)

// WorkItemService manages the epic/task/test work tree
type WorkItemService struct {
	client *ent.Client
}

// NewWorkItemService creates a new WorkItemService
func NewWorkItemService(client *ent.Client) *WorkItemService {
	return &WorkItemService{client: client}
}

// CreateEpic adds an epic to a project
func (s *WorkItemService) CreateEpic(ctx context.Context, projectID string, req models.CreateEpicRequest) (*ent.Epic, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	e, err := s.client.Epic.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPriority(req.Priority).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to create epic: %w", err)
	}
	return e, nil
}

// ListEpics returns a project's epics ordered by priority then creation
func (s *WorkItemService) ListEpics(ctx context.Context, projectID string) ([]*ent.Epic, error) {
	epics, err := s.client.Epic.Query().
		Where(epic.ProjectID(projectID)).
		Order(ent.Asc(epic.FieldPriority), ent.Asc(epic.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}
	return epics, nil
}

// UpdateEpicStatus transitions an epic's status
func (s *WorkItemService) UpdateEpicStatus(ctx context.Context, epicID, status string) (*ent.Epic, error) {
	switch status {
	case epic.StatusPending.String(), epic.StatusInProgress.String(), epic.StatusCompleted.String():
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unknown epic status %q", status))
	}

	e, err := s.client.Epic.UpdateOneID(epicID).
		SetStatus(epic.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update epic status: %w", err)
	}
	return e, nil
}

// CompleteEpicIfDone marks the epic completed when every task under it is
// done. Returns the epic and whether it transitioned.
func (s *WorkItemService) CompleteEpicIfDone(ctx context.Context, epicID string) (*ent.Epic, bool, error) {
	e, err := s.client.Epic.Get(ctx, epicID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get epic: %w", err)
	}
	if e.Status == epic.StatusCompleted {
		return e, false, nil
	}

	remaining, err := s.client.Task.Query().
		Where(task.EpicID(epicID), task.StatusNEQ(task.StatusDone)).
		Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count open tasks: %w", err)
	}
	if remaining > 0 {
		return e, false, nil
	}

	updated, err := e.Update().
		SetStatus(epic.StatusCompleted).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to complete epic: %w", err)
	}
	return updated, true, nil
}

// CreateTask adds a task to an epic, denormalizing the project id for
// cheap progress queries
func (s *WorkItemService) CreateTask(ctx context.Context, epicID string, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	e, err := s.client.Epic.Get(ctx, epicID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get epic: %w", err)
	}

	t, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetEpicID(epicID).
		SetProjectID(e.ProjectID).
		SetDescription(req.Description).
		SetAction(req.Action).
		SetSortOrder(req.SortOrder).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// ListTasks returns an epic's tasks in sort order
func (s *WorkItemService) ListTasks(ctx context.Context, epicID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.EpicID(epicID)).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// NextPendingTask returns the first pending task for a project in epic
// priority then task sort order, or ErrNotFound when nothing remains.
func (s *WorkItemService) NextPendingTask(ctx context.Context, projectID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(
			task.ProjectID(projectID),
			task.StatusEQ(task.StatusPending),
			task.HasEpicWith(epic.StatusNEQ(epic.StatusCompleted)),
		).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query next task: %w", err)
	}
	return t, nil
}

// UpdateTaskStatus transitions a task's status
func (s *WorkItemService) UpdateTaskStatus(ctx context.Context, taskID, status string) (*ent.Task, error) {
	switch status {
	case task.StatusPending.String(), task.StatusInProgress.String(), task.StatusDone.String():
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unknown task status %q", status))
	}

	t, err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return t, nil
}

// CreateTestCase attaches a test case to a task
func (s *WorkItemService) CreateTestCase(ctx context.Context, taskID string, req models.CreateTestCaseRequest) (*ent.TestCase, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	tc, err := s.client.TestCase.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}
	return tc, nil
}

// ListTestCases returns a task's test cases
func (s *WorkItemService) ListTestCases(ctx context.Context, taskID string) ([]*ent.TestCase, error) {
	tests, err := s.client.TestCase.Query().
		Where(testcase.TaskID(taskID)).
		Order(ent.Asc(testcase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return tests, nil
}

// UpdateTestStatus records a test run outcome
func (s *WorkItemService) UpdateTestStatus(ctx context.Context, testID, status, result string) (*ent.TestCase, error) {
	switch status {
	case testcase.StatusPending.String(), testcase.StatusPassing.String(), testcase.StatusFailing.String():
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unknown test status %q", status))
	}

	builder := s.client.TestCase.UpdateOneID(testID).
		SetStatus(testcase.Status(status))
	if result != "" {
		builder.SetLastResult(result)
	}

	tc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update test status: %w", err)
	}
	return tc, nil
}

// DeleteAllEpics removes a project's entire work tree. Tasks and test
// cases follow their epics via cascade. Returns the number of epics
// removed.
func (s *WorkItemService) DeleteAllEpics(ctx context.Context, projectID string) (int, error) {
	n, err := s.client.Epic.Delete().
		Where(epic.ProjectID(projectID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete epics: %w", err)
	}
	return n, nil
}
