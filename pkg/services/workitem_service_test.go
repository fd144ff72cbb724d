package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/models"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func TestWorkItemService_EpicTaskTestTree(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "worktree")

	e, err := service.CreateEpic(ctx, p.ID, models.CreateEpicRequest{
		Name:        "auth",
		Description: "login and sessions",
		Priority:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, e.ProjectID)

	task, err := service.CreateTask(ctx, e.ID, models.CreateTaskRequest{
		Description: "add login endpoint",
		Action:      "implement POST /login",
		SortOrder:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, task.ProjectID, "project id is denormalized onto tasks")

	tc, err := service.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{
		Description: "login with valid credentials succeeds",
	})
	require.NoError(t, err)

	epics, err := service.ListEpics(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, epics, 1)

	tasks, err := service.ListTasks(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	tests, err := service.ListTestCases(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, tc.ID, tests[0].ID)
}

func TestWorkItemService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "statuses")
	e, err := service.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "e"})
	require.NoError(t, err)
	task, err := service.CreateTask(ctx, e.ID, models.CreateTaskRequest{Description: "t"})
	require.NoError(t, err)
	tc, err := service.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{Description: "c"})
	require.NoError(t, err)

	_, err = service.UpdateTaskStatus(ctx, task.ID, "in_progress")
	require.NoError(t, err)
	_, err = service.UpdateTaskStatus(ctx, task.ID, "done")
	require.NoError(t, err)
	_, err = service.UpdateTaskStatus(ctx, task.ID, "finished")
	assert.True(t, IsValidationError(err))

	updated, err := service.UpdateTestStatus(ctx, tc.ID, "failing", "assertion failed on line 3")
	require.NoError(t, err)
	assert.Equal(t, "assertion failed on line 3", updated.LastResult)

	_, err = service.UpdateEpicStatus(ctx, e.ID, "in_progress")
	require.NoError(t, err)
	_, err = service.UpdateEpicStatus(ctx, e.ID, "bogus")
	assert.True(t, IsValidationError(err))
}

func TestWorkItemService_CompleteEpicIfDone(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "epic-complete")
	e, err := service.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "e"})
	require.NoError(t, err)

	t1, err := service.CreateTask(ctx, e.ID, models.CreateTaskRequest{Description: "t1"})
	require.NoError(t, err)
	t2, err := service.CreateTask(ctx, e.ID, models.CreateTaskRequest{Description: "t2"})
	require.NoError(t, err)

	_, err = service.UpdateTaskStatus(ctx, t1.ID, "done")
	require.NoError(t, err)

	// One task still open
	_, transitioned, err := service.CompleteEpicIfDone(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, transitioned)

	_, err = service.UpdateTaskStatus(ctx, t2.ID, "done")
	require.NoError(t, err)

	updated, transitioned, err := service.CompleteEpicIfDone(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, transitioned)
	assert.Equal(t, "completed", updated.Status.String())

	// Second call is a no-op
	_, transitioned, err = service.CompleteEpicIfDone(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, transitioned)
}

func TestWorkItemService_NextPendingTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, projects, "next-task")
	e, err := service.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "e"})
	require.NoError(t, err)

	mkTask := func(desc string, order int) *ent.Task {
		t.Helper()
		task, err := service.CreateTask(ctx, e.ID, models.CreateTaskRequest{Description: desc, SortOrder: order})
		require.NoError(t, err)
		return task
	}

	first := mkTask("first", 1)
	second := mkTask("second", 2)

	next, err := service.NextPendingTask(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, next.ID)

	_, err = service.UpdateTaskStatus(ctx, first.ID, "done")
	require.NoError(t, err)

	next, err = service.NextPendingTask(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, next.ID)

	_, err = service.UpdateTaskStatus(ctx, second.ID, "done")
	require.NoError(t, err)

	_, err = service.NextPendingTask(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
