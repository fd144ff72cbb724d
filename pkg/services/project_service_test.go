package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/pkg/models"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func TestProjectService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates project with spec", func(t *testing.T) {
		p, err := service.CreateProject(ctx, models.CreateProjectRequest{
			Name:        "my-app_2",
			SpecContent: "# Spec\nBuild a thing.",
			Settings:    map[string]any{"sandbox_type": "container"},
		})
		require.NoError(t, err)
		assert.Equal(t, "my-app_2", p.Name)
		assert.Equal(t, "# Spec\nBuild a thing.", p.SpecContent)
		assert.False(t, p.EnvConfigured)
		assert.Nil(t, p.CompletedAt)
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		for _, name := range []string{"", "My-App", "has space", "dots.bad"} {
			_, err := service.CreateProject(ctx, models.CreateProjectRequest{Name: name})
			assert.True(t, IsValidationError(err), "name %q should be rejected", name)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := service.CreateProject(ctx, models.CreateProjectRequest{Name: "dup-name"})
		require.NoError(t, err)

		_, err = service.CreateProject(ctx, models.CreateProjectRequest{Name: "dup-name"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestProjectService_Rename(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, service, "rename-me")
	other := createTestProject(t, service, "taken")

	renamed, err := service.RenameProject(ctx, p.ID, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", renamed.Name)

	_, err = service.RenameProject(ctx, p.ID, other.Name)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = service.RenameProject(ctx, p.ID, "Bad Name")
	assert.True(t, IsValidationError(err))

	_, err = service.RenameProject(ctx, "no-such-id", "fine-name")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_SettingsAndEnvConfigured(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, service, "settings")

	settings, err := service.GetSettings(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, settings)

	_, err = service.UpdateSettings(ctx, p.ID, map[string]any{
		"coding_model":  "model-x",
		"auto_continue": true,
	})
	require.NoError(t, err)

	settings, err = service.GetSettings(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "model-x", settings["coding_model"])
	assert.Equal(t, true, settings["auto_continue"])

	updated, err := service.MarkEnvConfigured(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, updated.EnvConfigured)
}

func TestProjectService_DeleteRefusedWhileRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, service, "delete-busy")
	s, err := sessions.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
	require.NoError(t, err)
	_, err = sessions.MarkRunning(ctx, s.ID)
	require.NoError(t, err)

	err = service.DeleteProject(ctx, p.ID)
	assert.True(t, IsBusyError(err))

	_, err = sessions.MarkSessionTerminal(ctx, s.ID, "completed", "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteProject(ctx, p.ID))
	_, err = service.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Reset(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client)
	work := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, service, "reset-me")

	e, err := work.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "epic-1"})
	require.NoError(t, err)
	task, err := work.CreateTask(ctx, e.ID, models.CreateTaskRequest{Description: "do it"})
	require.NoError(t, err)
	_, err = work.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{Description: "it works"})
	require.NoError(t, err)

	s, err := sessions.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
	require.NoError(t, err)
	_, err = sessions.MarkRunning(ctx, s.ID)
	require.NoError(t, err)
	_, err = sessions.MarkSessionTerminal(ctx, s.ID, "completed", "")
	require.NoError(t, err)

	_, err = service.CompleteProject(ctx, p.ID)
	require.NoError(t, err)

	reset, err := service.ResetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, reset.CompletedAt)

	epics, err := work.ListEpics(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, epics)

	count, err := client.AgentSession.Query().
		Where(agentsession.ProjectID(p.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// After reset the initializer can run again
	_, err = sessions.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
	require.NoError(t, err)
}

func TestProjectService_Progress(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	work := NewWorkItemService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, service, "progress")

	e1, err := work.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "e1"})
	require.NoError(t, err)
	e2, err := work.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "e2"})
	require.NoError(t, err)

	t1, err := work.CreateTask(ctx, e1.ID, models.CreateTaskRequest{Description: "t1"})
	require.NoError(t, err)
	_, err = work.CreateTask(ctx, e2.ID, models.CreateTaskRequest{Description: "t2"})
	require.NoError(t, err)

	tc, err := work.CreateTestCase(ctx, t1.ID, models.CreateTestCaseRequest{Description: "tc1"})
	require.NoError(t, err)

	progress, err := service.Progress(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.EpicsTotal)
	assert.Equal(t, 0, progress.EpicsCompleted)
	assert.Equal(t, 2, progress.TasksTotal)
	assert.Equal(t, 1, progress.TestsTotal)
	assert.False(t, progress.AllEpicsDone)

	_, err = work.UpdateTaskStatus(ctx, t1.ID, "done")
	require.NoError(t, err)
	_, err = work.UpdateTestStatus(ctx, tc.ID, "passing", "ok")
	require.NoError(t, err)
	_, _, err = work.CompleteEpicIfDone(ctx, e1.ID)
	require.NoError(t, err)

	progress, err = service.Progress(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.EpicsCompleted)
	assert.Equal(t, 1, progress.TasksDone)
	assert.Equal(t, 1, progress.TestsPassing)
	assert.False(t, progress.AllEpicsDone)
}
