package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/models"
)

// createProject handles POST /api/v1/projects.
func (s *Server) createProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	project, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// listProjects handles GET /api/v1/projects.
func (s *Server) listProjects(c *gin.Context) {
	filters := models.ProjectFilters{
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit", 50),
		Offset: intQuery(c, "offset", 0),
	}

	list, err := s.projects.ListProjects(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// getProject handles GET /api/v1/projects/:id.
func (s *Server) getProject(c *gin.Context) {
	project, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// deleteProject handles DELETE /api/v1/projects/:id.
func (s *Server) deleteProject(c *gin.Context) {
	if err := s.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// renameProject handles POST /api/v1/projects/:id/rename.
func (s *Server) renameProject(c *gin.Context) {
	var req models.RenameProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	project, err := s.projects.RenameProject(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// resetProject handles POST /api/v1/projects/:id/reset.
func (s *Server) resetProject(c *gin.Context) {
	project, err := s.projects.ResetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if s.bus != nil {
		s.bus.Publish(project.ID, events.ProjectPayload{
			BasePayload: events.NewBase(events.TypeProjectReset, project.ID),
			Detail:      "project reset: work tree and sessions cleared",
		})
	}
	c.JSON(http.StatusOK, project)
}

// getProgress handles GET /api/v1/projects/:id/progress.
func (s *Server) getProgress(c *gin.Context) {
	progress, err := s.projects.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// getSettings handles GET /api/v1/projects/:id/settings.
func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.projects.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// updateSettings handles PUT /api/v1/projects/:id/settings.
func (s *Server) updateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	project, err := s.projects.UpdateSettings(c.Request.Context(), c.Param("id"), req.Settings)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// markEnvConfigured handles POST /api/v1/projects/:id/env-configured.
func (s *Server) markEnvConfigured(c *gin.Context) {
	project, err := s.projects.MarkEnvConfigured(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// listEpics handles GET /api/v1/projects/:id/epics, returning the full
// work tree.
func (s *Server) listEpics(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		mapServiceError(c, err)
		return
	}

	epics, err := s.items.ListEpics(ctx, projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	tree := make([]gin.H, 0, len(epics))
	for _, epic := range epics {
		tasks, err := s.items.ListTasks(ctx, epic.ID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		taskDocs := make([]gin.H, 0, len(tasks))
		for _, task := range tasks {
			tests, err := s.items.ListTestCases(ctx, task.ID)
			if err != nil {
				mapServiceError(c, err)
				return
			}
			taskDocs = append(taskDocs, gin.H{"task": task, "tests": tests})
		}
		tree = append(tree, gin.H{"epic": epic, "tasks": taskDocs})
	}
	c.JSON(http.StatusOK, gin.H{"epics": tree})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
