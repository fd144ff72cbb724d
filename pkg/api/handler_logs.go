package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
)

func (s *Server) projectLogsDir(c *gin.Context) (*ent.Project, string, bool) {
	project, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return nil, "", false
	}
	return project, s.orch.LogsDir(project), true
}

// listLogs handles GET /api/v1/projects/:id/logs.
func (s *Server) listLogs(c *gin.Context) {
	_, dir, ok := s.projectLogsDir(c)
	if !ok {
		return
	}

	names, err := eventlog.ListLogNames(dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"logs": names})
}

// getLogText handles GET /api/v1/projects/:id/logs/:name, returning the
// raw log as plain text.
func (s *Server) getLogText(c *gin.Context) {
	_, dir, ok := s.projectLogsDir(c)
	if !ok {
		return
	}

	base, err := eventlog.ResolveLogName(dir, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}

	text, err := eventlog.ReadText(dir, base)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read log"})
		return
	}
	c.String(http.StatusOK, text)
}

// getLogEvents handles GET /api/v1/projects/:id/logs/:name/events,
// returning parsed events. Truncated trailing lines are skipped by the
// reader rather than failing the whole request.
func (s *Server) getLogEvents(c *gin.Context) {
	_, dir, ok := s.projectLogsDir(c)
	if !ok {
		return
	}

	base, err := eventlog.ResolveLogName(dir, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}

	evts, err := eventlog.ReadEvents(dir, base)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": evts, "count": len(evts)})
}
