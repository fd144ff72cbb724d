package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listProjectQuality handles GET /api/v1/projects/:id/quality.
func (s *Server) listProjectQuality(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := s.projects.GetProject(ctx, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}

	checks, err := s.quality.ListChecksForProject(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checks": checks})
}

// getSessionQuality handles GET /api/v1/sessions/:sid/quality.
func (s *Server) getSessionQuality(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := s.sessions.GetSession(ctx, c.Param("sid")); err != nil {
		mapServiceError(c, err)
		return
	}

	checks, err := s.quality.GetChecksForSession(ctx, c.Param("sid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checks": checks})
}
