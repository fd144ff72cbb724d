package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoforge-dev/autoforge/pkg/models"
)

// startInitialization handles POST /api/v1/projects/:id/initialize. The
// session runs in the background; the response is an ack and progress
// flows over the WebSocket.
func (s *Server) startInitialization(c *gin.Context) {
	var req models.StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	session, err := s.orch.StartInitialization(c.Request.Context(), c.Param("id"), req.Model)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, models.SessionAck{
		SessionID:     session.ID,
		SessionNumber: session.SessionNumber,
		Status:        session.Status.String(),
	})
}

// cancelInitialization handles POST /api/v1/projects/:id/cancel-initialization.
func (s *Server) cancelInitialization(c *gin.Context) {
	if err := s.orch.CancelInitialization(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// startCodingSessions handles POST /api/v1/projects/:id/code.
func (s *Server) startCodingSessions(c *gin.Context) {
	var req models.StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	session, err := s.orch.StartCodingSessions(c.Request.Context(), c.Param("id"), req.Model, req.MaxIterations)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, models.SessionAck{
		SessionID:     session.ID,
		SessionNumber: session.SessionNumber,
		Status:        session.Status.String(),
	})
}

// stopSessions handles POST /api/v1/projects/:id/stop. A graceful stop
// lets the running session finish; an immediate stop cancels it.
func (s *Server) stopSessions(c *gin.Context) {
	var req models.StopSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	projectID := c.Param("id")
	if !req.Immediate {
		s.orch.SetStopAfterCurrent(projectID)
		c.JSON(http.StatusOK, gin.H{"status": "stopping", "mode": "after_current"})
		return
	}

	sessionID, err := s.orch.StopSession(c.Request.Context(), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stopped", "mode": "immediate", "session_id": sessionID})
}

// setStopAfter handles POST /api/v1/projects/:id/stop-after.
func (s *Server) setStopAfter(c *gin.Context) {
	s.orch.SetStopAfterCurrent(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"stop_after_current": true})
}

// clearStopAfter handles DELETE /api/v1/projects/:id/stop-after.
func (s *Server) clearStopAfter(c *gin.Context) {
	s.orch.ClearStopAfter(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"stop_after_current": false})
}

// stopSession handles POST /api/v1/sessions/:sid/stop. The target must
// be the session currently executing for its project.
func (s *Server) stopSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if s.orch.ActiveSessionID(session.ProjectID) != session.ID {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not currently executing"})
		return
	}

	stoppedID, err := s.orch.StopSession(c.Request.Context(), session.ProjectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stopped", "session_id": stoppedID})
}

// listSessions handles GET /api/v1/projects/:id/sessions.
func (s *Server) listSessions(c *gin.Context) {
	filters := models.SessionFilters{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit", 50),
		Offset: intQuery(c, "offset", 0),
	}

	list, err := s.sessions.ListSessions(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// getSession handles GET /api/v1/sessions/:sid.
func (s *Server) getSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
