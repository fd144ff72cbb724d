package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoforge-dev/autoforge/pkg/improve"
	"github.com/autoforge-dev/autoforge/pkg/models"
)

// runAnalysis handles POST /api/v1/improve/analyses. The analysis runs
// synchronously; windows are small enough that this stays interactive.
func (s *Server) runAnalysis(c *gin.Context) {
	var req models.StartAnalysisRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	analysis, err := s.analyzer.Run(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// listAnalyses handles GET /api/v1/improve/analyses.
func (s *Server) listAnalyses(c *gin.Context) {
	analyses, err := s.analyses.ListAnalyses(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

// getAnalysis handles GET /api/v1/improve/analyses/:aid.
func (s *Server) getAnalysis(c *gin.Context) {
	analysis, err := s.analyses.GetAnalysis(c.Request.Context(), c.Param("aid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// deleteAnalysis handles DELETE /api/v1/improve/analyses/:aid.
func (s *Server) deleteAnalysis(c *gin.Context) {
	if err := s.analyses.DeleteAnalysis(c.Request.Context(), c.Param("aid")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listProposals handles GET /api/v1/improve/analyses/:aid/proposals.
func (s *Server) listProposals(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := s.analyses.GetAnalysis(ctx, c.Param("aid")); err != nil {
		mapServiceError(c, err)
		return
	}

	proposals, err := s.analyses.ListProposals(ctx, c.Param("aid"), c.Query("status"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

// getProposal handles GET /api/v1/improve/proposals/:pid.
func (s *Server) getProposal(c *gin.Context) {
	proposal, err := s.analyses.GetProposal(c.Request.Context(), c.Param("pid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// updateProposalStatus handles PUT /api/v1/improve/proposals/:pid/status.
func (s *Server) updateProposalStatus(c *gin.Context) {
	var req models.UpdateProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	proposal, err := s.analyses.UpdateProposalStatus(c.Request.Context(), c.Param("pid"), req.Status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// applyProposal handles POST /api/v1/improve/proposals/:pid/apply. It
// resolves the current prompt, merges the proposal in, and records a new
// active prompt version in one step.
func (s *Server) applyProposal(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ApplyProposalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	proposal, err := s.analyses.GetProposal(ctx, c.Param("pid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	current, err := s.prompts.Resolve(ctx, proposal.PromptFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve current prompt"})
		return
	}

	updated := improve.ApplyChange(current, proposal)
	proposal, ver, err := s.versions.ApplyProposal(ctx, proposal.ID, req.AppliedBy, updated)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ApplyProposalResponse{Proposal: proposal, Version: ver})
}

// listVersions handles GET /api/v1/improve/versions.
func (s *Server) listVersions(c *gin.Context) {
	promptFile := c.Query("prompt_file")
	if promptFile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt_file query parameter is required"})
		return
	}

	versions, err := s.versions.ListVersions(c.Request.Context(), promptFile)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// activateVersion handles POST /api/v1/improve/versions/:vid/activate.
func (s *Server) activateVersion(c *gin.Context) {
	ver, err := s.versions.ActivateVersion(c.Request.Context(), c.Param("vid"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ver)
}
