// Package api exposes the HTTP and WebSocket surface: project CRUD,
// session control, quality and log reads, and the prompt-improvement
// endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/config"
	"github.com/autoforge-dev/autoforge/pkg/database"
	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/improve"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/services"
	"github.com/autoforge-dev/autoforge/pkg/version"
)

// Orchestration is the slice of the orchestrator the API depends on.
type Orchestration interface {
	StartInitialization(ctx context.Context, projectID, model string) (*ent.AgentSession, error)
	StartCodingSessions(ctx context.Context, projectID, model string, maxIterations *int) (*ent.AgentSession, error)
	StopSession(ctx context.Context, projectID string) (string, error)
	SetStopAfterCurrent(projectID string)
	ClearStopAfter(projectID string)
	ActiveSessionID(projectID string) string
	CancelInitialization(ctx context.Context, projectID string) error
	LogsDir(project *ent.Project) string
}

// Server wires handlers to services.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	projects *services.ProjectService
	sessions *services.SessionService
	items    *services.WorkItemService
	quality  *services.QualityService
	analyses *services.AnalysisService
	versions *services.PromptVersionService
	prompts  *prompts.Manager
	orch     Orchestration
	analyzer *improve.Analyzer
	bus      *events.Bus
	ws       *events.ConnectionManager
}

// Deps collects the server's collaborators.
type Deps struct {
	Config   *config.Config
	DB       *database.Client
	Projects *services.ProjectService
	Sessions *services.SessionService
	Items    *services.WorkItemService
	Quality  *services.QualityService
	Analyses *services.AnalysisService
	Versions *services.PromptVersionService
	Prompts  *prompts.Manager
	Orch     Orchestration
	Analyzer *improve.Analyzer
	Bus      *events.Bus
	WS       *events.ConnectionManager
}

// NewServer creates the API server.
func NewServer(d Deps) *Server {
	return &Server{
		cfg:      d.Config,
		db:       d.DB,
		projects: d.Projects,
		sessions: d.Sessions,
		items:    d.Items,
		quality:  d.Quality,
		analyses: d.Analyses,
		versions: d.Versions,
		prompts:  d.Prompts,
		orch:     d.Orch,
		analyzer: d.Analyzer,
		bus:      d.Bus,
		ws:       d.WS,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)
	r.GET("/ws", s.handleWebSocket)

	v1 := r.Group("/api/v1")

	projects := v1.Group("/projects")
	projects.POST("", s.createProject)
	projects.GET("", s.listProjects)
	projects.GET("/:id", s.getProject)
	projects.DELETE("/:id", s.deleteProject)
	projects.POST("/:id/rename", s.renameProject)
	projects.POST("/:id/reset", s.resetProject)
	projects.GET("/:id/progress", s.getProgress)
	projects.GET("/:id/settings", s.getSettings)
	projects.PUT("/:id/settings", s.updateSettings)
	projects.POST("/:id/env-configured", s.markEnvConfigured)

	projects.POST("/:id/initialize", s.startInitialization)
	projects.POST("/:id/cancel-initialization", s.cancelInitialization)
	projects.POST("/:id/code", s.startCodingSessions)
	projects.POST("/:id/stop", s.stopSessions)
	projects.POST("/:id/stop-after", s.setStopAfter)
	projects.DELETE("/:id/stop-after", s.clearStopAfter)
	projects.GET("/:id/sessions", s.listSessions)

	projects.GET("/:id/epics", s.listEpics)
	projects.GET("/:id/quality", s.listProjectQuality)
	projects.GET("/:id/logs", s.listLogs)
	projects.GET("/:id/logs/:name", s.getLogText)
	projects.GET("/:id/logs/:name/events", s.getLogEvents)

	sessions := v1.Group("/sessions")
	sessions.GET("/:sid", s.getSession)
	sessions.POST("/:sid/stop", s.stopSession)
	sessions.GET("/:sid/quality", s.getSessionQuality)

	imp := v1.Group("/improve")
	imp.POST("/analyses", s.runAnalysis)
	imp.GET("/analyses", s.listAnalyses)
	imp.GET("/analyses/:aid", s.getAnalysis)
	imp.DELETE("/analyses/:aid", s.deleteAnalysis)
	imp.GET("/analyses/:aid/proposals", s.listProposals)
	imp.GET("/proposals/:pid", s.getProposal)
	imp.PUT("/proposals/:pid/status", s.updateProposalStatus)
	imp.POST("/proposals/:pid/apply", s.applyProposal)
	imp.GET("/versions", s.listVersions)
	imp.POST("/versions/:vid/activate", s.activateVersion)

	return r
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := gin.H{"status": "healthy", "version": version.Version}
	if s.db != nil {
		if err := s.db.DB().PingContext(ctx); err != nil {
			status["status"] = "unhealthy"
			status["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
	}
	c.JSON(http.StatusOK, status)
}
