// AutoForge server — provides the HTTP API, runs agent sessions against
// project workspaces, and hosts the prompt-improvement loop.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/autoforge-dev/autoforge/pkg/agent"
	"github.com/autoforge-dev/autoforge/pkg/api"
	"github.com/autoforge-dev/autoforge/pkg/config"
	"github.com/autoforge-dev/autoforge/pkg/database"
	"github.com/autoforge-dev/autoforge/pkg/events"
	"github.com/autoforge-dev/autoforge/pkg/improve"
	"github.com/autoforge-dev/autoforge/pkg/llm"
	"github.com/autoforge-dev/autoforge/pkg/orchestrator"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/quality"
	"github.com/autoforge-dev/autoforge/pkg/services"
	"github.com/autoforge-dev/autoforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// promptVersionSource adapts the version service to the prompt manager's
// lookup interface.
type promptVersionSource struct {
	versions *services.PromptVersionService
}

func (s *promptVersionSource) ActiveContent(ctx context.Context, promptFile string) (string, error) {
	v, err := s.versions.GetActiveVersion(ctx, promptFile)
	if err != nil {
		return "", err
	}
	return v.Content, nil
}

func main() {
	configPath := flag.String("config",
		getEnv("AUTOFORGE_CONFIG", "./autoforge.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	slog.Info("Starting AutoForge", "version", version.Version, "config", *configPath)

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	projectService := services.NewProjectService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	workItemService := services.NewWorkItemService(dbClient.Client)
	qualityService := services.NewQualityService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	versionService := services.NewPromptVersionService(dbClient.Client)
	slog.Info("Services initialized")

	promptManager := prompts.NewManager(
		cfg.Prompts.Dir,
		&promptVersionSource{versions: versionService},
		func(err error) bool { return errors.Is(err, services.ErrNotFound) },
	)

	anthropic, err := llm.NewAnthropicClientFromAPIKey(os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		slog.Error("Failed to initialize Anthropic client", "error", err)
		os.Exit(1)
	}

	analysisModel := cfg.Models.Analysis
	if analysisModel == "" {
		analysisModel = cfg.Models.Coding
	}

	checker := quality.NewChecker(qualityService, anthropic, analysisModel, slog.Default())
	runner := agent.NewRunner(anthropic, workItemService, slog.Default())
	bus := events.NewBus()

	orch := orchestrator.New(orchestrator.Deps{
		Config:   cfg,
		Projects: projectService,
		Sessions: sessionService,
		Items:    workItemService,
		Quality:  checker,
		Runner:   runner,
		Prompts:  promptManager,
		Bus:      bus,
	})

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	orch.StartStaleSweeper(sweepCtx)

	analyzer := improve.NewAnalyzer(
		analysisService, qualityService, projectService,
		promptManager, anthropic, analysisModel, slog.Default())

	connManager := events.NewConnectionManager(bus, orch, 10*time.Second)

	server := api.NewServer(api.Deps{
		Config:   cfg,
		DB:       dbClient,
		Projects: projectService,
		Sessions: sessionService,
		Items:    workItemService,
		Quality:  qualityService,
		Analyses: analysisService,
		Versions: versionService,
		Prompts:  promptManager,
		Orch:     orch,
		Analyzer: analyzer,
		Bus:      bus,
		WS:       connManager,
	})

	addr := cfg.Server.Addr()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop admitting new work, then let in-flight sessions reach a
	// terminal state before the deadline.
	stopSweeper()
	bus.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
