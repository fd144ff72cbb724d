// Package sandbox provides isolated execution environments for agent
// sessions. The container kind drives the docker CLI; the local kind runs
// commands directly in the project workspace.
package sandbox

import (
	"context"
	"fmt"

	"github.com/autoforge-dev/autoforge/pkg/config"
)

// ExecResult carries the outcome of one command execution.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Sandbox is an execution environment bound to one session.
type Sandbox interface {
	// Start prepares the environment. For containers this launches the
	// container; for local it verifies the workspace exists.
	Start(ctx context.Context) error

	// Execute runs a shell command inside the environment.
	Execute(ctx context.Context, command string) (*ExecResult, error)

	// Stop tears the environment down. Safe to call after a failed Start.
	Stop(ctx context.Context) error

	// Handle identifies the environment for logs and events.
	Handle() string
}

// New creates a sandbox for a session according to configuration.
// projectName and sessionNumber form the container handle so stale
// containers are identifiable with docker ps.
func New(cfg config.SandboxConfig, projectName, workDir string, sessionNumber int) (Sandbox, error) {
	switch cfg.Type {
	case "container":
		return NewContainerSandbox(cfg, projectName, workDir, sessionNumber), nil
	case "local":
		return NewLocalSandbox(workDir), nil
	default:
		return nil, fmt.Errorf("unknown sandbox type %q", cfg.Type)
	}
}
