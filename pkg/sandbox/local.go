package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// LocalSandbox runs commands directly in the project workspace. No
// isolation; intended for trusted development setups.
type LocalSandbox struct {
	workDir string
}

// NewLocalSandbox creates a local sandbox rooted at workDir.
func NewLocalSandbox(workDir string) *LocalSandbox {
	return &LocalSandbox{workDir: workDir}
}

// Handle returns the workspace path.
func (s *LocalSandbox) Handle() string {
	return "local:" + s.workDir
}

// Start verifies the workspace directory exists, creating it if needed.
func (s *LocalSandbox) Start(_ context.Context) error {
	if err := os.MkdirAll(s.workDir, 0o755); err != nil {
		return fmt.Errorf("failed to prepare workspace %s: %w", s.workDir, err)
	}
	return nil
}

// Execute runs a shell command in the workspace.
func (s *LocalSandbox) Execute(ctx context.Context, command string) (*ExecResult, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = s.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to run command: %w", err)
	}
	return result, nil
}

// Stop is a no-op for local execution.
func (s *LocalSandbox) Stop(_ context.Context) error {
	return nil
}
