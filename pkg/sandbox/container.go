package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/autoforge-dev/autoforge/pkg/config"
)

// ContainerSandbox runs session commands inside a docker container. The
// workspace is bind-mounted at /workspace and commands execute there.
type ContainerSandbox struct {
	cfg     config.SandboxConfig
	handle  string
	workDir string
	started bool
}

// NewContainerSandbox creates a container sandbox. The container is not
// launched until Start.
func NewContainerSandbox(cfg config.SandboxConfig, projectName, workDir string, sessionNumber int) *ContainerSandbox {
	return &ContainerSandbox{
		cfg:     cfg,
		handle:  fmt.Sprintf("autoforge-%s-s%d", projectName, sessionNumber),
		workDir: workDir,
	}
}

// Handle returns the container name.
func (s *ContainerSandbox) Handle() string {
	return s.handle
}

// Start launches the container detached with an idle entrypoint so
// Execute can docker-exec into it.
func (s *ContainerSandbox) Start(ctx context.Context) error {
	// A leftover container with the same handle belongs to a swept
	// session; remove it first.
	_ = exec.CommandContext(ctx, "docker", "rm", "-f", s.handle).Run()

	args := s.runArgs()
	slog.Info("Starting sandbox container", "handle", s.handle, "image", s.cfg.Image)

	out, err := exec.CommandContext(ctx, "docker", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to start container %s: %w: %s", s.handle, err, strings.TrimSpace(string(out)))
	}
	s.started = true
	return nil
}

// runArgs builds the docker run argument list.
func (s *ContainerSandbox) runArgs() []string {
	args := []string{
		"run", "-d",
		"--name", s.handle,
		"-v", s.workDir + ":/workspace",
		"-w", "/workspace",
	}
	if s.cfg.Network != "" {
		args = append(args, "--network", s.cfg.Network)
	}
	if s.cfg.MemoryLimit != "" {
		args = append(args, "--memory", s.cfg.MemoryLimit)
	}
	if s.cfg.CPULimit != "" {
		args = append(args, "--cpus", s.cfg.CPULimit)
	}
	for _, port := range s.cfg.Ports {
		args = append(args, "-p", port)
	}
	args = append(args, s.cfg.Image, "sleep", "infinity")
	return args
}

// Execute runs a shell command inside the container. A non-zero exit
// code is returned in the result, not as an error; errors mean the
// docker CLI itself failed.
func (s *ContainerSandbox) Execute(ctx context.Context, command string) (*ExecResult, error) {
	if !s.started {
		return nil, errors.New("sandbox not started")
	}

	cmd := exec.CommandContext(ctx, "docker", "exec", s.handle, "sh", "-c", command)

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
		return nil, fmt.Errorf("failed to exec in container %s: %w", s.handle, err)
	}
	return result, nil
}

// Stop removes the container. Idempotent.
func (s *ContainerSandbox) Stop(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "docker", "rm", "-f", s.handle).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if strings.Contains(msg, "No such container") {
			return nil
		}
		return fmt.Errorf("failed to remove container %s: %w: %s", s.handle, err, msg)
	}
	s.started = false
	return nil
}
