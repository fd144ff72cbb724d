// Package prompts selects and resolves the system prompt for each session
// type. Resolution order: active database version, then an optional
// override directory, then the embedded default.
package prompts

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/*.md
var defaultsFS embed.FS

// Known prompt files.
const (
	InitializerPrompt     = "initializer_prompt.md"
	CodingPromptContainer = "coding_prompt_container.md"
	CodingPromptLocal     = "coding_prompt_local.md"
)

// VersionSource looks up the active stored version of a prompt file.
// A services.ErrNotFound-classified error means no version is active.
type VersionSource interface {
	ActiveContent(ctx context.Context, promptFile string) (string, error)
}

// Manager resolves prompt content.
type Manager struct {
	overrideDir string
	versions    VersionSource
	notFound    func(error) bool
}

// NewManager creates a prompt manager. overrideDir and versions may be
// empty/nil; notFound classifies version-source misses and is required
// when versions is set.
func NewManager(overrideDir string, versions VersionSource, notFound func(error) bool) *Manager {
	return &Manager{
		overrideDir: overrideDir,
		versions:    versions,
		notFound:    notFound,
	}
}

// FileFor returns the prompt file name for a session type and sandbox
// kind. Review sessions have no prompt file; their prompt is built from
// session artifacts by the quality pipeline.
func FileFor(sessionType, sandboxType string) (string, error) {
	switch sessionType {
	case "initializer":
		return InitializerPrompt, nil
	case "coding":
		if sandboxType == "local" {
			return CodingPromptLocal, nil
		}
		return CodingPromptContainer, nil
	default:
		return "", fmt.Errorf("no prompt file for session type %q", sessionType)
	}
}

// Resolve returns the effective content of a prompt file.
func (m *Manager) Resolve(ctx context.Context, promptFile string) (string, error) {
	if m.versions != nil {
		content, err := m.versions.ActiveContent(ctx, promptFile)
		if err == nil {
			return content, nil
		}
		if m.notFound == nil || !m.notFound(err) {
			return "", fmt.Errorf("failed to look up active prompt version: %w", err)
		}
	}

	if m.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(m.overrideDir, promptFile))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to read prompt override: %w", err)
		}
	}

	data, err := defaultsFS.ReadFile("defaults/" + promptFile)
	if err != nil {
		return "", fmt.Errorf("unknown prompt file %q", promptFile)
	}
	return string(data), nil
}

// Default returns the embedded default content for a prompt file.
func Default(promptFile string) (string, error) {
	data, err := defaultsFS.ReadFile("defaults/" + promptFile)
	if err != nil {
		return "", fmt.Errorf("unknown prompt file %q", promptFile)
	}
	return string(data), nil
}
