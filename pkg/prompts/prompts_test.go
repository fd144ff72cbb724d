package prompts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoVersion = errors.New("no active version")

type stubVersions struct {
	content map[string]string
}

func (s *stubVersions) ActiveContent(_ context.Context, promptFile string) (string, error) {
	if c, ok := s.content[promptFile]; ok {
		return c, nil
	}
	return "", errNoVersion
}

func isNoVersion(err error) bool { return errors.Is(err, errNoVersion) }

func TestFileFor(t *testing.T) {
	f, err := FileFor("initializer", "container")
	require.NoError(t, err)
	assert.Equal(t, InitializerPrompt, f)

	f, err = FileFor("coding", "container")
	require.NoError(t, err)
	assert.Equal(t, CodingPromptContainer, f)

	f, err = FileFor("coding", "local")
	require.NoError(t, err)
	assert.Equal(t, CodingPromptLocal, f)

	_, err = FileFor("review", "container")
	assert.Error(t, err)
}

func TestResolveEmbeddedDefault(t *testing.T) {
	m := NewManager("", nil, nil)

	content, err := m.Resolve(context.Background(), CodingPromptContainer)
	require.NoError(t, err)
	assert.Contains(t, content, "container")

	_, err = m.Resolve(context.Background(), "nonexistent.md")
	assert.Error(t, err)
}

func TestResolveOverrideDirWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, InitializerPrompt), []byte("custom initializer"), 0o644))

	m := NewManager(dir, nil, nil)

	content, err := m.Resolve(context.Background(), InitializerPrompt)
	require.NoError(t, err)
	assert.Equal(t, "custom initializer", content)

	// Files absent from the override dir fall back to the default
	content, err = m.Resolve(context.Background(), CodingPromptLocal)
	require.NoError(t, err)
	assert.Contains(t, content, "local workspace")
}

func TestResolveActiveVersionWinsOverEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, InitializerPrompt), []byte("override"), 0o644))

	versions := &stubVersions{content: map[string]string{
		InitializerPrompt: "versioned content",
	}}
	m := NewManager(dir, versions, isNoVersion)

	content, err := m.Resolve(context.Background(), InitializerPrompt)
	require.NoError(t, err)
	assert.Equal(t, "versioned content", content)

	// No active version: fall through to the override dir
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, CodingPromptContainer), []byte("container override"), 0o644))
	content, err = m.Resolve(context.Background(), CodingPromptContainer)
	require.NoError(t, err)
	assert.Equal(t, "container override", content)
}

func TestDefault(t *testing.T) {
	content, err := Default(InitializerPrompt)
	require.NoError(t, err)
	assert.Contains(t, content, "epics")
}
