package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "autoforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "autoforge.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "container", cfg.Sandbox.Type)
	assert.Equal(t, 5, cfg.Timing.AutoContinueDelaySeconds)
	assert.Equal(t, 5*time.Minute, cfg.Timing.StaleSweepInterval)
	assert.NotEmpty(t, cfg.Models.Initializer)
	assert.NotEmpty(t, cfg.Models.Coding)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
models:
  initializer: model-a
  coding: model-b
project:
  max_iterations: 12
timing:
  auto_continue_delay_seconds: 0
sandbox:
  type: local
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "model-a", cfg.Models.Initializer)
	assert.Equal(t, "model-b", cfg.Models.Coding)
	assert.Equal(t, 12, cfg.Project.MaxIterations)
	assert.Equal(t, 0, cfg.Timing.AutoContinueDelaySeconds)
	assert.Equal(t, "local", cfg.Sandbox.Type)

	// Unset fields keep their defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_CODING_MODEL", "model-from-env")

	path := writeConfig(t, `
models:
  coding: "{{.TEST_CODING_MODEL}}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "model-from-env", cfg.Models.Coding)
}

func TestLoadRejectsInvalidSandboxType(t *testing.T) {
	path := writeConfig(t, `
sandbox:
  type: vm
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "sandbox.type")
}

func TestLoadRejectsNegativeMaxIterations(t *testing.T) {
	path := writeConfig(t, `
project:
  max_iterations: -1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "models: [broken")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestModelForSessionType(t *testing.T) {
	m := ModelsConfig{Initializer: "init", Coding: "code"}

	assert.Equal(t, "init", m.ModelFor("initializer"))
	assert.Equal(t, "code", m.ModelFor("coding"))
	assert.Equal(t, "code", m.ModelFor("review"))

	m.Review = "rev"
	assert.Equal(t, "rev", m.ModelFor("review"))
}

func TestAutoContinueDelay(t *testing.T) {
	c := TimingConfig{AutoContinueDelaySeconds: 30}
	assert.Equal(t, 30*time.Second, c.AutoContinueDelay())

	c.AutoContinueDelaySeconds = 0
	assert.Equal(t, time.Duration(0), c.AutoContinueDelay())
}
