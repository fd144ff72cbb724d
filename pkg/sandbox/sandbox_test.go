package sandbox

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/pkg/config"
)

func TestNewSelectsKind(t *testing.T) {
	local, err := New(config.SandboxConfig{Type: "local"}, "proj", t.TempDir(), 1)
	require.NoError(t, err)
	assert.IsType(t, &LocalSandbox{}, local)

	container, err := New(config.SandboxConfig{Type: "container", Image: "img"}, "proj", t.TempDir(), 1)
	require.NoError(t, err)
	assert.IsType(t, &ContainerSandbox{}, container)

	_, err = New(config.SandboxConfig{Type: "vm"}, "proj", t.TempDir(), 1)
	assert.Error(t, err)
}

func TestLocalSandboxExecute(t *testing.T) {
	dir := t.TempDir()
	sb := NewLocalSandbox(dir)
	ctx := context.Background()

	require.NoError(t, sb.Start(ctx))

	t.Run("captures stdout", func(t *testing.T) {
		result, err := sb.Execute(ctx, "echo hello")
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "hello\n", result.Stdout)
	})

	t.Run("runs in the workspace", func(t *testing.T) {
		result, err := sb.Execute(ctx, "pwd")
		require.NoError(t, err)
		// pwd may resolve symlinks differently; compare the base
		assert.Equal(t, filepath.Base(dir), filepath.Base(result.Stdout[:len(result.Stdout)-1]))
	})

	t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
		result, err := sb.Execute(ctx, "echo oops >&2; exit 3")
		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "oops\n", result.Stderr)
	})

	require.NoError(t, sb.Stop(ctx))
}

func TestLocalSandboxStartCreatesWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "workspace")
	sb := NewLocalSandbox(dir)

	require.NoError(t, sb.Start(context.Background()))

	result, err := sb.Execute(context.Background(), "true")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
}

func TestContainerSandboxHandle(t *testing.T) {
	sb := NewContainerSandbox(config.SandboxConfig{Type: "container", Image: "img"}, "my-app", "/tmp/ws", 4)
	assert.Equal(t, "autoforge-my-app-s4", sb.Handle())
}

func TestContainerSandboxRunArgs(t *testing.T) {
	sb := NewContainerSandbox(config.SandboxConfig{
		Type:        "container",
		Image:       "autoforge-sandbox:latest",
		Network:     "bridge",
		MemoryLimit: "4g",
		CPULimit:    "2",
		Ports:       []string{"3000:3000"},
	}, "my-app", "/work/my-app", 2)

	args := sb.runArgs()
	joined := ""
	for _, a := range args {
		joined += a + " "
	}

	assert.Contains(t, joined, "--name autoforge-my-app-s2")
	assert.Contains(t, joined, "-v /work/my-app:/workspace")
	assert.Contains(t, joined, "--network bridge")
	assert.Contains(t, joined, "--memory 4g")
	assert.Contains(t, joined, "--cpus 2")
	assert.Contains(t, joined, "-p 3000:3000")
	assert.Contains(t, joined, "autoforge-sandbox:latest sleep infinity")
}

func TestContainerSandboxExecuteRequiresStart(t *testing.T) {
	sb := NewContainerSandbox(config.SandboxConfig{Type: "container", Image: "img"}, "p", "/tmp", 1)
	_, err := sb.Execute(context.Background(), "echo hi")
	assert.Error(t, err)
}
