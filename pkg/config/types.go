package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the fully resolved application configuration.
type Config struct {
	Models  ModelsConfig  `yaml:"models"`
	Project ProjectConfig `yaml:"project"`
	Timing  TimingConfig  `yaml:"timing"`
	Sandbox SandboxConfig `yaml:"sandbox"`
	Server  ServerConfig  `yaml:"server"`
	Prompts PromptsConfig `yaml:"prompts"`
}

// ModelsConfig selects the LLM model per session type. Review sessions
// reuse the coding model unless overridden.
type ModelsConfig struct {
	Initializer string `yaml:"initializer"`
	Coding      string `yaml:"coding"`
	Review      string `yaml:"review,omitempty"`
	Analysis    string `yaml:"analysis,omitempty"`
}

// ProjectConfig holds defaults applied to new projects. Per-project
// settings stored in the database override these.
type ProjectConfig struct {
	// GenerationsDir is where project workspaces are created on disk.
	GenerationsDir string `yaml:"generations_dir"`

	// MaxIterations caps auto-continued coding sessions per run.
	// 0 means unlimited.
	MaxIterations int `yaml:"max_iterations"`
}

// TimingConfig holds orchestration delays and sweep intervals.
type TimingConfig struct {
	// AutoContinueDelaySeconds is the pause between auto-continued sessions.
	AutoContinueDelaySeconds int `yaml:"auto_continue_delay_seconds"`

	// StaleSweepInterval is how often running sessions are checked for
	// missed heartbeats.
	StaleSweepInterval time.Duration `yaml:"stale_sweep_interval"`
}

// SandboxConfig describes the execution environment for agent sessions.
type SandboxConfig struct {
	// Type is "container" or "local".
	Type string `yaml:"type"`

	Image       string   `yaml:"image,omitempty"`
	Network     string   `yaml:"network,omitempty"`
	MemoryLimit string   `yaml:"memory_limit,omitempty"`
	CPULimit    string   `yaml:"cpu_limit,omitempty"`
	Ports       []string `yaml:"ports,omitempty"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// PromptsConfig points at the prompt template directory. Empty means
// the embedded defaults are used.
type PromptsConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// ModelFor returns the configured model for a session type.
func (c *ModelsConfig) ModelFor(sessionType string) string {
	switch sessionType {
	case "initializer":
		return c.Initializer
	case "review":
		if c.Review != "" {
			return c.Review
		}
		return c.Coding
	default:
		return c.Coding
	}
}

// AutoContinueDelay returns the configured delay as a duration.
func (c *TimingConfig) AutoContinueDelay() time.Duration {
	return time.Duration(c.AutoContinueDelaySeconds) * time.Second
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
