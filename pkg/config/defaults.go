package config

import "time"

// DefaultConfig returns the built-in configuration. Values from
// autoforge.yaml override these field by field.
func DefaultConfig() *Config {
	return &Config{
		Models: ModelsConfig{
			Initializer: "claude-opus-4-20250514",
			Coding:      "claude-sonnet-4-20250514",
		},
		Project: ProjectConfig{
			GenerationsDir: "./generations",
			MaxIterations:  0,
		},
		Timing: TimingConfig{
			AutoContinueDelaySeconds: 5,
			StaleSweepInterval:       5 * time.Minute,
		},
		Sandbox: SandboxConfig{
			Type:        "container",
			Image:       "autoforge-sandbox:latest",
			Network:     "bridge",
			MemoryLimit: "4g",
			CPULimit:    "2",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
	}
}
