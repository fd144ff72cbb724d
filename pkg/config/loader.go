package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads autoforge.yaml from path, expands environment variables,
// merges the result over built-in defaults, and validates. A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			if err := validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = ExpandEnv(data)

	// Unmarshal over the defaults so unset YAML fields keep their
	// built-in values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"path", path,
		"sandbox_type", cfg.Sandbox.Type,
		"initializer_model", cfg.Models.Initializer,
		"coding_model", cfg.Models.Coding)

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Models.Initializer == "" {
		return NewValidationError("models.initializer", ErrInvalidValue)
	}
	if cfg.Models.Coding == "" {
		return NewValidationError("models.coding", ErrInvalidValue)
	}
	switch cfg.Sandbox.Type {
	case "container", "local":
	default:
		return NewValidationError("sandbox.type",
			fmt.Errorf("%w: %q (want container or local)", ErrInvalidValue, cfg.Sandbox.Type))
	}
	if cfg.Sandbox.Type == "container" && cfg.Sandbox.Image == "" {
		return NewValidationError("sandbox.image", ErrInvalidValue)
	}
	if cfg.Project.MaxIterations < 0 {
		return NewValidationError("project.max_iterations",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if cfg.Timing.AutoContinueDelaySeconds < 0 {
		return NewValidationError("timing.auto_continue_delay_seconds",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return NewValidationError("server.port",
			fmt.Errorf("%w: %d", ErrInvalidValue, cfg.Server.Port))
	}
	return nil
}
