package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "blockout.yaml"

// LoadBlockout loads blockout configuration.
// Search order: customPath -> ~/.blockout/configs/blockout.yaml -> ./configs/blockout.yaml -> embedded default
//
// Documents are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadBlockout(customPath string) (BlockoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlockoutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlockoutYAML)
	if err != nil {
		return DefaultBlockoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (BlockoutConfig, error) {
	cfg := DefaultBlockoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockout", "configs", filename)
}

// Validate checks that the configuration describes a usable arena.
func (c BlockoutConfig) Validate() error {
	var errs []error

	if c.Collision.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("collision.cell_size must be positive, got %d", c.Collision.CellSize))
	}
	if c.Collision.StepSize <= 0 {
		errs = append(errs, fmt.Errorf("collision.step_size must be positive, got %d", c.Collision.StepSize))
	}
	if c.Collision.LooseInset < 0 || c.Collision.CellTolerance < 0 {
		errs = append(errs, errors.New("collision tolerances must not be negative"))
	}
	if c.Gates.AlignTolerance < 0 {
		errs = append(errs, fmt.Errorf("gates.align_tolerance must not be negative, got %d", c.Gates.AlignTolerance))
	}
	if c.Arena.MaxX <= c.Arena.MinX || c.Arena.MaxY <= c.Arena.MinY {
		errs = append(errs, fmt.Errorf("arena bounds are inverted: x %d..%d, y %d..%d",
			c.Arena.MinX, c.Arena.MaxX, c.Arena.MinY, c.Arena.MaxY))
	}
	if c.Exit.Speed <= 0 {
		errs = append(errs, fmt.Errorf("exit.speed must be positive, got %d", c.Exit.Speed))
	}
	if c.Exit.Jitter < 0 {
		errs = append(errs, fmt.Errorf("exit.jitter must not be negative, got %d", c.Exit.Jitter))
	}
	if c.Session.TimeLimitSecs < 0 {
		errs = append(errs, fmt.Errorf("session.time_limit_secs must not be negative, got %d", c.Session.TimeLimitSecs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
