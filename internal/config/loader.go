package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PhysicsFile is the file name looked up in the config directories.
const PhysicsFile = "physics.yaml"

// LoadPhysics loads the physics tuning table.
// Search order: customPath -> ~/.rover/configs/physics.yaml -> ./configs/physics.yaml -> embedded default
//
// Files are layered over the defaults: a file only needs the planets it changes,
// but every row it lists must be complete.
func LoadPhysics(customPath string) (PhysicsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PhysicsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParsePhysics(data)
		if err != nil {
			return PhysicsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(PhysicsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParsePhysics(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", PhysicsFile)); err == nil {
		if cfg, err := ParsePhysics(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParsePhysics(defaultPhysicsYAML)
	if err != nil {
		return DefaultPhysicsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParsePhysics decodes YAML over the built-in defaults and validates the result.
func ParsePhysics(data []byte) (PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PhysicsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PhysicsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rover", "configs", filename)
}
