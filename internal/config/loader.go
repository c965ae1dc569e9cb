package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadShooter loads the space shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.{yaml,toml} ->
// ./configs/shooter.{yaml,toml} -> embedded default.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Start from defaults so partial files only override what they mention
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	for _, name := range []string{"shooter.yaml", "shooter.toml"} {
		// Try user config directory
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if data, err := os.ReadFile(userCfgPath); err == nil {
				if err := decode(userCfgPath, data, &cfg); err == nil {
					cfg.Normalize()
					return cfg, nil
				}
				cfg = DefaultShooterConfig()
			}
		}

		// Try local configs directory
		localPath := filepath.Join("configs", name)
		if data, err := os.ReadFile(localPath); err == nil {
			if err := decode(localPath, data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
			cfg = DefaultShooterConfig()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// decode picks a decoder by file extension. Anything that is not .toml is YAML.
func decode(path string, data []byte, cfg *ShooterConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
