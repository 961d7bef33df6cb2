package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only has to name the
// values it changes. The result is validated before it is returned.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, source, err := loadSnake(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func loadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, "configs/snake.yaml", nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), "defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "defaults", nil
}

// decode unmarshals YAML over the hardcoded defaults.
func decode(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
