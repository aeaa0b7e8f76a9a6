package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMusou loads the Musou configuration.
// Search order: customPath -> ~/.musou/configs/musou.yaml -> ./configs/musou.yaml -> embedded default
func LoadMusou(customPath string) (MusouConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MusouConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMusou(data)
		if err != nil {
			return MusouConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("musou.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMusou(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/musou.yaml"); err == nil {
		if cfg, err := parseMusou(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMusou(defaultMusouYAML)
	if err != nil {
		return DefaultMusouConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMusou decodes YAML on top of the defaults, so partial files only
// override the keys they name, and validates the result.
func parseMusou(data []byte) (MusouConfig, error) {
	cfg := DefaultMusouConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MusouConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MusouConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg MusouConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".musou", "configs", filename)
}
