package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTown loads town configuration.
// Search order: customPath -> ~/.town/configs/town.yaml -> ./configs/town.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadTown(customPath string) (TownConfig, error) {
	cfg := DefaultTownConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("town.yaml"), filepath.Join("configs", "town.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	var embedded TownConfig
	if err := yaml.Unmarshal(defaultTownYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultTownConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (TownConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TownConfig{}, false
	}
	cfg := DefaultTownConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TownConfig{}, false
	}
	if cfg.Validate() != nil {
		return TownConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".town", "configs", filename)
}
