package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the implicit
// locations are skipped when missing or broken.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from.
func LoadWithSource(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(), localConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultSnakeYAML)
	if err != nil || cfg.Validate() != nil {
		return Default(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// readFile parses a YAML file on top of the defaults, so partial files are valid.
func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}
