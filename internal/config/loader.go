package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "tappy.yaml"

// Load loads and validates the Tappy Block configuration.
// Search order: customPath -> ~/.tappy/configs/tappy.yaml -> ./configs/tappy.yaml -> embedded default.
// Files only need to set the fields they override; the rest keep their defaults.
func Load(customPath string) (Tappy, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Tappy, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTappy(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return DefaultTappy(), fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return Parse(data, path)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTappyYAML, "embedded default")
	if err != nil {
		return DefaultTappy(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
// source names the origin of data in error messages.
func Parse(data []byte, source string) (Tappy, error) {
	cfg := DefaultTappy()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTappy(), fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Tappy) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tappy", "configs", filename)
}
