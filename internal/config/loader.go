package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "colorcrush.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.colorcrush/configs/colorcrush.yaml ->
// ./configs/colorcrush.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is
// validated; an invalid file is an error rather than a silent fallback.
func Load(customPath string) (ColorCrushConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorCrushConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Then the user and local config directories; unreadable or broken
	// files there are skipped.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultColorCrushYAML)
	if err != nil {
		return DefaultColorCrushConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// parse decodes data on top of the hardcoded defaults.
func parse(data []byte) (ColorCrushConfig, error) {
	cfg := DefaultColorCrushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorcrush", "configs", filename)
}
