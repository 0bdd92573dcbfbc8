package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// appDir is the per-user configuration directory under $HOME.
const appDir = ".skyraid"

// LoadShooter loads configuration for a shooter variant.
// Search order: customPath -> ~/.skyraid/configs/<id>.{yaml,toml} ->
// ./configs/<id>.{yaml,toml} -> embedded default.
// Files are decoded on top of the variant defaults, so partial files work.
func LoadShooter(gameID, customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultFor(gameID)
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, gameID+".yaml"),
			filepath.Join(dir, gameID+".toml"))
	}
	candidates = append(candidates,
		filepath.Join("configs", gameID+".yaml"),
		filepath.Join("configs", gameID+".toml"))

	// Unreadable or invalid files in the search path are skipped
	for _, path := range candidates {
		cfg := DefaultFor(gameID)
		if err := decodeFile(path, &cfg); err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(gameID), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// decodeFile reads path into cfg, choosing the decoder by extension.
func decodeFile(path string, cfg *ShooterConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// userConfigDir returns ~/.skyraid/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs")
}
