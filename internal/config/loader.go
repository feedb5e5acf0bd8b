package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.cloctop.yaml",               // Project-specific config (highest priority)
	"~/.config/cloctop/config.yaml", // User config
	"/etc/cloctop/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.cloctop.yaml
// 4. ~/.config/cloctop/config.yaml
// 5. /etc/cloctop/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest first)
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					// Log warning but continue with other config files
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile merges a YAML config file over the current config values
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path comes from the fixed search list or has passed validateConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// applyEnvOverrides applies CLOCTOP_* environment variables
func (l *Loader) applyEnvOverrides(config *Config) error {
	if v := os.Getenv("CLOCTOP_BINARY"); v != "" {
		config.Cloc.Binary = v
	}
	if v := os.Getenv("CLOCTOP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CLOCTOP_TIMEOUT %q: %w", v, err)
		}
		config.Cloc.Timeout = d
	}
	if v := os.Getenv("CLOCTOP_GROUP"); v != "" {
		config.UI.DefaultGroup = strings.ToLower(v)
	}
	if v := os.Getenv("CLOCTOP_COLOR"); v != "" {
		config.UI.ColorMode = strings.ToLower(v)
	}
	if v := os.Getenv("CLOCTOP_FORMAT"); v != "" {
		config.Output.DefaultFormat = strings.ToLower(v)
	}
	return nil
}

// validateConfigPath validates that an explicitly passed config path is safe
// to read.
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("config file cannot live in a system pseudo-filesystem")
	}

	return nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// fileExists checks whether path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
