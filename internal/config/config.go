package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Cloc    ClocConfig   `yaml:"cloc" json:"cloc"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Output  OutputConfig `yaml:"output" json:"output"`
}

// ClocConfig configures the external cloc invocation
type ClocConfig struct {
	Binary     string        `yaml:"binary" json:"binary"`           // cloc binary name or path
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`         // per-run timeout
	ExtraFlags []string      `yaml:"extra_flags" json:"extra_flags"` // appended to every invocation
}

// UIConfig configures the interactive table
type UIConfig struct {
	Fullscreen   bool   `yaml:"fullscreen" json:"fullscreen"`       // default display mode
	DefaultGroup string `yaml:"default_group" json:"default_group"` // file|language|directory
	ColorMode    string `yaml:"color_mode" json:"color_mode"`       // auto|always|never
}

// OutputConfig configures the non-interactive report command
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|csv
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Cloc: ClocConfig{
			Binary:  "cloc",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			Fullscreen:   false,
			DefaultGroup: "file",
			ColorMode:    "auto",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cloc.Binary == "" {
		return fmt.Errorf("cloc binary must not be empty")
	}
	if c.Cloc.Timeout <= 0 {
		return fmt.Errorf("cloc timeout must be positive, got %v", c.Cloc.Timeout)
	}

	validGroups := map[string]bool{"file": true, "language": true, "directory": true}
	if !validGroups[c.UI.DefaultGroup] {
		return fmt.Errorf("invalid default group: %s (must be one of: file, language, directory)", c.UI.DefaultGroup)
	}

	validColorModes := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColorModes[c.UI.ColorMode] {
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
	}

	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[c.Output.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s (must be one of: text, json, csv)", c.Output.DefaultFormat)
	}

	return nil
}
