// Package config loads the optional YAML site configuration file.
// Every field mirrors a CLI flag; flags win when both are set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-ssg/internal/fileutil"
	"github.com/alnah/go-ssg/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config path cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds site generation settings read from a YAML file.
type Config struct {
	// Target is the site root directory (or single file when File is set).
	Target string `yaml:"target"`
	// File switches to single-file mode.
	File bool `yaml:"file"`
	// Output is the output root directory.
	Output string `yaml:"output"`
	// Clean removes the output root before generating.
	Clean bool `yaml:"clean"`
	// WebPrefix is prepended to all generated internal links.
	WebPrefix string `yaml:"webPrefix"`
	// Template selects a built-in template by name.
	Template string `yaml:"template"`
	// Minify compacts generated HTML.
	Minify bool `yaml:"minify"`
	// Workers bounds the worker groups (0 = auto).
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and parses a config file from an explicit path.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigName
	}
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// SearchPaths returns the default config file locations, in priority
// order: working directory first, then the user config directory.
func SearchPaths() []string {
	paths := []string{"ssg.yaml", ".ssg.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "go-ssg", "config.yaml"))
	}
	return paths
}

// Discover returns the first existing default config path, or "".
func Discover() string {
	for _, p := range SearchPaths() {
		if fileutil.FileExists(p) {
			return p
		}
	}
	return ""
}
