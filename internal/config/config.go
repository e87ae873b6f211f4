// Package config loads nova's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ryan-rushton/nova/internal/logging"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Config represents the complete nova configuration.
type Config struct {
	// Theme is the theme the shell mounts with.
	Theme string `yaml:"theme"`

	// BaseURL is where the suite's tools are hosted; a tool without its own
	// url is reached at BaseURL + route.
	BaseURL string `yaml:"base_url"`

	// RegistryFile replaces the built-in tool table.
	RegistryFile string `yaml:"registry_file"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: string(theme.Default),
		Logging: LoggingConfig{
			Level: "info",
			File:  os.Getenv("NOVA_LOG"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/nova/config.yaml, falling back to
// ~/.config/nova/config.yaml.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nova", "config.yaml")
}

// Load reads a configuration file. When path is empty the default path is
// used and a missing file yields Default(); an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	dec := yaml.NewDecoder(strings.NewReader(expandedData))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.RegistryFile != "" && !filepath.IsAbs(cfg.RegistryFile) {
		cfg.RegistryFile = filepath.Join(filepath.Dir(path), cfg.RegistryFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all configuration fields are valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if _, err := theme.Parse(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url %q must be an absolute URL", c.BaseURL)
		}
	}

	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// ThemeValue returns the parsed theme. Call after Validate.
func (c *Config) ThemeValue() theme.Theme {
	t, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.Default
	}
	return t
}
