// Package config loads pathway configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathway/internal/provider"
)

// Config is the top-level config.yaml.
type Config struct {
	Provider provider.Config `yaml:"provider"`
	Log      LogConfig       `yaml:"log"`
	Store    StoreConfig     `yaml:"store"`
	Progress ProgressConfig  `yaml:"progress"`
	Metrics  MetricsConfig   `yaml:"metrics"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // "" uses the default state dir
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// StoreConfig locates the local journal.
type StoreConfig struct {
	Path string `yaml:"path"` // "" uses store.DefaultDBPath
}

// ProgressConfig tunes the progress mutator.
type ProgressConfig struct {
	// RollbackOnFailure restores a step's previous value when the
	// provider rejects a write. Off by default.
	RollbackOnFailure bool `yaml:"rollback_on_failure"`
}

// MetricsConfig exposes client metrics over HTTP when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: provider.DefaultConfig(),
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pathway/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pathway", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PATHWAY_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PATHWAY_PROVIDER_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("PATHWAY_SESSION_TOKEN"); v != "" {
		c.Provider.SessionToken = v
	}
	if v := os.Getenv("PATHWAY_SESSION_COOKIE"); v != "" {
		c.Provider.SessionCookie = v
	}
	if v := os.Getenv("PATHWAY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PATHWAY_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("PATHWAY_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("PATHWAY_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("PATHWAY_ROLLBACK_ON_FAILURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PATHWAY_ROLLBACK_ON_FAILURE: %w", err)
		}
		c.Progress.RollbackOnFailure = b
	}
	return nil
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	if err := c.Provider.Validate(); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		errs = append(errs, errors.New("log rotation limits must not be negative"))
	}

	return errors.Join(errs...)
}
