package provider

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Provider kinds.
const (
	KindHTTP = "http"
	KindMock = "mock"
)

// Config holds roadmap provider configuration.
type Config struct {
	// Kind selects the implementation. Values: "http", "mock".
	Kind string `yaml:"kind"`

	// BaseURL is the provider origin, e.g. "https://learn.example.com".
	BaseURL      string `yaml:"base_url"`
	RoadmapPath  string `yaml:"roadmap_path"`  // Default: "/api/roadmap"
	ProgressPath string `yaml:"progress_path"` // Default: "/api/roadmap/progress"

	// SessionCookie names the cookie that carries SessionToken.
	SessionCookie string `yaml:"session_cookie"`
	SessionToken  string `yaml:"session_token"`

	// Timeout bounds a single request. Zero leaves the http.Client default.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Kind:          KindHTTP,
		BaseURL:       "http://127.0.0.1:8089",
		RoadmapPath:   "/api/roadmap",
		ProgressPath:  "/api/roadmap/progress",
		SessionCookie: "session",
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Kind {
	case KindMock:
		return nil
	case KindHTTP:
	default:
		return fmt.Errorf("unknown roadmap provider: %q", c.Kind)
	}

	if c.BaseURL == "" {
		errs = append(errs, errors.New("provider base_url is required"))
	} else if u, err := url.Parse(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("provider base_url: %w", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("provider base_url must be http or https, got %q", c.BaseURL))
	}

	if !strings.HasPrefix(c.RoadmapPath, "/") {
		errs = append(errs, fmt.Errorf("provider roadmap_path must start with '/': %q", c.RoadmapPath))
	}
	if !strings.HasPrefix(c.ProgressPath, "/") {
		errs = append(errs, fmt.Errorf("provider progress_path must start with '/': %q", c.ProgressPath))
	}
	if c.SessionToken != "" && c.SessionCookie == "" {
		errs = append(errs, errors.New("provider session_cookie is required when session_token is set"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("provider timeout must not be negative: %s", c.Timeout))
	}

	return errors.Join(errs...)
}
