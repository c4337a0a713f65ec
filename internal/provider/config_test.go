package provider

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"mock skips checks", func(c *Config) { c.Kind = KindMock; c.BaseURL = "" }, ""},
		{"unknown kind", func(c *Config) { c.Kind = "grpc" }, "unknown roadmap provider"},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base_url is required"},
		{"bad scheme", func(c *Config) { c.BaseURL = "ftp://host" }, "must be http or https"},
		{"relative path", func(c *Config) { c.RoadmapPath = "api/roadmap" }, "roadmap_path"},
		{"cookie name", func(c *Config) { c.SessionToken = "x"; c.SessionCookie = "" }, "session_cookie"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoadmapPath = "x"
	cfg.ProgressPath = "y"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "roadmap_path") || !strings.Contains(err.Error(), "progress_path") {
		t.Fatalf("expected both path errors, got: %v", err)
	}
}
