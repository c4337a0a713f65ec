package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  base_url: https://learn.example.com
  session_token: abc
  timeout: 5s
log:
  level: debug
progress:
  rollback_on_failure: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://learn.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, "abc", cfg.Provider.SessionToken)
	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "/api/roadmap", cfg.Provider.RoadmapPath, "unset fields keep defaults")
	assert.Equal(t, "session", cfg.Provider.SessionCookie)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Progress.RollbackOnFailure)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed")
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PATHWAY_PROVIDER_URL", "http://localhost:9000")
	t.Setenv("PATHWAY_SESSION_TOKEN", "tok")
	t.Setenv("PATHWAY_SESSION_COOKIE", "sid")
	t.Setenv("PATHWAY_LOG_LEVEL", "warn")
	t.Setenv("PATHWAY_LOG_FILE", "/tmp/p.log")
	t.Setenv("PATHWAY_DB", "/tmp/p.db")
	t.Setenv("PATHWAY_METRICS_ADDR", ":9100")
	t.Setenv("PATHWAY_ROLLBACK_ON_FAILURE", "true")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "http://localhost:9000", cfg.Provider.BaseURL)
	assert.Equal(t, "tok", cfg.Provider.SessionToken)
	assert.Equal(t, "sid", cfg.Provider.SessionCookie)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/p.log", cfg.Log.File)
	assert.Equal(t, "/tmp/p.db", cfg.Store.Path)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.True(t, cfg.Progress.RollbackOnFailure)
}

func TestApplyEnv_BadBool(t *testing.T) {
	t.Setenv("PATHWAY_ROLLBACK_ON_FAILURE", "maybe")
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.ApplyEnv(), "PATHWAY_ROLLBACK_ON_FAILURE")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.BaseURL = ""
	cfg.Log.Level = "chatty"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "log format")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "pathway", "config.yaml"), p)
}
