package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "SERVER_ADDR", "DATABASE_URL", "REDIS_URL", "LINK_CHECK_INTERVAL", "RATE_LIMIT_MAX", "HISTORY_SIZE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.StatsEnabled())
	assert.False(t, cfg.LinkCheckEnabled())
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, "Awaiting your query...", cfg.GreetingMessage)
	assert.Equal(t, "https://www.example.com/", cfg.FormWebsiteURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/schemebot")
	t.Setenv("LINK_CHECK_INTERVAL", "15m")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("HISTORY_SIZE", "not-a-number")

	cfg := Load()

	assert.False(t, cfg.IsDev())
	assert.True(t, cfg.StatsEnabled())
	assert.True(t, cfg.LinkCheckEnabled())
	assert.Equal(t, 15*time.Minute, cfg.LinkCheckInterval)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, 10, cfg.HistorySize, "invalid ints fall back to the default")
}

func TestIsMTLSEnabled(t *testing.T) {
	cfg := &Config{TLSEnabled: true}
	assert.False(t, cfg.IsMTLSEnabled())
	cfg.TLSCAFile = "/etc/ca.pem"
	assert.True(t, cfg.IsMTLSEnabled())
}

func TestLoadYAMLConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  title: Scheme Helpdesk
ui:
  greeting: Ask me anything
  history_size: 3
form:
  website_url: https://apply.example.org/
`), 0o600))

	y, err := LoadYAMLConfigFile(path)
	require.NoError(t, err)
	require.NotNil(t, y)

	cfg := &Config{SiteTitle: "default", SiteTagline: "keep me", HistorySize: 10}
	y.Apply(cfg)

	assert.Equal(t, "Scheme Helpdesk", cfg.SiteTitle)
	assert.Equal(t, "keep me", cfg.SiteTagline)
	assert.Equal(t, "Ask me anything", cfg.GreetingMessage)
	assert.Equal(t, 3, cfg.HistorySize)
	assert.Equal(t, "https://apply.example.org/", cfg.FormWebsiteURL)
}

func TestLoadYAMLConfigFileMissing(t *testing.T) {
	y, err := LoadYAMLConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, y)

	// Applying a nil config is a no-op.
	cfg := &Config{SiteTitle: "x"}
	y.Apply(cfg)
	assert.Equal(t, "x", cfg.SiteTitle)
}

func TestLoadYAMLConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [unterminated"), 0o600))

	_, err := LoadYAMLConfigFile(path)
	assert.Error(t, err)
}
