package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JIRA_DEPLOYMENT", "cloud")
	t.Setenv("JIRA_BASE_URL", "https://jira.example.com/")
	t.Setenv("JIRA_USERNAME", "alice")
	t.Setenv("JIRA_API_TOKEN", "pat123")
	t.Setenv("LOG_LEVEL", "info")
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	setRequired(t)
	t.Setenv("JIRA_CACHE_DIR", "/tmp/jira_term-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal("cloud", cfg.Deployment)
	// Trailing slash is trimmed so URL composition stays baseUrl+path.
	assert.Equal("https://jira.example.com", cfg.JiraBaseURL)
	assert.Equal("alice", cfg.JiraUsername)
	assert.Equal("pat123", cfg.JiraAPIToken)
	assert.Equal("/tmp/jira_term-test", cfg.CacheDir)
	assert.Same(cfg, Get())
}

func TestLoadMissingVars(t *testing.T) {
	setRequired(t)
	t.Setenv("JIRA_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JIRA_API_TOKEN")
}
