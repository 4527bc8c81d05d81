package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Deployment selects the JIRA dialect ("cloud" or "datacenter")
	Deployment string

	// Jira connection
	JiraBaseURL  string // Required: instance URL, e.g. https://yoursite.atlassian.net
	JiraUsername string // Required: email (cloud) or local username (datacenter)
	JiraAPIToken string // Required: API token (cloud) or password/PAT (datacenter)

	// CacheDir is where the credential cache lives (optional)
	CacheDir string

	// Log level
	LogLevel string // Required: Log level
}

var (
	// instance holds the singleton config instance
	instance *Config
)

// Get returns the singleton config instance
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// Load creates a new Config instance from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Load required values
	requiredVars := map[string]*string{
		"JIRA_DEPLOYMENT": &cfg.Deployment,

		"JIRA_BASE_URL": &cfg.JiraBaseURL,
		"JIRA_USERNAME": &cfg.JiraUsername,

		"JIRA_API_TOKEN": &cfg.JiraAPIToken,

		"LOG_LEVEL": &cfg.LogLevel,
	}

	var missingVars []string
	for env, ptr := range requiredVars {
		*ptr = os.Getenv(env)
		if *ptr == "" {
			missingVars = append(missingVars, env)
		}
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	// The client composes URLs as baseUrl + path
	cfg.JiraBaseURL = strings.TrimRight(cfg.JiraBaseURL, "/")

	cfg.CacheDir = os.Getenv("JIRA_CACHE_DIR")
	if cfg.CacheDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.CacheDir = filepath.Join(dir, "jira_term")
		}
	}

	// Store the instance
	instance = cfg

	return cfg, nil
}
