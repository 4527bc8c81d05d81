package main

import (
	"context"
	"log"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"jira_term/internal/config"
	"jira_term/internal/jira"
	"jira_term/internal/logger"
	mcpserver "jira_term/internal/service/mcp-server"
	"jira_term/internal/storage"
)

func main() {
	logLevel := pflag.String("log-level", "", "override LOG_LEVEL from the environment")
	skipValidate := pflag.Bool("skip-validate", false, "skip the startup connection check")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if err := logger.Init(level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	mode, err := jira.ParseMode(cfg.Deployment)
	if err != nil {
		log.Fatalf("Failed to parse deployment mode: %v", err)
	}

	jiraCfg := jira.Config{
		Mode:     mode,
		BaseURL:  cfg.JiraBaseURL,
		Username: cfg.JiraUsername,
		Secret:   cfg.JiraAPIToken,
	}
	client, err := jira.NewClient(jiraCfg)
	if err != nil {
		log.Fatalf("Failed to create Jira client: %v", err)
	}

	zlog := logger.GetLogger()

	if !*skipValidate {
		if err := client.ValidateConnection(context.Background()); err != nil {
			log.Fatalf("Connection check failed: %v", err)
		}
		// Remember the working coordinates for the next session.
		creds := storage.NewFileCredentialStore(cfg.CacheDir)
		if err := creds.Save(storage.Credentials{BaseURL: cfg.JiraBaseURL, Username: cfg.JiraUsername}); err != nil {
			zlog.Warn("failed to save credentials", zap.Error(err))
		}
	}

	resolver := jira.NewEditMetaResolver(client, storage.NewEditMetaCache(), jiraCfg)

	// Create new MCP server
	server, err := mcpserver.NewServer(client, resolver)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Start server
	zlog.Info("starting jira_term MCP server", zap.String("mode", string(mode)), zap.String("baseUrl", cfg.JiraBaseURL))
	if err := mcpserver.Serve(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
