package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"jira_term/internal/jira"
)

// NewServer creates a new MCP server instance backed by the given Jira
// client and edit-metadata resolver
func NewServer(client jira.Client, resolver *jira.EditMetaResolver) (*server.MCPServer, error) {
	// Create MCP server
	s := server.NewMCPServer(
		"jira term",
		"1.0.0",
	)

	tools := &jiraTools{
		client:   client,
		resolver: resolver,
	}

	// Add Jira tools
	if err := registerJiraTools(s, tools); err != nil {
		return nil, err
	}

	return s, nil
}

// Serve starts the MCP server
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
