package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jira_term/internal/jira"
	"jira_term/internal/model"
)

// jiraTools holds the collaborators the tool handlers call into
type jiraTools struct {
	client   jira.Client
	resolver *jira.EditMetaResolver
}

// registerJiraTools registers all Jira-related tools with the server
func registerJiraTools(s *server.MCPServer, t *jiraTools) error {
	// Validate connection tool
	validateTool := mcp.NewTool("validate_connection",
		mcp.WithDescription("Check that the configured Jira credentials work"),
	)

	// List projects tool
	projectsTool := mcp.NewTool("get_projects",
		mcp.WithDescription("List the Jira projects visible to the configured credential"),
	)

	// Search Jira tool
	searchJiraTool := mcp.NewTool("search_jira",
		mcp.WithDescription("Search Jira issues using JQL"),
		mcp.WithString("jql",
			mcp.Required(),
			mcp.Description("JQL query string"),
		),
		mcp.WithString("fields",
			mcp.Description("Comma-separated fields to return in the results"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
		),
		mcp.WithNumber("start_at",
			mcp.Description("Offset of the first result to return"),
		),
	)

	// Project issues tool
	projectIssuesTool := mcp.NewTool("get_project_issues",
		mcp.WithDescription("List a project's issues, newest first"),
		mcp.WithString("project_key",
			mcp.Required(),
			mcp.Description("Jira project key (e.g., 'TVP')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
		),
	)

	// Update issue tool
	updateIssueTool := mcp.NewTool("update_issue",
		mcp.WithDescription("Apply a partial field update to a Jira issue"),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("Jira issue key (e.g., 'TVP-123')"),
		),
		mcp.WithString("fields",
			mcp.Required(),
			mcp.Description("JSON object mapping field ids to new values, e.g. {\"summary\":\"New title\"} or {\"customfield_10002\":{\"id\":\"1\"}}"),
		),
	)

	// Field options tool
	fieldOptionsTool := mcp.NewTool("get_field_options",
		mcp.WithDescription("List the allowed values for a named field (e.g., 'severity')"),
		mcp.WithString("field_name",
			mcp.Required(),
			mcp.Description("Human-readable field name"),
		),
		mcp.WithString("project_key",
			mcp.Description("Optional project key to scope the lookup"),
		),
	)

	// Edit metadata tool
	editFieldsTool := mcp.NewTool("get_edit_fields",
		mcp.WithDescription("Describe which fields are editable on an issue, with allowed values"),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("Jira issue key (e.g., 'TVP-123')"),
		),
		mcp.WithString("project_key",
			mcp.Required(),
			mcp.Description("Project key the issue belongs to"),
		),
		mcp.WithString("issue_type",
			mcp.Required(),
			mcp.Description("Issue type name (e.g., 'Bug')"),
		),
	)

	// Register tools with handlers
	s.AddTool(validateTool, t.handleValidateConnection)
	s.AddTool(projectsTool, t.handleGetProjects)
	s.AddTool(searchJiraTool, t.handleSearchJira)
	s.AddTool(projectIssuesTool, t.handleGetProjectIssues)
	s.AddTool(updateIssueTool, t.handleUpdateIssue)
	s.AddTool(fieldOptionsTool, t.handleGetFieldOptions)
	s.AddTool(editFieldsTool, t.handleGetEditFields)

	return nil
}

func (t *jiraTools) handleValidateConnection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.client.ValidateConnection(ctx); err != nil {
		return nil, fmt.Errorf("connection check failed: %w", err)
	}
	return mcp.NewToolResultText("connection ok"), nil
}

func (t *jiraTools) handleGetProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := t.client.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return mcp.NewToolResultText(prettyPrintJSON(projects)), nil
}

func (t *jiraTools) handleSearchJira(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jql, ok := request.Params.Arguments["jql"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jql parameter")
	}

	opts := model.SearchOptions{JQL: jql}
	if f, ok := request.Params.Arguments["fields"].(string); ok && f != "" {
		opts.Fields = splitFields(f)
	}
	if m, ok := request.Params.Arguments["max_results"].(float64); ok {
		opts.MaxResults = int(m)
	}
	if s, ok := request.Params.Arguments["start_at"].(float64); ok {
		opts.StartAt = int(s)
	}

	result, err := t.client.SearchIssues(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return mcp.NewToolResultText(prettyPrintJSON(result)), nil
}

func (t *jiraTools) handleGetProjectIssues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, ok := request.Params.Arguments["project_key"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid project_key parameter")
	}

	opts := model.SearchOptions{}
	if m, ok := request.Params.Arguments["max_results"].(float64); ok {
		opts.MaxResults = int(m)
	}

	result, err := t.client.GetProjectIssues(ctx, projectKey, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list project issues: %w", err)
	}
	return mcp.NewToolResultText(prettyPrintJSON(result)), nil
}

func (t *jiraTools) handleUpdateIssue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, ok := request.Params.Arguments["issue_key"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid issue_key parameter")
	}
	fieldsJSON, ok := request.Params.Arguments["fields"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid fields parameter")
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return nil, fmt.Errorf("fields must be a JSON object: %w", err)
	}

	if err := t.client.UpdateIssue(ctx, issueKey, fields); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", issueKey, err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated %s", issueKey)), nil
}

func (t *jiraTools) handleGetFieldOptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fieldName, ok := request.Params.Arguments["field_name"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid field_name parameter")
	}
	projectKey, _ := request.Params.Arguments["project_key"].(string)

	options, err := t.client.GetFieldOptions(ctx, fieldName, projectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list field options: %w", err)
	}
	return mcp.NewToolResultText(prettyPrintJSON(options)), nil
}

func (t *jiraTools) handleGetEditFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, ok := request.Params.Arguments["issue_key"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid issue_key parameter")
	}
	projectKey, ok := request.Params.Arguments["project_key"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid project_key parameter")
	}
	issueType, ok := request.Params.Arguments["issue_type"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid issue_type parameter")
	}

	fields, err := t.resolver.Fields(ctx, issueKey, projectKey, issueType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve edit metadata: %w", err)
	}
	return mcp.NewToolResultText(prettyPrintJSON(fields)), nil
}
