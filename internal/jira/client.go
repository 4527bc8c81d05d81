package jira

import (
	"context"
	"fmt"
	"strings"

	"jira_term/internal/model"
)

// Mode selects which JIRA dialect a client speaks.
type Mode string

const (
	// ModeCloud targets Atlassian-hosted instances (REST API v3).
	ModeCloud Mode = "cloud"
	// ModeDataCenter targets self-hosted instances (REST API v2).
	ModeDataCenter Mode = "datacenter"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cloud":
		return ModeCloud, nil
	case "datacenter", "data-center", "onprem", "on-premise", "server":
		return ModeDataCenter, nil
	default:
		return "", fmt.Errorf("unknown deployment mode: %q", s)
	}
}

// Config holds the connection coordinates for one JIRA instance.
// Secret is an API token on cloud and a password or personal access
// token on Data Center; the client only ever feeds it into Basic auth.
type Config struct {
	Mode     Mode
	BaseURL  string
	Username string
	Secret   string
}

// DefaultSearchFields is the field set requested when a search caller
// does not name one.
var DefaultSearchFields = []string{"summary", "status", "created"}

// DefaultMaxResults is the page size used when a search caller does not
// set one.
const DefaultMaxResults = 50

// SeverityFallback is the fixed severity scale used when the live
// option lookup fails on either dialect.
var SeverityFallback = []model.FieldOption{
	{ID: "1", Value: "Critical"},
	{ID: "2", Value: "High"},
	{ID: "3", Value: "Medium"},
	{ID: "4", Value: "Low"},
	{ID: "5", Value: "Trivial"},
}

// Client is the mode-agnostic capability contract. Both dialects
// satisfy it; calling code never branches on deployment mode.
type Client interface {
	// ValidateConnection issues a lightweight authenticated call to
	// confirm credentials and reachability. Success is silent.
	ValidateConnection(ctx context.Context) error

	// GetProjects returns the projects visible to the credential as a
	// flat list, regardless of how the underlying API paginates.
	GetProjects(ctx context.Context) ([]model.Project, error)

	// SearchIssues executes a JQL search with pagination options.
	SearchIssues(ctx context.Context, opts model.SearchOptions) (*model.SearchResponse, error)

	// GetProjectIssues searches one project's issues, newest first,
	// filling in the default field set when the caller names none.
	GetProjectIssues(ctx context.Context, projectKey string, opts model.SearchOptions) (*model.SearchResponse, error)

	// UpdateIssue applies a partial field update. Values are literal
	// strings or {id: optionId} maps for enumerated fields.
	UpdateIssue(ctx context.Context, issueKey string, fields map[string]any) error

	// GetFieldOptions returns the allowed values for a named field.
	// Unrecognized field names yield an empty list, not an error.
	GetFieldOptions(ctx context.Context, fieldName, projectKey string) ([]model.FieldOption, error)

	// GetFieldID resolves a human field name to its internal id,
	// case-insensitively. Returns "" when there is no match; lookup
	// failures are treated as no match.
	GetFieldID(ctx context.Context, fieldName string) (string, error)

	// GetFields returns the full field catalog as-is.
	GetFields(ctx context.Context) ([]model.Field, error)

	// GetIssueEditMeta returns the server's edit-metadata document for
	// the issue's current project and issue type.
	GetIssueEditMeta(ctx context.Context, issueKey string) (*model.EditMeta, error)
}

// NewClient builds the dialect implementation for cfg.Mode. The
// configuration is copied at construction; later mutation of cfg does
// not affect the returned client.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Mode {
	case ModeCloud:
		return newCloudClient(cfg), nil
	case ModeDataCenter:
		return newDataCenterClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown deployment mode: %q", cfg.Mode)
	}
}

// projectIssues builds the per-project search shared by both dialects.
// The project key is embedded into JQL verbatim; JIRA project keys are
// server-constrained to uppercase alphanumerics.
func projectIssues(ctx context.Context, c Client, projectKey string, opts model.SearchOptions) (*model.SearchResponse, error) {
	opts.JQL = fmt.Sprintf("project = %s ORDER BY created DESC", projectKey)
	if len(opts.Fields) == 0 {
		opts.Fields = DefaultSearchFields
	}
	return c.SearchIssues(ctx, opts)
}
