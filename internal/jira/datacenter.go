package jira

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"jira_term/internal/model"
)

// dataCenterClient speaks the self-hosted dialect: REST API v2, bare
// project array, POST-only search with offset pagination.
type dataCenterClient struct {
	apiClient
}

var _ Client = (*dataCenterClient)(nil)

func newDataCenterClient(cfg Config) *dataCenterClient {
	return &dataCenterClient{newAPIClient(cfg, "/rest/api/2")}
}

// GetProjects hits the legacy endpoint, which returns a flat array with
// no pagination wrapper.
func (c *dataCenterClient) GetProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.get(ctx, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// searchRequest is the v2 POST search body.
type searchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields,omitempty"`
}

// SearchIssues runs a JQL search via POST; this API generation has no
// token-based paging.
func (c *dataCenterClient) SearchIssues(ctx context.Context, opts model.SearchOptions) (*model.SearchResponse, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	body := searchRequest{
		JQL:        opts.JQL,
		StartAt:    opts.StartAt,
		MaxResults: maxResults,
		Fields:     opts.Fields,
	}

	var resp model.SearchResponse
	if err := c.post(ctx, "/search", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *dataCenterClient) GetProjectIssues(ctx context.Context, projectKey string, opts model.SearchOptions) (*model.SearchResponse, error) {
	return projectIssues(ctx, c, projectKey, opts)
}

// GetFieldOptions reads severity levels out of the createmeta
// expansion; any miss or failure degrades to the fixed table. Other
// field names yield an empty list.
func (c *dataCenterClient) GetFieldOptions(ctx context.Context, fieldName, projectKey string) ([]model.FieldOption, error) {
	if !strings.EqualFold(fieldName, "severity") {
		return []model.FieldOption{}, nil
	}

	query := url.Values{}
	query.Set("expand", "projects.issuetypes.fields")
	if projectKey != "" {
		query.Set("projectKeys", projectKey)
	}

	var meta model.CreateMeta
	if err := c.get(ctx, "/issue/createmeta", query, &meta); err != nil {
		c.log.Debug("createmeta fetch failed, using fallback", zap.Error(err))
		return severityFallback(), nil
	}

	for _, project := range meta.Projects {
		for _, issueType := range project.IssueTypes {
			for _, field := range issueType.Fields {
				if strings.EqualFold(field.Name, fieldName) && len(field.AllowedValues) > 0 {
					return field.AllowedValues, nil
				}
			}
		}
	}
	return severityFallback(), nil
}
