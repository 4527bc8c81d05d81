package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"jira_term/internal/model"
)

// cloudClient speaks the Atlassian-hosted dialect: REST API v3, GET
// search with query parameters, envelope-wrapped project listing.
type cloudClient struct {
	apiClient
}

var _ Client = (*cloudClient)(nil)

func newCloudClient(cfg Config) *cloudClient {
	return &cloudClient{newAPIClient(cfg, "/rest/api/3")}
}

// cloud project search caps at one page of this size; anything beyond
// it is omitted. Known limitation, kept deliberately.
const cloudProjectPageSize = 100

// GetProjects requests a single capped page from the paginated
// project-search endpoint and unwraps its values envelope.
func (c *cloudClient) GetProjects(ctx context.Context) ([]model.Project, error) {
	query := url.Values{}
	query.Set("maxResults", fmt.Sprint(cloudProjectPageSize))

	var page struct {
		Values []model.Project `json:"values"`
	}
	if err := c.get(ctx, "/project/search", query, &page); err != nil {
		return nil, err
	}
	return page.Values, nil
}

// SearchIssues runs a JQL search via GET with query-string parameters.
func (c *cloudClient) SearchIssues(ctx context.Context, opts model.SearchOptions) (*model.SearchResponse, error) {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	query := url.Values{}
	query.Set("jql", opts.JQL)
	query.Set("startAt", fmt.Sprint(opts.StartAt))
	query.Set("maxResults", fmt.Sprint(maxResults))
	query.Set("fields", strings.Join(fields, ","))

	var resp model.SearchResponse
	if err := c.get(ctx, "/search", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *cloudClient) GetProjectIssues(ctx context.Context, projectKey string, opts model.SearchOptions) (*model.SearchResponse, error) {
	return projectIssues(ctx, c, projectKey, opts)
}

// GetFieldOptions knows how to enumerate severity levels; other field
// names have no generic discovery path and yield an empty list.
func (c *cloudClient) GetFieldOptions(ctx context.Context, fieldName, projectKey string) ([]model.FieldOption, error) {
	if !strings.EqualFold(fieldName, "severity") {
		return []model.FieldOption{}, nil
	}

	fieldID, err := c.GetFieldID(ctx, fieldName)
	if err != nil || fieldID == "" {
		return severityFallback(), nil
	}

	var page struct {
		Values []model.FieldOption `json:"values"`
	}
	if err := c.get(ctx, "/field/"+url.PathEscape(fieldID)+"/context/default/option", nil, &page); err != nil {
		c.log.Debug("severity option fetch failed, using fallback", zap.Error(err))
		return severityFallback(), nil
	}
	return page.Values, nil
}

// severityFallback returns a copy so callers cannot mutate the table.
func severityFallback() []model.FieldOption {
	return append([]model.FieldOption(nil), SeverityFallback...)
}
