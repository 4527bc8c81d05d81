package jira

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"jira_term/internal/model"
)

// Operations below are wire-identical on both dialects apart from the
// version prefix, which apiClient already carries.

// ValidateConnection fetches the current user and discards the result.
func (c *apiClient) ValidateConnection(ctx context.Context) error {
	var u model.User
	return c.get(ctx, "/myself", nil, &u)
}

// UpdateIssue applies a partial field update. The server replies 204 on
// success, so there is nothing to decode.
func (c *apiClient) UpdateIssue(ctx context.Context, issueKey string, fields map[string]any) error {
	body := map[string]any{"fields": fields}
	return c.put(ctx, "/issue/"+url.PathEscape(issueKey), body, nil)
}

// GetFields returns the full field catalog.
func (c *apiClient) GetFields(ctx context.Context) ([]model.Field, error) {
	var fields []model.Field
	if err := c.get(ctx, "/field", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// GetFieldID resolves a field name to its id by scanning the catalog
// case-insensitively. Resolution is best-effort: a failed catalog fetch
// is reported as "" rather than an error, because known fields have
// hardcoded fallbacks downstream.
func (c *apiClient) GetFieldID(ctx context.Context, fieldName string) (string, error) {
	fields, err := c.GetFields(ctx)
	if err != nil {
		c.log.Debug("field catalog fetch failed", zap.String("field", fieldName), zap.Error(err))
		return "", nil
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, fieldName) {
			return f.ID, nil
		}
	}
	return "", nil
}

// GetIssueEditMeta returns the edit-metadata document for the issue's
// current project and issue type.
func (c *apiClient) GetIssueEditMeta(ctx context.Context, issueKey string) (*model.EditMeta, error) {
	var meta model.EditMeta
	if err := c.get(ctx, "/issue/"+url.PathEscape(issueKey)+"/editmeta", nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
