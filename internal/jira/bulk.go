package jira

import (
	"context"
	"fmt"
)

// UpdateIssues applies one field update across several issues, one
// request in flight at a time. Each call is awaited before the next
// starts, so the confirmed-success count is exact: on failure the
// returned count is the number of issues updated before the failing
// one, and the remaining keys are never attempted.
func UpdateIssues(ctx context.Context, c Client, issueKeys []string, fields map[string]any) (int, error) {
	for i, key := range issueKeys {
		if err := c.UpdateIssue(ctx, key, fields); err != nil {
			return i, fmt.Errorf("failed to update %s: %w", key, err)
		}
	}
	return len(issueKeys), nil
}
