package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jira_term/internal/logger"
)

// prettyPrintJSON formats any value as a pretty-printed JSON string
func prettyPrintJSON(v interface{}) string {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.GetLogger().Error("failed to marshal to JSON", zap.Error(err))
		return fmt.Sprintf("%v", v) // fallback to string representation if marshaling fails
	}
	return string(prettyJSON)
}

// splitFields turns a comma-separated field list into the slice shape
// the client expects, dropping empty segments
func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
