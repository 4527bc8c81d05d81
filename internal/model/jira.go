package model

// User represents a Jira user. Cloud identifies users by AccountID,
// Data Center by the local Name; a record carries whichever its
// deployment provides.
type User struct {
	AccountID    string `json:"accountId,omitempty"`
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Active       bool   `json:"active"`
}

// Project represents a Jira project
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Self string `json:"self,omitempty"`
}

// Named is a generic type for Jira entities that have an ID and Name
type Named struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// StatusCategory represents a Jira status category
type StatusCategory struct {
	ID   int    `json:"id,omitempty"`
	Key  string `json:"key,omitempty"`
	Name string `json:"name,omitempty"`
}

// Status represents the status of a Jira issue
type Status struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name"`
	StatusCategory *StatusCategory `json:"statusCategory,omitempty"`
}

// IssueFields represents the fields in a Jira issue. Dates are the
// server's ISO-8601 strings, passed through unmodified.
type IssueFields struct {
	Summary   string   `json:"summary"`
	Status    *Status  `json:"status,omitempty"`
	Created   string   `json:"created,omitempty"`
	Updated   string   `json:"updated,omitempty"`
	Assignee  *User    `json:"assignee,omitempty"`
	Reporter  *User    `json:"reporter,omitempty"`
	Priority  *Named   `json:"priority,omitempty"`
	IssueType *Named   `json:"issuetype,omitempty"`
	Project   *Project `json:"project,omitempty"`
}

// Issue represents a Jira issue response
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self,omitempty"`
	Fields IssueFields `json:"fields"`
}

// SearchOptions configures a JQL search request
type SearchOptions struct {
	JQL        string
	StartAt    int
	MaxResults int
	Fields     []string
}

// SearchResponse represents the response from a Jira search
type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// FieldSchema represents the schema of a field
type FieldSchema struct {
	Type     string `json:"type,omitempty"`
	System   string `json:"system,omitempty"`
	Custom   string `json:"custom,omitempty"`
	CustomID int    `json:"customId,omitempty"`
}

// Field represents a Jira field (standard or custom) from the field catalog
type Field struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Custom bool        `json:"custom,omitempty"`
	Schema FieldSchema `json:"schema,omitempty"`
}

// FieldOption is a selectable value for an enumerated field. Identity
// is ID, display is Value.
type FieldOption struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

// FieldMeta describes one editable field in an edit/create metadata document
type FieldMeta struct {
	Name          string        `json:"name"`
	Required      bool          `json:"required"`
	Operations    []string      `json:"operations,omitempty"`
	AllowedValues []FieldOption `json:"allowedValues,omitempty"`
	Schema        FieldSchema   `json:"schema,omitempty"`
}

// EditMeta is the server's edit-metadata document for an issue,
// keyed by field id.
type EditMeta struct {
	Fields map[string]FieldMeta `json:"fields"`
}

// CreateMetaIssueType represents issue type info in create metadata
type CreateMetaIssueType struct {
	Name   string               `json:"name"`
	Fields map[string]FieldMeta `json:"fields,omitempty"`
}

// CreateMetaProject represents project info in create metadata
type CreateMetaProject struct {
	Key        string                `json:"key"`
	Name       string                `json:"name,omitempty"`
	IssueTypes []CreateMetaIssueType `json:"issuetypes"`
}

// CreateMeta is the createmeta expansion response used by Data Center
// for field option discovery.
type CreateMeta struct {
	Projects []CreateMetaProject `json:"projects"`
}
