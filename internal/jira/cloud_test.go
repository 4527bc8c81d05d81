package jira

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira_term/internal/model"
)

func TestCloudGetProjects(t *testing.T) {
	assert := assert.New(t)
	var gotPath, gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMax = r.URL.Query().Get("maxResults")
		w.Write([]byte(`{"values":[{"id":"10000","key":"DEMO","name":"Demo"},{"id":"10001","key":"OPS","name":"Operations"}]}`))
	}))
	defer srv.Close()

	projects, err := newTestCloud(srv.URL).GetProjects(context.Background())
	require.NoError(t, err)

	assert.Equal("/rest/api/3/project/search", gotPath)
	assert.Equal("100", gotMax)
	require.Len(t, projects, 2)
	assert.Equal("DEMO", projects[0].Key)
	assert.Equal("Operations", projects[1].Name)
}

func TestCloudSearchIssuesQueryParams(t *testing.T) {
	assert := assert.New(t)
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"jql":        r.URL.Query().Get("jql"),
			"startAt":    r.URL.Query().Get("startAt"),
			"maxResults": r.URL.Query().Get("maxResults"),
			"fields":     r.URL.Query().Get("fields"),
		}
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/rest/api/3/search", r.URL.Path)
		w.Write([]byte(`{"startAt":5,"maxResults":10,"total":42,"issues":[]}`))
	}))
	defer srv.Close()

	resp, err := newTestCloud(srv.URL).SearchIssues(context.Background(), model.SearchOptions{
		JQL:        "assignee = currentUser()",
		StartAt:    5,
		MaxResults: 10,
		Fields:     []string{"summary", "assignee"},
	})
	require.NoError(t, err)

	assert.Equal("assignee = currentUser()", gotQuery["jql"])
	assert.Equal("5", gotQuery["startAt"])
	assert.Equal("10", gotQuery["maxResults"])
	assert.Equal("summary,assignee", gotQuery["fields"])
	assert.Equal(42, resp.Total)
}

func TestCloudSearchIssuesDefaultFields(t *testing.T) {
	var gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"startAt":0,"maxResults":50,"total":0,"issues":[]}`))
	}))
	defer srv.Close()

	_, err := newTestCloud(srv.URL).SearchIssues(context.Background(), model.SearchOptions{JQL: "project = DEMO"})
	require.NoError(t, err)
	assert.Equal(t, "summary,status,created", gotFields)
}

func TestCloudGetProjectIssuesJQL(t *testing.T) {
	assert := assert.New(t)
	var gotJQL, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotJQL = r.URL.Query().Get("jql")
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"startAt":0,"maxResults":50,"total":0,"issues":[]}`))
	}))
	defer srv.Close()

	_, err := newTestCloud(srv.URL).GetProjectIssues(context.Background(), "DEMO", model.SearchOptions{})
	require.NoError(t, err)

	assert.Equal("project = DEMO ORDER BY created DESC", gotJQL)
	assert.Equal("summary,status,created", gotFields)
}

func TestCloudUpdateIssue(t *testing.T) {
	assert := assert.New(t)
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestCloud(srv.URL).UpdateIssue(context.Background(), "DEMO-1", map[string]any{"summary": "X"})
	require.NoError(t, err)

	assert.Equal(http.MethodPut, gotMethod)
	assert.Equal("/rest/api/3/issue/DEMO-1", gotPath)
	assert.JSONEq(`{"fields":{"summary":"X"}}`, gotBody)
}

func TestCloudGetFieldID(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/rest/api/3/field", r.URL.Path)
		w.Write([]byte(`[{"id":"summary","name":"Summary"},{"id":"customfield_10002","name":"Severity"}]`))
	}))
	defer srv.Close()

	c := newTestCloud(srv.URL)

	id, err := c.GetFieldID(context.Background(), "severity")
	require.NoError(t, err)
	assert.Equal("customfield_10002", id)

	id, err = c.GetFieldID(context.Background(), "Story Points")
	require.NoError(t, err)
	assert.Equal("", id)
}

func TestCloudGetFieldIDSwallowsTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	id, err := newTestCloud(srv.URL).GetFieldID(context.Background(), "severity")
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestCloudSeverityOptions(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/api/3/field":
			w.Write([]byte(`[{"id":"customfield_10002","name":"Severity"}]`))
		case "/rest/api/3/field/customfield_10002/context/default/option":
			w.Write([]byte(`{"values":[{"id":"10100","value":"Blocker"},{"id":"10101","value":"Minor"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	options, err := newTestCloud(srv.URL).GetFieldOptions(context.Background(), "Severity", "")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal("10100", options[0].ID)
	assert.Equal("Blocker", options[0].Value)
}

func TestCloudSeverityFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	options, err := newTestCloud(srv.URL).GetFieldOptions(context.Background(), "severity", "")
	require.NoError(t, err)
	assert.Equal(t, SeverityFallback, options)
}

func TestCloudUnknownFieldOptionsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for unrecognized field names")
	}))
	defer srv.Close()

	options, err := newTestCloud(srv.URL).GetFieldOptions(context.Background(), "flux capacitance", "")
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestCloudGetIssueEditMeta(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/rest/api/3/issue/DEMO-1/editmeta", r.URL.Path)
		meta := model.EditMeta{Fields: map[string]model.FieldMeta{
			"summary": {Name: "Summary", Required: true, Operations: []string{"set"}},
			"customfield_10002": {
				Name:          "Severity",
				AllowedValues: []model.FieldOption{{ID: "1", Value: "Critical"}},
			},
		}}
		json.NewEncoder(w).Encode(meta)
	}))
	defer srv.Close()

	meta, err := newTestCloud(srv.URL).GetIssueEditMeta(context.Background(), "DEMO-1")
	require.NoError(t, err)

	require.Contains(t, meta.Fields, "summary")
	assert.True(meta.Fields["summary"].Required)
	assert.Equal("Critical", meta.Fields["customfield_10002"].AllowedValues[0].Value)
}
