package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira_term/internal/model"
)

func demoFields() map[string]CachedField {
	return map[string]CachedField{
		"summary": {Name: "Summary"},
		"customfield_10002": {
			Name: "Severity",
			AllowedValues: []model.FieldOption{
				{ID: "1", Value: "Critical"},
				{ID: "2", Value: "High"},
			},
		},
	}
}

func TestMetaKey(t *testing.T) {
	key := MetaKey("https://jira.example.com", "cloud", "DEMO", "Bug")
	assert.Equal(t, "https://jira.example.com|cloud|DEMO|Bug", key)
}

func TestEditMetaCachePutGet(t *testing.T) {
	assert := assert.New(t)
	cache := NewEditMetaCache()
	key := MetaKey("https://jira.example.com", "cloud", "DEMO", "Bug")

	assert.Nil(cache.Get(key))

	cache.Put(key, demoFields())
	got := cache.Get(key)
	require.NotNil(t, got)
	assert.Equal("Severity", got["customfield_10002"].Name)

	// Entries are scoped to the full tuple.
	assert.Nil(cache.Get(MetaKey("https://jira.example.com", "datacenter", "DEMO", "Bug")))
	assert.Nil(cache.Get(MetaKey("https://jira.example.com", "cloud", "DEMO", "Task")))
}

func TestEditMetaCacheFindFieldIDByName(t *testing.T) {
	assert := assert.New(t)
	cache := NewEditMetaCache()
	key := MetaKey("https://jira.example.com", "cloud", "DEMO", "Bug")
	cache.Put(key, demoFields())

	assert.Equal("customfield_10002", cache.FindFieldIDByName(key, "severity"))
	assert.Equal("customfield_10002", cache.FindFieldIDByName(key, "SEVERITY"))
	assert.Equal("summary", cache.FindFieldIDByName(key, "Summary"))
	assert.Equal("", cache.FindFieldIDByName(key, "priority"))
	assert.Equal("", cache.FindFieldIDByName("missing", "severity"))
}

func TestEditMetaCacheAllowedValues(t *testing.T) {
	assert := assert.New(t)
	cache := NewEditMetaCache()
	key := MetaKey("https://jira.example.com", "cloud", "DEMO", "Bug")
	cache.Put(key, demoFields())

	values := cache.AllowedValues(key, "customfield_10002")
	require.Len(t, values, 2)
	assert.Equal("Critical", values[0].Value)

	assert.Nil(cache.AllowedValues(key, "summary"))
	assert.Nil(cache.AllowedValues("missing", "customfield_10002"))
}

func TestNormalizeEditMeta(t *testing.T) {
	assert := assert.New(t)
	meta := &model.EditMeta{Fields: map[string]model.FieldMeta{
		"summary": {Name: "Summary", Required: true, Operations: []string{"set"}},
		"customfield_10002": {
			Name:          "Severity",
			AllowedValues: []model.FieldOption{{ID: "1", Value: "Critical"}},
		},
	}}

	fields := NormalizeEditMeta(meta)
	require.Len(t, fields, 2)
	assert.Equal("Summary", fields["summary"].Name)
	assert.Nil(fields["summary"].AllowedValues)
	assert.Equal("Critical", fields["customfield_10002"].AllowedValues[0].Value)
}
