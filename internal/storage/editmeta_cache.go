package storage

import (
	"strings"
	"sync"

	"jira_term/internal/model"
)

// CachedField is the normalized slice of edit metadata the field-edit
// flow actually needs.
type CachedField struct {
	Name          string
	AllowedValues []model.FieldOption
}

// MetaKey joins the four components that scope an edit-metadata
// document into one cache key. The cache is keyed on instance
// coordinates rather than on a client reference so it survives client
// reconstruction.
func MetaKey(baseURL, mode, projectKey, issueType string) string {
	return strings.Join([]string{baseURL, mode, projectKey, issueType}, "|")
}

// EditMetaCache is a keyed store of normalized edit metadata. Entries
// never expire: metadata for a project/issue-type combination is
// effectively static across a session, so there is no eviction policy.
type EditMetaCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]CachedField
}

// NewEditMetaCache creates an empty cache.
func NewEditMetaCache() *EditMetaCache {
	return &EditMetaCache{
		entries: make(map[string]map[string]CachedField),
	}
}

// Put stores a normalized field mapping under the given key.
func (c *EditMetaCache) Put(key string, fields map[string]CachedField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = fields
}

// Get returns the mapping for key, or nil on a miss.
func (c *EditMetaCache) Get(key string) map[string]CachedField {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

// FindFieldIDByName resolves a field name to its id within a cached
// entry, case-insensitively. Returns "" when the entry or name is
// unknown.
func (c *EditMetaCache) FindFieldIDByName(key, name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, field := range c.entries[key] {
		if strings.EqualFold(field.Name, name) {
			return id
		}
	}
	return ""
}

// AllowedValues returns the allowed values recorded for a field in a
// cached entry, or nil when the entry or field is unknown.
func (c *EditMetaCache) AllowedValues(key, fieldID string) []model.FieldOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil
	}
	return entry[fieldID].AllowedValues
}

// NormalizeEditMeta reduces a server edit-metadata document to the
// cached shape.
func NormalizeEditMeta(meta *model.EditMeta) map[string]CachedField {
	fields := make(map[string]CachedField, len(meta.Fields))
	for id, fm := range meta.Fields {
		fields[id] = CachedField{
			Name:          fm.Name,
			AllowedValues: fm.AllowedValues,
		}
	}
	return fields
}
