package jira

import (
	"context"

	"jira_term/internal/storage"
)

// EditMetaResolver sits between field-edit callers and the client's
// edit-metadata call. A hit in the cache short-circuits the network
// fetch; a miss fetches live and stores the normalized result.
type EditMetaResolver struct {
	client Client
	cache  *storage.EditMetaCache
	cfg    Config
}

// NewEditMetaResolver binds a client and cache to the instance
// coordinates that scope cache keys.
func NewEditMetaResolver(client Client, cache *storage.EditMetaCache, cfg Config) *EditMetaResolver {
	return &EditMetaResolver{
		client: client,
		cache:  cache,
		cfg:    cfg,
	}
}

// Fields returns the editable-field mapping for an issue, from cache
// when the (instance, mode, project, issue type) tuple has been seen
// before.
func (r *EditMetaResolver) Fields(ctx context.Context, issueKey, projectKey, issueType string) (map[string]storage.CachedField, error) {
	key := storage.MetaKey(r.cfg.BaseURL, string(r.cfg.Mode), projectKey, issueType)
	if cached := r.cache.Get(key); cached != nil {
		return cached, nil
	}

	meta, err := r.client.GetIssueEditMeta(ctx, issueKey)
	if err != nil {
		return nil, err
	}
	fields := storage.NormalizeEditMeta(meta)
	r.cache.Put(key, fields)
	return fields, nil
}
