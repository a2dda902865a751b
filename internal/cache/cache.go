package cache

import "github.com/SergeyParamoshkin/articles/internal/model"

// Cache is the key/value collaborator fronting the article store.
//
// Get reports whether a value is present for the key. Set inserts or replaces;
// entries have no expiry and are never evicted by callers.
type Cache interface {
	Get(key string) (*model.Article, bool)
	Set(key string, article *model.Article)
}
