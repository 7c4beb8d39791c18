package store

import (
	"context"
	"sync"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
)

// MemoryPageCache is the session-scoped page cache. Entries live until a
// mutation clears the whole cache; there is no eviction and no TTL. Pages are
// stored and returned by value so a cached snapshot cannot be mutated through
// an aliased slice header.
type MemoryPageCache struct {
	mu    sync.RWMutex
	pages map[string]entity.Page
}

// check if MemoryPageCache implements IPageCache
var _ contract.IPageCache = (*MemoryPageCache)(nil)

// NewMemoryPageCache creates an empty in-memory page cache.
func NewMemoryPageCache() *MemoryPageCache {
	return &MemoryPageCache{pages: make(map[string]entity.Page)}
}

// Get returns the cached page for the filter, and whether it was present.
func (c *MemoryPageCache) Get(_ context.Context, filter entity.Filter) (*entity.Page, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.pages[filter.Key()]
	if !ok {
		return nil, false, nil
	}
	out := page
	out.Items = append([]entity.Album(nil), page.Items...)
	return &out, true, nil
}

// Set stores or overwrites the entry for the filter's key.
func (c *MemoryPageCache) Set(_ context.Context, filter entity.Filter, page *entity.Page) error {
	if page == nil {
		return nil
	}
	stored := *page
	stored.Items = append([]entity.Album(nil), page.Items...)
	c.mu.Lock()
	c.pages[filter.Key()] = stored
	c.mu.Unlock()
	return nil
}

// Clear removes all entries.
func (c *MemoryPageCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.pages = make(map[string]entity.Page)
	c.mu.Unlock()
	return nil
}

// Len reports the number of cached pages. Used by tests and metrics.
func (c *MemoryPageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
