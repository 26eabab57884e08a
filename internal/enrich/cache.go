package enrich

import (
	"context"
	"strings"
	"sync"
)

// CachedSource remembers successful lookups for the life of the process.
// Keys are the lowercased name; failures are not cached.
type CachedSource struct {
	inner Source

	mu    sync.Mutex
	pages map[string]*Page
}

// WithCache wraps a Source with an in-memory cache.
func WithCache(s Source) *CachedSource {
	return &CachedSource{inner: s, pages: make(map[string]*Page)}
}

func (c *CachedSource) Lookup(ctx context.Context, name string) (*Page, error) {
	key := strings.ToLower(name)

	c.mu.Lock()
	page, ok := c.pages[key]
	c.mu.Unlock()
	if ok {
		return page, nil
	}

	page, err := c.inner.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.pages[key] = page
	c.mu.Unlock()
	return page, nil
}

// Len returns the number of cached pages.
func (c *CachedSource) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}
