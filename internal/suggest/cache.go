// ABOUTME: Short-lived lookup cache in front of the autocomplete endpoint
// ABOUTME: Backed by go-cache; errors are never cached

package suggest

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mauromedda/qnachat/internal/log"
)

// DefaultCacheTTL bounds how long a lookup result is reused.
const DefaultCacheTTL = 30 * time.Second

// Fetcher performs one lookup against the server.
type Fetcher func(ctx context.Context, query string) ([]Suggestion, error)

// Cache memoises a Fetcher by exact query string. Safe for concurrent use.
type Cache struct {
	store *cache.Cache
	fetch Fetcher
}

// NewCache wraps fetch. ttl <= 0 uses DefaultCacheTTL.
func NewCache(ttl time.Duration, fetch Fetcher) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store: cache.New(ttl, 2*ttl),
		fetch: fetch,
	}
}

// Lookup returns cached suggestions for query or fetches them.
func (c *Cache) Lookup(ctx context.Context, query string) ([]Suggestion, error) {
	if v, ok := c.store.Get(query); ok {
		log.Debug("suggest: cache hit for %q", query)
		return v.([]Suggestion), nil
	}
	items, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(query, items)
	return items, nil
}

// Flush forgets every cached result, e.g. after a new document is uploaded.
func (c *Cache) Flush() {
	c.store.Flush()
}
