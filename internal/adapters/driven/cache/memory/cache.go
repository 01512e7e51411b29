// Package memory provides an in-process driven.ResultCache.
package memory

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.ResultCache = (*Cache)(nil)

// Cache is a size-bounded LRU of unified search results. Entries expire
// after the TTL given at construction; the per-call TTL of Set is capped
// to it by the underlying LRU.
type Cache struct {
	lru    *expirable.LRU[string, *domain.UnifiedSearchResult]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a memory cache holding at most size entries.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = domain.DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Cache{
		lru: expirable.NewLRU[string, *domain.UnifiedSearchResult](size, nil, ttl),
	}
}

// Get returns a copy of the cached result for key.
func (c *Cache) Get(_ context.Context, key string) (*domain.UnifiedSearchResult, bool, error) {
	result, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false, nil
	}
	c.hits.Add(1)
	return result.Clone(), true, nil
}

// Set stores a copy of result under key.
func (c *Cache) Set(_ context.Context, key string, result *domain.UnifiedSearchResult, _ time.Duration) error {
	if result == nil {
		return nil
	}
	c.lru.Add(key, result.Clone())
	return nil
}

// Flush removes every entry.
func (c *Cache) Flush(context.Context) error {
	c.lru.Purge()
	return nil
}

// Stats reports hit and miss counters and the live entry count.
func (c *Cache) Stats(context.Context) (domain.CacheStats, error) {
	return domain.CacheStats{
		Backend: domain.CacheBackendMemory.String(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Keys:    c.lru.Len(),
	}, nil
}
