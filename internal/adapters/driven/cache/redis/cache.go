// Package redis provides a driven.ResultCache shared between processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.ResultCache = (*Cache)(nil)

const (
	// KeyPrefix namespaces every cache key.
	KeyPrefix = "lorequery:search:"

	scanCount = 100
)

// Cache stores results as JSON strings with a Redis TTL.
type Cache struct {
	client *redis.Client
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a cache over an existing client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// NewCacheWithURL creates a cache from a redis:// URL.
func NewCacheWithURL(url string) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewCache(redis.NewClient(opts)), nil
}

// Ping checks the connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get fetches and decodes the result stored under key.
func (c *Cache) Get(ctx context.Context, key string) (*domain.UnifiedSearchResult, bool, error) {
	payload, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var result domain.UnifiedSearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.misses.Add(1)
		return nil, false, fmt.Errorf("decode cached result: %w", err)
	}
	c.hits.Add(1)
	return &result, true, nil
}

// Set encodes result and stores it with SET ... EX ttl.
func (c *Cache) Set(ctx context.Context, key string, result *domain.UnifiedSearchResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := c.client.Set(ctx, KeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Flush deletes every key under KeyPrefix.
func (c *Cache) Flush(ctx context.Context) error {
	return c.scan(ctx, func(keys []string) error {
		return c.client.Del(ctx, keys...).Err()
	})
}

// Stats reports this process's hit and miss counters and the number of
// keys under KeyPrefix.
func (c *Cache) Stats(ctx context.Context) (domain.CacheStats, error) {
	count := 0
	err := c.scan(ctx, func(keys []string) error {
		count += len(keys)
		return nil
	})
	if err != nil {
		return domain.CacheStats{}, err
	}
	return domain.CacheStats{
		Backend: domain.CacheBackendRedis.String(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Keys:    count,
	}, nil
}

// scan walks KeyPrefix keys in batches.
func (c *Cache) scan(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+"*", scanCount).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
