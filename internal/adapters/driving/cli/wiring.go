package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/custodia-labs/lorequery/internal/adapters/driven/cache/memory"
	"github.com/custodia-labs/lorequery/internal/adapters/driven/cache/redis"
	"github.com/custodia-labs/lorequery/internal/adapters/driven/cache/sqlite"
	"github.com/custodia-labs/lorequery/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lorequery/internal/adapters/driven/metrics"
	"github.com/custodia-labs/lorequery/internal/adapters/driven/open5e"
	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
	"github.com/custodia-labs/lorequery/internal/core/services"
	"github.com/custodia-labs/lorequery/internal/logger"
)

// redisPingTimeout bounds the startup connectivity check of the redis backend.
const redisPingTimeout = 2 * time.Second

// app holds the wired services of one process.
type app struct {
	search   *services.UnifiedSearchService
	settings *services.SettingsService
	observer *metrics.Observer
	closers  []io.Closer
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logger.Warn("closing: %v", err)
		}
	}
}

// buildApp wires the config store, upstream client, cache backend and
// metrics observer into the unified search service.
func buildApp(ctx context.Context, dir string) (*app, error) {
	logger.Section("Wiring")

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config file: %s", store.Path())

	settingsSvc := services.NewSettingsService(store, filepath.Join(store.Dir(), domain.DefaultSQLiteDirName))
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	client := open5e.NewClient(open5e.ConfigFromSettings(settings.Open5e))
	logger.Debug("open5e: %s (%.1f req/s)", client.BaseURL(), settings.Open5e.RequestsPerSecond)

	a := &app{
		settings: settingsSvc,
		observer: metrics.NewObserver(),
	}

	cache, err := a.buildCache(ctx, settings.Cache)
	if err != nil {
		a.close()
		return nil, err
	}

	registry := services.NewDomainRegistry(open5e.NewCatalog(client))
	a.search = services.NewUnifiedSearchService(registry, cache, settings.Cache.TTL)
	a.search.SetObserver(a.observer)

	return a, nil
}

// buildCache opens the configured result cache. An unreachable redis
// server falls back to the memory backend.
func (a *app) buildCache(ctx context.Context, cfg domain.CacheSettings) (driven.ResultCache, error) {
	switch cfg.Backend {
	case domain.CacheBackendNone:
		logger.Debug("cache: disabled")
		return nil, nil

	case domain.CacheBackendRedis:
		c, err := redis.NewCacheWithURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("opening redis cache: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			logger.Warn("redis cache unavailable, using memory: %v", err)
			c.Close() //nolint:errcheck
			return memory.NewCache(cfg.Size, cfg.TTL), nil
		}
		a.closers = append(a.closers, c)
		logger.Debug("cache: redis")
		return c, nil

	case domain.CacheBackendSQLite:
		c, err := sqlite.NewCache(cfg.SQLiteDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite cache: %w", err)
		}
		a.closers = append(a.closers, c)
		logger.Debug("cache: sqlite at %s", c.Path())
		return c, nil

	default:
		logger.Debug("cache: memory (%d entries)", cfg.Size)
		return memory.NewCache(cfg.Size, cfg.TTL), nil
	}
}
