package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
	"github.com/custodia-labs/lorequery/internal/core/ports/driving"
	"github.com/custodia-labs/lorequery/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOpen5eBaseURL  = "open5e.base_url"
	keyOpen5eTimeout  = "open5e.timeout_seconds"
	keyOpen5eRate     = "open5e.requests_per_second"
	keyOpen5eBurst    = "open5e.burst"
	keyCacheBackend   = "cache.backend"
	keyCacheTTL       = "cache.ttl_minutes"
	keyCacheSize      = "cache.size"
	keyCacheRedisURL  = "cache.redis_url"
	keyCacheSQLiteDir = "cache.sqlite_dir"
)

// settingKeys lists the recognised keys in display order.
var settingKeys = []string{
	keyOpen5eBaseURL, keyOpen5eTimeout, keyOpen5eRate, keyOpen5eBurst,
	keyCacheBackend, keyCacheTTL, keyCacheSize, keyCacheRedisURL, keyCacheSQLiteDir,
}

// SettingsService resolves typed settings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
	sqliteDir   string
}

// NewSettingsService creates a new settings service.
// defaultSQLiteDir is used when cache.sqlite_dir is not configured.
func NewSettingsService(configStore driven.ConfigStore, defaultSQLiteDir string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		sqliteDir:   defaultSQLiteDir,
	}
}

// Get returns the current settings. Missing or invalid values fall back
// to defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings(s.sqliteDir)

	return domain.Settings{
		Open5e: domain.Open5eSettings{
			BaseURL:           strings.TrimRight(s.getString(keyOpen5eBaseURL, defaults.Open5e.BaseURL), "/"),
			Timeout:           time.Duration(s.getInt(keyOpen5eTimeout, int(defaults.Open5e.Timeout/time.Second))) * time.Second,
			RequestsPerSecond: s.getFloat(keyOpen5eRate, defaults.Open5e.RequestsPerSecond),
			Burst:             s.getInt(keyOpen5eBurst, defaults.Open5e.Burst),
		},
		Cache: domain.CacheSettings{
			Backend:   s.getBackend(defaults.Cache.Backend),
			TTL:       time.Duration(s.getInt(keyCacheTTL, int(defaults.Cache.TTL/time.Minute))) * time.Minute,
			Size:      s.getInt(keyCacheSize, defaults.Cache.Size),
			RedisURL:  s.getString(keyCacheRedisURL, defaults.Cache.RedisURL),
			SQLiteDir: s.getString(keyCacheSQLiteDir, defaults.Cache.SQLiteDir),
		},
	}, nil
}

// Set validates value for key and persists it with its proper type.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var typed any
	switch key {
	case keyOpen5eBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &domain.ValidationError{Field: key, Reason: "must be an http(s) URL"}
		}
		typed = strings.TrimRight(value, "/")
	case keyCacheRedisURL:
		if !strings.HasPrefix(value, "redis://") && !strings.HasPrefix(value, "rediss://") {
			return &domain.ValidationError{Field: key, Reason: "must be a redis:// URL"}
		}
		typed = value
	case keyCacheSQLiteDir:
		if value == "" {
			return &domain.ValidationError{Field: key, Reason: "must not be empty"}
		}
		typed = value
	case keyCacheBackend:
		backend := domain.CacheBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return &domain.ValidationError{Field: key, Reason: "must be one of memory, redis, sqlite, none"}
		}
		typed = backend.String()
	case keyOpen5eTimeout, keyOpen5eBurst, keyCacheTTL, keyCacheSize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return &domain.ValidationError{Field: key, Reason: "must be a positive integer"}
		}
		typed = n
	case keyOpen5eRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return &domain.ValidationError{Field: key, Reason: "must be a positive number"}
		}
		typed = f
	default:
		return &domain.ValidationError{Field: key, Reason: "unknown setting", Err: domain.ErrUnsupportedType}
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.CacheBackend) domain.CacheBackend {
	val := s.configStore.GetString(keyCacheBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.CacheBackend(strings.ToLower(val))
	if !backend.IsValid() {
		logger.Warn("Unknown cache backend %q, using %s", val, defaultVal)
		return defaultVal
	}
	return backend
}
