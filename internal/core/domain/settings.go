package domain

import "time"

const unknownDescription = "Unknown"

// CacheBackend identifies where aggregated search results are cached.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendMemory keeps results in a bounded in-process LRU.
	CacheBackendMemory CacheBackend = "memory"

	// CacheBackendRedis keeps results in a shared Redis instance.
	CacheBackendRedis CacheBackend = "redis"

	// CacheBackendSQLite keeps results in a local SQLite file.
	CacheBackendSQLite CacheBackend = "sqlite"

	// CacheBackendNone disables result caching.
	CacheBackendNone CacheBackend = "none"
)

// IsValid returns true if the cache backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendSQLite, CacheBackendNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendMemory:
		return "Memory (in-process LRU)"
	case CacheBackendRedis:
		return "Redis (shared)"
	case CacheBackendSQLite:
		return "SQLite (local file)"
	case CacheBackendNone:
		return "None (caching disabled)"
	default:
		return unknownDescription
	}
}

// Defaults applied when a setting is absent from the config file.
const (
	DefaultOpen5eBaseURL     = "https://api.open5e.com"
	DefaultOpen5eTimeout     = 15 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultRequestBurst      = 10
	DefaultCacheBackend      = CacheBackendMemory
	DefaultCacheTTL          = 30 * time.Minute
	DefaultCacheSize         = 256
	DefaultRedisURL          = "redis://localhost:6379/0"
	DefaultSQLiteDirName     = "data"
	DefaultResponseCacheTTL  = 30 * time.Minute
	DefaultResponseCacheSize = 512
)

// Open5eSettings configures the upstream reference-data API.
type Open5eSettings struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds a single upstream request.
	Timeout time.Duration

	// RequestsPerSecond is the sustained upstream request rate.
	RequestsPerSecond float64

	// Burst is the token bucket size.
	Burst int
}

// CacheSettings configures the aggregated result cache.
type CacheSettings struct {
	// Backend selects the cache implementation.
	Backend CacheBackend

	// TTL is how long a cached result stays valid.
	TTL time.Duration

	// Size bounds the number of entries of the memory backend.
	Size int

	// RedisURL is the connection URL of the redis backend.
	RedisURL string

	// SQLiteDir is the directory holding the sqlite cache file.
	SQLiteDir string
}

// Settings is the typed application configuration.
type Settings struct {
	Open5e Open5eSettings
	Cache  CacheSettings
}

// DefaultSettings returns settings populated with defaults.
// sqliteDir is the default location of the sqlite cache.
func DefaultSettings(sqliteDir string) Settings {
	return Settings{
		Open5e: Open5eSettings{
			BaseURL:           DefaultOpen5eBaseURL,
			Timeout:           DefaultOpen5eTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultRequestBurst,
		},
		Cache: CacheSettings{
			Backend:   DefaultCacheBackend,
			TTL:       DefaultCacheTTL,
			Size:      DefaultCacheSize,
			RedisURL:  DefaultRedisURL,
			SQLiteDir: sqliteDir,
		},
	}
}
