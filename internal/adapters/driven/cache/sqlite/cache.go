package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/lorequery/internal/adapters/driven/cache/sqlite/migrations"
	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.ResultCache = (*Cache)(nil)

// dbFileName is the database file inside the data directory.
const dbFileName = "cache.db"

// Cache is a SQLite-backed result cache.
type Cache struct {
	db     *sql.DB
	path   string
	now    func() time.Time
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache opens (or creates) the cache database in dataDir.
// If dataDir is empty, defaults to ~/.lorequery/data.
func NewCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lorequery", domain.DefaultSQLiteDirName)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL mode lets readers proceed while a write is in flight
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Cache{
		db:   db,
		path: dbPath,
		now:  time.Now,
	}

	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Get returns the unexpired result stored under key.
func (c *Cache) Get(ctx context.Context, key string) (*domain.UnifiedSearchResult, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM search_cache WHERE key = ? AND expires_at > ?`,
		key, c.now().UnixMilli(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	var result domain.UnifiedSearchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		c.misses.Add(1)
		return nil, false, fmt.Errorf("decoding cached result: %w", err)
	}
	c.hits.Add(1)
	return &result, true, nil
}

// Set stores result under key until ttl elapses and purges expired rows.
func (c *Cache) Set(ctx context.Context, key string, result *domain.UnifiedSearchResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	now := c.now()
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM search_cache WHERE expires_at <= ?`, now.UnixMilli(),
	); err != nil {
		return fmt.Errorf("purging expired rows: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO search_cache (key, payload, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		key, string(payload), now.Add(ttl).UnixMilli(),
	); err != nil {
		return fmt.Errorf("saving result: %w", err)
	}

	return tx.Commit()
}

// Flush deletes every row.
func (c *Cache) Flush(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM search_cache`); err != nil {
		return fmt.Errorf("flushing cache: %w", err)
	}
	return nil
}

// Stats reports hit and miss counters and the number of live rows.
func (c *Cache) Stats(ctx context.Context) (domain.CacheStats, error) {
	var keys int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM search_cache WHERE expires_at > ?`, c.now().UnixMilli(),
	).Scan(&keys)
	if err != nil {
		return domain.CacheStats{}, fmt.Errorf("counting rows: %w", err)
	}
	return domain.CacheStats{
		Backend: domain.CacheBackendSQLite.String(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Keys:    keys,
	}, nil
}

// migrate applies pending .up.sql files in version order.
func (c *Cache) migrate(fsys embed.FS) error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_search_cache.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
