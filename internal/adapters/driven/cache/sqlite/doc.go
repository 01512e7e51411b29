// Package sqlite provides an on-disk driven.ResultCache.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Results are stored as JSON in a single table:
//
//	search_cache(key TEXT PRIMARY KEY, payload TEXT, expires_at INTEGER)
//
// expires_at is a Unix timestamp in milliseconds. Expired rows are ignored
// on read and purged on every write.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.lorequery/data/cache.db
//
// # Thread Safety
//
// All operations are thread-safe. The cache relies on SQLite's locking in
// WAL mode.
package sqlite
