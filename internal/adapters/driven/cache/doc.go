// Package cache groups the driven.ResultCache backends.
//
//   - memory: in-process LRU with per-entry TTL
//   - redis: shared cache across processes
//   - sqlite: on-disk cache that survives restarts
//
// No backend hands out shared state: memory clones results, redis and
// sqlite store them as JSON.
package cache
