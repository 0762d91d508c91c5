// Package cache provides the bounded memo used by glyph-source lookups.
//
// Cache[K, V] is a mutex-guarded LRU map with a soft limit. When an insert
// pushes it past the limit, the least recently used quarter is dropped in
// one batch so that steady-state inserts stay cheap.
//
//	metrics := cache.New[metricsKey, text.FontMetrics](256)
//	m := metrics.GetOrCreate(key, func() text.FontMetrics { return compute() })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
