// Package cache provides Cache[K, V], a simple thread-safe LRU cache
// suitable for single-threaded or low-contention scenarios. It uses a
// soft limit with 25% eviction when capacity is exceeded.
//
//	boxSizeCache := cache.New[float64, [3]int](256)
//	boxSizeCache.Set(1.5, [3]int{3, 3, 5})
//	sizes, ok := boxSizeCache.Get(1.5)
//
// For high-concurrency caching across many goroutines, see the
// sibling github.com/inkforge/paintcore/cache package's ShardedCache,
// which shards by key hash instead of guarding one map with one mutex.
//
// Cache is safe for concurrent use. It should not be copied after
// creation (it contains a mutex).
package cache
