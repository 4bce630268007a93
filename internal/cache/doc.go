// Package cache provides a generic least-recently-used map.
//
//	c := cache.New[string, int](100)
//	evicted := c.Put("key", 42)
//	value, ok := c.Get("key")
//
// Put reports the values it pushed out instead of disposing of them, so
// callers holding reference-counted values can release them after the
// cache lock is dropped.
//
// # Thread Safety
//
// LRU is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
