package font

import (
	"bytes"
	"hash/fnv"
	"sync"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/internal/cache"
)

// Cache shares faces between callers loading the same font data.
//
// A face handed out by Load is indexed for as long as it lives. When its
// last user reference goes away, the cache resurrects it and keeps it
// idle, up to the idle limit; the least recently released idle faces are
// destroyed for good.
//
// Faces are keyed by a hash of their data and the data itself is compared
// on every hit. Data whose hash collides with a cached face of different
// data is parsed into a face the cache does not index.
type Cache struct {
	mu   sync.Mutex
	live map[uint64]cacheEntry
	idle *cache.LRU[uint64, *Face]
	key  func(data []byte) uint64
}

type cacheEntry struct {
	face *Face
	data []byte
}

// NewCache returns a cache keeping at most idleLimit unused faces.
// An idleLimit of 0 keeps every face.
func NewCache(idleLimit int) *Cache {
	return &Cache{
		live: make(map[uint64]cacheEntry),
		idle: cache.New[uint64, *Face](idleLimit),
		key:  dataKey,
	}
}

func dataKey(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // fnv.Write never returns an error
	return h.Sum64()
}

// Load returns a referenced face for data, parsing it only when no face
// for the same data is cached. The caller owns the returned reference.
func (c *Cache) Load(data []byte) (*Face, error) {
	key := c.key(data)

	c.mu.Lock()
	if e, ok := c.live[key]; ok {
		if !bytes.Equal(e.data, data) {
			c.mu.Unlock()
			vgcore.Logger().Debug("font: cache key collision", "key", key)
			return Parse(data)
		}
		f := c.acquire(key, e.face)
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	f, err := Parse(data)
	if err != nil {
		return f, err
	}

	c.mu.Lock()
	if e, ok := c.live[key]; ok {
		if !bytes.Equal(e.data, data) {
			c.mu.Unlock()
			return f, nil
		}
		other := c.acquire(key, e.face)
		c.mu.Unlock()
		f.Destroy()
		return other, nil
	}
	c.live[key] = cacheEntry{face: f, data: bytes.Clone(data)}
	c.mu.Unlock()

	f.SetReleaseHook(func(face *Face) { c.release(key, face) })
	return f, nil
}

// acquire hands out a reference to an indexed face. An idle face passes
// on the reference taken at resurrection. Caller must hold c.mu.
func (c *Cache) acquire(key uint64, f *Face) *Face {
	if _, ok := c.idle.Remove(key); !ok {
		f.Reference()
	}
	return f
}

// release runs when the last reference to an indexed face is dropped.
func (c *Cache) release(key uint64, f *Face) {
	c.mu.Lock()
	if c.live[key].face != f {
		c.mu.Unlock()
		return
	}
	f.Reference()
	evicted := c.idle.Put(key, f)
	for _, old := range evicted {
		c.forget(old)
	}
	c.mu.Unlock()

	vgcore.Logger().Debug("font: face kept idle", "family", f.Family())
	for _, old := range evicted {
		old.Destroy()
	}
}

// forget drops f from the live index. Caller must hold c.mu.
func (c *Cache) forget(f *Face) {
	for k, live := range c.live {
		if live.face == f {
			delete(c.live, k)
			return
		}
	}
}

// Len returns the number of cached faces, in use or idle.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// Idle returns the number of cached faces nobody else references.
func (c *Cache) Idle() int {
	return c.idle.Len()
}

// Clear destroys the idle faces and forgets them. Faces still in use stay
// indexed.
func (c *Cache) Clear() {
	c.mu.Lock()
	idle := c.idle.Clear()
	for _, f := range idle {
		c.forget(f)
	}
	c.mu.Unlock()

	for _, f := range idle {
		f.Destroy()
	}
}
