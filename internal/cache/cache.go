package cache

import "sync"

// LRU is a thread-safe map holding at most limit entries. When a Put goes
// over the limit, the least recently used entries are evicted.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	head    *lruNode[K, V] // most recently used
	tail    *lruNode[K, V] // least recently used
	limit   int
}

// lruNode is an entry in the doubly-linked use order.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// New creates an LRU holding at most limit entries.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *LRU[K, V] {
	return &LRU[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   limit,
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(n)
	c.pushFront(n)
	return n.value, true
}

// Put stores value under key as the most recently used entry. It returns
// the values evicted to stay within the limit, including a value replaced
// under the same key.
func (c *LRU[K, V]) Put(key K, value V) []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	var evicted []V
	if n, ok := c.entries[key]; ok {
		evicted = append(evicted, n.value)
		n.value = value
		c.unlink(n)
		c.pushFront(n)
		return evicted
	}

	n := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)

	for c.limit > 0 && len(c.entries) > c.limit {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
		evicted = append(evicted, old.value)
	}
	return evicted
}

// Remove deletes key and returns its value.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(n)
	delete(c.entries, key)
	return n.value, true
}

// Clear removes every entry and returns the values, least recently used
// first.
func (c *LRU[K, V]) Clear() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make([]V, 0, len(c.entries))
	for n := c.tail; n != nil; n = n.prev {
		values = append(values, n.value)
	}
	c.entries = make(map[K]*lruNode[K, V])
	c.head, c.tail = nil, nil
	return values
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Limit returns the maximum number of entries, 0 meaning unlimited.
func (c *LRU[K, V]) Limit() int {
	return c.limit
}

// pushFront inserts an unlinked node at the head. Caller must hold c.mu.
func (c *LRU[K, V]) pushFront(n *lruNode[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// unlink removes n from the use order. Caller must hold c.mu.
func (c *LRU[K, V]) unlink(n *lruNode[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
