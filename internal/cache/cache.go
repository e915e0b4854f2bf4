// Package cache holds rendered page fragments that do not depend on the clock.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Status represents the cache lookup result.
type Status string

const (
	StatusHit     Status = "hit"
	StatusMiss    Status = "miss"
	StatusExpired Status = "expired"
	// StatusBypass marks a render made without a cache.
	StatusBypass  Status = "bypass"
)

// Entry holds one rendered fragment. A zero Size is taken as len(HTML).
type Entry struct {
	HTML      []byte
	Size      int64
	ExpiresAt time.Time
}

// Key identifies the content fragment of an edition served under basePath
// in one accordion state. The toggle links embed basePath.
func Key(edition, basePath, state string) string {
	return edition + "@" + basePath + "?" + state
}

// Cache is a thread-safe, in-memory LRU cache with TTL and byte-counting eviction.
type Cache struct {
	mu      sync.Mutex
	items   map[string]*list.Element
	order   *list.List
	ttl     time.Duration
	maxSize int64
	curSize int64
	now     func() time.Time // injectable for testing
}

type cacheItem struct {
	key   string
	entry Entry
}

// New creates a cache with the given TTL and max size in bytes.
func New(ttl time.Duration, maxSize int64) *Cache {
	return &Cache{
		items:   make(map[string]*list.Element),
		order:   list.New(),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get retrieves a cached entry. Expired entries are dropped and reported
// as StatusExpired so the caller re-renders.
func (c *Cache) Get(key string) (*Entry, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, StatusMiss
	}

	item := elem.Value.(*cacheItem)

	if c.now().After(item.entry.ExpiresAt) {
		c.remove(elem)
		return nil, StatusExpired
	}

	// Move to front (most recently used)
	c.order.MoveToFront(elem)
	entry := item.entry
	return &entry, StatusHit
}

// Put stores an entry in the cache. Evicts LRU entries if necessary.
func (c *Cache) Put(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.Size == 0 {
		entry.Size = int64(len(entry.HTML))
	}
	entry.ExpiresAt = c.now().Add(c.ttl)

	// Update existing
	if elem, ok := c.items[key]; ok {
		old := elem.Value.(*cacheItem)
		c.curSize -= old.entry.Size
		old.entry = entry
		c.curSize += entry.Size
		c.order.MoveToFront(elem)
		c.evict()
		return
	}

	item := &cacheItem{key: key, entry: entry}
	elem := c.order.PushFront(item)
	c.items[key] = elem
	c.curSize += entry.Size

	c.evict()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.curSize = 0
}

// evict removes LRU entries until curSize <= maxSize. Must be called with mu held.
func (c *Cache) evict() {
	for c.curSize > c.maxSize && c.order.Len() > 0 {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
	}
}

// remove must be called with mu held.
func (c *Cache) remove(elem *list.Element) {
	item := elem.Value.(*cacheItem)
	c.curSize -= item.entry.Size
	delete(c.items, item.key)
	c.order.Remove(elem)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Size returns the current byte size of the cache.
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.curSize
}
