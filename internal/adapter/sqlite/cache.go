package sqlite

import (
	"context"
	"strings"
	"sync"

	"github.com/ds4stats/case-studies/internal/observability"
)

// CachedStore wraps a Store with an in-memory LRU over team detail lookups.
// Analysis queries go to the Store directly; the API path is the hot one.
type CachedStore struct {
	inner   *Store
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedStore creates a cache decorator around a store. Metrics may be nil.
func NewCachedStore(inner *Store, maxEntries int, metrics *observability.Metrics) *CachedStore {
	return &CachedStore{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// TeamDetail serves team lookups through the cache. Team ids are
// case-insensitive. Lookup errors are never cached, so an unknown id can
// succeed after a reseed.
func (c *CachedStore) TeamDetail(ctx context.Context, teamID string) (*TeamDetail, error) {
	key := strings.ToUpper(strings.TrimSpace(teamID))
	if detail, ok := c.cache.get(key); ok {
		c.count("hit")
		return detail, nil
	}
	c.count("miss")

	detail, err := c.inner.TeamDetail(ctx, teamID)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, detail)
	return detail, nil
}

func (c *CachedStore) count(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.DetailCache.WithLabelValues(result).Inc()
}

// lruCache is a simple thread-safe LRU cache for team details.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value *TeamDetail
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (*TeamDetail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value *TeamDetail) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
