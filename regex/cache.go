package regex

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/dshills/eventrex/store"
)

// Cache holds compiled patterns in memory under an LRU eviction policy,
// backed by a store.Store for durable bookkeeping of which patterns have
// been compiled before. The store never holds the compiled graph itself
// (only CacheRecord metadata), so a cold Cache always recompiles on
// first use — the store speeds up diagnosis and audits, not the compile
// itself.
type Cache struct {
	mu       sync.Mutex
	st       store.Store
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type cacheEntry struct {
	pattern string
	re      *Regex
}

// NewCache creates a Cache holding at most capacity compiled patterns in
// memory, recording every successful compile in st. A non-positive
// capacity disables eviction (the cache grows without bound).
func NewCache(st store.Store, capacity int) *Cache {
	return &Cache{
		st:       st,
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Compile returns a cached Regex for pattern if one is already held,
// compiling and inserting it otherwise.
func (c *Cache) Compile(ctx context.Context, pattern string) (*Regex, error) {
	c.mu.Lock()
	if el, ok := c.entries[pattern]; ok {
		c.order.MoveToFront(el)
		re := el.Value.(*cacheEntry).re
		c.mu.Unlock()
		return re, nil
	}
	c.mu.Unlock()

	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	el := c.order.PushFront(&cacheEntry{pattern: pattern, re: re})
	c.entries[pattern] = el
	if c.capacity > 0 {
		for c.order.Len() > c.capacity {
			oldest := c.order.Back()
			if oldest == nil {
				break
			}
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).pattern)
		}
	}
	c.mu.Unlock()

	if c.st != nil {
		_ = c.st.SaveCompiled(ctx, CacheRecordFor(re))
	}
	return re, nil
}

// CacheRecordFor builds the store.CacheRecord that describes re, for
// callers persisting compile history directly.
func CacheRecordFor(re *Regex) store.CacheRecord {
	return store.CacheRecord{
		Pattern:   re.pattern,
		NodeCount: len(re.graph.GetNodeList()),
		Anchored:  re.anchored,
		CreatedAt: time.Now(),
	}
}
