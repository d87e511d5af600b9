package cache

import (
	"sync"
	"time"
)

// Cache tags: stable identifiers mutations use for bulk invalidation.
const (
	TagProducts       = "products"
	TagCategories     = "categories"
	TagSuppliers      = "suppliers"
	TagCustomers      = "customers"
	TagSales          = "sales"
	TagAnalytics      = "analytics"
	TagLocations      = "locations"
	TagBatches        = "batches"
	TagPurchaseOrders = "purchase-orders"
	TagTags           = "tags"
	TagActivityLog    = "activity-log"
)

// Default TTLs per operation family. Tunable, not load-bearing for
// correctness: invalidation by tag always wins over TTL.
const (
	TTLAnalytics    = 120 * time.Second
	TTLReference    = 5 * time.Minute // categories, suppliers, locations
	TTLActivityFeed = 30 * time.Second
)

type entry struct {
	value     any
	tags      []string
	createdAt time.Time
	ttl       time.Duration
}

func (e *entry) live(now time.Time) bool {
	return now.Sub(e.createdAt) < e.ttl
}

// ResultCache is the only cross-request shared mutable state in the process.
// It memoizes read results under a key, stamped with tags for invalidation.
//
// Concurrency contract: two callers racing on the same missing key may both
// run computeFn; the computation is a pure idempotent read, so the duplicate
// work is wasted but not unsafe. Entry replacement is last-write-wins.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	// OnLookup, when set, observes each hit/miss. Set once at startup,
	// before the cache is shared.
	OnLookup func(hit bool)
}

func New() *ResultCache {
	return &ResultCache{entries: make(map[string]*entry)}
}

// GetOrCompute returns the live cached value for key, or invokes computeFn,
// stores the result tagged with tags, and returns it.
func (c *ResultCache) GetOrCompute(key string, tags []string, ttl time.Duration, computeFn func() (any, error)) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	hit := ok && e.live(time.Now())
	if c.OnLookup != nil {
		c.OnLookup(hit)
	}
	if hit {
		return e.value, nil
	}

	// Miss, expired or invalidated: recompute outside the lock.
	value, err := computeFn()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{
		value:     value,
		tags:      tags,
		createdAt: time.Now(),
		ttl:       ttl,
	}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops every entry carrying any of the given tags, immediately
// and independent of TTL. Mutations call this only after their write commits.
func (c *ResultCache) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, t := range e.tags {
			if _, hit := tagSet[t]; hit {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Flush empties the cache entirely
func (c *ResultCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Through is a typed convenience wrapper around GetOrCompute
func Through[T any](c *ResultCache, key string, tags []string, ttl time.Duration, computeFn func() (T, error)) (T, error) {
	v, err := c.GetOrCompute(key, tags, ttl, func() (any, error) {
		return computeFn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
