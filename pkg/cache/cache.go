package cache

import "time"

// entry pairs a stored value with the instant it stops being valid.
type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is a time-bounded memoization store keyed by string. It is injected
// into the catalog client and the advisory adapter so staleness behavior is
// testable with a fake clock. Not safe for concurrent use; the client runs
// one request context at a time.
type Cache[V any] struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

// New creates a cache whose entries expire ttl after insertion.
func New[V any](ttl time.Duration) *Cache[V] {
	return NewWithClock[V](ttl, time.Now)
}

// NewWithClock creates a cache with an injected clock.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[V]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if present and still within its
// validity window. Expired entries are removed on access.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key with a fresh expiry.
func (c *Cache[V]) Put(key string, value V) {
	c.entries[key] = entry[V]{
		value:   value,
		expires: c.now().Add(c.ttl),
	}
}

// Delete removes key, forcing the next lookup to miss.
func (c *Cache[V]) Delete(key string) {
	delete(c.entries, key)
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	return len(c.entries)
}
