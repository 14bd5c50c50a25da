// Package cache provides the process-local response cache used in front of
// the council API.
package cache

import (
	"sync"
	"time"
)

// entry is a stored value and the moment it was stored.
type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a string-keyed store whose entries expire a fixed TTL after they
// were set. Expiry is lazy: an expired entry is removed by the Get that finds
// it, and there is no background sweep.
//
// A single mutex guards the map. Callers fetch values outside the cache and
// Set afterwards, so the lock is never held across I/O. Two concurrent misses
// for the same key may both fetch; the later Set wins.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

// Option configures a Cache.
type Option func(*config)

type config struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// New returns an empty Cache whose entries live for ttl.
func New[V any](ttl time.Duration, opts ...Option) *Cache[V] {
	cfg := config{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	return &Cache[V]{
		ttl:     ttl,
		now:     cfg.now,
		entries: make(map[string]entry[V]),
	}
}

// TTL returns the lifetime given to every entry.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key if it is younger than the TTL.
// An entry whose age has reached the TTL is deleted and reported as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry and restarting its TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included until a Get
// evicts them.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
