// Package cache provides a TTL key-value cache used to avoid redundant
// fetches of per-property admin collections. Staleness is detected lazily on
// read; there is no background sweep. An entry moves through
// absent -> fresh (on Set) -> stale (after the TTL) -> evicted on the next
// read that observes the staleness.
package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultExpiration is the TTL applied when none is configured.
const DefaultExpiration = 30 * time.Minute

// Clock abstracts time so tests can control staleness deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type entry struct {
	value    interface{}
	storedAt time.Time
}

// TTLCache is a concurrency-safe key-value cache with per-entry expiration.
// When constructed with a Store, every write snapshots the cache so it
// survives restarts.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   Clock
	store   Store
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithTTL overrides the default expiration window.
func WithTTL(ttl time.Duration) Option {
	return func(c *TTLCache) { c.ttl = ttl }
}

// WithClock injects a clock, used by tests.
func WithClock(clock Clock) Option {
	return func(c *TTLCache) { c.clock = clock }
}

// WithStore attaches a persistence backend. The cache loads its previous
// snapshot on construction and saves after every mutation.
func WithStore(store Store) Option {
	return func(c *TTLCache) { c.store = store }
}

// New builds a TTLCache with the 30-minute default expiration.
func New(opts ...Option) *TTLCache {
	c := &TTLCache{
		entries: make(map[string]entry),
		ttl:     DefaultExpiration,
		clock:   systemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store != nil {
		c.restore()
	}
	return c
}

// Set stores value under key with the current timestamp, overwriting any
// prior entry. Always succeeds.
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.clock.Now()}
	c.mu.Unlock()
	c.persist()
}

// Get returns the cached value when the entry is still fresh. A stale entry
// is evicted and reported as a miss.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		c.mu.Unlock()
		c.persist()
		return nil, false
	}
	c.mu.Unlock()
	return e.value, true
}

// IsValid reports whether key holds a fresh entry without evicting it.
func (c *TTLCache) IsValid(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	return c.clock.Now().Sub(e.storedAt) < c.ttl
}

// Clear removes key, forcing the next read to refetch. Used after mutations.
func (c *TTLCache) Clear(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.persist()
}

// Len returns the number of entries, fresh or stale.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TTLCache) restore() {
	pairs, err := c.store.Load()
	if err != nil {
		logrus.WithError(err).Warn("cache: could not load snapshot, starting empty")
		return
	}
	c.mu.Lock()
	for _, p := range pairs {
		// Restored values stay json.RawMessage until a reader decodes them
		// into their concrete type.
		c.entries[p.Key] = entry{value: p.Value, storedAt: p.StoredAt}
	}
	c.mu.Unlock()
}

// persist is best-effort: a failed snapshot never fails the cache operation.
func (c *TTLCache) persist() {
	if c.store == nil {
		return
	}
	c.mu.RLock()
	pairs := make([]Pair, 0, len(c.entries))
	for k, e := range c.entries {
		raw, err := json.Marshal(e.value)
		if err != nil {
			logrus.WithError(err).WithField("key", k).Warn("cache: entry not serializable, skipped in snapshot")
			continue
		}
		pairs = append(pairs, Pair{Key: k, Value: raw, StoredAt: e.storedAt})
	}
	c.mu.RUnlock()
	if err := c.store.Save(pairs); err != nil {
		logrus.WithError(err).Warn("cache: snapshot save failed")
	}
}
