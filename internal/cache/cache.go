package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// DefaultTTL is the freshness window callers use unless they have a reason
// not to.
const DefaultTTL = 360 * time.Second

type entry struct {
	at   time.Time
	data []byte
}

// Cache is a keyed TTL store. A Cache belongs to one logical owner; the
// mutex makes individual operations safe, but a load-then-store refresh is
// the owner's to serialize.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the cache's notion of now. Tests use this to age entries.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store records v under key with the current timestamp, overwriting any prior
// entry unconditionally. The value is serialized immediately, so later
// mutations of v do not reach the cache.
func (c *Cache) Store(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{at: c.now(), data: data}
	return nil
}

// Load reports whether key has ever been stored and, if so, decodes an
// independent copy of the stored value into out. fresh is true while the
// entry's age is strictly below ttl; a stale entry still decodes.
func (c *Cache) Load(key string, ttl time.Duration, out any) (fresh, ok bool, err error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.Unlock()
	if !ok {
		return false, false, nil
	}
	if err := json.Unmarshal(e.data, out); err != nil {
		return false, false, err
	}
	return now.Sub(e.at) < ttl, true, nil
}
