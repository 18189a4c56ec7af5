package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// MemoryCache is an in-process session cache. It backs tests and serves
// as the fallback when the SQLite cache cannot be opened.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]envelope
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]envelope),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock overrides the cache clock. Tests use this to step time past
// the TTL deterministically.
func (c *MemoryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Read deserializes the entry for key into into. A missing, stale or
// unparsable entry is a miss.
func (c *MemoryCache) Read(key string, into interface{}) bool {
	c.mu.RLock()
	env, ok := c.entries[key]
	now := c.now()
	c.mu.RUnlock()

	if !ok || !fresh(env.Timestamp, c.ttl, now) {
		return false
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		return false
	}
	return true
}

// Write stores data under key, overwriting any prior entry.
func (c *MemoryCache) Write(key string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = envelope{Data: payload, Timestamp: c.now().UnixMilli()}
	return nil
}
