package client

import (
	"sync"
	"time"
)

// Cache is the read-through seam keyed by request path
// Implementations must be safe for concurrent use
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, raw []byte)
	Clear()
}

// nopCache disables caching
type nopCache struct{}

func (nopCache) Get(string) ([]byte, bool) { return nil, false }
func (nopCache) Put(string, []byte)        {}
func (nopCache) Clear()                    {}

// MemCacheOption configures the in-memory cache
type MemCacheOption func(*MemCache)

// WithTTL bounds entry freshness, zero keeps entries until Clear
func WithTTL(d time.Duration) MemCacheOption {
	return func(c *MemCache) { c.ttl = d }
}

// MemCache is a trivial in-memory Cache
// Submit calls Clear so reads after a write always refetch
type MemCache struct {
	mu  sync.Mutex
	m   map[string]memEntry
	ttl time.Duration
	now func() time.Time
}

type memEntry struct {
	raw []byte
	at  time.Time
}

// NewMemCache builds an empty cache
func NewMemCache(opts ...MemCacheOption) *MemCache {
	c := &MemCache{m: map[string]memEntry{}, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get returns the cached payload when present and fresh
func (c *MemCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.at) > c.ttl {
		delete(c.m, key)
		return nil, false
	}
	return e.raw, true
}

// Put stores a payload under key
func (c *MemCache) Put(key string, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = memEntry{raw: raw, at: c.now()}
}

// Clear drops everything
func (c *MemCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = map[string]memEntry{}
}
