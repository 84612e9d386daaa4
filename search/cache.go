package search

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hupe1980/wellcoach/core"
)

const (
	// DefaultCacheTTL is how long a ranked result set stays fresh.
	DefaultCacheTTL = time.Hour
	// DefaultCacheSize bounds the number of cached (query, count) keys.
	DefaultCacheSize = 256
)

// cacheKey is deliberately not normalized: "Water" and "water" are distinct.
type cacheKey struct {
	query string
	count int
}

// Cache holds ranked result sets keyed by (query, count). An entry whose age
// reaches the TTL at read time is dropped and reported as a miss.
type Cache struct {
	entries *lru.Cache[cacheKey, *core.ResultSet]
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache with room for size keys. now may be nil.
func NewCache(size int, ttl time.Duration, now func() time.Time) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	entries, err := lru.New[cacheKey, *core.ResultSet](size)
	if err != nil {
		return nil, fmt.Errorf("create search cache: %w", err)
	}
	return &Cache{entries: entries, ttl: ttl, now: now}, nil
}

// Get returns a copy of the live entry for (query, count).
func (c *Cache) Get(query string, count int) (*core.ResultSet, bool) {
	key := cacheKey{query: query, count: count}
	rs, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(rs.ProducedAt) >= c.ttl {
		c.entries.Remove(key)
		return nil, false
	}
	return cloneResultSet(rs), true
}

// Put stores rs under (query, count).
func (c *Cache) Put(query string, count int, rs *core.ResultSet) {
	c.entries.Add(cacheKey{query: query, count: count}, cloneResultSet(rs))
}

// Len returns the number of stored entries, including expired ones not yet read.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every entry.
func (c *Cache) Purge() { c.entries.Purge() }

func cloneResultSet(rs *core.ResultSet) *core.ResultSet {
	out := *rs
	out.Results = make([]core.SearchResult, len(rs.Results))
	copy(out.Results, rs.Results)
	return &out
}
