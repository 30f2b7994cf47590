// Package memo provides a bounded memoization cache for rendered user
// text.
//
// Rendering is pure, so a result can be reused whenever the exact same
// input string comes back, which happens constantly when the same posts
// and comments are redrawn. The cache is safe for concurrent use and
// evicts the least recently used entry once full; eviction only ever
// costs a recompute, never correctness.
package memo

import (
	"fmt"
	"html/template"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/threadview/usertext"
)

// Cache memoizes usertext.Render keyed on the exact input string.
type Cache struct {
	entries *lru.Cache[string, template.HTML]
	max     int
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// Stats is a point-in-time snapshot of cache occupancy and
// effectiveness.
type Stats struct {
	Size    int
	MaxSize int
	Hits    uint64
	Misses  uint64
}

// HitRate returns the fraction of lookups served from the cache, or 0
// before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New returns a Cache holding at most size rendered results.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memo: cache size %d, want at least 1", size)
	}
	entries, err := lru.New[string, template.HTML](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries, max: size}, nil
}

// Render returns the rendering of text, reusing the cached result when
// the same input has been rendered before.
func (c *Cache) Render(text string) template.HTML {
	if out, ok := c.entries.Get(text); ok {
		c.hits.Add(1)
		return out
	}
	c.misses.Add(1)
	out := usertext.Render(text)
	c.entries.Add(text, out)
	return out
}

// Purge drops every cached entry. The hit and miss counters keep their
// values.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Stats reports current occupancy and lookup counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Size:    c.entries.Len(),
		MaxSize: c.max,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
