package text

import (
	"sync"
	"sync/atomic"
)

// GlyphSource supplies rasterized glyphs by key.
// *GlyphCache implements it; RenderMask consumes it.
type GlyphSource interface {
	Glyph(key GlyphRasterKey) (RasterizedGlyph, error)
}

// GlyphCache memoizes rasterized glyphs for one font.
//
// Entries are never evicted or invalidated: a cache is meant to live for a
// single macro generation, where the working set is bounded by the
// alphabet of the captions. Create a fresh cache per generation rather
// than keeping one across calls.
//
// Glyph looks like a read but populates the cache on a miss, so the cache
// can be shared through a plain *GlyphCache or a GlyphSource interface.
// GlyphCache is safe for concurrent use; a key is rasterized at most once.
type GlyphCache struct {
	rasterizer Rasterizer

	mu      sync.Mutex
	entries map[GlyphRasterKey]RasterizedGlyph

	stats GlyphCacheStats
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	Hits   atomic.Uint64
	Misses atomic.Uint64
}

// NewGlyphCache creates a cache backed by r.
// capacity is a size hint for the expected number of distinct glyphs.
func NewGlyphCache(r Rasterizer, capacity int) *GlyphCache {
	if capacity < 0 {
		capacity = 0
	}
	return &GlyphCache{
		rasterizer: r,
		entries:    make(map[GlyphRasterKey]RasterizedGlyph, capacity),
	}
}

// Glyph returns the rasterized glyph for key, rasterizing it on first use.
// Rasterization errors are returned and not cached.
func (c *GlyphCache) Glyph(key GlyphRasterKey) (RasterizedGlyph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if g, ok := c.entries[key]; ok {
		c.stats.Hits.Add(1)
		return g, nil
	}

	c.stats.Misses.Add(1)

	// Rasterize under lock so concurrent callers never duplicate work.
	g, err := c.rasterizer.Rasterize(key)
	if err != nil {
		return RasterizedGlyph{}, err
	}
	c.entries[key] = g
	return g, nil
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *GlyphCache) Stats() (hits, misses uint64) {
	return c.stats.Hits.Load(), c.stats.Misses.Load()
}

// HitRate returns the cache hit rate as a percentage.
// Returns 0 if there are no accesses.
func (c *GlyphCache) HitRate() float64 {
	hits, misses := c.Stats()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}
