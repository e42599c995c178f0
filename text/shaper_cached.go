package text

import (
	"math"
	"slices"

	"github.com/gogpu/macro/internal/cache"
)

// DefaultShapingCacheSize is the default soft limit of a CachedShaper.
const DefaultShapingCacheSize = 256

// shapingKey identifies a shaping result. All inputs that affect the
// output of a Shaper are part of the key.
type shapingKey struct {
	text     string
	fontID   uint64
	sizeBits uint64
	hinting  Hinting
}

// CachedShaper memoizes the output of another Shaper.
//
// Captions are often repeated across calls (the same template text,
// the same punchline at several sizes), and HarfBuzz shaping dominates
// layout cost, so a process-wide CachedShaper in front of GoTextShaper
// skips it for repeats. Least recently used results are evicted once the
// cache grows past its soft limit.
//
// CachedShaper is safe for concurrent use if the wrapped Shaper is.
type CachedShaper struct {
	next  Shaper
	cache *cache.Cache[shapingKey, []ShapedGlyph]
}

// NewCachedShaper wraps next with a cache of about size results.
// A nil next wraps a BuiltinShaper; a non-positive size uses
// DefaultShapingCacheSize.
func NewCachedShaper(next Shaper, size int) *CachedShaper {
	if next == nil {
		next = &BuiltinShaper{}
	}
	if size <= 0 {
		size = DefaultShapingCacheSize
	}
	return &CachedShaper{
		next:  next,
		cache: cache.New[shapingKey, []ShapedGlyph](size),
	}
}

// Shape implements Shaper. The returned slice is a copy and may be
// modified by the caller.
func (s *CachedShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil || face.Source() == nil {
		return nil
	}

	key := shapingKey{
		text:     text,
		fontID:   face.Source().ID(),
		sizeBits: math.Float64bits(face.Size()),
		hinting:  face.Hinting(),
	}
	glyphs := s.cache.GetOrCreate(key, func() []ShapedGlyph {
		return s.next.Shape(text, face)
	})
	return slices.Clone(glyphs)
}

// Stats returns the number of cached results and the hit and miss counts.
func (s *CachedShaper) Stats() (entries int, hits, misses uint64) {
	st := s.cache.Stats()
	return st.Len, st.Hits, st.Misses
}
