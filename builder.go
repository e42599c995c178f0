package macro

import (
	"fmt"
	"image"

	"github.com/gogpu/macro/internal/blend"
	"github.com/gogpu/macro/text"
)

// Captions holds the optional top and bottom captions of a macro.
// A nil field means the caption is absent; an empty string is laid out
// like any other caption and paints nothing.
type Captions struct {
	Top    *string
	Bottom *string
}

// Caption returns a pointer to s, for filling Captions inline.
func Caption(s string) *string {
	return &s
}

// Builder overlays captions onto images using one font.
//
// A Builder is immutable after construction and safe for concurrent use.
// Each Generate call owns its own glyph cache, shared by both captions.
type Builder struct {
	font *text.FontSource
	cfg  builderConfig
}

// NewBuilder creates a Builder rendering captions in font.
func NewBuilder(font *text.FontSource, opts ...Option) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{font: font, cfg: cfg}
}

// Generate composites the captions onto base in place and returns base.
//
// The font size is the image height times the font scale and each caption
// is laid out in a box as wide as the image and as tall as the image height
// times the region scale. The top caption box sits at the top edge; the
// bottom caption is anchored so that its laid out text ends at the bottom
// edge. Text that does not fit its box is clipped.
//
// With no captions base is returned untouched.
func (b *Builder) Generate(base *image.RGBA, c Captions) (*image.RGBA, error) {
	if base == nil {
		return nil, ErrNilImage
	}
	if c.Top == nil && c.Bottom == nil {
		return base, nil
	}
	if b.font == nil {
		return nil, ErrNilFont
	}

	size := base.Rect.Size()
	if size.X <= 0 || size.Y <= 0 {
		return base, nil
	}

	g := b.newGeneration(size)
	Logger().Debug("macro: generate",
		"width", size.X,
		"height", size.Y,
		"fontSize", g.face.Size(),
		"region", g.region,
	)

	if c.Top != nil {
		if err := b.drawCaption(base, *c.Top, anchorTop, g); err != nil {
			return nil, err
		}
	}
	if c.Bottom != nil {
		if err := b.drawCaption(base, *c.Bottom, anchorBottom, g); err != nil {
			return nil, err
		}
	}

	hits, misses := g.cache.Stats()
	Logger().Debug("macro: glyph cache", "entries", g.cache.Len(), "hits", hits, "misses", misses)

	return base, nil
}

// Generate captions a copy of the built-in template with the built-in font.
func Generate(top, bottom *string) (*image.RGBA, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return d.builder.Generate(ToRGBA(d.template), Captions{Top: top, Bottom: bottom})
}

// anchor selects which image edge a caption is attached to.
type anchor int

const (
	anchorTop anchor = iota
	anchorBottom
)

func (a anchor) String() string {
	if a == anchorBottom {
		return "bottom"
	}
	return "top"
}

// generation is the per-call state shared by both captions.
type generation struct {
	face        text.Face
	region      image.Point
	constraints text.Constraints
	cache       *text.GlyphCache
}

func (b *Builder) newGeneration(size image.Point) *generation {
	h := float64(size.Y)
	region := image.Pt(size.X, int(h*b.cfg.regionScale))

	return &generation{
		face:   b.font.Face(h * b.cfg.fontScale),
		region: region,
		constraints: text.Constraints{
			MaxWidth:  float64(region.X),
			MaxHeight: float64(region.Y),
			Align:     b.cfg.align,
			Wrap:      b.cfg.wrap,
			Subpixel:  b.cfg.subpixel,
		},
		cache: text.NewGlyphCache(b.font.Rasterizer(), b.cfg.cacheCapacity),
	}
}

// drawCaption lays out caption, renders its coverage mask and composites it
// onto dst at the given edge.
func (b *Builder) drawCaption(dst *image.RGBA, caption string, at anchor, g *generation) error {
	layout := b.cfg.layouter.Layout(g.face, g.constraints, caption)

	mask, err := text.RenderMask(layout.Placements, g.cache, g.region.X, g.region.Y)
	if err != nil {
		return fmt.Errorf("macro: render %s caption: %w", at, err)
	}

	off := dst.Rect.Min
	if at == anchorBottom {
		off.Y += dst.Rect.Dy() - int(layout.Height)
	}

	blend.MaskOver(dst, mask, b.cfg.textColor, off)

	Logger().Debug("macro: caption",
		"anchor", at,
		"lines", len(layout.Lines),
		"height", layout.Height,
		"overflow", layout.Overflow,
		"offset", off,
	)
	return nil
}
