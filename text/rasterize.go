package text

import (
	"golang.org/x/image/math/fixed"
)

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// GlyphRasterKey uniquely identifies a rasterization request.
// Equal keys always produce bit-identical rasterizations, so the key is
// used directly as the GlyphCache map key.
type GlyphRasterKey struct {
	// FontID is FontSource.ID of the font the glyph comes from.
	FontID uint64

	// GID is the glyph index within the font.
	GID GlyphID

	// Size is the pixel size (ppem) in 26.6 fixed point, so that sizes
	// compare exactly.
	Size fixed.Int26_6

	// Offset is the fractional horizontal pen offset in 26.6 fixed point,
	// in [0, 64). It is always 0 when subpixel positioning is disabled.
	Offset fixed.Int26_6
}

// GlyphMetrics records positioning data for a rasterized glyph.
type GlyphMetrics struct {
	// Width and Height are the coverage bitmap dimensions in pixels.
	Width, Height int

	// BearingX and BearingY are the offset from the pen position on the
	// baseline to the top-left corner of the bitmap (Y down).
	BearingX, BearingY int

	// Advance is the unhinted horizontal advance in pixels.
	Advance float64
}

// RasterizedGlyph is an immutable rasterized glyph.
// Coverage is Width*Height bytes, row-major, top-to-bottom, where 0 is
// transparent and 255 fully covered. Callers must not modify it.
type RasterizedGlyph struct {
	Metrics  GlyphMetrics
	Coverage []byte
}

// Empty reports whether the glyph has no visible pixels.
func (g RasterizedGlyph) Empty() bool {
	return g.Metrics.Width <= 0 || g.Metrics.Height <= 0
}

// Rasterizer converts a GlyphRasterKey into a RasterizedGlyph.
// Rasterize must be a pure function of the key.
type Rasterizer interface {
	Rasterize(key GlyphRasterKey) (RasterizedGlyph, error)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(key GlyphRasterKey) (RasterizedGlyph, error)

// Rasterize implements Rasterizer.
func (f RasterizerFunc) Rasterize(key GlyphRasterKey) (RasterizedGlyph, error) {
	return f(key)
}

// sourceRasterizer rasterizes glyphs of a single FontSource.
type sourceRasterizer struct {
	source *FontSource
}

// Rasterize implements Rasterizer.
func (r *sourceRasterizer) Rasterize(key GlyphRasterKey) (RasterizedGlyph, error) {
	if key.FontID != r.source.id {
		return RasterizedGlyph{}, ErrFontMismatch
	}
	return r.source.parsed.RasterizeGlyph(uint16(key.GID), key.Size, key.Offset)
}

// RasterKey builds the key for glyph gid of face at the fractional pen
// offset subX (in pixels, [0, 1)).
func RasterKey(face Face, gid GlyphID, subX float64) GlyphRasterKey {
	return GlyphRasterKey{
		FontID: face.Source().ID(),
		GID:    gid,
		Size:   floatToFixed(face.Size()),
		Offset: floatToFixed(subX),
	}
}
