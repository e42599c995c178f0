package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, so each method allocates one on the stack.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return 0
	}

	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern.
// Fonts without a kern table report sfnt.ErrNotFound, which maps to 0.
func (f *ximageParsedFont) Kern(left, right uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer

	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return FontMetrics{}
	}

	// font.Metrics.Descent is positive below the baseline; FontMetrics
	// keeps the OpenType sign convention. Height is rounded separately from
	// Ascent and Descent, so the derived gap can dip just below zero.
	lineGap := max(metrics.Height-metrics.Ascent-metrics.Descent, 0)
	return FontMetrics{
		Ascent:    fixedToFloat(metrics.Ascent),
		Descent:   -fixedToFloat(metrics.Descent),
		LineGap:   fixedToFloat(lineGap),
		XHeight:   fixedToFloat(metrics.XHeight),
		CapHeight: fixedToFloat(metrics.CapHeight),
	}
}

// RasterizeGlyph implements ParsedFont.RasterizeGlyph.
//
// The outline is loaded unhinted with sfnt.Font.LoadGlyph and filled with a
// vector.Rasterizer. The bitmap is the smallest pixel-aligned box that
// contains the shifted outline; its top-left corner relative to the pen
// position is reported as the bearing.
func (f *ximageParsedFont) RasterizeGlyph(glyphIndex uint16, ppem, dx fixed.Int26_6) (RasterizedGlyph, error) {
	var buf sfnt.Buffer
	gid := sfnt.GlyphIndex(glyphIndex)

	advance, err := f.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
	if err != nil {
		return RasterizedGlyph{}, fmt.Errorf("text: glyph %d advance: %w", glyphIndex, err)
	}

	segments, err := f.font.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return RasterizedGlyph{}, fmt.Errorf("text: load glyph %d: %w", glyphIndex, err)
	}

	metrics := GlyphMetrics{Advance: fixedToFloat(advance)}

	// Whitespace glyphs have no outline.
	if len(segments) == 0 {
		return RasterizedGlyph{Metrics: metrics}, nil
	}

	b := segments.Bounds()
	minX := (b.Min.X + dx).Floor()
	maxX := (b.Max.X + dx).Ceil()
	minY := b.Min.Y.Floor()
	maxY := b.Max.Y.Ceil()

	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return RasterizedGlyph{Metrics: metrics}, nil
	}

	// Outline coordinates are 26.6 pixels relative to the pen; translate
	// them into bitmap space.
	originX := float32(dx)/64 - float32(minX)
	originY := -float32(minY)
	px := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + originX, float32(p.Y)/64 + originY
	}

	r := vector.NewRasterizer(w, h)
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			started = true
			x, y := px(seg.Args[0])
			r.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := px(seg.Args[0])
			r.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := px(seg.Args[0])
			cx, cy := px(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := px(seg.Args[0])
			cx, cy := px(seg.Args[1])
			ex, ey := px(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if started {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	metrics.Width = w
	metrics.Height = h
	metrics.BearingX = minX
	metrics.BearingY = minY

	return RasterizedGlyph{Metrics: metrics, Coverage: dst.Pix}, nil
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
