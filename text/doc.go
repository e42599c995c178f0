// Package text provides the caption text pipeline for macro.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific pixel size
//   - Shaper: Converts a string into positioned glyphs (builtin or go-text)
//   - Layouter: Word-wraps and aligns shaped glyphs into GlyphPlacements
//   - GlyphCache: Memoizes glyph rasterization by GlyphRasterKey
//   - RenderMask: Paints placements into a single-channel coverage mask
//
// # Example usage
//
//	source, err := text.NewFontSource(gobold.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face := source.Face(48)
//	layout := text.DefaultLayouter().Layout(face, text.Constraints{
//	    MaxWidth:  640,
//	    MaxHeight: 120,
//	    Align:     text.AlignCenter,
//	}, "taco truck")
//
//	cache := text.NewGlyphCache(source.Rasterizer(), 128)
//	mask, err := text.RenderMask(layout.Placements, cache, 640, 120)
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used and glyph outlines
// are rasterized with golang.org/x/image/vector.
package text
