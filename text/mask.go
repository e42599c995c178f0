package text

import (
	"fmt"
	"image"
)

// RenderMask paints placements into a w×h coverage mask.
//
// The mask starts fully transparent. Each glyph's coverage bitmap is copied
// with its top-left corner at (X+BearingX, Y+BearingY); pixels falling
// outside the mask are dropped. Where bitmaps overlap the glyph painted
// later overwrites the earlier one rather than accumulating, which keeps
// tightly kerned pairs from darkening at their seam.
//
// Negative dimensions are treated as zero. An error is returned only when
// src fails to produce a glyph.
func RenderMask(placements []GlyphPlacement, src GlyphSource, w, h int) (*image.Alpha, error) {
	mask := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if mask.Rect.Empty() {
		return mask, nil
	}

	for _, p := range placements {
		g, err := src.Glyph(p.Key)
		if err != nil {
			return nil, fmt.Errorf("text: render glyph %q: %w", p.Rune, err)
		}
		if g.Empty() {
			continue
		}
		paintGlyph(mask, g, p.X+g.Metrics.BearingX, p.Y+g.Metrics.BearingY)
	}

	return mask, nil
}

// paintGlyph copies g's coverage into mask with its top-left at (x0, y0),
// clipped to the mask bounds.
func paintGlyph(mask *image.Alpha, g RasterizedGlyph, x0, y0 int) {
	gw, gh := g.Metrics.Width, g.Metrics.Height
	if len(g.Coverage) < gw*gh {
		return
	}
	dst := image.Rect(x0, y0, x0+gw, y0+gh).Intersect(mask.Rect)
	if dst.Empty() {
		return
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		srcRow := (y-y0)*gw + (dst.Min.X - x0)
		dstRow := mask.PixOffset(dst.Min.X, y)
		copy(mask.Pix[dstRow:dstRow+dst.Dx()], g.Coverage[srcRow:srcRow+dst.Dx()])
	}
}
