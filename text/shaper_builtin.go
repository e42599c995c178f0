package text

import "unicode"

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It positions glyphs left to right using their advances and the font's
// kern table. It does no ligature substitution and no GPOS kerning; use
// GoTextShaper for those.
//
// Control characters are given a zero advance.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	hinting := face.Hinting()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	prev := -1

	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)

		var advance float64
		if !unicode.IsControl(r) {
			advance = parsed.GlyphAdvance(gid, size, hinting)
			if prev >= 0 {
				x += parsed.Kern(uint16(prev), gid, size, hinting)
			}
			prev = int(gid)
		} else {
			prev = -1
		}

		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Rune:     r,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})

		x += advance
	}

	return result
}
