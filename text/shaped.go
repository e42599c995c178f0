package text

// ShapedGlyph represents a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Rune is the source character. For ligatures, this is the first
	// character of the cluster.
	Rune rune

	// Cluster is the source rune index in the shaped text.
	Cluster int

	// X is the horizontal pen position relative to the text origin.
	X float64

	// Y is the vertical offset relative to the baseline (Y down).
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
