package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontMismatch is returned when a glyph key names a different font
	// than the rasterizer it is handed to.
	ErrFontMismatch = errors.New("text: glyph key belongs to another font")
)
