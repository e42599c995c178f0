package text

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Alignment specifies text horizontal alignment within the layout width.
type Alignment int

const (
	// AlignLeft aligns text to the left edge.
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Constraints configures text layout.
// The block is always top aligned: the first baseline sits one ascent
// below the top of the box.
type Constraints struct {
	// MaxWidth is the maximum line width in pixels.
	// If 0, no line wrapping is performed and lines are left aligned.
	MaxWidth float64

	// MaxHeight is the height of the box. Lines below it are still laid
	// out; Layout.Overflow reports it and the mask clips them.
	MaxHeight float64

	// Align specifies horizontal alignment of each line.
	Align Alignment

	// Wrap selects where lines may break.
	Wrap WrapMode

	// Subpixel selects horizontal subpixel glyph positioning.
	Subpixel SubpixelMode
}

// sanitize replaces NaN, infinite and negative dimensions with 0.
func (c Constraints) sanitize() Constraints {
	c.MaxWidth = finiteNonNegative(c.MaxWidth)
	c.MaxHeight = finiteNonNegative(c.MaxHeight)
	return c
}

func finiteNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// GlyphPlacement is one visible glyph produced by layout: its raster key and
// its integer pen position on the baseline, in region coordinates with the
// origin at the top-left and Y increasing downward.
type GlyphPlacement struct {
	Key  GlyphRasterKey
	Rune rune
	X, Y int
}

// Line represents a laid out line of text.
type Line struct {
	// Glyphs holds the line's glyphs with X relative to the line start.
	// Trailing whitespace is kept; leading whitespace of a wrapped line is
	// dropped.
	Glyphs []ShapedGlyph

	// Width is the advance width up to the end of the last visible glyph.
	Width float64

	// Offset is the horizontal alignment offset of the line.
	Offset float64

	// Baseline is the Y position of the line's baseline.
	Baseline float64
}

// Layout represents the result of text layout.
type Layout struct {
	// Lines contains all lines of laid out text.
	Lines []Line

	// Placements holds every visible glyph in line order.
	// Whitespace and control characters produce no placement.
	Placements []GlyphPlacement

	// Width is the maximum width among all lines.
	Width float64

	// Height is the total rendered height: the number of lines times the
	// line height.
	Height float64

	// Overflow reports whether Height exceeds a non-zero MaxHeight.
	Overflow bool
}

// Layouter computes glyph placements for a string inside a box.
// Implementations must be deterministic.
type Layouter interface {
	Layout(face Face, c Constraints, text string) *Layout
}

// WordLayouter is the default Layouter. It splits paragraphs at hard line
// breaks, greedily wraps each one at break opportunities given by
// Constraints.Wrap, and aligns every line inside MaxWidth.
type WordLayouter struct {
	// Shaper shapes each paragraph. Nil uses the global shaper.
	Shaper Shaper
}

// DefaultLayouter returns a WordLayouter using the global shaper.
func DefaultLayouter() *WordLayouter {
	return &WordLayouter{}
}

// LayoutText lays out text with the default layouter.
func LayoutText(text string, face Face, c Constraints) *Layout {
	return DefaultLayouter().Layout(face, c, text)
}

// Layout implements Layouter.
func (l *WordLayouter) Layout(face Face, c Constraints, text string) *Layout {
	layout := &Layout{}
	if text == "" || face == nil {
		return layout
	}

	c = c.sanitize()
	text = norm.NFC.String(text)

	metrics := face.Metrics()
	lineHeight := metrics.LineHeight()

	for _, para := range splitParagraphs(text) {
		glyphs := l.shape(para, face)
		breaks := findBreakOpportunities([]rune(para), c.Wrap)

		for _, span := range wrapGlyphs(glyphs, breaks, c.MaxWidth, c.Wrap) {
			line := newLine(glyphs[span.start:span.end])
			line.Baseline = float64(len(layout.Lines))*lineHeight + metrics.Ascent
			line.Offset = alignOffset(c.Align, c.MaxWidth, line.Width)

			layout.Width = max(layout.Width, line.Width)
			layout.Lines = append(layout.Lines, line)
		}
	}

	layout.Height = float64(len(layout.Lines)) * lineHeight
	layout.Overflow = c.MaxHeight > 0 && layout.Height > c.MaxHeight
	layout.Placements = placeGlyphs(layout.Lines, face, c.Subpixel)

	return layout
}

// shape runs the configured shaper over one paragraph.
func (l *WordLayouter) shape(para string, face Face) []ShapedGlyph {
	if para == "" {
		return nil
	}
	if l.Shaper != nil {
		return l.Shaper.Shape(para, face)
	}
	return Shape(para, face)
}

// newLine builds a Line from a span of shaped glyphs, rebasing X to the
// first glyph.
func newLine(glyphs []ShapedGlyph) Line {
	line := Line{Glyphs: make([]ShapedGlyph, len(glyphs))}
	if len(glyphs) == 0 {
		return line
	}

	startX := glyphs[0].X
	for i, g := range glyphs {
		g.X -= startX
		line.Glyphs[i] = g
		if !isBlank(g.Rune) {
			line.Width = g.X + g.XAdvance
		}
	}

	return line
}

// alignOffset returns the X offset of a line of the given width.
// A line wider than the box keeps its center on the box center, so it
// overhangs both edges equally.
func alignOffset(align Alignment, maxWidth, width float64) float64 {
	if maxWidth <= 0 {
		return 0
	}
	switch align {
	case AlignCenter:
		return (maxWidth - width) / 2
	case AlignRight:
		return maxWidth - width
	default:
		return 0
	}
}

// placeGlyphs converts visible glyphs of every line into placements.
func placeGlyphs(lines []Line, face Face, mode SubpixelMode) []GlyphPlacement {
	n := 0
	for i := range lines {
		n += len(lines[i].Glyphs)
	}
	placements := make([]GlyphPlacement, 0, n)

	for i := range lines {
		line := &lines[i]
		for _, g := range line.Glyphs {
			if isBlank(g.Rune) {
				continue
			}

			x, sub := Quantize(line.Offset+g.X, mode)
			placements = append(placements, GlyphPlacement{
				Key:  RasterKey(face, g.GID, sub),
				Rune: g.Rune,
				X:    x,
				Y:    roundHalfUp(line.Baseline + g.Y),
			})
		}
	}

	return placements
}
