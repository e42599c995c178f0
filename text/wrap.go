package text

import (
	"strings"
	"unicode"
)

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWord breaks at whitespace only.
	// Words wider than MaxWidth overflow their line.
	// This is the default (zero value).
	WrapWord WrapMode = iota

	// WrapNone disables text wrapping; text may exceed MaxWidth.
	// Hard line breaks are still honored.
	WrapNone

	// WrapWordChar breaks at whitespace first,
	// then falls back to character boundaries for long words.
	WrapWordChar

	// WrapChar breaks at character boundaries.
	// Any character can be a break point.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// BreakOpportunity represents a line break opportunity.
type BreakOpportunity uint8

const (
	// BreakNo means no break allowed here.
	BreakNo BreakOpportunity = iota
	// BreakAllowed means break is allowed here.
	BreakAllowed
)

// findBreakOpportunities returns, for each rune of a paragraph, whether a
// line may start at that rune. Index 0 is always BreakNo.
//
// Paragraphs never contain hard breaks; those are split off by
// splitParagraphs before wrapping.
func findBreakOpportunities(runes []rune, mode WrapMode) []BreakOpportunity {
	n := len(runes)
	if n == 0 {
		return nil
	}

	breaks := make([]BreakOpportunity, n)

	if mode == WrapNone {
		return breaks
	}

	for i := 1; i < n; i++ {
		breaks[i] = computeBreak(runes[i-1], runes[i], mode)
	}

	return breaks
}

// computeBreak determines the break opportunity between prev and curr.
func computeBreak(prev, curr rune, mode WrapMode) BreakOpportunity {
	if mode == WrapChar {
		return BreakAllowed
	}

	// Break after whitespace (or a zero-width space), never between two
	// whitespace runes so the break lands on the start of the next word.
	if (unicode.IsSpace(prev) || prev == '\u200B') && !unicode.IsSpace(curr) {
		return BreakAllowed
	}

	return BreakNo
}

// splitParagraphs splits text by hard line breaks.
func splitParagraphs(text string) []string {
	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Split(text, "\n")
}

// lineSpan is a half-open range of glyph indices forming one wrapped line.
type lineSpan struct {
	start, end int
}

// wrapGlyphs greedily splits shaped glyphs of one paragraph into lines no
// wider than maxWidth. Whitespace at the end of a line does not count
// toward its width and whitespace at the start of a wrapped line is
// skipped. maxWidth <= 0 disables wrapping.
func wrapGlyphs(glyphs []ShapedGlyph, breaks []BreakOpportunity, maxWidth float64, mode WrapMode) []lineSpan {
	if len(glyphs) == 0 {
		return []lineSpan{{}}
	}

	if maxWidth <= 0 || mode == WrapNone {
		return []lineSpan{{start: 0, end: len(glyphs)}}
	}

	canBreak := func(i int) bool {
		c := glyphs[i].Cluster
		return c > 0 && c < len(breaks) && breaks[c] != BreakNo
	}

	spans := make([]lineSpan, 0, 4)
	lineStart := 0
	lastBreak := -1

	for i := 0; i < len(glyphs); i++ {
		if i > lineStart && canBreak(i) {
			lastBreak = i
		}

		if isBlank(glyphs[i].Rune) {
			continue
		}

		end := glyphs[i].X + glyphs[i].XAdvance - glyphs[lineStart].X
		if end <= maxWidth || i == lineStart {
			continue
		}

		breakAt := -1
		switch {
		case lastBreak > lineStart:
			breakAt = lastBreak
		case mode == WrapWordChar:
			breakAt = i
		}
		if breakAt < 0 {
			// WrapWord: the word overflows until the next opportunity.
			continue
		}

		spans = append(spans, lineSpan{start: lineStart, end: breakAt})

		lineStart = breakAt
		for lineStart < len(glyphs)-1 && isBlank(glyphs[lineStart].Rune) {
			lineStart++
		}
		lastBreak = -1
		// Re-examine from the new line start.
		i = lineStart - 1
	}

	return append(spans, lineSpan{start: lineStart, end: len(glyphs)})
}

// isBlank reports whether r produces no ink: whitespace, control
// characters and the zero-width space.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == '\u200B'
}
