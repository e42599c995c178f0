package text

// SubpixelMode controls subpixel glyph positioning.
// With subpixel positioning each glyph is rasterized at its fractional pen
// offset, at the cost of extra cache entries per glyph.
type SubpixelMode int

const (
	// SubpixelNone disables subpixel positioning.
	// Glyphs snap to whole pixels.
	SubpixelNone SubpixelMode = 0

	// Subpixel4 uses 4 subpixel positions (0.0, 0.25, 0.5, 0.75).
	Subpixel4 SubpixelMode = 4

	// Subpixel10 uses 10 subpixel positions (0.0, 0.1, ..., 0.9).
	Subpixel10 SubpixelMode = 10
)

// String returns the string representation of the subpixel mode.
func (m SubpixelMode) String() string {
	switch m {
	case SubpixelNone:
		return "None"
	case Subpixel4:
		return "Subpixel4"
	case Subpixel10:
		return "Subpixel10"
	default:
		return unknownStr
	}
}

// IsEnabled returns true if subpixel positioning is enabled.
func (m SubpixelMode) IsEnabled() bool {
	return m > 0
}

// Divisions returns the number of subpixel divisions.
// Returns 1 for SubpixelNone (no divisions).
func (m SubpixelMode) Divisions() int {
	if m <= 0 {
		return 1
	}
	return int(m)
}

// Quantize converts a fractional position to an integer pixel and a
// quantized subpixel offset in [0, 1).
//
// For example, with Subpixel4 mode:
//   - pos=10.0 returns (10, 0)
//   - pos=10.3 returns (10, 0.25)
//   - pos=10.99 returns (10, 0.75)
//
// With SubpixelNone the position is rounded to the nearest pixel.
func Quantize(pos float64, mode SubpixelMode) (intPos int, offset float64) {
	if !mode.IsEnabled() {
		return roundHalfUp(pos), 0
	}

	// Compute floor (integer part that is <= pos)
	intPart := int(pos)
	if pos < 0 && pos != float64(intPart) {
		intPart--
	}

	frac := pos - float64(intPart)
	divisions := mode.Divisions()
	sub := int(frac * float64(divisions))
	sub = min(max(sub, 0), divisions-1)

	return intPart, float64(sub) / float64(divisions)
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(v float64) int {
	i := int(v)
	if v < 0 && v != float64(i) {
		i--
	}
	if v-float64(i) >= 0.5 {
		i++
	}
	return i
}
