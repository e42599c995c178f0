// Package casing rewrites caption text in alternating or random letter case
// ("LiKe tHiS"), the classic mocking-meme style.
//
// A Capitalizer carries its alternation state across calls, so feeding it
// the top and then the bottom caption continues the pattern where the top
// caption left off:
//
//	c := casing.New(casing.AlternatingUpper)
//	top := c.Apply("tacos")      // "TaCoS"
//	bottom := c.Apply("tuesday") // "tUeSdAy"
package casing

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownStyle is returned by ParseStyle for unrecognized style names.
var ErrUnknownStyle = errors.New("casing: unknown style")

// Style selects how letters are capitalized.
type Style int

const (
	// AlternatingUpper starts upper case and flips on every rune,
	// whitespace included: "TaCo tRuCk".
	AlternatingUpper Style = iota
	// AlternatingLower starts lower case and flips on every rune:
	// "tAcO TrUcK".
	AlternatingLower
	// AlternatingUpperSkipSpace starts upper case and does not flip on
	// whitespace: "TaCo TrUcK".
	AlternatingUpperSkipSpace
	// AlternatingLowerSkipSpace starts lower case and does not flip on
	// whitespace: "tAcO tRuCk".
	AlternatingLowerSkipSpace
	// Random capitalizes each rune with probability 1/2.
	Random
)

// String returns the style's sample spelling, which ParseStyle accepts.
func (s Style) String() string {
	switch s {
	case AlternatingUpper:
		return "LiKe tHiS"
	case AlternatingLower:
		return "lIkE ThIs"
	case AlternatingUpperSkipSpace:
		return "LiKe ThIs"
	case AlternatingLowerSkipSpace:
		return "lIkE tHiS"
	case Random:
		return "RaNDOmlY"
	default:
		return "Unknown"
	}
}

// ParseStyle parses a style from its sample spelling. The alternating
// styles are matched case-sensitively, since the capitalization of the
// sample is what names them. Any other input naming "randomly" exactly
// once, in any case, selects Random.
func ParseStyle(s string) (Style, error) {
	for _, st := range []Style{AlternatingUpper, AlternatingLower, AlternatingUpperSkipSpace, AlternatingLowerSkipSpace} {
		if s == st.String() {
			return st, nil
		}
	}
	if strings.Count(strings.ToLower(s), "randomly") == 1 {
		return Random, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStyle, s)
}

// Option configures a Capitalizer.
type Option func(*Capitalizer)

// WithRand sets the random source used by the Random style.
// The default is seeded from the runtime.
func WithRand(r *rand.Rand) Option {
	return func(c *Capitalizer) {
		if r != nil {
			c.rng = r
		}
	}
}

// Capitalizer applies a Style to successive strings.
// It is not safe for concurrent use.
type Capitalizer struct {
	style     Style
	nextUpper bool
	rng       *rand.Rand

	upper cases.Caser
	lower cases.Caser
}

// New creates a Capitalizer for style.
func New(style Style, opts ...Option) *Capitalizer {
	c := &Capitalizer{
		style:     style,
		nextUpper: style == AlternatingUpper || style == AlternatingUpperSkipSpace,
		upper:     cases.Upper(language.Und),
		lower:     cases.Lower(language.Und),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Apply returns s recased rune by rune. Runes whose case mapping expands
// (such as ß to SS) expand in the output too.
func (c *Capitalizer) Apply(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		caser := &c.lower
		if c.capitalize(r) {
			caser = &c.upper
		}
		b.WriteString(caser.String(string(r)))
	}

	return b.String()
}

// capitalize reports whether r is upper cased and advances the state.
func (c *Capitalizer) capitalize(r rune) bool {
	switch c.style {
	case Random:
		return c.rng.IntN(2) == 1
	case AlternatingUpperSkipSpace, AlternatingLowerSkipSpace:
		upper := c.nextUpper
		if !unicode.IsSpace(r) {
			c.nextUpper = !c.nextUpper
		}
		return upper
	default:
		upper := c.nextUpper
		c.nextUpper = !c.nextUpper
		return upper
	}
}
