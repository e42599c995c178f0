package macro

import (
	"image/color"
	"math"

	"github.com/gogpu/macro/text"
)

// Default proportions relative to the base image height.
const (
	// DefaultFontScale sizes the caption font at 1/8 of the image height.
	DefaultFontScale = 1.0 / 8

	// DefaultRegionScale gives each caption box 1/4 of the image height.
	DefaultRegionScale = 1.0 / 4

	// DefaultCacheCapacity is the glyph cache size hint per Generate call.
	DefaultCacheCapacity = 1024
)

// Option configures a Builder.
//
// Example:
//
//	b := macro.NewBuilder(font,
//	    macro.WithTextColor(color.RGBA{255, 255, 0, 255}),
//	    macro.WithShaper(text.NewGoTextShaper()),
//	)
type Option func(*builderConfig)

// builderConfig holds Builder configuration.
type builderConfig struct {
	textColor     color.RGBA
	fontScale     float64
	regionScale   float64
	align         text.Alignment
	wrap          text.WrapMode
	subpixel      text.SubpixelMode
	layouter      text.Layouter
	cacheCapacity int
}

// defaultBuilderConfig returns the classic impact-style configuration:
// white centered text, wrapped at word boundaries, snapped to whole pixels.
func defaultBuilderConfig() builderConfig {
	return builderConfig{
		textColor:     color.RGBA{255, 255, 255, 255},
		fontScale:     DefaultFontScale,
		regionScale:   DefaultRegionScale,
		align:         text.AlignCenter,
		wrap:          text.WrapWord,
		subpixel:      text.SubpixelNone,
		layouter:      text.DefaultLayouter(),
		cacheCapacity: DefaultCacheCapacity,
	}
}

// WithTextColor sets the caption color. c is premultiplied, as all
// color.RGBA values are.
func WithTextColor(c color.RGBA) Option {
	return func(cfg *builderConfig) {
		cfg.textColor = c
	}
}

// WithFontScale sets the font size as a fraction of the image height.
// Non-positive or non-finite values are ignored.
func WithFontScale(scale float64) Option {
	return func(cfg *builderConfig) {
		if validScale(scale) {
			cfg.fontScale = scale
		}
	}
}

// WithRegionScale sets the caption box height as a fraction of the image
// height. Non-positive or non-finite values are ignored.
func WithRegionScale(scale float64) Option {
	return func(cfg *builderConfig) {
		if validScale(scale) {
			cfg.regionScale = scale
		}
	}
}

// WithAlignment sets horizontal alignment of caption lines.
func WithAlignment(a text.Alignment) Option {
	return func(cfg *builderConfig) {
		cfg.align = a
	}
}

// WithWrap sets where caption lines may break.
func WithWrap(m text.WrapMode) Option {
	return func(cfg *builderConfig) {
		cfg.wrap = m
	}
}

// WithSubpixel enables subpixel glyph positioning.
func WithSubpixel(m text.SubpixelMode) Option {
	return func(cfg *builderConfig) {
		cfg.subpixel = m
	}
}

// WithShaper lays captions out with the default word layouter driven by s.
func WithShaper(s text.Shaper) Option {
	return func(cfg *builderConfig) {
		cfg.layouter = &text.WordLayouter{Shaper: s}
	}
}

// WithLayouter replaces the caption layouter entirely.
// A nil layouter is ignored.
func WithLayouter(l text.Layouter) Option {
	return func(cfg *builderConfig) {
		if l != nil {
			cfg.layouter = l
		}
	}
}

// WithCacheCapacity sets the glyph cache size hint used per Generate call.
func WithCacheCapacity(n int) Option {
	return func(cfg *builderConfig) {
		cfg.cacheCapacity = max(n, 0)
	}
}

func validScale(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
