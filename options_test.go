package macro

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/macro/text"
)

func TestDefaultBuilderConfig(t *testing.T) {
	cfg := defaultBuilderConfig()

	if cfg.textColor != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("textColor = %v, want opaque white", cfg.textColor)
	}
	if cfg.fontScale != 0.125 {
		t.Errorf("fontScale = %f, want 0.125", cfg.fontScale)
	}
	if cfg.regionScale != 0.25 {
		t.Errorf("regionScale = %f, want 0.25", cfg.regionScale)
	}
	if cfg.align != text.AlignCenter {
		t.Errorf("align = %v, want Center", cfg.align)
	}
	if cfg.subpixel.IsEnabled() {
		t.Error("subpixel positioning should be off by default")
	}
	if cfg.layouter == nil {
		t.Error("layouter should default to the word layouter")
	}
}

func TestOptions(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	shaper := text.NewGoTextShaper()

	cfg := defaultBuilderConfig()
	for _, opt := range []Option{
		WithTextColor(red),
		WithFontScale(0.2),
		WithRegionScale(0.3),
		WithAlignment(text.AlignLeft),
		WithWrap(text.WrapWordChar),
		WithSubpixel(text.Subpixel4),
		WithShaper(shaper),
		WithCacheCapacity(-1),
	} {
		opt(&cfg)
	}

	if cfg.textColor != red {
		t.Errorf("textColor = %v, want %v", cfg.textColor, red)
	}
	if cfg.fontScale != 0.2 || cfg.regionScale != 0.3 {
		t.Errorf("scales = (%f, %f), want (0.2, 0.3)", cfg.fontScale, cfg.regionScale)
	}
	if cfg.align != text.AlignLeft || cfg.wrap != text.WrapWordChar || cfg.subpixel != text.Subpixel4 {
		t.Errorf("layout options not applied: %v %v %v", cfg.align, cfg.wrap, cfg.subpixel)
	}
	if wl, ok := cfg.layouter.(*text.WordLayouter); !ok || wl.Shaper != shaper {
		t.Errorf("layouter = %#v, want WordLayouter with the given shaper", cfg.layouter)
	}
	if cfg.cacheCapacity != 0 {
		t.Errorf("cacheCapacity = %d, want 0 for negative input", cfg.cacheCapacity)
	}
}

func TestOptions_InvalidScalesIgnored(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		cfg := defaultBuilderConfig()
		WithFontScale(v)(&cfg)
		WithRegionScale(v)(&cfg)

		if cfg.fontScale != DefaultFontScale || cfg.regionScale != DefaultRegionScale {
			t.Errorf("scale %v should be ignored, got (%f, %f)", v, cfg.fontScale, cfg.regionScale)
		}
	}
}

func TestWithLayouter_NilIgnored(t *testing.T) {
	cfg := defaultBuilderConfig()
	orig := cfg.layouter

	WithLayouter(nil)(&cfg)

	if cfg.layouter != orig {
		t.Error("nil layouter should be ignored")
	}
}
