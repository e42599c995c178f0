package macro

import (
	_ "embed"
	"image"
	"sync"

	"golang.org/x/image/font/gofont/gobold"

	intImage "github.com/gogpu/macro/internal/image"
	"github.com/gogpu/macro/text"
)

//go:embed assets/template.png
var templatePNG []byte

// defaults holds the decoded compiled-in resources.
type defaults struct {
	template *image.RGBA
	font     *text.FontSource
	builder  *Builder
}

// loadDefaults decodes the embedded template and font once per process.
var loadDefaults = sync.OnceValues(func() (*defaults, error) {
	tmpl, err := intImage.DecodeBytes(templatePNG)
	if err != nil {
		return nil, &ResourceError{Resource: "template", Err: err}
	}

	font, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, &ResourceError{Resource: "font", Err: err}
	}

	return &defaults{
		template: tmpl,
		font:     font,
		builder:  NewBuilder(font, WithShaper(text.NewCachedShaper(&text.BuiltinShaper{}, 0))),
	}, nil
})

// DefaultTemplate returns a fresh copy of the built-in template image.
func DefaultTemplate() (*image.RGBA, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return ToRGBA(d.template), nil
}

// DefaultFont returns the built-in caption font (Go Bold).
// The returned FontSource is shared and must not be copied.
func DefaultFont() (*text.FontSource, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return d.font, nil
}

// MustLoadDefaults decodes the built-in resources and panics on failure.
// A failure means the binary was built with corrupt assets.
func MustLoadDefaults() {
	if _, err := loadDefaults(); err != nil {
		panic(err)
	}
}

// ToRGBA copies img into a new RGBA image whose bounds start at (0, 0),
// the form Builder.Generate draws on.
func ToRGBA(img image.Image) *image.RGBA {
	return intImage.ToRGBA(img)
}
