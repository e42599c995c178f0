package macro

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"testing"

	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/macro/text"
)

func TestDefaults(t *testing.T) {
	MustLoadDefaults()

	tmpl, err := DefaultTemplate()
	if err != nil {
		t.Fatalf("DefaultTemplate: %v", err)
	}
	if tmpl.Rect.Empty() {
		t.Fatal("template is empty")
	}
	if tmpl.Rect.Min != (image.Point{}) {
		t.Errorf("template origin = %v, want (0,0)", tmpl.Rect.Min)
	}

	other, err := DefaultTemplate()
	if err != nil {
		t.Fatalf("DefaultTemplate: %v", err)
	}
	if &other.Pix[0] == &tmpl.Pix[0] {
		t.Error("DefaultTemplate should return independent copies")
	}

	font, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if font.ID() != bold.ID() {
		t.Error("default font should be Go Bold")
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{200, 100, 50, 255})
	src.SetNRGBA(7, 6, color.NRGBA{255, 255, 255, 0})

	dst := ToRGBA(src)

	if dst.Rect != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(3,2)", dst.Rect)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
	if got := dst.RGBAAt(2, 1); got != (color.RGBA{}) {
		t.Errorf("transparent pixel = %v, want zero after premultiplication", got)
	}
}

func TestResourceError(t *testing.T) {
	err := error(&ResourceError{Resource: "font", Err: fs.ErrNotExist})

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ResourceError should unwrap to its cause")
	}
	var re *ResourceError
	if !errors.As(err, &re) || re.Resource != "font" {
		t.Errorf("errors.As = %v, %+v", re != nil, re)
	}
	if got, want := err.Error(), "macro: load font resource: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
