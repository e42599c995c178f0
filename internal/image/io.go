// Package image loads, converts and saves the raster images macros are
// drawn on.
//
// Decoding honors EXIF orientation and accepts every format registered with
// the standard image package plus BMP, TIFF and WebP.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an output format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Format is an output encoding.
type Format int

const (
	// FormatPNG encodes lossless PNG.
	FormatPNG Format = iota
	// FormatJPEG encodes baseline JPEG.
	FormatJPEG
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load decodes the image file at path into an RGBA image.
func Load(path string) (*image.RGBA, error) {
	img, err := imaging.Open(filepath.Clean(path), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// Decode reads an image from r into an RGBA image.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return ToRGBA(img), nil
}

// DecodeBytes decodes an in-memory image into an RGBA image.
func DecodeBytes(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// ToRGBA copies img into a new RGBA image whose bounds start at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Resize scales img to the given width, keeping its aspect ratio.
// A non-positive width or one equal to the current width returns img.
func Resize(img *image.RGBA, width int) *image.RGBA {
	if width <= 0 || width == img.Rect.Dx() {
		return img
	}
	return ToRGBA(imaging.Resize(img, width, 0, imaging.Lanczos))
}

// Encode writes img to w in the given format. quality applies to JPEG
// and is clamped to 1-100.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("image: encode PNG: %w", err)
		}
	case FormatJPEG:
		quality = min(max(quality, 1), 100)
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("image: encode JPEG: %w", err)
		}
	default:
		return ErrUnsupportedFormat
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, img, format, quality); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}
