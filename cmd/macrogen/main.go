// Command macrogen captions an image macro and writes it as PNG or JPEG.
//
// Usage:
//
//	macrogen -top "one does not simply" -bottom "write a meme generator" -o out.png
//	macrogen -template cat.jpg -bottom "nice" -width 600 -o out.jpg
//	macrogen -bottom "piped" -o - > out.png
//	macrogen -bottom "copied" -clip
//	macrogen -style "LiKe tHiS" -bottom "i am very smart"
//	fortune | macrogen -bottom-file - -o fortune.png
//
// The spongify subcommand recases text without drawing anything. Its input
// is the inline argument (a file if one by that name exists, - for stdin,
// otherwise the text itself) or one of -text, -file and -stdin:
//
//	macrogen spongify "taco truck"            # TaCo tRuCk
//	macrogen spongify -style "lIkE tHiS" -file notes.txt -o notes.out
//	echo "nice" | macrogen spongify - -clip
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.design/x/clipboard"

	"github.com/gogpu/macro"
	"github.com/gogpu/macro/casing"
	intImage "github.com/gogpu/macro/internal/image"
	"github.com/gogpu/macro/text"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("macrogen: %v", err)
	}
}

// options holds parsed command line flags.
type options struct {
	top, bottom  optionalString
	topFile      string
	bottomFile   string
	templatePath string
	fontPath     string
	shaper       string
	output       string
	color        string
	style        string
	width        int
	quality      int
	clip         bool
	verbose      bool
}

// optionalString is a string flag that remembers whether it was set, so an
// explicitly empty caption is distinct from an absent one.
type optionalString struct {
	value string
	set   bool
}

func (s *optionalString) String() string { return s.value }

func (s *optionalString) Set(v string) error {
	s.value, s.set = v, true
	return nil
}

func (s *optionalString) ptr() *string {
	if !s.set {
		return nil
	}
	return &s.value
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options

	fs := flag.NewFlagSet("macrogen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.top, "top", "top caption")
	fs.Var(&o.bottom, "bottom", "bottom caption")
	fs.StringVar(&o.topFile, "top-file", "", "read the top caption from a file, - for stdin")
	fs.StringVar(&o.bottomFile, "bottom-file", "", "read the bottom caption from a file, - for stdin")
	fs.StringVar(&o.templatePath, "template", "", "base image (PNG, JPEG, GIF, BMP, TIFF, WebP); built-in template if empty")
	fs.StringVar(&o.fontPath, "font", "", "TTF/OTF font file; Go Bold if empty")
	fs.StringVar(&o.shaper, "shaper", "builtin", "text shaper: builtin or gotext")
	fs.StringVar(&o.output, "o", "macro.png", "output file (.png, .jpg), - for PNG on stdout")
	fs.StringVar(&o.color, "color", "#ffffff", "caption color as #rrggbb")
	fs.StringVar(&o.style, "style", "", `recase captions: "LiKe tHiS", "LiKe ThIs", "lIkE ThIs", "lIkE tHiS" or "randomly"`)
	fs.IntVar(&o.width, "width", 0, "resize the base image to this width before captioning")
	fs.IntVar(&o.quality, "quality", 90, "JPEG quality (1-100)")
	fs.BoolVar(&o.clip, "clip", false, "also copy the PNG to the clipboard")
	fs.BoolVar(&o.verbose, "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s (use spongify to recase text)", strings.Join(fs.Args(), " "))
	}
	switch {
	case o.top.set && o.topFile != "":
		return nil, errors.New("-top and -top-file cannot be combined")
	case o.bottom.set && o.bottomFile != "":
		return nil, errors.New("-bottom and -bottom-file cannot be combined")
	case o.topFile == "-" && o.bottomFile == "-":
		return nil, errors.New("only one caption can be read from stdin")
	}
	return &o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "spongify" {
		return runSpongify(args[1:], stdin, stdout, stderr)
	}

	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.verbose {
		macro.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	builder, err := newBuilder(o)
	if err != nil {
		return err
	}

	base, err := loadBase(o.templatePath, o.width)
	if err != nil {
		return err
	}

	captions, err := readCaptions(o, stdin)
	if err != nil {
		return err
	}
	captions, err = recase(captions, o.style)
	if err != nil {
		return err
	}

	img, err := builder.Generate(base, captions)
	if err != nil {
		return err
	}

	if err := writeOutput(o.output, img, o.quality, stdout); err != nil {
		return err
	}

	if o.clip {
		return copyToClipboard(img)
	}
	return nil
}

func newBuilder(o *options) (*macro.Builder, error) {
	var (
		font *text.FontSource
		err  error
	)
	if o.fontPath != "" {
		font, err = text.NewFontSourceFromFile(o.fontPath)
	} else {
		font, err = macro.DefaultFont()
	}
	if err != nil {
		return nil, err
	}

	tint, err := parseColor(o.color)
	if err != nil {
		return nil, err
	}
	opts := []macro.Option{macro.WithTextColor(tint)}

	switch o.shaper {
	case "builtin":
	case "gotext":
		opts = append(opts, macro.WithShaper(text.NewGoTextShaper()))
	default:
		return nil, fmt.Errorf("unknown shaper %q", o.shaper)
	}

	return macro.NewBuilder(font, opts...), nil
}

// loadBase decodes the template at path, or copies the built-in template
// when path is empty, and scales it to width if requested.
func loadBase(path string, width int) (*image.RGBA, error) {
	var (
		base *image.RGBA
		err  error
	)
	if path == "" {
		base, err = macro.DefaultTemplate()
	} else {
		base, err = intImage.Load(path)
	}
	if err != nil {
		return nil, err
	}

	return intImage.Resize(base, width), nil
}

// readCaptions collects the captions from flags or the files they name.
func readCaptions(o *options, stdin io.Reader) (macro.Captions, error) {
	top, err := readCaption(o.top, o.topFile, stdin)
	if err != nil {
		return macro.Captions{}, err
	}
	bottom, err := readCaption(o.bottom, o.bottomFile, stdin)
	if err != nil {
		return macro.Captions{}, err
	}
	return macro.Captions{Top: top, Bottom: bottom}, nil
}

// readCaption returns the inline caption, or the contents of path ("-" is
// stdin) with trailing line breaks dropped. Inner line breaks are kept and
// lay out as hard breaks.
func readCaption(inline optionalString, path string, stdin io.Reader) (*string, error) {
	if path == "" {
		return inline.ptr(), nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read caption: %w", err)
	}
	return macro.Caption(strings.TrimRight(string(data), "\r\n")), nil
}

// recase applies the named casing style to both captions, top first, with
// one Capitalizer so the pattern runs on across them.
func recase(c macro.Captions, style string) (macro.Captions, error) {
	if style == "" {
		return c, nil
	}
	st, err := casing.ParseStyle(style)
	if err != nil {
		return c, err
	}

	capitalizer := casing.New(st)
	if c.Top != nil {
		c.Top = macro.Caption(capitalizer.Apply(*c.Top))
	}
	if c.Bottom != nil {
		c.Bottom = macro.Caption(capitalizer.Apply(*c.Bottom))
	}
	return c, nil
}

func writeOutput(path string, img image.Image, quality int, stdout io.Writer) error {
	if path == "-" {
		return intImage.Encode(stdout, img, intImage.FormatPNG, quality)
	}
	return intImage.Save(path, img, quality)
}

func copyToClipboard(img image.Image) error {
	var buf bytes.Buffer
	if err := intImage.Encode(&buf, img, intImage.FormatPNG, 0); err != nil {
		return err
	}

	return clipboardWrite(clipboard.FmtImage, buf.Bytes())
}

// clipboardWrite puts data on the system clipboard. Tests replace it.
var clipboardWrite = func(format clipboard.Format, data []byte) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	// The returned channel fires when another program takes the
	// clipboard, so it is not awaited.
	clipboard.Write(format, data)
	return nil
}

var errBadColor = errors.New("color must be #rrggbb")

// parseColor parses an opaque #rrggbb color.
func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, errBadColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, errBadColor
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
