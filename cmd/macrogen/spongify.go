package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.design/x/clipboard"

	"github.com/gogpu/macro/casing"
)

// maxLineSize bounds a single input line of the spongify subcommand.
const maxLineSize = 1 << 20

var (
	errNoInput       = errors.New("no input: give text, a file, - or one of -text, -file, -stdin")
	errManyInputs    = errors.New("only one of -text, -file and -stdin may be set")
	errOutputAndClip = errors.New("-o and -clip cannot be combined")
)

// spongifyOptions holds parsed flags of the spongify subcommand.
type spongifyOptions struct {
	inline optionalString
	text   optionalString
	file   string
	stdin  bool
	output string
	clip   bool
	style  string
}

func parseSpongifyFlags(args []string, stderr io.Writer) (*spongifyOptions, error) {
	var o spongifyOptions

	fs := flag.NewFlagSet("macrogen spongify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.text, "text", "text to recase; use when the text is - or names a file")
	fs.StringVar(&o.file, "file", "", "read text from a file")
	fs.BoolVar(&o.stdin, "stdin", false, "read text from standard input")
	fs.StringVar(&o.output, "o", "", "write the result to a file instead of stdout")
	fs.BoolVar(&o.clip, "clip", false, "copy the result to the clipboard, lines joined by spaces")
	fs.StringVar(&o.style, "style", casing.AlternatingUpper.String(),
		`"LiKe tHiS", "LiKe ThIs", "lIkE ThIs", "lIkE tHiS" or "randomly"`)

	// flag stops at the first positional argument; keep parsing after it
	// so flags may follow the inline text.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch len(positional) {
	case 0:
	case 1:
		_ = o.inline.Set(positional[0])
	default:
		return nil, fmt.Errorf("expected one text argument, got %d", len(positional))
	}

	explicit := 0
	for _, set := range []bool{o.text.set, o.file != "", o.stdin} {
		if set {
			explicit++
		}
	}
	switch {
	case explicit > 1:
		return nil, errManyInputs
	case explicit == 0 && !o.inline.set:
		return nil, errNoInput
	case o.output != "" && o.clip:
		return nil, errOutputAndClip
	}
	return &o, nil
}

// runSpongify recases text input and writes it out as text.
func runSpongify(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseSpongifyFlags(args, stderr)
	if err != nil {
		return err
	}

	style, err := casing.ParseStyle(o.style)
	if err != nil {
		return err
	}
	capitalizer := casing.New(style)

	in, err := openInput(o, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	switch {
	case o.clip:
		var buf bytes.Buffer
		if err := spongify(&buf, in, capitalizer, true); err != nil {
			return err
		}
		return clipboardWrite(clipboard.FmtText, buf.Bytes())
	case o.output != "":
		return spongifyToFile(o.output, in, capitalizer)
	default:
		w := bufio.NewWriter(stdout)
		if err := spongify(w, in, capitalizer, false); err != nil {
			return err
		}
		return w.Flush()
	}
}

// openInput resolves the text source. -stdin, -text and -file win over the
// inline argument, which reads stdin when it is "-", reads the file it
// names when one exists and is otherwise the text itself.
func openInput(o *spongifyOptions, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case o.stdin:
		return io.NopCloser(stdin), nil
	case o.text.set:
		return io.NopCloser(bytes.NewReader([]byte(o.text.value))), nil
	case o.file != "":
		return openFile(o.file)
	}

	inline := o.inline.value
	if inline == "-" {
		return io.NopCloser(stdin), nil
	}
	if fi, err := os.Stat(inline); err == nil && !fi.IsDir() {
		return openFile(inline)
	}
	return io.NopCloser(bytes.NewReader([]byte(inline))), nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// spongify recases r line by line with one Capitalizer, so the pattern
// runs on across line ends. Each line is followed by a newline, or with
// joined set, lines are separated by single spaces and no newline is
// written.
func spongify(w io.Writer, r io.Reader, c *casing.Capitalizer, joined bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	first := true
	for sc.Scan() {
		if joined && !first {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		first = false

		if _, err := io.WriteString(w, c.Apply(sc.Text())); err != nil {
			return err
		}
		if !joined {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func spongifyToFile(path string, r io.Reader, c *casing.Capitalizer) error {
	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := bufio.NewWriter(f)
	err = spongify(w, r, c, false)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
