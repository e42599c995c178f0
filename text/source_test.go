package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// testSource parses goregular for tests.
func testSource(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	return source
}

// testFace creates a goregular Face at the given pixel size.
func testFace(t *testing.T, size float64) Face {
	t.Helper()
	return testSource(t).Face(size)
}

func TestNewFontSource(t *testing.T) {
	source := testSource(t)

	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if source.Parsed().NumGlyphs() == 0 {
		t.Error("NumGlyphs() should be positive")
	}
	if source.Parsed().UnitsPerEm() == 0 {
		t.Error("UnitsPerEm() should be positive")
	}
}

func TestNewFontSource_Empty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_Invalid(t *testing.T) {
	_, err := NewFontSource([]byte("definitely not a font"))
	if err == nil {
		t.Fatal("NewFontSource should fail on garbage data")
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	id := source.ID()

	for i := range data {
		data[i] = 0
	}

	if source.ID() != id {
		t.Error("ID changed after caller mutated its buffer")
	}
	if source.Parsed().GlyphIndex('A') == 0 {
		t.Error("font data should be independent of the caller's buffer")
	}
}

func TestFontSource_ID(t *testing.T) {
	a := testSource(t)
	b := testSource(t)
	bold, err := NewFontSource(gobold.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(gobold): %v", err)
	}

	if a.ID() != b.ID() {
		t.Error("sources from the same bytes should share an ID")
	}
	if a.ID() == bold.ID() {
		t.Error("different fonts should have different IDs")
	}
}

func TestNewFontSourceFromFile_Missing(t *testing.T) {
	_, err := NewFontSourceFromFile("testdata/does-not-exist.ttf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFontSource_FaceNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face on nil FontSource should panic")
		}
	}()

	var s *FontSource
	s.Face(12)
}

type stubParser struct {
	ParsedFont
	calls int
}

func (p *stubParser) Parse([]byte) (ParsedFont, error) {
	p.calls++
	return p.ParsedFont, nil
}

func TestWithParser(t *testing.T) {
	real := testSource(t).Parsed()
	stub := &stubParser{ParsedFont: real}
	RegisterParser("stub", stub)

	source, err := NewFontSource(goregular.TTF, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("stub parser called %d times, want 1", stub.calls)
	}
	if source.Parsed() != real {
		t.Error("source should hold the stub parser's result")
	}
}

func TestWithParser_UnknownFallsBack(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithParser("no-such-parser"))
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if _, ok := source.Parsed().(*ximageParsedFont); !ok {
		t.Errorf("Parsed() = %T, want *ximageParsedFont", source.Parsed())
	}
}
