package text

import (
	"sync"
	"testing"
)

func TestGoTextShaper_Basic(t *testing.T) {
	s := NewGoTextShaper()
	face := testFace(t, 24)

	glyphs := s.Shape("taco truck", face)
	if len(glyphs) == 0 {
		t.Fatal("Shape returned no glyphs")
	}

	for i, g := range glyphs {
		if g.Cluster < 0 || g.Cluster >= 10 {
			t.Errorf("glyph %d Cluster = %d out of range", i, g.Cluster)
		}
		if i > 0 && g.X < glyphs[i-1].X {
			t.Errorf("glyph %d X = %f moves backwards", i, g.X)
		}
	}
}

func TestGoTextShaper_MatchesFontGlyphs(t *testing.T) {
	s := NewGoTextShaper()
	face := testFace(t, 24)
	parsed := face.Source().Parsed()

	for _, g := range s.Shape("Hello", face) {
		if want := GlyphID(parsed.GlyphIndex(g.Rune)); g.GID != want {
			t.Errorf("%q GID = %d, want %d from the same font", g.Rune, g.GID, want)
		}
	}
}

func TestGoTextShaper_AdvanceAgreesWithBuiltin(t *testing.T) {
	face := testFace(t, 32)

	width := func(glyphs []ShapedGlyph) float64 {
		last := glyphs[len(glyphs)-1]
		return last.X + last.XAdvance
	}

	hb := width(NewGoTextShaper().Shape("minimum", face))
	builtin := width((&BuiltinShaper{}).Shape("minimum", face))

	if diff := hb - builtin; diff > 2 || diff < -2 {
		t.Errorf("gotext width %f differs from builtin %f", hb, builtin)
	}
}

func TestGoTextShaper_Empty(t *testing.T) {
	s := NewGoTextShaper()

	if got := s.Shape("", testFace(t, 12)); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := s.Shape("a", nil); got != nil {
		t.Errorf("Shape with nil face = %v, want nil", got)
	}
}

func TestGoTextShaper_Layout(t *testing.T) {
	face := testFace(t, 32)
	layouter := &WordLayouter{Shaper: NewGoTextShaper()}

	l := layouter.Layout(face, Constraints{MaxWidth: 1000, Align: AlignCenter}, "taco truck")
	if len(l.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.Lines))
	}
	if got := placedText(l); got != "tacotruck" {
		t.Errorf("placed runes = %q, want %q", got, "tacotruck")
	}
}

func TestGoTextShaper_Concurrent(t *testing.T) {
	s := NewGoTextShaper()
	face := testFace(t, 20)
	want := len(s.Shape("concurrent", face))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if got := len(s.Shape("concurrent", face)); got != want {
					t.Errorf("got %d glyphs, want %d", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
