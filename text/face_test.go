package text

import (
	"testing"
)

func TestFace_Metrics(t *testing.T) {
	face := testFace(t, 32)
	m := face.Metrics()

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %f, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %f, want > 0 (stored positive)", m.Descent)
	}
	if m.LineGap < 0 {
		t.Errorf("LineGap = %f, want >= 0", m.LineGap)
	}
	if got, want := m.LineHeight(), m.Ascent+m.Descent+m.LineGap; got != want {
		t.Errorf("LineHeight() = %f, want %f", got, want)
	}
}

func TestFace_MetricsScale(t *testing.T) {
	small := testFace(t, 16).Metrics()
	large := testFace(t, 32).Metrics()

	if large.Ascent <= small.Ascent {
		t.Errorf("ascent should grow with size: 16px=%f 32px=%f", small.Ascent, large.Ascent)
	}
}

func TestFace_Advance(t *testing.T) {
	face := testFace(t, 24)

	if got := face.Advance(""); got != 0 {
		t.Errorf(`Advance("") = %f, want 0`, got)
	}

	a := face.Advance("taco")
	b := face.Advance("truck")
	ab := face.Advance("tacotruck")
	if a <= 0 || b <= 0 {
		t.Fatalf("advances should be positive: %f %f", a, b)
	}
	if diff := ab - (a + b); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Advance should be additive: %f != %f + %f", ab, a, b)
	}
}

func TestFace_HasGlyph(t *testing.T) {
	face := testFace(t, 16)

	if !face.HasGlyph('A') {
		t.Error("goregular should have 'A'")
	}
	if face.HasGlyph('\U0001F600') {
		t.Error("goregular should not have an emoji glyph")
	}
}

func TestFace_Accessors(t *testing.T) {
	source := testSource(t)
	face := source.Face(18, WithHinting(HintingFull))

	if face.Source() != source {
		t.Error("Source() should return the creating FontSource")
	}
	if face.Size() != 18 {
		t.Errorf("Size() = %f, want 18", face.Size())
	}
	if face.Hinting() != HintingFull {
		t.Errorf("Hinting() = %v, want Full", face.Hinting())
	}
	if got := source.Face(18).Hinting(); got != HintingNone {
		t.Errorf("default Hinting() = %v, want None", got)
	}
}
