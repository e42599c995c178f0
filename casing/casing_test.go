package casing

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		style Style
		in    string
		want  string
	}{
		{AlternatingUpper, "taco truck", "TaCo tRuCk"},
		{AlternatingLower, "taco truck", "tAcO TrUcK"},
		{AlternatingUpperSkipSpace, "taco truck", "TaCo TrUcK"},
		{AlternatingLowerSkipSpace, "taco truck", "tAcO tRuCk"},
		{AlternatingUpper, "", ""},
		{AlternatingUpper, "SHOUT", "ShOuT"},
		{AlternatingUpper, "\u00dfa", "SSa"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.in, func(t *testing.T) {
			got := New(tt.style).Apply(tt.in)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyContinuesState(t *testing.T) {
	c := New(AlternatingUpper)

	if got := c.Apply("tacos"); got != "TaCoS" {
		t.Errorf("first = %q, want %q", got, "TaCoS")
	}
	if got := c.Apply("tuesday"); got != "tUeSdAy" {
		t.Errorf("second = %q, want %q", got, "tUeSdAy")
	}
}

func TestApplyRandom(t *testing.T) {
	const in = "the quick brown fox jumps over the lazy dog"

	a := New(Random, WithRand(rand.New(rand.NewPCG(1, 2)))).Apply(in)
	b := New(Random, WithRand(rand.New(rand.NewPCG(1, 2)))).Apply(in)
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
	if !strings.EqualFold(a, in) {
		t.Errorf("Apply changed letters: %q", a)
	}
	if a == strings.ToLower(in) || a == strings.ToUpper(in) {
		t.Errorf("Apply(%q) = %q, want mixed case", in, a)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"LiKe tHiS", AlternatingUpper},
		{"lIkE ThIs", AlternatingLower},
		{"LiKe ThIs", AlternatingUpperSkipSpace},
		{"lIkE tHiS", AlternatingLowerSkipSpace},
		{"randomly", Random},
		{"RaNDOmlY", Random},
		{"do it RANDOMLY please", Random},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if err != nil {
				t.Fatalf("ParseStyle(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyleUnknown(t *testing.T) {
	for _, in := range []string{"", "like this", "LIKE THIS", "random", "randomly randomly"} {
		if _, err := ParseStyle(in); !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrUnknownStyle", in, err)
		}
	}
}

func TestStyleStringRoundTrip(t *testing.T) {
	for _, s := range []Style{AlternatingUpper, AlternatingLower, AlternatingUpperSkipSpace, AlternatingLowerSkipSpace, Random} {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
	if got := Style(99).String(); got != "Unknown" {
		t.Errorf("Style(99).String() = %q", got)
	}
}
