package text

import (
	"testing"
)

func TestSubpixelMode_String(t *testing.T) {
	tests := []struct {
		mode SubpixelMode
		want string
	}{
		{SubpixelNone, "None"},
		{Subpixel4, "Subpixel4"},
		{Subpixel10, "Subpixel10"},
		{SubpixelMode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("SubpixelMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSubpixelMode_Divisions(t *testing.T) {
	tests := []struct {
		mode    SubpixelMode
		want    int
		enabled bool
	}{
		{SubpixelNone, 1, false},
		{Subpixel4, 4, true},
		{Subpixel10, 10, true},
		{SubpixelMode(-1), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.Divisions(); got != tt.want {
				t.Errorf("SubpixelMode(%d).Divisions() = %d, want %d", tt.mode, got, tt.want)
			}
			if got := tt.mode.IsEnabled(); got != tt.enabled {
				t.Errorf("SubpixelMode(%d).IsEnabled() = %v, want %v", tt.mode, got, tt.enabled)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name       string
		pos        float64
		mode       SubpixelMode
		wantInt    int
		wantOffset float64
	}{
		{"none whole", 10.0, SubpixelNone, 10, 0},
		{"none rounds down", 10.4, SubpixelNone, 10, 0},
		{"none half rounds up", 10.5, SubpixelNone, 11, 0},
		{"none negative", -1.6, SubpixelNone, -2, 0},
		{"none negative half", -0.5, SubpixelNone, 0, 0},
		{"four whole", 10.0, Subpixel4, 10, 0},
		{"four quarter", 10.3, Subpixel4, 10, 0.25},
		{"four half", 10.5, Subpixel4, 10, 0.5},
		{"four top bucket", 10.99, Subpixel4, 10, 0.75},
		{"four negative", -0.3, Subpixel4, -1, 0.5},
		{"ten whole", 3.0, Subpixel10, 3, 0},
		{"ten half", 3.5, Subpixel10, 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotInt, gotOffset := Quantize(tt.pos, tt.mode)
			if gotInt != tt.wantInt || gotOffset != tt.wantOffset {
				t.Errorf("Quantize(%v, %v) = (%d, %v), want (%d, %v)",
					tt.pos, tt.mode, gotInt, gotOffset, tt.wantInt, tt.wantOffset)
			}
		})
	}
}

func TestQuantize_OffsetRange(t *testing.T) {
	for _, mode := range []SubpixelMode{Subpixel4, Subpixel10} {
		for pos := -5.0; pos < 5.0; pos += 0.037 {
			ip, off := Quantize(pos, mode)
			if off < 0 || off >= 1 {
				t.Fatalf("Quantize(%v, %v) offset %v outside [0, 1)", pos, mode, off)
			}
			if float64(ip) > pos {
				t.Fatalf("Quantize(%v, %v) integer part %d exceeds position", pos, mode, ip)
			}
		}
	}
}
