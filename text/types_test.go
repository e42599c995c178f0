package text

import "testing"

func TestHinting_String(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}
