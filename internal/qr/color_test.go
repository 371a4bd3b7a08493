package qr

import (
	"image/color"
	"slices"
	"testing"
)

func TestParseRGB(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    RGB
		wantErr bool
	}{
		"hex lower":      {in: "#a1b2c3", want: RGB{0xA1, 0xB2, 0xC3}},
		"hex upper":      {in: "#A1B2C3", want: RGB{0xA1, 0xB2, 0xC3}},
		"hex no hash":    {in: "ff8000", want: RGB{0xFF, 0x80, 0x00}},
		"hex short":      {in: "#f0c", want: RGB{0xFF, 0x00, 0xCC}},
		"named black":    {in: "black", want: RGB{0x00, 0x00, 0x00}},
		"named white":    {in: "WHITE", want: RGB{0xFF, 0xFF, 0xFF}},
		"named navy":     {in: "navy", want: RGB{0x00, 0x00, 0x80}},
		"padded":         {in: "  #102030  ", want: RGB{0x10, 0x20, 0x30}},
		"empty":          {in: "", wantErr: true},
		"whitespace":     {in: "   ", wantErr: true},
		"bad length":     {in: "#ab", wantErr: true},
		"bad digits":     {in: "#zzzzzz", wantErr: true},
		"unknown name":   {in: "mauve", wantErr: true},
		"hash only":      {in: "#", wantErr: true},
		"too many chars": {in: "#aabbccdd", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRGB(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseRGB(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRGB(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRGB_String(t *testing.T) {
	c := RGB{0x0A, 0xB0, 0xFF}
	if got := c.String(); got != "#0AB0FF" {
		t.Fatalf("String() = %q, want %q", got, "#0AB0FF")
	}
}

func TestRGB_ImplementsColor(t *testing.T) {
	var _ color.Color = RGB{}

	// Values must match the equivalent opaque color.RGBA.
	c := RGB{0x12, 0x34, 0x56}
	ref := color.RGBA{0x12, 0x34, 0x56, 0xFF}

	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, a2 := ref.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Fatalf("RGBA() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
			r1, g1, b1, a1, r2, g2, b2, a2)
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if len(names) != len(namedColors) {
		t.Fatalf("expected %d names, got %d", len(namedColors), len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
	if !slices.Contains(names, "black") || !slices.Contains(names, "white") {
		t.Errorf("expected black and white in %v", names)
	}
}
