package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"cyan", ColorCyan, false},
		{" Magenta ", ColorMagenta, false},
		{"#ff00c8", ColorMagenta, false},
		{"#3ca0ff", ColorBlue, false},
		{"chartreuse", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, c, tc.expected)
			}
		})
	}
}

func TestColorFade(t *testing.T) {
	c := ColorYellow.Fade(0.5)
	if c.R != ColorYellow.R || c.G != ColorYellow.G || c.B != ColorYellow.B {
		t.Error("Fade should keep RGB channels")
	}
	if c.A != 128 {
		t.Errorf("Fade(0.5) alpha = %d, expected 128", c.A)
	}
	if ColorYellow.Fade(2).A != 255 || ColorYellow.Fade(-1).A != 0 {
		t.Error("Fade should clamp alpha to [0, 1]")
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0); got != ColorBlack {
		t.Errorf("Blend(t=0) = %+v, expected black", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 1); got != ColorWhite {
		t.Errorf("Blend(t=1) = %+v, expected white", got)
	}
	mid := ColorBlack.Blend(ColorWhite, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("Blend(t=0.5) red = %d, expected ~127", mid.R)
	}
}

func TestColorOver(t *testing.T) {
	if got := ColorCyan.Fade(1).Over(ColorBlack); got != ColorCyan {
		t.Errorf("opaque Over = %+v, expected cyan", got)
	}
	if got := ColorCyan.Fade(0).Over(ColorBlack); got != ColorBlack {
		t.Errorf("transparent Over = %+v, expected black", got)
	}
}

func TestColorBrighten(t *testing.T) {
	c := RGB(250, 10, 100).Brighten(28, -20, 36)
	if c.R != 255 || c.G != 0 || c.B != 136 {
		t.Errorf("Brighten() = %+v, expected saturation at bounds", c)
	}
}

func TestColorHexAndRGBA(t *testing.T) {
	if ColorMagenta.Hex() != "#ff00c8" {
		t.Errorf("Hex() = %s, expected #ff00c8", ColorMagenta.Hex())
	}

	r, g, b, a := ColorWhite.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() of white = %x %x %x %x", r, g, b, a)
	}
	_, _, _, a = Color{R: 255}.RGBA()
	if a != 0 {
		t.Error("zero alpha should report zero")
	}
}
