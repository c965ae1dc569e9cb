package core

import "testing"

func TestColorCodes(t *testing.T) {
	tests := []struct {
		c    Color
		ansi string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.ansi {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.ansi)
		}
	}
}

func TestColorRGBFallback(t *testing.T) {
	if Color(200).RGB() != ColorDefault.RGB() {
		t.Error("unknown color should fall back to the default")
	}
	if ColorRed.RGB() == ColorGreen.RGB() {
		t.Error("distinct colors should not share an RGB value")
	}
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.RGB().A != 255 {
			t.Errorf("Color(%d) should be opaque", c)
		}
	}
}
