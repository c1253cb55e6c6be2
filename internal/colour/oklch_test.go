package colour

import (
	"math"
	"testing"
)

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "in range", in: 220, want: 220},
		{name: "zero", in: 0, want: 0},
		{name: "full turn", in: 360, want: 0},
		{name: "over one turn", in: 370, want: 10},
		{name: "two turns", in: 720.5, want: 0.5},
		{name: "negative", in: -30, want: 330},
		{name: "large negative", in: -390, want: 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHue(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColourRGB(t *testing.T) {
	tests := []struct {
		name string
		c    Colour
		want RGB
	}{
		{name: "white", c: Colour{L: 1, C: 0, H: 0}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", c: Colour{L: 0, C: 0, H: 0}, want: RGB{R: 0, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.RGB()
			if got != tt.want {
				t.Errorf("RGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColourRGBOutOfGamut(t *testing.T) {
	// Saturated chroma at extreme lightness falls outside sRGB; the result
	// must be clamped, never NaN or wrapped.
	extremes := []Colour{
		{L: 0.05, C: 0.4, H: 145},
		{L: 0.98, C: 0.4, H: 300},
		{L: 0.5, C: 0.4, H: 30},
	}

	for _, c := range extremes {
		r, g, b := c.linearRGB()
		for _, ch := range []float64{r, g, b} {
			if math.IsNaN(ch) || ch < 0 || ch > 1 {
				t.Errorf("linearRGB(%+v) channel out of range: %v", c, ch)
			}
		}
		// Hex must always be well-formed.
		hex := c.Hex()
		if len(hex) != 7 || hex[0] != '#' {
			t.Errorf("Hex(%+v) = %q, want #rrggbb", c, hex)
		}
	}
}

func TestFromRGBRoundTrip(t *testing.T) {
	// In-gamut colours should round-trip OKLCH -> sRGB -> OKLCH within
	// quantisation error.
	tests := []Colour{
		{L: 0.7, C: 0.1, H: 220},
		{L: 0.5, C: 0.08, H: 30},
		{L: 0.3, C: 0.05, H: 145},
	}

	for _, want := range tests {
		got := FromRGB(want.RGB())
		if math.Abs(got.L-want.L) > 0.01 {
			t.Errorf("round trip L = %v, want %v", got.L, want.L)
		}
		if math.Abs(got.C-want.C) > 0.01 {
			t.Errorf("round trip C = %v, want %v", got.C, want.C)
		}
		hueDiff := math.Abs(got.H - want.H)
		if hueDiff > 180 {
			hueDiff = 360 - hueDiff
		}
		if hueDiff > 2 {
			t.Errorf("round trip H = %v, want %v", got.H, want.H)
		}
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "mixed", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOKLCH(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Colour
		wantOK bool
	}{
		{name: "plain", in: "oklch(0.92 0.02 220)", want: Colour{L: 0.92, C: 0.02, H: 220}, wantOK: true},
		{name: "spaced", in: "oklch( 0.5  0.1  30.5 )", want: Colour{L: 0.5, C: 0.1, H: 30.5}, wantOK: true},
		{name: "hex string", in: "#ff0000", wantOK: false},
		{name: "rgb string", in: "rgb(1, 2, 3)", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOKLCH(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseOKLCH(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseOKLCH(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColourCSS(t *testing.T) {
	c := Colour{L: 0.92, C: 0.02, H: 220}
	want := "oklch(0.920 0.020 220.0)"
	if got := c.CSS(); got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}
