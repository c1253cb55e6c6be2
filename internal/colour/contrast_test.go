package colour

import (
	"math"
	"testing"
)

func TestContrastRatioBlackWhite(t *testing.T) {
	white := Colour{L: 1, C: 0, H: 0}
	black := Colour{L: 0, C: 0, H: 0}

	got := ContrastRatio(white, black)
	if math.Abs(got-21.0) > 0.1 {
		t.Errorf("ContrastRatio(white, black) = %v, want ~21", got)
	}
}

func TestContrastRatioIdentical(t *testing.T) {
	c := Colour{L: 0.5, C: 0.1, H: 220}
	if got := ContrastRatio(c, c); got != 1.0 {
		t.Errorf("ContrastRatio(c, c) = %v, want 1", got)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Colour
	}{
		{name: "text on dark bg", a: Colour{L: 0.92, C: 0.02, H: 220}, b: Colour{L: 0.12, C: 0.015, H: 220}},
		{name: "mid tones", a: Colour{L: 0.6, C: 0.1, H: 30}, b: Colour{L: 0.4, C: 0.05, H: 200}},
		{name: "out of gamut", a: Colour{L: 0.9, C: 0.4, H: 145}, b: Colour{L: 0.1, C: 0.4, H: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := ContrastRatio(tt.a, tt.b)
			ba := ContrastRatio(tt.b, tt.a)
			if ab != ba {
				t.Errorf("ContrastRatio not symmetric: %v vs %v", ab, ba)
			}
			if ab < 1 {
				t.Errorf("ContrastRatio = %v, want >= 1", ab)
			}
			if math.IsNaN(ab) {
				t.Error("ContrastRatio returned NaN")
			}
		})
	}
}

func TestLuminanceRange(t *testing.T) {
	// Luminance must stay in [0,1] even for wildly out-of-gamut inputs.
	inputs := []Colour{
		{L: 1, C: 0.4, H: 0},
		{L: 0, C: 0.4, H: 180},
		{L: 0.5, C: 0.4, H: 90},
		{L: 0.5, C: 0, H: 999},
	}

	for _, c := range inputs {
		lum := Luminance(c)
		if math.IsNaN(lum) || lum < 0 || lum > 1.0001 {
			t.Errorf("Luminance(%+v) = %v, want [0,1]", c, lum)
		}
	}
}
