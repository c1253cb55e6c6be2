// Package colour implements the OKLCH colour model, WCAG contrast math and
// deterministic palette generation used across tonal.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Colour is a colour in OKLCH: Lightness (0-1), Chroma (0-0.4), Hue (0-360).
// OKLCH is perceptually uniform, so equal numeric steps read as roughly equal
// visual steps.
// Reference: https://bottosson.github.io/posts/oklab/.
type Colour struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// NormalizeHue wraps a hue angle into [0, 360). Inputs far outside the range
// (including negatives) are wrapped, never rejected.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// CSS returns the colour as a CSS oklch() function value.
func (c Colour) CSS() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", c.L, c.C, NormalizeHue(c.H))
}

// linearRGB converts the colour to linear sRGB. Out-of-gamut chroma is gamut
// mapped by clamping each channel to [0,1], so extreme inputs never produce
// NaN luminance downstream.
func (c Colour) linearRGB() (r, g, b float64) {
	// OKLCH to OKLAB.
	hRad := NormalizeHue(c.H) * math.Pi / 180.0
	a := c.C * math.Cos(hRad)
	bb := c.C * math.Sin(hRad)

	// OKLAB to LMS (D65 illuminant).
	lVal := c.L + 0.3963377774*a + 0.2158037573*bb
	mVal := c.L - 0.1055613458*a - 0.0638541728*bb
	sVal := c.L - 0.0894841775*a - 1.2914855480*bb

	lVal = lVal * lVal * lVal
	mVal = mVal * mVal * mVal
	sVal = sVal * sVal * sVal

	r = +4.0767416621*lVal - 3.3077115913*mVal + 0.2309699292*sVal
	g = -1.2684380046*lVal + 2.6097574011*mVal - 0.3413193965*sVal
	b = -0.0041960863*lVal - 0.7034186147*mVal + 1.7076147010*sVal

	return clampUnit(r), clampUnit(g), clampUnit(b)
}

// RGB converts the colour to 8-bit sRGB with gamma correction applied.
func (c Colour) RGB() RGB {
	r, g, b := c.linearRGB()

	r = linearToSRGB(r)
	g = linearToSRGB(g)
	b = linearToSRGB(b)

	return RGB{
		R: uint8(clampInt(int(r*255+0.5), 0, 255)), // #nosec G115 -- clamped to 0-255
		G: uint8(clampInt(int(g*255+0.5), 0, 255)), // #nosec G115 -- clamped to 0-255
		B: uint8(clampInt(int(b*255+0.5), 0, 255)), // #nosec G115 -- clamped to 0-255
	}
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (c Colour) Hex() string {
	return c.RGB().Hex()
}

// FromRGB converts an 8-bit sRGB colour to OKLCH.
func FromRGB(rgb RGB) Colour {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// Linear sRGB to LMS.
	lVal := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mVal := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sVal := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lVal = math.Cbrt(lVal)
	mVal = math.Cbrt(mVal)
	sVal = math.Cbrt(sVal)

	// LMS to OKLAB.
	ll := 0.2104542553*lVal + 0.7936177850*mVal - 0.0040720468*sVal
	aa := 1.9779984951*lVal - 2.4285922050*mVal + 0.4505937099*sVal
	bb := 0.0259040371*lVal + 0.7827717662*mVal - 0.8086757660*sVal

	chroma := math.Sqrt(aa*aa + bb*bb)
	hue := 0.0
	if chroma > 1e-9 {
		hue = NormalizeHue(math.Atan2(bb, aa) * 180.0 / math.Pi)
	}

	return Colour{L: ll, C: chroma, H: hue}
}

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

var oklchRegex = regexp.MustCompile(`oklch\s*\(\s*([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)`)

// ParseOKLCH parses a CSS oklch() function value.
// Format: oklch(L C H) where L is 0-1, C is 0-0.4, H is 0-360.
func ParseOKLCH(value string) (Colour, bool) {
	matches := oklchRegex.FindStringSubmatch(value)
	if len(matches) != 4 {
		return Colour{}, false
	}
	// Regex guarantees these are valid floats, errors ignored
	l, _ := strconv.ParseFloat(matches[1], 64) //nolint:errcheck
	c, _ := strconv.ParseFloat(matches[2], 64) //nolint:errcheck
	h, _ := strconv.ParseFloat(matches[3], 64) //nolint:errcheck

	return Colour{L: l, C: c, H: NormalizeHue(h)}, true
}

// linearToSRGB converts linear RGB to sRGB (gamma correction).
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// srgbToLinear converts sRGB to linear RGB (inverse gamma correction).
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// clampUnit restricts a value to [0, 1].
func clampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// clampInt restricts a value to a given range.
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
