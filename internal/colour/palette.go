package colour

import "fmt"

// HarmonyMode names a classical colour-harmony rule for deriving the
// secondary and accent hues from a base hue. The set is closed: anything
// outside the four named modes is a configuration error.
type HarmonyMode string

const (
	Monochromatic      HarmonyMode = "monochromatic"
	Analogous          HarmonyMode = "analogous"
	SplitComplementary HarmonyMode = "split-complementary"
	Triadic            HarmonyMode = "triadic"
)

// Modes lists the valid harmony modes in display order.
func Modes() []HarmonyMode {
	return []HarmonyMode{Monochromatic, Analogous, SplitComplementary, Triadic}
}

// ParseHarmonyMode parses a harmony mode name. Unknown names are an error,
// never a silent default.
func ParseHarmonyMode(s string) (HarmonyMode, error) {
	switch HarmonyMode(s) {
	case Monochromatic, Analogous, SplitComplementary, Triadic:
		return HarmonyMode(s), nil
	}
	return "", fmt.Errorf("unknown harmony mode %q (valid: monochromatic, analogous, split-complementary, triadic)", s)
}

// Palette is a fixed seven-role colour set. Text must clear 7:1 contrast
// against the background and primary 4.5:1; GeneratePalette enforces both by
// construction.
type Palette struct {
	Primary    Colour `json:"primary"`
	Secondary  Colour `json:"secondary"`
	Accent     Colour `json:"accent"`
	Background Colour `json:"background"`
	Text       Colour `json:"text"`
	Muted      Colour `json:"muted"`
	Border     Colour `json:"border"`
}

// NamedColour pairs a palette role name with its colour.
type NamedColour struct {
	Role   string
	Colour Colour
}

// Roles returns the palette colours in their canonical order.
func (p Palette) Roles() []NamedColour {
	return []NamedColour{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"background", p.Background},
		{"text", p.Text},
		{"muted", p.Muted},
		{"border", p.Border},
	}
}

// Contrast targets and repair bounds.
const (
	// TextContrastTarget is the WCAG AAA ratio for body text.
	TextContrastTarget = 7.0
	// PrimaryContrastTarget is the WCAG AA ratio for normal text.
	PrimaryContrastTarget = 4.5

	repairStep     = 0.02
	lightnessFloor = 0.05
	lightnessCeil  = 0.95
	// Worst case walks the whole (0.05, 0.95) interval in 0.02 steps.
	maxRepairSteps = 45
)

// Theme presets. Backgrounds and text always carry a small chroma tint; pure
// grey (chroma 0) surfaces are a deliberate anti-pattern here.
const (
	darkBackgroundL  = 0.12
	darkTextL        = 0.92
	lightBackgroundL = 0.98
	lightTextL       = 0.18

	backgroundTintDark  = 0.015
	backgroundTintLight = 0.010
	textTint            = 0.020
)

// GeneratePalette derives a complete seven-role palette from a base hue, a
// harmony mode and a theme polarity. It is total and deterministic: any real
// hue is wrapped into [0,360), no randomness is involved, and identical
// inputs always produce identical output.
func GeneratePalette(baseHue float64, mode HarmonyMode, dark bool) Palette {
	hue := NormalizeHue(baseHue)
	secondaryHue, accentHue := harmonyHues(hue, mode)

	var p Palette

	if dark {
		p.Background = Colour{L: darkBackgroundL, C: backgroundTintDark, H: hue}
		p.Text = Colour{L: darkTextL, C: textTint, H: hue}
		p.Primary = Colour{L: 0.70, C: 0.15, H: hue}
		p.Secondary = Colour{L: 0.62, C: 0.12, H: secondaryHue}
		p.Accent = Colour{L: 0.75, C: 0.17, H: accentHue}
		// Muted is a mid-tone, border sits near the background; both are
		// lifted away from a dark background.
		p.Muted = Colour{L: 0.60, C: 0.03, H: hue}
		p.Border = Colour{L: 0.25, C: 0.02, H: hue}
	} else {
		p.Background = Colour{L: lightBackgroundL, C: backgroundTintLight, H: hue}
		p.Text = Colour{L: lightTextL, C: textTint, H: hue}
		p.Primary = Colour{L: 0.55, C: 0.15, H: hue}
		p.Secondary = Colour{L: 0.48, C: 0.12, H: secondaryHue}
		p.Accent = Colour{L: 0.50, C: 0.17, H: accentHue}
		p.Muted = Colour{L: 0.45, C: 0.03, H: hue}
		p.Border = Colour{L: 0.88, C: 0.02, H: hue}
	}

	switch mode {
	case Monochromatic:
		// Complementary pop accent: opposite hue, brighter and more
		// saturated than primary.
		p.Accent.L = p.Primary.L + 0.05
		p.Accent.C = p.Primary.C + 0.04
	case Triadic:
		// Quirk kept for compatibility: in triadic mode only, text tracks
		// the secondary hue instead of the base hue. See DESIGN.md.
		p.Text.H = secondaryHue
	}

	// Contrast repair: greedy local search, AAA for text, AA for primary.
	p.Text = adjustLightnessForContrast(p.Text, p.Background, TextContrastTarget)
	p.Primary = adjustLightnessForContrast(p.Primary, p.Background, PrimaryContrastTarget)

	return p
}

// harmonyHues returns the secondary and accent hues for a mode. All hue
// arithmetic wraps through NormalizeHue.
func harmonyHues(base float64, mode HarmonyMode) (secondary, accent float64) {
	switch mode {
	case Monochromatic:
		return base, NormalizeHue(base + 180)
	case Analogous:
		return NormalizeHue(base + 30), NormalizeHue(base - 30)
	case Triadic:
		return NormalizeHue(base + 120), NormalizeHue(base + 240)
	default:
		// split-complementary
		complement := NormalizeHue(base + 180)
		return NormalizeHue(complement + 30), NormalizeHue(complement - 30)
	}
}

// adjustLightnessForContrast steps a foreground's lightness towards the
// contrast target against the given background. The direction is away from
// the background's polarity: darken on light backgrounds, lighten on dark
// ones. The walk stops when the target is met or the next step would leave
// the open interval (0.05, 0.95); in the latter case the lightness is clamped
// at the boundary and the best-effort colour is returned. Saturated chroma at
// extreme hues can cap the achievable contrast, so falling short is not an
// error.
func adjustLightnessForContrast(fg, bg Colour, target float64) Colour {
	darken := bg.L > 0.5

	for i := 0; i < maxRepairSteps; i++ {
		if ContrastRatio(fg, bg) >= target {
			return fg
		}

		next := fg.L + repairStep
		if darken {
			next = fg.L - repairStep
		}
		if next <= lightnessFloor || next >= lightnessCeil {
			if darken {
				fg.L = lightnessFloor
			} else {
				fg.L = lightnessCeil
			}
			return fg
		}
		fg.L = next
	}

	return fg
}
