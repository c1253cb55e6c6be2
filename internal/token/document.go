// Package token models externally authored design-token documents and
// validates them against tonal's rule set.
package token

import (
	"encoding/json"

	"github.com/tonal-sh/tonal/internal/colour"
)

// Document is the externally authored design-token structure. Every section
// is optional at the type level; the validator decides which absences are
// hard errors and which are merely unevaluable. Validation never mutates a
// document.
type Document struct {
	Meta       *Meta       `json:"meta,omitempty"`
	Primitives *Primitives `json:"primitives,omitempty"`
	Generative *Generative `json:"generative,omitempty"`
}

// Meta describes the project identity and its design intent.
type Meta struct {
	Project      string   `json:"project,omitempty"`
	Version      string   `json:"version,omitempty"`
	Personality  []string `json:"personality,omitempty"`
	AntiPatterns []string `json:"antiPatterns,omitempty"`
}

// Primitives groups the raw design primitives.
type Primitives struct {
	Color      *ColorPrimitives `json:"color,omitempty"`
	Typography *Typography      `json:"typography,omitempty"`
	Motion     *Motion          `json:"motion,omitempty"`
	Geometry   *Geometry        `json:"geometry,omitempty"`
}

// ColorPrimitives holds the colour model, the role palette and the author's
// stated contrast ratios.
type ColorPrimitives struct {
	Model          string                 `json:"model,omitempty"`
	Palette        map[string]ColourValue `json:"palette,omitempty"`
	ContrastRatios map[string]float64     `json:"contrastRatios,omitempty"`
}

// ColourValue is a palette entry. Authors write either an OKLCH object
// ({"l":0.9,"c":0.02,"h":220}) or a CSS string ("oklch(0.9 0.02 220)"); both
// forms decode to the same colour. Unrecognised forms are tolerated but
// marked unusable rather than failing the whole document parse.
type ColourValue struct {
	Colour colour.Colour
	OK     bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ColourValue) UnmarshalJSON(data []byte) error {
	var obj struct {
		L *float64 `json:"l"`
		C *float64 `json:"c"`
		H *float64 `json:"h"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.L != nil && obj.C != nil && obj.H != nil {
		v.Colour = colour.Colour{L: *obj.L, C: *obj.C, H: colour.NormalizeHue(*obj.H)}
		v.OK = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if c, ok := colour.ParseOKLCH(s); ok {
			v.Colour = c
			v.OK = true
		}
		return nil
	}

	// Unknown shape: leave the value unusable, the validator skips it.
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the object form.
func (v ColourValue) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}
	return json.Marshal(v.Colour)
}

// Typography holds the modular scale and font stacks.
type Typography struct {
	Scale    *Scale    `json:"scale,omitempty"`
	Families *Families `json:"families,omitempty"`
}

// Scale is the modular type scale.
type Scale struct {
	Ratio float64 `json:"ratio,omitempty"`
}

// Families lists ordered font stacks; the first entry is the primary font.
type Families struct {
	Heading []string `json:"heading,omitempty"`
	Body    []string `json:"body,omitempty"`
}

// Motion holds named spring configurations and the motion policy.
type Motion struct {
	Springs       map[string]Spring `json:"springs,omitempty"`
	DefaultSpring string            `json:"defaultSpring,omitempty"`
	ReducedMotion string            `json:"reducedMotion,omitempty"`
}

// Spring is a physical spring animation config.
type Spring struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
	Mass      float64 `json:"mass"`
}

// Geometry holds radius tokens and the spacing base unit.
type Geometry struct {
	BorderRadius map[string]string `json:"borderRadius,omitempty"`
	Spacing      *Spacing          `json:"spacing,omitempty"`
}

// Spacing carries the numeric base unit. Base is a pointer so a missing
// field is distinguishable from an explicit zero.
type Spacing struct {
	Base *float64 `json:"base,omitempty"`
}

// Generative groups the generative design settings.
type Generative struct {
	Noise *Noise `json:"noise,omitempty"`
}

// Noise seeds the generative layout treatment.
type Noise struct {
	Seed         string         `json:"seed,omitempty"`
	LayoutJitter map[string]any `json:"layoutJitter,omitempty"`
}
