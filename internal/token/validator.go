package token

import (
	"fmt"
	"strings"

	"github.com/tonal-sh/tonal/internal/colour"
)

// Category names for the validation scores.
const (
	CategoryColor      = "colorSystem"
	CategoryTypography = "typography"
	CategoryMotion     = "motionSystem"
	CategoryGeometry   = "geometry"
	CategoryUniqueness = "uniqueness"
	CategoryTechnical  = "technical"
)

// Result is the outcome of validating a design-token document. Errors are
// hard failures: any entry forces Valid to false. Warnings only lower a
// category's score ceiling. A document passes when it has no errors AND
// every category scores at least 3 of 4 — a conjunction, not an average, so
// one weak category fails the document outright.
type Result struct {
	Valid    bool           `json:"valid"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Scores   map[string]int `json:"scores"`
}

// findings accumulates one category's rule outcomes. The score starts at the
// best grade and only ever moves down through caps, which keeps each rule
// independent and avoids ratcheting bugs from a shared running score.
type findings struct {
	score    int
	errors   []string
	warnings []string
}

func newFindings() *findings {
	return &findings{score: 4}
}

// fail records a hard error and caps the category score.
func (f *findings) fail(ceiling int, msg string) {
	f.errors = append(f.errors, msg)
	f.capScore(ceiling)
}

// warn records a soft concern and caps the category score.
func (f *findings) warn(ceiling int, msg string) {
	f.warnings = append(f.warnings, msg)
	f.capScore(ceiling)
}

func (f *findings) capScore(ceiling int) {
	if ceiling < f.score {
		f.score = ceiling
	}
}

// Validate checks a parsed design-token document against the rule set and
// returns a structured report. It is pure: the document is never mutated,
// nothing is read from outside it, and no absence of an optional field can
// panic — only the explicitly required fields produce hard errors.
func Validate(doc *Document) Result {
	res := Result{
		Errors:   []string{},
		Warnings: []string{},
		Scores:   map[string]int{},
	}

	groups := []struct {
		category string
		check    func(*Document) *findings
	}{
		{CategoryColor, checkColor},
		{CategoryTypography, checkTypography},
		{CategoryMotion, checkMotion},
		{CategoryGeometry, checkGeometry},
		{CategoryUniqueness, checkUniqueness},
	}

	for _, g := range groups {
		f := g.check(doc)
		res.Scores[g.category] = f.score
		res.Errors = append(res.Errors, f.errors...)
		res.Warnings = append(res.Warnings, f.warnings...)
	}

	// Technical validity aggregates the other groups: clean is a 4, any
	// hard error drags it to 2.
	if len(res.Errors) == 0 {
		res.Scores[CategoryTechnical] = 4
	} else {
		res.Scores[CategoryTechnical] = 2
	}

	res.Valid = len(res.Errors) == 0 && minScore(res.Scores) >= 3
	return res
}

func minScore(scores map[string]int) int {
	min := 4
	for _, s := range scores {
		if s < min {
			min = s
		}
	}
	return min
}

// checkColor validates the colour model, recomputes the text/background
// contrast and cross-checks the author's stated ratio.
func checkColor(doc *Document) *findings {
	f := newFindings()

	var cp *ColorPrimitives
	if doc.Primitives != nil {
		cp = doc.Primitives.Color
	}
	if cp == nil {
		f.fail(1, fmt.Sprintf("primitives.color is required (model must be %q)", requiredColourModel))
		return f
	}

	if cp.Model != requiredColourModel {
		f.fail(1, fmt.Sprintf("color model must be %q, got %q", requiredColourModel, cp.Model))
	}

	text, textOK := cp.Palette["text"]
	bg, bgOK := cp.Palette["background"]
	if textOK && bgOK && text.OK && bg.OK {
		ratio := colour.ContrastRatio(text.Colour, bg.Colour)

		switch {
		case ratio < minTextContrast:
			// Non-negotiable floor, regardless of anything else.
			f.fail(1, fmt.Sprintf("text/background contrast %.2f is below the %.1f minimum", ratio, minTextContrast))
		case ratio < aaaTextContrast:
			f.capScore(3)
		}

		if stated, ok := cp.ContrastRatios["textOnBackground"]; ok {
			drift := stated - ratio
			if drift < 0 {
				drift = -drift
			}
			if drift > statedDriftTolerance {
				f.warn(4, fmt.Sprintf("stated textOnBackground contrast %.2f differs from calculated %.2f", stated, ratio))
			}
		}
	}

	return f
}

// checkTypography enforces the font denylist (with the body-only Inter
// escape hatch) and the modular scale.
func checkTypography(doc *Document) *findings {
	f := newFindings()

	var ty *Typography
	if doc.Primitives != nil {
		ty = doc.Primitives.Typography
	}
	if ty == nil {
		f.fail(1, "typography scale.ratio is required")
		return f
	}

	if ty.Scale == nil || ty.Scale.Ratio == 0 {
		f.fail(1, "typography scale.ratio is required")
	}

	if ty.Families != nil {
		if len(ty.Families.Heading) > 0 {
			if banned, ok := matchBannedFont(ty.Families.Heading[0]); ok {
				f.fail(1, fmt.Sprintf("heading font %q matches denylisted font %q", ty.Families.Heading[0], banned))
			}
		}
		if len(ty.Families.Heading) < 2 {
			f.warn(4, "heading font stack has no fallback")
		}

		if len(ty.Families.Body) > 0 {
			first := ty.Families.Body[0]
			if banned, ok := matchBannedFont(first); ok {
				if strings.EqualFold(strings.TrimSpace(first), bodyFontException) {
					// Inter is tolerated for body text only.
					f.warn(2, fmt.Sprintf("body font %q is a common default; consider something more distinctive", first))
				} else {
					f.fail(1, fmt.Sprintf("body font %q matches denylisted font %q", first, banned))
				}
			}
		}
	}

	return f
}

// matchBannedFont reports whether a font name matches the denylist
// (case-insensitive substring match) and which entry it matched.
func matchBannedFont(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, banned := range bannedFonts {
		if strings.Contains(lower, banned) {
			return banned, true
		}
	}
	return "", false
}

// checkMotion validates the spring table, the default-spring cross-reference
// and the reduced-motion policy.
func checkMotion(doc *Document) *findings {
	f := newFindings()

	var mo *Motion
	if doc.Primitives != nil {
		mo = doc.Primitives.Motion
	}
	if mo == nil || len(mo.Springs) == 0 {
		f.fail(1, "motion.springs must define at least one spring")
		return f
	}

	if _, ok := mo.Springs[mo.DefaultSpring]; !ok {
		f.fail(2, fmt.Sprintf("motion.defaultSpring %q is not defined in springs", mo.DefaultSpring))
	}

	if mo.ReducedMotion != requiredReducedMotion {
		f.warn(3, fmt.Sprintf("motion.reducedMotion should be %q, got %q", requiredReducedMotion, mo.ReducedMotion))
	}

	return f
}

// checkGeometry validates radius variety and the spacing base unit.
func checkGeometry(doc *Document) *findings {
	f := newFindings()

	var geo *Geometry
	if doc.Primitives != nil {
		geo = doc.Primitives.Geometry
	}

	distinct := map[string]bool{}
	if geo != nil {
		for _, v := range geo.BorderRadius {
			if neutralRadii[v] {
				continue
			}
			distinct[v] = true
		}
	}
	if len(distinct) < 2 {
		f.warn(3, "border radius scale has fewer than 2 distinct non-neutral values")
	}

	if geo == nil || geo.Spacing == nil || geo.Spacing.Base == nil {
		f.fail(2, "geometry.spacing.base is required")
	}

	return f
}

// checkUniqueness validates design-identity signals: personality wording,
// declared anti-patterns and the generative noise settings.
func checkUniqueness(doc *Document) *findings {
	f := newFindings()

	if doc.Meta != nil {
		for _, kw := range doc.Meta.Personality {
			if matchGenericKeyword(kw) {
				f.warn(2, fmt.Sprintf("personality keyword %q is generic", kw))
			}
		}
	}
	if doc.Meta == nil || len(doc.Meta.AntiPatterns) == 0 {
		f.fail(2, "meta.antiPatterns must list at least one anti-pattern")
	}

	var noise *Noise
	if doc.Generative != nil {
		noise = doc.Generative.Noise
	}
	// Each missing piece is an independent hard error.
	if noise == nil {
		f.fail(2, "generative.noise is required")
		f.fail(2, "generative.noise.seed is required")
		f.fail(2, "generative.noise.layoutJitter is required")
		return f
	}
	if noise.Seed == "" {
		f.fail(2, "generative.noise.seed is required")
	}
	if noise.LayoutJitter == nil {
		f.fail(2, "generative.noise.layoutJitter is required")
	}

	return f
}

// matchGenericKeyword reports whether a personality keyword is on the
// generic-adjective denylist (case-insensitive exact match).
func matchGenericKeyword(kw string) bool {
	for _, g := range genericKeywords {
		if strings.EqualFold(strings.TrimSpace(kw), g) {
			return true
		}
	}
	return false
}
