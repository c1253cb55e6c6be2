package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tonal-sh/tonal/internal/colour"
)

// paletteDocument is the JSON rendering of a generated palette. Its shape
// matches the primitives.color section of a design-token document, so the
// output can be pasted straight into a document and re-checked by
// `tonal validate`.
type paletteDocument struct {
	Model          string             `json:"model"`
	Palette        colour.Palette     `json:"palette"`
	ContrastRatios map[string]float64 `json:"contrastRatios"`
}

// round2 rounds a ratio to two decimals for display and stated-ratio output.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// contrastRatios computes the stated ratios embedded in JSON output.
func contrastRatios(p colour.Palette) map[string]float64 {
	return map[string]float64{
		"textOnBackground":    round2(colour.ContrastRatio(p.Text, p.Background)),
		"primaryOnBackground": round2(colour.ContrastRatio(p.Primary, p.Background)),
		"accentOnBackground":  round2(colour.ContrastRatio(p.Accent, p.Background)),
	}
}

// renderJSON renders the palette as an indented JSON fragment.
func renderJSON(p colour.Palette) ([]byte, error) {
	return json.MarshalIndent(paletteDocument{
		Model:          "oklch",
		Palette:        p,
		ContrastRatios: contrastRatios(p),
	}, "", "  ")
}

// renderCSS renders the palette as CSS custom properties.
func renderCSS(p colour.Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, role := range p.Roles() {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", role.Role, role.Colour.CSS())
	}
	b.WriteString("}\n")
	return b.String()
}

// renderPreview renders a human-readable palette table, with ANSI swatches
// when stdout is a terminal.
func renderPreview(p colour.Palette, useColour bool) string {
	var b strings.Builder

	table := NewTable([]string{"Role", "Hex", "OKLCH", "Contrast vs bg"})
	for _, role := range p.Roles() {
		contrast := colour.ContrastRatio(role.Colour, p.Background)
		table.AddRow([]string{
			role.Role,
			role.Colour.Hex(),
			role.Colour.CSS(),
			fmt.Sprintf("%.2f:1", contrast),
		})
	}
	b.WriteString(table.Render())

	if useColour {
		b.WriteString("\n")
		for _, role := range p.Roles() {
			b.WriteString(colour.PreviewWithText(role.Colour, " "+role.Role, 14))
			b.WriteString(" ")
			b.WriteString(colour.Preview(role.Colour, 6))
			b.WriteString("\n")
		}
	}

	return b.String()
}
