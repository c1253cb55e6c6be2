package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tonal-sh/tonal/internal/colour"
	"github.com/tonal-sh/tonal/internal/token"
)

func TestRenderCSS(t *testing.T) {
	p := colour.GeneratePalette(220, colour.SplitComplementary, true)
	out := renderCSS(p)

	if !strings.HasPrefix(out, ":root {\n") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("unexpected CSS shape:\n%s", out)
	}
	for _, role := range []string{"primary", "secondary", "accent", "background", "text", "muted", "border"} {
		if !strings.Contains(out, "--color-"+role+": oklch(") {
			t.Errorf("missing custom property for %s:\n%s", role, out)
		}
	}
}

func TestRenderJSONRoundTripsIntoValidator(t *testing.T) {
	// The JSON fragment doubles as a primitives.color section: a document
	// built around it must clear the colour rule group.
	p := colour.GeneratePalette(220, colour.SplitComplementary, false)
	fragment, err := renderJSON(p)
	if err != nil {
		t.Fatalf("renderJSON error: %v", err)
	}

	var cp token.ColorPrimitives
	if err := json.Unmarshal(fragment, &cp); err != nil {
		t.Fatalf("fragment does not parse as a colour section: %v", err)
	}

	if cp.Model != "oklch" {
		t.Errorf("model = %q, want oklch", cp.Model)
	}
	if len(cp.Palette) != 7 {
		t.Errorf("palette has %d roles, want 7", len(cp.Palette))
	}

	doc := token.Document{
		Primitives: &token.Primitives{Color: &cp},
	}
	res := token.Validate(&doc)
	if res.Scores[token.CategoryColor] < 3 {
		t.Errorf("generated palette scored %d on colorSystem: errors=%v", res.Scores[token.CategoryColor], res.Errors)
	}
}

func TestRenderPreviewPlain(t *testing.T) {
	p := colour.GeneratePalette(40, colour.Analogous, false)
	out := renderPreview(p, false)

	if strings.Contains(out, "\033[") {
		t.Error("plain preview must not contain ANSI escapes")
	}
	if !strings.Contains(out, "background") || !strings.Contains(out, ":1") {
		t.Errorf("preview missing roles or contrast column:\n%s", out)
	}
}

func TestRenderPreviewColour(t *testing.T) {
	p := colour.GeneratePalette(40, colour.Analogous, true)
	out := renderPreview(p, true)

	if !strings.Contains(out, "\033[48;2;") {
		t.Error("coloured preview should contain truecolor swatches")
	}
}
