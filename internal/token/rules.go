package token

// Rule data. Denylists and thresholds live here as plain tables so the rule
// engine stays data-driven and each list can be tested in isolation.

// requiredColourModel is the only accepted colour model.
const requiredColourModel = "oklch"

// Contrast thresholds (WCAG AA / AAA for normal text) and the tolerated
// drift between the author's stated ratio and the recomputed one.
const (
	minTextContrast      = 4.5
	aaaTextContrast      = 7.0
	statedDriftTolerance = 0.5
)

// bodyFontException is the one denylisted font tolerated as a body-only
// choice. It is never acceptable as a heading font.
const bodyFontException = "inter"

// bannedFonts are overused font names, matched case-insensitively as
// substrings of the primary font in a stack.
var bannedFonts = []string{
	"inter",
	"roboto",
	"open sans",
	"poppins",
	"montserrat",
	"lato",
	"nunito",
	"source sans pro",
	"raleway",
	"oswald",
}

// genericKeywords are personality adjectives too generic to carry a design
// identity, matched case-insensitively as exact keywords.
var genericKeywords = []string{
	"modern",
	"clean",
	"professional",
	"simple",
	"elegant",
	"minimalist",
	"sleek",
	"beautiful",
	"nice",
	"good",
}

// neutralRadii are border-radius values that do not count towards radius
// variety: fully square and fully round are defaults, not choices.
var neutralRadii = map[string]bool{
	"0px":    true,
	"9999px": true,
}

// requiredReducedMotion is the expected reduced-motion policy.
const requiredReducedMotion = "respectSystem"
