package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview string for a colour. Width
// specifies how many characters wide the colour block should be. Uses
// background colour with spaces for a solid block.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb := c.RGB()
	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay. The text
// colour is chosen to contrast with the swatch.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb := c.RGB()
	var fgR, fgG, fgB uint8
	if Luminance(c) > 0.5 {
		// Light swatch, dark text.
		fgR, fgG, fgB = 0, 0, 0
	} else {
		fgR, fgG, fgB = 255, 255, 255
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	}
	padding := strings.Repeat(" ", width-len(displayText))

	return bgColour + fgColour + displayText + padding + ansiReset
}
