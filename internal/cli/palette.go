package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tonal-sh/tonal/internal/colour"
	"github.com/tonal-sh/tonal/internal/image"
)

// harmonyModeValue binds HarmonyMode to a flag so an invalid mode is
// rejected at parse time with the closed-set error from ParseHarmonyMode.
type harmonyModeValue colour.HarmonyMode

var _ pflag.Value = (*harmonyModeValue)(nil)

func (v *harmonyModeValue) String() string { return string(*v) }

func (v *harmonyModeValue) Set(s string) error {
	m, err := colour.ParseHarmonyMode(s)
	if err != nil {
		return err
	}
	*v = harmonyModeValue(m)
	return nil
}

func (v *harmonyModeValue) Type() string { return "mode" }

var (
	// Palette command flags
	paletteHue       float64
	paletteFromImage string
	paletteMode      = harmonyModeValue(colour.SplitComplementary)
	paletteDark      bool
	paletteFormat    string
	paletteOut       string
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate a seven-role OKLCH palette from a base hue",
	Long: `Generate a deterministic seven-role colour palette (primary, secondary,
accent, background, text, muted, border) in OKLCH from a base hue and a
colour-harmony mode.

Text contrast against the background is repaired towards WCAG AAA (7:1) and
primary contrast towards AA (4.5:1) by stepping lightness; when a saturated
hue physically caps the achievable contrast the nearest in-bounds lightness
is used instead.

Harmony modes:
  monochromatic        - secondary shares the base hue, accent is the complement
  analogous            - secondary +30°, accent -30°
  split-complementary  - secondary and accent straddle the complement by 30°
  triadic              - secondary +120°, accent +240°

Examples:
  # Dark palette seeded at hue 220
  tonal palette --hue 220 --dark

  # Light analogous palette as CSS custom properties
  tonal palette --hue 40 --mode analogous --format css

  # Seed the hue from a wallpaper and save the JSON fragment
  tonal palette --from-image wall.jpg --format json --out tokens-color.json`,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().Float64Var(&paletteHue, "hue", 0, "base hue in degrees (wrapped into 0-360)")
	paletteCmd.Flags().StringVar(&paletteFromImage, "from-image", "", "derive the base hue from an image file")
	// An omitted --mode defaults to split-complementary; an explicit unknown
	// mode is still rejected.
	paletteCmd.Flags().VarP(&paletteMode, "mode", "m", "harmony mode (monochromatic, analogous, split-complementary, triadic)")
	paletteCmd.Flags().BoolVar(&paletteDark, "dark", false, "generate a dark-theme palette")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "preview", "output format (preview, json, css)")
	paletteCmd.Flags().StringVarP(&paletteOut, "out", "o", "", "write output to a file instead of stdout")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	mode := colour.HarmonyMode(paletteMode)

	hue := paletteHue
	if paletteFromImage != "" {
		if cmd.Flags().Changed("hue") {
			return fmt.Errorf("--hue and --from-image are mutually exclusive")
		}
		img, err := image.Load(paletteFromImage)
		if err != nil {
			return fmt.Errorf("loading seed image: %w", err)
		}
		hue = colour.DominantHue(img)
		logger.Debug("derived base hue from image", "path", paletteFromImage, "hue", hue)
	} else if !cmd.Flags().Changed("hue") {
		return fmt.Errorf("either --hue or --from-image is required")
	}

	logger.Debug("generating palette", "hue", hue, "mode", mode, "dark", paletteDark)
	palette := colour.GeneratePalette(hue, mode, paletteDark)

	var out []byte
	switch paletteFormat {
	case "preview":
		useColour := paletteOut == "" && term.IsTerminal(int(os.Stdout.Fd()))
		out = []byte(renderPreview(palette, useColour))
	case "json":
		encoded, err := renderJSON(palette)
		if err != nil {
			return fmt.Errorf("rendering palette JSON: %w", err)
		}
		out = append(encoded, '\n')
	case "css":
		out = []byte(renderCSS(palette))
	default:
		return fmt.Errorf("unknown format %q (valid: preview, json, css)", paletteFormat)
	}

	if paletteOut != "" {
		if err := os.WriteFile(paletteOut, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", paletteOut, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", paletteOut)
		return nil
	}

	cmd.OutOrStdout().Write(out) //nolint:errcheck
	return nil
}
