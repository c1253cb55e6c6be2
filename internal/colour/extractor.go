package colour

import (
	"image"
	"math"
)

// Sampling limits for hue extraction. A stride keeps large wallpapers cheap
// without changing the result's determinism for a given image.
const (
	maxHueSamples = 65536
	// Pixels below this chroma are effectively neutral and carry no usable
	// hue signal.
	neutralChromaCutoff = 0.02
)

// DominantHue derives a palette seed hue from an image: each sampled pixel's
// hue is accumulated as a unit vector weighted by its chroma, and the
// circular mean of the sum is returned. Chroma weighting means a saturated
// accent wall beats a large grey sky. Returns 0 for fully neutral images.
func DominantHue(img image.Image) float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	stride := 1
	for (width/stride)*(height/stride) > maxHueSamples {
		stride++
	}

	var sumX, sumY float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			c := FromRGB(RGB{
				R: uint8(r >> 8), // #nosec G115 -- RGBA returns 16-bit channels
				G: uint8(g >> 8), // #nosec G115
				B: uint8(b >> 8), // #nosec G115
			})
			if c.C < neutralChromaCutoff {
				continue
			}

			rad := c.H * math.Pi / 180.0
			sumX += c.C * math.Cos(rad)
			sumY += c.C * math.Sin(rad)
		}
	}

	if sumX == 0 && sumY == 0 {
		return 0
	}
	return NormalizeHue(math.Atan2(sumY, sumX) * 180.0 / math.Pi)
}
