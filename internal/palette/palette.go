// Package palette picks body colours.
package palette

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Random returns a bright colour with every channel in [100, 255].
func Random(rng *rand.Rand) color.RGBA {
	// hue anywhere, value high and saturation capped so the darkest
	// channel stays at or above 100/255.
	c := colorful.Hsv(rng.Float64()*360, rng.Float64()*0.6, 0.85+rng.Float64()*0.15)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{lift(r), lift(g), lift(b), 255}
}

func lift(c uint8) uint8 {
	if c < 100 {
		return 100
	}
	return c
}

// Parse reads a "#rrggbb" colour, returning fallback when s is empty or
// malformed.
func Parse(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// ByMass maps m on a blue (light) to red (heavy) gradient relative to max.
func ByMass(m, max float64) color.RGBA {
	t := 0.0
	if max > 0 {
		t = math.Max(0, math.Min(1, m/max))
	}
	light := colorful.Hcl(230, 0.6, 0.75)
	heavy := colorful.Hcl(20, 0.9, 0.6)
	r, g, b := light.BlendHcl(heavy, t).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
