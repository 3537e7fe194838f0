package scenario

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/quillaja/gravbox/internal/palette"
	"github.com/quillaja/gravbox/internal/physics"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 4.0 // noise periods across the arena
)

// Scatter places n resting bodies uniformly in the arena. Their size
// follows a Perlin noise field, so neighbouring bodies have similar masses
// and the field shows heavy and light regions. The same seed gives the same
// scenario.
func Scatter(n int, seed int64, p physics.Params, base physics.SpawnParams) *Scenario {
	rng := rand.New(rand.NewSource(seed))
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	s := &Scenario{
		Name:   fmt.Sprintf("scatter-%d", seed),
		Bodies: make([]BodySpec, 0, n),
	}
	margin := math.Min(2*base.Radius, math.Min(p.Width, p.Height)/4)
	for i := 0; i < n; i++ {
		x := margin + rng.Float64()*(p.Width-2*margin)
		y := margin + rng.Float64()*(p.Height-2*margin)

		k := 1 + noise.Noise2D(x/p.Width*noiseScale, y/p.Height*noiseScale)
		k = math.Max(0.25, math.Min(2, k))

		c := palette.Random(rng)
		s.Bodies = append(s.Bodies, BodySpec{
			X:      x,
			Y:      y,
			Mass:   base.Mass * k * k,
			Radius: base.Radius * k,
			Color:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		})
	}
	return s
}
