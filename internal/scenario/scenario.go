// Package scenario loads initial body layouts from YAML and generates
// procedural ones.
package scenario

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/quillaja/gravbox/internal/palette"
	"github.com/quillaja/gravbox/internal/physics"
)

// Scenario is an initial set of bodies.
type Scenario struct {
	Name      string     `yaml:"name"`
	AutoOrbit bool       `yaml:"auto_orbit"` // circular orbits around the first body
	Bodies    []BodySpec `yaml:"bodies"`
}

// BodySpec is one body of a scenario, in arena units.
type BodySpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"` // "#rrggbb", random when empty
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Count returns the number of bodies in the scenario.
func (s *Scenario) Count() int {
	return len(s.Bodies)
}

// Populate adds the scenario's bodies to w in file order and returns their
// colours in the same order. Nothing is added if any body is invalid.
func (s *Scenario) Populate(w *physics.World, rng *rand.Rand) ([]color.RGBA, error) {
	bodies := make([]physics.Body, len(s.Bodies))
	colors := make([]color.RGBA, len(s.Bodies))
	for i, spec := range s.Bodies {
		bodies[i] = physics.Body{
			Pos:    mgl64.Vec2{spec.X, spec.Y},
			Vel:    mgl64.Vec2{spec.VX, spec.VY},
			Mass:   spec.Mass,
			Radius: spec.Radius,
		}
		colors[i] = palette.Parse(spec.Color, palette.Random(rng))
	}
	if s.AutoOrbit {
		setOrbitalVelocities(bodies, w.Params())
	}

	// validate everything before touching the world
	probe := physics.NewWorld(w.Params())
	for i := range bodies {
		if err := probe.Add(bodies[i]); err != nil {
			return nil, fmt.Errorf("scenario %q body %d: %w", s.Name, i, err)
		}
	}
	for i := range bodies {
		if err := w.Add(bodies[i]); err != nil {
			return nil, err
		}
	}
	return colors, nil
}

// the first body is the centre; bodies that already move are left alone.
func setOrbitalVelocities(bodies []physics.Body, p physics.Params) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel != (mgl64.Vec2{}) {
			continue
		}
		bodies[i].Vel = physics.OrbitVelocity(central, bodies[i].Pos, p)
	}
}
