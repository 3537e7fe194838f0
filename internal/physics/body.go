// Package physics implements the gravity sandbox: pairwise gravity, a fixed
// step integrator with a bounded arena, and positional overlap resolution.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidBody is returned when a body would break the mass > 0,
// radius > 0 invariant or carries non-finite state.
var ErrInvalidBody = errors.New("invalid body")

// Body is a point mass with a radius.
type Body struct {
	Pos    mgl64.Vec2 // arena units
	Vel    mgl64.Vec2 // arena units per frame
	Mass   float64
	Radius float64
}

// SpawnParams is the configuration for a body created by the spawner.
type SpawnParams struct {
	Mass   float64
	Radius float64
}

func (b Body) String() string {
	return fmt.Sprintf("m: %.4f r: %.2f p: [%.2f, %.2f] v: [%.2f, %.2f]",
		b.Mass, b.Radius, b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1])
}

// validate checks the invariants the passes rely on.
func (b Body) validate() error {
	if !finite(b.Mass) || b.Mass <= 0 {
		return fmt.Errorf("%w: mass %v", ErrInvalidBody, b.Mass)
	}
	if !finite(b.Radius) || b.Radius <= 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidBody, b.Radius)
	}
	if !finite(b.Pos[0]) || !finite(b.Pos[1]) {
		return fmt.Errorf("%w: position %v", ErrInvalidBody, b.Pos)
	}
	if !finite(b.Vel[0]) || !finite(b.Vel[1]) {
		return fmt.Errorf("%w: velocity %v", ErrInvalidBody, b.Vel)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
