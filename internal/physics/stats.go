package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Stats summarises a body collection.
type Stats struct {
	Count        int
	Mass         float64
	CenterOfMass mgl64.Vec2
	Momentum     mgl64.Vec2 // sum of m*v
	Kinetic      float64    // sum of m*v²/2
	Min, Max     mgl64.Vec2 // bounding box of the centres
}

// Measure computes Stats for bodies. The zero Stats is returned for an empty
// collection.
func Measure(bodies []Body) (s Stats) {
	s.Count = len(bodies)
	if s.Count == 0 {
		return
	}
	s.Min = mgl64.Vec2{math.Inf(1), math.Inf(1)}
	s.Max = mgl64.Vec2{math.Inf(-1), math.Inf(-1)}

	for i := range bodies {
		b := &bodies[i]
		s.Mass += b.Mass
		s.CenterOfMass = s.CenterOfMass.Add(b.Pos.Mul(b.Mass))
		s.Momentum = s.Momentum.Add(b.Vel.Mul(b.Mass))
		s.Kinetic += 0.5 * b.Mass * b.Vel.Dot(b.Vel)

		s.Min[0] = math.Min(s.Min[0], b.Pos[0])
		s.Min[1] = math.Min(s.Min[1], b.Pos[1])
		s.Max[0] = math.Max(s.Max[0], b.Pos[0])
		s.Max[1] = math.Max(s.Max[1], b.Pos[1])
	}
	s.CenterOfMass = s.CenterOfMass.Mul(1 / s.Mass)
	return
}
