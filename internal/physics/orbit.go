package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CircularSpeed is the speed of a circular orbit of radius r around a body of
// centralMass under this integrator, ignoring the pull on the central body.
//
// Per tick the velocity turns by (v*TimeStep*FrameRate)/r radians, which
// has to match the gravitational impulse G*M/r²*TimeStep.
func (p Params) CircularSpeed(centralMass, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(p.G * centralMass * p.TimeStep / (r * p.TimeStep * p.FrameRate))
}

// OrbitVelocity returns the velocity that puts a body at pos on a circular
// orbit around central, on top of central's own velocity. With y pointing
// down the orbit runs clockwise on screen.
func OrbitVelocity(central Body, pos mgl64.Vec2, p Params) mgl64.Vec2 {
	d := pos.Sub(central.Pos)
	r := d.Len()
	if r == 0 {
		return central.Vel
	}
	v := p.CircularSpeed(central.Mass, r)
	tangent := mgl64.Vec2{-d[1] / r, d[0] / r}
	return central.Vel.Add(tangent.Mul(v))
}
