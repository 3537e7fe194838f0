package physics

import "math"

// Integrate clamps every body's speed, advances its position by one tick and
// bounces it off the arena walls.
func Integrate(bodies []Body, p Params) {
	for i := range bodies {
		ClampVelocity(&bodies[i], p.MaxVelocity)
		bodies[i].advance(p)
		bodies[i].bounce(p)
	}
}

// ClampVelocity rescales b's velocity so its magnitude is at most max,
// keeping its direction.
func ClampVelocity(b *Body, max float64) {
	v := math.Hypot(b.Vel[0], b.Vel[1])
	if v > max {
		scale := max / v
		b.Vel[0] *= scale
		b.Vel[1] *= scale
	}
}

// dp = v*dt. TimeStep*FrameRate is one with the defaults: a tick is one
// fixed logical step per rendered frame, whatever the wall clock says.
func (b *Body) advance(p Params) {
	b.Pos[0] += b.Vel[0] * p.TimeStep * p.FrameRate
	b.Pos[1] += b.Vel[1] * p.TimeStep * p.FrameRate
}

// bounce reflects b off each wall its edge has crossed, losing
// 1-Restitution of the perpendicular speed. A body wider than the arena is
// pushed against both walls in turn and ends on the last one.
func (b *Body) bounce(p Params) {
	if b.Pos[0]-b.Radius < 0 {
		b.Pos[0] = b.Radius
		b.Vel[0] *= -p.Restitution
	}
	if b.Pos[0]+b.Radius > p.Width {
		b.Pos[0] = p.Width - b.Radius
		b.Vel[0] *= -p.Restitution
	}
	if b.Pos[1]-b.Radius < 0 {
		b.Pos[1] = b.Radius
		b.Vel[1] *= -p.Restitution
	}
	if b.Pos[1]+b.Radius > p.Height {
		b.Pos[1] = p.Height - b.Radius
		b.Vel[1] *= -p.Restitution
	}
}
