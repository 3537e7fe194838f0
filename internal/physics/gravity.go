package physics

import "math"

// ApplyGravity accumulates the pairwise gravitational impulse of one tick
// into the velocities of all bodies. Positions are not touched.
//
// O(n^2): fine for the tens of bodies a user places by hand.
func ApplyGravity(bodies []Body, p Params) {
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			gravity(&bodies[i], &bodies[j], p)
		}
	}
}

// adds to a and b the equal and opposite impulse they exert on each other.
func gravity(a, b *Body, p Params) {
	dx := b.Pos[0] - a.Pos[0]
	dy := b.Pos[1] - a.Pos[1]
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		return // coincident centres have no direction
	}

	dist := math.Sqrt(distSq)
	if dist <= a.Radius+b.Radius+p.ContactMargin {
		return // touching bodies don't attract; keeps force finite
	}

	// F = G*ma*mb/r², dv = F/m*dt. The product of the masses is never
	// formed, so it can't overflow for large finite masses.
	k := p.G / distSq / dist * p.TimeStep
	a.Vel[0] += k * b.Mass * dx
	a.Vel[1] += k * b.Mass * dy
	b.Vel[0] -= k * a.Mass * dx
	b.Vel[1] -= k * a.Mass * dy
}
