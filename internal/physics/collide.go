package physics

import "math"

// ResolveOverlaps pushes every pair of intersecting bodies apart along the
// line between their centres, each by half the penetration depth. Velocities
// are left alone, so bodies falling into each other will overlap a little
// again on the next tick.
func ResolveOverlaps(bodies []Body) {
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			separate(&bodies[i], &bodies[j])
		}
	}
}

func separate(a, b *Body) {
	dx := b.Pos[0] - a.Pos[0]
	dy := b.Pos[1] - a.Pos[1]
	dist := math.Sqrt(dx*dx + dy*dy)
	minDist := a.Radius + b.Radius
	if dist >= minDist || dist <= 0 {
		return
	}

	overlap := 0.5 * (minDist - dist)
	nx := dx / dist
	ny := dy / dist
	a.Pos[0] -= nx * overlap
	a.Pos[1] -= ny * overlap
	b.Pos[0] += nx * overlap
	b.Pos[1] += ny * overlap
}
