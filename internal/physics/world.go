package physics

import "github.com/go-gl/mathgl/mgl64"

// World owns the ordered body collection of one simulation. It is not safe
// for concurrent use: bodies are added between ticks by the goroutine that
// calls Step.
type World struct {
	params Params
	bodies []Body
	ticks  uint64
}

// NewWorld returns an empty world. p should already have passed Validate.
func NewWorld(p Params) *World {
	return &World{
		params: p,
		bodies: make([]Body, 0, 16),
	}
}

// Spawn appends a resting body at pos and returns it.
func (w *World) Spawn(pos mgl64.Vec2, sp SpawnParams) (Body, error) {
	b := Body{Pos: pos, Mass: sp.Mass, Radius: sp.Radius}
	if err := w.Add(b); err != nil {
		return Body{}, err
	}
	return b, nil
}

// Add appends b, keeping its velocity.
func (w *World) Add(b Body) error {
	if err := b.validate(); err != nil {
		return err
	}
	w.bodies = append(w.bodies, b)
	return nil
}

// Step advances the simulation by one tick: gravity, then integration, then
// overlap resolution.
func (w *World) Step() {
	ApplyGravity(w.bodies, w.params)
	Integrate(w.bodies, w.params)
	ResolveOverlaps(w.bodies)
	w.ticks++
}

// Bodies returns a copy of the collection in spawn order.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Ticks returns the number of completed steps.
func (w *World) Ticks() uint64 { return w.ticks }

// Params returns the constants the world was built with.
func (w *World) Params() Params { return w.params }
