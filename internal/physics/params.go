package physics

import (
	"errors"
	"fmt"
)

// Params holds the constants of a simulation. They are fixed for the
// lifetime of a World.
type Params struct {
	Width, Height float64 // arena extent, origin at the top left

	G             float64 // gravitational constant
	TimeStep      float64 // simulated seconds per tick
	FrameRate     float64 // ticks per simulated second
	MaxVelocity   float64 // speed cap applied before each position update
	Restitution   float64 // fraction of speed kept by a wall bounce
	ContactMargin float64 // gap beyond contact inside which gravity is off
}

// DefaultParams returns the sandbox defaults.
func DefaultParams() Params {
	return Params{
		Width:         1200,
		Height:        800,
		G:             400,
		TimeStep:      1.0 / 60,
		FrameRate:     60,
		MaxVelocity:   25,
		Restitution:   0.8,
		ContactMargin: 5,
	}
}

// Validate reports the first parameter that would let a pass divide by zero
// or produce non-finite state.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"g", p.G},
		{"time step", p.TimeStep},
		{"frame rate", p.FrameRate},
		{"max velocity", p.MaxVelocity},
		{"restitution", p.Restitution},
		{"contact margin", p.ContactMargin},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%s is not finite", f.name)
		}
	}
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("arena must be positive, got %vx%v", p.Width, p.Height)
	case p.G < 0:
		return errors.New("g must not be negative")
	case p.TimeStep <= 0:
		return errors.New("time step must be positive")
	case p.FrameRate <= 0:
		return errors.New("frame rate must be positive")
	case p.MaxVelocity <= 0:
		return errors.New("max velocity must be positive")
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("restitution %v outside [0, 1]", p.Restitution)
	case p.ContactMargin < 0:
		return errors.New("contact margin must not be negative")
	}
	return nil
}
