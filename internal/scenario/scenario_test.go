package scenario

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quillaja/gravbox/internal/physics"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndPopulate(t *testing.T) {
	path := writeScenario(t, `
name: pair
bodies:
  - {x: 100, y: 200, mass: 50, radius: 10, color: "#ff0000"}
  - {x: 300, y: 200, vx: 1.5, vy: -2, mass: 25, radius: 5}
`)
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "pair" || s.Count() != 2 {
		t.Fatalf("loaded %q with %d bodies", s.Name, s.Count())
	}

	w := physics.NewWorld(physics.DefaultParams())
	colors, err := s.Populate(w, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 || colors[0] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("colors = %v", colors)
	}
	bodies := w.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("world has %d bodies", len(bodies))
	}
	want := physics.Body{Pos: mgl64.Vec2{300, 200}, Vel: mgl64.Vec2{1.5, -2}, Mass: 25, Radius: 5}
	if bodies[1] != want {
		t.Errorf("body 1 = %v, want %v", bodies[1], want)
	}
}

func TestPopulateRejectsInvalidBodies(t *testing.T) {
	s := &Scenario{Name: "bad", Bodies: []BodySpec{
		{X: 100, Y: 100, Mass: 10, Radius: 5},
		{X: 200, Y: 100, Mass: 0, Radius: 5},
	}}
	w := physics.NewWorld(physics.DefaultParams())
	_, err := s.Populate(w, rand.New(rand.NewSource(1)))
	if !errors.Is(err, physics.ErrInvalidBody) {
		t.Fatalf("err = %v, want ErrInvalidBody", err)
	}
	if w.Len() != 0 {
		t.Errorf("partial scenario left %d bodies in the world", w.Len())
	}
}

func TestAutoOrbit(t *testing.T) {
	p := physics.DefaultParams()
	s := &Scenario{AutoOrbit: true, Bodies: []BodySpec{
		{X: 600, Y: 400, Mass: 5000, Radius: 20},
		{X: 800, Y: 400, Mass: 1, Radius: 3},
		{X: 600, Y: 250, VX: 2, Mass: 1, Radius: 3},
	}}
	w := physics.NewWorld(p)
	if _, err := s.Populate(w, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	bodies := w.Bodies()

	if bodies[0].Vel != (mgl64.Vec2{}) {
		t.Errorf("central body got velocity %v", bodies[0].Vel)
	}
	want := p.CircularSpeed(5000, 200)
	if v := bodies[1].Vel; math.Abs(v[0]) > 1e-12 || math.Abs(v[1]-want) > 1e-12 {
		t.Errorf("orbit velocity = %v, want [0 %v]", v, want)
	}
	if bodies[2].Vel != (mgl64.Vec2{2, 0}) {
		t.Errorf("moving body was given an orbit: %v", bodies[2].Vel)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := Load(writeScenario(t, "bodies: [x: 1")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestScatter(t *testing.T) {
	p := physics.DefaultParams()
	base := physics.SpawnParams{Mass: 50, Radius: 10}

	a := Scatter(40, 9, p, base)
	b := Scatter(40, 9, p, base)
	c := Scatter(40, 10, p, base)

	if a.Count() != 40 {
		t.Fatalf("got %d bodies", a.Count())
	}
	same := true
	for i := range a.Bodies {
		if a.Bodies[i] != b.Bodies[i] {
			t.Fatalf("same seed diverged at body %d", i)
		}
		if a.Bodies[i] != c.Bodies[i] {
			same = false
		}
		s := a.Bodies[i]
		if s.X < 0 || s.X > p.Width || s.Y < 0 || s.Y > p.Height {
			t.Errorf("body %d outside the arena: %+v", i, s)
		}
		if s.Mass <= 0 || s.Radius <= 0 {
			t.Errorf("body %d not positive: %+v", i, s)
		}
	}
	if same {
		t.Error("different seeds gave the same scenario")
	}

	w := physics.NewWorld(p)
	if _, err := a.Populate(w, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 40 {
		t.Errorf("world has %d bodies", w.Len())
	}
}
