package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/quillaja/gravbox/internal/config"
	"github.com/quillaja/gravbox/internal/palette"
	"github.com/quillaja/gravbox/internal/physics"
	"github.com/quillaja/gravbox/internal/record"
	"github.com/quillaja/gravbox/internal/ui"
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	gray      = color.RGBA{100, 100, 100, 255}
	lightgray = color.RGBA{180, 180, 180, 255}
	black     = color.RGBA{0, 0, 0, 255}
)

// Game is the window front end. It owns the world: bodies are spawned in
// Update before the tick, so the physics passes never see a half-added body.
type Game struct {
	world  *physics.World
	colors []color.RGBA // parallel to the world's bodies
	form   *ui.SpawnForm
	rng    *rand.Rand

	rec   *record.Recorder
	every int
	log   *zap.Logger

	paused bool
	chars  []rune
}

func runWindow(w *physics.World, colors []color.RGBA, cfg *config.Config, rng *rand.Rand, rec *record.Recorder, log *zap.Logger) error {
	p := w.Params()
	g := &Game{
		world:  w,
		colors: colors,
		form:   ui.NewSpawnForm(cfg.SpawnDefaults(), cfg.Spawn.MaxDigits),
		rng:    rng,
		rec:    rec,
		every:  cfg.Record.Every,
		log:    log,
	}

	ebiten.SetWindowSize(int(p.Width), int(p.Height))
	ebiten.SetWindowTitle("Gravity Simulation - Add Planets")
	// one tick per frame; the simulation is not tied to the wall clock
	ebiten.SetTPS(int(math.Round(p.FrameRate)))
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return nil
	}

	g.world.Step()
	if g.rec != nil && g.world.Ticks()%uint64(g.every) == 0 {
		g.rec.Record(snapshot(g.world, g.colors))
	}
	return nil
}

func (g *Game) handleInput() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.form.Type(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.form.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.form.Submit()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.form.Click(x, y) {
			g.spawn(x, y)
		}
	}
}

func (g *Game) spawn(x, y int) {
	sp := g.form.Params()
	b, err := g.world.Spawn(mgl64.Vec2{float64(x), float64(y)}, sp)
	if err != nil {
		// the form only hands out positive finite values
		g.log.Error("spawn rejected", zap.Error(err))
		return
	}
	g.colors = append(g.colors, palette.Random(g.rng))
	g.log.Debug("spawned", zap.Stringer("body", b), zap.Int("bodies", g.world.Len()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(black)

	for i, b := range g.world.Bodies() {
		vector.DrawFilledCircle(screen,
			float32(b.Pos[0]), float32(b.Pos[1]), float32(b.Radius),
			g.colors[i], true)
	}

	// UI
	g.drawBox(screen, g.form.Mass)
	g.drawBox(screen, g.form.Radius)
	text.Draw(screen, "Mass:", basicfont.Face7x13, 10, 58, white)
	text.Draw(screen, "Radius:", basicfont.Face7x13, 100, 58, white)

	p := g.world.Params()
	text.Draw(screen, fmt.Sprintf("FPS: %d", int(ebiten.ActualFPS())), basicfont.Face7x13, int(p.Width)-100, 23, white)

	s := physics.Measure(g.world.Bodies())
	status := fmt.Sprintf("bodies: %d  KE: %.1f", s.Count, s.Kinetic)
	if g.paused {
		status += "  [paused: space resumes, N steps]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 10, int(p.Height)-10, lightgray)
}

func (g *Game) drawBox(screen *ebiten.Image, b *ui.InputBox) {
	col := gray
	if b.Active {
		col = lightgray
	}
	r := b.Rect
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, col, false)
	text.Draw(screen, b.Text, basicfont.Face7x13, r.X+5, r.Y+20, white)
}

func (g *Game) Layout(_, _ int) (int, int) {
	p := g.world.Params()
	return int(p.Width), int(p.Height)
}
