package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quillaja/gravbox/internal/palette"
	"github.com/quillaja/gravbox/internal/physics"
	"github.com/quillaja/gravbox/internal/record"
)

const tailTicks = 4 // velocity tail length, in ticks of motion

var (
	background = color.RGBA{0, 0, 0, 255}
	border     = color.RGBA{128, 128, 128, 255}
)

// PNGSink draws each frame to dir/<frame>.png.
type PNGSink struct {
	dir    string
	scale  float64 // pixels per arena unit
	width  int
	height int
	bg     *image.RGBA
}

// NewPNGSink sizes images to the arena of p times scale and creates dir.
func NewPNGSink(dir string, p physics.Params, scale float64) (*PNGSink, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &PNGSink{
		dir:    dir,
		scale:  scale,
		width:  int(math.Ceil(p.Width * scale)),
		height: int(math.Ceil(p.Height * scale)),
	}

	// background with the arena outline, copied into every frame
	s.bg = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(s.bg, s.bg.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	outline(s.bg, border, s.bg.Bounds())
	return s, nil
}

// Draw renders f into a new image.
func (s *PNGSink) Draw(f *record.Frame) *image.RGBA {
	film := image.NewRGBA(s.bg.Bounds())
	draw.Draw(film, film.Bounds(), s.bg, image.Point{}, draw.Src)

	maxMass := 0.0
	for _, b := range f.Bodies {
		maxMass = math.Max(maxMass, b.Mass)
	}

	// light to heavy, so "important" bodies are drawn last/on top
	order := make([]int, len(f.Bodies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return f.Bodies[order[i]].Mass < f.Bodies[order[j]].Mass
	})

	for _, i := range order {
		b := f.Bodies[i]
		col := palette.ByMass(b.Mass, maxMass)
		if i < len(f.Colors) {
			col = f.Colors[i]
		}
		at := s.pt(b.Pos)
		r := int(math.Max(1, math.Round(b.Radius*s.scale)))

		fillCircle(film, col, at, r)
		if b.Vel[0] != 0 || b.Vel[1] != 0 {
			drawLine(film, border, at, s.pt(b.Pos.Sub(b.Vel.Mul(tailTicks))))
			strokeCircle(film, col, at, r)
		}
	}
	return film
}

func (s *PNGSink) pt(v mgl64.Vec2) image.Point {
	return image.Pt(int(math.Round(v[0]*s.scale)), int(math.Round(v[1]*s.scale)))
}

func (s *PNGSink) WriteFrame(f *record.Frame) error {
	file, err := os.Create(filepath.Join(s.dir, fmt.Sprintf("%010d.png", f.Index)))
	if err != nil {
		return err
	}
	if err := png.Encode(file, s.Draw(f)); err != nil {
		file.Close()
		return fmt.Errorf("encode frame %d: %w", f.Index, err)
	}
	return file.Close()
}

func (s *PNGSink) Close() error { return nil }
