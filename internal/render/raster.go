// Package render rasterises frames to PNG images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Every primitive here clips to img.Bounds(): bodies and their tails
// regularly hang over the arena edge.

// outline draws the 1px border of r.
func outline(img draw.Image, c color.Color, r image.Rectangle) {
	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(img, edge.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}

// drawLine steps from a to b along the longer axis, one pixel per step.
func drawLine(img draw.Image, c color.Color, a, b image.Point) {
	bounds := img.Bounds()
	span := image.Rectangle{Min: a, Max: b}.Canon()
	span.Max = span.Max.Add(image.Pt(1, 1))
	if !span.Overlaps(bounds) {
		return
	}

	d := b.Sub(a)
	n := max(iabs(d.X), iabs(d.Y))
	if n == 0 {
		set(img, bounds, c, a)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		set(img, bounds, c, image.Pt(
			a.X+int(math.Round(t*float64(d.X))),
			a.Y+int(math.Round(t*float64(d.Y)))))
	}
}

// fillCircle fills the disc of radius r around o row by row.
func fillCircle(img draw.Image, c color.Color, o image.Point, r int) {
	clip := image.Rect(o.X-r, o.Y-r, o.X+r+1, o.Y+r+1).Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	src := image.NewUniform(c)
	rr := float64(r * r)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		dy := float64(y - o.Y)
		half := int(math.Sqrt(rr - dy*dy))
		row := image.Rect(o.X-half, y, o.X+half+1, y+1).Intersect(clip)
		draw.Draw(img, row, src, image.Point{}, draw.Src)
	}
}

// strokeCircle draws the ring of radius r around o with the midpoint
// method, mirroring one octant into the other seven.
func strokeCircle(img draw.Image, c color.Color, o image.Point, r int) {
	bounds := img.Bounds()
	if !image.Rect(o.X-r, o.Y-r, o.X+r+1, o.Y+r+1).Overlaps(bounds) {
		return
	}
	x, y, e := r, 0, 1-r
	for x >= y {
		for _, p := range [...]image.Point{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			set(img, bounds, c, o.Add(p))
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

func set(img draw.Image, bounds image.Rectangle, c color.Color, p image.Point) {
	if p.In(bounds) {
		img.Set(p.X, p.Y, c)
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
