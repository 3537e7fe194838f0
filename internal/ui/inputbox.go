// Package ui holds the window-independent state of the spawn controls.
package ui

import (
	"math"
	"strconv"

	"github.com/quillaja/gravbox/internal/physics"
)

// Rect is a screen rectangle. Points on the right and bottom edges are
// outside it.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// InputBox is a numeric text field: digits and '.', at most MaxLen runes,
// edited only while active.
type InputBox struct {
	Rect   Rect
	Text   string
	Active bool
	MaxLen int
}

func NewInputBox(r Rect, text string, maxLen int) *InputBox {
	return &InputBox{Rect: r, Text: text, MaxLen: maxLen}
}

// Click focuses the box when (x, y) is inside it and blurs it otherwise.
func (b *InputBox) Click(x, y int) {
	b.Active = b.Rect.Contains(x, y)
}

// Type appends r if the box is active, r is accepted and there is room.
func (b *InputBox) Type(r rune) {
	if !b.Active || len(b.Text) >= b.MaxLen {
		return
	}
	if (r >= '0' && r <= '9') || r == '.' {
		b.Text += string(r)
	}
}

func (b *InputBox) Backspace() {
	if b.Active && len(b.Text) > 0 {
		b.Text = b.Text[:len(b.Text)-1]
	}
}

// Submit ends editing.
func (b *InputBox) Submit() {
	b.Active = false
}

// Value parses the text, returning fallback for text that doesn't parse or
// isn't a finite positive number.
func (b *InputBox) Value(fallback float64) float64 {
	v, err := strconv.ParseFloat(b.Text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		return fallback
	}
	return v
}

// SpawnForm is the pair of boxes that parameterise new bodies.
type SpawnForm struct {
	Mass     *InputBox
	Radius   *InputBox
	Defaults physics.SpawnParams
}

// NewSpawnForm lays out the mass and radius boxes side by side at the top
// left, pre-filled with the defaults.
func NewSpawnForm(defaults physics.SpawnParams, maxLen int) *SpawnForm {
	return &SpawnForm{
		Mass:     NewInputBox(Rect{X: 10, Y: 10, W: 80, H: 30}, format(defaults.Mass), maxLen),
		Radius:   NewInputBox(Rect{X: 100, Y: 10, W: 80, H: 30}, format(defaults.Radius), maxLen),
		Defaults: defaults,
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Click updates focus and reports whether the click landed outside both
// boxes, i.e. should spawn a body.
func (f *SpawnForm) Click(x, y int) (spawn bool) {
	f.Mass.Click(x, y)
	f.Radius.Click(x, y)
	return !f.Mass.Rect.Contains(x, y) && !f.Radius.Rect.Contains(x, y)
}

func (f *SpawnForm) Type(r rune) {
	f.Mass.Type(r)
	f.Radius.Type(r)
}

func (f *SpawnForm) Backspace() {
	f.Mass.Backspace()
	f.Radius.Backspace()
}

func (f *SpawnForm) Submit() {
	f.Mass.Submit()
	f.Radius.Submit()
}

// Params returns the spawn parameters currently entered.
func (f *SpawnForm) Params() physics.SpawnParams {
	return physics.SpawnParams{
		Mass:   f.Mass.Value(f.Defaults.Mass),
		Radius: f.Radius.Value(f.Defaults.Radius),
	}
}
