package palette

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestRandomIsBright(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := Random(rng)
		if c.R < 100 || c.G < 100 || c.B < 100 || c.A != 255 {
			t.Fatalf("colour %v too dark", c)
		}
	}
}

func TestParse(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"", fallback},
		{"orange", fallback},
		{"#12", fallback},
	}
	for _, tt := range tests {
		if got := Parse(tt.in, fallback); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestByMassEnds(t *testing.T) {
	light := ByMass(0, 100)
	heavy := ByMass(100, 100)
	if light == heavy {
		t.Fatal("gradient ends are the same colour")
	}
	if light.B <= light.R {
		t.Errorf("light end %v should be blue", light)
	}
	if heavy.R <= heavy.B {
		t.Errorf("heavy end %v should be red", heavy)
	}
	if ByMass(500, 100) != heavy {
		t.Error("mass above max should clamp to the heavy end")
	}
	if ByMass(5, 0) != light {
		t.Error("zero max should give the light end")
	}
}
