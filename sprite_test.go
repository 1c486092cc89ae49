package glib

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewSprite_Defaults(t *testing.T) {
	img := ebiten.NewImage(16, 8)
	s := NewSprite(img)

	if s.ScaleX != 1 || s.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", s.ScaleX, s.ScaleY)
	}
	if !s.Visible {
		t.Error("new sprite not visible")
	}
	if s.Width() != 16 || s.Height() != 8 {
		t.Errorf("size = %vx%v, want 16x8", s.Width(), s.Height())
	}
}

func TestNewBox_Size(t *testing.T) {
	s := NewBox(30, 20, Color{1, 0, 0, 1})
	if s.Image != nil {
		t.Error("box sprite has an image")
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %vx%v, want 30x20", s.Width(), s.Height())
	}
}

func TestSprite_Bounds(t *testing.T) {
	s := NewBox(10, 20, ColorWhite)
	s.X, s.Y = 5, 6
	s.ScaleX, s.ScaleY = 2, 3

	got := s.Bounds()
	want := Rect{X: 5, Y: 6, Width: 20, Height: 60}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestSprite_Update(t *testing.T) {
	if err := NewBox(1, 1, ColorWhite).Update(); err != nil {
		t.Errorf("Update: %v", err)
	}
}
