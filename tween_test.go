package glib

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTweenSpritePosition_ReachesTarget(t *testing.T) {
	s := NewBox(10, 10, ColorWhite)
	g := TweenSpritePosition(s, 100, 50, 1, ease.Linear)

	g.Advance(0.5)
	if g.Done {
		t.Error("Done before duration elapsed")
	}
	if !almostEqual(s.X, 50) || !almostEqual(s.Y, 25) {
		t.Errorf("midpoint = (%v, %v), want (50, 25)", s.X, s.Y)
	}

	g.Advance(0.5)
	if !g.Done {
		t.Error("not Done after full duration")
	}
	if s.X != 100 || s.Y != 50 {
		t.Errorf("endpoint = (%v, %v), want (100, 50)", s.X, s.Y)
	}
}

func TestTweenGroup_UpdateAfterDoneIsNoOp(t *testing.T) {
	s := NewBox(10, 10, ColorWhite)
	g := TweenSpritePosition(s, 100, 0, 1, ease.Linear)

	g.Advance(2)
	x := s.X
	g.Advance(1)
	if s.X != x {
		t.Errorf("finished tween moved the sprite from %v to %v", x, s.X)
	}
}

func TestTweenSpriteAlpha(t *testing.T) {
	s := NewBox(10, 10, ColorWhite)
	g := TweenSpriteAlpha(s, 0, 1, ease.Linear)

	g.Advance(1)
	if s.Color.A != 0 {
		t.Errorf("alpha = %v, want 0", s.Color.A)
	}
	if s.Color.R != 1 {
		t.Error("alpha tween touched another channel")
	}
}

func TestTweenSpriteColor(t *testing.T) {
	s := NewBox(10, 10, ColorBlack)
	g := TweenSpriteColor(s, ColorWhite, 1, ease.Linear)

	g.Advance(1)
	if s.Color != ColorWhite {
		t.Errorf("color = %v, want white", s.Color)
	}
}

func TestTweenLabelColor(t *testing.T) {
	l := NewLabel(nil, "x")
	l.Color = ColorBlack
	g := TweenLabelColor(l, Color{1, 0, 0, 1}, 1, ease.Linear)

	g.Advance(1)
	if l.Color != (Color{1, 0, 0, 1}) {
		t.Errorf("color = %v, want red", l.Color)
	}
}

func TestTweenGroup_MemberUpdate(t *testing.T) {
	// The tick-based Update and the seconds-based Advance are distinct
	// entry points; a group must satisfy Member through the former.
	var m Member = TweenSpritePosition(NewBox(1, 1, ColorWhite), 10, 0, 1, ease.Linear)
	if err := m.Update(); err != nil {
		t.Errorf("Update: %v", err)
	}
}

func TestTweenGroup_UpdateDeltaAdvances(t *testing.T) {
	s := NewBox(1, 1, ColorWhite)
	g := TweenSpritePosition(s, 100, 0, 1, ease.Linear)

	if err := g.UpdateDelta(250 * time.Millisecond); err != nil {
		t.Fatalf("UpdateDelta: %v", err)
	}
	if !almostEqual(s.X, 25) {
		t.Errorf("X = %v, want 25", s.X)
	}
}

func TestTweenGroup_InCollection(t *testing.T) {
	// A group advances through Collection.UpdateDelta alongside the member
	// it animates.
	c := NewCollection()
	s := NewBox(10, 10, ColorWhite)
	c.Add(s)
	c.Add(TweenSpritePosition(s, 100, 0, 1, ease.Linear))

	if err := c.UpdateDelta(500 * time.Millisecond); err != nil {
		t.Fatalf("UpdateDelta: %v", err)
	}
	if !almostEqual(s.X, 50) {
		t.Errorf("X = %v, want 50", s.X)
	}
}
