package glib

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four float64 fields simultaneously. Create one
// via the convenience constructors and advance it with Advance or
// UpdateDelta each frame; values are written straight into the target
// fields.
//
// There is no global animation manager. Add a group to a Collection to have
// it advanced alongside the members it animates.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// newTweenGroup binds parallel from/to pairs to the given fields. All three
// slices must have equal length of at most four entries.
func newTweenGroup(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: len(fields)}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
		g.fields[i] = f
	}
	return g
}

// Advance moves all tweens forward by dt seconds and writes the
// interpolated values into the bound fields. Once every tween finishes,
// Done is set and further calls are no-ops.
func (g *TweenGroup) Advance(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Update advances the group by one tick at the current TPS.
func (g *TweenGroup) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return g.UpdateDelta(time.Second / time.Duration(tps))
}

// UpdateDelta advances the group by a duration, satisfying DeltaUpdater so
// groups can live in a Collection.
func (g *TweenGroup) UpdateDelta(dt time.Duration) error {
	g.Advance(float32(dt.Seconds()))
	return nil
}

// Draw is a no-op; a TweenGroup occupies a Collection slot only to be
// updated.
func (g *TweenGroup) Draw(b *Batch) {}

// TweenSpritePosition animates a sprite's X and Y to the target coordinates.
func TweenSpritePosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]*float64{&s.X, &s.Y}, []float64{toX, toY}, duration, fn)
}

// TweenSpriteScale animates a sprite's ScaleX and ScaleY.
func TweenSpriteScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]*float64{&s.ScaleX, &s.ScaleY}, []float64{toSX, toSY}, duration, fn)
}

// TweenSpriteColor animates all four components of a sprite's color.
func TweenSpriteColor(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(
		[]*float64{&s.Color.R, &s.Color.G, &s.Color.B, &s.Color.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn,
	)
}

// TweenSpriteAlpha animates a sprite's alpha component.
func TweenSpriteAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]*float64{&s.Color.A}, []float64{to}, duration, fn)
}

// TweenLabelPosition animates a label's X and Y to the target coordinates.
func TweenLabelPosition(l *Label, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]*float64{&l.X, &l.Y}, []float64{toX, toY}, duration, fn)
}

// TweenLabelColor animates all four components of a label's color.
func TweenLabelColor(l *Label, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(
		[]*float64{&l.Color.R, &l.Color.G, &l.Color.B, &l.Color.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn,
	)
}
