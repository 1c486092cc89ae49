package glib

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often the overlay text is rebuilt.
const fpsRefresh = 500 * time.Millisecond

// FPSOverlay is a Collection member that displays the current FPS and TPS
// in a label, refreshed every half second. Add it last so it draws on top.
type FPSOverlay struct {
	Attachment

	label   *Label
	elapsed time.Duration
}

// NewFPSOverlay creates an overlay rendered with the given font at (x, y).
func NewFPSOverlay(f Font, x, y float64) *FPSOverlay {
	l := NewLabel(f, "")
	l.X, l.Y = x, y
	return &FPSOverlay{label: l}
}

// Label returns the underlying label for color or scale adjustments.
func (o *FPSOverlay) Label() *Label {
	return o.label
}

// Update advances the overlay by one tick at the current TPS.
func (o *FPSOverlay) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return o.UpdateDelta(time.Second / time.Duration(tps))
}

// UpdateDelta rebuilds the overlay text once per refresh interval.
func (o *FPSOverlay) UpdateDelta(dt time.Duration) error {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return nil
	}
	o.elapsed = 0
	o.label.Text = fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	return nil
}

// Draw submits the overlay label to the batch.
func (o *FPSOverlay) Draw(b *Batch) {
	o.label.Draw(b)
}
