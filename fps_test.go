package glib

import (
	"strings"
	"testing"
	"time"
)

func TestFPSOverlay_RefreshInterval(t *testing.T) {
	o := NewFPSOverlay(fixedFont{advance: 8, height: 16}, 4, 4)

	if err := o.UpdateDelta(100 * time.Millisecond); err != nil {
		t.Fatalf("UpdateDelta: %v", err)
	}
	if o.Label().Text != "" {
		t.Error("overlay refreshed before the interval elapsed")
	}

	if err := o.UpdateDelta(400 * time.Millisecond); err != nil {
		t.Fatalf("UpdateDelta: %v", err)
	}
	if !strings.HasPrefix(o.Label().Text, "FPS: ") {
		t.Errorf("overlay text = %q, want FPS/TPS readout", o.Label().Text)
	}
}

func TestFPSOverlay_LabelPosition(t *testing.T) {
	o := NewFPSOverlay(nil, 4, 6)
	if o.Label().X != 4 || o.Label().Y != 6 {
		t.Errorf("label at (%v, %v), want (4, 6)", o.Label().X, o.Label().Y)
	}
}
