package glib

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyText_Letters(t *testing.T) {
	tests := []struct {
		key   ebiten.Key
		shift bool
		want  string
	}{
		{ebiten.KeyA, false, "a"},
		{ebiten.KeyA, true, "A"},
		{ebiten.KeyZ, false, "z"},
		{ebiten.KeyZ, true, "Z"},
	}
	for _, tt := range tests {
		if got := keyText(tt.key, tt.shift); got != tt.want {
			t.Errorf("keyText(%v, %v) = %q, want %q", tt.key, tt.shift, got, tt.want)
		}
	}
}

func TestKeyText_Digits(t *testing.T) {
	wantShifted := []string{")", "!", "@", "#", "$", "%", "^", "&", "*", "("}
	for i := 0; i < 10; i++ {
		key := ebiten.KeyDigit0 + ebiten.Key(i)
		if got := keyText(key, false); got != string(rune('0'+i)) {
			t.Errorf("keyText(%v) = %q, want %q", key, got, string(rune('0'+i)))
		}
		if got := keyText(key, true); got != wantShifted[i] {
			t.Errorf("keyText(%v, shift) = %q, want %q", key, got, wantShifted[i])
		}
	}
}

func TestKeyText_Punctuation(t *testing.T) {
	tests := []struct {
		key   ebiten.Key
		shift bool
		want  string
	}{
		{ebiten.KeyPeriod, false, "."},
		{ebiten.KeyPeriod, true, ">"},
		{ebiten.KeyMinus, false, "-"},
		{ebiten.KeyMinus, true, "_"},
	}
	for _, tt := range tests {
		if got := keyText(tt.key, tt.shift); got != tt.want {
			t.Errorf("keyText(%v, %v) = %q, want %q", tt.key, tt.shift, got, tt.want)
		}
	}
}

func TestKeyText_NamedKeys(t *testing.T) {
	// Non-letter keys contribute their case-folded name.
	if got := keyText(ebiten.KeySpace, false); got != "space" {
		t.Errorf("keyText(Space) = %q, want %q", got, "space")
	}
	if got := keyText(ebiten.KeySpace, true); got != "SPACE" {
		t.Errorf("keyText(Space, shift) = %q, want %q", got, "SPACE")
	}
	if got := keyText(ebiten.KeyTab, false); got != "tab" {
		t.Errorf("keyText(Tab) = %q, want %q", got, "tab")
	}
}

func TestDeniedKey(t *testing.T) {
	denied := []ebiten.Key{
		ebiten.KeyCapsLock,
		ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
		ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight,
	}
	for _, k := range denied {
		if !deniedKey(k) {
			t.Errorf("deniedKey(%v) = false, want true", k)
		}
	}

	allowed := []ebiten.Key{ebiten.KeyA, ebiten.KeyDigit5, ebiten.KeySpace, ebiten.KeyEnter}
	for _, k := range allowed {
		if deniedKey(k) {
			t.Errorf("deniedKey(%v) = true, want false", k)
		}
	}
}

func TestIsShiftKey(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight} {
		if !isShiftKey(k) {
			t.Errorf("isShiftKey(%v) = false, want true", k)
		}
	}
	if isShiftKey(ebiten.KeyA) {
		t.Error("isShiftKey(KeyA) = true, want false")
	}
}
