package glib

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard supplies pressed-key snapshots to widgets. The package default is
// DeviceKeyboard, which polls Ebitengine; SyntheticKeyboard serves queued
// frames for tests and scripts.
type Keyboard interface {
	// AppendPressedKeys appends the currently pressed keys to keys and
	// returns the extended slice.
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key

	// ShiftPressed reports whether either shift key is down.
	ShiftPressed() bool
}

// DeviceKeyboard reads the physical keyboard through Ebitengine.
var DeviceKeyboard Keyboard = deviceKeyboard{}

type deviceKeyboard struct{}

func (deviceKeyboard) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (deviceKeyboard) ShiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// deniedKeys are navigation and modifier keys that never produce a character.
var deniedKeys = map[ebiten.Key]bool{
	ebiten.KeyCapsLock:     true,
	ebiten.KeyArrowUp:      true,
	ebiten.KeyArrowDown:    true,
	ebiten.KeyArrowLeft:    true,
	ebiten.KeyArrowRight:   true,
	ebiten.KeyControl:      true,
	ebiten.KeyControlLeft:  true,
	ebiten.KeyControlRight: true,
	ebiten.KeyAlt:          true,
	ebiten.KeyAltLeft:      true,
	ebiten.KeyAltRight:     true,
	ebiten.KeyMeta:         true,
	ebiten.KeyMetaLeft:     true,
	ebiten.KeyMetaRight:    true,
}

func deniedKey(k ebiten.Key) bool {
	return deniedKeys[k]
}

func isShiftKey(k ebiten.Key) bool {
	return k == ebiten.KeyShift || k == ebiten.KeyShiftLeft || k == ebiten.KeyShiftRight
}

// shiftedDigits maps Digit0..Digit9 to their shifted symbols on a US layout.
var shiftedDigits = [10]string{")", "!", "@", "#", "$", "%", "^", "&", "*", "("}

// keyText returns the character(s) a pressed key contributes to a text
// buffer. Digits, period, and minus use a fixed shifted/unshifted table;
// every other key contributes its textual name case-folded by the shift
// state, so letter keys yield single letters while named keys (Space, Tab)
// yield their lowercase or uppercase names.
//
// Enter, Backspace, shift keys, and deny-listed keys are handled by the
// caller and never reach this table.
func keyText(k ebiten.Key, shift bool) string {
	switch {
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		if shift {
			return shiftedDigits[k-ebiten.KeyDigit0]
		}
		return string(rune('0' + k - ebiten.KeyDigit0))
	case k == ebiten.KeyPeriod:
		if shift {
			return ">"
		}
		return "."
	case k == ebiten.KeyMinus:
		if shift {
			return "_"
		}
		return "-"
	default:
		if shift {
			return strings.ToUpper(k.String())
		}
		return strings.ToLower(k.String())
	}
}
