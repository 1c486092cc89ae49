package glib

import "github.com/hajimehoshi/ebiten/v2"

// Frame is one synthetic keyboard snapshot: the keys down during a single
// poll pass.
type Frame struct {
	Keys  []ebiten.Key
	Shift bool
}

// SyntheticKeyboard is a Keyboard fed from a queue of frames instead of the
// device. Each poll pass consumes one frame; once the queue drains, the
// keyboard reports no keys pressed. It drives text-input tests and scripted
// demos without real hardware.
type SyntheticKeyboard struct {
	frames  []Frame
	current Frame
}

// NewSyntheticKeyboard returns an empty synthetic keyboard.
func NewSyntheticKeyboard() *SyntheticKeyboard {
	return &SyntheticKeyboard{}
}

// Push appends a frame to the queue.
func (s *SyntheticKeyboard) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// PushKeys appends a frame holding the given keys with shift released.
func (s *SyntheticKeyboard) PushKeys(keys ...ebiten.Key) {
	s.Push(Frame{Keys: keys})
}

// PushShifted appends a frame holding the given keys with shift down.
func (s *SyntheticKeyboard) PushShifted(keys ...ebiten.Key) {
	s.Push(Frame{Keys: keys, Shift: true})
}

// Pending returns the number of unconsumed frames.
func (s *SyntheticKeyboard) Pending() int {
	return len(s.frames)
}

// AppendPressedKeys pops the next frame and appends its keys. The popped
// frame stays current so ShiftPressed reflects the same pass.
func (s *SyntheticKeyboard) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	if len(s.frames) == 0 {
		s.current = Frame{}
		return keys
	}
	s.current = s.frames[0]
	copy(s.frames, s.frames[1:])
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return append(keys, s.current.Keys...)
}

// ShiftPressed reports the shift state of the frame consumed by the most
// recent AppendPressedKeys call.
func (s *SyntheticKeyboard) ShiftPressed() bool {
	return s.current.Shift
}
