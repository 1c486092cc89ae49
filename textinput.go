package glib

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultPollDelay is the minimum interval between keyboard passes.
	DefaultPollDelay = 75 * time.Millisecond

	// DefaultPasswordRune masks password input.
	DefaultPasswordRune = '*'

	// defaultLabelInset offsets the embedded label from the widget corner.
	defaultLabelInset = 1.0
)

// SubmitContext carries submission data. Text is the buffer content at
// submission time, before any reset-on-submit clearing.
type SubmitContext struct {
	Input *TextInput
	Text  string
}

// MoveContext carries the widget's new position after a move.
type MoveContext struct {
	Input *TextInput
	X, Y  float64
}

type submitHandler struct {
	id uint32
	fn func(SubmitContext)
}

type moveHandler struct {
	id uint32
	fn func(MoveContext)
}

// TextInput is a single-line text-entry widget: a background sprite plus an
// embedded Label. On a fixed cadence it polls the pressed keys, edits an
// internal buffer, and derives a displayed substring that fits the widget's
// pixel width, scrolling from the left and optionally masking for password
// entry.
//
// The widget repositions its embedded label through a private hook that
// cannot be unregistered; OnMove listeners observe moves without being able
// to break that wiring.
type TextInput struct {
	Attachment

	// Focused gates keyboard processing. Display derivation runs on every
	// poll pass regardless of focus.
	Focused bool

	// ResetOnSubmit clears the buffer after the submit listeners fire.
	ResetOnSubmit bool

	// PollDelay is the minimum interval between keyboard passes.
	PollDelay time.Duration

	// Width is the pixel budget the displayed text must fit in.
	Width float64

	background *Sprite
	label      *Label
	labelInset float64

	keyboard   Keyboard
	pressedBuf []ebiten.Key // reused pressed-key snapshot buffer

	x, y float64

	text         string // full, unclipped, unmasked buffer
	displayed    string // derived: possibly masked, possibly scrolled
	firstVisible int    // smallest offset whose suffix fits Width
	password     bool
	passwordRune rune

	elapsed time.Duration

	submitHandlers []submitHandler
	moveHandlers   []moveHandler
	nextHandlerID  uint32
}

// NewTextInput creates a widget with a solid dark background box of the
// given width at (x, y). The height follows the font's line height.
func NewTextInput(f Font, x, y, width float64) *TextInput {
	h := 2 * defaultLabelInset
	if f != nil {
		h += f.LineHeight()
	}
	bg := NewBox(width, h, Color{0.12, 0.12, 0.12, 1})
	return newTextInput(bg, f, x, y, width)
}

// NewTextInputWithImage creates a widget backed by a texture. The pixel
// width budget is the image width minus the label inset on both sides.
// Panics if img is nil.
func NewTextInputWithImage(img *ebiten.Image, f Font, x, y float64) *TextInput {
	if img == nil {
		panic("glib: NewTextInputWithImage with nil image")
	}
	bg := NewSprite(img)
	width := float64(img.Bounds().Dx()) - 2*defaultLabelInset
	if width < 0 {
		width = 0
	}
	return newTextInput(bg, f, x, y, width)
}

func newTextInput(bg *Sprite, f Font, x, y, width float64) *TextInput {
	t := &TextInput{
		PollDelay:    DefaultPollDelay,
		Width:        width,
		background:   bg,
		label:        NewLabel(f, ""),
		labelInset:   defaultLabelInset,
		keyboard:     DeviceKeyboard,
		passwordRune: DefaultPasswordRune,
	}
	t.SetPosition(x, y)
	return t
}

// Background returns the widget's background sprite.
func (t *TextInput) Background() *Sprite {
	return t.background
}

// Label returns the embedded label. Its position is owned by the widget;
// font, scale, and color may be adjusted freely.
func (t *TextInput) Label() *Label {
	return t.label
}

// SetKeyboard replaces the key source. A nil keyboard restores the device
// keyboard.
func (t *TextInput) SetKeyboard(kb Keyboard) {
	if kb == nil {
		kb = DeviceKeyboard
	}
	t.keyboard = kb
}

// Position returns the widget's top-left corner.
func (t *TextInput) Position() (x, y float64) {
	return t.x, t.y
}

// SetPosition moves the widget, repositions the embedded label one inset
// inside the new corner, and fires the move listeners.
func (t *TextInput) SetPosition(x, y float64) {
	t.x, t.y = x, y
	t.background.X, t.background.Y = x, y
	t.repositionLabel()
	ctx := MoveContext{Input: t, X: x, Y: y}
	for _, h := range t.moveHandlers {
		h.fn(ctx)
	}
}

// repositionLabel is the internal move hook. It is not part of the listener
// registry, so no caller can unregister it.
func (t *TextInput) repositionLabel() {
	t.label.X = t.x + t.labelInset
	t.label.Y = t.y + t.labelInset
}

// Text returns the full, unmasked buffer.
func (t *TextInput) Text() string {
	return t.text
}

// SetText replaces the buffer and rederives the displayed substring.
func (t *TextInput) SetText(s string) {
	t.text = s
	t.refreshDisplay()
}

// DisplayedText returns the derived display string: the suffix of the
// (possibly masked) buffer that fits the width budget.
func (t *TextInput) DisplayedText() string {
	return t.displayed
}

// FirstVisibleIndex returns the offset of the first displayed character.
func (t *TextInput) FirstVisibleIndex() int {
	return t.firstVisible
}

// Password reports whether display masking is enabled.
func (t *TextInput) Password() bool {
	return t.password
}

// SetPassword toggles display masking. The underlying buffer is never
// modified; only the derived display changes.
func (t *TextInput) SetPassword(enabled bool) {
	t.password = enabled
	t.refreshDisplay()
}

// SetPasswordRune sets the masking character. A zero rune restores '*'.
func (t *TextInput) SetPasswordRune(r rune) {
	if r == 0 {
		r = DefaultPasswordRune
	}
	t.passwordRune = r
	t.refreshDisplay()
}

// OnSubmit registers a listener fired when Enter is processed. Listeners
// observe the buffer as it was at submission time, before any
// reset-on-submit clearing.
func (t *TextInput) OnSubmit(fn func(SubmitContext)) Handle {
	t.nextHandlerID++
	id := t.nextHandlerID
	t.submitHandlers = append(t.submitHandlers, submitHandler{id: id, fn: fn})
	return Handle{id: id, remove: t.removeSubmitHandler}
}

func (t *TextInput) removeSubmitHandler(id uint32) {
	for i := range t.submitHandlers {
		if t.submitHandlers[i].id == id {
			copy(t.submitHandlers[i:], t.submitHandlers[i+1:])
			t.submitHandlers[len(t.submitHandlers)-1] = submitHandler{}
			t.submitHandlers = t.submitHandlers[:len(t.submitHandlers)-1]
			return
		}
	}
}

// OnMove registers a listener fired after SetPosition.
func (t *TextInput) OnMove(fn func(MoveContext)) Handle {
	t.nextHandlerID++
	id := t.nextHandlerID
	t.moveHandlers = append(t.moveHandlers, moveHandler{id: id, fn: fn})
	return Handle{id: id, remove: t.removeMoveHandler}
}

func (t *TextInput) removeMoveHandler(id uint32) {
	for i := range t.moveHandlers {
		if t.moveHandlers[i].id == id {
			copy(t.moveHandlers[i:], t.moveHandlers[i+1:])
			t.moveHandlers[len(t.moveHandlers)-1] = moveHandler{}
			t.moveHandlers = t.moveHandlers[:len(t.moveHandlers)-1]
			return
		}
	}
}

// Update advances the widget by one tick at the current TPS.
func (t *TextInput) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return t.UpdateDelta(time.Second / time.Duration(tps))
}

// UpdateDelta accumulates elapsed time. Once the accumulated time exceeds
// PollDelay the accumulator resets and one pass runs: keyboard processing
// when focused, then display derivation, then the embedded label's update.
func (t *TextInput) UpdateDelta(dt time.Duration) error {
	t.elapsed += dt
	if t.elapsed <= t.PollDelay {
		return nil
	}
	t.elapsed = 0

	if t.Focused {
		t.processKeys()
	}
	t.refreshDisplay()
	return t.label.Update()
}

// processKeys runs one input-processing pass over the pressed-key snapshot.
func (t *TextInput) processKeys() {
	t.pressedBuf = t.keyboard.AppendPressedKeys(t.pressedBuf[:0])
	shift := t.keyboard.ShiftPressed()

	for _, k := range t.pressedBuf {
		switch {
		case k == ebiten.KeyEnter:
			ctx := SubmitContext{Input: t, Text: t.text}
			for _, h := range t.submitHandlers {
				h.fn(ctx)
			}
			if t.ResetOnSubmit {
				t.text = ""
			}

		case k == ebiten.KeyBackspace:
			if t.text != "" {
				r := []rune(t.text)
				t.text = string(r[:len(r)-1])
			}

		case isShiftKey(k) || deniedKey(k):
			// No character.

		default:
			t.text += keyText(k, shift)
		}
	}
}

// refreshDisplay rederives the displayed substring: reset the scroll offset,
// mask if in password mode, then grow the offset one character at a time
// until the remaining suffix fits the width budget.
func (t *TextInput) refreshDisplay() {
	t.firstVisible = 0
	if t.text == "" {
		t.displayed = ""
		t.label.Text = ""
		return
	}

	shown := []rune(t.text)
	if t.password {
		for i := range shown {
			shown[i] = t.passwordRune
		}
	}

	for t.firstVisible < len(shown) && t.label.TextWidth(string(shown[t.firstVisible:])) > t.Width {
		t.firstVisible++
	}

	t.displayed = string(shown[t.firstVisible:])
	t.label.Text = t.displayed
	if debugEnabled {
		debugCheckInput(t)
	}
}

// Draw submits the background and then the label to the batch.
func (t *TextInput) Draw(b *Batch) {
	t.background.Draw(b)
	t.label.Draw(b)
}
