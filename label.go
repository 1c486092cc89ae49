package glib

import "errors"

// Errors reported by Label.Update. Both are configuration failures; all other
// anomalous input throughout the package degrades to a safe no-op.
var (
	// ErrHoverColorUnset is returned when a label is hoverable but one of its
	// hover colors has not been configured.
	ErrHoverColorUnset = errors.New("glib: hoverable label requires both hover and rest colors")

	// ErrHoverSelectionUnsupported is returned when hover coloring is driven
	// by cursor position. The target platform has no pointer input; mark the
	// label ManuallySelectable and toggle Selected instead.
	ErrHoverSelectionUnsupported = errors.New("glib: cursor-based hover selection is not supported")
)

// Handle identifies a registered listener and allows removing it.
type Handle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the listener so it no longer fires. Safe to call on a
// zero Handle.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove(h.id)
	}
}

type labelHandler struct {
	id uint32
	fn func(*Label)
}

// Label draws a text string at a position with color, scale, and rotation.
// An optional hover mode swaps between two colors based on the Selected
// flag.
type Label struct {
	Attachment

	Font Font
	Text string

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Color    Color

	// Selected drives hover coloring when the label is hoverable and
	// manually selectable.
	Selected bool

	// ManuallySelectable means the owner toggles Selected itself. This is
	// the only supported hover-selection mode.
	ManuallySelectable bool

	hoverable  bool
	hoverColor *Color
	restColor  *Color

	updateHandlers []labelHandler
	nextHandlerID  uint32
}

// NewLabel creates a label rendering s with f at the origin.
func NewLabel(f Font, s string) *Label {
	return &Label{
		Font:   f,
		Text:   s,
		ScaleX: 1,
		ScaleY: 1,
		Color:  ColorWhite,
	}
}

// SetHoverable enables or disables hover coloring. Enabling defaults the
// hover color to white and the rest color to black when unset.
func (l *Label) SetHoverable(enabled bool) {
	l.hoverable = enabled
	if !enabled {
		return
	}
	if l.hoverColor == nil {
		hover := ColorWhite
		l.hoverColor = &hover
	}
	if l.restColor == nil {
		rest := ColorBlack
		l.restColor = &rest
	}
}

// Hoverable reports whether hover coloring is enabled.
func (l *Label) Hoverable() bool {
	return l.hoverable
}

// SetHoverColors sets the colors used while selected (hover) and while not
// (rest).
func (l *Label) SetHoverColors(hover, rest Color) {
	l.hoverColor = &hover
	l.restColor = &rest
}

// ClearHoverColors unsets both hover colors. A subsequent Update on a
// hoverable label fails with ErrHoverColorUnset.
func (l *Label) ClearHoverColors() {
	l.hoverColor = nil
	l.restColor = nil
}

// OnUpdate registers a listener fired at the end of every successful Update.
func (l *Label) OnUpdate(fn func(*Label)) Handle {
	l.nextHandlerID++
	id := l.nextHandlerID
	l.updateHandlers = append(l.updateHandlers, labelHandler{id: id, fn: fn})
	return Handle{id: id, remove: l.removeUpdateHandler}
}

func (l *Label) removeUpdateHandler(id uint32) {
	for i := range l.updateHandlers {
		if l.updateHandlers[i].id == id {
			copy(l.updateHandlers[i:], l.updateHandlers[i+1:])
			l.updateHandlers[len(l.updateHandlers)-1] = labelHandler{}
			l.updateHandlers = l.updateHandlers[:len(l.updateHandlers)-1]
			return
		}
	}
}

// Update applies hover coloring and fires the update listeners.
//
// Returns ErrHoverColorUnset when hoverable without both colors configured,
// and ErrHoverSelectionUnsupported when hoverable without manual selection.
// Listeners do not fire on error.
func (l *Label) Update() error {
	if l.hoverable {
		if l.hoverColor == nil || l.restColor == nil {
			return ErrHoverColorUnset
		}
		if !l.ManuallySelectable {
			return ErrHoverSelectionUnsupported
		}
		if l.Selected {
			l.Color = *l.hoverColor
		} else {
			l.Color = *l.restColor
		}
	}
	for _, h := range l.updateHandlers {
		h.fn(l)
	}
	return nil
}

// Draw submits the text to the batch. Labels without a font or with empty
// text submit nothing.
func (l *Label) Draw(b *Batch) {
	if l.Font == nil || l.Text == "" {
		return
	}
	b.DrawString(l.Font, l.Text, composeTransform(l.X, l.Y, l.ScaleX, l.ScaleY, l.Rotation), l.Color)
}

// TextWidth returns the scaled pixel width of s rendered with the label's
// font, or 0 without a font.
func (l *Label) TextWidth(s string) float64 {
	if l.Font == nil {
		return 0
	}
	w, _ := l.Font.MeasureString(s)
	return w * l.ScaleX
}
