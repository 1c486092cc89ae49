package glib

import (
	"fmt"
	"os"
)

// debugEnabled gates the extra sanity checks and stderr warnings.
var debugEnabled bool

// SetDebugMode toggles debug checks for the whole package. In release mode
// all checks are skipped entirely.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[glib] warning: "+format+"\n", args...)
}

// debugCheckInput warns on stderr when a text input's display derivation
// cannot satisfy the width budget, which happens when a single glyph is
// wider than the widget.
func debugCheckInput(t *TextInput) {
	if t.displayed == "" {
		return
	}
	if w := t.label.TextWidth(t.displayed); w > t.Width {
		debugWarnf("text input display %.1fpx exceeds width budget %.1fpx (single glyph too wide?)",
			w, t.Width)
	}
}

// debugCheckCollection warns on stderr if a collection grows past the
// threshold, a common sign of members being re-added every frame.
const debugMaxMembers = 10000

func debugCheckCollection(c *Collection) {
	if len(c.members) > debugMaxMembers {
		debugWarnf("collection has %d members (threshold %d)", len(c.members), debugMaxMembers)
	}
}
