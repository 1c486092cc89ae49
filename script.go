package glib

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyByName maps Ebitengine key names ("A", "Digit1", "Space", "Enter") to
// their key values.
var keyByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// ScriptStep is one entry of an input script: the keys held during a poll
// pass, the shift state, and an optional repeat count (0 and 1 both mean a
// single frame).
type ScriptStep struct {
	Keys   []string `json:"keys"`
	Shift  bool     `json:"shift,omitempty"`
	Repeat int      `json:"repeat,omitempty"`
}

// InputScript is an ordered list of synthetic keyboard frames, loadable
// from JSON. Scripts drive deterministic input sequences through a
// TextInput in tests and demos.
type InputScript struct {
	Steps []ScriptStep `json:"steps"`
}

// LoadInputScript reads a script from a JSON file.
func LoadInputScript(path string) (*InputScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glib: failed to read input script: %w", err)
	}
	return ParseInputScript(data)
}

// ParseInputScript decodes a script from JSON bytes and validates its key
// names.
func ParseInputScript(data []byte) (*InputScript, error) {
	var s InputScript
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("glib: failed to parse input script: %w", err)
	}
	for i, step := range s.Steps {
		for _, name := range step.Keys {
			if _, ok := keyByName[name]; !ok {
				return nil, fmt.Errorf("glib: input script step %d: unknown key %q", i, name)
			}
		}
	}
	return &s, nil
}

// Frames expands the script into synthetic keyboard frames, honoring each
// step's repeat count.
func (s *InputScript) Frames() []Frame {
	var frames []Frame
	for _, step := range s.Steps {
		keys := make([]ebiten.Key, 0, len(step.Keys))
		for _, name := range step.Keys {
			keys = append(keys, keyByName[name])
		}
		n := step.Repeat
		if n < 1 {
			n = 1
		}
		for ; n > 0; n-- {
			frames = append(frames, Frame{Keys: keys, Shift: step.Shift})
		}
	}
	return frames
}

// Queue pushes the script's frames onto a synthetic keyboard.
func (s *InputScript) Queue(kb *SyntheticKeyboard) {
	for _, f := range s.Frames() {
		kb.Push(f)
	}
}

// Run plays the whole script through in: the widget is switched to a
// synthetic keyboard fed from the script, then advanced one poll pass per
// frame until the queue drains. The widget's previous keyboard and focus
// state are restored afterwards.
func (s *InputScript) Run(in *TextInput) error {
	kb := NewSyntheticKeyboard()
	s.Queue(kb)
	prev := in.keyboard
	in.SetKeyboard(kb)
	defer func() { in.keyboard = prev }()

	// Only a focused widget consumes frames.
	focused := in.Focused
	in.Focused = true
	defer func() { in.Focused = focused }()

	for kb.Pending() > 0 {
		if err := in.UpdateDelta(in.PollDelay + time.Nanosecond); err != nil {
			return err
		}
	}
	return nil
}
