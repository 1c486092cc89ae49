package glib

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ThemeColor is a Color with YAML tags for theme files. Components are in
// the 0..1 range.
type ThemeColor struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// Color converts to the package color type.
func (c ThemeColor) Color() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// InputTheme configures text-input widgets.
type InputTheme struct {
	PollDelayMS   int    `yaml:"poll_delay_ms"`
	PasswordChar  string `yaml:"password_char"`
	ResetOnSubmit bool   `yaml:"reset_on_submit"`
}

// ColorTheme holds the shared widget palette. Nil entries keep the widget
// defaults.
type ColorTheme struct {
	Text       *ThemeColor `yaml:"text,omitempty"`
	Hover      *ThemeColor `yaml:"hover,omitempty"`
	Rest       *ThemeColor `yaml:"rest,omitempty"`
	Background *ThemeColor `yaml:"background,omitempty"`
}

// Theme is a YAML-loadable widget configuration.
type Theme struct {
	Input  InputTheme `yaml:"input"`
	Colors ColorTheme `yaml:"colors"`
}

// DefaultTheme returns the built-in defaults: the stock poll delay, '*'
// masking, and no palette overrides.
func DefaultTheme() *Theme {
	return &Theme{
		Input: InputTheme{
			PollDelayMS:  int(DefaultPollDelay / time.Millisecond),
			PasswordChar: string(DefaultPasswordRune),
		},
	}
}

// LoadTheme reads a theme from a YAML file. Zero-valued fields fall back to
// the defaults.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glib: failed to read theme file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes a theme from YAML bytes and applies defaults.
func ParseTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("glib: failed to parse theme file: %w", err)
	}

	if t.Input.PollDelayMS == 0 {
		t.Input.PollDelayMS = int(DefaultPollDelay / time.Millisecond)
	}
	if t.Input.PasswordChar == "" {
		t.Input.PasswordChar = string(DefaultPasswordRune)
	}

	return &t, nil
}

// PollDelay returns the configured poll cadence as a duration.
func (t *Theme) PollDelay() time.Duration {
	return time.Duration(t.Input.PollDelayMS) * time.Millisecond
}

// PasswordRune returns the first rune of the configured masking character,
// or '*' when unset.
func (t *Theme) PasswordRune() rune {
	for _, r := range t.Input.PasswordChar {
		return r
	}
	return DefaultPasswordRune
}

// ApplyInput configures a text-input widget from the theme.
func (t *Theme) ApplyInput(in *TextInput) {
	in.PollDelay = t.PollDelay()
	in.SetPasswordRune(t.PasswordRune())
	in.ResetOnSubmit = t.Input.ResetOnSubmit
	if t.Colors.Text != nil {
		in.Label().Color = t.Colors.Text.Color()
	}
	if t.Colors.Background != nil {
		in.Background().Color = t.Colors.Background.Color()
	}
}

// ApplyLabel configures a label from the theme. Hover colors are set only
// when both hover and rest entries are present.
func (t *Theme) ApplyLabel(l *Label) {
	if t.Colors.Text != nil {
		l.Color = t.Colors.Text.Color()
	}
	if t.Colors.Hover != nil && t.Colors.Rest != nil {
		l.SetHoverColors(t.Colors.Hover.Color(), t.Colors.Rest.Color())
	}
}
