package glib

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testThemeYAML = `
input:
  poll_delay_ms: 50
  password_char: "#"
  reset_on_submit: true
colors:
  text: {r: 1, g: 1, b: 0.9, a: 1}
  hover: {r: 1, g: 0, b: 0, a: 1}
  rest: {r: 0, g: 0, b: 1, a: 1}
  background: {r: 0.2, g: 0.2, b: 0.2, a: 1}
`

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	if th.PollDelay() != DefaultPollDelay {
		t.Errorf("PollDelay = %v, want %v", th.PollDelay(), DefaultPollDelay)
	}
	if th.PasswordRune() != '*' {
		t.Errorf("PasswordRune = %q, want '*'", th.PasswordRune())
	}
	if th.Input.ResetOnSubmit {
		t.Error("ResetOnSubmit defaults to true, want false")
	}
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme([]byte(testThemeYAML))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.PollDelay() != 50*time.Millisecond {
		t.Errorf("PollDelay = %v, want 50ms", th.PollDelay())
	}
	if th.PasswordRune() != '#' {
		t.Errorf("PasswordRune = %q, want '#'", th.PasswordRune())
	}
	if th.Colors.Text == nil || th.Colors.Text.Color() != (Color{1, 1, 0.9, 1}) {
		t.Errorf("text color = %+v, want {1 1 0.9 1}", th.Colors.Text)
	}
}

func TestParseTheme_Defaulting(t *testing.T) {
	th, err := ParseTheme([]byte("input: {}"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.PollDelay() != DefaultPollDelay {
		t.Errorf("PollDelay = %v, want default", th.PollDelay())
	}
	if th.PasswordRune() != '*' {
		t.Errorf("PasswordRune = %q, want '*'", th.PasswordRune())
	}
	if th.Colors.Hover != nil {
		t.Error("absent palette entries should stay nil")
	}
}

func TestParseTheme_InvalidYAML(t *testing.T) {
	if _, err := ParseTheme([]byte("input: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(testThemeYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.PollDelay() != 50*time.Millisecond {
		t.Errorf("PollDelay = %v, want 50ms", th.PollDelay())
	}
}

func TestLoadTheme_MissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTheme_ApplyInput(t *testing.T) {
	th, err := ParseTheme([]byte(testThemeYAML))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	in, _ := newTestInput(t, 100)
	th.ApplyInput(in)

	if in.PollDelay != 50*time.Millisecond {
		t.Errorf("PollDelay = %v, want 50ms", in.PollDelay)
	}
	if !in.ResetOnSubmit {
		t.Error("ResetOnSubmit not applied")
	}
	if in.Label().Color != (Color{1, 1, 0.9, 1}) {
		t.Errorf("label color = %v, want themed text color", in.Label().Color)
	}
	if in.Background().Color != (Color{0.2, 0.2, 0.2, 1}) {
		t.Errorf("background color = %v, want themed background", in.Background().Color)
	}

	in.SetPassword(true)
	in.SetText("ab")
	if in.DisplayedText() != "##" {
		t.Errorf("displayed = %q, want themed mask %q", in.DisplayedText(), "##")
	}
}

func TestTheme_ApplyLabel(t *testing.T) {
	th, err := ParseTheme([]byte(testThemeYAML))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	l := NewLabel(nil, "x")
	l.ManuallySelectable = true
	l.SetHoverable(true)
	th.ApplyLabel(l)

	l.Selected = true
	if err := l.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if l.Color != (Color{1, 0, 0, 1}) {
		t.Errorf("hover color = %v, want themed red", l.Color)
	}
}
