package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/syntax"
)

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !kb.Matches(ev) {
		t.Fatalf("expected match for Ctrl+X")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for the control key code")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatalf("expected plain x not to match")
	}
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Alt+X", "Ctrl+1", "X"} {
		if _, err := ParseKeybinding(s); err == nil {
			t.Fatalf("expected error for invalid keybinding %q", s)
		}
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "acorn" || cfg.TabStop != 4 || cfg.StatusTimeout != 5*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionDB != filepath.Join(dir, "session.db") {
		t.Fatalf("expected session db next to the config, got %q", cfg.SessionDB)
	}
	if !cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)) {
		t.Fatalf("expected default save on Ctrl+S")
	}
}

func TestLoadConfigValuesAndRemap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`# acorn
theme: "terminal"
tab_stop: 8
status_timeout: 2
session_db: off
log_file: acorn.log
keymap:
  quit: Ctrl+X
  find: Ctrl+G
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "terminal" || cfg.TabStop != 8 || cfg.StatusTimeout != 2*time.Second {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.SessionDB != "" {
		t.Fatalf("expected session db disabled, got %q", cfg.SessionDB)
	}
	if cfg.LogFile != filepath.Join(dir, "acorn.log") {
		t.Fatalf("expected log file relative to config dir, got %q", cfg.LogFile)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !cfg.Keymap["quit"].Matches(ev) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	if !cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)) {
		t.Fatalf("expected save to keep its default")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	for i, body := range []string{"tab_stop: zero\n", "keymap:\n  quit: Meta+Q\n", "nonsense\n"} {
		path := filepath.Join(dir, "c.yaml")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("case %d: expected error for %q", i, body)
		}
	}
}

func TestResolveTheme(t *testing.T) {
	cfg := Default()
	th, err := cfg.ResolveTheme("terminal")
	if err != nil || th.Name != "terminal" {
		t.Fatalf("expected terminal theme, got %v %v", th.Name, err)
	}
	th, err = cfg.ResolveTheme("monokai")
	if err != nil || th.Name != "monokai" {
		t.Fatalf("expected chroma monokai theme, got %v %v", th.Name, err)
	}
	if th.ClassColor(syntax.Keyword1) == th.Foreground {
		t.Fatalf("expected monokai keywords to have their own color")
	}
	if _, err := cfg.ResolveTheme("no-such-theme"); err == nil {
		t.Fatalf("expected an error for an unknown theme")
	}
}

func TestClassColorFallsBackToForeground(t *testing.T) {
	th := Theme{Foreground: tcell.ColorWhite}
	if th.ClassColor(syntax.String) != tcell.ColorWhite {
		t.Fatalf("expected foreground for a missing class")
	}
}
