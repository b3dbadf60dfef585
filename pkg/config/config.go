package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	Theme         string
	TabStop       int
	StatusTimeout time.Duration
	// SessionDB is the cursor memory database; empty disables it.
	SessionDB string
	LogFile   string
	Keymap    map[string]Keybinding

	// Dir is the directory the configuration was read from. Relative theme
	// paths are resolved against it.
	Dir string
}

// SessionOff disables the cursor memory when used as session_db.
const SessionOff = "off"

// Default returns a Config with default values and key mappings.
func Default() *Config {
	return &Config{
		Theme:         "acorn",
		TabStop:       4,
		StatusTimeout: 5 * time.Second,
		Keymap:        DefaultKeymap(),
	}
}

// DefaultKeymap provides the insert-mode shortcut bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit": mustParse("Ctrl+Q"),
		"save": mustParse("Ctrl+S"),
		"find": mustParse("Ctrl+F"),
	}
}

// Dir returns ~/.acorn, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".acorn")
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.Dir = filepath.Dir(path)
	cfg.SessionDB = filepath.Join(cfg.Dir, "session.db")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	inKeymap := false
	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nested := raw != strings.TrimLeft(raw, " \t")
		if !nested {
			inKeymap = false
		}
		if line == "keymap:" {
			inKeymap = true
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config line %d: invalid line: %s", n+1, line)
		}
		key := strings.TrimSpace(parts[0])
		value := unquote(strings.TrimSpace(parts[1]))
		if inKeymap && nested {
			kb, err := ParseKeybinding(value)
			if err != nil {
				return nil, fmt.Errorf("config line %d: %w", n+1, err)
			}
			cfg.Keymap[key] = kb
			continue
		}
		if err := cfg.set(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", n+1, err)
		}
	}
	return cfg, nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "theme":
		c.Theme = value
	case "tab_stop":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.New("invalid tab_stop: " + value)
		}
		c.TabStop = n
	case "status_timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return errors.New("invalid status_timeout: " + value)
		}
		c.StatusTimeout = time.Duration(n) * time.Second
	case "session_db":
		if value == SessionOff {
			c.SessionDB = ""
		} else {
			c.SessionDB = c.resolve(value)
		}
	case "log_file":
		c.LogFile = c.resolve(value)
	}
	return nil
}

func (c *Config) resolve(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// LoadDefault attempts to read ~/.acorn/config.yaml.
func LoadDefault() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return Load(filepath.Join(dir, "config.yaml"))
}

// ResolveTheme finds a theme by name: a built-in preset, a chroma style, or
// a base16/alacritty YAML file path.
func (c *Config) ResolveTheme(name string) (Theme, error) {
	if name == "" {
		name = c.Theme
	}
	if t, ok := BuiltinThemes[name]; ok {
		return t, nil
	}
	if t, ok := ChromaTheme(name); ok {
		return t, nil
	}
	t, err := ImportTheme(c.resolve(name))
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, nil
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// Matches reports whether the binding matches ev. Control letters arrive
// either as KeyRune with ModCtrl or as the tcell control key code.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if ev == nil {
		return false
	}
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		return ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a')
	}
	return false
}
