package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/internal/session"
	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/config"
	"example.com/acorn/pkg/editor"
	"example.com/acorn/pkg/logs"
	"example.com/acorn/pkg/search"
)

// quitTimes is how many extra Ctrl-Q presses a dirty editor asks for.
const quitTimes = 3

const helpMessage = "HELP: :w = save | :q = quit | / = find"

// KeySource yields one logical key per call. A nil key with a nil error
// means the read timed out.
type KeySource interface {
	ReadKey() (*tcell.EventKey, error)
}

// Display is the terminal the compositor draws on.
type Display interface {
	Size() (rows, cols int, err error)
	Write(p []byte) (int, error)
}

// Runner owns the editor state and the event loop.
type Runner struct {
	State   *State
	Editor  *editor.Editor
	Config  *config.Config
	Theme   config.Theme
	Keymap  map[string]config.Keybinding
	Logger  *logs.Logger
	Session *session.Store

	Register buffer.Register
	Finder   *search.Finder

	Keys    KeySource
	Display Display

	// lastQuery is the last accepted search, repeated by n and N.
	lastQuery []byte
	quitLeft  int
}

// New creates a Runner with default configuration and no open buffers.
func New() *Runner {
	cfg := config.Default()
	return &Runner{
		State:    NewState(cfg.StatusTimeout),
		Editor:   editor.New(),
		Config:   cfg,
		Theme:    config.DefaultTheme(),
		Keymap:   cfg.Keymap,
		Finder:   search.New(),
		quitLeft: quitTimes,
	}
}

// NewWithConfig creates a Runner using cfg. An unknown theme falls back to
// the default one and is reported on the status line.
func NewWithConfig(cfg *config.Config) *Runner {
	r := New()
	r.Config = cfg
	r.Keymap = cfg.Keymap
	r.State.StatusTimeout = cfg.StatusTimeout
	r.Editor.TabStop = cfg.TabStop
	if t, err := cfg.ResolveTheme(cfg.Theme); err == nil {
		r.Theme = t
	} else {
		r.State.SetStatus("%v", err)
	}
	return r
}

// buf returns the active buffer, opening an empty one when necessary.
func (r *Runner) buf() *buffer.Buffer {
	if b := r.Editor.Active(); b != nil {
		return b
	}
	b, _ := r.Editor.Open("")
	return b
}

// LoadFile opens path in a new buffer and makes it active. A remembered
// cursor position is restored.
func (r *Runner) LoadFile(path string) error {
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	b, err := r.Editor.Open(path)
	if err != nil {
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	r.restoreCursor(b)
	r.Logger.Event("open.success", map[string]any{"file": path, "rows": b.NumRows()})
	return nil
}

// openBuffer is LoadFile for the interactive :e command; failures go to
// the status line.
func (r *Runner) openBuffer(path string) {
	if err := r.LoadFile(path); err != nil {
		if errors.Is(err, editor.ErrCapacity) {
			r.State.SetStatus("Can't open %s: %d buffers already open", path, editor.Capacity)
			return
		}
		r.State.SetStatus("Can't open! %v", err)
		return
	}
	r.State.Mode = ModeCommand
	r.State.Pending = PendingNone
}

func (r *Runner) restoreCursor(b *buffer.Buffer) {
	pos, ok, err := r.Session.Lookup(b.Filename)
	if err != nil {
		r.Logger.Event("session.error", map[string]any{"file": b.Filename, "error": err.Error()})
		return
	}
	if !ok {
		return
	}
	if pos.Row >= b.NumRows() {
		// The file shrank since the position was stored.
		if err := r.Session.Forget(b.Filename); err != nil {
			r.Logger.Event("session.error", map[string]any{"file": b.Filename, "error": err.Error()})
		}
		return
	}
	b.Cursor = buffer.Point{X: pos.Col, Y: pos.Row}
	b.ClampCursor(false)
}

func (r *Runner) rememberCursor(b *buffer.Buffer) {
	if b == nil || b.Filename == "" {
		return
	}
	if err := r.Session.Save(b.Filename, b.Cursor.Y, b.Cursor.X); err != nil {
		r.Logger.Event("session.error", map[string]any{"file": b.Filename, "error": err.Error()})
	}
}

// Save writes the active buffer to its file.
func (r *Runner) Save() error {
	b := r.buf()
	n, err := b.Save()
	if err != nil {
		r.Logger.Event("save.error", map[string]any{"file": b.Filename, "error": err.Error()})
		return err
	}
	r.rememberCursor(b)
	r.Logger.Event("save.success", map[string]any{"file": b.Filename, "bytes": n})
	r.State.SetStatus("%d bytes written to disk", n)
	return nil
}

// Run draws the screen and handles keys until a quit command. Read and
// write errors from the terminal end the loop.
func (r *Runner) Run() error {
	if r.Keys == nil || r.Display == nil {
		return errors.New("runner has no terminal")
	}
	r.buf()
	r.Logger.Event("run.start", map[string]any{"file": r.buf().Filename, "buffers": r.Editor.Len()})
	defer r.Logger.Event("run.end", map[string]any{"file": r.buf().Filename})
	if r.State.Status() == "" {
		r.State.SetStatus(helpMessage)
	}

	for {
		if err := r.Refresh(); err != nil {
			return err
		}
		ev, err := r.Keys.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if ev == nil {
			continue
		}
		r.Logger.Event("key", map[string]any{
			"key":       int(ev.Key()),
			"rune":      string(ev.Rune()),
			"modifiers": int(ev.Modifiers()),
			"mode":      r.State.Mode.String(),
		})
		if r.handleKeyEvent(ev) {
			for _, b := range r.Editor.Buffers {
				r.rememberCursor(b)
			}
			r.Logger.Event("action", map[string]any{"name": "quit"})
			return nil
		}
	}
}

// Refresh queries the terminal size and draws one frame.
func (r *Runner) Refresh() error {
	rows, cols, err := r.Display.Size()
	if err != nil {
		return err
	}
	r.State.Resize(rows, cols)
	if _, err := r.Display.Write(r.Frame()); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	return nil
}

func (r *Runner) logAction(name string) {
	if !r.Logger.Enabled() {
		return
	}
	b := r.buf()
	r.Logger.Event("action", map[string]any{
		"name":   name,
		"cursor": []int{b.Cursor.X, b.Cursor.Y},
		"rows":   b.NumRows(),
		"mode":   r.State.Mode.String(),
	})
}
