package app

import (
	"fmt"
	"time"

	"example.com/acorn/pkg/buffer"
)

// Mode represents the current editor mode.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeVisualBlock
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeVisualBlock:
		return "VISUAL BLOCK"
	}
	return "COMMAND"
}

// Visual reports whether m is one of the selection modes.
func (m Mode) Visual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

// selectionKind maps a visual mode to its selection shape.
func (m Mode) selectionKind() buffer.SelectionKind {
	switch m {
	case ModeVisualLine:
		return buffer.SelectLine
	case ModeVisualBlock:
		return buffer.SelectBlock
	}
	return buffer.SelectChar
}

// Pending is the first half of a two-key command.
type Pending int

const (
	PendingNone Pending = iota
	PendingG
	PendingD
	PendingY
	PendingReplace
)

// State is the editor-wide interaction state shared by the input engine and
// the compositor.
type State struct {
	Mode    Mode
	Pending Pending

	StatusMsg     string
	StatusTime    time.Time
	StatusTimeout time.Duration
	// Now is the clock; nil means time.Now.
	Now func() time.Time

	// Terminal size in cells.
	ScreenRows int
	ScreenCols int

	// Prompt is the open line prompt, if any.
	Prompt *Prompt
}

// NewState returns the initial state: Command mode, no status message.
func NewState(timeout time.Duration) *State {
	return &State{StatusTimeout: timeout}
}

func (s *State) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetStatus sets the transient status message.
func (s *State) SetStatus(format string, args ...any) {
	s.StatusMsg = fmt.Sprintf(format, args...)
	s.StatusTime = s.now()
}

// Status returns the status message while it has not expired.
func (s *State) Status() string {
	if s.StatusMsg == "" {
		return ""
	}
	if s.StatusTimeout > 0 && s.now().Sub(s.StatusTime) >= s.StatusTimeout {
		return ""
	}
	return s.StatusMsg
}

// Resize records the terminal size.
func (s *State) Resize(rows, cols int) {
	s.ScreenRows = max(rows, 0)
	s.ScreenCols = max(cols, 0)
}

// TextRows is the number of screen rows left for text after the tab bar and
// the status bar.
func (s *State) TextRows() int {
	return max(s.ScreenRows-2, 0)
}
