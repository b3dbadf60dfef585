package editor

import (
	"errors"
	"fmt"
	"os"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/syntax"
)

// Capacity is the maximum number of open buffers.
const Capacity = 16

var (
	// ErrCapacity is returned by Open when Capacity buffers are already open.
	ErrCapacity = errors.New("too many open buffers")
	// ErrNoBuffer is returned for an index that names no buffer.
	ErrNoBuffer = errors.New("no such buffer")
)

// headSize bounds how much of a file is handed to language detection.
const headSize = 256

// Editor owns the open buffers and the index of the active one.
type Editor struct {
	Buffers []*buffer.Buffer
	Current int

	// TabStop is applied to every buffer opened after it is set.
	TabStop int
	// Syntaxes is the definition table used to select a buffer's syntax.
	// Nil means syntax.Builtin.
	Syntaxes []*syntax.Definition
}

// New creates an empty Editor.
func New() *Editor {
	return &Editor{TabStop: buffer.DefaultTabStop}
}

// Len returns the number of open buffers.
func (e *Editor) Len() int { return len(e.Buffers) }

// Active returns the focused buffer, or nil when none is open.
func (e *Editor) Active() *buffer.Buffer {
	if e.Current >= 0 && e.Current < len(e.Buffers) {
		return e.Buffers[e.Current]
	}
	return nil
}

func (e *Editor) defs() []*syntax.Definition {
	if e.Syntaxes != nil {
		return e.Syntaxes
	}
	return syntax.Builtin
}

// Add appends b and makes it the active buffer.
func (e *Editor) Add(b *buffer.Buffer) error {
	if len(e.Buffers) >= Capacity {
		return ErrCapacity
	}
	e.Buffers = append(e.Buffers, b)
	e.Current = len(e.Buffers) - 1
	return nil
}

// Open appends a buffer for path and makes it active. An empty path gives a
// new unnamed buffer with one empty row; a path that does not exist gives an
// empty buffer that will be created on save.
func (e *Editor) Open(path string) (*buffer.Buffer, error) {
	if len(e.Buffers) >= Capacity {
		return nil, ErrCapacity
	}
	b, err := e.load(path)
	if err != nil {
		return nil, err
	}
	if err := e.Add(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (e *Editor) load(path string) (*buffer.Buffer, error) {
	if path == "" {
		b := buffer.New()
		b.TabStop = e.TabStop
		return b, nil
	}
	lines, err := buffer.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		b := buffer.New()
		b.TabStop = e.TabStop
		b.Filename = path
		b.SetSyntax(syntax.SelectFrom(e.defs(), path, nil))
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	def := syntax.SelectFrom(e.defs(), path, head(lines))
	b := buffer.FromLines(lines, def, e.TabStop)
	b.Filename = path
	return b, nil
}

// Rename sets b's filename and selects its syntax again for the new name.
func (e *Editor) Rename(b *buffer.Buffer, path string) {
	b.Filename = path
	b.SetSyntax(syntax.SelectFrom(e.defs(), path, head(b.Lines())))
}

func head(lines [][]byte) []byte {
	var out []byte
	for _, l := range lines {
		out = append(out, l...)
		out = append(out, '\n')
		if len(out) >= headSize {
			break
		}
	}
	return out
}

// Next focuses the following buffer; it does not wrap.
func (e *Editor) Next() bool {
	if e.Current+1 >= len(e.Buffers) {
		return false
	}
	e.Current++
	return true
}

// Prev focuses the preceding buffer; it does not wrap.
func (e *Editor) Prev() bool {
	if e.Current <= 0 {
		return false
	}
	e.Current--
	return true
}

// Switch focuses buffer i.
func (e *Editor) Switch(i int) error {
	if i < 0 || i >= len(e.Buffers) {
		return ErrNoBuffer
	}
	e.Current = i
	return nil
}

// Close removes buffer i and compacts the collection. Focus moves to the
// buffer that now occupies slot i, or to the new last buffer. Closing the
// only buffer leaves a fresh unnamed one in its place.
func (e *Editor) Close(i int) error {
	if i < 0 || i >= len(e.Buffers) {
		return ErrNoBuffer
	}
	copy(e.Buffers[i:], e.Buffers[i+1:])
	e.Buffers[len(e.Buffers)-1] = nil
	e.Buffers = e.Buffers[:len(e.Buffers)-1]
	if len(e.Buffers) == 0 {
		b := buffer.New()
		b.TabStop = e.TabStop
		e.Buffers = append(e.Buffers, b)
		e.Current = 0
		return nil
	}
	switch {
	case e.Current > i:
		e.Current--
	case e.Current == i && e.Current >= len(e.Buffers):
		e.Current = len(e.Buffers) - 1
	}
	return nil
}

// AnyDirty reports whether some buffer has unsaved changes.
func (e *Editor) AnyDirty() bool {
	for _, b := range e.Buffers {
		if b.Dirty > 0 {
			return true
		}
	}
	return false
}
