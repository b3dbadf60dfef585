package search

import (
	"bytes"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/syntax"
)

// Direction is the order in which rows are scanned.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Finder implements incremental search over the rows of a buffer. It
// remembers the row of the last match so repeated calls step through the
// buffer, and it keeps the highlight classes it overwrote with Match so they
// can be put back.
type Finder struct {
	lastMatch int
	dir       Direction

	savedRow int
	savedHL  []syntax.Class
}

// New returns a Finder positioned before the first row.
func New() *Finder {
	f := &Finder{}
	f.Reset()
	return f
}

// Reset forgets the last match and scans forward again.
func (f *Finder) Reset() {
	f.lastMatch = -1
	f.dir = Forward
}

// SetDirection selects the scan direction for the next Find.
func (f *Finder) SetDirection(d Direction) {
	if d != Backward {
		d = Forward
	}
	f.dir = d
}

// Direction returns the current scan direction.
func (f *Finder) Direction() Direction { return f.dir }

// From makes the next Find start after row y, as if y had matched.
func (f *Finder) From(y int) {
	f.lastMatch = max(y, -1)
}

// LastMatch returns the row of the last match, or -1.
func (f *Finder) LastMatch() int { return f.lastMatch }

// Restore puts back the highlight classes overwritten by the previous match.
func (f *Finder) Restore(b *buffer.Buffer) {
	if f.savedHL == nil {
		return
	}
	if r := b.Row(f.savedRow); r != nil && len(r.HL) == len(f.savedHL) {
		copy(r.HL, f.savedHL)
	}
	f.savedHL = nil
}

// Find restores the previous match highlight, then scans at most every row
// once, starting after the last match in the current direction and wrapping
// around. On a match it moves the cursor there, scrolls the match row to the
// top of the window and marks the span with syntax.Match. An empty query
// never matches.
func (f *Finder) Find(b *buffer.Buffer, query []byte) bool {
	f.Restore(b)
	if len(query) == 0 || b.NumRows() == 0 {
		return false
	}
	if f.lastMatch == -1 {
		f.dir = Forward
	}
	n := b.NumRows()
	cur := f.lastMatch
	for i := 0; i < n; i++ {
		cur += int(f.dir)
		if cur == -1 {
			cur = n - 1
		} else if cur >= n {
			cur = 0
		}
		r := b.Rows[cur]
		at := bytes.Index(r.Render, query)
		if at < 0 {
			continue
		}
		f.lastMatch = cur
		b.Cursor = buffer.Point{X: b.CharCol(cur, at), Y: cur}
		b.RowOff = n

		f.savedRow = cur
		f.savedHL = append(f.savedHL[:0:0], r.HL...)
		for j := at; j < at+len(query) && j < len(r.HL); j++ {
			r.HL[j] = syntax.Match
		}
		return true
	}
	return false
}
