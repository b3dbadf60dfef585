package buffer

import (
	"example.com/acorn/pkg/syntax"
)

// Point is a position in a buffer: X is a byte offset into Rows[Y].Chars.
type Point struct {
	X, Y int
}

// Buffer is one open document: its rows, cursor, viewport and file identity.
//
// Invariants kept by every mutating method: each row's Render and HL are
// rebuilt from Chars, the open-comment flag chain is consistent from top to
// bottom, and Dirty grows on every change.
type Buffer struct {
	Rows []*Row

	Cursor Point
	// Anchor is the fixed end of a visual selection.
	Anchor Point
	// RenderX is the render column of the cursor, refreshed by Scroll.
	RenderX int
	RowOff  int
	ColOff  int

	Filename string
	// Dirty counts changes since the last load or save.
	Dirty   int
	Syntax  *syntax.Definition
	TabStop int
}

// New returns a buffer holding a single empty row.
func New() *Buffer {
	b := &Buffer{TabStop: DefaultTabStop}
	b.InsertRow(0, nil)
	b.Dirty = 0
	return b
}

// FromLines returns a clean buffer whose rows are copies of lines. An empty
// slice yields a buffer with zero rows.
func FromLines(lines [][]byte, def *syntax.Definition, tabStop int) *Buffer {
	b := &Buffer{Syntax: def, TabStop: tabStop}
	b.Rows = make([]*Row, 0, len(lines))
	for _, l := range lines {
		b.InsertRow(len(b.Rows), l)
	}
	b.Dirty = 0
	return b
}

func (b *Buffer) tabStop() int {
	if b.TabStop <= 0 {
		return DefaultTabStop
	}
	return b.TabStop
}

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int { return len(b.Rows) }

// Row returns row y or nil when y is out of range.
func (b *Buffer) Row(y int) *Row {
	if y < 0 || y >= len(b.Rows) {
		return nil
	}
	return b.Rows[y]
}

// Lines returns copies of every row's content.
func (b *Buffer) Lines() [][]byte {
	out := make([][]byte, len(b.Rows))
	for i, r := range b.Rows {
		out[i] = cloneBytes(r.Chars)
	}
	return out
}

// Pristine reports whether the buffer is an unnamed, unmodified buffer with
// no text in it.
func (b *Buffer) Pristine() bool {
	if b.Filename != "" || b.Dirty != 0 {
		return false
	}
	return len(b.Rows) == 0 || (len(b.Rows) == 1 && len(b.Rows[0].Chars) == 0)
}

// SetSyntax switches the definition and re-highlights every row.
func (b *Buffer) SetSyntax(def *syntax.Definition) {
	b.Syntax = def
	b.Rehighlight()
}

// Rehighlight rebuilds render and highlight state of every row.
func (b *Buffer) Rehighlight() {
	in := false
	for _, r := range b.Rows {
		r.updateRender(b.tabStop())
		r.HL, r.OpenComment = syntax.Highlight(b.Syntax, r.Render, in, r.HL)
		in = r.OpenComment
	}
}

// updateRow rebuilds row at after a change to its Chars.
func (b *Buffer) updateRow(at int) {
	b.Rows[at].updateRender(b.tabStop())
	b.highlightFrom(at, 1)
}

// highlightFrom re-highlights the force rows starting at at unconditionally,
// then keeps going down while the open-comment flag of the last processed
// row changed.
func (b *Buffer) highlightFrom(at, force int) {
	for y := at; y < len(b.Rows); y++ {
		r := b.Rows[y]
		in := y > 0 && b.Rows[y-1].OpenComment
		prev := r.OpenComment
		r.HL, r.OpenComment = syntax.Highlight(b.Syntax, r.Render, in, r.HL)
		if y >= at+force-1 && r.OpenComment == prev {
			return
		}
	}
}

// InsertRow inserts a row holding a copy of s before index at. It reports
// false when at is outside [0, NumRows].
func (b *Buffer) InsertRow(at int, s []byte) bool {
	if at < 0 || at > len(b.Rows) {
		return false
	}
	r := &Row{Chars: cloneBytes(s)}
	b.Rows = append(b.Rows, nil)
	copy(b.Rows[at+1:], b.Rows[at:])
	b.Rows[at] = r
	r.updateRender(b.tabStop())
	b.highlightFrom(at, 2)
	b.Dirty++
	return true
}

// DeleteRow removes row at. It reports false when at is out of range.
func (b *Buffer) DeleteRow(at int) bool {
	if at < 0 || at >= len(b.Rows) {
		return false
	}
	copy(b.Rows[at:], b.Rows[at+1:])
	b.Rows[len(b.Rows)-1] = nil
	b.Rows = b.Rows[:len(b.Rows)-1]
	if at < len(b.Rows) {
		b.highlightFrom(at, 1)
	}
	b.Dirty++
	return true
}

// InsertCharAt inserts c at offset x of row y. An x outside the row appends.
func (b *Buffer) InsertCharAt(y, x int, c byte) bool {
	r := b.Row(y)
	if r == nil {
		return false
	}
	r.insertByte(x, c)
	b.updateRow(y)
	b.Dirty++
	return true
}

// DeleteCharAt removes the byte at offset x of row y.
func (b *Buffer) DeleteCharAt(y, x int) bool {
	r := b.Row(y)
	if r == nil || !r.deleteByte(x) {
		return false
	}
	b.updateRow(y)
	b.Dirty++
	return true
}

// AppendToRow appends s to the end of row y.
func (b *Buffer) AppendToRow(y int, s []byte) bool {
	r := b.Row(y)
	if r == nil {
		return false
	}
	r.Chars = append(r.Chars, s...)
	b.updateRow(y)
	b.Dirty++
	return true
}

// SetRow replaces the content of row y with a copy of s.
func (b *Buffer) SetRow(y int, s []byte) bool {
	r := b.Row(y)
	if r == nil {
		return false
	}
	r.Chars = append(r.Chars[:0], s...)
	b.updateRow(y)
	b.Dirty++
	return true
}

// InsertChar inserts c at the cursor and advances it. A cursor on the
// virtual row after the last one first creates that row.
func (b *Buffer) InsertChar(c byte) {
	if b.Cursor.Y >= len(b.Rows) {
		b.Cursor.Y = len(b.Rows)
		b.InsertRow(len(b.Rows), nil)
	}
	b.InsertCharAt(b.Cursor.Y, b.Cursor.X, c)
	b.Cursor.X++
}

// InsertNewline splits the current row at the cursor and moves the cursor
// to the start of the new row.
func (b *Buffer) InsertNewline() {
	if b.Cursor.Y >= len(b.Rows) {
		b.Cursor.Y = len(b.Rows)
		b.InsertRow(len(b.Rows), nil)
		b.Cursor.X = 0
		return
	}
	if b.Cursor.X == 0 {
		b.InsertRow(b.Cursor.Y, nil)
	} else {
		r := b.Rows[b.Cursor.Y]
		x := min(b.Cursor.X, len(r.Chars))
		b.InsertRow(b.Cursor.Y+1, r.Chars[x:])
		r = b.Rows[b.Cursor.Y]
		r.Chars = r.Chars[:x]
		b.updateRow(b.Cursor.Y)
	}
	b.Cursor.Y++
	b.Cursor.X = 0
}

// DeleteChar removes the byte before the cursor. At the start of a row the
// row is joined onto the previous one.
func (b *Buffer) DeleteChar() {
	if b.Cursor.Y >= len(b.Rows) {
		return
	}
	if b.Cursor.X == 0 && b.Cursor.Y == 0 {
		return
	}
	if b.Cursor.X > 0 {
		if b.DeleteCharAt(b.Cursor.Y, b.Cursor.X-1) {
			b.Cursor.X--
		}
		return
	}
	prev := b.Rows[b.Cursor.Y-1]
	b.Cursor.X = len(prev.Chars)
	b.AppendToRow(b.Cursor.Y-1, b.Rows[b.Cursor.Y].Chars)
	b.DeleteRow(b.Cursor.Y)
	b.Cursor.Y--
}

// DeleteForward removes the byte under the cursor, joining the next row when
// the cursor is at the end of its row.
func (b *Buffer) DeleteForward() {
	r := b.Row(b.Cursor.Y)
	if r == nil {
		return
	}
	if b.Cursor.X < len(r.Chars) {
		b.DeleteCharAt(b.Cursor.Y, b.Cursor.X)
		return
	}
	if b.Cursor.Y+1 < len(b.Rows) {
		b.AppendToRow(b.Cursor.Y, b.Rows[b.Cursor.Y+1].Chars)
		b.DeleteRow(b.Cursor.Y + 1)
	}
}

// DeleteUnderCursor removes the byte under the cursor without joining rows
// and returns it.
func (b *Buffer) DeleteUnderCursor() (byte, bool) {
	r := b.Row(b.Cursor.Y)
	if r == nil || b.Cursor.X >= len(r.Chars) {
		return 0, false
	}
	c := r.Chars[b.Cursor.X]
	b.DeleteCharAt(b.Cursor.Y, b.Cursor.X)
	b.ClampCursor(false)
	return c, true
}

// DeleteLine removes the cursor row and returns its content. A buffer never
// drops below one row: deleting the only row clears it instead, and clearing
// an already empty only row changes nothing.
func (b *Buffer) DeleteLine() ([]byte, bool) {
	r := b.Row(b.Cursor.Y)
	if r == nil {
		return nil, false
	}
	removed := cloneBytes(r.Chars)
	if len(b.Rows) == 1 {
		if len(r.Chars) == 0 {
			return removed, false
		}
		b.SetRow(0, nil)
		b.Cursor = Point{}
		return removed, true
	}
	b.DeleteRow(b.Cursor.Y)
	if b.Cursor.Y >= len(b.Rows) {
		b.Cursor.Y = len(b.Rows) - 1
	}
	b.ClampCursor(false)
	return removed, true
}

// ReplaceChar overwrites the byte under the cursor with c. The cursor does
// not move.
func (b *Buffer) ReplaceChar(c byte) bool {
	r := b.Row(b.Cursor.Y)
	if r == nil || b.Cursor.X >= len(r.Chars) {
		return false
	}
	r.Chars[b.Cursor.X] = c
	b.updateRow(b.Cursor.Y)
	b.Dirty++
	return true
}

// ClampCursor pulls the cursor back into the text. In insert mode the
// cursor may sit one past the last byte of its row.
func (b *Buffer) ClampCursor(insert bool) {
	if len(b.Rows) == 0 {
		b.Cursor = Point{}
		return
	}
	b.Cursor.Y = max(0, min(b.Cursor.Y, len(b.Rows)-1))
	limit := len(b.Rows[b.Cursor.Y].Chars)
	if !insert {
		limit--
	}
	b.Cursor.X = max(0, min(b.Cursor.X, limit))
}

// Scroll refreshes RenderX and moves the viewport so the cursor is inside a
// window of rows by cols.
func (b *Buffer) Scroll(rows, cols int) {
	b.RenderX = 0
	if r := b.Row(b.Cursor.Y); r != nil {
		b.RenderX = r.CxToRx(b.Cursor.X, b.tabStop())
	}
	if rows > 0 {
		if b.Cursor.Y < b.RowOff {
			b.RowOff = b.Cursor.Y
		}
		if b.Cursor.Y >= b.RowOff+rows {
			b.RowOff = b.Cursor.Y - rows + 1
		}
	}
	if cols > 0 {
		if b.RenderX < b.ColOff {
			b.ColOff = b.RenderX
		}
		if b.RenderX >= b.ColOff+cols {
			b.ColOff = b.RenderX - cols + 1
		}
	}
}

// RenderCol is CxToRx for row y using the buffer's tab stop.
func (b *Buffer) RenderCol(y, x int) int {
	r := b.Row(y)
	if r == nil {
		return 0
	}
	return r.CxToRx(x, b.tabStop())
}

// CharCol is RxToCx for row y using the buffer's tab stop.
func (b *Buffer) CharCol(y, rx int) int {
	r := b.Row(y)
	if r == nil {
		return 0
	}
	return r.RxToCx(rx, b.tabStop())
}
