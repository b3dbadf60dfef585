package buffer

// Yank is one register entry. Linewise entries are whole rows and are put
// below the cursor row; others are put after the cursor.
type Yank struct {
	Lines    [][]byte
	Linewise bool
}

// Register stores a small history of yanked and deleted text; the newest
// entry is the one put by 'p'.
type Register struct {
	entries []Yank
}

const registerMax = 10

// Push adds an entry. Empty entries are ignored.
func (r *Register) Push(y Yank) {
	if len(y.Lines) == 0 {
		return
	}
	if r.entries == nil {
		r.entries = make([]Yank, 0, registerMax)
	}
	if len(r.entries) < registerMax {
		r.entries = append(r.entries, Yank{})
	}
	copy(r.entries[1:], r.entries[:len(r.entries)-1])
	r.entries[0] = y
}

// Current returns the newest entry.
func (r *Register) Current() (Yank, bool) {
	if len(r.entries) == 0 {
		return Yank{}, false
	}
	return r.entries[0], true
}

// PutLines inserts lines as new rows below (or above) the cursor row and
// moves the cursor to the first inserted row.
func (b *Buffer) PutLines(lines [][]byte, above bool) {
	at := b.Cursor.Y + 1
	if above || len(b.Rows) == 0 {
		at = b.Cursor.Y
	}
	at = max(0, min(at, len(b.Rows)))
	for i, l := range lines {
		b.InsertRow(at+i, l)
	}
	b.Cursor = Point{Y: at}
	b.FirstNonBlank()
	b.ClampCursor(false)
}

// PutText inserts text after the cursor byte. lines[0] continues the cursor
// row; further entries split it. The cursor lands on the last inserted byte.
func (b *Buffer) PutText(lines [][]byte) {
	if len(lines) == 0 {
		return
	}
	if len(b.Rows) == 0 {
		b.InsertRow(0, nil)
		b.Cursor = Point{}
	}
	r := b.Rows[b.Cursor.Y]
	x := b.Cursor.X
	if len(r.Chars) > 0 {
		x = min(x+1, len(r.Chars))
	}
	b.insertText(Point{X: x, Y: b.Cursor.Y}, lines)
}

// insertText places lines at p and leaves the cursor on the last inserted
// byte.
func (b *Buffer) insertText(p Point, lines [][]byte) {
	r := b.Rows[p.Y]
	tail := cloneBytes(r.Chars[p.X:])
	head := cloneBytes(r.Chars[:p.X])
	if len(lines) == 1 {
		b.SetRow(p.Y, append(append(head, lines[0]...), tail...))
		b.Cursor = Point{X: p.X + len(lines[0]) - 1, Y: p.Y}
		b.ClampCursor(false)
		return
	}
	b.SetRow(p.Y, append(head, lines[0]...))
	for i := 1; i < len(lines)-1; i++ {
		b.InsertRow(p.Y+i, lines[i])
	}
	last := lines[len(lines)-1]
	y := p.Y + len(lines) - 1
	b.InsertRow(y, append(cloneBytes(last), tail...))
	b.Cursor = Point{X: len(last) - 1, Y: y}
	b.ClampCursor(false)
}
