package buffer

// MoveLeft moves the cursor one byte left within its row.
func (b *Buffer) MoveLeft() {
	if b.Cursor.X > 0 {
		b.Cursor.X--
	}
}

// MoveRight moves the cursor one byte right. In insert mode the cursor may
// reach the end of the row.
func (b *Buffer) MoveRight(insert bool) {
	r := b.Row(b.Cursor.Y)
	if r == nil {
		return
	}
	limit := len(r.Chars)
	if !insert {
		limit--
	}
	if b.Cursor.X < limit {
		b.Cursor.X++
	}
}

// MoveUp moves the cursor one row up, clamping the column.
func (b *Buffer) MoveUp(insert bool) {
	if b.Cursor.Y > 0 {
		b.Cursor.Y--
	}
	b.ClampCursor(insert)
}

// MoveDown moves the cursor one row down, clamping the column.
func (b *Buffer) MoveDown(insert bool) {
	if b.Cursor.Y < len(b.Rows)-1 {
		b.Cursor.Y++
	}
	b.ClampCursor(insert)
}

// LineStart moves the cursor to column 0.
func (b *Buffer) LineStart() { b.Cursor.X = 0 }

// LineEnd moves the cursor to the last byte of the row, or past it in
// insert mode.
func (b *Buffer) LineEnd(insert bool) {
	r := b.Row(b.Cursor.Y)
	if r == nil {
		b.Cursor.X = 0
		return
	}
	b.Cursor.X = len(r.Chars)
	b.ClampCursor(insert)
}

// FirstNonBlank moves the cursor to the first byte of the row that is not a
// space or tab.
func (b *Buffer) FirstNonBlank() {
	b.Cursor.X = 0
	r := b.Row(b.Cursor.Y)
	if r == nil {
		return
	}
	for b.Cursor.X < len(r.Chars) && (r.Chars[b.Cursor.X] == ' ' || r.Chars[b.Cursor.X] == '\t') {
		b.Cursor.X++
	}
}

// Top moves the cursor to the first byte of the buffer.
func (b *Buffer) Top() { b.Cursor = Point{} }

// Bottom moves the cursor to the last row, keeping the column when it is
// valid there.
func (b *Buffer) Bottom(insert bool) {
	b.Cursor.Y = max(len(b.Rows)-1, 0)
	b.ClampCursor(insert)
}

// GotoLine moves the cursor to the start of row y, clamped into the buffer.
func (b *Buffer) GotoLine(y int) {
	b.Cursor = Point{Y: y}
	b.ClampCursor(false)
}

// PageUp moves the cursor to the top of the window and then one window up.
func (b *Buffer) PageUp(rows int, insert bool) {
	b.Cursor.Y = b.RowOff
	for i := 0; i < rows; i++ {
		b.MoveUp(insert)
	}
}

// PageDown moves the cursor to the bottom of the window and then one window
// down.
func (b *Buffer) PageDown(rows int, insert bool) {
	b.Cursor.Y = min(b.RowOff+rows-1, max(len(b.Rows)-1, 0))
	for i := 0; i < rows; i++ {
		b.MoveDown(insert)
	}
}
