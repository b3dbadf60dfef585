package buffer

// SelectionKind is the shape of a visual selection.
type SelectionKind uint8

const (
	SelectChar SelectionKind = iota
	SelectLine
	SelectBlock
)

// Selection spans from Anchor to Cursor inclusive. Both points use the same
// column space: byte offsets for editing, render columns for drawing.
type Selection struct {
	Kind   SelectionKind
	Anchor Point
	Cursor Point
}

// Ordered returns the selection ends as a (left, right) pair in reading
// order.
func (s Selection) Ordered() (Point, Point) {
	a, c := s.Anchor, s.Cursor
	if a.Y < c.Y || (a.Y == c.Y && a.X <= c.X) {
		return a, c
	}
	return c, a
}

// Rows returns the first and last selected row.
func (s Selection) Rows() (int, int) {
	return min(s.Anchor.Y, s.Cursor.Y), max(s.Anchor.Y, s.Cursor.Y)
}

// Columns returns the column range of a block selection.
func (s Selection) Columns() (int, int) {
	return min(s.Anchor.X, s.Cursor.X), max(s.Anchor.X, s.Cursor.X)
}

// Contains reports whether the cell at column x of row y is selected.
func (s Selection) Contains(x, y int) bool {
	top, bottom := s.Rows()
	if y < top || y > bottom {
		return false
	}
	switch s.Kind {
	case SelectLine:
		return true
	case SelectBlock:
		left, right := s.Columns()
		return x >= left && x <= right
	}
	l, r := s.Ordered()
	switch {
	case l.Y == r.Y:
		return x >= l.X && x <= r.X
	case y == l.Y:
		return x >= l.X
	case y == r.Y:
		return x <= r.X
	}
	return true
}

// Selection returns the buffer's current selection in byte offsets.
func (b *Buffer) Selection(kind SelectionKind) Selection {
	return Selection{Kind: kind, Anchor: b.Anchor, Cursor: b.Cursor}
}

// RenderSelection converts s from byte offsets to render columns.
func (b *Buffer) RenderSelection(s Selection) Selection {
	s.Anchor.X = b.RenderCol(s.Anchor.Y, s.Anchor.X)
	s.Cursor.X = b.RenderCol(s.Cursor.Y, s.Cursor.X)
	return s
}

// blockSpan returns the byte range [from, to) of row y covered by the render
// columns left..right.
func (b *Buffer) blockSpan(y, left, right int) (int, int) {
	r := b.Row(y)
	if r == nil {
		return 0, 0
	}
	from := r.RxToCx(left, b.tabStop())
	to := min(r.RxToCx(right, b.tabStop())+1, len(r.Chars))
	if from > to {
		from = to
	}
	return from, to
}

// Text returns a copy of the selected text.
func (b *Buffer) Text(s Selection) Yank {
	top, bottom := s.Rows()
	top = max(top, 0)
	bottom = min(bottom, len(b.Rows)-1)
	var out [][]byte
	switch s.Kind {
	case SelectLine:
		for y := top; y <= bottom; y++ {
			out = append(out, cloneBytes(b.Rows[y].Chars))
		}
		return Yank{Lines: out, Linewise: true}
	case SelectBlock:
		rs := b.RenderSelection(s)
		left, right := rs.Columns()
		for y := top; y <= bottom; y++ {
			from, to := b.blockSpan(y, left, right)
			out = append(out, cloneBytes(b.Rows[y].Chars[from:to]))
		}
		return Yank{Lines: out}
	}
	l, r := s.Ordered()
	for y := l.Y; y <= r.Y && y < len(b.Rows); y++ {
		chars := b.Rows[y].Chars
		from, to := 0, len(chars)
		if y == l.Y {
			from = min(l.X, len(chars))
		}
		if y == r.Y {
			to = min(r.X+1, len(chars))
		}
		if from > to {
			from = to
		}
		out = append(out, cloneBytes(chars[from:to]))
	}
	return Yank{Lines: out}
}

// DeleteSelection removes the selected text, returns it, and leaves the
// cursor at the start of the removed region.
func (b *Buffer) DeleteSelection(s Selection) Yank {
	if len(b.Rows) == 0 {
		return Yank{}
	}
	y := b.Text(s)
	top, bottom := s.Rows()
	top = max(top, 0)
	bottom = min(bottom, len(b.Rows)-1)
	switch s.Kind {
	case SelectLine:
		for i := bottom; i >= top; i-- {
			if len(b.Rows) == 1 {
				b.SetRow(0, nil)
				break
			}
			b.DeleteRow(i)
		}
		b.Cursor = Point{Y: top}
	case SelectBlock:
		rs := b.RenderSelection(s)
		left, right := rs.Columns()
		first := 0
		for row := top; row <= bottom; row++ {
			from, to := b.blockSpan(row, left, right)
			if row == top {
				first = from
			}
			chars := b.Rows[row].Chars
			b.SetRow(row, append(cloneBytes(chars[:from]), chars[to:]...))
		}
		b.Cursor = Point{X: first, Y: top}
	default:
		l, r := s.Ordered()
		r.Y = min(r.Y, len(b.Rows)-1)
		head := b.Rows[l.Y].Chars[:min(l.X, len(b.Rows[l.Y].Chars))]
		tailRow := b.Rows[r.Y].Chars
		tail := tailRow[min(r.X+1, len(tailRow)):]
		joined := append(cloneBytes(head), tail...)
		for i := r.Y; i > l.Y; i-- {
			b.DeleteRow(i)
		}
		b.SetRow(l.Y, joined)
		b.Cursor = Point{X: l.X, Y: l.Y}
	}
	b.ClampCursor(false)
	return y
}
