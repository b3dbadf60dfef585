package buffer

import "testing"

func TestBlockSelectionIgnoresCornerOrder(t *testing.T) {
	corners := []Selection{
		{Kind: SelectBlock, Anchor: Point{X: 0, Y: 1}, Cursor: Point{X: 2, Y: 3}},
		{Kind: SelectBlock, Anchor: Point{X: 2, Y: 3}, Cursor: Point{X: 0, Y: 1}},
		{Kind: SelectBlock, Anchor: Point{X: 2, Y: 1}, Cursor: Point{X: 0, Y: 3}},
	}
	for _, s := range corners {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				want := y >= 1 && y <= 3 && x <= 2
				if got := s.Contains(x, y); got != want {
					t.Fatalf("anchor %v cursor %v: Contains(%d,%d) = %v", s.Anchor, s.Cursor, x, y, got)
				}
			}
		}
	}
}

func TestCharSelectionAcrossRows(t *testing.T) {
	s := Selection{Kind: SelectChar, Anchor: Point{X: 3, Y: 2}, Cursor: Point{X: 1, Y: 0}}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, false}, {1, 0, true}, {9, 0, true},
		{0, 1, true}, {9, 1, true},
		{3, 2, true}, {4, 2, false},
		{0, 3, false},
	}
	for _, c := range cases {
		if got := s.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%d,%d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
	same := Selection{Kind: SelectChar, Anchor: Point{X: 4, Y: 1}, Cursor: Point{X: 2, Y: 1}}
	if same.Contains(1, 1) || !same.Contains(2, 1) || !same.Contains(4, 1) || same.Contains(5, 1) {
		t.Fatalf("expected same-row selection clamped to columns 2..4")
	}
}

func TestLineSelectionSelectsWholeRows(t *testing.T) {
	s := Selection{Kind: SelectLine, Anchor: Point{X: 5, Y: 3}, Cursor: Point{X: 0, Y: 2}}
	if !s.Contains(100, 2) || !s.Contains(0, 3) || s.Contains(0, 1) || s.Contains(0, 4) {
		t.Fatalf("expected rows 2..3 fully selected")
	}
}

func TestDeleteCharSelection(t *testing.T) {
	b := FromLines(lines("hello", "big", "world"), nil, 4)
	y := b.DeleteSelection(Selection{Kind: SelectChar, Anchor: Point{X: 2, Y: 2}, Cursor: Point{X: 3, Y: 0}})
	checkRows(t, b, "helld")
	if b.Cursor != (Point{X: 3}) {
		t.Fatalf("expected cursor {3 0}, got %v", b.Cursor)
	}
	if len(y.Lines) != 3 || string(y.Lines[0]) != "lo" || string(y.Lines[1]) != "big" || string(y.Lines[2]) != "wor" {
		t.Fatalf("unexpected removed text %q", y.Lines)
	}
}

func TestDeleteLineSelection(t *testing.T) {
	b := FromLines(lines("a", "b", "c"), nil, 4)
	y := b.DeleteSelection(Selection{Kind: SelectLine, Anchor: Point{Y: 0}, Cursor: Point{Y: 1}})
	checkRows(t, b, "c")
	if !y.Linewise || len(y.Lines) != 2 {
		t.Fatalf("expected two linewise rows, got %+v", y)
	}
	b.DeleteSelection(Selection{Kind: SelectLine})
	checkRows(t, b, "")
}

func TestDeleteBlockSelection(t *testing.T) {
	b := FromLines(lines("abcd", "efgh", "ij", "klmn"), nil, 4)
	y := b.DeleteSelection(Selection{Kind: SelectBlock, Anchor: Point{X: 1, Y: 0}, Cursor: Point{X: 2, Y: 2}})
	checkRows(t, b, "ad", "eh", "i", "klmn")
	if len(y.Lines) != 3 || string(y.Lines[2]) != "j" {
		t.Fatalf("unexpected block text %q", y.Lines)
	}
	if b.Cursor != (Point{X: 1}) {
		t.Fatalf("expected cursor {1 0}, got %v", b.Cursor)
	}
}

func TestBlockSelectionUsesRenderColumns(t *testing.T) {
	b := FromLines(lines("\tx", "abcdef"), nil, 4)
	// Render column 4 is 'x' on row 0 and 'e' on row 1.
	s := Selection{Kind: SelectBlock, Anchor: Point{X: 1, Y: 0}, Cursor: Point{X: 4, Y: 1}}
	y := b.Text(s)
	if string(y.Lines[0]) != "x" || string(y.Lines[1]) != "e" {
		t.Fatalf("unexpected block text %q", y.Lines)
	}
}

func TestRegisterAndPut(t *testing.T) {
	var reg Register
	if _, ok := reg.Current(); ok {
		t.Fatalf("expected empty register")
	}
	reg.Push(Yank{})
	if len(reg.entries) != 0 {
		t.Fatalf("expected empty yank to be ignored")
	}
	reg.Push(Yank{Lines: lines("one")})
	reg.Push(Yank{Lines: lines("two"), Linewise: true})
	cur, ok := reg.Current()
	if !ok || string(cur.Lines[0]) != "two" || !cur.Linewise {
		t.Fatalf("expected newest entry first, got %+v", cur)
	}

	b := FromLines(lines("top", "bottom"), nil, 4)
	b.PutLines(cur.Lines, false)
	checkRows(t, b, "top", "two", "bottom")
	if b.Cursor != (Point{Y: 1}) {
		t.Fatalf("expected cursor on put row, got %v", b.Cursor)
	}

	b.Cursor = Point{X: 0, Y: 0}
	b.PutText(lines("XY"))
	checkRows(t, b, "tXYop", "two", "bottom")
	if b.Cursor != (Point{X: 2}) {
		t.Fatalf("expected cursor on last put byte, got %v", b.Cursor)
	}

	b.Cursor = Point{X: 0, Y: 2}
	b.PutText(lines("1", "2"))
	checkRows(t, b, "tXYop", "two", "b1", "2ottom")
	if b.Cursor != (Point{X: 0, Y: 3}) {
		t.Fatalf("expected cursor {0 3}, got %v", b.Cursor)
	}
}
