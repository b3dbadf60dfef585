package search

import (
	"testing"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/syntax"
)

func newBuffer(rows ...string) *buffer.Buffer {
	lines := make([][]byte, len(rows))
	for i, r := range rows {
		lines[i] = []byte(r)
	}
	return buffer.FromLines(lines, syntax.C, 4)
}

func TestFindWrapsForward(t *testing.T) {
	b := newBuffer("foobar", "nothing", "barfoo")
	f := New()
	q := []byte("bar")
	if !f.Find(b, q) || b.Cursor != (buffer.Point{X: 3, Y: 0}) {
		t.Fatalf("expected first match at {3 0}, got %v", b.Cursor)
	}
	if !f.Find(b, q) || b.Cursor != (buffer.Point{X: 0, Y: 2}) {
		t.Fatalf("expected second match at {0 2}, got %v", b.Cursor)
	}
	if !f.Find(b, q) || b.Cursor.Y != 0 {
		t.Fatalf("expected search to wrap to row 0, got %v", b.Cursor)
	}
}

func TestFindBackward(t *testing.T) {
	b := newBuffer("foobar", "nothing", "barfoo")
	f := New()
	q := []byte("bar")
	f.Find(b, q)
	f.SetDirection(Backward)
	if !f.Find(b, q) || b.Cursor.Y != 2 {
		t.Fatalf("expected backward search to wrap to row 2, got %v", b.Cursor)
	}
	if f.Direction() != Backward {
		t.Fatalf("expected direction to stay backward")
	}
}

func TestFindFromResetIsForward(t *testing.T) {
	b := newBuffer("a", "x", "x")
	f := New()
	f.SetDirection(Backward)
	if !f.Find(b, []byte("x")) || b.Cursor.Y != 1 {
		t.Fatalf("expected the first search to run forward, got %v", b.Cursor)
	}
}

func TestFindMarksAndRestoresHighlight(t *testing.T) {
	b := newBuffer("int bar;")
	before := append([]syntax.Class(nil), b.Rows[0].HL...)
	f := New()
	f.Find(b, []byte("bar"))
	for i := 4; i < 7; i++ {
		if b.Rows[0].HL[i] != syntax.Match {
			t.Fatalf("expected match class at %d, got %v", i, b.Rows[0].HL[i])
		}
	}
	f.Restore(b)
	for i, c := range before {
		if b.Rows[0].HL[i] != c {
			t.Fatalf("expected highlight restored at %d: %v != %v", i, b.Rows[0].HL[i], c)
		}
	}
}

func TestFindScrollsMatchToTop(t *testing.T) {
	b := newBuffer("a", "b", "c", "needle")
	f := New()
	f.Find(b, []byte("needle"))
	if b.RowOff != b.NumRows() {
		t.Fatalf("expected row offset pushed past the end, got %d", b.RowOff)
	}
	b.Scroll(2, 80)
	if b.RowOff != 3 {
		t.Fatalf("expected match row at top after scroll, got %d", b.RowOff)
	}
}

func TestFindTabsMapToCharColumns(t *testing.T) {
	b := newBuffer("\tfoo")
	f := New()
	if !f.Find(b, []byte("foo")) || b.Cursor.X != 1 {
		t.Fatalf("expected cursor on byte 1 after the tab, got %v", b.Cursor)
	}
}

func TestFindEmptyQueryAndMiss(t *testing.T) {
	b := newBuffer("abc")
	f := New()
	if f.Find(b, nil) {
		t.Fatalf("expected empty query not to match")
	}
	if f.Find(b, []byte("zzz")) || b.Cursor != (buffer.Point{}) {
		t.Fatalf("expected a miss to leave the cursor alone")
	}
	if f.LastMatch() != -1 {
		t.Fatalf("expected no last match, got %d", f.LastMatch())
	}
}

func TestFromStartsAfterRow(t *testing.T) {
	b := newBuffer("bar", "bar", "nope", "bar")
	f := New()
	f.From(1)
	if !f.Find(b, []byte("bar")) || b.Cursor.Y != 3 {
		t.Fatalf("expected match after row 1 at row 3, got %v", b.Cursor)
	}
	f.From(0)
	f.SetDirection(Backward)
	if !f.Find(b, []byte("bar")) || b.Cursor.Y != 3 {
		t.Fatalf("expected backward search from row 0 to wrap to row 3, got %v", b.Cursor)
	}
}
