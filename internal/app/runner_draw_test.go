package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/syntax"
)

func frame(r *Runner) string { return string(r.Frame()) }

func TestFrameBannerOnEmptyEditor(t *testing.T) {
	r := New()
	r.State.Resize(24, 80)
	f := frame(r)
	if !strings.HasPrefix(f, hideCursor+homeCursor) || !strings.HasSuffix(f, showCursor) {
		t.Fatalf("expected the frame to hide and show the cursor")
	}
	if !strings.Contains(f, banner()) {
		t.Fatalf("expected the version banner")
	}
	if n := strings.Count(f, "~"); n != 22 {
		t.Fatalf("expected a tilde on each of 22 text rows, got %d", n)
	}
	if !strings.HasSuffix(f, "\x1b[2;1H"+showCursor) {
		t.Fatalf("expected the cursor below the tab bar, got %q", f[len(f)-20:])
	}
}

func TestFrameNoBannerOnceEdited(t *testing.T) {
	r := newRunner(t, "x")
	r.State.Resize(24, 80)
	if strings.Contains(frame(r), banner()) {
		t.Fatalf("banner is only for a pristine buffer")
	}
}

func TestFrameCoalescesColors(t *testing.T) {
	r := newRunner(t, "int x = 10;", "")
	r.buf().SetSyntax(syntax.C)
	r.buf().Cursor.Y = 1
	f := frame(r)
	kw := fgSeq(r.Theme.ClassColor(syntax.Keyword2))
	num := fgSeq(r.Theme.ClassColor(syntax.Number))
	normal := fgSeq(r.Theme.ClassColor(syntax.Normal))
	if !strings.Contains(f, kw+"int"+normal+" x = "+num+"10"+normal+";") {
		t.Fatalf("expected one color change per class run, got %q", f)
	}
}

func TestFrameTabBarAndStatus(t *testing.T) {
	r := newRunner(t, "a")
	r.buf().Filename = "a.txt"
	b := buffer.New()
	b.Filename = "/tmp/b.txt"
	b.InsertChar('z')
	if err := r.Editor.Add(b); err != nil {
		t.Fatal(err)
	}
	f := frame(r)
	th := r.Theme
	if !strings.Contains(f, fgSeq(th.TabForeground)+bgSeq(th.TabBackground)+" a.txt ") {
		t.Fatalf("expected an inactive tab for a.txt")
	}
	if !strings.Contains(f, fgSeq(th.TabActiveForeground)+bgSeq(th.TabActiveBackground)+" b.txt + ") {
		t.Fatalf("expected an active dirty tab for b.txt")
	}
	if !strings.Contains(f, "-- COMMAND --") {
		t.Fatalf("expected the mode on the status bar")
	}
	if !strings.Contains(f, "/tmp/b.txt - 1 lines (modified) | no ft | 1/1") {
		t.Fatalf("expected file details on the status bar, got %q", f)
	}
}

func TestFrameStatusMessageExpires(t *testing.T) {
	r := newRunner(t, "a")
	now := time.Unix(100, 0)
	r.State.Now = func() time.Time { return now }
	r.State.SetStatus("hello there")
	if !strings.Contains(frame(r), "hello there") {
		t.Fatalf("expected the status message")
	}
	now = now.Add(r.State.StatusTimeout)
	f := frame(r)
	if strings.Contains(f, "hello there") || !strings.Contains(f, "-- COMMAND --") {
		t.Fatalf("expected the message to expire")
	}
}

func TestFrameControlCharactersAndCursor(t *testing.T) {
	r := newRunner(t, "a\x01b", "def")
	r.buf().Cursor = buffer.Point{X: 2, Y: 1}
	f := frame(r)
	if !strings.Contains(f, invertOn+"A"+invertOff) {
		t.Fatalf("expected ^A to render as an inverted A")
	}
	if !strings.Contains(f, "de"+invertOn+"f"+invertOff) {
		t.Fatalf("expected the Command-mode cursor cell to be inverted")
	}
	if !strings.HasSuffix(f, "\x1b[3;3H"+showCursor) {
		t.Fatalf("expected the cursor at row 3 column 3")
	}
	typeKeys(r, "i")
	if strings.Contains(frame(r), invertOn+"f") {
		t.Fatalf("insert mode must not invert the cursor cell")
	}
}

func TestFrameSelection(t *testing.T) {
	r := newRunner(t, "abcd")
	typeKeys(r, "lvl")
	f := frame(r)
	if !strings.Contains(f, "a"+invertOn+"b"+invertOff+invertOn+"c"+invertOff+"d") {
		t.Fatalf("expected b and c to be selected, got %q", f)
	}
}

func TestFrameTabsExpandAndScroll(t *testing.T) {
	r := newRunner(t, "\tx")
	r.State.Resize(5, 10)
	typeKeys(r, "$")
	f := frame(r)
	if !strings.Contains(f, "    "+invertOn+"x"+invertOff) {
		t.Fatalf("expected the tab to expand to four spaces")
	}
	if !strings.HasSuffix(f, "\x1b[2;5H"+showCursor) {
		t.Fatalf("expected the cursor on render column 5")
	}
}

func TestFramePromptOnStatusBar(t *testing.T) {
	r := newRunner(t, "a")
	typeKeys(r, ":wq")
	f := frame(r)
	if !strings.Contains(f, invertOn+":wq ") {
		t.Fatalf("expected the prompt on the status bar")
	}
	if !strings.HasSuffix(f, "\x1b[24;4H"+showCursor) {
		t.Fatalf("expected the cursor after the prompt text")
	}
}

func TestColorSequences(t *testing.T) {
	if fgSeq(tcell.ColorDefault) != "\x1b[39m" || bgSeq(tcell.ColorDefault) != "\x1b[49m" {
		t.Fatalf("default colors should use the terminal defaults")
	}
	if got := fgSeq(tcell.NewRGBColor(1, 2, 3)); got != "\x1b[38;2;1;2;3m" {
		t.Fatalf("unexpected foreground %q", got)
	}
	if got := bgSeq(tcell.NewRGBColor(4, 5, 6)); got != "\x1b[48;2;4;5;6m" {
		t.Fatalf("unexpected background %q", got)
	}
}
