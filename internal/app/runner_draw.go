package app

import (
	"bytes"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/config"
	"example.com/acorn/pkg/syntax"
)

// Version is shown in the banner of an empty editor.
const Version = "0.0.1"

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	homeCursor  = "\x1b[H"
	clearLine   = "\x1b[K"
	invertOn    = "\x1b[7m"
	invertOff   = "\x1b[27m"
	resetAttrs  = "\x1b[m"
	tabMaxWidth = 24
)

func banner() string { return "80s Sci-Fi Editor -- version " + Version }

// fgSeq returns the SGR sequence selecting c as foreground color.
func fgSeq(c tcell.Color) string {
	if r, g, b := c.RGB(); c != tcell.ColorDefault && r >= 0 {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[39m"
}

// bgSeq returns the SGR sequence selecting c as background color.
func bgSeq(c tcell.Color) string {
	if r, g, b := c.RGB(); c != tcell.ColorDefault && r >= 0 {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[49m"
}

// renderState is the part of the runner a frame depends on.
type renderState struct {
	rows, cols int
	buf        *buffer.Buffer
	mode       Mode
	sel        *buffer.Selection
	tabs       []string
	current    int
	left       string
	right      string
	prompt     *Prompt
}

func (r *Runner) renderSnapshot() renderState {
	st := r.State
	b := r.buf()
	b.Scroll(st.TextRows(), st.ScreenCols)
	rs := renderState{
		rows:    st.ScreenRows,
		cols:    st.ScreenCols,
		buf:     b,
		mode:    st.Mode,
		current: r.Editor.Current,
		prompt:  st.Prompt,
		right:   statusRight(b),
	}
	if st.Mode.Visual() {
		sel := b.RenderSelection(b.Selection(st.Mode.selectionKind()))
		rs.sel = &sel
	}
	for i := range r.Editor.Buffers {
		rs.tabs = append(rs.tabs, r.tabLabel(i))
	}
	if msg := st.Status(); msg != "" {
		rs.left = msg
	} else {
		rs.left = "-- " + st.Mode.String() + " --"
	}
	return rs
}

// statusRight is the file part of the status bar.
func statusRight(b *buffer.Buffer) string {
	name := b.Filename
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, 20, "")
	modified := ""
	if b.Dirty > 0 {
		modified = " (modified)"
	}
	ft := "no ft"
	if b.Syntax != nil {
		ft = b.Syntax.FileType
	}
	return fmt.Sprintf("%s - %d lines%s | %s | %d/%d", name, b.NumRows(), modified, ft, b.Cursor.Y+1, b.NumRows())
}

// Frame renders the whole screen as one escape-sequence stream.
func (r *Runner) Frame() []byte {
	var out bytes.Buffer
	renderFrame(&out, r.Theme, r.renderSnapshot())
	return out.Bytes()
}

func renderFrame(out *bytes.Buffer, th config.Theme, st renderState) {
	out.WriteString(hideCursor)
	out.WriteString(homeCursor)
	base := fgSeq(th.Foreground) + bgSeq(th.Background)
	out.WriteString(base)
	if st.rows > 0 {
		drawTabs(out, th, st)
		out.WriteString(base)
		out.WriteString(clearLine)
		out.WriteString("\r\n")
	}
	drawRows(out, th, st)
	if st.rows > 1 {
		drawStatus(out, th, st)
	}
	out.WriteString(resetAttrs)

	b := st.buf
	y := b.Cursor.Y - b.RowOff + 2
	x := b.RenderX - b.ColOff + 1
	if st.prompt != nil {
		y = st.rows
		x = min(runewidth.StringWidth(st.prompt.Text())+1, max(st.cols, 1))
	}
	fmt.Fprintf(out, "\x1b[%d;%dH", y, x)
	out.WriteString(showCursor)
}

func drawTabs(out *bytes.Buffer, th config.Theme, st renderState) {
	width := 0
	for i, label := range st.tabs {
		seg := " " + runewidth.Truncate(label, tabMaxWidth, "…") + " "
		w := runewidth.StringWidth(seg)
		if width+w > st.cols {
			seg = runewidth.Truncate(seg, st.cols-width, "")
			w = runewidth.StringWidth(seg)
		}
		if w == 0 {
			break
		}
		if i == st.current {
			out.WriteString(fgSeq(th.TabActiveForeground) + bgSeq(th.TabActiveBackground))
		} else {
			out.WriteString(fgSeq(th.TabForeground) + bgSeq(th.TabBackground))
		}
		out.WriteString(seg)
		width += w
	}
}

func drawRows(out *bytes.Buffer, th config.Theme, st renderState) {
	b := st.buf
	rows := max(st.rows-2, 0)
	pristine := b.Pristine()
	for y := 0; y < rows; y++ {
		filerow := y + b.RowOff
		if filerow >= b.NumRows() || pristine {
			out.WriteString(fgSeq(th.Foreground))
			if pristine && y == rows/3 {
				drawBanner(out, st.cols)
			} else {
				out.WriteString("~")
			}
		} else {
			drawRow(out, th, st, filerow)
		}
		out.WriteString(clearLine)
		out.WriteString("\r\n")
	}
}

func drawBanner(out *bytes.Buffer, cols int) {
	msg := runewidth.Truncate(banner(), cols, "")
	padding := (cols - runewidth.StringWidth(msg)) / 2
	if padding > 0 {
		out.WriteString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		out.WriteByte(' ')
	}
	out.WriteString(msg)
}

// drawRow writes the visible part of one text row. The foreground color is
// only emitted when the highlight class changes.
func drawRow(out *bytes.Buffer, th config.Theme, st renderState, filerow int) {
	b := st.buf
	row := b.Rows[filerow]
	start := min(b.ColOff, len(row.Render))
	end := min(start+st.cols, len(row.Render))
	current := syntax.Class(255)
	cursorHere := st.mode == ModeCommand && st.prompt == nil && filerow == b.Cursor.Y
	for j := start; j < end; j++ {
		c := row.Render[j]
		cls := row.HL[j]
		if cls != current {
			out.WriteString(fgSeq(th.ClassColor(cls)))
			current = cls
		}
		inverted := (cursorHere && j == b.RenderX) || (st.sel != nil && st.sel.Contains(j, filerow))
		if c < ' ' || c == 0x7f {
			sym := byte('?')
			if c < ' ' {
				sym = '@' + c
			}
			out.WriteString(invertOn)
			out.WriteByte(sym)
			out.WriteString(invertOff)
			continue
		}
		if inverted {
			out.WriteString(invertOn)
			out.WriteByte(c)
			out.WriteString(invertOff)
			continue
		}
		out.WriteByte(c)
	}
}

func drawStatus(out *bytes.Buffer, th config.Theme, st renderState) {
	out.WriteString(fgSeq(th.StatusForeground) + bgSeq(th.StatusBackground) + invertOn)
	var left, right string
	if st.prompt != nil {
		left = runewidth.Truncate(st.prompt.Text(), st.cols, "")
	} else {
		left = runewidth.Truncate(st.left, st.cols, "")
		right = runewidth.Truncate(st.right, max(st.cols-runewidth.StringWidth(left)-1, 0), "")
	}
	rw := runewidth.StringWidth(right)
	out.WriteString(left)
	pad := st.cols - runewidth.StringWidth(left) - rw
	for ; pad > 0; pad-- {
		out.WriteByte(' ')
	}
	out.WriteString(right)
}
