package app

import (
	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/buffer"
	"example.com/acorn/pkg/search"
)

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	b := r.buf()
	r.Finder.Restore(b)
	if !r.matchCommand(ev, "quit") {
		r.quitLeft = quitTimes
	}
	if r.State.Prompt != nil {
		return r.handlePromptKey(ev)
	}
	switch r.State.Mode {
	case ModeInsert:
		return r.handleInsertKey(ev)
	case ModeCommand:
		return r.handleCommandKey(ev)
	}
	return r.handleVisualKey(ev)
}

// ctrlKey reports whether ev is Ctrl with the letter c, in either of the
// forms tcell delivers it.
func ctrlKey(ev *tcell.EventKey, c rune) bool {
	if ev.Key() == tcell.KeyCtrlA+tcell.Key(c-'a') {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == c || ev.Rune() == c-'a'+'A')
}

// keyByte returns the single byte a key stands for in the text, if any.
func keyByte(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 && ev.Rune() < 0x80 {
			return byte(ev.Rune()), true
		}
	}
	return 0, false
}

// handleMotion moves the cursor for keys that are motions in every mode
// (arrows, Home/End, paging) and, outside Insert mode, the letter motions.
func (r *Runner) handleMotion(ev *tcell.EventKey, insert bool) bool {
	b := r.buf()
	rows := r.State.TextRows()
	switch ev.Key() {
	case tcell.KeyLeft:
		b.MoveLeft()
	case tcell.KeyRight:
		b.MoveRight(insert)
	case tcell.KeyUp:
		b.MoveUp(insert)
	case tcell.KeyDown:
		b.MoveDown(insert)
	case tcell.KeyHome:
		b.LineStart()
	case tcell.KeyEnd:
		b.LineEnd(insert)
	case tcell.KeyPgUp:
		b.PageUp(rows, insert)
	case tcell.KeyPgDn:
		b.PageDown(rows, insert)
	case tcell.KeyRune:
		if insert || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		switch ev.Rune() {
		case 'h':
			b.MoveLeft()
		case 'j':
			b.MoveDown(false)
		case 'k':
			b.MoveUp(false)
		case 'l':
			b.MoveRight(false)
		case '0':
			b.LineStart()
		case '$':
			b.LineEnd(false)
		case '^':
			b.FirstNonBlank()
		case 'G':
			b.Bottom(false)
		case 'w':
			b.Cursor = b.NextWordStart()
			b.ClampCursor(false)
		case 'b':
			b.Cursor = b.WordStart()
			b.ClampCursor(false)
		case 'e':
			b.Cursor = b.WordEnd()
			b.ClampCursor(false)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (r *Runner) handleCommandKey(ev *tcell.EventKey) bool {
	b := r.buf()
	st := r.State
	pending := st.Pending
	st.Pending = PendingNone

	if pending == PendingReplace {
		if c, ok := keyByte(ev); ok && b.ReplaceChar(c) {
			r.logAction("replace")
		}
		return false
	}
	if ctrlKey(ev, 'v') {
		r.enterVisual(ModeVisualBlock)
		return false
	}
	if r.handleMotion(ev, false) {
		return false
	}
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return false
	}

	switch ev.Rune() {
	case 'g':
		if pending == PendingG {
			b.Top()
			r.logAction("top")
		} else {
			st.Pending = PendingG
		}
	case 't':
		if pending == PendingG {
			r.nextBuffer()
		}
	case 'T':
		if pending == PendingG {
			r.prevBuffer()
		}
	case 'd':
		if pending == PendingD {
			if line, ok := b.DeleteLine(); ok {
				r.Register.Push(buffer.Yank{Lines: [][]byte{line}, Linewise: true})
			}
			r.logAction("delete.line")
		} else {
			st.Pending = PendingD
		}
	case 'y':
		if pending == PendingY {
			if row := b.Row(b.Cursor.Y); row != nil {
				r.Register.Push(buffer.Yank{Lines: [][]byte{append([]byte(nil), row.Chars...)}, Linewise: true})
			}
			r.logAction("yank.line")
		} else {
			st.Pending = PendingY
		}
	case 'r':
		st.Pending = PendingReplace
	case 'x':
		if c, ok := b.DeleteUnderCursor(); ok {
			r.Register.Push(buffer.Yank{Lines: [][]byte{{c}}})
		}
		r.logAction("delete.char")
	case 'p':
		r.put()
	case 'i':
		r.enterInsert()
	case 'a':
		if row := b.Row(b.Cursor.Y); row != nil && row.Len() > 0 {
			b.Cursor.X++
		}
		r.enterInsert()
	case 'A':
		b.LineEnd(true)
		r.enterInsert()
	case 'I':
		b.FirstNonBlank()
		r.enterInsert()
	case 'o':
		at := min(b.Cursor.Y+1, b.NumRows())
		b.InsertRow(at, nil)
		b.Cursor = buffer.Point{Y: at}
		r.enterInsert()
	case 'O':
		at := min(b.Cursor.Y, b.NumRows())
		b.InsertRow(at, nil)
		b.Cursor = buffer.Point{Y: at}
		r.enterInsert()
	case 'v':
		r.enterVisual(ModeVisual)
	case 'V':
		r.enterVisual(ModeVisualLine)
	case 'n':
		r.repeatSearch(search.Forward)
	case 'N':
		r.repeatSearch(search.Backward)
	case ':':
		r.openPrompt(promptCommand, ":")
	case '/':
		r.runSearchPrompt()
	}
	return false
}

func (r *Runner) enterInsert() {
	r.State.Mode = ModeInsert
	r.State.Pending = PendingNone
	r.logAction("mode.insert")
}

func (r *Runner) enterVisual(m Mode) {
	b := r.buf()
	b.ClampCursor(false)
	b.Anchor = b.Cursor
	r.State.Mode = m
	r.logAction("mode.visual")
}

func (r *Runner) leaveToCommand() {
	r.State.Mode = ModeCommand
	r.State.Pending = PendingNone
	r.buf().ClampCursor(false)
}

func (r *Runner) put() {
	y, ok := r.Register.Current()
	if !ok {
		return
	}
	b := r.buf()
	if y.Linewise {
		b.PutLines(y.Lines, false)
	} else {
		b.PutText(y.Lines)
	}
	r.logAction("put")
}

func (r *Runner) handleInsertKey(ev *tcell.EventKey) bool {
	b := r.buf()
	switch {
	case r.matchCommand(ev, "quit"):
		return r.quitShortcut()
	case r.matchCommand(ev, "save"):
		r.save()
		return false
	case r.matchCommand(ev, "find"):
		r.runSearchPrompt()
		return false
	}
	if r.handleMotion(ev, true) {
		return false
	}
	if ctrlKey(ev, 'l') || ctrlKey(ev, 'c') {
		r.leaveToCommand()
		return false
	}
	switch ev.Key() {
	case tcell.KeyEsc:
		r.leaveToCommand()
	case tcell.KeyEnter:
		b.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.DeleteChar()
	case tcell.KeyDelete:
		b.DeleteForward()
	case tcell.KeyTab:
		for i := 0; i < r.tabStop(); i++ {
			b.InsertChar(' ')
		}
	case tcell.KeyRune:
		// Rows hold bytes and the cursor moves by byte, so only single-byte
		// printable keys are text.
		if c, ok := keyByte(ev); ok && c >= ' ' && c != 0x7f {
			b.InsertChar(c)
		}
	}
	return false
}

func (r *Runner) tabStop() int {
	if ts := r.buf().TabStop; ts > 0 {
		return ts
	}
	return buffer.DefaultTabStop
}

func (r *Runner) handleVisualKey(ev *tcell.EventKey) bool {
	b := r.buf()
	st := r.State
	pending := st.Pending
	st.Pending = PendingNone
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'g' && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		if pending == PendingG {
			b.Top()
		} else {
			st.Pending = PendingG
		}
		return false
	}
	if ev.Key() == tcell.KeyEsc {
		r.leaveToCommand()
		return false
	}
	if ctrlKey(ev, 'v') {
		r.toggleVisual(ModeVisualBlock)
		return false
	}
	if r.handleMotion(ev, false) {
		return false
	}
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return false
	}
	sel := b.Selection(st.Mode.selectionKind())
	switch ev.Rune() {
	case 'v':
		r.toggleVisual(ModeVisual)
	case 'V':
		r.toggleVisual(ModeVisualLine)
	case 'o':
		b.Anchor, b.Cursor = b.Cursor, b.Anchor
	case 'y':
		r.Register.Push(b.Text(sel))
		b.Cursor, _ = sel.Ordered()
		if sel.Kind == buffer.SelectBlock {
			top, _ := sel.Rows()
			left, _ := b.RenderSelection(sel).Columns()
			b.Cursor = buffer.Point{X: b.CharCol(top, left), Y: top}
		}
		r.leaveToCommand()
		r.logAction("yank.selection")
	case 'd', 'x':
		r.Register.Push(b.DeleteSelection(sel))
		r.leaveToCommand()
		r.logAction("delete.selection")
	}
	return false
}

// toggleVisual switches between the visual variants; pressing the key of
// the current variant returns to Command mode.
func (r *Runner) toggleVisual(m Mode) {
	if r.State.Mode == m {
		r.leaveToCommand()
		return
	}
	r.State.Mode = m
}

// matchCommand checks whether the event matches a named command in the
// keymap.
func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	kb, ok := r.Keymap[name]
	if !ok {
		return false
	}
	return kb.Matches(ev)
}
