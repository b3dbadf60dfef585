package app

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/buffer"
)

type promptKind int

const (
	promptCommand promptKind = iota
	promptSearch
	promptSaveAs
)

// Prompt is a one-line input shown on the status bar. It is driven one
// key at a time by the event loop.
type Prompt struct {
	Label string
	Input []byte
	kind  promptKind

	// View of the active buffer when the prompt opened.
	cursor buffer.Point
	rowOff int
	colOff int

	// found is the result of the last incremental search step.
	found bool
}

// Text is what the status bar shows while the prompt is open.
func (p *Prompt) Text() string { return p.Label + string(p.Input) }

func (r *Runner) openPrompt(kind promptKind, label string) {
	b := r.buf()
	r.State.Prompt = &Prompt{
		Label:  label,
		kind:   kind,
		cursor: b.Cursor,
		rowOff: b.RowOff,
		colOff: b.ColOff,
	}
	r.State.Pending = PendingNone
}

// handlePromptKey edits the open prompt. Enter accepts and Escape cancels.
func (r *Runner) handlePromptKey(ev *tcell.EventKey) bool {
	p := r.State.Prompt
	switch ev.Key() {
	case tcell.KeyEsc:
		r.State.Prompt = nil
		r.cancelPrompt(p)
		return false
	case tcell.KeyEnter:
		if p.kind == promptSaveAs && len(p.Input) == 0 {
			return false
		}
		r.State.Prompt = nil
		return r.acceptPrompt(p)
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if len(p.Input) > 0 {
			_, n := utf8.DecodeLastRune(p.Input)
			p.Input = p.Input[:len(p.Input)-n]
		}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			p.Input = utf8.AppendRune(p.Input, ev.Rune())
		}
	case tcell.KeyTab:
		p.Input = append(p.Input, '\t')
	}
	if p.kind == promptSearch {
		r.searchStep(p, ev)
	}
	return false
}

func (r *Runner) cancelPrompt(p *Prompt) {
	switch p.kind {
	case promptSearch:
		r.cancelSearch(p)
	case promptSaveAs:
		r.State.SetStatus("Save aborted")
	}
}

func (r *Runner) acceptPrompt(p *Prompt) bool {
	switch p.kind {
	case promptSearch:
		r.acceptSearch(p)
	case promptSaveAs:
		r.saveAs(string(p.Input))
	case promptCommand:
		return r.runCommand(string(p.Input))
	}
	return false
}

// runCommand executes a ':' command line. It returns true when the editor
// should quit. Unknown commands are ignored.
func (r *Runner) runCommand(line string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	r.logAction("command." + name)
	switch name {
	case "w":
		if arg != "" {
			r.saveAs(arg)
		} else {
			r.save()
		}
	case "q":
		return r.quit(false)
	case "q!":
		return r.quit(true)
	case "e":
		if arg == "" {
			r.reportFile()
		} else {
			r.openBuffer(arg)
		}
	case "bn":
		r.nextBuffer()
	case "bp":
		r.prevBuffer()
	case "bd":
		r.closeBuffer(false)
	case "bd!":
		r.closeBuffer(true)
	case "b":
		r.switchBuffer(arg)
	case "theme":
		r.switchTheme(arg)
	default:
		if n, err := strconv.Atoi(name); err == nil && arg == "" {
			r.gotoLine(n)
		}
	}
	return false
}
