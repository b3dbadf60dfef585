package app

import (
	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/search"
)

// runSearchPrompt opens the incremental search prompt.
func (r *Runner) runSearchPrompt() {
	r.Finder.Reset()
	r.openPrompt(promptSearch, "/")
}

// searchStep runs after every prompt key. Arrow keys step to the next or
// previous match; any other key restarts the search from the top with the
// edited query.
func (r *Runner) searchStep(p *Prompt, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRight, tcell.KeyDown:
		r.Finder.SetDirection(search.Forward)
	case tcell.KeyLeft, tcell.KeyUp:
		r.Finder.SetDirection(search.Backward)
	default:
		r.Finder.Reset()
	}
	p.found = r.Finder.Find(r.buf(), p.Input)
}

func (r *Runner) cancelSearch(p *Prompt) {
	b := r.buf()
	r.Finder.Restore(b)
	r.Finder.Reset()
	b.Cursor = p.cursor
	b.RowOff = p.rowOff
	b.ColOff = p.colOff
}

func (r *Runner) acceptSearch(p *Prompt) {
	r.Finder.Restore(r.buf())
	r.Finder.Reset()
	if len(p.Input) == 0 {
		r.State.SetStatus("Empty search")
		return
	}
	r.lastQuery = append(r.lastQuery[:0], p.Input...)
	if !p.found {
		r.State.SetStatus("Pattern not found: %s", p.Input)
	}
	r.logAction("search")
}

// repeatSearch looks for the last accepted query again, starting after the
// cursor row.
func (r *Runner) repeatSearch(dir search.Direction) {
	if len(r.lastQuery) == 0 {
		r.State.SetStatus("No previous search")
		return
	}
	b := r.buf()
	r.Finder.From(b.Cursor.Y)
	r.Finder.SetDirection(dir)
	if !r.Finder.Find(b, r.lastQuery) {
		r.State.SetStatus("Pattern not found: %s", r.lastQuery)
	}
}
