package app

import (
	"path/filepath"
	"strconv"
)

// reportFile shows the name and size of the active buffer.
func (r *Runner) reportFile() {
	b := r.buf()
	name := b.Filename
	if name == "" {
		name = "[No Name]"
	}
	r.State.SetStatus("%q %d lines", name, b.NumRows())
}

func (r *Runner) nextBuffer() {
	if r.Editor.Next() {
		r.switched()
	}
}

func (r *Runner) prevBuffer() {
	if r.Editor.Prev() {
		r.switched()
	}
}

// switchBuffer focuses the buffer with the 1-based number arg.
func (r *Runner) switchBuffer(arg string) {
	n, err := strconv.Atoi(arg)
	if err == nil {
		err = r.Editor.Switch(n - 1)
	}
	if err != nil {
		r.State.SetStatus("No buffer %s", arg)
		return
	}
	r.switched()
}

func (r *Runner) switched() {
	r.Finder.Reset()
	r.State.Mode = ModeCommand
	r.State.Pending = PendingNone
	r.logAction("buffer.switch")
}

// tabLabel is the buffer tab bar title of buffer i.
func (r *Runner) tabLabel(i int) string {
	b := r.Editor.Buffers[i]
	name := "[No Name]"
	if b.Filename != "" {
		name = filepath.Base(b.Filename)
	}
	if b.Dirty > 0 {
		name += " +"
	}
	return name
}
