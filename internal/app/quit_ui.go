package app

const noWriteMessage = "No write since last change. (Add ! to override)."

// quit reports whether the editor may exit. Without force a dirty buffer
// refuses.
func (r *Runner) quit(force bool) bool {
	if !force && r.Editor.AnyDirty() {
		r.State.SetStatus(noWriteMessage)
		return false
	}
	return true
}

// quitShortcut handles the insert-mode quit key: a dirty editor quits only
// after quitTimes consecutive presses.
func (r *Runner) quitShortcut() bool {
	r.quitLeft--
	if r.Editor.AnyDirty() && r.quitLeft > 0 {
		r.State.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", r.quitLeft)
		return false
	}
	return true
}

// closeBuffer closes the active buffer, refusing a dirty one without force.
func (r *Runner) closeBuffer(force bool) {
	b := r.buf()
	if !force && b.Dirty > 0 {
		r.State.SetStatus(noWriteMessage)
		return
	}
	r.rememberCursor(b)
	_ = r.Editor.Close(r.Editor.Current)
	r.Finder.Reset()
	r.State.Mode = ModeCommand
	r.logAction("buffer.close")
}
