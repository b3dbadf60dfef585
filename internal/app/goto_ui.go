package app

// gotoLine moves the cursor to the start of 1-based line n, clamped into
// the buffer.
func (r *Runner) gotoLine(n int) {
	b := r.buf()
	b.GotoLine(n - 1)
	r.logAction("goto")
}
