package app

import "errors"

// SaveAs names the active buffer path, selects its syntax for the new name
// and writes it.
func (r *Runner) SaveAs(path string) error {
	if path == "" {
		return errors.New("path required")
	}
	r.Editor.Rename(r.buf(), path)
	return r.Save()
}

// save writes the active buffer, asking for a name first when it has none.
func (r *Runner) save() {
	if r.buf().Filename == "" {
		r.runSaveAsPrompt()
		return
	}
	if err := r.Save(); err != nil {
		r.State.SetStatus("Can't save! I/O error: %v", err)
	}
}

func (r *Runner) saveAs(path string) {
	if err := r.SaveAs(path); err != nil {
		r.State.SetStatus("Can't save! I/O error: %v", err)
	}
}

// runSaveAsPrompt asks for a file name on the status bar. Escape aborts.
func (r *Runner) runSaveAsPrompt() {
	r.openPrompt(promptSaveAs, "Save as: ")
}
