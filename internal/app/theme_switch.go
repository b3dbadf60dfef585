package app

import (
	"strings"

	"example.com/acorn/pkg/config"
)

// switchTheme applies a built-in, chroma or file theme. With no name it
// reports the current one.
func (r *Runner) switchTheme(name string) {
	if name == "" {
		r.State.SetStatus("theme %s", r.Theme.Name)
		return
	}
	t, err := r.Config.ResolveTheme(name)
	if err != nil {
		r.State.SetStatus("%v; styles: %s", err, strings.Join(config.ChromaStyles(), " "))
		return
	}
	r.Theme = t
	r.State.SetStatus("theme %s", t.Name)
	r.logAction("theme")
}
