package main

import (
	"errors"
	"fmt"
	"os"

	"example.com/acorn/internal/app"
	"example.com/acorn/internal/session"
	"example.com/acorn/internal/term"
	"example.com/acorn/pkg/config"
	"example.com/acorn/pkg/logs"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: acorn [file]")
		os.Exit(2)
	}
	path := ""
	if len(os.Args) == 2 {
		path = os.Args[1]
	}
	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "acorn: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	logger := logs.NewFromEnv(cfg.LogFile)
	defer logger.Close()

	r := app.NewWithConfig(cfg)
	r.Logger = logger
	if cfg.SessionDB != "" {
		store, err := session.Open(cfg.SessionDB)
		if err != nil {
			logger.Event("session.error", map[string]any{"file": cfg.SessionDB, "error": err.Error()})
		} else {
			defer store.Close()
			r.Session = store
		}
	}

	t, err := term.Open()
	if err != nil {
		if errors.Is(err, term.ErrNotTerminal) {
			return fmt.Errorf("%w; acorn needs an interactive terminal", err)
		}
		return err
	}
	// Restore before any error is printed.
	defer func() {
		_ = t.Clear()
		_ = t.Restore()
	}()

	if path != "" {
		if err := r.LoadFile(path); err != nil {
			return err
		}
	}
	r.Keys = t
	r.Display = t
	return r.Run()
}
