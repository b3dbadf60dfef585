package syntax

import "testing"

func TestSelect_ByExtension(t *testing.T) {
	cases := map[string]*Definition{
		"main.c":          C,
		"include/x.h":     C,
		"tool.py":         Python,
		"cmd/acorn/x.go":  Go,
		"app.js":          JavaScript,
		"scripts/run.sh":  Shell,
		"notes.txt":       nil,
		"":                nil,
		"dir.c/README.md": nil,
	}
	for name, want := range cases {
		if got := Select(name, nil); got != want {
			t.Fatalf("Select(%q): expected %v, got %v", name, fileType(want), fileType(got))
		}
	}
}

func TestSelect_SubstringPattern(t *testing.T) {
	mk := &Definition{FileType: "make", FileMatch: []string{"Makefile"}}
	defs := []*Definition{C, mk}
	if got := SelectFrom(defs, "src/Makefile", nil); got != mk {
		t.Fatalf("expected substring match for Makefile, got %v", fileType(got))
	}
}

func TestSelect_FallsBackToEnryExtension(t *testing.T) {
	if got := Select("tool.pyw", nil); got != Python {
		t.Fatalf("expected python for .pyw via language detection, got %v", fileType(got))
	}
}

func TestSelect_FallsBackToShebang(t *testing.T) {
	head := []byte("#!/usr/bin/env python\nprint('hi')\n")
	if got := Select("runme", head); got != Python {
		t.Fatalf("expected python from shebang, got %v", fileType(got))
	}
}

func fileType(d *Definition) string {
	if d == nil {
		return "<nil>"
	}
	return d.FileType
}
