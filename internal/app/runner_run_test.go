package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/logs"
)

// scriptKeys replays events; a nil entry is a read timeout.
type scriptKeys struct {
	events []*tcell.EventKey
}

func (s *scriptKeys) ReadKey() (*tcell.EventKey, error) {
	if len(s.events) == 0 {
		return nil, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

type recordDisplay struct {
	rows, cols int
	frames     [][]byte
	sizeErr    error
}

func (d *recordDisplay) Size() (int, int, error) { return d.rows, d.cols, d.sizeErr }

func (d *recordDisplay) Write(p []byte) (int, error) {
	d.frames = append(d.frames, append([]byte(nil), p...))
	return len(p), nil
}

func runes(s string) []*tcell.EventKey {
	var out []*tcell.EventKey
	for _, c := range s {
		out = append(out, tcell.NewEventKey(tcell.KeyRune, c, tcell.ModNone))
	}
	return out
}

func TestRun_TypingSaveQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	r := New()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	var evs []*tcell.EventKey
	evs = append(evs, runes("iab")...)
	evs = append(evs, nil, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	evs = append(evs, tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	evs = append(evs, runes(":q")...)
	evs = append(evs, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	d := &recordDisplay{rows: 10, cols: 40}
	r.Keys = &scriptKeys{events: evs}
	r.Display = d
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "ab\n" {
		t.Fatalf("expected saved content %q, got %q %v", "ab\n", data, err)
	}
	// One frame is drawn before every read.
	if len(d.frames) != len(evs) {
		t.Fatalf("expected %d frames, got %d", len(evs), len(d.frames))
	}
}

func TestRun_StartupHelpMessage(t *testing.T) {
	r := New()
	d := &recordDisplay{rows: 10, cols: 60}
	r.Keys = &scriptKeys{}
	r.Display = d
	if err := r.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected the key source error, got %v", err)
	}
	if len(d.frames) == 0 || !bytes.Contains(d.frames[0], []byte(helpMessage)) {
		t.Fatalf("expected the help message on the first frame")
	}
}

func TestRun_SizeErrorStops(t *testing.T) {
	r := New()
	boom := errors.New("boom")
	r.Keys = &scriptKeys{}
	r.Display = &recordDisplay{sizeErr: boom}
	if err := r.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected the size error, got %v", err)
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	if err := New().Run(); err == nil {
		t.Fatalf("expected an error without a terminal")
	}
}

func TestLoadFile_EmitsLoggingEvents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "acorn.log")
	t.Setenv("ACORN_LOG_FILE", logPath)
	t.Setenv("ACORN_LOG", "1")

	r := New()
	r.Logger = logs.NewFromEnv("")
	if !r.Logger.Enabled() {
		t.Fatalf("expected logger from env")
	}

	if err := r.LoadFile(t.TempDir()); err == nil {
		t.Fatalf("expected loading a directory to fail")
	}
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("hello\r\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := rowsOf(r); len(got) != 2 || got[0] != "hello" {
		t.Fatalf("unexpected rows %q", got)
	}
	r.Logger.Close()

	f, err := os.Open(logPath)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	seen := map[string]int{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("bad log line %q: %v", sc.Text(), err)
		}
		ev, _ := rec["event"].(string)
		seen[ev]++
	}
	if seen["open.attempt"] != 2 || seen["open.error"] != 1 || seen["open.success"] != 1 {
		t.Fatalf("unexpected events %v", seen)
	}
}
