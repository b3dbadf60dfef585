package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields. The zero value
// and a nil *Logger are disabled loggers.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	enabled bool
}

// NewFromEnv returns a logger if ACORN_LOG is set to a truthy value or if
// ACORN_LOG_FILE (or fallback) names a file. When enabled with no file it
// writes to ./acorn.log.
func NewFromEnv(fallback string) *Logger {
	lf := os.Getenv("ACORN_LOG_FILE")
	if lf == "" {
		lf = fallback
	}
	enabled := lf != ""
	if v := os.Getenv("ACORN_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = "acorn.log"
	}
	return New(lf)
}

// New returns a logger appending to path, or a disabled logger when the file
// cannot be opened.
func New(path string) *Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return &Logger{}
	}
	return &Logger{w: bufio.NewWriter(f), f: f, enabled: true}
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	_ = l.f.Close()
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, mode, action, cursor, rows, file, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
