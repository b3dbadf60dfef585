// Package term is the editor's terminal collaborator: raw mode, window
// geometry, the output byte sink and the key decoder.
package term

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal is a raw-mode terminal.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *xterm.State
	dec   *Decoder
	buf   [1]byte
}

// Open puts the process's terminal into raw mode.
func Open() (*Terminal, error) {
	return OpenFiles(os.Stdin, os.Stdout)
}

// OpenFiles puts in into raw mode and writes to out.
func OpenFiles(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t := &Terminal{in: in, out: out, state: state}
	t.dec = NewDecoder(t.readByte)
	return t, nil
}

// Restore returns the terminal to the mode it had before Open.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := xterm.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}

// Decoder exposes the key decoder so callers can tune its timeouts.
func (t *Terminal) Decoder() *Decoder { return t.dec }

// ReadKey waits up to the decoder timeout for one logical key. It returns
// nil and no error on timeout.
func (t *Terminal) ReadKey() (*tcell.EventKey, error) { return t.dec.ReadKey() }

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	return rows, cols, nil
}

// Write sends p to the terminal verbatim.
func (t *Terminal) Write(p []byte) (int, error) { return t.out.Write(p) }

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	_, err := t.out.Write([]byte("\x1b[2J\x1b[H"))
	return err
}

func (t *Terminal) readByte(timeout time.Duration) (byte, bool, error) {
	ready, err := waitReadable(t.in, timeout)
	if err != nil || !ready {
		return 0, false, err
	}
	n, err := t.in.Read(t.buf[:])
	if err != nil {
		return 0, false, fmt.Errorf("read key: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return t.buf[0], true, nil
}
