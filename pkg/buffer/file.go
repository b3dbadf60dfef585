package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoFilename is returned by Save on a buffer that has never been named.
var ErrNoFilename = errors.New("buffer has no filename")

// ReadLines splits r into lines, stripping trailing '\n' and '\r' bytes.
// A final line without a newline is kept; empty input yields no lines.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// WriteFile writes data to path. The file is truncated to len(data) before
// the write, so a failed write can leave a short file behind.
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Bytes serializes the buffer with every row terminated by '\n'.
func (b *Buffer) Bytes() []byte {
	n := 0
	for _, r := range b.Rows {
		n += len(r.Chars) + 1
	}
	out := make([]byte, 0, n)
	for _, r := range b.Rows {
		out = append(out, r.Chars...)
		out = append(out, '\n')
	}
	return out
}

// Save writes the buffer to its filename and clears Dirty. It returns the
// number of bytes written.
func (b *Buffer) Save() (int, error) {
	if b.Filename == "" {
		return 0, ErrNoFilename
	}
	data := b.Bytes()
	if err := WriteFile(b.Filename, data); err != nil {
		return 0, fmt.Errorf("write %s: %w", b.Filename, err)
	}
	b.Dirty = 0
	return len(data), nil
}
