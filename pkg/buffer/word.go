package buffer

import "unicode"

// IsWordByte reports whether c is part of a word: letters, digits,
// underscore and any byte of a multi-byte UTF-8 sequence.
func IsWordByte(c byte) bool {
	if c >= 0x80 {
		return true
	}
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_'
}

// Word motions treat the buffer as one flat text where every row but the
// last is followed by a '\n'.

func (b *Buffer) textLen() int {
	n := 0
	for _, r := range b.Rows {
		n += len(r.Chars) + 1
	}
	return max(n-1, 0)
}

func (b *Buffer) offsetOf(p Point) int {
	off := 0
	for y := 0; y < p.Y && y < len(b.Rows); y++ {
		off += len(b.Rows[y].Chars) + 1
	}
	return off + p.X
}

func (b *Buffer) pointAt(off int) Point {
	for y, r := range b.Rows {
		if off <= len(r.Chars) {
			return Point{X: off, Y: y}
		}
		off -= len(r.Chars) + 1
	}
	if len(b.Rows) == 0 {
		return Point{}
	}
	last := len(b.Rows) - 1
	return Point{X: len(b.Rows[last].Chars), Y: last}
}

func (b *Buffer) isWordAt(off int) bool {
	p := b.pointAt(off)
	r := b.Row(p.Y)
	if r == nil || p.X >= len(r.Chars) {
		return false
	}
	return IsWordByte(r.Chars[p.X])
}

// WordStart returns the beginning of the word that ends at or before the
// cursor, like Vim's 'b' motion.
func (b *Buffer) WordStart() Point {
	n := b.textLen()
	if n == 0 {
		return Point{}
	}
	pos := min(b.offsetOf(b.Cursor), n)
	if pos > 0 {
		pos--
	}
	for pos > 0 && !b.isWordAt(pos) {
		pos--
	}
	for pos > 0 && b.isWordAt(pos-1) {
		pos--
	}
	return b.pointAt(pos)
}

// WordEnd returns the end of the word that begins at or after the cursor,
// like Vim's 'e' motion.
func (b *Buffer) WordEnd() Point {
	n := b.textLen()
	if n == 0 {
		return Point{}
	}
	pos := b.offsetOf(b.Cursor)
	if pos >= n {
		return b.pointAt(n - 1)
	}
	if b.isWordAt(pos) && (pos == n-1 || !b.isWordAt(pos+1)) {
		pos++
	}
	for pos < n && !b.isWordAt(pos) {
		pos++
	}
	for pos < n && b.isWordAt(pos) {
		pos++
	}
	if pos > 0 {
		pos--
	}
	return b.pointAt(pos)
}

// NextWordStart returns the start of the next word after the cursor, like
// Vim's 'w' motion.
func (b *Buffer) NextWordStart() Point {
	n := b.textLen()
	if n == 0 {
		return Point{}
	}
	pos := b.offsetOf(b.Cursor)
	if pos >= n {
		return b.pointAt(n)
	}
	for pos < n && b.isWordAt(pos) {
		pos++
	}
	for pos < n && !b.isWordAt(pos) {
		pos++
	}
	return b.pointAt(pos)
}
