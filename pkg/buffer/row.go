package buffer

import "example.com/acorn/pkg/syntax"

// DefaultTabStop is the render width of a tab stop.
const DefaultTabStop = 4

// Row is one line of text. Chars is authoritative; Render and HL are derived
// from it and are rebuilt together whenever Chars changes.
type Row struct {
	Chars  []byte
	Render []byte
	HL     []syntax.Class
	// OpenComment reports whether the row ends inside an unterminated
	// block comment.
	OpenComment bool
}

// Len returns the number of bytes in Chars.
func (r *Row) Len() int { return len(r.Chars) }

// String returns the row content.
func (r *Row) String() string { return string(r.Chars) }

// CxToRx converts a byte offset into Chars to a render column.
func (r *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.Chars); j++ {
		if r.Chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a render column back to a byte offset into Chars. A render
// column inside an expanded tab maps to the tab itself.
func (r *Row) RxToCx(rx, tabStop int) int {
	cur := 0
	cx := 0
	for ; cx < len(r.Chars); cx++ {
		if r.Chars[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return cx
}

// updateRender rebuilds Render from Chars, expanding tabs to the next
// multiple of tabStop.
func (r *Row) updateRender(tabStop int) {
	out := r.Render[:0]
	for _, c := range r.Chars {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabStop != 0 {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, c)
	}
	r.Render = out
}

func (r *Row) insertByte(at int, c byte) {
	if at < 0 || at > len(r.Chars) {
		at = len(r.Chars)
	}
	r.Chars = append(r.Chars, 0)
	copy(r.Chars[at+1:], r.Chars[at:])
	r.Chars[at] = c
}

func (r *Row) deleteByte(at int) bool {
	if at < 0 || at >= len(r.Chars) {
		return false
	}
	r.Chars = append(r.Chars[:at], r.Chars[at+1:]...)
	return true
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
