package syntax

import "strings"

// Class is the highlight classification of a single render byte.
type Class uint8

const (
	Normal Class = iota
	Comment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

var classNames = [...]string{
	Normal:       "normal",
	Comment:      "comment",
	BlockComment: "block-comment",
	Keyword1:     "keyword1",
	Keyword2:     "keyword2",
	String:       "string",
	Number:       "number",
	Match:        "match",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

const separatorPunct = ",.()+-/*=~%<>[];:"

// IsSeparator reports whether c ends a word for keyword and number detection.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separatorPunct, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Highlight classifies render in a single left-to-right pass. inComment is the
// open-comment state carried over from the previous row. The returned slice
// always has len(render) entries; hl is reused when it has enough capacity.
// The boolean result reports whether the row ends inside a block comment.
func Highlight(def *Definition, render []byte, inComment bool, hl []Class) ([]Class, bool) {
	if cap(hl) >= len(render) {
		hl = hl[:len(render)]
	} else {
		hl = make([]Class, len(render))
	}
	fill(hl, Normal)
	if def == nil {
		return hl, false
	}

	lineComment := def.LineComment
	blockStart, blockEnd := def.BlockStart, def.BlockEnd
	blocks := blockStart != "" && blockEnd != ""
	if !blocks {
		inComment = false
	}

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prev := Normal
		if i > 0 {
			prev = hl[i-1]
		}

		if lineComment != "" && inString == 0 && !inComment && hasPrefix(render[i:], lineComment) {
			fill(hl[i:], Comment)
			break
		}

		if blocks && inString == 0 {
			if inComment {
				hl[i] = BlockComment
				if hasPrefix(render[i:], blockEnd) {
					fill(hl[i:i+len(blockEnd)], BlockComment)
					i += len(blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if hasPrefix(render[i:], blockStart) {
				fill(hl[i:i+len(blockStart)], BlockComment)
				i += len(blockStart)
				inComment = true
				continue
			}
		}

		if def.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if def.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prev == Number)) || (c == '.' && prev == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, class := def.matchKeyword(render[i:]); n > 0 {
				fill(hl[i:i+n], class)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return hl, inComment
}

// matchKeyword returns the length and class of the first keyword that starts
// text and is followed by a separator or the end of text.
func (d *Definition) matchKeyword(text []byte) (int, Class) {
	for _, kw := range d.Keywords {
		class := Keyword1
		if strings.HasSuffix(kw, SecondaryMarker) {
			kw = kw[:len(kw)-len(SecondaryMarker)]
			class = Keyword2
		}
		n := len(kw)
		if n == 0 || len(text) < n || string(text[:n]) != kw {
			continue
		}
		if len(text) == n || IsSeparator(text[n]) {
			return n, class
		}
	}
	return 0, Normal
}

func hasPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}

func fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}
