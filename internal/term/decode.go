package term

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ByteSource returns the next input byte, waiting at most timeout. ok is
// false when no byte arrived in time.
type ByteSource func(timeout time.Duration) (b byte, ok bool, err error)

// Decoder turns raw terminal bytes into logical key events.
type Decoder struct {
	next ByteSource
	// Timeout bounds the wait for the first byte of a key.
	Timeout time.Duration
	// EscTimeout bounds the wait for the rest of an escape or UTF-8
	// sequence. A lone ESC is reported once it expires.
	EscTimeout time.Duration

	// back holds a byte read past the end of an escape sequence.
	back    byte
	hasBack bool
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{next: src, Timeout: 100 * time.Millisecond, EscTimeout: 50 * time.Millisecond}
}

func (d *Decoder) read(timeout time.Duration) (byte, bool, error) {
	if d.hasBack {
		d.hasBack = false
		return d.back, true, nil
	}
	return d.next(timeout)
}

func (d *Decoder) unread(c byte) {
	d.back, d.hasBack = c, true
}

// ReadKey returns the next key, or nil with a nil error when none arrived
// before Timeout. Escape sequences that name no known key are skipped.
func (d *Decoder) ReadKey() (*tcell.EventKey, error) {
	for {
		c, ok, err := d.read(d.Timeout)
		if err != nil || !ok {
			return nil, err
		}
		if c != 0x1b {
			return d.single(c)
		}
		ev, err := d.escape()
		if ev != nil || err != nil {
			return ev, err
		}
	}
}

func (d *Decoder) single(c byte) (*tcell.EventKey, error) {
	switch {
	case c == '\r' || c == '\n':
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil
	case c == '\t':
		return tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), nil
	case c == 0x7f:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), nil
	case c == 0x08:
		return tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), nil
	case c < 0x20:
		return tcell.NewEventKey(tcell.Key(c), 0, tcell.ModCtrl), nil
	case c < utf8.RuneSelf:
		return tcell.NewEventKey(tcell.KeyRune, rune(c), tcell.ModNone), nil
	}
	return d.utf8(c)
}

func (d *Decoder) utf8(first byte) (*tcell.EventKey, error) {
	n := 0
	switch {
	case first&0xe0 == 0xc0:
		n = 2
	case first&0xf0 == 0xe0:
		n = 3
	case first&0xf8 == 0xf0:
		n = 4
	default:
		return tcell.NewEventKey(tcell.KeyRune, utf8.RuneError, tcell.ModNone), nil
	}
	buf := []byte{first}
	for len(buf) < n {
		c, ok, err := d.read(d.EscTimeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if c&0xc0 != 0x80 {
			d.unread(c)
			break
		}
		buf = append(buf, c)
	}
	r, _ := utf8.DecodeRune(buf)
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), nil
}

var csiLetters = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
}

var csiTilde = map[byte]tcell.Key{
	'1': tcell.KeyHome,
	'3': tcell.KeyDelete,
	'4': tcell.KeyEnd,
	'5': tcell.KeyPgUp,
	'6': tcell.KeyPgDn,
	'7': tcell.KeyHome,
	'8': tcell.KeyEnd,
}

// escape decodes what follows an ESC byte. It returns nil for a complete
// sequence that maps to no key. A byte that cannot continue a sequence is
// kept for the next ReadKey.
func (d *Decoder) escape() (*tcell.EventKey, error) {
	esc := tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)
	c, ok, err := d.read(d.EscTimeout)
	if err != nil {
		return nil, err
	}
	if !ok {
		return esc, nil
	}
	switch c {
	case '[':
		return d.csi()
	case 'O':
		c2, ok, err := d.read(d.EscTimeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			d.unread('O')
			return esc, nil
		}
		if k, ok := csiLetters[c2]; ok {
			return tcell.NewEventKey(k, 0, tcell.ModNone), nil
		}
		return nil, nil
	}
	d.unread(c)
	return esc, nil
}

// csi reads a control sequence up to its final byte (0x40-0x7e).
func (d *Decoder) csi() (*tcell.EventKey, error) {
	var params []byte
	for {
		c, ok, err := d.read(d.EscTimeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			return tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), nil
		}
		if c >= 0x40 && c <= 0x7e {
			return csiKey(params, c), nil
		}
		if c < 0x20 || c > 0x3f {
			// Not part of a control sequence.
			d.unread(c)
			return tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), nil
		}
		params = append(params, c)
	}
}

// csiKey maps a finished sequence to a key. The second parameter of
// "1;5A"-style sequences carries the xterm modifier code.
func csiKey(params []byte, final byte) *tcell.EventKey {
	fields := strings.Split(string(params), ";")
	mod := tcell.ModNone
	if len(fields) == 2 {
		mod = xtermMod(fields[1])
	}
	if k, ok := csiLetters[final]; ok && (len(params) == 0 || fields[0] == "1") {
		return tcell.NewEventKey(k, 0, mod)
	}
	if final == '~' && len(fields[0]) == 1 {
		if k, ok := csiTilde[fields[0][0]]; ok {
			return tcell.NewEventKey(k, 0, mod)
		}
	}
	return nil
}

func xtermMod(s string) tcell.ModMask {
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 {
		return tcell.ModNone
	}
	n--
	var m tcell.ModMask
	if n&1 != 0 {
		m |= tcell.ModShift
	}
	if n&2 != 0 {
		m |= tcell.ModAlt
	}
	if n&4 != 0 {
		m |= tcell.ModCtrl
	}
	if n&8 != 0 {
		m |= tcell.ModMeta
	}
	return m
}
