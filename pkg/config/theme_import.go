package config

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/syntax"
)

// ImportTheme reads a theme file in a known format and converts it to Theme.
// Supported:
// - Base16 YAML (keys base00..base0F)
// - Alacritty YAML (colors.primary/normal/bright)
func ImportTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	content := string(data)
	lower := strings.ToLower(content)
	var t Theme
	switch {
	case strings.Contains(lower, "base00:"):
		t = importBase16(content)
	case strings.Contains(lower, "colors:"):
		t = importAlacritty(content)
	default:
		return Theme{}, errors.New("unrecognized theme format: " + filepath.Base(path))
	}
	t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return t, nil
}

var reKVHex = regexp.MustCompile(`^\s*([A-Za-z0-9_.-]+)\s*:\s*['"]?([#0-9a-fA-Fx]{6,8})['"]?\s*$`)

func parseHexToColor(v string, fallback tcell.Color) tcell.Color {
	v = strings.Trim(strings.TrimSpace(v), `'"`)
	if strings.HasPrefix(v, "#") {
		v = v[1:]
	} else if strings.HasPrefix(strings.ToLower(v), "0x") {
		v = v[2:]
	}
	if len(v) != 6 {
		return fallback
	}
	if _, err := strconv.ParseInt(v, 16, 32); err != nil {
		return fallback
	}
	return ParseColor("#"+strings.ToLower(v), fallback)
}

// withPalette fills the derived roles of t from its base colors.
func withPalette(t Theme, comment, keyword, typ, str, num, match tcell.Color) Theme {
	t.StatusForeground = t.Foreground
	t.StatusBackground = t.Background
	t.TabActiveForeground = t.Background
	t.TabActiveBackground = t.Foreground
	t.TabForeground = t.Foreground
	t.Syntax = map[syntax.Class]tcell.Color{
		syntax.Normal:       t.Foreground,
		syntax.Comment:      comment,
		syntax.BlockComment: comment,
		syntax.Keyword1:     keyword,
		syntax.Keyword2:     typ,
		syntax.String:       str,
		syntax.Number:       num,
		syntax.Match:        match,
	}
	return t
}

func importBase16(s string) Theme {
	bases := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		m := reKVHex.FindStringSubmatch(scanner.Text())
		if len(m) == 3 && strings.HasPrefix(strings.ToLower(m[1]), "base") {
			bases[strings.ToLower(m[1])] = m[2]
		}
	}
	t := DefaultTheme()
	def := t.Syntax
	get := func(k string, fb tcell.Color) tcell.Color { return parseHexToColor(bases[k], fb) }

	t.Background = get("base00", t.Background)
	t.Foreground = get("base05", t.Foreground)
	t = withPalette(t,
		get("base03", def[syntax.Comment]),
		get("base0e", def[syntax.Keyword1]),
		get("base0a", def[syntax.Keyword2]),
		get("base0b", def[syntax.String]),
		get("base09", def[syntax.Number]),
		get("base0d", def[syntax.Match]),
	)
	t.TabBackground = get("base01", get("base02", t.TabBackground))
	return t
}

// importAlacritty parses an Alacritty colors YAML fragment.
func importAlacritty(s string) Theme {
	// Light YAML walker based on indentation and key:value lines.
	type entry struct {
		indent int
		key    string
	}
	var stack []entry
	kv := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		if m := reKVHex.FindStringSubmatch(line); len(m) == 3 {
			keys := make([]string, 0, len(stack)+1)
			for _, e := range stack {
				keys = append(keys, e.key)
			}
			keys = append(keys, strings.ToLower(m[1]))
			kv[strings.Join(keys, ".")] = m[2]
			continue
		}
		if i := strings.Index(line, ":"); i >= 0 && i == len(line)-1 {
			stack = append(stack, entry{indent: indent, key: strings.ToLower(strings.TrimSpace(line[:i]))})
		}
	}

	t := DefaultTheme()
	def := t.Syntax
	get := func(p string, fb tcell.Color) tcell.Color {
		if v, ok := kv[p]; ok {
			return parseHexToColor(v, fb)
		}
		return fb
	}

	t.Background = get("colors.primary.background", t.Background)
	t.Foreground = get("colors.primary.foreground", t.Foreground)
	comment := get("colors.bright.black", get("colors.normal.black", def[syntax.Comment]))
	t = withPalette(t,
		comment,
		get("colors.normal.yellow", def[syntax.Keyword1]),
		get("colors.normal.green", def[syntax.Keyword2]),
		get("colors.normal.red", def[syntax.String]),
		get("colors.normal.magenta", def[syntax.Number]),
		get("colors.normal.blue", def[syntax.Match]),
	)
	t.TabBackground = comment
	return t
}
