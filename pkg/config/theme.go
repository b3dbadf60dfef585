package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/syntax"
)

// Theme holds the colors used by the screen compositor.
type Theme struct {
	Name string

	Foreground tcell.Color
	Background tcell.Color

	// Status bar; drawn inverted over these colors.
	StatusForeground tcell.Color
	StatusBackground tcell.Color

	// Buffer tab bar.
	TabActiveForeground tcell.Color
	TabActiveBackground tcell.Color
	TabForeground       tcell.Color
	TabBackground       tcell.Color

	// Syntax maps highlight classes to foreground colors. Missing classes
	// use Foreground.
	Syntax map[syntax.Class]tcell.Color
}

// ClassColor returns the foreground color for a highlight class.
func (t Theme) ClassColor(c syntax.Class) tcell.Color {
	if col, ok := t.Syntax[c]; ok {
		return col
	}
	return t.Foreground
}

// DefaultTheme is the built-in dark theme with the editor's own palette.
func DefaultTheme() Theme {
	fg := tcell.NewRGBColor(134, 214, 247)
	bg := tcell.NewRGBColor(0, 0, 0)
	grey := tcell.NewRGBColor(65, 101, 105)
	return Theme{
		Name:       "acorn",
		Foreground: fg,
		Background: bg,

		StatusForeground: fg,
		StatusBackground: bg,

		TabActiveForeground: bg,
		TabActiveBackground: fg,
		TabForeground:       fg,
		TabBackground:       grey,

		Syntax: map[syntax.Class]tcell.Color{
			syntax.Normal:       fg,
			syntax.Comment:      grey,
			syntax.BlockComment: grey,
			syntax.Keyword1:     tcell.NewRGBColor(214, 181, 101),
			syntax.Keyword2:     tcell.NewRGBColor(27, 183, 171),
			syntax.String:       tcell.NewRGBColor(220, 87, 107),
			syntax.Number:       tcell.NewRGBColor(240, 141, 74),
			syntax.Match:        tcell.NewRGBColor(134, 214, 247),
		},
	}
}

// TerminalTheme uses the terminal's default colors and ANSI palette so the
// editor follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		Name:       "terminal",
		Foreground: tcell.ColorDefault,
		Background: tcell.ColorDefault,

		StatusForeground: tcell.ColorDefault,
		StatusBackground: tcell.ColorDefault,

		TabActiveForeground: tcell.ColorBlack,
		TabActiveBackground: tcell.ColorSilver,
		TabForeground:       tcell.ColorDefault,
		TabBackground:       tcell.ColorGray,

		Syntax: map[syntax.Class]tcell.Color{
			syntax.Comment:      tcell.ColorGray,
			syntax.BlockComment: tcell.ColorGray,
			syntax.Keyword1:     tcell.ColorYellow,
			syntax.Keyword2:     tcell.ColorGreen,
			syntax.String:       tcell.ColorRed,
			syntax.Number:       tcell.ColorFuchsia,
			syntax.Match:        tcell.ColorBlue,
		},
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"acorn":    DefaultTheme(),
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
