package config

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"example.com/acorn/pkg/syntax"
)

// chromaClasses maps highlight classes onto the chroma token types whose
// style entries color them.
var chromaClasses = map[syntax.Class]chroma.TokenType{
	syntax.Comment:      chroma.CommentSingle,
	syntax.BlockComment: chroma.CommentMultiline,
	syntax.Keyword1:     chroma.Keyword,
	syntax.Keyword2:     chroma.KeywordType,
	syntax.String:       chroma.LiteralString,
	syntax.Number:       chroma.LiteralNumber,
}

// ChromaStyles lists the names of the registered chroma styles.
func ChromaStyles() []string { return styles.Names() }

// ChromaTheme builds a Theme from the named chroma style. It reports false
// when no such style is registered.
func ChromaTheme(name string) (Theme, bool) {
	style, ok := styles.Registry[name]
	if !ok || style == nil {
		return Theme{}, false
	}
	t := DefaultTheme()
	t.Name = name

	bg := style.Get(chroma.Background)
	t.Background = chromaColor(bg.Background, t.Background)
	t.Foreground = chromaColor(style.Get(chroma.Text).Colour, chromaColor(bg.Colour, t.Foreground))

	t.StatusForeground = t.Foreground
	t.StatusBackground = t.Background
	t.TabActiveForeground = t.Background
	t.TabActiveBackground = t.Foreground

	comment := chromaColor(style.Get(chroma.Comment).Colour, t.Foreground)
	t.TabForeground = t.Foreground
	t.TabBackground = chromaColor(style.Get(chroma.LineHighlight).Background, comment)

	t.Syntax = map[syntax.Class]tcell.Color{syntax.Normal: t.Foreground}
	for class, tok := range chromaClasses {
		t.Syntax[class] = chromaColor(style.Get(tok).Colour, t.Foreground)
	}
	t.Syntax[syntax.Match] = chromaColor(style.Get(chroma.GenericInserted).Colour, t.Syntax[syntax.Keyword1])
	return t, true
}

func chromaColor(c chroma.Colour, fallback tcell.Color) tcell.Color {
	if !c.IsSet() {
		return fallback
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
