package syntax

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Flags toggles optional highlight rules of a Definition.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// SecondaryMarker suffixes a keyword that belongs to the Keyword2 class.
const SecondaryMarker = "|"

// Definition describes how to highlight one file type. Definitions are
// shared, read-only configuration; buffers only hold references to them.
type Definition struct {
	// FileType is shown in the status bar.
	FileType string
	// FileMatch entries starting with '.' are compared with the file
	// extension; any other entry matches as a substring of the filename.
	FileMatch []string
	// Languages are go-enry language names used when FileMatch misses.
	Languages []string
	Keywords  []string

	LineComment string
	BlockStart  string
	BlockEnd    string
	Flags       Flags
}

var C = &Definition{
	FileType:  "c",
	FileMatch: []string{".c", ".h", ".cpp", ".cc", ".hpp"},
	Languages: []string{"C", "C++"},
	Keywords: []string{
		"auto", "break", "case", "const", "continue", "default", "do", "else",
		"enum", "extern", "for", "goto", "if", "register", "return", "sizeof",
		"static", "struct", "switch", "typedef", "union", "volatile", "while",

		"char|", "double|", "float|", "int|", "long|", "short|", "signed|", "unsigned|", "void|",
	},
	LineComment: "//",
	BlockStart:  "/*",
	BlockEnd:    "*/",
	Flags:       HighlightNumbers | HighlightStrings,
}

var Python = &Definition{
	FileType:  "python",
	FileMatch: []string{".py"},
	Languages: []string{"Python"},
	Keywords: []string{
		"and", "as", "assert", "async", "await", "break",
		"class", "continue", "def", "del", "elif", "else", "except", "finally", "for",
		"from", "global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
		"or", "pass", "raise", "return", "try", "while", "with", "yield",

		"None|", "True|", "False|",
	},
	LineComment: "#",
	Flags:       HighlightNumbers | HighlightStrings,
}

var Go = &Definition{
	FileType:  "go",
	FileMatch: []string{".go"},
	Languages: []string{"Go"},
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type", "var",

		"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|", "int16|",
		"int32|", "int64|", "rune|", "string|", "uint|", "uint8|", "uint16|", "uint32|",
		"uint64|", "uintptr|", "any|", "nil|", "true|", "false|", "iota|",
	},
	LineComment: "//",
	BlockStart:  "/*",
	BlockEnd:    "*/",
	Flags:       HighlightNumbers | HighlightStrings,
}

var JavaScript = &Definition{
	FileType:  "javascript",
	FileMatch: []string{".js", ".mjs", ".ts"},
	Languages: []string{"JavaScript", "TypeScript"},
	Keywords: []string{
		"break", "case", "catch", "class", "const", "continue", "debugger", "default",
		"delete", "do", "else", "export", "extends", "finally", "for", "function", "if",
		"import", "in", "instanceof", "let", "new", "return", "super", "switch", "this",
		"throw", "try", "typeof", "var", "void", "while", "with", "yield",

		"null|", "undefined|", "true|", "false|", "NaN|",
	},
	LineComment: "//",
	BlockStart:  "/*",
	BlockEnd:    "*/",
	Flags:       HighlightNumbers | HighlightStrings,
}

var Shell = &Definition{
	FileType:  "sh",
	FileMatch: []string{".sh", ".bash", ".zsh"},
	Languages: []string{"Shell"},
	Keywords: []string{
		"if", "then", "else", "elif", "fi", "case", "esac", "for", "while", "until",
		"do", "done", "in", "function", "return", "select",

		"echo|", "export|", "local|", "readonly|", "set|", "unset|", "shift|", "exit|",
	},
	LineComment: "#",
	Flags:       HighlightNumbers | HighlightStrings,
}

// Builtin is the process-wide definition table consulted by Select.
var Builtin = []*Definition{C, Python, Go, JavaScript, Shell}

// Select returns the Builtin definition for filename, or nil. head is the
// beginning of the file content and is only used for shebang detection.
func Select(filename string, head []byte) *Definition {
	return SelectFrom(Builtin, filename, head)
}

// SelectFrom matches filename against the FileMatch patterns of defs in
// order. When no pattern matches, the language reported by go-enry for the
// filename, extension or shebang line is looked up in Languages.
func SelectFrom(defs []*Definition, filename string, head []byte) *Definition {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for _, d := range defs {
		for _, m := range d.FileMatch {
			isExt := strings.HasPrefix(m, ".")
			if (isExt && ext == m) || (!isExt && strings.Contains(filename, m)) {
				return d
			}
		}
	}
	lang := DetectLanguage(filename, head)
	if lang == "" {
		return nil
	}
	for _, d := range defs {
		for _, l := range d.Languages {
			if strings.EqualFold(l, lang) {
				return d
			}
		}
	}
	return nil
}

// DetectLanguage asks go-enry for the language of a file; "" means unknown.
func DetectLanguage(filename string, head []byte) string {
	base := filepath.Base(filename)
	if lang, _ := enry.GetLanguageByFilename(base); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByExtension(base); lang != "" {
		return lang
	}
	if len(head) > 0 {
		if lang, _ := enry.GetLanguageByShebang(head); lang != "" {
			return lang
		}
	}
	return ""
}
