package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the lexical structure for footprint scripts.
// Statements are keyword-led; attribute keys are plain identifiers, so
// keywords must be matched before Ident.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords
	{Name: "KwFootprint", Pattern: `\bfootprint\b`},
	{Name: "KwDescription", Pattern: `\bdescription\b`},
	{Name: "KwText", Pattern: `\btext\b`},
	{Name: "KwPads", Pattern: `\bpads\b`},
	{Name: "KwPad", Pattern: `\bpad\b`},
	{Name: "KwPins", Pattern: `\bpins\b`},
	{Name: "KwPin", Pattern: `\bpin\b`},
	{Name: "KwPolyline", Pattern: `\bpolyline\b`},
	{Name: "KwLine", Pattern: `\bline\b`},
	{Name: "KwArc", Pattern: `\barc\b`},
	{Name: "KwMark", Pattern: `\bmark\b`},

	// Boolean literals
	{Name: "KwTrue", Pattern: `\btrue\b`},
	{Name: "KwFalse", Pattern: `\bfalse\b`},

	// Length unit suffix (lengths are mils unless suffixed with mm)
	{Name: "KwMM", Pattern: `\bmm\b`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},

	// Identifiers (attribute keys)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "Eq", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
})
