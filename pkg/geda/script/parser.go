// Package script parses and compiles declarative footprint scripts.
//
// A script is a sequence of footprint blocks, each a list of builder
// statements (pads, pins, silkscreen primitives, mark and text placement).
// Lengths are mils unless suffixed with mm. Example:
//
//	footprint "USB3130" {
//	  description "Through-hole USB micro-B connector"
//	  pins 5 x=0 y=0 dx=0.65mm dy=(1mm, -1mm) hole=0.4mm diameter=0.8mm
//	  mark 3
//	}
package script

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/spf13/afero"
)

// Parser parses footprint script files into an AST.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new footprint script parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a script from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a script from a file path on the given filesystem.
func (p *Parser) ParseFile(fs afero.Fs, filename string) (*File, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
