// Package driver wires the lexer and parser together for callers that start
// from source text.
package driver

import (
	"fmt"

	"github.com/takoeight0821/kame/ast"
	"github.com/takoeight0821/kame/lexer"
	"github.com/takoeight0821/kame/parser"
	"github.com/takoeight0821/kame/scene"
	"github.com/takoeight0821/kame/turtle"
)

// ParseSource turns a whole script into its command list. Either stage
// failing aborts the pipeline with nothing produced.
func ParseSource(source string) (ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return program, nil
}

// BuildSource parses a script and replays it on a fresh turtle.
func BuildSource(source string) (*scene.Scene, turtle.Flags, error) {
	program, err := ParseSource(source)
	if err != nil {
		return nil, 0, err
	}

	sc, flags := turtle.Run(program)

	return sc, flags, nil
}
