package lexer

import (
	"fmt"

	"github.com/takoeight0821/kame/token"
)

// Lex scans a whole turtle script. On the first text that matches no token
// pattern it stops and returns nil tokens: a script lexes completely or not
// at all. On success the token list always ends with an EOF token.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
		line:    1,
		column:  1,
	}

	for !lexer.isAtEnd() {
		if err := lexer.scanToken(); err != nil {
			return nil, err
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Pos: lexer.current, Line: lexer.line, Column: lexer.column})

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
	line    int // line of current position, 1-based
	column  int // column of current position, 1-based

	startLine   int // line of current lexeme
	startColumn int // column of current lexeme
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}

	return l.source[l.current]
}

func (l lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}

	return l.source[l.current+1]
}

func (l *lexer) advance() byte {
	char := l.source[l.current]
	l.current++
	if char == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	return char
}

func (l *lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Pos: l.start, Line: l.startLine, Column: l.startColumn})
}

// UnrecognizedTextError is returned when a span of input matches no token
// pattern. Text is the whole offending span, not just its first character.
type UnrecognizedTextError struct {
	Pos    int
	Line   int
	Column int
	Text   string
}

func (e UnrecognizedTextError) Error() string {
	return fmt.Sprintf("at %d:%d: unrecognized text `%s`", e.Line, e.Column, e.Text)
}

func (l *lexer) scanToken() error {
	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	switch char := l.peek(); {
	case char == ' ' || char == '\t' || char == '\r' || char == '\n':
		l.advance()

		return nil
	case char == ',':
		l.advance()
		l.addToken(token.COMMA)

		return nil
	case isDigit(char) || (char == '-' && isDigit(l.peekNext())):
		l.number()

		return nil
	case isAlpha(char):
		return l.word()
	default:
		return l.unrecognized()
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// number consumes an optionally signed integer or decimal literal. The
// fractional part is taken only when a digit follows the dot, so `5.`
// consumes `5` and leaves the dot for the next scan. Digits are kept
// verbatim; conversion happens in the parser.
func (l *lexer) number() {
	if l.peek() == '-' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	l.addToken(token.NUMBER)
}

// word consumes a maximal alphanumeric run and matches it against the keyword
// table. Matching the full run keeps `turnleft` from lexing as `turn` +
// garbage, and makes `penup5` an error instead of `penup` + `5`.
func (l *lexer) word() error {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	if kind, ok := token.Keywords[text]; ok {
		l.addToken(kind)

		return nil
	}

	return UnrecognizedTextError{Pos: l.start, Line: l.startLine, Column: l.startColumn, Text: text}
}

// unrecognized reports everything up to the next whitespace or comma as one
// offending span.
func (l *lexer) unrecognized() error {
	for !l.isAtEnd() && !isSeparator(l.peek()) {
		l.advance()
	}

	return UnrecognizedTextError{Pos: l.start, Line: l.startLine, Column: l.startColumn, Text: l.source[l.start:l.current]}
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ','
}
