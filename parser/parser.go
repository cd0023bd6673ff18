package parser

import (
	"fmt"
	"strconv"

	"github.com/takoeight0821/kame/ast"
	"github.com/takoeight0821/kame/token"
	"github.com/takoeight0821/kame/utils"
)

type Parser struct {
	tokens  []token.Token
	current int
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens, 0}
}

// Parse reads commands until end of input. The first rule violation aborts
// the whole parse and returns a nil program: a script parses completely or
// not at all.
func (p *Parser) Parse() (ast.Program, error) {
	program := ast.Program{}
	for !p.IsAtEnd() {
		command, err := p.command()
		if err != nil {
			return nil, err
		}
		program = append(program, command)
	}

	return program, nil
}

// command = noParam | turn | move | direction NUMBER | go NUMBER NUMBER
//         | gox NUMBER | goy NUMBER | penwidth NUMBER
//         | pencolor NUMBER "," NUMBER "," NUMBER ;
// noParam = "reset" | "penup" | "pendown" | "pushloc" | "poploc" | "pushrot" | "poprot" ;
// turn = ("turn" | "turnleft" | "turnright") NUMBER? ;
// move = ("forward" | "backward") NUMBER? ;
func (p *Parser) command() (ast.Command, error) {
	//exhaustive:ignore
	switch tok := p.advance(); tok.Kind {
	case token.RESET:
		return &ast.Reset{Keyword: tok}, nil
	case token.PENUP:
		return &ast.PenUp{Keyword: tok}, nil
	case token.PENDOWN:
		return &ast.PenDown{Keyword: tok}, nil
	case token.PUSHLOC:
		return &ast.PushLoc{Keyword: tok}, nil
	case token.POPLOC:
		return &ast.PopLoc{Keyword: tok}, nil
	case token.PUSHROT:
		return &ast.PushRot{Keyword: tok}, nil
	case token.POPROT:
		return &ast.PopRot{Keyword: tok}, nil
	case token.TURN, token.TURNRIGHT:
		angle, err := p.optionalArg(90, false)
		if err != nil {
			return nil, err
		}

		return &ast.Turn{Keyword: tok, Angle: angle}, nil
	case token.TURNLEFT:
		angle, err := p.optionalArg(-90, true)
		if err != nil {
			return nil, err
		}

		return &ast.Turn{Keyword: tok, Angle: angle}, nil
	case token.FORWARD:
		distance, err := p.optionalArg(1, false)
		if err != nil {
			return nil, err
		}

		return &ast.Move{Keyword: tok, Distance: distance}, nil
	case token.BACKWARD:
		distance, err := p.optionalArg(-1, true)
		if err != nil {
			return nil, err
		}

		return &ast.Move{Keyword: tok, Distance: distance}, nil
	case token.DIRECTION:
		angle, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.Direction{Keyword: tok, Angle: angle}, nil
	case token.GO:
		x, err := p.requiredArg()
		if err != nil {
			return nil, err
		}
		y, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.Go{Keyword: tok, X: x, Y: y}, nil
	case token.GOX:
		x, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.GoX{Keyword: tok, X: x}, nil
	case token.GOY:
		y, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.GoY{Keyword: tok, Y: y}, nil
	case token.PENWIDTH:
		width, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.PenWidth{Keyword: tok, Width: width}, nil
	case token.PENCOLOR:
		red, err := p.requiredArg()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COMMA); err != nil {
			return nil, err
		}
		green, err := p.requiredArg()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COMMA); err != nil {
			return nil, err
		}
		blue, err := p.requiredArg()
		if err != nil {
			return nil, err
		}

		return &ast.PenColor{Keyword: tok, R: red, G: green, B: blue}, nil
	default:
		return nil, unexpectedToken(tok, "command")
	}
}

// optionalArg consumes a number if one immediately follows the keyword and
// falls back to def otherwise. Commands that move against the axis
// (`turnleft`, `backward`) negate a value the script supplies, so the sign
// convention stays with the keyword, not the argument.
func (p *Parser) optionalArg(def float32, negate bool) (float32, error) {
	if !p.match(token.NUMBER) {
		return def, nil
	}

	value, err := p.number(p.advance())
	if err != nil {
		return 0, err
	}
	if negate {
		value = -value
	}

	return value, nil
}

// requiredArg consumes exactly one number token.
func (p *Parser) requiredArg() (float32, error) {
	if !p.match(token.NUMBER) {
		return 0, unexpectedToken(p.peek(), "number")
	}

	return p.number(p.advance())
}

// number converts a NUMBER token's verbatim text to float32. The lexical
// grammar admits digit runs float32 cannot hold, so conversion failure is a
// parse error rather than a silent clamp.
func (p *Parser) number(tok token.Token) (float32, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 32)
	if err != nil {
		return 0, utils.PosError{Where: tok, Err: InvalidNumberError{Err: err}}
	}

	return float32(value), nil
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) consume(kind token.Kind) (token.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}

	return p.peek(), unexpectedToken(p.peek(), kind.String())
}

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	var msg string
	if len(e.Expected) >= 1 {
		msg = e.Expected[0]
	}

	for _, ex := range e.Expected[1:] {
		msg = msg + ", " + ex
	}

	return "unexpected token: expected " + msg
}

// InvalidNumberError reports numeric text that lexed but does not convert to
// a finite float32.
type InvalidNumberError struct {
	Err error
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number: %s", e.Err)
}

func (e InvalidNumberError) Unwrap() error {
	return e.Err
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.PosError{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}
