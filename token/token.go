package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Literals and separators.
	NUMBER
	COMMA

	// Command keywords.
	RESET
	PENUP
	PENDOWN
	TURN
	TURNLEFT
	TURNRIGHT
	DIRECTION
	FORWARD
	BACKWARD
	GO
	GOX
	GOY
	PENWIDTH
	PENCOLOR
	PUSHLOC
	POPLOC
	PUSHROT
	POPROT
)

// Keywords maps each command word to its kind. Lookup is exact and
// case-sensitive: a word either is one of these or it is not a token at all.
var Keywords = map[string]Kind{
	"reset":     RESET,
	"penup":     PENUP,
	"pendown":   PENDOWN,
	"turn":      TURN,
	"turnleft":  TURNLEFT,
	"turnright": TURNRIGHT,
	"direction": DIRECTION,
	"forward":   FORWARD,
	"backward":  BACKWARD,
	"go":        GO,
	"gox":       GOX,
	"goy":       GOY,
	"penwidth":  PENWIDTH,
	"pencolor":  PENCOLOR,
	"pushloc":   PUSHLOC,
	"poploc":    POPLOC,
	"pushrot":   PUSHROT,
	"poprot":    POPROT,
}

// Token is one lexical unit of a turtle script. Lexeme is the verbatim source
// text. Pos is the byte offset of the lexeme's first character; Line and
// Column are 1-based.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    int
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q", t.Kind, t.Lexeme)
}
