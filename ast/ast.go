package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/kame/token"
)

// Command is one parsed turtle instruction. The set of implementations is
// closed: every command the parser can produce is defined in this package,
// fully populated at construction time and never mutated afterwards.
type Command interface {
	fmt.Stringer
	// Base returns the keyword token the command was parsed from.
	Base() token.Token
	command()
}

// Program is the command list produced by one parse, in source order. The
// interpreter replays it front to back; nothing in it survives a failed
// parse.
type Program []Command

type Reset struct {
	Keyword token.Token
}

func (r Reset) String() string {
	return parenthesize("reset")
}

func (r *Reset) Base() token.Token {
	return r.Keyword
}

func (r *Reset) command() {}

var _ Command = &Reset{}

type PenUp struct {
	Keyword token.Token
}

func (p PenUp) String() string {
	return parenthesize("penup")
}

func (p *PenUp) Base() token.Token {
	return p.Keyword
}

func (p *PenUp) command() {}

var _ Command = &PenUp{}

type PenDown struct {
	Keyword token.Token
}

func (p PenDown) String() string {
	return parenthesize("pendown")
}

func (p *PenDown) Base() token.Token {
	return p.Keyword
}

func (p *PenDown) command() {}

var _ Command = &PenDown{}

// Turn rotates the heading by Angle degrees, positive clockwise. Both
// `turnleft` and `turnright` parse to this command; the left variant arrives
// with its angle already negated.
type Turn struct {
	Keyword token.Token
	Angle   float32
}

func (t Turn) String() string {
	return parenthesize("turn", t.Angle)
}

func (t *Turn) Base() token.Token {
	return t.Keyword
}

func (t *Turn) command() {}

var _ Command = &Turn{}

// Direction sets the heading to an absolute angle in degrees.
type Direction struct {
	Keyword token.Token
	Angle   float32
}

func (d Direction) String() string {
	return parenthesize("direction", d.Angle)
}

func (d *Direction) Base() token.Token {
	return d.Keyword
}

func (d *Direction) command() {}

var _ Command = &Direction{}

// Move advances the turtle along its heading. `backward` parses to a Move
// with its distance negated, so the interpreter only ever moves forward by a
// signed amount.
type Move struct {
	Keyword  token.Token
	Distance float32
}

func (m Move) String() string {
	return parenthesize("move", m.Distance)
}

func (m *Move) Base() token.Token {
	return m.Keyword
}

func (m *Move) command() {}

var _ Command = &Move{}

// Go teleports to an absolute position without drawing.
type Go struct {
	Keyword token.Token
	X       float32
	Y       float32
}

func (g Go) String() string {
	return parenthesize("go", g.X, g.Y)
}

func (g *Go) Base() token.Token {
	return g.Keyword
}

func (g *Go) command() {}

var _ Command = &Go{}

type GoX struct {
	Keyword token.Token
	X       float32
}

func (g GoX) String() string {
	return parenthesize("gox", g.X)
}

func (g *GoX) Base() token.Token {
	return g.Keyword
}

func (g *GoX) command() {}

var _ Command = &GoX{}

type GoY struct {
	Keyword token.Token
	Y       float32
}

func (g GoY) String() string {
	return parenthesize("goy", g.Y)
}

func (g *GoY) Base() token.Token {
	return g.Keyword
}

func (g *GoY) command() {}

var _ Command = &GoY{}

type PenWidth struct {
	Keyword token.Token
	Width   float32
}

func (p PenWidth) String() string {
	return parenthesize("penwidth", p.Width)
}

func (p *PenWidth) Base() token.Token {
	return p.Keyword
}

func (p *PenWidth) command() {}

var _ Command = &PenWidth{}

type PenColor struct {
	Keyword token.Token
	R       float32
	G       float32
	B       float32
}

func (p PenColor) String() string {
	return parenthesize("pencolor", p.R, p.G, p.B)
}

func (p *PenColor) Base() token.Token {
	return p.Keyword
}

func (p *PenColor) command() {}

var _ Command = &PenColor{}

type PushLoc struct {
	Keyword token.Token
}

func (p PushLoc) String() string {
	return parenthesize("pushloc")
}

func (p *PushLoc) Base() token.Token {
	return p.Keyword
}

func (p *PushLoc) command() {}

var _ Command = &PushLoc{}

type PopLoc struct {
	Keyword token.Token
}

func (p PopLoc) String() string {
	return parenthesize("poploc")
}

func (p *PopLoc) Base() token.Token {
	return p.Keyword
}

func (p *PopLoc) command() {}

var _ Command = &PopLoc{}

type PushRot struct {
	Keyword token.Token
}

func (p PushRot) String() string {
	return parenthesize("pushrot")
}

func (p *PushRot) Base() token.Token {
	return p.Keyword
}

func (p *PushRot) command() {}

var _ Command = &PushRot{}

type PopRot struct {
	Keyword token.Token
}

func (p PopRot) String() string {
	return parenthesize("poprot")
}

func (p *PopRot) Base() token.Token {
	return p.Keyword
}

func (p *PopRot) command() {}

var _ Command = &PopRot{}

// parenthesize renders a command as an s-expression, e.g. `(turn 90)`.
func parenthesize(head string, args ...float32) string {
	var builder strings.Builder
	builder.WriteString("(")
	builder.WriteString(head)
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(FormatNumber(arg))
	}
	builder.WriteString(")")

	return builder.String()
}

// FormatNumber renders a parameter the shortest way that round-trips through
// float32, so `(turn 90)` prints without a decimal point.
func FormatNumber(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
