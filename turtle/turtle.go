// Package turtle replays parsed command lists into a scene.
package turtle

import (
	"math"
	"strings"

	"github.com/takoeight0821/kame/ast"
	"github.com/takoeight0821/kame/scene"
)

// hairlineWidth is the minimum width actually drawn. A zero pen width still
// leaves a visible trail.
const hairlineWidth = 0.0333

// Flags records conditions the machine tolerated while replaying a program.
// A flag is a warning, not an error: the scene is still valid.
type Flags uint16

const (
	FlagUnhandledCommand Flags = 1 << iota
	FlagPopLocEmptyStack
	FlagPopRotEmptyStack
)

// flagNames follows the order of the Flags constants.
var flagNames = []string{
	"unhandled command",
	"poploc on empty stack",
	"poprot on empty stack",
}

func (f Flags) String() string {
	var names []string
	for bit, name := range flagNames {
		if f&(1<<bit) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, ", ")
}

// Machine replays commands into a scene, tracking the turtle's position,
// heading, and pen between calls. The pen starts up: a fresh turtle moves
// without drawing until the script says pendown.
type Machine struct {
	sc    *scene.Scene
	flags Flags

	x, y     float32
	heading  float32 // degrees, normalized to [0, 360)
	penDown  bool
	penWidth float32
	penColor scene.Color
	locs     []scene.Point
	rots     []float32
	visited  scene.Rect
}

func New() *Machine {
	m := &Machine{}
	m.Reset()

	return m
}

// Reset restores the initial turtle state and discards the scene built so
// far, exactly as the reset command does.
func (m *Machine) Reset() {
	*m = Machine{
		sc:       scene.New(),
		penWidth: 1,
	}
}

// Run replays program in order and reframes the scene's view box. It may be
// called repeatedly; state carries over between calls, which is what an
// interactive session wants.
func (m *Machine) Run(program ast.Program) {
	for _, command := range program {
		m.exec(command)
	}
	m.sc.ViewBox = m.sc.Bounds
}

func (m *Machine) exec(command ast.Command) {
	switch c := command.(type) {
	case *ast.Reset:
		m.Reset()
	case *ast.PenUp:
		m.penDown = false
	case *ast.PenDown:
		m.penDown = true
	case *ast.Turn:
		m.heading = normalize(m.heading + c.Angle)
	case *ast.Direction:
		m.heading = normalize(c.Angle)
	case *ast.Move:
		m.move(c.Distance)
	case *ast.Go:
		m.x, m.y = c.X, c.Y
		m.visit(c.X, c.Y)
	case *ast.GoX:
		m.x = c.X
		m.visit(c.X, m.y)
	case *ast.GoY:
		m.y = c.Y
		m.visit(m.x, c.Y)
	case *ast.PenWidth:
		m.penWidth = c.Width
	case *ast.PenColor:
		m.penColor = scene.Color{R: c.R, G: c.G, B: c.B}
	case *ast.PushLoc:
		m.locs = append(m.locs, scene.Point{X: m.x, Y: m.y})
	case *ast.PopLoc:
		if n := len(m.locs); n > 0 {
			loc := m.locs[n-1]
			m.locs = m.locs[:n-1]
			m.x, m.y = loc.X, loc.Y
		} else {
			m.flags |= FlagPopLocEmptyStack
		}
	case *ast.PushRot:
		m.rots = append(m.rots, m.heading)
	case *ast.PopRot:
		if n := len(m.rots); n > 0 {
			m.heading = m.rots[n-1]
			m.rots = m.rots[:n-1]
		} else {
			m.flags |= FlagPopRotEmptyStack
		}
	default:
		m.flags |= FlagUnhandledCommand
	}
}

// move advances the turtle along its heading, drawing if the pen is down.
// Heading 0 points along positive X; Y grows downward, so positive angles
// turn clockwise on screen.
func (m *Machine) move(distance float32) {
	sin, cos := math.Sincos(float64(m.heading) * math.Pi / 180)
	toX := m.x + distance*float32(cos)
	toY := m.y + distance*float32(sin)

	if m.penDown {
		m.sc.Add(scene.Stroke{
			A:     scene.Point{X: m.x, Y: m.y},
			B:     scene.Point{X: toX, Y: toY},
			Width: max(m.penWidth, hairlineWidth),
			Color: m.penColor,
		})
		m.visit(toX, toY)
	}

	m.x = toX
	m.y = toY
}

// visit widens the visited region and folds it into the scene bounds. Only
// pen-down moves and teleports count; wandering with the pen up does not
// grow the frame.
func (m *Machine) visit(x, y float32) {
	m.visited = m.visited.UnionPoint(scene.Point{X: x, Y: y})
	m.sc.Bounds = m.sc.Bounds.Union(m.visited)
}

// normalize maps any angle into [0, 360), including negative ones.
func normalize(deg float32) float32 {
	return float32(math.Mod(math.Mod(float64(deg), 360)+360, 360))
}

// Position returns the turtle's current location.
func (m *Machine) Position() (x, y float32) {
	return m.x, m.y
}

// Heading returns the current direction in degrees, in [0, 360).
func (m *Machine) Heading() float32 {
	return m.heading
}

// PenDown reports whether moving draws.
func (m *Machine) PenDown() bool {
	return m.penDown
}

// Scene returns the drawing built so far.
func (m *Machine) Scene() *scene.Scene {
	return m.sc
}

// Flags returns the warnings raised so far.
func (m *Machine) Flags() Flags {
	return m.flags
}

// Run replays a whole program on a fresh machine.
func Run(program ast.Program) (*scene.Scene, Flags) {
	m := New()
	m.Run(program)

	return m.Scene(), m.Flags()
}
