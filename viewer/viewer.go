// Package viewer shows a scene in a window with a pannable, zoomable 2D
// camera. Drag with the left mouse button to pan, scroll to zoom around the
// cursor, press R to reframe the drawing, Escape to quit.
package viewer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/takoeight0821/kame/scene"
)

// Options controls the viewer window.
type Options struct {
	Width      int
	Height     int
	Background color.Color
	Antialias  bool
}

// DefaultOptions returns the viewer defaults: a dark window sized like a
// small landscape monitor.
func DefaultOptions() Options {
	return Options{
		Width:      1067,
		Height:     800,
		Background: color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Antialias:  true,
	}
}

type Game struct {
	sc   *scene.Scene
	opts Options

	zoom float64
	offX float64
	offY float64

	dragging     bool
	dragX, dragY int

	width, height int
	framed        bool
}

func NewGame(sc *scene.Scene, opts Options) *Game {
	return &Game{sc: sc, opts: opts, zoom: 1}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.frame()
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		cursorX, cursorY := ebiten.CursorPosition()
		factor := math.Pow(1.1, wheelY)
		// Keep the point under the cursor fixed while zooming.
		g.offX = float64(cursorX) - (float64(cursorX)-g.offX)*factor
		g.offY = float64(cursorY) - (float64(cursorY)-g.offY)*factor
		g.zoom *= factor
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			g.offX += float64(x - g.dragX)
			g.offY += float64(y - g.dragY)
		}
		g.dragging = true
		g.dragX, g.dragY = x, y
	} else {
		g.dragging = false
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background)

	for _, stroke := range g.sc.Strokes {
		x0 := float32(g.offX + g.zoom*float64(stroke.A.X))
		y0 := float32(g.offY + g.zoom*float64(stroke.A.Y))
		x1 := float32(g.offX + g.zoom*float64(stroke.B.X))
		y1 := float32(g.offY + g.zoom*float64(stroke.B.Y))

		// Never let a stroke thin out below one pixel, whatever the zoom.
		width := float32(g.zoom * float64(stroke.Width))
		if width < 1 {
			width = 1
		}

		vector.StrokeLine(screen, x0, y0, x1, y1, width, stroke.Color, g.opts.Antialias)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if !g.framed {
		g.frame()
		g.framed = true
	}

	return outsideWidth, outsideHeight
}

// frame fits the scene's view box into the window with some breathing room
// and centers it.
func (g *Game) frame() {
	if g.width == 0 || g.height == 0 {
		return
	}

	view := g.sc.ViewBox
	if view.Width() == 0 && view.Height() == 0 {
		view = g.sc.Bounds
	}

	g.zoom = 1
	if view.Width() > 0 || view.Height() > 0 {
		zoomX := math.Inf(1)
		zoomY := math.Inf(1)
		if view.Width() > 0 {
			zoomX = float64(g.width) * 0.9 / float64(view.Width())
		}
		if view.Height() > 0 {
			zoomY = float64(g.height) * 0.9 / float64(view.Height())
		}
		g.zoom = math.Min(zoomX, zoomY)
	}

	center := view.Center()
	g.offX = float64(g.width)/2 - g.zoom*float64(center.X)
	g.offY = float64(g.height)/2 - g.zoom*float64(center.Y)
}

// Run opens the viewer window and blocks until it is closed.
func Run(sc *scene.Scene, opts Options) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("kame")

	if err := ebiten.RunGame(NewGame(sc, opts)); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	return nil
}
