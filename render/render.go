// Package render rasterizes a scene into an image for PNG export.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/takoeight0821/kame/scene"
)

// Options controls the canvas a scene is rasterized onto.
type Options struct {
	Width      int
	Height     int
	Margin     float32 // pixels kept clear around the drawing
	Background color.Color
}

// DefaultOptions returns the print-friendly defaults: a white 1024x768
// canvas with a small margin.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 768, Margin: 16, Background: color.White}
}

// Rasterize draws the scene onto a fresh canvas, scaled uniformly so the
// view box fits inside with the configured margin and sits centered. Scene Y
// grows downward on the canvas, so positive turns read clockwise.
func Rasterize(sc *scene.Scene, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	background := opts.Background
	if background == nil {
		background = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	view := sc.ViewBox
	if view.Width() == 0 && view.Height() == 0 {
		view = sc.Bounds
	}
	scale, offX, offY := fit(view, opts)

	rast := vector.NewRasterizer(opts.Width, opts.Height)
	for _, stroke := range sc.Strokes {
		quad := strokeQuad(stroke, scale, offX, offY)
		rast.Reset(opts.Width, opts.Height)
		rast.MoveTo(quad[0].X, quad[0].Y)
		rast.LineTo(quad[1].X, quad[1].Y)
		rast.LineTo(quad[2].X, quad[2].Y)
		rast.LineTo(quad[3].X, quad[3].Y)
		rast.ClosePath()
		rast.Draw(img, img.Bounds(), image.NewUniform(stroke.Color), image.Point{})
	}

	return img
}

// fit computes the uniform scale and offset mapping view onto the canvas. A
// degenerate view keeps scale 1 so a single point lands centered instead of
// dividing by zero.
func fit(view scene.Rect, opts Options) (scale, offX, offY float32) {
	availW := float32(opts.Width) - 2*opts.Margin
	availH := float32(opts.Height) - 2*opts.Margin

	scale = 1
	if view.Width() > 0 || view.Height() > 0 {
		scaleX := float32(math.Inf(1))
		scaleY := float32(math.Inf(1))
		if view.Width() > 0 {
			scaleX = availW / view.Width()
		}
		if view.Height() > 0 {
			scaleY = availH / view.Height()
		}
		scale = min(scaleX, scaleY)
	}

	center := view.Center()
	offX = float32(opts.Width)/2 - scale*center.X
	offY = float32(opts.Height)/2 - scale*center.Y

	return scale, offX, offY
}

// strokeQuad converts a stroked segment into the filled quad covering it,
// in canvas coordinates. A zero-length stroke degenerates to an empty quad
// and rasterizes to nothing.
func strokeQuad(stroke scene.Stroke, scale, offX, offY float32) [4]scene.Point {
	ax := stroke.A.X*scale + offX
	ay := stroke.A.Y*scale + offY
	bx := stroke.B.X*scale + offX
	by := stroke.B.Y*scale + offY

	dx := float64(bx - ax)
	dy := float64(by - ay)
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	half := float64(stroke.Width*scale) / 2
	px := float32(-dy / length * half)
	py := float32(dx / length * half)

	return [4]scene.Point{
		{X: ax + px, Y: ay + py},
		{X: bx + px, Y: by + py},
		{X: bx - px, Y: by - py},
		{X: ax - px, Y: ay - py},
	}
}

// WritePNG rasterizes the scene and encodes it as PNG.
func WritePNG(w io.Writer, sc *scene.Scene, opts Options) error {
	if err := png.Encode(w, Rasterize(sc, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// SavePNG writes the rendered scene to path.
func SavePNG(path string, sc *scene.Scene, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return WritePNG(f, sc, opts)
}
