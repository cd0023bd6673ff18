// Package scene holds the geometry a turtle program draws: strokes in an
// abstract 2D space with X growing right and Y growing down. Renderers map
// this space onto a canvas; nothing here knows about pixels.
package scene

import "image/color"

// Point is a position in turtle space.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Width()/2, Y: r.Min.Y + r.Height()/2}
}

// UnionPoint grows the rectangle to contain p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Point{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

// Union grows the rectangle to contain other.
func (r Rect) Union(other Rect) Rect {
	return r.UnionPoint(other.Min).UnionPoint(other.Max)
}

// Expand pushes every edge outward by margin.
func (r Rect) Expand(margin float32) Rect {
	return Rect{
		Min: Point{X: r.Min.X - margin, Y: r.Min.Y - margin},
		Max: Point{X: r.Max.X + margin, Y: r.Max.Y + margin},
	}
}

// FromPoints returns the smallest rectangle containing both points.
func FromPoints(a, b Point) Rect {
	return Rect{Min: a, Max: a}.UnionPoint(b)
}

// Color is an RGB pen color. Channels follow the script's pencolor arguments
// and nominally range over 0..255; conversion clamps anything outside.
type Color struct {
	R, G, B float32
}

// RGBA implements color.Color. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

func channel(v float32) uint32 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}

	return uint32(v+0.5) * 0x101
}

var _ color.Color = Color{}

// Stroke is one drawn line segment.
type Stroke struct {
	A, B  Point
	Width float32
	Color Color
}

// Bounds returns the rectangle the stroked segment covers, width included.
func (s Stroke) Bounds() Rect {
	return FromPoints(s.A, s.B).Expand(s.Width / 2)
}

// Scene is the drawing a program builds up: strokes in draw order plus the
// rectangle they cover. ViewBox is the region a renderer should frame; the
// interpreter sets it from the final bounds.
//
// The zero bounds rectangle sits at the origin, so the origin is always part
// of the framed region even when every stroke lies elsewhere.
type Scene struct {
	Strokes []Stroke
	Bounds  Rect
	ViewBox Rect
}

func New() *Scene {
	return &Scene{}
}

// Add appends a stroke and grows the bounds to cover it.
func (s *Scene) Add(stroke Stroke) {
	s.Strokes = append(s.Strokes, stroke)
	s.Bounds = s.Bounds.Union(stroke.Bounds())
}
