// Package canvastest provides a Canvas that records draw calls.
package canvastest

import (
	"image/color"

	"backdrop/canvas"
	"backdrop/geom"
)

// Circle is a recorded FillCircle call in device coordinates
type Circle struct {
	Center geom.Vec
	Radius float64
	Color  color.NRGBA
}

// Line is a recorded StrokeLine call in device coordinates
type Line struct {
	From, To geom.Vec
	Width    float64
	Color    color.NRGBA
}

// Shape is a recorded FillShape call. Outline is in device coordinates,
// Origin is the origin the shape was drawn around.
type Shape struct {
	Origin  geom.Vec
	Outline []geom.Vec
	Fill    canvas.Fill
}

// Recorder implements canvas.Canvas and keeps the calls made since the last Clear.
type Recorder struct {
	canvas.Transform

	Width, Height int

	Circles []Circle
	Lines   []Line
	Shapes  []Shape

	Clears  int
	Resizes int
}

// New creates a recorder of the given size
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the recorded surface size
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Resize records a resize
func (r *Recorder) Resize(width, height int) {
	r.Width = width
	r.Height = height
	r.Resizes++
}

// Clear drops every call recorded so far
func (r *Recorder) Clear() {
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
	r.Shapes = r.Shapes[:0]
	r.Clears++
}

// FillCircle records a circle
func (r *Recorder) FillCircle(center geom.Vec, radius float64, c color.NRGBA) {
	r.Circles = append(r.Circles, Circle{Center: r.Apply(center), Radius: radius, Color: c})
}

// StrokeLine records a line
func (r *Recorder) StrokeLine(from, to geom.Vec, width float64, c color.NRGBA) {
	r.Lines = append(r.Lines, Line{From: r.Apply(from), To: r.Apply(to), Width: width, Color: c})
}

// FillShape records a shape
func (r *Recorder) FillShape(outline []geom.Vec, fill canvas.Fill) {
	pts := make([]geom.Vec, len(outline))
	for i, p := range outline {
		pts[i] = r.Apply(p)
	}
	r.Shapes = append(r.Shapes, Shape{Origin: r.Origin(), Outline: pts, Fill: fill})
}

var _ canvas.Canvas = (*Recorder)(nil)
