// Package canvas defines the drawing surface each background layer owns and
// the implementations used outside the window: a software rasterizer for
// snapshots and a recorder for tests.
package canvas

import (
	"image/color"

	"backdrop/geom"
)

// Fill describes how a shape is painted. With Radius <= 0 the shape is
// filled flat with Inner. Otherwise the color falls off linearly from Inner
// at the current origin to Outer at Radius.
type Fill struct {
	Inner  color.NRGBA
	Outer  color.NRGBA
	Radius float64
}

// Flat returns a flat fill
func Flat(c color.NRGBA) Fill {
	return Fill{Inner: c, Outer: c}
}

// Canvas is a 2D drawing surface. All coordinates are relative to the current
// origin, which Translate moves and Save/Restore push and pop.
type Canvas interface {
	// Size returns the backing store size in pixels
	Size() (width, height int)

	// Resize reallocates the backing store. Content is discarded.
	Resize(width, height int)

	// Clear erases the whole surface to transparent
	Clear()

	// Save pushes the current origin
	Save()

	// Restore pops the origin saved by the matching Save
	Restore()

	// Translate moves the origin by (dx, dy)
	Translate(dx, dy float64)

	// FillCircle draws a filled circle
	FillCircle(center geom.Vec, radius float64, c color.NRGBA)

	// StrokeLine draws a straight line segment
	StrokeLine(from, to geom.Vec, width float64, c color.NRGBA)

	// FillShape fills the closed polygon described by outline
	FillShape(outline []geom.Vec, fill Fill)
}

// Lerp linearly interpolates between two colors, t in [0, 1]
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1]
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
