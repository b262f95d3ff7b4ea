package geom

import "math"

// Vec represents a 2D vector in viewport pixels
type Vec struct {
	X float64
	Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Mid returns the point halfway between a and b
func Mid(a, b Vec) Vec {
	return Vec{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5}
}

// Polar returns the point at the given angle and radius around the origin
func Polar(angle, radius float64) Vec {
	return Vec{math.Cos(angle) * radius, math.Sin(angle) * radius}
}
