package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"backdrop/geom"

	"golang.org/x/image/vector"
)

// circleKappa is the cubic Bezier control distance for a quarter circle
const circleKappa = 0.5522847498

// Raster is a software Canvas backed by an *image.RGBA. It is used by the
// snapshot command and by tests that need real pixels.
type Raster struct {
	Transform

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster creates a raster canvas of the given size
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Image returns the backing image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the backing store size
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image
func (r *Raster) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.z = vector.NewRasterizer(width, height)
	r.Transform.Reset()
}

// Clear erases the image to transparent
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// FillCircle draws a filled circle using four cubic arcs
func (r *Raster) FillCircle(center geom.Vec, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	p := r.Apply(center)
	cx, cy := float32(p.X), float32(p.Y)
	rad := float32(radius)
	k := rad * circleKappa

	z := r.begin()
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
	r.paint(image.NewUniform(c))
}

// StrokeLine draws a line as a thin quad perpendicular to its direction
func (r *Raster) StrokeLine(from, to geom.Vec, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	a := r.Apply(from)
	b := r.Apply(to)
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return
	}
	half := math.Max(width, 1) * 0.5
	n := geom.Vec{X: -d.Y / length * half, Y: d.X / length * half}

	z := r.begin()
	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
	r.paint(image.NewUniform(c))
}

// FillShape fills a closed polygon, flat or with a radial falloff around the origin
func (r *Raster) FillShape(outline []geom.Vec, fill Fill) {
	if len(outline) < 3 {
		return
	}

	z := r.begin()
	first := r.Apply(outline[0])
	z.MoveTo(float32(first.X), float32(first.Y))
	for _, pt := range outline[1:] {
		p := r.Apply(pt)
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()

	if fill.Radius <= 0 {
		r.paint(image.NewUniform(fill.Inner))
		return
	}
	r.paint(&radialGradient{
		center: r.Origin(),
		radius: fill.Radius,
		inner:  fill.Inner,
		outer:  fill.Outer,
		bounds: r.img.Bounds(),
	})
}

func (r *Raster) begin() *vector.Rasterizer {
	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	return r.z
}

func (r *Raster) paint(src image.Image) {
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// radialGradient is an image whose color depends on the distance to center
type radialGradient struct {
	center geom.Vec
	radius float64
	inner  color.NRGBA
	outer  color.NRGBA
	bounds image.Rectangle
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *radialGradient) Bounds() image.Rectangle { return g.bounds }

func (g *radialGradient) At(x, y int) color.Color {
	d := geom.Dist(geom.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}, g.center)
	return Lerp(g.inner, g.outer, d/g.radius)
}
