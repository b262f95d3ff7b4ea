package game

import (
	"image"
	"image/color"

	"backdrop/canvas"
	"backdrop/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a layer canvas backed by an offscreen ebiten image
type Surface struct {
	canvas.Transform

	img           *ebiten.Image
	width, height int

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates an empty surface. It is sized on the first Resize.
func NewSurface() *Surface {
	return &Surface{}
}

// Image returns the backing image, nil before the first Resize
func (s *Surface) Image() *ebiten.Image { return s.img }

// Size returns the surface size in pixels
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize reallocates the backing image when the size changes
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.width, s.height = width, height
	s.Reset()
}

// Clear erases the surface to transparent
func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillCircle draws a filled, anti-aliased circle
func (s *Surface) FillCircle(center geom.Vec, radius float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	p := s.Apply(center)
	vector.DrawFilledCircle(s.img, float32(p.X), float32(p.Y), float32(radius), c, true)
}

// StrokeLine draws a line segment
func (s *Surface) StrokeLine(from, to geom.Vec, width float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	a, b := s.Apply(from), s.Apply(to)
	vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

// FillShape fills a closed outline as a triangle fan around the current origin.
// The outlines drawn here are star shaped around that origin, so the fan covers
// them exactly. Gradient fills shade each vertex by its distance from the origin.
func (s *Surface) FillShape(outline []geom.Vec, fill canvas.Fill) {
	if s.img == nil || len(outline) < 3 || len(outline) > 0xfffe {
		return
	}
	origin := s.Origin()

	s.vertices = append(s.vertices[:0], s.vertex(origin, fill.Inner))
	for _, p := range outline {
		d := s.Apply(p)
		c := fill.Inner
		if fill.Radius > 0 {
			c = canvas.Lerp(fill.Inner, fill.Outer, geom.Dist(d, origin)/fill.Radius)
		}
		s.vertices = append(s.vertices, s.vertex(d, c))
	}

	s.indices = s.indices[:0]
	n := uint16(len(outline))
	for i := uint16(1); i <= n; i++ {
		next := i%n + 1
		s.indices = append(s.indices, 0, i, next)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *Surface) vertex(p geom.Vec, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}
