package blobs

import (
	"image/color"
	"math"
	"math/rand/v2"

	"backdrop/geom"
	"backdrop/theme"
)

// Shape and motion constants, in pixels or pixels per frame
const (
	PoolSize        = 5
	DefaultVertices = 6
	MinVertices     = 6
	MaxVertices     = 9
	minRadius       = 100.0
	radiusSpread    = 200.0
	vertexSpread    = 50.0 // extra radius per vertex, [0, vertexSpread)
	maxSpeed        = 0.25
	WobbleAmplitude = 20.0
	PhaseStep       = 0.01
	curveSteps      = 8 // line segments per quadratic curve
	gradientReach   = 1.5
)

// Options tunes blob construction and drawing
type Options struct {
	// Vertices per blob, clamped to [MinVertices, MaxVertices]. Zero means DefaultVertices.
	Vertices int
	// Jitter gives every vertex a random wobble amplitude factor in [0.5, 1)
	Jitter bool
	// Gradient fills blobs with a radial falloff instead of a flat color
	Gradient bool
}

func (o Options) vertices() int {
	if o.Vertices == 0 {
		return DefaultVertices
	}
	return max(MinVertices, min(o.Vertices, MaxVertices))
}

// Vertex is one point of a blob's ring, relative to the blob center
type Vertex struct {
	Angle    float64
	Radius   float64
	Noise    float64 // wobble amplitude factor
	Original geom.Vec
	Current  geom.Vec
}

// Blob is a soft polygon drifting across the viewport
type Blob struct {
	Center     geom.Vec
	Vel        geom.Vec
	BaseRadius float64
	Points     []Vertex
	Color      color.NRGBA
	Phase      float64
}

// NewBlob creates a blob centered at center with a color picked from palette
func NewBlob(rng *rand.Rand, center geom.Vec, palette theme.BlobPalette, opts Options) Blob {
	b := Blob{
		Center:     center,
		BaseRadius: minRadius + rng.Float64()*radiusSpread,
		Vel: geom.Vec{
			X: (rng.Float64() - 0.5) * 2 * maxSpeed,
			Y: (rng.Float64() - 0.5) * 2 * maxSpeed,
		},
	}

	n := opts.vertices()
	b.Points = make([]Vertex, n)
	for i := range b.Points {
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := b.BaseRadius + rng.Float64()*vertexSpread
		noise := 1.0
		if opts.Jitter {
			noise = 0.5 + rng.Float64()*0.5
		}
		p := geom.Polar(angle, radius)
		b.Points[i] = Vertex{
			Angle:    angle,
			Radius:   radius,
			Noise:    noise,
			Original: p,
			Current:  p,
		}
	}

	if len(palette.Colors) > 0 {
		b.Color = palette.Colors[rng.IntN(len(palette.Colors))]
	}
	return b
}

// Spawn creates n blobs at random positions inside the viewport
func Spawn(rng *rand.Rand, n int, width, height float64, palette theme.BlobPalette, opts Options) []Blob {
	bs := make([]Blob, n)
	for i := range bs {
		center := geom.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
		bs[i] = NewBlob(rng, center, palette, opts)
	}
	return bs
}

// bounds returns the allowed range for the center along an axis of the
// given extent. A blob larger than the viewport bounces its center between
// the edges instead.
func bounds(extent, radius float64) (float64, float64) {
	lo, hi := radius, extent-radius
	if lo > hi {
		return 0, extent
	}
	return lo, hi
}

// Step advances the blob by one frame: drift, reflect at the edges and wobble
func (b *Blob) Step(width, height float64) {
	b.Center = b.Center.Add(b.Vel)

	loX, hiX := bounds(width, b.BaseRadius)
	if b.Center.X < loX {
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Center.X > hiX {
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	loY, hiY := bounds(height, b.BaseRadius)
	if b.Center.Y < loY {
		b.Vel.Y = math.Abs(b.Vel.Y)
	} else if b.Center.Y > hiY {
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}

	b.Phase += PhaseStep
	for i := range b.Points {
		v := &b.Points[i]
		wobble := math.Sin(b.Phase+float64(i)) * WobbleAmplitude * v.Noise
		v.Current = geom.Vec{X: v.Original.X + wobble, Y: v.Original.Y + wobble}
	}
}

// Outline returns the smoothed silhouette relative to the blob center
func (b *Blob) Outline() []geom.Vec {
	ring := make([]geom.Vec, len(b.Points))
	for i, v := range b.Points {
		ring[i] = v.Current
	}
	return geom.SmoothClosed(ring, curveSteps)
}
