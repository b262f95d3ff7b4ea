package particles

import (
	"math"
	"math/rand/v2"

	"backdrop/geom"
)

// Simulation constants, all in pixels or pixels per frame
const (
	MaxParticles  = 60    // upper bound of the pool
	pixelsPerDot  = 20    // one particle per this many pixels of viewport width
	RepelRadius   = 100.0 // cursor interaction radius
	LinkDistance  = 140.0 // particles closer than this are connected
	SizeDecay     = 0.1   // size shrink per frame back toward BaseSize
	maxSpeed      = 0.25  // spawn velocity range per axis is [-maxSpeed, maxSpeed]
	minBaseSize   = 1.0
	maxBaseSize   = 3.0
	minDensity    = 1.0
	maxDensity    = 31.0
	growthPerUnit = 2.0 // size gain at full repulsion force
	linkAlphaMax  = 0.15
)

// Particle is a single point in the field
type Particle struct {
	Pos      geom.Vec
	Vel      geom.Vec
	BaseSize float64
	Size     float64
	Density  float64 // responsiveness to cursor repulsion
}

// PoolSize returns the number of particles for a viewport width: one per 20
// pixels of width, capped at MaxParticles
func PoolSize(viewportWidth int) int {
	n := viewportWidth / pixelsPerDot
	if n < 0 {
		return 0
	}
	return min(n, MaxParticles)
}

// Spawn creates n particles placed uniformly inside the viewport
func Spawn(rng *rand.Rand, n int, width, height float64) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		size := minBaseSize + rng.Float64()*(maxBaseSize-minBaseSize)
		ps[i] = Particle{
			Pos: geom.Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			Vel: geom.Vec{
				X: (rng.Float64()*2 - 1) * maxSpeed,
				Y: (rng.Float64()*2 - 1) * maxSpeed,
			},
			BaseSize: size,
			Size:     size,
			Density:  minDensity + rng.Float64()*(maxDensity-minDensity),
		}
	}
	return ps
}

// RepulsionForce returns the normalized cursor force at distance d:
// 1 at the cursor, falling linearly to 0 at RepelRadius and beyond
func RepulsionForce(d float64) float64 {
	if d >= RepelRadius {
		return 0
	}
	if d <= 0 {
		return 1
	}
	return (RepelRadius - d) / RepelRadius
}

// LinkAlpha returns the opacity of the connection line between two particles
// d pixels apart
func LinkAlpha(d float64) float64 {
	return math.Max(0, linkAlphaMax-d/1000)
}

// Step advances one particle by a frame. cursor is ignored when hasCursor is false.
func (p *Particle) Step(width, height float64, cursor geom.Vec, hasCursor bool) {
	p.Pos = p.Pos.Add(p.Vel)

	// Elastic reflection: turn the velocity back toward the inside.
	// Position is not clamped, the particle may overshoot for a frame.
	if p.Pos.X < 0 {
		p.Vel.X = math.Abs(p.Vel.X)
	} else if p.Pos.X > width {
		p.Vel.X = -math.Abs(p.Vel.X)
	}
	if p.Pos.Y < 0 {
		p.Vel.Y = math.Abs(p.Vel.Y)
	} else if p.Pos.Y > height {
		p.Vel.Y = -math.Abs(p.Vel.Y)
	}

	force := 0.0
	if hasCursor {
		away := p.Pos.Sub(cursor)
		d := away.Len()
		force = RepulsionForce(d)
		if force > 0 {
			dir := geom.Vec{X: 1}
			if d > 0 {
				dir = away.Scale(1 / d)
			}
			p.Pos = p.Pos.Add(dir.Scale(force * p.Density / 10))
		}
	}

	target := p.BaseSize + force*growthPerUnit
	if p.Size < target {
		p.Size = target
	} else {
		p.Size = math.Max(target, p.Size-SizeDecay)
	}
}

// Links calls fn once for every unordered pair i < j closer than LinkDistance
func Links(ps []Particle, fn func(i, j int, d float64)) {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := geom.Dist(ps[i].Pos, ps[j].Pos)
			if d < LinkDistance {
				fn(i, j, d)
			}
		}
	}
}
