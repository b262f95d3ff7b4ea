package particles

import (
	"math/rand/v2"
	"testing"

	"backdrop/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestPoolSize(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{-100, 0},
		{19, 0},
		{20, 1},
		{399, 19},
		{800, 40},
		{1200, 60},
		{3840, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PoolSize(tt.width), "width %d", tt.width)
	}
}

func TestSpawnRanges(t *testing.T) {
	ps := Spawn(testRand(), 500, 800, 600)
	require.Len(t, ps, 500)

	for _, p := range ps {
		assert.True(t, p.Pos.X >= 0 && p.Pos.X <= 800)
		assert.True(t, p.Pos.Y >= 0 && p.Pos.Y <= 600)
		assert.True(t, p.Vel.X >= -maxSpeed && p.Vel.X <= maxSpeed)
		assert.True(t, p.Vel.Y >= -maxSpeed && p.Vel.Y <= maxSpeed)
		assert.True(t, p.BaseSize >= 1 && p.BaseSize <= 3)
		assert.Equal(t, p.BaseSize, p.Size)
		assert.True(t, p.Density >= 1 && p.Density <= 31)
	}
}

func TestBoundaryContainment(t *testing.T) {
	const w, h = 800.0, 600.0
	ps := Spawn(testRand(), 60, w, h)

	for frame := 0; frame < 10000; frame++ {
		for i := range ps {
			ps[i].Step(w, h, geom.Vec{}, false)

			// At most one frame of velocity beyond an edge
			require.GreaterOrEqual(t, ps[i].Pos.X, -maxSpeed-1e-9)
			require.LessOrEqual(t, ps[i].Pos.X, w+maxSpeed+1e-9)
			require.GreaterOrEqual(t, ps[i].Pos.Y, -maxSpeed-1e-9)
			require.LessOrEqual(t, ps[i].Pos.Y, h+maxSpeed+1e-9)
		}
	}
}

func TestPushedOutParticleReturns(t *testing.T) {
	// A particle shoved past the edge by the cursor heads back inside
	// instead of flipping its velocity every frame.
	p := Particle{
		Pos:      geom.Vec{X: 830, Y: 300},
		Vel:      geom.Vec{X: 0.2, Y: 0},
		BaseSize: 2,
		Size:     2,
		Density:  10,
	}

	p.Step(800, 600, geom.Vec{}, false)
	assert.Less(t, p.Vel.X, 0.0)

	for i := 0; i < 200 && p.Pos.X > 800; i++ {
		p.Step(800, 600, geom.Vec{}, false)
		require.Less(t, p.Vel.X, 0.0)
	}
	assert.LessOrEqual(t, p.Pos.X, 800.0)
}

func TestRepulsionFalloff(t *testing.T) {
	assert.Equal(t, 1.0, RepulsionForce(0))
	assert.Equal(t, 0.0, RepulsionForce(RepelRadius))
	assert.Equal(t, 0.0, RepulsionForce(250))
	assert.InDelta(t, 0.5, RepulsionForce(50), 1e-9)

	prev := RepulsionForce(0)
	for d := 1.0; d <= RepelRadius; d++ {
		f := RepulsionForce(d)
		assert.Less(t, f, prev, "force must fall as distance grows (d=%v)", d)
		prev = f
	}
}

func TestRepulsionDisplacement(t *testing.T) {
	t.Run("pushed directly away from the cursor", func(t *testing.T) {
		p := Particle{Pos: geom.Vec{X: 450, Y: 300}, BaseSize: 2, Size: 2, Density: 20}
		p.Step(800, 600, geom.Vec{X: 400, Y: 300}, true)

		// force 0.5, density 20 => 1px along +X
		assert.InDelta(t, 451, p.Pos.X, 1e-9)
		assert.InDelta(t, 300, p.Pos.Y, 1e-9)
		assert.InDelta(t, 3, p.Size, 1e-9)
	})

	t.Run("maximum push at the cursor itself", func(t *testing.T) {
		p := Particle{Pos: geom.Vec{X: 400, Y: 300}, BaseSize: 1, Size: 1, Density: 10}
		p.Step(800, 600, geom.Vec{X: 400, Y: 300}, true)

		assert.InDelta(t, 401, p.Pos.X, 1e-9)
		assert.InDelta(t, 3, p.Size, 1e-9)
	})

	t.Run("no push outside the radius", func(t *testing.T) {
		p := Particle{Pos: geom.Vec{X: 600, Y: 300}, BaseSize: 2, Size: 2, Density: 31}
		p.Step(800, 600, geom.Vec{X: 400, Y: 300}, true)

		assert.Equal(t, geom.Vec{X: 600, Y: 300}, p.Pos)
		assert.Equal(t, 2.0, p.Size)
	})

	t.Run("unknown cursor disables repulsion", func(t *testing.T) {
		p := Particle{Pos: geom.Vec{X: 0.5, Y: 0.5}, BaseSize: 2, Size: 2, Density: 31}
		p.Step(800, 600, geom.Vec{}, false)

		assert.Equal(t, geom.Vec{X: 0.5, Y: 0.5}, p.Pos)
	})
}

func TestSizeDecay(t *testing.T) {
	p := Particle{Pos: geom.Vec{X: 100, Y: 100}, BaseSize: 1.5, Size: 1.5 + 2, Density: 5}

	prev := p.Size
	frames := 0
	for p.Size > p.BaseSize {
		p.Step(800, 600, geom.Vec{}, false)
		frames++
		require.LessOrEqual(t, frames, 25)

		if p.Size > p.BaseSize {
			assert.InDelta(t, prev-SizeDecay, p.Size, 1e-9)
		}
		require.GreaterOrEqual(t, p.Size, p.BaseSize)
		prev = p.Size
	}
	assert.Equal(t, 1.5, p.Size)

	// Further frames keep it at the base size
	p.Step(800, 600, geom.Vec{}, false)
	assert.Equal(t, 1.5, p.Size)
}

func TestLinks(t *testing.T) {
	ps := []Particle{
		{Pos: geom.Vec{X: 0, Y: 0}},
		{Pos: geom.Vec{X: 100, Y: 0}},
		{Pos: geom.Vec{X: 300, Y: 0}},
		{Pos: geom.Vec{X: 0, Y: 139.9}},
		{Pos: geom.Vec{X: 440, Y: 0}}, // exactly 140 from the third
	}

	type pair struct{ i, j int }
	var got []pair
	Links(ps, func(i, j int, d float64) {
		assert.Less(t, i, j)
		assert.Less(t, d, LinkDistance)
		got = append(got, pair{i, j})
	})

	assert.ElementsMatch(t, []pair{{0, 1}, {0, 3}}, got)
}

func TestLinkAlpha(t *testing.T) {
	assert.InDelta(t, 0.15, LinkAlpha(0), 1e-9)
	assert.InDelta(t, 0.05, LinkAlpha(100), 1e-9)
	assert.Greater(t, LinkAlpha(139.9), 0.0)
	assert.Equal(t, 0.0, LinkAlpha(500))
}
