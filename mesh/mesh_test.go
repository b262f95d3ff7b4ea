package mesh

import (
	"math"
	"testing"

	"backdrop/canvas/canvastest"
	"backdrop/host"
	"backdrop/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLines(t *testing.T) {
	h := HorizontalLine(80, 400, 0)
	require.Len(t, h, 21)
	for i, p := range h {
		assert.InDelta(t, float64(i)*SampleStep, p.X, 1e-9)
		assert.LessOrEqual(t, math.Abs(p.Y-80), Amplitude)
	}

	// The top line has zero amplitude at t=0 because sin(0) = 0
	for _, p := range HorizontalLine(0, 400, 0) {
		assert.InDelta(t, 0, p.Y, 1e-9)
	}

	v := VerticalLine(160, 300, 1.5)
	require.Len(t, v, 16)
	for i, p := range v {
		assert.InDelta(t, float64(i)*SampleStep, p.Y, 1e-9)
		assert.LessOrEqual(t, math.Abs(p.X-160), Amplitude)
	}
}

func TestFieldFrame(t *testing.T) {
	w := host.NewWindow(400, 160)
	rec := canvastest.New(0, 0)
	f := New(rec, theme.Dark.Mesh(), zap.NewNop())
	f.Mount(w)

	w.Tick()

	// 3 horizontal lines of 20 segments, 6 vertical lines of 8 segments
	assert.Len(t, rec.Lines, 3*20+6*8)
	assert.InDelta(t, TimeStep, f.Time(), 1e-12)
	for _, l := range rec.Lines {
		assert.Equal(t, theme.Dark.Mesh().Stroke, l.Color)
	}

	f.SetTheme(theme.Light)
	w.Tick()
	assert.Equal(t, theme.Light.Mesh().Stroke, rec.Lines[0].Color)
	assert.InDelta(t, 2*TimeStep, f.Time(), 1e-12)

	f.Unmount()
	assert.Equal(t, 0, w.PendingFrames())
	assert.Equal(t, 0, w.Listeners())
	assert.False(t, f.Mounted())
}

func TestFieldNilSurface(t *testing.T) {
	w := host.NewWindow(400, 160)
	f := New(nil, theme.Dark.Mesh(), zap.NewNop())
	f.Mount(w)
	f.Unmount()

	assert.False(t, f.Mounted())
	assert.Equal(t, 0, w.Listeners())
}
