// Package mesh implements the flowing grid overlay: horizontal and vertical
// lines displaced by slowly travelling sine waves.
package mesh

import (
	"math"

	"backdrop/anim"
	"backdrop/canvas"
	"backdrop/geom"
	"backdrop/host"
	"backdrop/theme"

	"go.uber.org/zap"
)

const (
	GridSize   = 80.0   // spacing between lines
	SampleStep = 20.0   // spacing between samples along a line
	Amplitude  = 20.0   // maximum displacement
	TimeStep   = 0.0167 // wave time advanced per frame (about 1ms * 16.7)
	lineWidth  = 1.0
)

// HorizontalLine samples the horizontal line at y across width at wave time t
func HorizontalLine(y, width, t float64) []geom.Vec {
	pts := make([]geom.Vec, 0, int(width/SampleStep)+1)
	for x := 0.0; x <= width; x += SampleStep {
		waveY := y + math.Sin(x*0.01+t*2)*Amplitude*math.Sin(y*0.005+t)
		pts = append(pts, geom.Vec{X: x, Y: waveY})
	}
	return pts
}

// VerticalLine samples the vertical line at x down height at wave time t
func VerticalLine(x, height, t float64) []geom.Vec {
	pts := make([]geom.Vec, 0, int(height/SampleStep)+1)
	for y := 0.0; y <= height; y += SampleStep {
		waveX := x + math.Cos(y*0.01+t*2)*Amplitude*math.Cos(x*0.005+t)
		pts = append(pts, geom.Vec{X: waveX, Y: y})
	}
	return pts
}

// Field draws the mesh onto its own surface every frame
type Field struct {
	surface canvas.Canvas
	palette theme.MeshPalette
	logger  *zap.Logger

	host      host.Host
	animator  *anim.Animator
	listeners []host.ListenerID

	time   float64
	width  float64
	height float64
}

// New creates an unmounted mesh layer
func New(surface canvas.Canvas, palette theme.MeshPalette, logger *zap.Logger) *Field {
	return &Field{
		surface: surface,
		palette: palette,
		logger:  logger.Named("mesh"),
	}
}

func (f *Field) Name() string           { return "mesh" }
func (f *Field) Surface() canvas.Canvas { return f.surface }
func (f *Field) Mounted() bool          { return f.host != nil }
func (f *Field) Time() float64          { return f.time }

// Palette returns the active stroke palette
func (f *Field) Palette() theme.MeshPalette { return f.palette }

// Mount starts the mesh animation
func (f *Field) Mount(h host.Host) {
	if f.host != nil || f.surface == nil {
		return
	}
	f.host = h
	w, ht := h.Viewport()
	f.resize(w, ht)
	f.time = 0

	f.listeners = append(f.listeners, h.AddListener(host.EventResize, func(ev host.Event) {
		f.resize(ev.Width, ev.Height)
	}))
	f.animator = anim.NewAnimator(h, f.Frame)
	f.animator.Start()
	f.logger.Debug("mounted")
}

// Unmount stops the animation and removes the listener
func (f *Field) Unmount() {
	if f.host == nil {
		return
	}
	f.animator.Stop()
	for _, id := range f.listeners {
		f.host.RemoveListener(id)
	}
	f.listeners = f.listeners[:0]
	f.animator = nil
	f.host = nil
}

// SetTheme recolors the lines
func (f *Field) SetTheme(t theme.Theme) {
	f.palette = t.Mesh()
}

// Frame draws the grid at the current wave time and advances it
func (f *Field) Frame() {
	f.surface.Clear()

	for y := 0.0; y <= f.height; y += GridSize {
		f.polyline(HorizontalLine(y, f.width, f.time))
	}
	for x := 0.0; x <= f.width; x += GridSize {
		f.polyline(VerticalLine(x, f.height, f.time))
	}

	f.time += TimeStep
}

func (f *Field) polyline(pts []geom.Vec) {
	for i := 1; i < len(pts); i++ {
		f.surface.StrokeLine(pts[i-1], pts[i], lineWidth, f.palette.Stroke)
	}
}

func (f *Field) resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
	f.surface.Resize(width, height)
}
