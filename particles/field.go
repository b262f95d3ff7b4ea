// Package particles implements the cursor-reactive particle network layer.
package particles

import (
	"math/rand/v2"

	"backdrop/anim"
	"backdrop/canvas"
	"backdrop/geom"
	"backdrop/host"
	"backdrop/theme"

	"go.uber.org/zap"
)

const lineWidth = 1.0

// Field draws a fixed pool of drifting particles connected by faint lines
type Field struct {
	surface canvas.Canvas
	palette theme.ParticlePalette
	rng     *rand.Rand
	logger  *zap.Logger

	host      host.Host
	animator  *anim.Animator
	listeners []host.ListenerID

	particles []Particle
	width     float64
	height    float64
	cursor    Cursor
}

// Cursor is the latest known pointer position
type Cursor struct {
	X, Y  float64
	Known bool // false until the pointer first moves inside the viewport
}

// New creates an unmounted particle field drawing onto surface. A nil surface
// makes every mount a no-op.
func New(surface canvas.Canvas, palette theme.ParticlePalette, rng *rand.Rand, logger *zap.Logger) *Field {
	return &Field{
		surface: surface,
		palette: palette,
		rng:     rng,
		logger:  logger.Named("particles"),
	}
}

// Name identifies the layer
func (f *Field) Name() string { return "particles" }

// Surface returns the layer's drawing surface
func (f *Field) Surface() canvas.Canvas { return f.surface }

// Mounted reports whether the field is attached to a host
func (f *Field) Mounted() bool { return f.host != nil }

// Mount sizes the surface to the viewport, spawns the pool, registers the
// resize and pointer listeners and starts the frame loop
func (f *Field) Mount(h host.Host) {
	if f.host != nil {
		return
	}
	if f.surface == nil {
		f.logger.Debug("no drawing surface, skipping mount")
		return
	}

	f.host = h
	w, ht := h.Viewport()
	f.resize(w, ht)

	f.particles = Spawn(f.rng, PoolSize(w), f.width, f.height)
	f.cursor = Cursor{}

	f.listeners = append(f.listeners,
		h.AddListener(host.EventResize, func(ev host.Event) {
			f.resize(ev.Width, ev.Height)
		}),
		h.AddListener(host.EventPointerMove, func(ev host.Event) {
			f.cursor = Cursor{X: ev.X, Y: ev.Y, Known: true}
		}),
	)

	f.animator = anim.NewAnimator(h, f.Frame)
	f.animator.Start()

	f.logger.Debug("mounted",
		zap.Int("particles", len(f.particles)),
		zap.Int("width", w),
		zap.Int("height", ht))
}

// Unmount stops the frame loop, removes the listeners and drops the pool
func (f *Field) Unmount() {
	if f.host == nil {
		return
	}
	f.animator.Stop()
	for _, id := range f.listeners {
		f.host.RemoveListener(id)
	}
	f.listeners = f.listeners[:0]
	f.particles = nil
	f.animator = nil
	f.host = nil
	f.logger.Debug("unmounted")
}

// SetTheme recolors the field. Particles keep their positions and velocities.
func (f *Field) SetTheme(t theme.Theme) {
	f.palette = t.Particles()
}

// Palette returns the active palette
func (f *Field) Palette() theme.ParticlePalette {
	return f.palette
}

// Particles returns the live pool
func (f *Field) Particles() []Particle {
	return f.particles
}

// Cursor returns the last known pointer position
func (f *Field) Cursor() Cursor {
	return f.cursor
}

// Frame advances and draws one frame
func (f *Field) Frame() {
	f.surface.Clear()

	cursor := geom.Vec{X: f.cursor.X, Y: f.cursor.Y}
	for i := range f.particles {
		p := &f.particles[i]
		p.Step(f.width, f.height, cursor, f.cursor.Known)
		f.surface.FillCircle(p.Pos, p.Size, f.palette.Dot)
	}

	Links(f.particles, func(i, j int, d float64) {
		c := canvas.WithAlpha(f.palette.Line, LinkAlpha(d))
		if c.A == 0 {
			return
		}
		f.surface.StrokeLine(f.particles[i].Pos, f.particles[j].Pos, lineWidth, c)
	})
}

func (f *Field) resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
	f.surface.Resize(width, height)
}
