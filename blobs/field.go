// Package blobs implements the slow organic blob layer.
package blobs

import (
	"math/rand/v2"

	"backdrop/anim"
	"backdrop/canvas"
	"backdrop/host"
	"backdrop/theme"

	"go.uber.org/zap"
)

// Field draws a fixed pool of wobbling translucent blobs
type Field struct {
	surface canvas.Canvas
	palette theme.BlobPalette
	opts    Options
	rng     *rand.Rand
	logger  *zap.Logger

	host      host.Host
	animator  *anim.Animator
	listeners []host.ListenerID

	blobs  []Blob
	width  float64
	height float64
}

// New creates an unmounted blob field. A nil surface makes every mount a no-op.
func New(surface canvas.Canvas, palette theme.BlobPalette, opts Options, rng *rand.Rand, logger *zap.Logger) *Field {
	return &Field{
		surface: surface,
		palette: palette,
		opts:    opts,
		rng:     rng,
		logger:  logger.Named("blobs"),
	}
}

// Name identifies the layer
func (f *Field) Name() string { return "blobs" }

// Surface returns the layer's drawing surface
func (f *Field) Surface() canvas.Canvas { return f.surface }

// Mounted reports whether the field is attached to a host
func (f *Field) Mounted() bool { return f.host != nil }

// Blobs returns the live pool
func (f *Field) Blobs() []Blob { return f.blobs }

// Palette returns the palette new blobs pick their color from
func (f *Field) Palette() theme.BlobPalette { return f.palette }

// Mount sizes the surface, spawns the pool, listens for resizes and starts the loop
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

	f.blobs = Spawn(f.rng, PoolSize, f.width, f.height, f.palette, f.opts)

	f.listeners = append(f.listeners, h.AddListener(host.EventResize, func(ev host.Event) {
		f.resize(ev.Width, ev.Height)
	}))

	f.animator = anim.NewAnimator(h, f.Frame)
	f.animator.Start()

	f.logger.Debug("mounted", zap.Int("blobs", len(f.blobs)), zap.Int("vertices", f.opts.vertices()))
}

// Unmount stops the loop, removes the resize listener and drops the pool
func (f *Field) Unmount() {
	if f.host == nil {
		return
	}
	f.animator.Stop()
	for _, id := range f.listeners {
		f.host.RemoveListener(id)
	}
	f.listeners = f.listeners[:0]
	f.blobs = nil
	f.animator = nil
	f.host = nil
	f.logger.Debug("unmounted")
}

// SetTheme switches the palette. Blobs capture their color at construction,
// so a mounted field is torn down and mounted again with a fresh pool.
func (f *Field) SetTheme(t theme.Theme) {
	f.palette = t.Blobs()
	if f.host == nil {
		return
	}
	h := f.host
	f.Unmount()
	f.Mount(h)
}

// Frame advances and draws one frame
func (f *Field) Frame() {
	f.surface.Clear()

	for i := range f.blobs {
		b := &f.blobs[i]
		b.Step(f.width, f.height)

		f.surface.Save()
		f.surface.Translate(b.Center.X, b.Center.Y)
		f.surface.FillShape(b.Outline(), f.fill(b))
		f.surface.Restore()
	}
}

func (f *Field) fill(b *Blob) canvas.Fill {
	if !f.opts.Gradient {
		return canvas.Flat(b.Color)
	}
	outer := b.Color
	outer.A = 0
	return canvas.Fill{Inner: b.Color, Outer: outer, Radius: b.BaseRadius * gradientReach}
}

func (f *Field) resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
	f.surface.Resize(width, height)
}
