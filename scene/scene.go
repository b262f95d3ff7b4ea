// Package scene stacks background layers and mounts them as a unit.
package scene

import (
	"fmt"
	"math/rand/v2"

	"backdrop/blobs"
	"backdrop/canvas"
	"backdrop/host"
	"backdrop/mesh"
	"backdrop/particles"
	"backdrop/theme"

	"go.uber.org/zap"
)

// Layer is a self-contained animation that owns one drawing surface
type Layer interface {
	Name() string
	Surface() canvas.Canvas
	Mounted() bool
	Mount(h host.Host)
	Unmount()
	SetTheme(t theme.Theme)
}

// Layer names accepted by Build
const (
	LayerParticles = "particles"
	LayerBlobs     = "blobs"
	LayerMesh      = "mesh"
)

// IsLayer reports whether Build knows the layer name
func IsLayer(name string) bool {
	switch name {
	case LayerParticles, LayerBlobs, LayerMesh:
		return true
	}
	return false
}

// Options configures the layers Build creates
type Options struct {
	Layers []string // bottom to top
	Theme  theme.Theme
	Blobs  blobs.Options
	Rand   *rand.Rand
	Logger *zap.Logger
}

// NewRand returns the generator layers draw from. Equal seeds replay equal scenes.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SurfaceFunc allocates the drawing surface for a layer
type SurfaceFunc func(layer string) canvas.Canvas

// Scene is an ordered stack of layers sharing one host and the current theme
type Scene struct {
	layers []Layer
	theme  theme.Theme
	host   host.Host
	logger *zap.Logger
}

// New creates a scene from already constructed layers
func New(t theme.Theme, logger *zap.Logger, layers ...Layer) *Scene {
	return &Scene{
		layers: layers,
		theme:  t,
		logger: logger.Named("scene"),
	}
}

// Build constructs the named layers, asking newSurface for each surface
func Build(opts Options, newSurface SurfaceFunc) (*Scene, error) {
	layers := make([]Layer, 0, len(opts.Layers))
	seen := make(map[string]bool)
	for _, name := range opts.Layers {
		if seen[name] {
			return nil, fmt.Errorf("layer %q listed twice", name)
		}
		seen[name] = true

		surface := newSurface(name)
		switch name {
		case LayerParticles:
			layers = append(layers, particles.New(surface, opts.Theme.Particles(), opts.Rand, opts.Logger))
		case LayerBlobs:
			layers = append(layers, blobs.New(surface, opts.Theme.Blobs(), opts.Blobs, opts.Rand, opts.Logger))
		case LayerMesh:
			layers = append(layers, mesh.New(surface, opts.Theme.Mesh(), opts.Logger))
		default:
			return nil, fmt.Errorf("unknown layer %q", name)
		}
	}
	return New(opts.Theme, opts.Logger, layers...), nil
}

// Layers returns the layers bottom to top
func (s *Scene) Layers() []Layer {
	return s.layers
}

// Theme returns the current theme
func (s *Scene) Theme() theme.Theme {
	return s.theme
}

// Mount attaches every layer to h
func (s *Scene) Mount(h host.Host) {
	if s.host != nil {
		return
	}
	s.host = h
	for _, l := range s.layers {
		l.Mount(h)
		if !l.Mounted() {
			s.logger.Info("layer has no drawing surface, running without it", zap.String("layer", l.Name()))
		}
	}
}

// Unmount detaches every layer, top first
func (s *Scene) Unmount() {
	if s.host == nil {
		return
	}
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].Unmount()
	}
	s.host = nil
}

// SetTheme forwards a theme change to each layer. Unchanged themes are ignored.
func (s *Scene) SetTheme(t theme.Theme) {
	if t == s.theme {
		return
	}
	s.theme = t
	for _, l := range s.layers {
		l.SetTheme(t)
	}
	s.logger.Info("theme changed", zap.String("theme", t.String()))
}
