// Package snapshot renders the scene offscreen with the software rasterizer
// and writes the result as a PNG.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"backdrop/blobs"
	"backdrop/canvas"
	"backdrop/geom"
	"backdrop/host"
	"backdrop/scene"
	"backdrop/theme"

	"go.uber.org/zap"
)

// Options describes one offscreen render
type Options struct {
	Width, Height int
	Frames        int
	Layers        []string
	Theme         theme.Theme
	Blobs         blobs.Options
	Seed          uint64
	Cursor        *geom.Vec // nil leaves the cursor unknown
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Frames < 1 {
		return fmt.Errorf("snapshot needs at least one frame, got %d", o.Frames)
	}
	if len(o.Layers) == 0 {
		return errors.New("snapshot needs at least one layer")
	}
	return nil
}

// Render mounts the scene on an offscreen host, runs the requested number of
// frames, tears the scene down and returns the composited image.
func Render(opts Options, logger *zap.Logger) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rasters := make(map[string]*canvas.Raster, len(opts.Layers))
	sc, err := scene.Build(scene.Options{
		Layers: opts.Layers,
		Theme:  opts.Theme,
		Blobs:  opts.Blobs,
		Rand:   scene.NewRand(opts.Seed),
		Logger: logger,
	}, func(name string) canvas.Canvas {
		r := canvas.NewRaster(opts.Width, opts.Height)
		rasters[name] = r
		return r
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	window := host.NewWindow(opts.Width, opts.Height)
	sc.Mount(window)
	if opts.Cursor != nil {
		window.PointerMove(opts.Cursor.X, opts.Cursor.Y)
	}
	for range opts.Frames {
		window.Tick()
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(out, out.Bounds(), image.NewUniform(opts.Theme.Background()), image.Point{}, draw.Src)
	for _, l := range sc.Layers() {
		if r := rasters[l.Name()]; r != nil && l.Mounted() {
			draw.Draw(out, out.Bounds(), r.Image(), image.Point{}, draw.Over)
		}
	}

	sc.Unmount()
	logger.Debug("snapshot rendered",
		zap.Int("frames", opts.Frames),
		zap.Int("frames_run", window.Stats().FramesRun),
		zap.Int("pending_after_unmount", window.PendingFrames()))
	return out, nil
}

// WritePNG encodes img to path, creating parent directories as needed
func WritePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
