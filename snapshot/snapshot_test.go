package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"backdrop/geom"
	"backdrop/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func baseOptions() Options {
	return Options{
		Width:  200,
		Height: 100,
		Frames: 3,
		Layers: []string{"blobs", "particles"},
		Theme:  theme.Dark,
		Seed:   42,
	}
}

func TestRender(t *testing.T) {
	img, err := Render(baseOptions(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	bg := theme.Dark.Background()
	differs := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, uint8(255), c.A)
			if c.R != bg.R || c.G != bg.G || c.B != bg.B {
				differs++
			}
		}
	}
	assert.Positive(t, differs, "layers draw over the background")
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(baseOptions(), zap.NewNop())
	require.NoError(t, err)
	b, err := Render(baseOptions(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)

	opts := baseOptions()
	opts.Cursor = &geom.Vec{X: 100, Y: 50}
	c, err := Render(opts, zap.NewNop())
	require.NoError(t, err)
	assert.NotEqual(t, a.Pix, c.Pix, "the cursor pushes particles away")
}

func TestRenderLightBackground(t *testing.T) {
	opts := baseOptions()
	opts.Theme = theme.Light
	opts.Layers = []string{"mesh"}
	img, err := Render(opts, zap.NewNop())
	require.NoError(t, err)

	// Corners sit between grid lines
	c := img.RGBAAt(40, 40)
	bg := theme.Light.Background()
	assert.Equal(t, [3]uint8{bg.R, bg.G, bg.B}, [3]uint8{c.R, c.G, c.B})
}

func TestRenderRejects(t *testing.T) {
	opts := baseOptions()
	opts.Frames = 0
	_, err := Render(opts, zap.NewNop())
	assert.ErrorContains(t, err, "at least one frame")

	opts = baseOptions()
	opts.Width = 0
	_, err = Render(opts, zap.NewNop())
	assert.ErrorContains(t, err, "size must be positive")

	opts = baseOptions()
	opts.Layers = []string{"stars"}
	_, err = Render(opts, zap.NewNop())
	assert.ErrorContains(t, err, `unknown layer "stars"`)
}

func TestWritePNG(t *testing.T) {
	img, err := Render(baseOptions(), zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "backdrop.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
