package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"backdrop/theme"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, theme.Dark, cfg.DefaultTheme())
	assert.True(t, cfg.Theme.Watch)
	assert.Equal(t, []string{"blobs", "particles"}, cfg.Scene.Layers)
	assert.Equal(t, 6, cfg.Scene.Blobs.Vertices)
	assert.Equal(t, 10*time.Second, cfg.Profile.Duration)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  title: portfolio
theme:
  default: light
scene:
  layers: [mesh, blobs]
  seed: 42
  blobs:
    gradient: true
logger:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "portfolio", cfg.Window.Title)
	assert.Equal(t, theme.Light, cfg.DefaultTheme())
	assert.Equal(t, []string{"mesh", "blobs"}, cfg.Scene.Layers)
	assert.Equal(t, uint64(42), cfg.Scene.Seed)
	assert.True(t, cfg.Scene.Blobs.Gradient)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BACKDROP_WINDOW_HEIGHT", "400")
	t.Setenv("BACKDROP_THEME_DEFAULT", "LIGHT")
	t.Setenv("BACKDROP_SCENE_LAYERS", "particles, mesh")

	cfg, err := Load(writeConfig(t, "window:\n  height: 900\n"))
	require.NoError(t, err)

	assert.Equal(t, 400, cfg.Window.Height, "env wins over the file")
	assert.Equal(t, theme.Light, cfg.DefaultTheme())
	assert.Equal(t, []string{"particles", "mesh"}, cfg.Scene.Layers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestPrepareWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Prepare(v, ""), "a missing backdrop.yaml is not an error")
	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }, "window.tps"},
		{"bad theme", func(c *Config) { c.Theme.Default = "sepia" }, "theme.default"},
		{"no layers", func(c *Config) { c.Scene.Layers = nil }, "scene.layers"},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
		{"unknown layer", func(c *Config) { c.Scene.Layers = []string{"blobs", "stars"} }, `unknown layer "stars"`},
		{"duplicate layer", func(c *Config) { c.Scene.Layers = []string{"mesh", "mesh"} }, "listed twice"},
		{"too few vertices", func(c *Config) { c.Scene.Blobs.Vertices = 3 }, "scene.blobs.vertices"},
		{"too many vertices", func(c *Config) { c.Scene.Blobs.Vertices = 12 }, "scene.blobs.vertices"},
		{"zero profile", func(c *Config) { c.Profile.Duration = 0 }, "profile.duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateAcceptsVertexRange(t *testing.T) {
	for _, v := range []int{0, 6, 9} {
		cfg := DefaultConfig()
		cfg.Scene.Blobs.Vertices = v
		assert.NoError(t, cfg.Validate(), "vertices %d", v)
	}
}

func TestValidateWrapsUnknownTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Default = "sepia"
	assert.ErrorIs(t, cfg.Validate(), theme.ErrUnknown)
}
