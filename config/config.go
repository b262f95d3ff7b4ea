// Package config loads application settings from defaults, backdrop.yaml and
// BACKDROP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backdrop/blobs"
	"backdrop/scene"
	"backdrop/theme"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BACKDROP_WINDOW_WIDTH
const EnvPrefix = "BACKDROP"

// Config holds the whole application configuration
type Config struct {
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Scene   SceneConfig   `mapstructure:"scene" yaml:"scene"`
	Profile ProfileConfig `mapstructure:"profile" yaml:"profile"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
}

// WindowConfig sizes the window and the update rate
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
	TPS    int    `mapstructure:"tps" yaml:"tps"`
}

// ThemeConfig selects the starting theme and where the preference is stored
type ThemeConfig struct {
	Default string `mapstructure:"default" yaml:"default"`
	Store   string `mapstructure:"store" yaml:"store"` // empty means theme.DefaultPath()
	Watch   bool   `mapstructure:"watch" yaml:"watch"`
}

// SceneConfig lists the layers and tunes them
type SceneConfig struct {
	Layers []string    `mapstructure:"layers" yaml:"layers"`
	Seed   uint64      `mapstructure:"seed" yaml:"seed"` // 0 picks a time based seed
	Blobs  BlobsConfig `mapstructure:"blobs" yaml:"blobs"`
}

// BlobsConfig tunes the blob layer
type BlobsConfig struct {
	Gradient bool `mapstructure:"gradient" yaml:"gradient"`
	Vertices int  `mapstructure:"vertices" yaml:"vertices"`
	Jitter   bool `mapstructure:"jitter" yaml:"jitter"`
}

// ProfileConfig controls the F2 CPU profile capture
type ProfileConfig struct {
	Dir      string        `mapstructure:"dir" yaml:"dir"`
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
}

// LoggerConfig configures the zap logger
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("window.title", "backdrop")
	v.SetDefault("window.tps", 60)

	// -- Theme --
	v.SetDefault("theme.default", string(theme.Dark))
	v.SetDefault("theme.store", "")
	v.SetDefault("theme.watch", true)

	// -- Scene --
	v.SetDefault("scene.layers", []string{"blobs", "particles"})
	v.SetDefault("scene.seed", 0)
	v.SetDefault("scene.blobs.gradient", false)
	v.SetDefault("scene.blobs.vertices", 6)
	v.SetDefault("scene.blobs.jitter", false)

	// -- Profile --
	v.SetDefault("profile.dir", "profiles")
	v.SetDefault("profile.duration", "10s")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "backdrop")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// DefaultConfig returns the configuration with nothing overridden
func DefaultConfig() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		// Defaults are static, this only fires if SetDefaults is broken
		panic(fmt.Sprintf("invalid default config: %v", err))
	}
	return cfg
}

// Prepare sets defaults and environment handling on v and reads the config
// file. An explicit file must exist; otherwise backdrop.yaml is looked up in
// the working directory and is optional.
func Prepare(v *viper.Viper, file string) error {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("backdrop")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Load reads defaults, the config file and the environment into a Config
func Load(file string) (Config, error) {
	v := viper.New()
	if err := Prepare(v, file); err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// BACKDROP_SCENE_LAYERS="blobs, mesh" is split on commas by viper's decode hook
	for i, l := range cfg.Scene.Layers {
		cfg.Scene.Layers[i] = strings.TrimSpace(l)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for sane values
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := theme.Parse(c.Theme.Default); err != nil {
		return fmt.Errorf("theme.default: %w", err)
	}
	if c.Profile.Duration <= 0 {
		return fmt.Errorf("profile.duration must be positive, got %s", c.Profile.Duration)
	}
	if len(c.Scene.Layers) == 0 {
		return errors.New("scene.layers must name at least one layer")
	}
	seen := make(map[string]bool, len(c.Scene.Layers))
	for _, l := range c.Scene.Layers {
		if !scene.IsLayer(l) {
			return fmt.Errorf("scene.layers: unknown layer %q", l)
		}
		if seen[l] {
			return fmt.Errorf("scene.layers: layer %q listed twice", l)
		}
		seen[l] = true
	}
	// Zero picks the default count
	if v := c.Scene.Blobs.Vertices; v != 0 && (v < blobs.MinVertices || v > blobs.MaxVertices) {
		return fmt.Errorf("scene.blobs.vertices must be between %d and %d, got %d",
			blobs.MinVertices, blobs.MaxVertices, v)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}

// DefaultTheme returns the parsed starting theme
func (c Config) DefaultTheme() theme.Theme {
	t, err := theme.Parse(c.Theme.Default)
	if err != nil {
		return theme.Dark
	}
	return t
}
