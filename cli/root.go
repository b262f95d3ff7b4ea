// Package cli wires configuration, logging and the scene into the backdrop command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backdrop/blobs"
	"backdrop/config"
	"backdrop/logging"
	"backdrop/scene"
	"backdrop/theme"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state shared by every command of one invocation
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the command tree. The root command opens the window.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: viper.New(), logger: zap.NewNop()})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "backdrop",
		Short: "Animated portfolio background: a cursor-reactive particle network over organic blobs.",
		// Version is set at build time. See version.go.
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runWindow,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./backdrop.yaml)")
	flags.String("theme", "", "theme to start with: dark or light")
	flags.StringSlice("layers", nil, "layers bottom to top: blobs, particles, mesh")
	flags.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	bindFlag(a.v, "theme.default", flags.Lookup("theme"))
	bindFlag(a.v, "scene.layers", flags.Lookup("layers"))
	bindFlag(a.v, "scene.seed", flags.Lookup("seed"))
	bindFlag(a.v, "logger.level", flags.Lookup("log-level"))

	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	root.AddCommand(newSnapshotCommand(a), newVersionCommand())
	return root
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		// Only fails for a nil flag, which is a programming error
		panic(fmt.Sprintf("failed to bind flag for %s: %v", key, err))
	}
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if logging.Initialized() {
			logging.GetLogger().Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and initializes logging before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.Prepare(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.InitializeLogger(cfg.Logger)
	a.logger = logging.GetLogger()
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Strings("layers", cfg.Scene.Layers),
		zap.String("theme", cfg.Theme.Default))
	return nil
}

// seed resolves the configured seed, drawing one from the clock when unset
func (a *app) seed() uint64 {
	if a.cfg.Scene.Seed != 0 {
		return a.cfg.Scene.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (a *app) blobOptions() blobs.Options {
	return blobs.Options{
		Vertices: a.cfg.Scene.Blobs.Vertices,
		Jitter:   a.cfg.Scene.Blobs.Jitter,
		Gradient: a.cfg.Scene.Blobs.Gradient,
	}
}

func (a *app) sceneOptions(t theme.Theme, seed uint64) scene.Options {
	return scene.Options{
		Layers: a.cfg.Scene.Layers,
		Theme:  t,
		Blobs:  a.blobOptions(),
		Rand:   scene.NewRand(seed),
		Logger: a.logger,
	}
}
