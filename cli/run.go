package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"backdrop/canvas"
	"backdrop/game"
	"backdrop/host"
	"backdrop/scene"
	"backdrop/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// themeStore opens the preference file, nil when it cannot be located
func (a *app) themeStore() *theme.Store {
	path := a.cfg.Theme.Store
	if path == "" {
		var err error
		path, err = theme.DefaultPath()
		if err != nil {
			a.logger.Warn("theme preference disabled", zap.Error(err))
			return nil
		}
	}
	return theme.NewStore(path)
}

// startTheme picks the first theme: an explicit --theme flag, then the stored
// preference, then the configured default.
func (a *app) startTheme(cmd *cobra.Command, store *theme.Store) theme.Theme {
	fallback := a.cfg.DefaultTheme()
	if cmd.Flags().Changed("theme") || store == nil {
		return fallback
	}
	t, err := store.Load(fallback)
	if err != nil {
		a.logger.Warn("ignoring stored theme", zap.String("path", store.Path()), zap.Error(err))
		return fallback
	}
	return t
}

func (a *app) runWindow(cmd *cobra.Command, args []string) error {
	store := a.themeStore()
	start := a.startTheme(cmd, store)
	seed := a.seed()

	sc, err := scene.Build(a.sceneOptions(start, seed), func(string) canvas.Canvas {
		return game.NewSurface()
	})
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}

	window := host.NewWindow(a.cfg.Window.Width, a.cfg.Window.Height)
	session := game.NewSession(window, sc, store, a.logger)

	if store != nil && a.cfg.Theme.Watch {
		watcher, err := a.watchTheme(cmd, store, start)
		if err != nil {
			a.logger.Warn("not following theme file changes", zap.Error(err))
		} else {
			defer watcher.Stop()
			session.Follow(watcher)
		}
	}

	profiler := game.NewProfiler(a.cfg.Profile.Dir, a.cfg.Profile.Duration, a.logger)
	g := game.NewGame(cmd.Context(), session, game.NewInput(game.DefaultKeyBindings()), profiler, a.logger)

	a.logger.Info("opening window",
		zap.Int("width", a.cfg.Window.Width),
		zap.Int("height", a.cfg.Window.Height),
		zap.Strings("layers", a.cfg.Scene.Layers),
		zap.String("theme", start.String()),
		zap.Uint64("seed", seed))
	return game.Run(g, game.WindowOptionsFrom(a.cfg.Window))
}

func (a *app) watchTheme(cmd *cobra.Command, store *theme.Store, current theme.Theme) (*theme.Watcher, error) {
	// The directory has to exist before it can be watched
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create theme dir: %w", err)
	}
	watcher, err := theme.NewWatcher(store, current, a.logger)
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(cmd.Context()); err != nil {
		watcher.Stop()
		return nil, err
	}
	return watcher, nil
}
