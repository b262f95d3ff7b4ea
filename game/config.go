package game

import (
	"fmt"

	"backdrop/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowOptions holds the window settings applied before the loop starts
type WindowOptions struct {
	// Width and Height are the initial window size in pixels
	Width  int
	Height int

	// Title is shown in the window decoration
	Title string

	// TPS is the number of updates, and so animation frames, per second
	TPS int
}

// WindowOptionsFrom converts the loaded configuration
func WindowOptionsFrom(cfg config.WindowConfig) WindowOptions {
	return WindowOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		TPS:    cfg.TPS,
	}
}

// Run opens the window and blocks until it is closed. The scene is torn down
// before Run returns.
func Run(g *Game, opts WindowOptions) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
