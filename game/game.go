package game

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Game adapts a Session to ebiten's game loop
type Game struct {
	ctx      context.Context
	session  *Session
	input    *Input
	profiler *Profiler
	logger   *zap.Logger

	// The cursor is only reported once it leaves the position ebiten
	// reported first, which is (0, 0) until the pointer enters the window.
	cursorBaseX, cursorBaseY int
	cursorBaseSet            bool
	cursorMoved              bool

	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastUpdateTime   time.Time

	started bool
}

// NewGame creates the ebiten game for session. The profiler may be nil.
// The window closes once ctx is done.
func NewGame(ctx context.Context, session *Session, input *Input, profiler *Profiler, logger *zap.Logger) *Game {
	return &Game{
		ctx:            ctx,
		session:        session,
		input:          input,
		profiler:       profiler,
		logger:         logger.Named("game"),
		fps:            60.0,
		lastUpdateTime: time.Now(),
	}
}

// Update handles input and runs one animation frame
func (g *Game) Update() error {
	if g.interrupted() {
		g.logger.Info("interrupted, closing window", zap.Error(context.Cause(g.ctx)))
		return ebiten.Termination
	}
	if !g.started {
		g.session.Start()
		g.started = true
	}

	now := time.Now()
	dt := min(now.Sub(g.lastUpdateTime).Seconds(), 0.1)
	g.lastUpdateTime = now

	// The overlay FPS is averaged over half a second
	g.fpsUpdateTimer += dt
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer >= 0.5 {
		g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
		g.fpsUpdateCounter = 0
		g.fpsUpdateTimer = 0.0
	}

	for _, action := range g.input.Actions() {
		g.handle(action)
	}

	g.trackCursor(g.input.Cursor())
	g.session.Tick()
	return nil
}

func (g *Game) interrupted() bool {
	select {
	case <-g.ctx.Done():
		return true
	default:
		return false
	}
}

func (g *Game) handle(action Action) {
	switch action {
	case ActionToggleTheme:
		if err := g.session.ToggleTheme(); err != nil {
			g.logger.Warn("theme switched but not saved", zap.Error(err))
		}
	case ActionToggleDebug:
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	case ActionProfile:
		if g.profiler == nil {
			return
		}
		if err := g.profiler.CaptureProfile("manual"); err != nil {
			if errors.Is(err, ErrProfiling) {
				g.logger.Debug("profile capture already running")
				return
			}
			g.logger.Warn("profile capture not started", zap.Error(err))
		}
	}
}

func (g *Game) trackCursor(x, y int) {
	if !g.cursorBaseSet {
		g.cursorBaseX, g.cursorBaseY, g.cursorBaseSet = x, y, true
		return
	}
	if !g.cursorMoved {
		if x == g.cursorBaseX && y == g.cursorBaseY {
			return
		}
		g.cursorMoved = true
	}
	g.session.PointerMove(x, y)
}

// Draw fills the theme background and composites the layers bottom to top
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.session.Theme().Background())

	for _, l := range g.session.Scene().Layers() {
		surface, ok := l.Surface().(*Surface)
		if !ok || !l.Mounted() || surface.Image() == nil {
			continue
		}
		screen.DrawImage(surface.Image(), nil)
	}

	if GetDebugState().ShowOverlay {
		ebitenutil.DebugPrint(screen, debugText(g.session, g.fps))
	}
}

// Layout follows the window size so the layers always cover the viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close tears the scene down and waits for a running profile capture
func (g *Game) Close() {
	if g.started {
		g.session.Stop()
		g.started = false
	}
	if g.profiler != nil {
		g.profiler.Wait()
	}
}
