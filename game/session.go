package game

import (
	"fmt"

	"backdrop/host"
	"backdrop/scene"
	"backdrop/theme"

	"go.uber.org/zap"
)

// Feed delivers theme changes made outside the session. Expect tells it the
// theme the session is about to save so the save is not reported back.
type Feed interface {
	Changes() <-chan theme.Theme
	Expect(t theme.Theme)
}

// Session connects a scene to its host window, the theme preference file and
// the external theme change feed. It holds no ebiten state so headless
// callers drive it the same way the window does.
type Session struct {
	window *host.Window
	scene  *scene.Scene
	store  *theme.Store // nil disables persistence
	logger *zap.Logger

	feed Feed

	cursorX, cursorY int
	cursorSeen       bool
}

// NewSession creates a session. Call Start to mount the scene.
func NewSession(window *host.Window, sc *scene.Scene, store *theme.Store, logger *zap.Logger) *Session {
	return &Session{
		window: window,
		scene:  sc,
		store:  store,
		logger: logger.Named("session"),
	}
}

// Follow makes every Tick apply theme changes delivered by feed
func (s *Session) Follow(feed Feed) {
	s.feed = feed
}

// Window returns the host the scene is mounted on
func (s *Session) Window() *host.Window { return s.window }

// Scene returns the layer stack
func (s *Session) Scene() *scene.Scene { return s.scene }

// Theme returns the active theme
func (s *Session) Theme() theme.Theme { return s.scene.Theme() }

// Start mounts the scene on the window
func (s *Session) Start() {
	s.scene.Mount(s.window)
}

// Stop unmounts the scene. The window keeps no frames or listeners afterwards.
func (s *Session) Stop() {
	s.scene.Unmount()
	stats := s.window.Stats()
	s.logger.Debug("stopped",
		zap.Int("frames_run", stats.FramesRun),
		zap.Int("frames_cancelled", stats.FramesCancelled),
		zap.Int("pending", s.window.PendingFrames()),
		zap.Int("listeners", s.window.Listeners()))
}

// Resize forwards a viewport change
func (s *Session) Resize(width, height int) {
	s.window.Resize(width, height)
}

// PointerMove forwards the cursor position when it differs from the last one.
// A cursor that never moved is not reported.
func (s *Session) PointerMove(x, y int) {
	if s.cursorSeen && x == s.cursorX && y == s.cursorY {
		return
	}
	s.cursorX, s.cursorY, s.cursorSeen = x, y, true
	s.window.PointerMove(float64(x), float64(y))
}

// Tick applies pending external theme changes and runs one animation frame
func (s *Session) Tick() {
	s.drainChanges()
	s.window.Tick()
}

// drainChanges applies only the newest pending change
func (s *Session) drainChanges() {
	if s.feed == nil {
		return
	}
	latest := s.scene.Theme()
drain:
	for {
		select {
		case t := <-s.feed.Changes():
			latest = t
		default:
			break drain
		}
	}
	if latest == s.scene.Theme() {
		return
	}
	s.logger.Info("theme changed externally", zap.String("theme", latest.String()))
	s.scene.SetTheme(latest)
}

// SetTheme switches the scene to t and stores the preference
func (s *Session) SetTheme(t theme.Theme) error {
	s.scene.SetTheme(t)
	if s.store == nil {
		return nil
	}
	if s.feed != nil {
		s.feed.Expect(t)
	}
	if err := s.store.Save(t); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

// ToggleTheme flips between dark and light
func (s *Session) ToggleTheme() error {
	return s.SetTheme(s.scene.Theme().Toggle())
}
