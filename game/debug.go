package game

import (
	"fmt"
	"strings"

	"backdrop/blobs"
	"backdrop/particles"
)

// DebugState holds global debug flags that persist across scene rebuilds
type DebugState struct {
	ShowOverlay bool // FPS, theme and scheduler counters in the top left corner
}

// Global debug state instance
var globalDebugState = &DebugState{
	ShowOverlay: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// debugText renders the overlay text for the session
func debugText(s *Session, fps float64) string {
	var b strings.Builder
	w, h := s.Window().Viewport()
	stats := s.Window().Stats()

	fmt.Fprintf(&b, "FPS: %.1f\n", fps)
	fmt.Fprintf(&b, "Viewport: %dx%d\n", w, h)
	fmt.Fprintf(&b, "Theme: %s (T to toggle)\n", s.Theme())
	fmt.Fprintf(&b, "Frames: %d pending, %d run, %d cancelled\n",
		s.Window().PendingFrames(), stats.FramesRun, stats.FramesCancelled)
	fmt.Fprintf(&b, "Listeners: %d\n", s.Window().Listeners())

	for _, l := range s.Scene().Layers() {
		switch f := l.(type) {
		case *particles.Field:
			fmt.Fprintf(&b, "particles: %d\n", len(f.Particles()))
		case *blobs.Field:
			fmt.Fprintf(&b, "blobs: %d\n", len(f.Blobs()))
		default:
			fmt.Fprintf(&b, "%s: mounted=%t\n", l.Name(), l.Mounted())
		}
	}
	return b.String()
}
