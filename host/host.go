package host

// FrameID identifies a scheduled frame callback
type FrameID uint64

// ListenerID identifies a registered event listener
type ListenerID uint64

// EventKind is the type of host event a listener subscribes to
type EventKind int

const (
	// EventResize fires when the viewport changes size
	EventResize EventKind = iota
	// EventPointerMove fires when the cursor moves inside the viewport
	EventPointerMove
)

// String returns a readable name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners. Width/Height are set for resize events,
// X/Y for pointer events.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	X, Y   float64
}

// Host is the environment a layer is mounted into: a viewport, a per-frame
// callback scheduler and a listener registry.
type Host interface {
	// Viewport returns the current viewport size in pixels
	Viewport() (width, height int)

	// RequestFrame schedules fn to run once on the next frame
	RequestFrame(fn func()) FrameID

	// CancelFrame cancels a pending frame callback. Unknown IDs are ignored.
	CancelFrame(id FrameID)

	// AddListener registers fn for events of the given kind
	AddListener(kind EventKind, fn func(Event)) ListenerID

	// RemoveListener unregisters a listener. Unknown IDs are ignored.
	RemoveListener(id ListenerID)
}
