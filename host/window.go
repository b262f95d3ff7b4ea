package host

import "sort"

// Stats counts scheduler and listener activity. Tests use it as a spy on
// the frame scheduling primitives.
type Stats struct {
	FramesRequested int
	FramesCancelled int
	FramesRun       int
	Ticks           int
}

type listener struct {
	kind EventKind
	fn   func(Event)
}

// Window is the single-threaded Host implementation driven by the game loop
// (or by the snapshot renderer). It is not safe for concurrent use.
type Window struct {
	width  int
	height int

	nextFrame    FrameID
	frames       map[FrameID]func()
	nextListener ListenerID
	listeners    map[ListenerID]listener

	stats Stats
}

// NewWindow creates a window host with the given viewport size
func NewWindow(width, height int) *Window {
	return &Window{
		width:     width,
		height:    height,
		frames:    make(map[FrameID]func()),
		listeners: make(map[ListenerID]listener),
	}
}

// Viewport returns the current viewport size
func (w *Window) Viewport() (int, int) {
	return w.width, w.height
}

// RequestFrame schedules fn for the next Tick
func (w *Window) RequestFrame(fn func()) FrameID {
	w.nextFrame++
	id := w.nextFrame
	w.frames[id] = fn
	w.stats.FramesRequested++
	return id
}

// CancelFrame removes a pending frame callback
func (w *Window) CancelFrame(id FrameID) {
	if _, ok := w.frames[id]; !ok {
		return
	}
	delete(w.frames, id)
	w.stats.FramesCancelled++
}

// AddListener registers an event listener
func (w *Window) AddListener(kind EventKind, fn func(Event)) ListenerID {
	w.nextListener++
	id := w.nextListener
	w.listeners[id] = listener{kind: kind, fn: fn}
	return id
}

// RemoveListener unregisters an event listener
func (w *Window) RemoveListener(id ListenerID) {
	delete(w.listeners, id)
}

// Tick runs every callback that was pending when the tick started, in the
// order they were requested. Callbacks requested during the tick run on the
// next one.
func (w *Window) Tick() {
	w.stats.Ticks++
	if len(w.frames) == 0 {
		return
	}

	ids := make([]FrameID, 0, len(w.frames))
	for id := range w.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		// An earlier callback may have cancelled this one
		fn, ok := w.frames[id]
		if !ok {
			continue
		}
		delete(w.frames, id)
		w.stats.FramesRun++
		fn()
	}
}

// Resize updates the viewport and notifies resize listeners if it changed
func (w *Window) Resize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width = width
	w.height = height
	w.dispatch(Event{Kind: EventResize, Width: width, Height: height})
}

// PointerMove notifies pointer listeners of the cursor position
func (w *Window) PointerMove(x, y float64) {
	w.dispatch(Event{Kind: EventPointerMove, X: x, Y: y})
}

// dispatch delivers an event to listeners in registration order
func (w *Window) dispatch(ev Event) {
	ids := make([]ListenerID, 0, len(w.listeners))
	for id, l := range w.listeners {
		if l.kind == ev.Kind {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if l, ok := w.listeners[id]; ok {
			l.fn(ev)
		}
	}
}

// PendingFrames returns the number of scheduled frame callbacks
func (w *Window) PendingFrames() int {
	return len(w.frames)
}

// ListenerCount returns the number of listeners registered for kind
func (w *Window) ListenerCount(kind EventKind) int {
	n := 0
	for _, l := range w.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}

// Listeners returns the total number of registered listeners
func (w *Window) Listeners() int {
	return len(w.listeners)
}

// Stats returns a copy of the activity counters
func (w *Window) Stats() Stats {
	return w.stats
}
