package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFrames(t *testing.T) {
	t.Run("frames run once in request order", func(t *testing.T) {
		w := NewWindow(800, 600)
		var order []int
		w.RequestFrame(func() { order = append(order, 1) })
		w.RequestFrame(func() { order = append(order, 2) })

		w.Tick()
		w.Tick()

		assert.Equal(t, []int{1, 2}, order)
		assert.Equal(t, 0, w.PendingFrames())
		assert.Equal(t, 2, w.Stats().FramesRun)
	})

	t.Run("frames requested during a tick run on the next tick", func(t *testing.T) {
		w := NewWindow(800, 600)
		runs := 0
		var loop func()
		loop = func() {
			runs++
			w.RequestFrame(loop)
		}
		w.RequestFrame(loop)

		w.Tick()
		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, w.PendingFrames())

		w.Tick()
		assert.Equal(t, 2, runs)
	})

	t.Run("cancelled frames never run", func(t *testing.T) {
		w := NewWindow(800, 600)
		ran := false
		id := w.RequestFrame(func() { ran = true })
		w.CancelFrame(id)
		w.CancelFrame(id)
		w.CancelFrame(FrameID(999))

		w.Tick()
		assert.False(t, ran)
		assert.Equal(t, 1, w.Stats().FramesCancelled)
	})

	t.Run("a callback can cancel a later one in the same tick", func(t *testing.T) {
		w := NewWindow(800, 600)
		ran := false
		var second FrameID
		w.RequestFrame(func() { w.CancelFrame(second) })
		second = w.RequestFrame(func() { ran = true })

		w.Tick()
		assert.False(t, ran)
	})
}

func TestWindowListeners(t *testing.T) {
	w := NewWindow(800, 600)

	var sizes [][2]int
	resizeID := w.AddListener(EventResize, func(ev Event) {
		sizes = append(sizes, [2]int{ev.Width, ev.Height})
	})
	var cursor []float64
	w.AddListener(EventPointerMove, func(ev Event) {
		cursor = append(cursor, ev.X, ev.Y)
	})

	require.Equal(t, 1, w.ListenerCount(EventResize))
	require.Equal(t, 1, w.ListenerCount(EventPointerMove))

	w.Resize(800, 600) // unchanged, no event
	w.Resize(1024, 768)
	w.PointerMove(10, 20)

	assert.Equal(t, [][2]int{{1024, 768}}, sizes)
	assert.Equal(t, []float64{10, 20}, cursor)

	width, height := w.Viewport()
	assert.Equal(t, 1024, width)
	assert.Equal(t, 768, height)

	w.RemoveListener(resizeID)
	w.Resize(640, 480)
	assert.Len(t, sizes, 1)
	assert.Equal(t, 1, w.Listeners())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "resize", EventResize.String())
	assert.Equal(t, "pointermove", EventPointerMove.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
