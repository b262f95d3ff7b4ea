package anim

import (
	"testing"

	"backdrop/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorLoop(t *testing.T) {
	w := host.NewWindow(100, 100)
	steps := 0
	a := NewAnimator(w, func() { steps++ })

	a.Start()
	a.Start()
	require.True(t, a.Running())
	require.Equal(t, 1, w.PendingFrames())

	for i := 0; i < 5; i++ {
		w.Tick()
	}
	assert.Equal(t, 5, steps)
	assert.Equal(t, 5, a.Frames())
	assert.Equal(t, 1, w.PendingFrames())
}

func TestAnimatorStop(t *testing.T) {
	t.Run("stop cancels the outstanding frame exactly once", func(t *testing.T) {
		w := host.NewWindow(100, 100)
		steps := 0
		a := NewAnimator(w, func() { steps++ })

		a.Start()
		w.Tick()
		w.Tick()

		a.Stop()
		a.Stop()

		assert.False(t, a.Running())
		assert.Equal(t, 0, w.PendingFrames())
		assert.Equal(t, 1, w.Stats().FramesCancelled)

		w.Tick()
		w.Tick()
		assert.Equal(t, 2, steps)
	})

	t.Run("stop from inside step does not reschedule", func(t *testing.T) {
		w := host.NewWindow(100, 100)
		var a *Animator
		a = NewAnimator(w, func() { a.Stop() })

		a.Start()
		w.Tick()

		assert.False(t, a.Running())
		assert.Equal(t, 0, w.PendingFrames())
		// The frame that was running had already been consumed
		assert.Equal(t, 0, w.Stats().FramesCancelled)
	})

	t.Run("restart after stop", func(t *testing.T) {
		w := host.NewWindow(100, 100)
		steps := 0
		a := NewAnimator(w, func() { steps++ })

		a.Start()
		a.Stop()
		a.Start()
		w.Tick()

		assert.Equal(t, 1, steps)
		assert.Equal(t, 1, w.PendingFrames())
	})
}
