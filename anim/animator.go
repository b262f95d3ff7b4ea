package anim

import "backdrop/host"

// Animator owns a continuous chain of frame callbacks on a host. Each frame
// runs step and then requests the next frame, until Stop is called.
type Animator struct {
	host    host.Host
	step    func()
	pending host.FrameID
	running bool
	frames  int
}

// NewAnimator creates a stopped animator that will call step once per frame
func NewAnimator(h host.Host, step func()) *Animator {
	return &Animator{
		host: h,
		step: step,
	}
}

// Start begins the frame loop. Calling Start on a running animator does nothing.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.pending = a.host.RequestFrame(a.tick)
}

// Stop cancels the outstanding frame callback. Stop is idempotent and safe to
// call from inside step.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	if a.pending != 0 {
		a.host.CancelFrame(a.pending)
		a.pending = 0
	}
}

// Running reports whether the loop is active
func (a *Animator) Running() bool {
	return a.running
}

// Frames returns the number of frames stepped since creation
func (a *Animator) Frames() int {
	return a.frames
}

func (a *Animator) tick() {
	// This callback has been consumed by the host
	a.pending = 0
	if !a.running {
		return
	}

	a.frames++
	a.step()

	// step may have stopped the loop
	if a.running {
		a.pending = a.host.RequestFrame(a.tick)
	}
}
