package canvas

import "backdrop/geom"

// Transform tracks the translation stack shared by canvas implementations
type Transform struct {
	origin geom.Vec
	stack  []geom.Vec
}

// Save pushes the current origin
func (t *Transform) Save() {
	t.stack = append(t.stack, t.origin)
}

// Restore pops the last saved origin. An unbalanced Restore resets to zero.
func (t *Transform) Restore() {
	if len(t.stack) == 0 {
		t.origin = geom.Vec{}
		return
	}
	t.origin = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate moves the origin
func (t *Transform) Translate(dx, dy float64) {
	t.origin.X += dx
	t.origin.Y += dy
}

// Origin returns the current origin in device coordinates
func (t *Transform) Origin() geom.Vec {
	return t.origin
}

// Apply converts a point to device coordinates
func (t *Transform) Apply(p geom.Vec) geom.Vec {
	return p.Add(t.origin)
}

// Depth returns the number of saved origins
func (t *Transform) Depth() int {
	return len(t.stack)
}

// Reset clears the stack and the origin
func (t *Transform) Reset() {
	t.origin = geom.Vec{}
	t.stack = t.stack[:0]
}
