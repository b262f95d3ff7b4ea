package geom

// QuadPoint evaluates the quadratic Bezier curve (p0, ctrl, p1) at t in [0, 1]
func QuadPoint(p0, ctrl, p1 Vec, t float64) Vec {
	u := 1 - t
	return Vec{
		X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
	}
}

// SmoothClosed flattens a closed ring of vertices into a rounded outline.
// Each vertex acts as the control point of a quadratic curve joining the
// midpoints of its two neighbouring edges, so the outline passes smoothly
// between consecutive vertex pairs instead of through the vertices.
// steps is the number of line segments used per curve. The returned polyline
// is implicitly closed (the last point connects back to the first).
func SmoothClosed(points []Vec, steps int) []Vec {
	n := len(points)
	if n < 3 {
		out := make([]Vec, n)
		copy(out, points)
		return out
	}
	if steps < 1 {
		steps = 1
	}

	out := make([]Vec, 0, n*steps)
	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		ctrl := points[i]
		next := points[(i+1)%n]

		start := Mid(prev, ctrl)
		end := Mid(ctrl, next)

		// The end point is the start of the next curve, skip it here
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, QuadPoint(start, ctrl, end, t))
		}
	}
	return out
}
