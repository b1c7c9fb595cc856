package easing

import "slices"

// Samples returns n points (x, Solve(x, epsilon)) with x evenly spaced over
// [0, 1], including both ends. Values of n below 2 are treated as 2.
func (c TimingCurve) Samples(n int, epsilon float64) []Point {
	n = max(n, 2)
	out := make([]Point, n)
	for i := range n {
		x := float64(i) / float64(n-1)
		out[i] = Pt(x, c.Solve(x, epsilon))
	}
	return out
}

// IsMonotonic reports whether x(t) is non-decreasing for t in [0, 1]. This is
// the case for all curves whose control points have x coordinates in [0, 1],
// and is what [TimingCurve.SolveX] assumes when it falls back to bisection.
//
// IsMonotonic is purely informational; the solver does not consult it.
func (c TimingCurve) IsMonotonic() bool {
	// x'(t) only changes sign at its roots, so checking one point between
	// each pair of neighbouring roots suffices.
	roots, n := SolveQuadratic(c.cx, 2.0*c.bx, 3.0*c.ax)
	bounds := []float64{0, 1}
	for _, r := range roots[:n] {
		if r > 0 && r < 1 {
			bounds = append(bounds, r)
		}
	}
	slices.Sort(bounds)
	for i := 1; i < len(bounds); i++ {
		if c.SampleDerivX(0.5*(bounds[i-1]+bounds[i])) < 0 {
			return false
		}
	}
	return true
}
