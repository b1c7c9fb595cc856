package easing

import "math"

// Solve returns the eased value y for the progress x.
//
// For x in [0, 1], it finds the parameter t with x(t) = x, to within epsilon,
// and returns y(t). Outside of that range the curve is extended linearly along
// its end tangents: x < 0 yields StartGradient·x and x > 1 yields
// 1 + EndGradient·(x-1).
//
// Smaller values of epsilon yield more precise results at the cost of more
// iterations. See [EpsilonForDuration] for choosing epsilon based on the
// length of an animation.
func (c TimingCurve) Solve(x, epsilon float64) float64 {
	if x < 0.0 {
		return 0.0 + c.startGradient*x
	}
	if x > 1.0 {
		return 1.0 + c.endGradient*(x-1.0)
	}
	return c.SampleY(c.SolveX(x, epsilon))
}

// SolveX finds the curve parameter t for which x(t) = x, to within epsilon.
// x must already be in [0, 1].
//
// The initial guess comes from linear interpolation of the cached samples. It
// is refined with a few iterations of Newton's method and, if that fails to
// converge, with bisection. Bisection assumes that x(t) is monotonic, which
// holds for all curves whose control points have x coordinates in [0, 1]. For
// other curves the result may be a wrong root.
//
// SolveX never fails. If it doesn't converge, it returns its best estimate.
func (c TimingCurve) SolveX(x, epsilon float64) float64 {
	t0, t1, t2 := c.initialGuess(x)
	t2, ok := c.newton(x, t2, epsilon)
	if ok {
		return t2
	}
	return c.bisect(x, t0, t1, t2, epsilon)
}

// initialGuess finds the first cached sample that is at least x and linearly
// interpolates between it and its predecessor. It returns the bracket [t0, t1]
// of the two samples and the interpolated guess t2.
//
// If no sample reaches x, the bracket is empty (t0 = t1 = 0) and the guess is x
// itself.
func (c TimingCurve) initialGuess(x float64) (t0, t1, t2 float64) {
	const deltaT = 1.0 / (SplineSamples - 1)
	for i := 1; i < SplineSamples; i++ {
		if x <= c.samples[i] {
			t1 = deltaT * float64(i)
			t0 = t1 - deltaT
			// A curve that is flat in x over this interval would divide by
			// zero; start at the interval's beginning instead.
			if span := c.samples[i] - c.samples[i-1]; span != 0 {
				t2 = t0 + (t1-t0)*(x-c.samples[i-1])/span
			} else {
				t2 = t0
			}
			return t0, t1, t2
		}
	}
	return 0, 0, x
}

// newton refines the guess t2 with at most MaxNewtonIterations steps of
// Newton's method. It reports whether the result is within epsilon of x; if it
// isn't, the returned t is the refined guess to continue from.
func (c TimingCurve) newton(x, t2, epsilon float64) (float64, bool) {
	newtonEpsilon := min(BezierEpsilon, epsilon)
	var x2 float64
	for range MaxNewtonIterations {
		x2 = c.SampleX(t2) - x
		if math.Abs(x2) < newtonEpsilon {
			return t2, true
		}
		d2 := c.SampleDerivX(t2)
		if math.Abs(d2) < BezierEpsilon {
			break
		}
		t2 -= x2 / d2
	}
	// x2 is the residual of the last evaluated guess. After a full run of
	// iterations t2 has moved once more, closer to the root.
	return t2, math.Abs(x2) < epsilon
}

// bisect narrows the bracket [t0, t1] around the root, starting with the
// guess t2. Once the bracket collapses or stops shrinking without meeting
// epsilon, the last guess is returned.
func (c TimingCurve) bisect(x, t0, t1, t2, epsilon float64) float64 {
	for t0 < t1 {
		x2 := c.SampleX(t2)
		if math.Abs(x2-x) < epsilon {
			return t2
		}
		if x > x2 {
			t0 = t2
		} else {
			t1 = t2
		}
		mid := (t1 + t0) * 0.5
		if mid == t2 {
			// The bracket has shrunk to adjacent floats and the midpoint
			// rounds onto the current guess.
			break
		}
		t2 = mid
	}
	return t2
}
