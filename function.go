package easing

import (
	"math"
	"time"
)

// Func is a timing function. It maps progress, nominally in [0, 1], to an
// eased value, which is 0 at 0 and 1 at 1 but may overshoot in between.
type Func func(x float64) float64

// Func returns c as a timing function that solves with the given epsilon.
func (c TimingCurve) Func(epsilon float64) Func {
	return func(x float64) float64 {
		return c.Solve(x, epsilon)
	}
}

// Between evaluates f at x and maps the eased value onto [from, to].
func (f Func) Between(from, to, x float64) float64 {
	return Map(from, to, f(x))
}

// EpsilonForDuration returns a solver tolerance suitable for an animation of
// the given length. Longer animations show more frames and need more precise
// results. The tolerance is 1/(200·seconds); non-positive durations yield
// [BezierEpsilon].
func EpsilonForDuration(d time.Duration) float64 {
	if d <= 0 {
		return BezierEpsilon
	}
	return 1.0 / (200.0 * d.Seconds())
}

// Map linearly maps value from [0, 1] onto [from, to].
func Map(from, to, value float64) float64 {
	return from + (to-from)*value
}

// Remap linearly maps value from [fromIn, toIn] onto [fromOut, toOut]. If the
// input range is empty, fromOut is returned.
func Remap(fromIn, toIn, fromOut, toOut, value float64) float64 {
	if fromIn == toIn {
		return fromOut
	}
	return Map(fromOut, toOut, (value-fromIn)/(toIn-fromIn))
}

// Clamp restricts x to [0, 1]. Timing curves extrapolate outside of that
// range; Clamp is for callers that want to hold the end values instead.
func Clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
