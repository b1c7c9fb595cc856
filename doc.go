// Package easing implements timing functions for animation based on cubic
// Bézier curves, as specified by CSS.
//
// A timing function maps progress through an animation, the x axis, to the
// eased progress of the animated value, the y axis. [TimingCurve] describes
// such a function as a cubic Bézier curve anchored at (0, 0) and (1, 1), whose
// shape is determined by two interior control points. CSS writes these as
// cubic-bezier(p1x, p1y, p2x, p2y).
//
// # Solving
//
// The curve is parametric: both x and y are cubic polynomials of a parameter
// t. Evaluating the timing function for a given x thus requires inverting x(t)
// first. [TimingCurve.Solve] does this numerically, combining a lookup table
// of precomputed samples for an initial guess, Newton's method for fast
// convergence near the root and bisection as a fallback where Newton's method
// stalls. The precision is controlled by an epsilon; see
// [EpsilonForDuration] for deriving one from the length of an animation.
//
// Inputs outside of [0, 1] are extrapolated linearly along the tangents at the
// curve's ends, which makes timing curves usable for animations that overshoot
// their nominal range.
//
// Solving assumes that x(t) is monotonic, which is the case when both control
// points have x coordinates in [0, 1]. CSS requires this, but this package
// doesn't enforce it; for other curves, results are unspecified. Use
// [TimingCurve.IsMonotonic] to check a curve.
//
// # Presets and other easings
//
// The CSS keyword timing functions are available as [Linear], [Ease],
// [EaseIn], [EaseOut] and [EaseInOut], and by name through [Preset].
//
// For effects that cubic Béziers cannot express, such as bouncing, the package
// also provides a family of closed-form easings of type [Func], including
// [EaseOutBounce] and [EaseInOutElastic].
package easing
