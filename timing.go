package easing

import "fmt"

// SplineSamples is the number of x(t) samples cached by [NewTimingCurve] to
// seed the inverse solver. The samples are taken at t = i / (SplineSamples-1).
const SplineSamples = 11

const (
	// BezierEpsilon is the tolerance below which Newton iteration stops early,
	// and below which a derivative is considered too flat to divide by.
	BezierEpsilon = 1e-7
	// MaxNewtonIterations bounds the Newton phase of [TimingCurve.SolveX].
	MaxNewtonIterations = 4
)

// TimingCurve is a cubic Bézier curve whose first and last control points are
// fixed at (0, 0) and (1, 1). It maps progress along the x axis to an eased
// value along the y axis, as used by CSS timing functions.
//
// The zero value is not useful; construct curves with [NewTimingCurve].
// A TimingCurve is immutable and safe for concurrent use.
type TimingCurve struct {
	p1 Point
	p2 Point

	// Polynomial coefficients of x(t) = ((ax t + bx) t + cx) t and the
	// corresponding y(t).
	ax, bx, cx float64
	ay, by, cy float64

	startGradient float64
	endGradient   float64

	samples [SplineSamples]float64
}

// NewTimingCurve returns the timing curve with interior control points
// (p1x, p1y) and (p2x, p2y).
//
// All finite inputs are accepted. Control points may lie outside of the unit
// square, producing curves that overshoot. Degenerate configurations, such as
// control points that coincide with the anchors, are handled by the gradient
// rules documented on [TimingCurve.StartGradient] and
// [TimingCurve.EndGradient].
func NewTimingCurve(p1x, p1y, p2x, p2y float64) TimingCurve {
	c := TimingCurve{
		p1: Pt(p1x, p1y),
		p2: Pt(p2x, p2y),
	}

	// The implicit first and last control points are (0,0) and (1,1).
	c.cx = 3.0 * p1x
	c.bx = 3.0*(p2x-p1x) - c.cx
	c.ax = 1.0 - c.cx - c.bx

	c.cy = 3.0 * p1y
	c.by = 3.0*(p2y-p1y) - c.cy
	c.ay = 1.0 - c.cy - c.by

	c.startGradient = startGradient(p1x, p1y, p2x, p2y)
	c.endGradient = endGradient(p1x, p1y, p2x, p2y)

	const deltaT = 1.0 / (SplineSamples - 1)
	for i := range SplineSamples {
		c.samples[i] = c.SampleX(float64(i) * deltaT)
	}
	return c
}

// startGradient computes the slope used to extrapolate for x < 0. The cases
// are tried in order and the first match wins.
func startGradient(p1x, p1y, p2x, p2y float64) float64 {
	switch {
	case p1x > 0:
		// The line from the anchor to p1 is tangent to the curve.
		return p1y / p1x
	case p1y == 0 && p2x > 0:
		// p1 coincides with the anchor, so the tangent runs through p2.
		return p2y / p2x
	case p1y == 0 && p2y == 0:
		// Both control points sit on anchors; the curve is linear.
		return 1
	default:
		// Vertical tangent. An infinite gradient isn't usable for
		// extrapolation, so flatten it.
		return 0
	}
}

// endGradient is the mirror image of startGradient, anchored at (1, 1).
func endGradient(p1x, p1y, p2x, p2y float64) float64 {
	switch {
	case p2x < 1:
		return (p2y - 1) / (p2x - 1)
	case p2y == 1 && p1x < 1:
		return (p1y - 1) / (p1x - 1)
	case p2y == 1 && p1y == 1:
		return 1
	default:
		return 0
	}
}

// P1 returns the first interior control point.
func (c TimingCurve) P1() Point { return c.p1 }

// P2 returns the second interior control point.
func (c TimingCurve) P2() Point { return c.p2 }

// StartGradient returns the slope used by [TimingCurve.Solve] for x < 0.
//
// If p1 lies to the right of the origin, it is the slope of the line from the
// origin to p1. Otherwise, if p1 coincides with the origin and p2 lies to its
// right, it is the slope towards p2. If both control points have a y of zero it
// is 1, and in the remaining case, a vertical tangent, it is 0.
func (c TimingCurve) StartGradient() float64 { return c.startGradient }

// EndGradient returns the slope used by [TimingCurve.Solve] for x > 1. It
// follows the same rules as [TimingCurve.StartGradient], mirrored around
// (1, 1).
func (c TimingCurve) EndGradient() float64 { return c.endGradient }

// CubicBez returns the curve as a general cubic Bézier, with the implicit
// anchors made explicit.
func (c TimingCurve) CubicBez() CubicBez {
	return CubicBez{
		P0: Pt(0, 0),
		P1: c.p1,
		P2: c.p2,
		P3: Pt(1, 1),
	}
}

// SampleX evaluates x(t). It is defined for all t, not just [0, 1].
func (c TimingCurve) SampleX(t float64) float64 {
	// ax t³ + bx t² + cx t, using Horner's rule.
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

// SampleY evaluates y(t).
func (c TimingCurve) SampleY(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

// SampleDerivX evaluates dx/dt at t.
func (c TimingCurve) SampleDerivX(t float64) float64 {
	return (3.0*c.ax*t+2.0*c.bx)*t + c.cx
}

// Eval returns the point (x(t), y(t)).
func (c TimingCurve) Eval(t float64) Point {
	return Pt(c.SampleX(t), c.SampleY(t))
}

func (c TimingCurve) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.p1.X, c.p1.Y, c.p2.X, c.p2.Y)
}
