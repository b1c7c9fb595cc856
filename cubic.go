package easing

// CubicBez is a general cubic Bézier curve. [TimingCurve.CubicBez] converts a
// timing curve to this representation, for use with geometry code that
// expects all four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t using the Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := mt * mt * t * 3.0
	d := mt * t * t * 3.0
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	pm := p012.Lerp(p123, 0.5)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// TimingCurve reports whether c is anchored at (0, 0) and (1, 1) and, if so,
// returns it as a timing curve.
func (c CubicBez) TimingCurve() (TimingCurve, bool) {
	if c.P0 != Pt(0, 0) || c.P3 != Pt(1, 1) {
		return TimingCurve{}, false
	}
	return NewTimingCurve(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y), true
}
