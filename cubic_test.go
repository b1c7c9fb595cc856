package easing

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var pointApprox = cmpopts.EquateApprox(0, 1e-12)

func TestCubicBezEval(t *testing.T) {
	// y = x^3
	c := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 0), Pt(1, 1)}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / n
		p := c.Eval(ts)
		if d := math.Abs(p.Y - math.Pow(p.X, 3)); d > 1e-12 {
			t.Errorf("t=%v: got %v, off by %g", ts, p, d)
		}
	}
	diff(t, c.Start(), c.Eval(0))
	diff(t, c.End(), c.Eval(1))
}

func TestCubicBezSubdivide(t *testing.T) {
	c := Ease.CubicBez()
	c0, c1 := c.Subdivide()
	diff(t, c.Eval(0.5), c0.End(), pointApprox)
	diff(t, c.Eval(0.5), c1.Start(), pointApprox)
	for _, ts := range []float64{0, 0.25, 0.5, 0.75, 1} {
		diff(t, c.Eval(ts*0.5), c0.Eval(ts), pointApprox)
		diff(t, c.Eval(0.5+ts*0.5), c1.Eval(ts), pointApprox)
	}
}

func TestCubicBezTimingCurve(t *testing.T) {
	tc, ok := Ease.CubicBez().TimingCurve()
	if !ok {
		t.Fatal("conversion of a timing curve failed")
	}
	if tc != Ease {
		t.Errorf("got %v, want %v", tc, Ease)
	}

	c := CubicBez{Pt(0, 0), Pt(0.25, 0.1), Pt(0.25, 1), Pt(2, 1)}
	if _, ok := c.TimingCurve(); ok {
		t.Errorf("%v isn't anchored at (1, 1) but converted", c)
	}
}

func TestCubicBezNonFinite(t *testing.T) {
	c := NewTimingCurve(math.Inf(1), 0, 0.5, 1).CubicBez()
	if !c.IsInf() {
		t.Error("expected infinite control point to be detected")
	}
	c = NewTimingCurve(0.5, math.NaN(), 0.5, 1).CubicBez()
	if !c.IsNaN() {
		t.Error("expected NaN control point to be detected")
	}
	if Ease.CubicBez().IsInf() || Ease.CubicBez().IsNaN() {
		t.Error("finite curve reported as non-finite")
	}
}
