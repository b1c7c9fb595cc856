package easing

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var pointApprox9 = cmpopts.EquateApprox(0, 1e-8)

func TestSamples(t *testing.T) {
	pts := Linear.Samples(5, 1e-9)
	if len(pts) != 5 {
		t.Fatalf("got %d samples, want 5", len(pts))
	}
	want := []Point{Pt(0, 0), Pt(0.25, 0.25), Pt(0.5, 0.5), Pt(0.75, 0.75), Pt(1, 1)}
	diff(t, want, pts, pointApprox9)

	if n := len(Ease.Samples(0, 1e-6)); n != 2 {
		t.Errorf("got %d samples for n = 0, want 2", n)
	}
}

func TestSamplesMatchSolve(t *testing.T) {
	for _, pt := range EaseOut.Samples(17, 1e-7) {
		if got := EaseOut.Solve(pt.X, 1e-7); got != pt.Y {
			t.Errorf("sample at %v is %v, Solve returns %v", pt.X, pt.Y, got)
		}
	}
}

func TestIsMonotonic(t *testing.T) {
	tests := []struct {
		curve TimingCurve
		want  bool
	}{
		{Linear, true},
		{Ease, true},
		{EaseIn, true},
		{EaseOut, true},
		{EaseInOut, true},
		{NewTimingCurve(0, 0, 0, 0), true},
		{NewTimingCurve(1, 1, 1, 1), true},
		{NewTimingCurve(0.68, -0.55, 0.265, 1.55), true},
		{NewTimingCurve(1.0/3.0, 0, 2.0/3.0, 1), true},
		{NewTimingCurve(2, 0, -1, 1), false},
		{NewTimingCurve(-0.5, 0, 0.5, 1), false},
		{NewTimingCurve(0.5, 0, 1.5, 1), false},
	}
	for _, tt := range tests {
		if got := tt.curve.IsMonotonic(); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.curve, got, tt.want)
		}
	}
}
