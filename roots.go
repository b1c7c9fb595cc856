package easing

import "math"

// SolveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0.
//
// If the equation is nearly linear, the root of the linear part is returned;
// the other root might be out of representable range. If all coefficients are
// zero, so that every x is a solution, a single 0 is returned. Two roots are
// returned in ascending order.
//
// The second return value states how many roots were found.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if c2 == 0 || math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small; solve c0 + c1 x = 0.
		if c0 == 0 && c1 == 0 {
			return [2]float64{0}, 1
		}
		root := -c0 / c1
		if math.IsInf(root, 0) {
			return [2]float64{}, 0
		}
		return [2]float64{root}, 1
	}

	var root1 float64
	arg := sc1*sc1 - 4.0*sc0
	switch {
	case math.IsInf(arg, 0):
		// sc1² overflowed. Take one root from sc1 x + x² = 0 and derive the
		// other from the product of roots.
		root1 = -sc1
	case arg < 0:
		return [2]float64{}, 0
	case arg == 0:
		return [2]float64{-0.5 * sc1}, 1
	default:
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	return [2]float64{min(root1, root2), max(root1, root2)}, 2
}
