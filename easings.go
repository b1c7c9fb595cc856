package easing

import "math"

// Closed-form easing functions, following https://easings.net/. They are
// cheaper to evaluate than timing curves but cannot be tuned, except for the
// Back, Elastic and Bounce families, whose constructors take parameters.

// LinearFunc returns x unchanged.
func LinearFunc(x float64) float64 { return x }

func EaseInSine(x float64) float64    { return 1 - math.Cos(x*math.Pi/2) }
func EaseOutSine(x float64) float64   { return math.Sin(x * math.Pi / 2) }
func EaseInOutSine(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 }

func EaseInQuad(x float64) float64  { return x * x }
func EaseOutQuad(x float64) float64 { return 1 - (1-x)*(1-x) }
func EaseInOutQuad(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	return 1 - math.Pow(-2*x+2, 2)/2
}

func EaseInCubic(x float64) float64  { return x * x * x }
func EaseOutCubic(x float64) float64 { return 1 - math.Pow(1-x, 3) }
func EaseInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

func EaseInQuart(x float64) float64  { return x * x * x * x }
func EaseOutQuart(x float64) float64 { return 1 - math.Pow(1-x, 4) }
func EaseInOutQuart(x float64) float64 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 4)/2
}

func EaseInQuint(x float64) float64  { return x * x * x * x * x }
func EaseOutQuint(x float64) float64 { return 1 - math.Pow(1-x, 5) }
func EaseInOutQuint(x float64) float64 {
	if x < 0.5 {
		return 16 * x * x * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 5)/2
}

func EaseInExpo(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Pow(2, 10*x-10)
}

func EaseOutExpo(x float64) float64 {
	if x == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*x)
}

func EaseInOutExpo(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}

func EaseInCirc(x float64) float64  { return 1 - math.Sqrt(1-x*x) }
func EaseOutCirc(x float64) float64 { return math.Sqrt(1 - (x-1)*(x-1)) }
func EaseInOutCirc(x float64) float64 {
	if x < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*x, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*x+2, 2)) + 1) / 2
}

// Default parameters of the parameterised easing families.
const (
	DefaultBackOvershoot      = 1.70158
	DefaultBackInOutScale     = 1.525
	DefaultElasticPeriod      = 2.094395
	DefaultElasticInOutPeriod = 1.39626
	DefaultBounceStrength     = 7.5625
	DefaultBounceDivisor      = 2.75
)

// NewEaseInBack returns an easing that pulls back by an amount controlled by s
// before moving towards the end.
func NewEaseInBack(s float64) Func {
	return func(x float64) float64 {
		return (s+1)*x*x*x - s*x*x
	}
}

// NewEaseOutBack returns an easing that overshoots the end by an amount
// controlled by s and settles back.
func NewEaseOutBack(s float64) Func {
	return func(x float64) float64 {
		return 1 + (s+1)*math.Pow(x-1, 3) + s*math.Pow(x-1, 2)
	}
}

// NewEaseInOutBack combines [NewEaseInBack] and [NewEaseOutBack]; v scales the
// overshoot.
func NewEaseInOutBack(s, v float64) Func {
	k := s * v
	return func(x float64) float64 {
		if x < 0.5 {
			return math.Pow(2*x, 2) * ((k+1)*2*x - k) / 2
		}
		return (math.Pow(2*x-2, 2)*((k+1)*(x*2-2)+k) + 2) / 2
	}
}

// NewEaseInElastic returns an easing that oscillates with increasing amplitude
// before reaching the end. s is the angular frequency of the oscillation.
func NewEaseInElastic(s float64) Func {
	return func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*s)
	}
}

// NewEaseOutElastic returns an easing that overshoots the end and oscillates
// around it with decreasing amplitude.
func NewEaseOutElastic(s float64) Func {
	return func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*s) + 1
	}
}

func NewEaseInOutElastic(s float64) Func {
	return func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*s)) / 2
		default:
			return math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*s)/2 + 1
		}
	}
}

// NewEaseOutBounce returns an easing that bounces off the end value, as if
// dropped. n scales the height of the bounces and d the spacing.
func NewEaseOutBounce(n, d float64) Func {
	return func(x float64) float64 {
		switch {
		case x < 1/d:
			return n * x * x
		case x < 2/d:
			x -= 1.5 / d
			return n*x*x + 0.75
		case x < 2.5/d:
			x -= 2.25 / d
			return n*x*x + 0.9375
		default:
			x -= 2.625 / d
			return n*x*x + 0.984375
		}
	}
}

func NewEaseInBounce(n, d float64) Func {
	out := NewEaseOutBounce(n, d)
	return func(x float64) float64 {
		return 1 - out(1-x)
	}
}

func NewEaseInOutBounce(n, d float64) Func {
	out := NewEaseOutBounce(n, d)
	return func(x float64) float64 {
		if x < 0.5 {
			return (1 - out(1-2*x)) / 2
		}
		return (1 + out(2*x-1)) / 2
	}
}

var (
	EaseInBack    = NewEaseInBack(DefaultBackOvershoot)
	EaseOutBack   = NewEaseOutBack(DefaultBackOvershoot)
	EaseInOutBack = NewEaseInOutBack(DefaultBackOvershoot, DefaultBackInOutScale)

	EaseInElastic    = NewEaseInElastic(DefaultElasticPeriod)
	EaseOutElastic   = NewEaseOutElastic(DefaultElasticPeriod)
	EaseInOutElastic = NewEaseInOutElastic(DefaultElasticInOutPeriod)

	EaseInBounce    = NewEaseInBounce(DefaultBounceStrength, DefaultBounceDivisor)
	EaseOutBounce   = NewEaseOutBounce(DefaultBounceStrength, DefaultBounceDivisor)
	EaseInOutBounce = NewEaseInOutBounce(DefaultBounceStrength, DefaultBounceDivisor)
)
