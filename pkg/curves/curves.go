// Package curves provides easing functions for choreo sequences.
//
// Every curve is a pure function taking normalized time t in [0, 1] and
// returning eased progress. Progress is not required to stay inside [0, 1]:
// overshoot curves like [OutBack] and [OutElastic] deliberately exceed it,
// and interpolation extrapolates accordingly.
//
// The CSS-style family ([Ease], [EaseIn], [EaseOut], [EaseInOut]) is built
// on [CubicBezier]. The classic polynomial and elastic family (InQuad,
// OutCubic, OutBounce, ...) comes from github.com/fogleman/ease and is
// re-exposed here so one import covers both. [ByName] resolves a curve from
// its string name, which is how declarative scores reference easing.
package curves

import (
	"math"

	"github.com/fogleman/ease"
)

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// Polynomial, sine, exponential and circular easing, re-exposed from
// github.com/fogleman/ease.
var (
	InQuad     = ease.InQuad
	OutQuad    = ease.OutQuad
	InOutQuad  = ease.InOutQuad
	InCubic    = ease.InCubic
	OutCubic   = ease.OutCubic
	InOutCubic = ease.InOutCubic
	InQuart    = ease.InQuart
	OutQuart   = ease.OutQuart
	InOutQuart = ease.InOutQuart
	InQuint    = ease.InQuint
	OutQuint   = ease.OutQuint
	InOutQuint = ease.InOutQuint
	InSine     = ease.InSine
	OutSine    = ease.OutSine
	InOutSine  = ease.InOutSine
	InExpo     = ease.InExpo
	OutExpo    = ease.OutExpo
	InOutExpo  = ease.InOutExpo
	InCirc     = ease.InCirc
	OutCirc    = ease.OutCirc
	InOutCirc  = ease.InOutCirc
)

// Overshoot and bounce easing. These leave the [0, 1] progress range on
// purpose.
var (
	InBack     = ease.InBack
	OutBack    = ease.OutBack
	InOutBack  = ease.InOutBack
	InElastic  = ease.InElastic
	OutElastic = ease.OutElastic
	InBounce   = ease.InBounce
	OutBounce  = ease.OutBounce
)

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1) and
// (x2,y2) of the curve. The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
