package choreo

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"
)

// Lerp linearly interpolates between a and b. Receives the begin value, end
// value, and progress t. Progress is usually in [0, 1] but overshoot curves
// may push it outside that range; implementations should extrapolate rather
// than clamp.
type Lerp[T any] func(a, b T, t float64) T

// Bilerp interpolates two logical channels of a multi-component value with
// independent progress values. Used by [SplitRamp] to give each channel its
// own easing curve.
type Bilerp[T any] func(a, b T, ta, tb float64) T

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 linearly interpolates between two 2D vectors.
func LerpVec2(a, b f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2{
		LerpFloat64(a[0], b[0], t),
		LerpFloat64(a[1], b[1], t),
	}
}

// BilerpVec2 interpolates the X and Y channels of a 2D vector with
// independent progress values.
func BilerpVec2(a, b f64.Vec2, tx, ty float64) f64.Vec2 {
	return f64.Vec2{
		LerpFloat64(a[0], b[0], tx),
		LerpFloat64(a[1], b[1], ty),
	}
}

// LerpColor linearly interpolates between two colors in RGB space.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}
