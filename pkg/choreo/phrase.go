package choreo

// Phrase maps elapsed time within one segment of motion to a value.
//
// A phrase covers the time interval [0, Duration()]. Callers are expected to
// pass times inside that interval; Sequence handles clamping and phrase
// selection. Phrases are immutable once constructed.
type Phrase[T any] interface {
	// Value returns the phrase value at local time t.
	Value(t float64) T
	// Duration returns the length of the phrase. Never negative.
	Duration() float64
	// StartValue returns the value at t = 0 without evaluating the curve.
	StartValue() T
	// EndValue returns the value at t = Duration() without evaluating the curve.
	EndValue() T
}

// Ramp transitions between Begin and End over Dur seconds, shaping progress
// with a single easing curve.
//
// Ramp maps local time to normalized progress, applies Curve, and hands the
// eased progress to Lerp. A nil Curve means linear; a nil Lerp returns End.
type Ramp[T any] struct {
	// Begin is the starting value (at t = 0).
	Begin T
	// End is the ending value (at t = Dur).
	End T
	// Dur is the phrase duration in seconds. Must not be negative.
	Dur float64
	// Curve transforms normalized time into eased progress (optional).
	Curve func(float64) float64
	// Lerp interpolates between Begin and End at the eased progress.
	Lerp Lerp[T]
}

// NewRamp creates a ramp phrase. A nil curve means linear progress.
func NewRamp[T any](begin, end T, duration float64, curve func(float64) float64, lerp Lerp[T]) *Ramp[T] {
	return &Ramp[T]{Begin: begin, End: end, Dur: duration, Curve: curve, Lerp: lerp}
}

// Value returns the interpolated value at local time t.
func (p *Ramp[T]) Value(t float64) T {
	progress := 1.0
	if p.Dur > 0 {
		progress = t / p.Dur
	}
	if p.Curve != nil {
		progress = p.Curve(progress)
	}
	if p.Lerp == nil {
		return p.End
	}
	return p.Lerp(p.Begin, p.End, progress)
}

// Duration returns the phrase length.
func (p *Ramp[T]) Duration() float64 { return p.Dur }

// StartValue returns the begin endpoint.
func (p *Ramp[T]) StartValue() T { return p.Begin }

// EndValue returns the end endpoint.
func (p *Ramp[T]) EndValue() T { return p.End }

// SplitRamp transitions between Begin and End with an independent easing
// curve per logical channel of a multi-component value.
//
// CurveA eases the first channel and CurveB the second; Bilerp decides which
// components of T those channels are. Both channels reach Begin at t = 0 and
// End at t = Dur regardless of curve, so split ramps line up with their
// neighbors in a sequence.
type SplitRamp[T any] struct {
	// Begin is the starting value (at t = 0).
	Begin T
	// End is the ending value (at t = Dur).
	End T
	// Dur is the phrase duration in seconds. Must not be negative.
	Dur float64
	// CurveA eases the first channel (optional, nil means linear).
	CurveA func(float64) float64
	// CurveB eases the second channel (optional, nil means linear).
	CurveB func(float64) float64
	// Bilerp combines the two per-channel progress values into a value of T.
	Bilerp Bilerp[T]
}

// NewSplitRamp creates a two-channel ramp phrase.
func NewSplitRamp[T any](begin, end T, duration float64, curveA, curveB func(float64) float64, bilerp Bilerp[T]) *SplitRamp[T] {
	return &SplitRamp[T]{Begin: begin, End: end, Dur: duration, CurveA: curveA, CurveB: curveB, Bilerp: bilerp}
}

// Value returns the interpolated value at local time t.
func (p *SplitRamp[T]) Value(t float64) T {
	progress := 1.0
	if p.Dur > 0 {
		progress = t / p.Dur
	}
	ta, tb := progress, progress
	if p.CurveA != nil {
		ta = p.CurveA(progress)
	}
	if p.CurveB != nil {
		tb = p.CurveB(progress)
	}
	if p.Bilerp == nil {
		return p.End
	}
	return p.Bilerp(p.Begin, p.End, ta, tb)
}

// Duration returns the phrase length.
func (p *SplitRamp[T]) Duration() float64 { return p.Dur }

// StartValue returns the begin endpoint.
func (p *SplitRamp[T]) StartValue() T { return p.Begin }

// EndValue returns the end endpoint.
func (p *SplitRamp[T]) EndValue() T { return p.End }
