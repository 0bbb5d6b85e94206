package choreo

import "math"

// Sequence is an ordered concatenation of phrases forming one continuous
// time-to-value function.
//
// Sequences are built fluently; each builder method appends one phrase and
// advances the running end value, so phrases always connect:
//
//	seq := choreo.NewSequence(0.0, choreo.LerpFloat64).
//		Set(1.0).
//		Hold(1.0).
//		RampTo(2.0, 1.0).
//		EaseTo(10.0, 1.0, curves.EaseInOut)
//
// Evaluation clamps: times before zero return the initial value, times past
// the total duration return the final value. ValueWrapped evaluates under
// looping (modulo-duration) semantics instead.
//
// A Sequence pointer may be shared by any number of Motions; one sequence
// driving hundreds of outputs is an expected pattern. Use Clone for an
// independent copy.
type Sequence[T any] struct {
	initial  T
	end      T
	phrases  []Phrase[T]
	duration float64
	lerp     Lerp[T]
}

// NewSequence creates a sequence holding initial as its value until phrases
// are appended. The lerp function is used by RampTo, EaseTo and Set; pass
// one of the package helpers (LerpFloat64, LerpVec2, LerpColor) or a custom
// interpolator.
func NewSequence[T any](initial T, lerp Lerp[T]) *Sequence[T] {
	return &Sequence[T]{initial: initial, end: initial, lerp: lerp}
}

// Set appends a zero-duration phrase jumping the current value to v
// instantly.
func (s *Sequence[T]) Set(v T) *Sequence[T] {
	return s.Then(NewRamp(s.end, v, 0, nil, s.lerp))
}

// Hold appends a phrase keeping the current value for duration seconds.
func (s *Sequence[T]) Hold(duration float64) *Sequence[T] {
	return s.Then(NewRamp(s.end, s.end, duration, nil, s.lerp))
}

// RampTo appends a linear transition from the current value to v over
// duration seconds.
func (s *Sequence[T]) RampTo(v T, duration float64) *Sequence[T] {
	return s.Then(NewRamp(s.end, v, duration, nil, s.lerp))
}

// EaseTo appends a transition from the current value to v over duration
// seconds shaped by curve.
func (s *Sequence[T]) EaseTo(v T, duration float64, curve func(float64) float64) *Sequence[T] {
	return s.Then(NewRamp(s.end, v, duration, curve, s.lerp))
}

// SplitTo appends a transition from the current value to v with independent
// easing per channel: curveA shapes the first channel, curveB the second,
// and bilerp maps the two progress values onto T's components.
func (s *Sequence[T]) SplitTo(v T, duration float64, curveA, curveB func(float64) float64, bilerp Bilerp[T]) *Sequence[T] {
	return s.Then(NewSplitRamp(s.end, v, duration, curveA, curveB, bilerp))
}

// Then appends an already-built phrase. The sequence's end value cursor
// moves to the phrase's end value; builder methods use that cursor as their
// start, so mixing Then with RampTo keeps phrases connected as long as the
// appended phrase starts where the sequence ended.
func (s *Sequence[T]) Then(p Phrase[T]) *Sequence[T] {
	s.phrases = append(s.phrases, p)
	s.duration += p.Duration()
	s.end = p.EndValue()
	return s
}

// Value returns the sequence value at atTime.
//
// Times below zero clamp to the start value and times past the total
// duration clamp to the final value; there is no extrapolation.
func (s *Sequence[T]) Value(atTime float64) T {
	if len(s.phrases) == 0 {
		return s.initial
	}
	if atTime < 0 {
		return s.StartValue()
	}
	if atTime >= s.duration {
		return s.end
	}
	start := 0.0
	for _, p := range s.phrases {
		end := start + p.Duration()
		if atTime < end {
			return p.Value(atTime - start)
		}
		start = end
	}
	return s.end
}

// TimeWrapped reduces time modulo the sequence duration into [0, duration).
// A zero-duration sequence never wraps; the time is returned unchanged.
func (s *Sequence[T]) TimeWrapped(time float64) float64 {
	if s.duration <= 0 {
		return time
	}
	wrapped := math.Mod(time, s.duration)
	if wrapped < 0 {
		wrapped += s.duration
	}
	return wrapped
}

// ValueWrapped returns the sequence value under looping semantics: the value
// at TimeWrapped(time). For any time t and whole number of periods k,
// ValueWrapped(t + k*duration) equals ValueWrapped(t) within floating-point
// tolerance.
func (s *Sequence[T]) ValueWrapped(time float64) T {
	return s.Value(s.TimeWrapped(time))
}

// Duration returns the sum of all phrase durations. Zero is valid and means
// the sequence is a single static value.
func (s *Sequence[T]) Duration() float64 { return s.duration }

// StartValue returns the value at time zero.
func (s *Sequence[T]) StartValue() T {
	if len(s.phrases) == 0 {
		return s.initial
	}
	return s.phrases[0].StartValue()
}

// EndValue returns the value at the end of the sequence.
func (s *Sequence[T]) EndValue() T { return s.end }

// Phrases returns the number of phrases appended so far.
func (s *Sequence[T]) Phrases() int { return len(s.phrases) }

// Clone returns an independent copy of the sequence. Phrases are immutable
// and shared; appending to the clone does not affect the original.
func (s *Sequence[T]) Clone() *Sequence[T] {
	dup := *s
	dup.phrases = make([]Phrase[T], len(s.phrases))
	copy(dup.phrases, s.phrases)
	return &dup
}
