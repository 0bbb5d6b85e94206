package choreo

// Motion couples a Sequence to an Output: on every Step or JumpTo it
// evaluates the sequence at the motion's local time and writes the result
// into the output.
//
// Constructing a Motion registers it with its target; destroying either side
// of the binding is always safe. Disconnect the motion (or the output) and
// further steps become no-ops with respect to output writing. A motion whose
// output has gone away is removed from its timeline on the next sweep.
type Motion[T any] struct {
	timing

	// OnUpdate, when set, is called with the freshly written value after
	// every update.
	OnUpdate func(value T)
	// OnFinish, when set, is called once when a step moves the motion into
	// its finished state. Calling ResetTime from the callback restarts the
	// motion, which is the usual way to loop with a start delay intact.
	OnFinish func(m *Motion[T])

	target   *Output[T]
	sequence *Sequence[T]
	looped   bool
}

// NewMotion creates a motion driving target with seq and binds the two.
// If target is already connected its previous motion is supplanted. A nil
// target yields a motion that computes but never writes.
func NewMotion[T any](target *Output[T], seq *Sequence[T]) *Motion[T] {
	m := &Motion[T]{timing: newTiming(), sequence: seq}
	if target != nil {
		target.Disconnect()
		m.target = target
		target.motion = m
	}
	return m
}

// Step advances local time by dt scaled by speed and writes the new value to
// the output.
func (m *Motion[T]) Step(dt float64) {
	wasFinished := m.IsFinished()
	m.advance(dt)
	m.update()
	if !wasFinished && m.IsFinished() && m.OnFinish != nil {
		m.OnFinish(m)
	}
	m.sync()
}

// JumpTo sets the absolute local time and writes the value at that time.
func (m *Motion[T]) JumpTo(t float64) {
	m.time = t
	m.update()
	m.sync()
}

// IsFinished reports whether the motion has played through the sequence in
// its current direction.
func (m *Motion[T]) IsFinished() bool {
	return m.finished(m.sequence.Duration())
}

// ResetTime rewinds the motion without losing its direction.
func (m *Motion[T]) ResetTime() {
	m.reset(m.sequence.Duration())
}

// Duration returns the driven sequence's total duration. It tracks the
// sequence live, so phrases appended after binding extend the motion.
func (m *Motion[T]) Duration() float64 { return m.sequence.Duration() }

// Sequence returns the driven sequence for fluent extension:
//
//	choreo.Move(tl, &out, seq).Sequence().RampTo(5, 1)
func (m *Motion[T]) Sequence() *Sequence[T] { return m.sequence }

// Loop makes the motion evaluate under wrapped (modulo-duration) time and
// marks it continuous so its timeline never removes it.
func (m *Motion[T]) Loop() *Motion[T] {
	m.looped = true
	m.continuous = true
	return m
}

// Disconnect severs the binding with the target output, if any.
func (m *Motion[T]) Disconnect() {
	if m.target != nil {
		m.target.motion = nil
		m.target = nil
	}
}

// IsConnected reports whether the motion still has an output to write to.
func (m *Motion[T]) IsConnected() bool { return m.target != nil }

// update pushes the sequence value at the current local time into the
// output. With no output there is nothing observable to do.
func (m *Motion[T]) update() {
	if m.target == nil {
		return
	}
	var v T
	if m.looped {
		v = m.sequence.ValueWrapped(m.Time())
	} else {
		v = m.sequence.Value(m.Time())
	}
	m.target.value = v
	if m.OnUpdate != nil {
		m.OnUpdate(v)
	}
}

func (m *Motion[T]) orphaned() bool { return m.target == nil }

func (m *Motion[T]) detach() { m.Disconnect() }
