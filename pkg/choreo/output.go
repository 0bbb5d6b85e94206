package choreo

// Output is a client-owned value cell that a single Motion may write to.
//
// The zero value is a disconnected output holding T's zero value. Outputs
// can live anywhere the client likes — struct fields, slice elements — and
// may be relocated while animated: MoveFrom transfers both the current value
// and the live binding, repointing the motion at the new location. CopyFrom
// takes a snapshot only; copies never inherit a live binding.
//
// At most one live Motion targets a given Output at any instant. Binding a
// new Motion to an already-connected Output supplants the previous motion.
type Output[T any] struct {
	value  T
	motion *Motion[T]
}

// NewOutput returns an output holding initial, not connected to any motion.
func NewOutput[T any](initial T) Output[T] {
	return Output[T]{value: initial}
}

// Value returns the current value.
func (o *Output[T]) Value() T { return o.value }

// SetValue overwrites the current value. If a motion is connected its next
// update overwrites the value again.
func (o *Output[T]) SetValue(v T) { o.value = v }

// IsConnected reports whether a live motion targets this output.
func (o *Output[T]) IsConnected() bool { return o.motion != nil }

// Disconnect severs the binding with the targeting motion, if any. The
// motion stays on its timeline until the next sweep, but its subsequent
// steps no longer write anywhere. Call this before an animated output goes
// out of use.
func (o *Output[T]) Disconnect() {
	if o.motion != nil {
		o.motion.target = nil
		o.motion = nil
	}
}

// MoveFrom transfers src's value and live binding into o, standing in for
// move assignment: the motion that targeted src now targets o, and src ends
// up disconnected. Any motion previously targeting o is cleanly severed
// first.
func (o *Output[T]) MoveFrom(src *Output[T]) {
	if src == nil || src == o {
		return
	}
	o.Disconnect()
	o.value = src.value
	o.motion = src.motion
	src.motion = nil
	if o.motion != nil {
		o.motion.target = o
	}
}

// CopyFrom snapshots src's current value into o. Copies are snapshots, not
// live mirrors: o ends up disconnected, and any motion previously targeting
// o is cleanly severed. src's own binding is untouched.
func (o *Output[T]) CopyFrom(src *Output[T]) {
	if src == o {
		return
	}
	o.Disconnect()
	o.value = src.value
}

// MoveOutputs relocates a whole collection: element i of dst takes over the
// value and binding of element i of src, as if each pair had been move
// assigned. Extra elements on either side are left alone.
func MoveOutputs[T any](dst, src []Output[T]) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i].MoveFrom(&src[i])
	}
}
