package choreo

// Timeline owns a collection of timeline items and advances them all by a
// shared delta time each tick.
//
// Items step in insertion order within one Step call; every item sees the
// same dt, and no item observes another's post-step state (each motion only
// touches its own output). After stepping, the timeline removes items that
// finished — unless marked continuous — and items whose output has gone
// away.
//
// Use the package-level [Move] and [Animate] helpers to create a Motion,
// bind it to an output and insert it in one operation.
type Timeline struct {
	items []TimelineItem
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add inserts an item. Items created through Move or Animate are inserted
// already bound; Add exists for items built by hand.
func (tl *Timeline) Add(item TimelineItem) {
	tl.items = append(tl.items, item)
}

// Step advances every item by dt, then sweeps out finished and orphaned
// items. Call once per frame with a non-negative dt in seconds.
func (tl *Timeline) Step(dt float64) {
	for _, item := range tl.items {
		item.Step(dt)
	}
	tl.sweep()
}

// JumpTo sets every item's local time to t, then sweeps.
func (tl *Timeline) JumpTo(t float64) {
	for _, item := range tl.items {
		item.JumpTo(t)
	}
	tl.sweep()
}

// Cue inserts a callback firing once the timeline has advanced by delay
// seconds.
func (tl *Timeline) Cue(fn func(), delay float64) *Cue {
	c := NewCue(fn, delay)
	tl.Add(c)
	return c
}

// Size returns the number of live items.
func (tl *Timeline) Size() int { return len(tl.items) }

// Empty reports whether the timeline holds no items.
func (tl *Timeline) Empty() bool { return len(tl.items) == 0 }

// Clear detaches and removes every item.
func (tl *Timeline) Clear() {
	for i, item := range tl.items {
		item.detach()
		tl.items[i] = nil
	}
	tl.items = tl.items[:0]
}

// sweep compacts the item list, detaching anything finished (and not
// continuous) or orphaned.
func (tl *Timeline) sweep() {
	kept := tl.items[:0]
	for _, item := range tl.items {
		if item.orphaned() || (item.IsFinished() && !item.Continuous()) {
			item.detach()
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(tl.items); i++ {
		tl.items[i] = nil
	}
	tl.items = kept
}

// Move creates a Motion driving target with seq, binds it, and inserts it
// into the timeline as one operation: no intermediate state is observable as
// connected-but-unregistered or the reverse.
//
// Move is a package function rather than a method because Go methods cannot
// introduce type parameters.
func Move[T any](tl *Timeline, target *Output[T], seq *Sequence[T]) *Motion[T] {
	m := NewMotion(target, seq)
	tl.Add(m)
	return m
}

// Animate is Move with a fresh sequence starting at the output's current
// value, returned for fluent construction:
//
//	choreo.Animate(tl, &alpha, choreo.LerpFloat64).RampTo(1.0, 0.3)
func Animate[T any](tl *Timeline, target *Output[T], lerp Lerp[T]) *Sequence[T] {
	seq := NewSequence(target.value, lerp)
	Move(tl, target, seq)
	return seq
}
