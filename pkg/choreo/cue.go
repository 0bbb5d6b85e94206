package choreo

// Cue is a timeline item that fires a callback when its local time crosses
// zero — in practice, when the timeline reaches the cue's start delay. It is
// a flat item stepped like any other, not a scheduled event.
//
// A cue fires at most once per traversal; ResetTime re-arms it.
type Cue struct {
	timing

	fn    func()
	fired bool
}

// NewCue creates a cue firing fn once the owning timeline has advanced by
// delay seconds.
func NewCue(fn func(), delay float64) *Cue {
	c := &Cue{timing: newTiming(), fn: fn}
	c.startTime = delay
	return c
}

// Step advances the cue and fires the callback if the deadline was crossed.
func (c *Cue) Step(dt float64) {
	c.advance(dt)
	c.update()
	c.sync()
}

// JumpTo sets the absolute local time. Jumping past the deadline fires the
// callback; jumping back before it re-arms the cue.
func (c *Cue) JumpTo(t float64) {
	c.time = t
	if c.Time() < 0 {
		c.fired = false
	}
	c.update()
	c.sync()
}

// IsFinished reports whether the cue's deadline has passed in the current
// direction.
func (c *Cue) IsFinished() bool { return c.finished(0) }

// ResetTime rewinds the cue and re-arms it.
func (c *Cue) ResetTime() {
	c.reset(0)
	c.fired = false
}

// Duration returns 0: a cue is an instant.
func (c *Cue) Duration() float64 { return 0 }

func (c *Cue) update() {
	if c.fired || c.fn == nil {
		return
	}
	if c.forward() {
		if c.Time() >= 0 {
			c.fired = true
			c.fn()
		}
	} else {
		if c.Time() <= 0 {
			c.fired = true
			c.fn()
		}
	}
}

func (c *Cue) orphaned() bool { return false }

func (c *Cue) detach() {}
