package choreo

// TimelineItem is anything a Timeline can advance: it keeps a local time,
// the previous time, a playback speed and a start delay, independent of the
// payload being animated.
//
// Direction is carried by the sign of the speed; there is no stored state
// enum. An item is finished when, moving forward, its local time has reached
// its duration, or, moving backward, its local time has reached zero.
//
// Implementations live in this package ([Motion], [Cue]); the interface
// exists so items with different payload types can share one Timeline.
type TimelineItem interface {
	// Step advances local time by dt scaled by the item's speed and updates
	// the payload.
	Step(dt float64)
	// JumpTo sets the absolute local time and updates the payload. The
	// previous time is synced, so crossing-detection treats a jump as
	// teleportation, not traversal.
	JumpTo(t float64)
	// IsFinished reports whether the item has played through in its current
	// direction.
	IsFinished() bool
	// ResetTime rewinds the item to its starting point for the current
	// direction: zero when moving forward, the end time when moving
	// backward.
	ResetTime()
	// Time returns the local time relative to the start delay.
	Time() float64
	// PreviousTime returns the local time before the most recent Step or
	// JumpTo.
	PreviousTime() float64
	// Speed returns the playback speed. Negative speeds play backward.
	Speed() float64
	// SetSpeed changes the playback speed.
	SetSpeed(s float64)
	// StartTime returns the start delay in seconds.
	StartTime() float64
	// SetStartTime changes the start delay.
	SetStartTime(t float64)
	// Duration returns the length of the item's payload.
	Duration() float64
	// Continuous reports whether the timeline keeps the item after it
	// finishes.
	Continuous() bool
	// SetContinuous marks the item to persist in its timeline after
	// finishing.
	SetContinuous(c bool)

	// orphaned reports whether the item's target has gone away and the item
	// should be swept.
	orphaned() bool
	// detach severs any binding the item holds before the timeline drops it.
	detach()
}

// timing is the shared time-bookkeeping state embedded by every item.
// Methods that depend on the payload duration take it as a parameter; items
// wrap them with their own Duration.
type timing struct {
	time         float64
	previousTime float64
	speed        float64
	startTime    float64
	continuous   bool
}

func newTiming() timing {
	return timing{speed: 1}
}

// advance moves raw time by dt scaled by speed.
func (tm *timing) advance(dt float64) {
	tm.time += dt * tm.speed
}

// sync records the current time as the previous time.
func (tm *timing) sync() {
	tm.previousTime = tm.time
}

func (tm *timing) forward() bool { return tm.speed >= 0 }

// Time returns local time relative to the start delay.
func (tm *timing) Time() float64 { return tm.time - tm.startTime }

// PreviousTime returns the pre-step local time relative to the start delay.
func (tm *timing) PreviousTime() float64 { return tm.previousTime - tm.startTime }

// Speed returns the playback speed.
func (tm *timing) Speed() float64 { return tm.speed }

// SetSpeed changes the playback speed. Negative speeds play backward.
func (tm *timing) SetSpeed(s float64) { tm.speed = s }

// StartTime returns the start delay.
func (tm *timing) StartTime() float64 { return tm.startTime }

// SetStartTime changes the start delay.
func (tm *timing) SetStartTime(t float64) { tm.startTime = t }

// Continuous reports whether the item persists after finishing.
func (tm *timing) Continuous() bool { return tm.continuous }

// SetContinuous marks the item to persist after finishing.
func (tm *timing) SetContinuous(c bool) { tm.continuous = c }

// finished applies the direction rule for the given payload duration.
func (tm *timing) finished(duration float64) bool {
	if tm.forward() {
		return tm.Time() >= duration
	}
	return tm.Time() <= 0
}

// reset rewinds to the starting point for the current direction.
func (tm *timing) reset(duration float64) {
	if tm.forward() {
		tm.time = 0
		tm.previousTime = 0
	} else {
		end := tm.startTime + duration
		tm.time = end
		tm.previousTime = end
	}
}
