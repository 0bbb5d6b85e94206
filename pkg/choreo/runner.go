package choreo

import "time"

// Runner steps a timeline with wall-clock delta times.
//
// The core engine is dt-driven and knows nothing about real time; Runner is
// the convenience for clients whose frame loop does not already track
// elapsed time. Call Pump once per frame while the runner is active:
//
//	r := choreo.NewRunner(tl)
//	r.Start()
//	for frame() {
//		r.Pump()
//	}
//
// Time comes from the package [Clock], so tests drive runners
// deterministically with a fake clock.
type Runner struct {
	timeline *Timeline
	last     time.Time
	active   bool
}

// NewRunner creates a runner for tl.
func NewRunner(tl *Timeline) *Runner {
	return &Runner{timeline: tl}
}

// Start activates the runner. The first Pump after Start sees a zero delta.
func (r *Runner) Start() {
	if r.active {
		return
	}
	r.active = true
	r.last = Now()
}

// Stop deactivates the runner. Pump becomes a no-op until the next Start.
func (r *Runner) Stop() {
	r.active = false
}

// IsActive reports whether the runner is currently running.
func (r *Runner) IsActive() bool { return r.active }

// Pump steps the timeline by the time elapsed since the previous pump (or
// since Start), in seconds.
func (r *Runner) Pump() {
	if !r.active {
		return
	}
	now := Now()
	dt := now.Sub(r.last).Seconds()
	r.last = now
	r.timeline.Step(dt)
}
