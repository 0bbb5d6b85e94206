// Package choreo animates typed values over time.
//
// # Core Components
//
// The engine is built from a small set of pieces:
//
//   - [Phrase]: a single eased transition between two values over a fixed
//     duration. Concrete phrases are [Ramp] (one curve) and [SplitRamp]
//     (independent curves per logical channel of a multi-component value).
//
//   - [Sequence]: an ordered concatenation of phrases forming one continuous
//     time-to-value function, built fluently with Set, Hold, RampTo, EaseTo,
//     SplitTo and Then. Sequences expose both clamped and wrapped (looping)
//     evaluation.
//
//   - [Output]: a client-owned value cell. At most one [Motion] writes to a
//     given Output at any instant; the binding survives explicit relocation
//     (MoveFrom) and is severed by Disconnect or by copying.
//
//   - [Motion]: the live binding of a Sequence to an Output. A Motion is a
//     [TimelineItem]: it keeps local time, playback speed and a start delay,
//     and on every step writes the sequence value at its local time into its
//     Output.
//
//   - [Timeline]: advances all of its items by a shared delta time each
//     Step, then removes items that finished (unless marked continuous) or
//     whose Output has gone away.
//
// # Basic Usage
//
// Build a sequence, bind it to an output through a timeline, and step the
// timeline from your frame loop:
//
//	var brightness choreo.Output[float64]
//	tl := choreo.NewTimeline()
//
//	seq := choreo.NewSequence(0.0, choreo.LerpFloat64).
//		RampTo(1.0, 0.5).
//		Hold(2.0).
//		EaseTo(0.0, 1.0, curves.EaseOut)
//	choreo.Move(tl, &brightness, seq)
//
//	// once per frame
//	tl.Step(dt)
//	draw(brightness.Value())
//
// One shared Sequence may drive any number of Outputs; bind it through Move
// once per Output. Value types only need a Lerp function — helpers exist for
// float64, vectors ([LerpVec2]) and colors ([LerpColor]).
//
// The engine is single threaded by design: all work happens inline during
// Step or JumpTo calls made by the client's own loop.
package choreo
