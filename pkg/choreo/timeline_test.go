package choreo_test

import (
	"testing"

	"github.com/go-drift/choreo/pkg/choreo"
)

func TestTimeline_MoveBindsAndInserts(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)

	choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0))

	if tl.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", tl.Size())
	}
	if !out.IsConnected() {
		t.Fatal("expected output to be connected by Move")
	}

	tl.Step(0.5)
	if got := out.Value(); got != 2.5 {
		t.Errorf("Value() = %v, want 2.5", got)
	}
}

func TestTimeline_FinishedMotionIsRemovedAndDetached(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)
	choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0))

	tl.Step(1.0)

	if !tl.Empty() {
		t.Errorf("expected finished motion to be removed, size %d", tl.Size())
	}
	if out.IsConnected() {
		t.Error("expected output to be disconnected when its motion was removed")
	}
	if got := out.Value(); got != 5.0 {
		t.Errorf("Value() = %v, want the final 5", got)
	}
}

func TestTimeline_DisconnectedOutputDropsItem(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)
	choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0))

	// Stand-in for the output going out of scope.
	out.Disconnect()
	if tl.Size() != 1 {
		t.Fatalf("Size() = %d before stepping, want 1", tl.Size())
	}

	// Part of the test is that stepping does not crash.
	tl.Step(0.5)
	if !tl.Empty() {
		t.Errorf("expected orphaned motion to be swept, size %d", tl.Size())
	}
}

func TestTimeline_SharedSequenceDrivesManyOutputs(t *testing.T) {
	tl := choreo.NewTimeline()
	shared := choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0)

	outputs := make([]choreo.Output[float64], 500)
	for i := range outputs {
		choreo.Move(tl, &outputs[i], shared)
	}
	if tl.Size() != 500 {
		t.Fatalf("Size() = %d, want 500", tl.Size())
	}

	// Relocate the whole collection before stepping; the bindings follow.
	moved := make([]choreo.Output[float64], len(outputs))
	choreo.MoveOutputs(moved, outputs)

	tl.Step(1.0)
	for i := range moved {
		if got := moved[i].Value(); got != 5.0 {
			t.Fatalf("moved[%d].Value() = %v, want 5", i, got)
		}
	}
	for i := range outputs {
		if got := outputs[i].Value(); got != 0.0 {
			t.Fatalf("outputs[%d].Value() = %v, want untouched 0", i, got)
		}
	}
}

func TestTimeline_ContinuousItemPersists(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)
	m := choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(1.0, 1.0))
	m.SetContinuous(true)

	tl.Step(2.0)
	if tl.Size() != 1 {
		t.Errorf("Size() = %d, want continuous item kept", tl.Size())
	}
	if got := out.Value(); got != 1.0 {
		t.Errorf("Value() = %v, want clamped 1", got)
	}
}

func TestTimeline_AnimateStartsAtCurrentValue(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(2.0)

	choreo.Animate(tl, &out, choreo.LerpFloat64).RampTo(4.0, 1.0)

	tl.Step(0.5)
	if got := out.Value(); got != 3.0 {
		t.Errorf("Value() = %v, want 3 (ramping from the output's own value)", got)
	}
}

func TestTimeline_StepsInInsertionOrder(t *testing.T) {
	tl := choreo.NewTimeline()
	var order []int
	tl.Cue(func() { order = append(order, 1) }, 0)
	tl.Cue(func() { order = append(order, 2) }, 0)
	tl.Cue(func() { order = append(order, 3) }, 0)

	tl.Step(0.1)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("cues fired in order %v, want [1 2 3]", order)
	}
}

func TestTimeline_JumpTo(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)
	choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(10.0, 2.0))

	tl.JumpTo(1.0)
	if got := out.Value(); got != 5.0 {
		t.Errorf("Value() = %v, want 5", got)
	}
	if tl.Size() != 1 {
		t.Errorf("Size() = %d, want unfinished item kept", tl.Size())
	}
}

func TestTimeline_Clear(t *testing.T) {
	tl := choreo.NewTimeline()
	out := choreo.NewOutput(0.0)
	choreo.Move(tl, &out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0))

	tl.Clear()
	if !tl.Empty() {
		t.Errorf("Size() = %d after Clear, want 0", tl.Size())
	}
	if out.IsConnected() {
		t.Error("expected Clear to detach bindings")
	}
}
