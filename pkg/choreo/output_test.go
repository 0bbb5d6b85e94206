package choreo_test

import (
	"testing"

	"github.com/go-drift/choreo/pkg/choreo"
)

func rampSequence() *choreo.Sequence[float64] {
	return choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(10.0, 2.0)
}

func TestOutput_ConnectAndDisconnect(t *testing.T) {
	out := choreo.NewOutput(0.0)
	m := choreo.NewMotion(&out, rampSequence())

	if !out.IsConnected() {
		t.Fatal("expected output to be connected after binding")
	}
	m.Disconnect()
	if out.IsConnected() {
		t.Error("expected output to be disconnected after motion disconnects")
	}
}

func TestOutput_DisconnectStopsWrites(t *testing.T) {
	out := choreo.NewOutput(0.0)
	m := choreo.NewMotion(&out, rampSequence())

	out.Disconnect()
	if m.IsConnected() {
		t.Error("expected motion to lose its target")
	}

	// Further steps must be safe and must not write anywhere.
	m.Step(1.0)
	m.Step(1.0)
	if got := out.Value(); got != 0.0 {
		t.Errorf("disconnected output changed to %v", got)
	}
}

func TestOutput_MoveFromBringsMotionAlong(t *testing.T) {
	base := choreo.NewOutput(1.0)
	dest := choreo.NewOutput(0.0)
	m := choreo.NewMotion(&base, rampSequence())

	dest.MoveFrom(&base)

	if base.IsConnected() {
		t.Error("expected source to be disconnected after move")
	}
	if !dest.IsConnected() {
		t.Fatal("expected destination to be connected after move")
	}

	m.JumpTo(1.0)
	if got := dest.Value(); got != 5.0 {
		t.Errorf("dest.Value() = %v, want 5", got)
	}
	m.JumpTo(2.0)
	if got := dest.Value(); got != 10.0 {
		t.Errorf("dest.Value() = %v, want 10", got)
	}
	if got := base.Value(); got != 1.0 {
		t.Errorf("source value changed to %v after move", got)
	}
}

func TestOutput_CopyFromIsSnapshot(t *testing.T) {
	base := choreo.NewOutput(0.0)
	m := choreo.NewMotion(&base, rampSequence())
	m.JumpTo(1.0)

	snap := choreo.NewOutput(0.0)
	snap.CopyFrom(&base)

	if got := snap.Value(); got != 5.0 {
		t.Errorf("snapshot value = %v, want 5", got)
	}
	if snap.IsConnected() {
		t.Error("expected copy to be disconnected")
	}
	if !base.IsConnected() {
		t.Error("expected source binding to survive the copy")
	}

	// The motion keeps driving the original, not the copy.
	m.JumpTo(2.0)
	if got := base.Value(); got != 10.0 {
		t.Errorf("base.Value() = %v, want 10", got)
	}
	if got := snap.Value(); got != 5.0 {
		t.Errorf("snapshot changed to %v after further updates", got)
	}
}

func TestOutput_CopyFromSeversDestinationBinding(t *testing.T) {
	src := choreo.NewOutput(3.0)
	dest := choreo.NewOutput(0.0)
	m := choreo.NewMotion(&dest, rampSequence())

	dest.CopyFrom(&src)

	if dest.IsConnected() {
		t.Error("expected destination to be disconnected after copy")
	}
	if m.IsConnected() {
		t.Error("expected destination's old motion to be severed")
	}
	if got := dest.Value(); got != 3.0 {
		t.Errorf("dest.Value() = %v, want 3", got)
	}

	// The severed motion steps safely and writes nowhere.
	m.Step(1.0)
	if got := dest.Value(); got != 3.0 {
		t.Errorf("severed motion wrote %v into destination", got)
	}
}

func TestOutput_RebindSupplantsPreviousMotion(t *testing.T) {
	out := choreo.NewOutput(0.0)
	first := choreo.NewMotion(&out, rampSequence())
	second := choreo.NewMotion(&out, choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(100.0, 1.0))

	if first.IsConnected() {
		t.Error("expected first motion to be supplanted")
	}
	if !second.IsConnected() {
		t.Fatal("expected second motion to own the output")
	}

	first.Step(1.0)
	second.JumpTo(0.5)
	if got := out.Value(); got != 50.0 {
		t.Errorf("out.Value() = %v, want 50", got)
	}
}

func TestMoveOutputs_RelocatesCollection(t *testing.T) {
	seq := choreo.NewSequence(0.0, choreo.LerpFloat64).RampTo(5.0, 1.0)

	outputs := make([]choreo.Output[float64], 8)
	motions := make([]*choreo.Motion[float64], len(outputs))
	for i := range outputs {
		motions[i] = choreo.NewMotion(&outputs[i], seq)
	}

	moved := make([]choreo.Output[float64], len(outputs))
	choreo.MoveOutputs(moved, outputs)

	for i := range motions {
		motions[i].JumpTo(1.0)
	}
	for i := range moved {
		if got := moved[i].Value(); got != 5.0 {
			t.Fatalf("moved[%d].Value() = %v, want 5", i, got)
		}
		if outputs[i].IsConnected() {
			t.Fatalf("outputs[%d] still connected after relocation", i)
		}
	}
}
