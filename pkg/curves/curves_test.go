package curves

import (
	"math"
	"testing"
)

func TestCurves_Endpoints(t *testing.T) {
	// Every curve maps 0 to ~0 and 1 to ~1. Progress between the endpoints
	// may overshoot, but the endpoints themselves must line up so phrases
	// connect.
	const tol = 2e-3
	for name, fn := range byName {
		if got := fn(0); math.Abs(got) > tol {
			t.Errorf("%s(0) = %v, want ~0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > tol {
			t.Errorf("%s(1) = %v, want ~1", name, got)
		}
	}
}

func TestCubicBezier_ClampsOutsideUnit(t *testing.T) {
	fn := CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := fn(-0.5); got != 0 {
		t.Errorf("fn(-0.5) = %v, want 0", got)
	}
	if got := fn(1.5); got != 1 {
		t.Errorf("fn(1.5) = %v, want 1", got)
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	fn := EaseInOut
	prev := fn(0)
	for i := 1; i <= 20; i++ {
		cur := fn(float64(i) / 20)
		if cur < prev {
			t.Fatalf("EaseInOut decreased between %v and %v: %v -> %v",
				float64(i-1)/20, float64(i)/20, prev, cur)
		}
		prev = cur
	}
}

func TestCubicBezier_MidpointValue(t *testing.T) {
	// cubic-bezier(0.4, 0, 0.2, 1) passes through ~0.78 at t=0.5.
	got := EaseInOut(0.5)
	if math.Abs(got-0.78) > 0.01 {
		t.Errorf("EaseInOut(0.5) = %v, want ~0.78", got)
	}
}

func TestOvershootCurves_LeaveUnitRange(t *testing.T) {
	exceeded := false
	for i := 1; i < 20; i++ {
		if OutBack(float64(i)/20) > 1 {
			exceeded = true
			break
		}
	}
	if !exceeded {
		t.Error("OutBack never exceeded 1; overshoot is its point")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"linear", "ease-in-out", "out-bounce", "in-quad"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("zigzag"); ok {
		t.Error("ByName(\"zigzag\") unexpectedly found")
	}
}

func TestNames_MatchesRegistry(t *testing.T) {
	names := Names()
	if len(names) != len(byName) {
		t.Fatalf("Names() returned %d entries, registry has %d", len(names), len(byName))
	}
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			t.Errorf("Names() listed %q but ByName misses it", name)
		}
	}
}
