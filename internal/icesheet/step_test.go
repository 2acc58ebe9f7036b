package icesheet

import (
	"math"
	"testing"
)

type fixedRates struct {
	growth float64
	decay  float64
}

func (f fixedRates) GrowthRate(control, volume, bottom float64) float64 { return f.growth }
func (f fixedRates) DecayRate(control, volume, top float64) float64    { return f.decay }

func TestStepDecay(t *testing.T) {
	rm := fixedRates{growth: 0.002, decay: 0.004}

	v := Step(0.9, 0.5, 0.5, 0.2, rm)
	if v >= 0.9 {
		t.Errorf("expected strict decrease in decay regime, got %f", v)
	}
	if math.Abs(v-0.896) > 1e-12 {
		t.Errorf("expected 0.896, got %f", v)
	}
}

func TestStepGrowth(t *testing.T) {
	rm := fixedRates{growth: 0.002, decay: 0.004}

	v := Step(0.1, 0.5, 0.5, 0.2, rm)
	if v <= 0.1 {
		t.Errorf("expected strict increase in growth regime, got %f", v)
	}
	if math.Abs(v-0.102) > 1e-12 {
		t.Errorf("expected 0.102, got %f", v)
	}
}

func TestStepHoldInsideBand(t *testing.T) {
	rm := fixedRates{growth: 0.002, decay: 0.004}

	v := Step(0.3, 0.5, 0.5, 0.2, rm)
	if v != 0.3 {
		t.Errorf("expected exact hold inside the band, got %f", v)
	}
}

func TestStepHoldAtBounds(t *testing.T) {
	rm := fixedRates{growth: 0.002, decay: 0.004}

	// Equality at either bound resolves to hold.
	if v := Step(0.5, 0.5, 0.5, 0.2, rm); v != 0.5 {
		t.Errorf("expected hold at top bound, got %f", v)
	}
	if v := Step(0.2, 0.5, 0.5, 0.2, rm); v != 0.2 {
		t.Errorf("expected hold at bottom bound, got %f", v)
	}
}

func TestStepOvershootPreserved(t *testing.T) {
	// A large decay rate may legitimately carry the volume past the
	// bound in one step; the rule must not clamp.
	rm := fixedRates{growth: 0.002, decay: 0.6}

	v := Step(1.0, 0.5, 0.5, 0.45, rm)
	if v != 0.4 {
		t.Errorf("expected 0.4 (overshoot below top), got %f", v)
	}
	if v >= 0.5 {
		t.Error("overshoot was clamped to the bound")
	}
}

func TestStepExhaustive(t *testing.T) {
	rm := fixedRates{growth: 0.01, decay: 0.01}

	tests := []struct {
		name               string
		prev, top, bottom  float64
		wantGrow, wantHold bool
	}{
		{"above top", 1.0, 0.5, 0.2, false, false},
		{"below bottom", 0.1, 0.5, 0.2, true, false},
		{"inside", 0.35, 0.5, 0.2, false, true},
		{"at top", 0.5, 0.5, 0.2, false, true},
		{"at bottom", 0.2, 0.5, 0.2, false, true},
		{"zero-width band inside", 0.5, 0.5, 0.5, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Step(tt.prev, 0.5, tt.top, tt.bottom, rm)
			switch {
			case tt.wantHold:
				if v != tt.prev {
					t.Errorf("expected hold, got %f from %f", v, tt.prev)
				}
			case tt.wantGrow:
				if v <= tt.prev {
					t.Errorf("expected growth, got %f from %f", v, tt.prev)
				}
			default:
				if v >= tt.prev {
					t.Errorf("expected decay, got %f from %f", v, tt.prev)
				}
			}
		})
	}
}
