package viz

import (
	"strings"
	"testing"
)

func TestPhaseScatter(t *testing.T) {
	controls := []float64{0.0, 0.25, 0.5, 0.75, 1.0, 0.75, 0.5, 0.25, 0.0}
	volumes := []float64{1.0, 0.8, 0.6, 0.4, 0.2, 0.3, 0.5, 0.7, 0.9}

	out := PhaseScatter(controls, volumes, 40, 10)

	if out == "" {
		t.Fatal("expected output")
	}
	if !strings.Contains(out, "Legend") {
		t.Error("missing legend")
	}
	// Early, middle, and late glyphs all appear for a full trajectory.
	for _, glyph := range []string{".", "o", "●"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("missing %q glyph", glyph)
		}
	}
}

func TestPhaseScatterDegenerate(t *testing.T) {
	if out := PhaseScatter(nil, nil, 40, 10); out != "" {
		t.Error("expected empty output for no data")
	}
	if out := PhaseScatter([]float64{1, 2}, []float64{1}, 40, 10); out != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}

func TestPhaseScatterNarrowCanvas(t *testing.T) {
	controls := []float64{0.0, 0.5, 1.0}
	volumes := []float64{0.0, 0.5, 1.0}

	// Tiny dimensions get clamped to the minimum canvas instead of
	// panicking on negative padding.
	for _, dims := range [][2]int{{0, 0}, {5, 1}, {9, 20}, {-3, -3}} {
		out := PhaseScatter(controls, volumes, dims[0], dims[1])
		if out == "" {
			t.Errorf("expected output for %dx%d canvas", dims[0], dims[1])
		}
		if !strings.Contains(out, "│") {
			t.Errorf("missing frame for %dx%d canvas", dims[0], dims[1])
		}
	}
}

func TestPhaseScatterConstantSeries(t *testing.T) {
	// Zero ranges must not panic or divide by zero.
	out := PhaseScatter([]float64{0.5, 0.5, 0.5}, []float64{1, 1, 1}, 40, 10)
	if out == "" {
		t.Fatal("expected output for constant series")
	}
}
