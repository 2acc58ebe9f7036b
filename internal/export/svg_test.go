package export

import (
	"strings"
	"testing"
)

func TestTrajectorySVG(t *testing.T) {
	xs := []float64{0.0, 0.5, 1.0, 0.5}
	ys := []float64{0.0, 0.5, 0.0, -0.5}

	doc := TrajectorySVG(xs, ys, 800, 500, "#00ff00")

	if !strings.HasPrefix(doc, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(doc, "<svg") || !strings.HasSuffix(doc, "</svg>") {
		t.Error("not a complete SVG document")
	}
	if !strings.Contains(doc, `stroke="#00ff00"`) {
		t.Error("stroke color not applied")
	}
	if got := strings.Count(doc, " L"); got != len(xs)-1 {
		t.Errorf("expected %d line segments, got %d", len(xs)-1, got)
	}
}

func TestTrajectorySVGDegenerate(t *testing.T) {
	if doc := TrajectorySVG([]float64{1}, []float64{1}, 100, 100, "red"); doc != "" {
		t.Error("expected empty output for a single point")
	}
	if doc := TrajectorySVG([]float64{1, 2}, []float64{1}, 100, 100, "red"); doc != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}

func TestTrajectorySVGFlatLine(t *testing.T) {
	// A constant series must not divide by a zero range.
	doc := TrajectorySVG([]float64{0, 1, 2}, []float64{0.5, 0.5, 0.5}, 100, 100, "red")
	if doc == "" {
		t.Fatal("expected output for a flat trajectory")
	}
	if strings.Contains(doc, "NaN") {
		t.Error("flat trajectory produced NaN coordinates")
	}
}
