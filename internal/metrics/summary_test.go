package metrics

import (
	"testing"

	"github.com/san-kum/icesim/internal/icesheet"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeRegimes(t *testing.T) {
	r := &icesheet.Result{
		Times:    []float64{0, 1, 2, 3, 4, 5},
		Controls: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5},
		EqTop:    make([]float64, 6),
		EqBottom: make([]float64, 6),
		Volumes:  []float64{0.5, 0.6, 0.6, 0.4, 0.4, 0.7},
	}

	s := Summarize(r)

	assert.Equal(t, 2, s.GrowthSteps)
	assert.Equal(t, 1, s.DecaySteps)
	assert.Equal(t, 2, s.HoldSteps)
	assert.Equal(t, 0.7, s.FinalVolume)
	assert.Equal(t, 0.4, s.MinVolume)
	assert.Equal(t, 0.7, s.MaxVolume)
}

func TestSummarizeLoopArea(t *testing.T) {
	// A unit square traced in the control/volume plane closes with
	// area 1. Index 0 is sentinel and excluded.
	r := &icesheet.Result{
		Times:    []float64{0, 1, 2, 3, 4},
		Controls: []float64{0, 0, 1, 1, 0},
		EqTop:    make([]float64, 5),
		EqBottom: make([]float64, 5),
		Volumes:  []float64{0, 0, 0, 1, 1},
	}

	s := Summarize(r)
	assert.InDelta(t, 1.0, s.LoopArea, 1e-12)
}

func TestSummarizeDegenerate(t *testing.T) {
	assert.Zero(t, Summarize(nil))
	assert.Zero(t, Summarize(&icesheet.Result{}))
}

func TestSummarizeFlatRunHasNoArea(t *testing.T) {
	n := 10
	r := &icesheet.Result{
		Times:    make([]float64, n),
		Controls: make([]float64, n),
		EqTop:    make([]float64, n),
		EqBottom: make([]float64, n),
		Volumes:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r.Controls[i] = float64(i) / float64(n)
		r.Volumes[i] = 0.3
	}

	s := Summarize(r)
	assert.InDelta(t, 0.0, s.LoopArea, 1e-12)
	assert.Equal(t, n-1, s.HoldSteps)
}
