// Package metrics computes summary statistics over finished runs.
package metrics

import (
	"math"

	"github.com/san-kum/icesim/internal/icesheet"
)

// Summary condenses a run into the numbers the CLI reports.
type Summary struct {
	FinalVolume float64
	MinVolume   float64
	MaxVolume   float64
	// Step counts by regime, classified from the realized volume change.
	GrowthSteps int
	DecaySteps  int
	HoldSteps   int
	// LoopArea is the area enclosed by the volume-vs-control trajectory,
	// a scalar measure of how much hysteresis the run expressed.
	LoopArea float64
}

func Summarize(r *icesheet.Result) Summary {
	s := Summary{}
	if r == nil || r.Len() == 0 {
		return s
	}

	s.MinVolume = r.Volumes[0]
	s.MaxVolume = r.Volumes[0]
	for _, v := range r.Volumes {
		s.MinVolume = math.Min(s.MinVolume, v)
		s.MaxVolume = math.Max(s.MaxVolume, v)
	}
	s.FinalVolume = r.Volumes[r.Len()-1]

	for t := 1; t < r.Len(); t++ {
		switch {
		case r.Volumes[t] > r.Volumes[t-1]:
			s.GrowthSteps++
		case r.Volumes[t] < r.Volumes[t-1]:
			s.DecaySteps++
		default:
			s.HoldSteps++
		}
	}

	s.LoopArea = loopArea(r.Controls[1:], r.Volumes[1:])
	return s
}

// loopArea is the shoelace area of the closed (control, volume) path.
func loopArea(xs, ys []float64) float64 {
	if len(xs) < 3 {
		return 0
	}
	sum := 0.0
	n := len(xs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += xs[i]*ys[j] - xs[j]*ys[i]
	}
	return math.Abs(sum) / 2
}
