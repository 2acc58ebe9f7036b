package forcing

import "github.com/san-kum/icesim/internal/icesheet"

// Transforms wrap a base series for comparison runs. Each one is itself
// a Series, so they compose.

// AmplitudeScale compresses the series toward a chosen center:
// c' = Factor*c + (Center - Factor/2). With a base series in [0, 1]
// the result spans [Center - Factor/2, Center + Factor/2].
type AmplitudeScale struct {
	Inner  icesheet.Series
	Factor float64
	Center float64
}

func (a *AmplitudeScale) Control(t int) float64 {
	return a.Factor*a.Inner.Control(t) + (a.Center - a.Factor/2)
}

// PeriodScale samples the base series at a scaled time index, shrinking
// the apparent period by Factor.
type PeriodScale struct {
	Inner  icesheet.Series
	Factor int
}

func (p *PeriodScale) Control(t int) float64 {
	return p.Inner.Control(p.Factor * t)
}

// PhaseFlip mirrors the series in the unit interval: c' = 1 - c. Used
// when the two runs of a pair declare opposite start policies.
type PhaseFlip struct {
	Inner icesheet.Series
}

func (p *PhaseFlip) Control(t int) float64 {
	return 1.0 - p.Inner.Control(t)
}
