package rates

import "math"

// Empirical is the state-dependent rate model tuned against the
// empirical equilibrium profile. Growth accelerates with the square
// root of how far the bottom bound exceeds the volume (past a fixed
// offset); decay accelerates linearly with the overshoot above the top
// bound. Both rates floor at their base values, so they stay strictly
// positive whenever the step rule consults them.
type Empirical struct {
	GrowthBase   float64
	GrowthScale  float64
	GrowthOffset float64
	DecayBase    float64
	DecayScale   float64
}

func NewEmpirical() *Empirical {
	return &Empirical{
		GrowthBase:   0.004,
		GrowthScale:  0.012,
		GrowthOffset: 9.0,
		DecayBase:    0.01,
		DecayScale:   0.01,
	}
}

func (e *Empirical) GrowthRate(control, volume, bottom float64) float64 {
	excess := bottom - volume - e.GrowthOffset
	if excess < 0 {
		excess = 0
	}
	return e.GrowthBase + e.GrowthScale*math.Sqrt(excess)
}

func (e *Empirical) DecayRate(control, volume, top float64) float64 {
	return e.DecayBase + e.DecayScale*(volume-top)
}
