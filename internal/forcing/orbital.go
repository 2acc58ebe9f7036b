package forcing

import "math"

// Term is one sinusoidal component of an orbital forcing mix. Each term
// contributes Weight * (sin(2*pi*t/Period)+1)/2, so a term oscillates
// in [0, Weight] and the mix stays in [0, sum of weights].
type Term struct {
	Period float64
	Weight float64
}

// Orbital composes weighted sine terms into a control series, standing
// in for insolation indices built from orbital cycles.
type Orbital struct {
	Terms []Term
}

func NewOrbital(terms ...Term) *Orbital {
	return &Orbital{Terms: terms}
}

// DefaultOrbital returns an obliquity-only mix; the precession and
// eccentricity terms are present with zero weight so their periods stay
// documented for tuning.
func DefaultOrbital() *Orbital {
	return NewOrbital(
		Term{Period: 230, Weight: 0.0},  // precession
		Term{Period: 410, Weight: 0.5},  // obliquity
		Term{Period: 1050, Weight: 0.0}, // eccentricity
		Term{Period: 4000, Weight: 0.0}, // eccentricity modulation
	)
}

func (o *Orbital) Control(t int) float64 {
	sum := 0.0
	for _, term := range o.Terms {
		sum += term.Weight * (math.Sin(float64(t)*2*math.Pi/term.Period) + 1) / 2
	}
	return sum
}
