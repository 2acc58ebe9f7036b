package rates

import "github.com/san-kum/icesim/internal/icesheet"

// Scaled multiplies another model's rates by fixed factors. Comparison
// runs use it to speed up or slow down one side of the pair without
// touching the underlying model.
type Scaled struct {
	Inner        icesheet.RateModel
	GrowthFactor float64
	DecayFactor  float64
}

func NewScaled(inner icesheet.RateModel, growthFactor, decayFactor float64) *Scaled {
	return &Scaled{Inner: inner, GrowthFactor: growthFactor, DecayFactor: decayFactor}
}

func (s *Scaled) GrowthRate(control, volume, bottom float64) float64 {
	return s.GrowthFactor * s.Inner.GrowthRate(control, volume, bottom)
}

func (s *Scaled) DecayRate(control, volume, top float64) float64 {
	return s.DecayFactor * s.Inner.DecayRate(control, volume, top)
}
