package rates

// Constant applies fixed growth and decay magnitudes regardless of the
// current state.
type Constant struct {
	Growth float64
	Decay  float64
}

func NewConstant(growth, decay float64) *Constant {
	return &Constant{Growth: growth, Decay: decay}
}

func (c *Constant) GrowthRate(control, volume, bottom float64) float64 { return c.Growth }
func (c *Constant) DecayRate(control, volume, top float64) float64    { return c.Decay }
