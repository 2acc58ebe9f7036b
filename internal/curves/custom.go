package curves

// Custom wraps a caller-supplied pair of bound functions. The caller is
// responsible for keeping top >= bottom; the integrator verifies it
// over the reachable control range at setup.
type Custom struct {
	top    func(float64) float64
	bottom func(float64) float64
	max    float64
}

func NewCustom(top, bottom func(float64) float64, maxVolume float64) *Custom {
	return &Custom{top: top, bottom: bottom, max: maxVolume}
}

func (c *Custom) Top(control float64) float64    { return c.top(control) }
func (c *Custom) Bottom(control float64) float64 { return c.bottom(control) }

func (c *Custom) MaxVolume() float64 { return c.max }
