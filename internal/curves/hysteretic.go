package curves

// Hysteretic is a piecewise symmetric linear relation with a finite
// hysteresis band. The two branches meet at control 0 and 1 and are
// widest apart around control 0.5.
type Hysteretic struct{}

func NewHysteretic() *Hysteretic { return &Hysteretic{} }

func (h *Hysteretic) Top(control float64) float64 {
	if control > 0.5 {
		return (1.0 - control) * 1.4
	}
	return 1.0 - control*0.6
}

func (h *Hysteretic) Bottom(control float64) float64 {
	if control > 0.5 {
		return (1.0 - control) * 0.6
	}
	return 1.0 - control*1.4
}

func (h *Hysteretic) MaxVolume() float64 { return 1.0 }
