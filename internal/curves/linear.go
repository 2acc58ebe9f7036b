// Package curves implements the built-in control-to-equilibrium-volume
// relations.
package curves

// Linear is the symmetric linear equilibrium relation without
// hysteresis: both bounds coincide at 1 - control.
type Linear struct{}

func NewLinear() *Linear { return &Linear{} }

func (l *Linear) Top(control float64) float64    { return 1.0 - control }
func (l *Linear) Bottom(control float64) float64 { return 1.0 - control }

func (l *Linear) MaxVolume() float64 { return 1.0 }
