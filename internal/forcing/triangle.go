package forcing

import "errors"

// ErrPeriod indicates a triangle period too short to form a cycle.
var ErrPeriod = errors.New("forcing: triangle period must be at least 2 steps")

// Triangle is the sawtooth-free triangular forcing cycle: over one
// period the control descends linearly 1 -> 0 and climbs back 0 -> 1.
// Reversed flips the cycle to 0 -> 1 -> 0, which pairs with cold-start
// runs so the forcing begins at the cold end.
type Triangle struct {
	Period   int
	Reversed bool
}

// NewTriangle rejects periods shorter than 2 steps, which leave no
// room for both halves of the cycle and would divide by zero in
// Control.
func NewTriangle(period int, reversed bool) (*Triangle, error) {
	if period < 2 {
		return nil, ErrPeriod
	}
	return &Triangle{Period: period, Reversed: reversed}, nil
}

func (tr *Triangle) Control(t int) float64 {
	phase := t % tr.Period
	half := float64(tr.Period) / 2

	var c float64
	if float64(phase) < half {
		c = 1.0 - float64(phase)/half
	} else {
		c = (float64(phase) - half) / half
	}

	if tr.Reversed {
		return 1.0 - c
	}
	return c
}
