package icesheet

// Curve maps a control value to the two equilibrium ice volume bounds.
// Top must never drop below Bottom anywhere in the forcing domain; the
// band between them is the hysteresis band and may have zero width.
type Curve interface {
	Top(control float64) float64
	Bottom(control float64) float64
}

// Bounded is an optional Curve upgrade reporting the largest volume the
// family can produce. Presenters use it to fix plot axes.
type Bounded interface {
	MaxVolume() float64
}

// Series produces the control parameter for a time index. Implementations
// must be pure functions of t.
type Series interface {
	Control(t int) float64
}

// RateModel supplies the per-step volume change magnitudes. Both rates
// must be strictly positive for any input the run can reach.
type RateModel interface {
	GrowthRate(control, volume, bottom float64) float64
	DecayRate(control, volume, top float64) float64
}

type Config struct {
	// TimeMax is the run horizon in steps, including the initial
	// condition at index 0. Must exceed 1.
	TimeMax int
	// StepLength scales the reported time axis only; the recurrence
	// is per-step regardless.
	StepLength    float64
	InitialVolume float64
}

func DefaultConfig() Config {
	return Config{
		TimeMax:    2000,
		StepLength: 1.0,
	}
}

// Result holds the recorded series of a finished run. All slices have
// length TimeMax. Index 0 carries the initial volume; control and both
// bounds are unset (0.0) there because the recurrence starts at t=1.
type Result struct {
	Times    []float64
	Controls []float64
	EqTop    []float64
	EqBottom []float64
	Volumes  []float64
}

func (r *Result) Len() int { return len(r.Volumes) }

// Step advances the ice volume by one time step. The volume decays when
// it sits above the top bound, grows when it sits below the bottom
// bound, and holds inside the band; equality at either bound holds.
// The increment is applied as-is, so a large rate may overshoot past
// the bound it is relaxing toward.
func Step(prev, control, top, bottom float64, rm RateModel) float64 {
	switch {
	case prev > top:
		return prev - rm.DecayRate(control, prev, top)
	case prev < bottom:
		return prev + rm.GrowthRate(control, prev, bottom)
	default:
		return prev
	}
}
