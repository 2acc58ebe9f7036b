package icesheet

import (
	"context"
	"fmt"
	"math"
)

// Integrator evolves a single ice volume series over a fixed horizon.
// It owns its result buffers and fills them strictly in time order; the
// returned Result is not written to after Run returns.
//
// Integrator instances are not safe for concurrent use, but distinct
// instances are fully independent.
type Integrator struct {
	curve  Curve
	series Series
	rates  RateModel
	cfg    Config
}

func New(curve Curve, series Series, rates RateModel, cfg Config) *Integrator {
	return &Integrator{
		curve:  curve,
		series: series,
		rates:  rates,
		cfg:    cfg,
	}
}

// Validate checks the configuration and sweeps the full horizon once,
// confirming that every reachable control value yields finite, ordered
// bounds and strictly positive rates. Run calls it before stepping, so
// a run either fails here or completes.
func (in *Integrator) Validate() error {
	if in.cfg.TimeMax <= 1 {
		return fmt.Errorf("%w (got %d)", ErrHorizon, in.cfg.TimeMax)
	}
	if in.cfg.StepLength <= 0 {
		return fmt.Errorf("%w (got %g)", ErrStepLength, in.cfg.StepLength)
	}
	if !isFinite(in.cfg.InitialVolume) {
		return fmt.Errorf("%w (got %g)", ErrInitialVolume, in.cfg.InitialVolume)
	}

	for t := 1; t < in.cfg.TimeMax; t++ {
		c := in.series.Control(t)
		if !isFinite(c) {
			return fmt.Errorf("%w at t=%d", ErrNonFiniteControl, t)
		}

		top := in.curve.Top(c)
		bottom := in.curve.Bottom(c)
		if !isFinite(top) || !isFinite(bottom) {
			return fmt.Errorf("%w at t=%d (control=%g)", ErrNonFiniteBounds, t, c)
		}
		if top < bottom {
			return fmt.Errorf("%w at t=%d (control=%g, top=%g, bottom=%g)",
				ErrInvertedBounds, t, c, top, bottom)
		}

		// Probe the rates just outside each bound, where the step rule
		// would consult them.
		if g := in.rates.GrowthRate(c, bottom-1, bottom); !(g > 0) || !isFinite(g) {
			return fmt.Errorf("%w: growth %g at t=%d", ErrNonPositiveRate, g, t)
		}
		if d := in.rates.DecayRate(c, top+1, top); !(d > 0) || !isFinite(d) {
			return fmt.Errorf("%w: decay %g at t=%d", ErrNonPositiveRate, d, t)
		}
	}

	return nil
}

// Run validates the setup and then computes the full series. The
// recurrence starts at t=1; index 0 holds the initial volume with the
// control and both bounds left at their zero sentinels. Cancellation
// aborts the run wholesale without a partial result.
func (in *Integrator) Run(ctx context.Context) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n := in.cfg.TimeMax
	result := &Result{
		Times:    make([]float64, n),
		Controls: make([]float64, n),
		EqTop:    make([]float64, n),
		EqBottom: make([]float64, n),
		Volumes:  make([]float64, n),
	}
	result.Volumes[0] = in.cfg.InitialVolume

	for t := 1; t < n; t++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("icesheet: run aborted at t=%d: %w", t, ctx.Err())
		default:
		}

		c := in.series.Control(t)
		top := in.curve.Top(c)
		bottom := in.curve.Bottom(c)

		result.Times[t] = float64(t) * in.cfg.StepLength
		result.Controls[t] = c
		result.EqTop[t] = top
		result.EqBottom[t] = bottom
		result.Volumes[t] = Step(result.Volumes[t-1], c, top, bottom, in.rates)
	}

	return result, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
