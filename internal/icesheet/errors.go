package icesheet

import "errors"

// Setup errors. All configuration problems surface before the first
// step is taken; the loop itself never fails.
var (
	// ErrHorizon indicates a run horizon too short to evolve anything.
	ErrHorizon = errors.New("icesheet: horizon must exceed 1 step")

	// ErrStepLength indicates a non-positive time axis scale.
	ErrStepLength = errors.New("icesheet: step length must be positive")

	// ErrInitialVolume indicates a NaN or Inf initial condition.
	ErrInitialVolume = errors.New("icesheet: initial volume is not finite")

	// ErrNonFiniteControl indicates the control series produced NaN or Inf.
	ErrNonFiniteControl = errors.New("icesheet: control series produced a non-finite value")

	// ErrNonFiniteBounds indicates the equilibrium curve produced NaN or Inf.
	ErrNonFiniteBounds = errors.New("icesheet: equilibrium curve produced a non-finite bound")

	// ErrInvertedBounds indicates top < bottom for a reachable control value.
	ErrInvertedBounds = errors.New("icesheet: equilibrium top below bottom")

	// ErrNonPositiveRate indicates a rate model returning zero, negative,
	// or non-finite rates.
	ErrNonPositiveRate = errors.New("icesheet: rate model returned a non-positive rate")
)
