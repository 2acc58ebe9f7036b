// Package icesheet provides the core primitives for the conceptual
// ice-sheet variability model.
//
// The model treats transient ice volume as a relaxation toward a
// control-parameter-dependent equilibrium band:
//
//   - [Curve]: equilibrium top/bottom bounds as functions of the control value
//   - [Series]: control parameter evolution over discrete time steps
//   - [RateModel]: per-step growth and decay magnitudes
//   - [Step]: the three-way grow/decay/hold rule
//   - [Integrator]: drives the recurrence and records the run
//
// # Example
//
//	tri, _ := forcing.NewTriangle(400, false)
//	in := icesheet.New(curves.NewLinear(), tri,
//		rates.NewConstant(0.002, 0.004), icesheet.DefaultConfig())
//	result, _ := in.Run(ctx)
//
// The computation is deterministic: identical configuration reproduces
// the series bit for bit.
package icesheet
