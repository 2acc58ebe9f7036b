package curves

// Empirical is a tabulated equilibrium relation fitted to steady-state
// volumes from full ice-sheet model runs. Unlike the unit-interval
// families, its volumes span roughly 1 to 20 (in 10^6 km^3), and its
// hysteresis band never fully closes.
type Empirical struct{}

func NewEmpirical() *Empirical { return &Empirical{} }

// Knots of the piecewise-linear profile. Control values outside the
// table extrapolate along the end segments.
var (
	empiricalKnots  = []float64{0.0, 0.2671, 0.5342, 0.7671, 1.0}
	empiricalTop    = []float64{18.1, 16.7, 6.5, 3.3, 1.8}
	empiricalBottom = []float64{18.1, 15.1, 5.1, 2.2, 1.3}
)

func (e *Empirical) Top(control float64) float64 {
	return interpolate(empiricalKnots, empiricalTop, control)
}

func (e *Empirical) Bottom(control float64) float64 {
	return interpolate(empiricalKnots, empiricalBottom, control)
}

func (e *Empirical) MaxVolume() float64 { return 20.0 }

func interpolate(xs, ys []float64, x float64) float64 {
	i := len(xs) - 2
	for j := 1; j < len(xs)-1; j++ {
		if x < xs[j] {
			i = j - 1
			break
		}
	}
	frac := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + (ys[i+1]-ys[i])*frac
}
