// Package registry dispatches configuration selectors to concrete
// curve, forcing, and rate model constructors.
package registry

import (
	"fmt"

	"github.com/san-kum/icesim/internal/config"
	"github.com/san-kum/icesim/internal/curves"
	"github.com/san-kum/icesim/internal/forcing"
	"github.com/san-kum/icesim/internal/icesheet"
	"github.com/san-kum/icesim/internal/rates"
)

type Registry struct {
	curves     map[string]func() icesheet.Curve
	forcings   map[string]func(cfg *config.Config) (icesheet.Series, error)
	rateModels map[string]func(cfg *config.Config) icesheet.RateModel
}

func NewRegistry() *Registry {
	r := &Registry{
		curves:     make(map[string]func() icesheet.Curve),
		forcings:   make(map[string]func(cfg *config.Config) (icesheet.Series, error)),
		rateModels: make(map[string]func(cfg *config.Config) icesheet.RateModel),
	}

	r.curves["simple"] = func() icesheet.Curve { return curves.NewLinear() }
	r.curves["hysteresis"] = func() icesheet.Curve { return curves.NewHysteretic() }
	r.curves["empirical"] = func() icesheet.Curve { return curves.NewEmpirical() }

	r.forcings["triangle"] = func(cfg *config.Config) (icesheet.Series, error) {
		// A cold start begins at the cold end of the cycle.
		tr, err := forcing.NewTriangle(cfg.Period, cfg.Start == "cold")
		if err != nil {
			return nil, fmt.Errorf("%w (got %d)", err, cfg.Period)
		}
		return tr, nil
	}
	r.forcings["orbital"] = func(cfg *config.Config) (icesheet.Series, error) {
		return forcing.DefaultOrbital(), nil
	}

	r.rateModels["constant"] = func(cfg *config.Config) icesheet.RateModel {
		return rates.NewConstant(cfg.GrowthRate, cfg.DecayRate)
	}
	r.rateModels["empirical"] = func(cfg *config.Config) icesheet.RateModel {
		return rates.NewEmpirical()
	}

	return r
}

func (r *Registry) GetCurve(name string) (icesheet.Curve, error) {
	fn, ok := r.curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve family: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetForcing(name string, cfg *config.Config) (icesheet.Series, error) {
	fn, ok := r.forcings[name]
	if !ok {
		return nil, fmt.Errorf("unknown forcing: %s", name)
	}
	return fn(cfg)
}

func (r *Registry) GetRateModel(name string, cfg *config.Config) (icesheet.RateModel, error) {
	fn, ok := r.rateModels[name]
	if !ok {
		return nil, fmt.Errorf("unknown rate model: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) ListCurves() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	return names
}
