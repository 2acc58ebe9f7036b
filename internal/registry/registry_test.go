package registry

import (
	"errors"
	"testing"

	"github.com/san-kum/icesim/internal/config"
	"github.com/san-kum/icesim/internal/forcing"
)

func TestGetCurve(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"simple", "hysteresis", "empirical"} {
		curve, err := r.GetCurve(name)
		if err != nil {
			t.Errorf("expected curve %s, got error: %v", name, err)
		}
		if curve == nil {
			t.Errorf("nil curve for %s", name)
		}
	}

	if _, err := r.GetCurve("parabolic"); err == nil {
		t.Error("expected error for unknown curve family")
	}
}

func TestGetForcing(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()

	for _, name := range []string{"triangle", "orbital"} {
		series, err := r.GetForcing(name, cfg)
		if err != nil {
			t.Errorf("expected forcing %s, got error: %v", name, err)
		}
		if series == nil {
			t.Errorf("nil forcing for %s", name)
		}
	}

	if _, err := r.GetForcing("square", cfg); err == nil {
		t.Error("expected error for unknown forcing")
	}
}

func TestGetForcingDegeneratePeriod(t *testing.T) {
	r := NewRegistry()

	for _, period := range []int{0, 1, -400} {
		cfg := config.DefaultConfig()
		cfg.Period = period

		if _, err := r.GetForcing("triangle", cfg); !errors.Is(err, forcing.ErrPeriod) {
			t.Errorf("period %d: expected ErrPeriod, got %v", period, err)
		}
	}
}

func TestColdStartReversesTriangle(t *testing.T) {
	r := NewRegistry()

	warm := config.DefaultConfig()
	cold := config.DefaultConfig()
	cold.Start = "cold"

	warmSeries, err := r.GetForcing("triangle", warm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coldSeries, err := r.GetForcing("triangle", cold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A warm-start cycle begins at the warm end, a cold start at the
	// cold end.
	if warmSeries.Control(0) != 1.0 {
		t.Errorf("expected warm cycle to start at 1.0, got %f", warmSeries.Control(0))
	}
	if coldSeries.Control(0) != 0.0 {
		t.Errorf("expected cold cycle to start at 0.0, got %f", coldSeries.Control(0))
	}
}

func TestGetRateModel(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.GrowthRate = 0.002
	cfg.DecayRate = 0.004

	constant, err := r.GetRateModel("constant", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := constant.GrowthRate(0.5, 0.1, 0.7); got != 0.002 {
		t.Errorf("expected configured growth 0.002, got %f", got)
	}

	if _, err := r.GetRateModel("empirical", cfg); err != nil {
		t.Errorf("expected empirical model, got error: %v", err)
	}
	if _, err := r.GetRateModel("adaptive", cfg); err == nil {
		t.Error("expected error for unknown rate model")
	}
}

func TestListCurves(t *testing.T) {
	r := NewRegistry()
	if len(r.ListCurves()) != 3 {
		t.Errorf("expected 3 curve families, got %d", len(r.ListCurves()))
	}
}
