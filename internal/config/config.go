package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCurve      = "simple"
	DefaultForcing    = "triangle"
	DefaultGrowthRate = 0.002
	DefaultDecayRate  = 0.004
	DefaultPeriod     = 400
	DefaultStart      = "zero"
	DefaultStepLength = 1.0

	// Starting volumes by policy. Warm and cold anchors come from
	// full-model spin-ups on either branch of the empirical profile.
	ZeroStartVolume = 0.0
	WarmStartVolume = 1.3
	ColdStartVolume = 23.0
)

type Config struct {
	Curve      string  `yaml:"curve"`
	Forcing    string  `yaml:"forcing"`
	RateModel  string  `yaml:"rate_model"`
	GrowthRate float64 `yaml:"growth_rate"`
	DecayRate  float64 `yaml:"decay_rate"`
	// Period is the forcing cycle length in steps; TimeMax defaults to
	// five cycles when left zero.
	Period     int     `yaml:"period"`
	TimeMax    int     `yaml:"time_max"`
	Start      string  `yaml:"start"`
	StepLength float64 `yaml:"step_length"`

	SecondRun SecondRunConfig `yaml:"second_run"`
}

type SecondRunConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Transform       string  `yaml:"transform"`
	PeriodFactor    int     `yaml:"period_factor"`
	AmplitudeFactor float64 `yaml:"amplitude_factor"`
	AmplitudeCenter float64 `yaml:"amplitude_center"`
	GrowthFactor    float64 `yaml:"growth_factor"`
	DecayFactor     float64 `yaml:"decay_factor"`
	Start           string  `yaml:"start"`
}

func DefaultConfig() *Config {
	return &Config{
		Curve:      DefaultCurve,
		Forcing:    DefaultForcing,
		GrowthRate: DefaultGrowthRate,
		DecayRate:  DefaultDecayRate,
		Period:     DefaultPeriod,
		Start:      DefaultStart,
		StepLength: DefaultStepLength,
		SecondRun: SecondRunConfig{
			Transform:       "same",
			PeriodFactor:    2,
			AmplitudeFactor: 0.5,
			AmplitudeCenter: 0.5,
			GrowthFactor:    1.0,
			DecayFactor:     1.0,
			Start:           DefaultStart,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EffectiveTimeMax resolves the run horizon: an explicit time_max wins,
// otherwise five forcing cycles.
func (c *Config) EffectiveTimeMax() int {
	if c.TimeMax > 0 {
		return c.TimeMax
	}
	return 5 * c.Period
}

// EffectiveRateModel resolves the rate model selector: the empirical
// curve defaults to its tuned state-dependent rates, everything else to
// the configured constants.
func (c *Config) EffectiveRateModel() string {
	if c.RateModel != "" {
		return c.RateModel
	}
	if c.Curve == "empirical" {
		return "empirical"
	}
	return "constant"
}

// StartVolume maps a start policy to its initial ice volume.
func StartVolume(policy string) (float64, error) {
	switch policy {
	case "zero", "":
		return ZeroStartVolume, nil
	case "warm":
		return WarmStartVolume, nil
	case "cold":
		return ColdStartVolume, nil
	default:
		return 0, fmt.Errorf("unknown start policy: %s", policy)
	}
}
