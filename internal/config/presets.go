package config

var Presets = map[string]map[string]*Config{
	"simple": {
		"default": {
			Curve: "simple", Forcing: "triangle", GrowthRate: 0.002, DecayRate: 0.004,
			Period: 400, Start: "zero", StepLength: 1.0,
		},
		"slow": {
			Curve: "simple", Forcing: "triangle", GrowthRate: 0.0005, DecayRate: 0.001,
			Period: 1000, Start: "zero", StepLength: 1.0,
		},
	},
	"hysteresis": {
		"default": {
			Curve: "hysteresis", Forcing: "triangle", GrowthRate: 0.002, DecayRate: 0.004,
			Period: 400, Start: "zero", StepLength: 1.0,
		},
		"long-cycle": {
			Curve: "hysteresis", Forcing: "triangle", GrowthRate: 0.002, DecayRate: 0.004,
			Period: 4000, Start: "zero", StepLength: 1.0,
		},
	},
	"empirical": {
		"warm": {
			Curve: "empirical", Forcing: "triangle",
			Period: 400, Start: "warm", StepLength: 100.0,
		},
		"cold": {
			Curve: "empirical", Forcing: "triangle",
			Period: 400, Start: "cold", StepLength: 100.0,
		},
		"orbital": {
			Curve: "empirical", Forcing: "orbital",
			Period: 410, TimeMax: 4100, Start: "warm", StepLength: 100.0,
		},
	},
}

func GetPreset(curve, name string) *Config {
	group, ok := Presets[curve]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(curve string) []string {
	group, ok := Presets[curve]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
