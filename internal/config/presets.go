package config

// Presets name the interesting parameter corners of each scenario.
// Omitted fields fall back to defaults when a preset is normalized.
var Presets = map[string]map[string]*Config{
	"ego": {
		"burnout": {
			Scenario: "ego", Dt: 0.01, Duration: 180.0,
			Circuit: CircuitConfig{VEgo: 3.0, TauVEgo: 20.0, RHigh: 2.5},
		},
		"gentle": {
			Scenario: "ego", Dt: 0.01, Duration: 180.0,
			Circuit: CircuitConfig{VEgo: 1.2, TauVEgo: 45.0, RHigh: 1.5},
		},
		"frantic": {
			Scenario: "ego", Dt: 0.01, Duration: 120.0,
			Circuit: CircuitConfig{VEgo: 4.0, TauVEgo: 10.0, RHigh: 3.0, BreathPeriod: 4.0},
		},
	},
	"soul": {
		"effortless": {
			Scenario: "soul", Dt: 0.01, Duration: 180.0, Cutoff: 0.66,
			Circuit: CircuitConfig{VRated: 0.6, TauR: 60.0},
		},
		"rated": {
			Scenario: "soul", Dt: 0.01, Duration: 180.0, Cutoff: 1.0,
			Circuit: CircuitConfig{VRated: 0.6, TauR: 60.0},
		},
		"patient": {
			Scenario: "soul", Dt: 0.01, Duration: 240.0, Cutoff: 0.75,
			Circuit: CircuitConfig{VRated: 0.5, TauR: 90.0},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
