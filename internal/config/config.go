package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/circuit"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/drive"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/force"
)

type Config struct {
	Scenario string        `yaml:"scenario"`
	Dt       float64       `yaml:"dt"`
	Duration float64       `yaml:"duration"`
	Cutoff   float64       `yaml:"cutoff"`
	Circuit  CircuitConfig `yaml:"circuit"`
	Force    ForceConfig   `yaml:"force"`
}

type CircuitConfig struct {
	Inductance   float64 `yaml:"inductance"`
	Capacitance  float64 `yaml:"capacitance"`
	RHigh        float64 `yaml:"r_high"`
	RLow         float64 `yaml:"r_low"`
	TauR         float64 `yaml:"tau_r"`
	VRated       float64 `yaml:"v_rated"`
	VEgo         float64 `yaml:"v_ego"`
	TauVEgo      float64 `yaml:"tau_v_ego"`
	BreathPeriod float64 `yaml:"breath_period"`
}

type ForceConfig struct {
	K    float64 `yaml:"k"`
	N    float64 `yaml:"n"`
	RMin float64 `yaml:"r_min"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "soul",
		Dt:       circuit.DefaultDt,
		Duration: circuit.DefaultDuration,
		Cutoff:   drive.DefaultCutoff,
		Circuit: CircuitConfig{
			Inductance:   circuit.DefaultL,
			Capacitance:  circuit.DefaultC,
			RHigh:        circuit.DefaultRHigh,
			RLow:         circuit.DefaultRLow,
			TauR:         circuit.DefaultTauR,
			VRated:       circuit.DefaultVRated,
			VEgo:         circuit.DefaultVEgo,
			TauVEgo:      circuit.DefaultTauVEgo,
			BreathPeriod: circuit.DefaultBreath,
		},
		Force: ForceConfig{
			K:    force.DefaultK,
			N:    force.DefaultN,
			RMin: force.DefaultRMin,
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

// Normalize fills unset (zero) fields from the defaults so sparse
// presets and partial config files stay usable.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Scenario == "" {
		c.Scenario = d.Scenario
	}
	if c.Dt == 0 {
		c.Dt = d.Dt
	}
	if c.Duration == 0 {
		c.Duration = d.Duration
	}
	if c.Cutoff == 0 {
		c.Cutoff = d.Cutoff
	}
	if c.Circuit.Inductance == 0 {
		c.Circuit.Inductance = d.Circuit.Inductance
	}
	if c.Circuit.Capacitance == 0 {
		c.Circuit.Capacitance = d.Circuit.Capacitance
	}
	if c.Circuit.RHigh == 0 {
		c.Circuit.RHigh = d.Circuit.RHigh
	}
	if c.Circuit.RLow == 0 {
		c.Circuit.RLow = d.Circuit.RLow
	}
	if c.Circuit.TauR == 0 {
		c.Circuit.TauR = d.Circuit.TauR
	}
	if c.Circuit.VRated == 0 {
		c.Circuit.VRated = d.Circuit.VRated
	}
	if c.Circuit.VEgo == 0 {
		c.Circuit.VEgo = d.Circuit.VEgo
	}
	if c.Circuit.TauVEgo == 0 {
		c.Circuit.TauVEgo = d.Circuit.TauVEgo
	}
	if c.Circuit.BreathPeriod == 0 {
		c.Circuit.BreathPeriod = d.Circuit.BreathPeriod
	}
	if c.Force.K == 0 {
		c.Force.K = d.Force.K
	}
	if c.Force.N == 0 {
		c.Force.N = d.Force.N
	}
	if c.Force.RMin == 0 {
		c.Force.RMin = d.Force.RMin
	}
}

// CircuitParams assembles the simulator configuration from the file
// layout.
func (c *Config) CircuitParams() circuit.Config {
	return circuit.Config{
		Duration: c.Duration,
		Dt:       c.Dt,
		L:        c.Circuit.Inductance,
		C:        c.Circuit.Capacitance,
		RHigh:    c.Circuit.RHigh,
		RLow:     c.Circuit.RLow,
		TauR:     c.Circuit.TauR,
		VRated:   c.Circuit.VRated,
		VEgo:     c.Circuit.VEgo,
		TauVEgo:  c.Circuit.TauVEgo,
		Breath:   c.Circuit.BreathPeriod,
	}
}
