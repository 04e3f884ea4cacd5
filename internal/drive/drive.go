// Package drive builds the voltage and resistance waveforms that feed
// the circuit simulator. Two regimes exist: "ego" burns a large initial
// voltage against high, stress-coupled resistance; "soul" runs a rated
// sinusoid while resistance decays toward near zero, with the source
// optionally cut off partway to show the circuit coasting.
package drive

import (
	"math"

	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/circuit"
)

// DefaultCutoff is the fraction of the horizon after which the soul
// scenario switches its source off.
const DefaultCutoff = 0.66

// Series holds the two drive sequences sampled on the simulation grid.
type Series struct {
	Voltage    []float64
	Resistance []float64
}

func (s Series) Len() int { return len(s.Voltage) }

// Times returns the uniform grid t[i] = i·Dt matching cfg.Steps().
func Times(cfg circuit.Config) []float64 {
	n := cfg.Steps()
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * cfg.Dt
	}
	return t
}

// Ego generates the burnout regime: high initial voltage decaying on
// the fuel time constant, resistance held high and coupled to the
// breathing rhythm.
func Ego(cfg circuit.Config) Series {
	n := cfg.Steps()
	s := Series{
		Voltage:    make([]float64, n),
		Resistance: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ti := float64(i) * cfg.Dt
		breath := math.Sin(2 * math.Pi * ti / cfg.Breath)
		s.Voltage[i] = cfg.VEgo * math.Exp(-ti/cfg.TauVEgo) * breath
		s.Resistance[i] = cfg.RHigh * (1 + 0.25*math.Tanh(2*breath))
	}
	return s
}

// Soul generates the rated regime: steady sinusoidal voltage while
// resistance decays from RHigh toward RLow. The source is switched off
// from sample int(cutoff·N) onward; a cutoff outside (0, 1) leaves the
// drive on for the whole horizon.
func Soul(cfg circuit.Config, cutoff float64) Series {
	n := cfg.Steps()
	s := Series{
		Voltage:    make([]float64, n),
		Resistance: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ti := float64(i) * cfg.Dt
		s.Voltage[i] = cfg.VRated * math.Sin(2*math.Pi*ti/cfg.Breath)
		s.Resistance[i] = cfg.RLow + (cfg.RHigh-cfg.RLow)*math.Exp(-ti/cfg.TauR)
	}
	if cutoff > 0 && cutoff < 1 {
		for i := int(cutoff * float64(n)); i < n; i++ {
			s.Voltage[i] = 0
		}
	}
	return s
}
