package circuit

const (
	DefaultDuration = 180.0
	DefaultDt       = 0.01
	DefaultL        = 1.0
	DefaultC        = 1.0
	DefaultRHigh    = 2.5
	DefaultRLow     = 0.005
	DefaultTauR     = 60.0
	DefaultVRated   = 0.6
	DefaultVEgo     = 3.0
	DefaultTauVEgo  = 20.0
	DefaultBreath   = 8.0
)

// Config holds the circuit parameters and the two drive regimes. All
// values are expected to be strictly positive; Dt should evenly divide
// Duration so the sample count is deterministic.
type Config struct {
	Duration float64 // total time [s]
	Dt       float64 // step [s]
	L        float64 // inductance
	C        float64 // capacitance

	RHigh   float64 // high resistance (ego regime)
	RLow    float64 // near-zero resistance (soul regime)
	TauR    float64 // time constant of R decay (soul)
	VRated  float64 // rated voltage amplitude (soul)
	VEgo    float64 // ego initial high voltage
	TauVEgo float64 // ego fuel decay
	Breath  float64 // breathing period
}

func DefaultConfig() Config {
	return Config{
		Duration: DefaultDuration,
		Dt:       DefaultDt,
		L:        DefaultL,
		C:        DefaultC,
		RHigh:    DefaultRHigh,
		RLow:     DefaultRLow,
		TauR:     DefaultTauR,
		VRated:   DefaultVRated,
		VEgo:     DefaultVEgo,
		TauVEgo:  DefaultTauVEgo,
		Breath:   DefaultBreath,
	}
}

// Steps returns the sample count N of the time grid t[i] = i·Dt,
// i = 0..N-1, covering [0, Duration].
func (c Config) Steps() int {
	return int(c.Duration/c.Dt) + 1
}
