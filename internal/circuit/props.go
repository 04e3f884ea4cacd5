package circuit

import "math"

// Analytical characteristics of the undriven circuit, useful for
// interpreting a run without integrating anything.

// NaturalFrequency returns the undamped angular frequency ω₀ = 1/√(LC).
func (c Config) NaturalFrequency() float64 {
	return 1 / math.Sqrt(c.L*c.C)
}

// DampingFactor returns α = R/(2L) for a given resistance.
func (c Config) DampingFactor(r float64) float64 {
	return r / (2 * c.L)
}

// DampedFrequency returns ω_d = √(ω₀² − α²), or 0 when the circuit is
// not underdamped at the given resistance.
func (c Config) DampedFrequency(r float64) float64 {
	omega0 := c.NaturalFrequency()
	alpha := c.DampingFactor(r)
	if alpha >= omega0 {
		return 0
	}
	return math.Sqrt(omega0*omega0 - alpha*alpha)
}

// TimeConstant returns τ = 1/α = 2L/R. Resistance is floored the same
// way the integrator floors it.
func (c Config) TimeConstant(r float64) float64 {
	return 1 / c.DampingFactor(math.Max(rFloor, r))
}

// Regime classifies the damping behavior at a given resistance.
func (c Config) Regime(r float64) string {
	omega0 := c.NaturalFrequency()
	alpha := c.DampingFactor(r)
	switch {
	case alpha < omega0:
		return "underdamped"
	case alpha == omega0:
		return "critically damped"
	default:
		return "overdamped"
	}
}
