// Package energy accumulates power series into cumulative energies.
// The circuit core guarantees per-step power values; integration over
// the horizon happens here, with a rectangle rule (cumsum · dt).
package energy

import "math"

// Cumulative integrates a power series into cumulative energy, sample
// by sample: E[i] = Σ_{j≤i} p[j]·dt.
func Cumulative(power []float64, dt float64) []float64 {
	out := make([]float64, len(power))
	sum := 0.0
	for i, p := range power {
		sum += p * dt
		out[i] = sum
	}
	return out
}

// Stored returns the per-step stored/returned portion of the input
// power, max(0, pin − ploss). Slices must have equal length; this is a
// caller contract, matching the circuit core.
func Stored(pin, ploss []float64) []float64 {
	out := make([]float64, len(pin))
	for i := range pin {
		out[i] = math.Max(0, pin[i]-ploss[i])
	}
	return out
}

// Total is a convenience for the last cumulative value, 0 for an empty
// series.
func Total(power []float64, dt float64) float64 {
	sum := 0.0
	for _, p := range power {
		sum += p * dt
	}
	return sum
}
