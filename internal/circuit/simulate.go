package circuit

import (
	"fmt"
	"math"
)

const (
	// rFloor keeps the derivative and Joule-loss terms away from the
	// division singularity when a drive supplies R near zero.
	rFloor = 1e-6

	// etaEps stabilizes the efficiency ratio when input power vanishes.
	etaEps = 1e-9

	// smoothSeconds is the moving-average window for the display
	// variants of the power and efficiency series.
	smoothSeconds = 4.0
)

// Result bundles the per-step series of a simulation run. All slices
// share the length of the input drive and align to the time grid.
type Result struct {
	Times       []float64
	Current     []float64
	Charge      []float64
	CurrentRate []float64 // dI/dt, RK4-weighted stage average
	PowerIn     []float64 // absorbed input power max(0, V·I)
	PowerLoss   []float64 // Joule loss I²·R
	EnergyL     []float64 // inductor energy ½·L·I²
	EnergyC     []float64 // capacitor energy ½·q²/C
	Efficiency  []float64 // clip((PowerIn−PowerLoss)/(PowerIn+ε), 0, 1)

	EfficiencyMA []float64
	PowerInMA    []float64
	PowerLossMA  []float64
}

// Simulate integrates the circuit over the full drive. The state (q, I)
// starts at zero; each step is recorded before the state advances, so
// series index i reflects the grid point t[i]. CurrentRate at the last
// sample is zero since no further stage is evaluated there.
func Simulate(cfg Config, voltage, resistance []float64) (*Result, error) {
	if err := validate(cfg, voltage, resistance); err != nil {
		return nil, err
	}

	n := len(voltage)
	dt := cfg.Dt
	res := newResult(n)

	q, current := 0.0, 0.0

	for i := 0; i < n; i++ {
		vi := voltage[i]
		ri := math.Max(rFloor, resistance[i])

		rate := 0.0
		qNext, iNext := q, current

		if i < n-1 {
			vs := voltage[i+1]
			rs := math.Max(rFloor, resistance[i+1])

			k1q, k1i := derive(cfg, q, current, vi, ri)
			k2q, k2i := derive(cfg, q+0.5*k1q*dt, current+0.5*k1i*dt, vs, rs)
			k3q, k3i := derive(cfg, q+0.5*k2q*dt, current+0.5*k2i*dt, vs, rs)
			k4q, k4i := derive(cfg, q+k3q*dt, current+k3i*dt, vs, rs)

			qNext = q + (k1q+2*k2q+2*k3q+k4q)*(dt/6)
			iNext = current + (k1i+2*k2i+2*k3i+k4i)*(dt/6)
			rate = (k1i + 2*k2i + 2*k3i + k4i) / 6
		}

		res.Times[i] = float64(i) * dt
		res.Current[i] = current
		res.Charge[i] = q
		res.CurrentRate[i] = rate

		res.PowerIn[i] = math.Max(0, vi*current)
		res.PowerLoss[i] = current * current * ri
		res.EnergyL[i] = 0.5 * cfg.L * current * current
		res.EnergyC[i] = 0.5 * q * q / cfg.C

		useful := math.Max(0, res.PowerIn[i]-res.PowerLoss[i])
		res.Efficiency[i] = clip(useful/(res.PowerIn[i]+etaEps), 0, 1)

		q, current = qNext, iNext
	}

	win := int(smoothSeconds / dt)
	res.EfficiencyMA = MovingAverage(res.Efficiency, win)
	res.PowerInMA = MovingAverage(res.PowerIn, win)
	res.PowerLossMA = MovingAverage(res.PowerLoss, win)

	return res, nil
}

// derive evaluates dq/dt = I and dI/dt = (V − R·I − q/C)/L.
func derive(cfg Config, q, current, v, r float64) (dqdt, didt float64) {
	dqdt = current
	didt = (v - r*current - q/cfg.C) / cfg.L
	return dqdt, didt
}

// MovingAverage applies a centered fixed-window mean with zero-padded
// edges. A window of one sample or less returns the series unchanged.
func MovingAverage(x []float64, win int) []float64 {
	out := make([]float64, len(x))
	if win <= 1 {
		copy(out, x)
		return out
	}

	half := (win - 1) / 2
	for i := range x {
		hi := i + half
		lo := hi - win + 1
		sum := 0.0
		for j := lo; j <= hi; j++ {
			if j >= 0 && j < len(x) {
				sum += x[j]
			}
		}
		out[i] = sum / float64(win)
	}
	return out
}

func validate(cfg Config, voltage, resistance []float64) error {
	if len(voltage) != len(resistance) {
		return fmt.Errorf("drive length mismatch: %d voltage vs %d resistance samples", len(voltage), len(resistance))
	}
	if len(voltage) < 2 {
		return fmt.Errorf("drive too short: need at least 2 samples, got %d", len(voltage))
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.L <= 0 {
		return fmt.Errorf("inductance must be positive, got %f", cfg.L)
	}
	if cfg.C <= 0 {
		return fmt.Errorf("capacitance must be positive, got %f", cfg.C)
	}
	return nil
}

func newResult(n int) *Result {
	return &Result{
		Times:       make([]float64, n),
		Current:     make([]float64, n),
		Charge:      make([]float64, n),
		CurrentRate: make([]float64, n),
		PowerIn:     make([]float64, n),
		PowerLoss:   make([]float64, n),
		EnergyL:     make([]float64, n),
		EnergyC:     make([]float64, n),
		Efficiency:  make([]float64, n),
	}
}

func clip(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
