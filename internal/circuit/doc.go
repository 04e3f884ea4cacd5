// Package circuit simulates a driven series RLC circuit.
//
// The governing equation is
//
//	L·dI/dt + R(t)·I + q/C = V(t)
//
// integrated on a fixed time grid with fourth-order Runge-Kutta. Drive
// voltage and resistance are supplied as precomputed sample sequences
// (see the drive package); [Simulate] is a pure function of
// ([Config], V, R) and returns the full per-step trajectory together
// with power, stored-energy, and efficiency diagnostics.
//
// The Runge-Kutta stages after the first reuse the next grid sample of
// (V, R) instead of an interpolated midpoint value. The drive is only
// known at integer steps, and downstream results depend on the exact
// stage placement, so midpoint interpolation is deliberately avoided.
package circuit
