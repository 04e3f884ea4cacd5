package circuit

import (
	"math"
	"testing"
)

func TestNaturalFrequency(t *testing.T) {
	cfg := Config{L: 1.0, C: 1.0}
	if math.Abs(cfg.NaturalFrequency()-1.0) > 1e-12 {
		t.Errorf("expected omega0 = 1, got %f", cfg.NaturalFrequency())
	}

	cfg = Config{L: 4.0, C: 0.25}
	if math.Abs(cfg.NaturalFrequency()-1.0) > 1e-12 {
		t.Errorf("expected omega0 = 1, got %f", cfg.NaturalFrequency())
	}
}

func TestDampedFrequency(t *testing.T) {
	cfg := Config{L: 1.0, C: 1.0}

	wd := cfg.DampedFrequency(0.005)
	if wd <= 0 || wd >= cfg.NaturalFrequency() {
		t.Errorf("underdamped frequency out of range: %f", wd)
	}

	if cfg.DampedFrequency(5.0) != 0 {
		t.Error("overdamped circuit must report zero damped frequency")
	}
}

func TestRegime(t *testing.T) {
	cfg := Config{L: 1.0, C: 1.0}

	tests := []struct {
		r    float64
		want string
	}{
		{0.005, "underdamped"},
		{2.0, "critically damped"},
		{3.0, "overdamped"},
	}

	for _, tt := range tests {
		if got := cfg.Regime(tt.r); got != tt.want {
			t.Errorf("R=%.3f: expected %s, got %s", tt.r, tt.want, got)
		}
	}
}

func TestTimeConstant(t *testing.T) {
	cfg := Config{L: 1.0, C: 1.0}
	if math.Abs(cfg.TimeConstant(0.5)-4.0) > 1e-12 {
		t.Errorf("expected tau = 4, got %f", cfg.TimeConstant(0.5))
	}

	// Zero resistance is floored, not a division by zero.
	if math.IsInf(cfg.TimeConstant(0), 0) {
		t.Error("time constant must stay finite at zero resistance")
	}
}
