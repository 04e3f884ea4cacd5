// Package force scores the attraction between two entities with a
// physics-inspired closed form:
//
//	F = k · (P1·P2) / R^n · Alignment · Selection
//
// where R is an effective resistance (floored to avoid the 1/R^n
// singularity), Alignment is the cosine similarity of the entities'
// value vectors, and Selection is a steep sigmoid gate on instinctive
// compatibility. Every input degenerate case is absorbed by a floor,
// clamp, or default; no call fails.
package force

import "math"

// Entity is a person, product, or organization with a scalar potential
// (capability/charm, kept in [0,1]) and a value vector used for
// alignment. Vectors of the two sides must match in length to carry
// information; anything else falls back to the neutral alignment.
type Entity struct {
	Potential float64
	Vector    []float64
}

// NewEntity clamps potential into [0,1] at construction, the only
// normalization entities receive.
func NewEntity(potential float64, vector []float64) Entity {
	return Entity{Potential: clip(potential, 0, 1), Vector: vector}
}

// Result carries the scalar force, its named intermediate components,
// and a qualitative classification for display.
type Result struct {
	Force       float64
	Components  map[string]float64
	Description string
}

// Engine holds the formula constants.
type Engine struct {
	K    float64 // scaling constant
	N    float64 // distance decay exponent (3 mimics magnetic dipoles)
	RMin float64 // resistance floor
}

const (
	DefaultK    = 100.0
	DefaultN    = 3.0
	DefaultRMin = 0.001

	gateSteepness = 12.0
	gateCenter    = 0.5
)

func NewEngine() *Engine {
	return &Engine{K: DefaultK, N: DefaultN, RMin: DefaultRMin}
}

// ComputeForce evaluates the formula for two entities. rScore is the
// current distance/friction (lower is closer); compatibility in [0,1]
// gates the result around its 0.5 midpoint.
func (e *Engine) ComputeForce(a, b Entity, rScore, compatibility float64) Result {
	r := math.Max(e.RMin, rScore)

	alignment := cosineSimilarity(a.Vector, b.Vector)

	gate := 1.0 / (1.0 + math.Exp(-gateSteepness*(compatibility-gateCenter)))
	gate = clip(gate, 0, 1)

	magnitude := e.K * (a.Potential * b.Potential) * math.Pow(r, -e.N)
	f := magnitude * alignment * gate

	return Result{
		Force: f,
		Components: map[string]float64{
			"magnitude":      magnitude,
			"alignment":      alignment,
			"selection_gate": gate,
			"r_effective":    r,
		},
		Description: classify(f),
	}
}

// classify buckets a force value; boundaries resolve to the
// lower-magnitude bucket.
func classify(f float64) string {
	switch {
	case f > 50:
		return "Strong Attraction"
	case f > 10:
		return "Attraction"
	case f < -50:
		return "Strong Repulsion"
	case f < -10:
		return "Repulsion"
	default:
		return "Neutral"
	}
}

// cosineSimilarity measures directional alignment of two vectors.
// Empty or mismatched vectors carry no information and default to 1.0;
// a zero-norm vector with a matching non-empty peer aligns to 0.0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 1.0
	}

	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clip(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
