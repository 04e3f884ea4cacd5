package force

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Entity", func() {
	It("clamps potential into [0,1] at construction", func() {
		Expect(NewEntity(1.7, nil).Potential).To(Equal(1.0))
		Expect(NewEntity(-0.3, nil).Potential).To(Equal(0.0))
		Expect(NewEntity(0.42, nil).Potential).To(Equal(0.42))
	})
})

var _ = Describe("ComputeForce", func() {
	var engine *Engine

	BeforeEach(func() {
		engine = NewEngine()
	})

	It("reports alignment 1.0 for an entity against itself", func() {
		e := NewEntity(0.8, []float64{0.3, 0.7, 0.1})
		res := engine.ComputeForce(e, e, 0.5, 0.5)
		Expect(res.Components["alignment"]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("opens the selection gate exactly halfway at compatibility 0.5", func() {
		a := NewEntity(1.0, nil)
		b := NewEntity(1.0, nil)
		res := engine.ComputeForce(a, b, 1.0, 0.5)
		Expect(res.Components["selection_gate"]).To(Equal(0.5))
	})

	It("scales as the inverse cube of resistance away from the floor", func() {
		a := NewEntity(0.9, nil)
		b := NewEntity(0.9, nil)

		near := engine.ComputeForce(a, b, 0.2, 0.8)
		far := engine.ComputeForce(a, b, 0.4, 0.8)

		ratio := near.Components["magnitude"] / far.Components["magnitude"]
		Expect(ratio).To(BeNumerically("~", 8.0, 1e-9))
	})

	It("floors resistance below the configured minimum", func() {
		a := NewEntity(0.5, nil)
		b := NewEntity(0.5, nil)

		atZero := engine.ComputeForce(a, b, 0.0, 0.5)
		atFloor := engine.ComputeForce(a, b, DefaultRMin, 0.5)

		Expect(atZero.Components["r_effective"]).To(Equal(DefaultRMin))
		Expect(atZero.Force).To(Equal(atFloor.Force))
	})

	It("resolves the twin resonance example to a strong attraction", func() {
		a := NewEntity(0.9, []float64{0.9, 0.5, 0.8})
		b := NewEntity(0.9, []float64{0.8, 0.6, 0.9})

		res := engine.ComputeForce(a, b, 0.05, 0.95)

		wantAlignment := 1.74 / math.Sqrt(1.70*1.81)
		wantGate := 1.0 / (1.0 + math.Exp(-12.0*0.45))
		wantMagnitude := 100.0 * 0.81 * math.Pow(0.05, -3)

		Expect(res.Components["alignment"]).To(BeNumerically("~", wantAlignment, 1e-9))
		Expect(res.Components["selection_gate"]).To(BeNumerically("~", wantGate, 1e-9))
		Expect(res.Components["magnitude"]).To(BeNumerically("~", wantMagnitude, 1e-6))
		Expect(res.Force).To(BeNumerically("~", wantMagnitude*wantAlignment*wantGate, 1e-6))
		Expect(res.Description).To(Equal("Strong Attraction"))
	})

	It("yields zero force for zero vectors regardless of the other inputs", func() {
		a := NewEntity(1.0, []float64{0, 0, 0})
		b := NewEntity(1.0, []float64{0, 0, 0})

		res := engine.ComputeForce(a, b, 0.05, 0.99)

		Expect(res.Components["alignment"]).To(Equal(0.0))
		Expect(res.Force).To(Equal(0.0))
		Expect(res.Description).To(Equal("Neutral"))
	})

	It("defaults alignment to 1.0 for empty or mismatched vectors", func() {
		a := NewEntity(0.5, nil)
		b := NewEntity(0.5, []float64{1, 2})
		Expect(engine.ComputeForce(a, b, 0.5, 0.5).Components["alignment"]).To(Equal(1.0))

		c := NewEntity(0.5, []float64{1, 2, 3})
		Expect(engine.ComputeForce(b, c, 0.5, 0.5).Components["alignment"]).To(Equal(1.0))
	})

	It("saturates the gate at extreme compatibility", func() {
		a := NewEntity(0.5, nil)
		b := NewEntity(0.5, nil)

		low := engine.ComputeForce(a, b, 0.5, 0.0).Components["selection_gate"]
		high := engine.ComputeForce(a, b, 0.5, 1.0).Components["selection_gate"]

		Expect(low).To(BeNumerically("<", 0.01))
		Expect(high).To(BeNumerically(">", 0.99))
	})
})

var _ = Describe("classify", func() {
	DescribeTable("buckets with exclusive thresholds",
		func(f float64, want string) {
			Expect(classify(f)).To(Equal(want))
		},
		Entry("well above", 120.0, "Strong Attraction"),
		Entry("upper boundary stays in the lower bucket", 50.0, "Attraction"),
		Entry("moderate pull", 25.0, "Attraction"),
		Entry("attraction boundary", 10.0, "Neutral"),
		Entry("dead zone", 0.0, "Neutral"),
		Entry("repulsion boundary", -10.0, "Neutral"),
		Entry("moderate push", -25.0, "Repulsion"),
		Entry("lower boundary stays in the lower bucket", -50.0, "Repulsion"),
		Entry("well below", -120.0, "Strong Repulsion"),
	)
})
