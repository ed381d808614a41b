package task

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// affine returns a work that depends on both arguments, so a variant that
// dropped or swapped either one would be caught.
func affine(k int) Work {
	return func(input, prereq int) int {
		return input*k + prereq
	}
}

// TestProperty_UngatedTickReturnsWork validates that a task without a gate
// always returns the wrapped work's result.
func TestProperty_UngatedTickReturnsWork(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, vc := range variantCtors {
		vc := vc
		properties.Property(vc.name+" ungated tick equals work", prop.ForAll(
			func(k, input, prereq int) bool {
				work := affine(k)
				task := vc.build(work, 0, false)
				return task.Tick(input, prereq) == work(input, prereq)
			},
			gen.IntRange(-8, 8),
			gen.IntRange(-100000, 100000),
			gen.IntRange(-2000000, 2000000),
		))
	}

	properties.TestingRun(t)
}

// TestProperty_GatedTickHonoursThreshold validates that a gated task runs
// its work iff prereq < threshold and returns 0 otherwise.
func TestProperty_GatedTickHonoursThreshold(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, vc := range variantCtors {
		vc := vc
		properties.Property(vc.name+" gated tick follows strict less-than", prop.ForAll(
			func(k, input, prereq, threshold int) bool {
				work := affine(k)
				task := vc.build(work, threshold, true)
				want := 0
				if prereq < threshold {
					want = work(input, prereq)
				}
				return task.Tick(input, prereq) == want
			},
			gen.IntRange(-8, 8),
			gen.IntRange(-100000, 100000),
			gen.IntRange(-200, 200),
			gen.IntRange(-200, 200),
		))
	}

	properties.TestingRun(t)
}

// TestProperty_VariantsAgree validates that every variant returns the same
// value for the same (work, gate, input, prereq) tuple.
func TestProperty_VariantsAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("V1, V2 and V3 agree", prop.ForAll(
		func(k, input, prereq, threshold int, gated bool) bool {
			work := affine(k)
			want := variantCtors[0].build(work, threshold, gated).Tick(input, prereq)
			for _, vc := range variantCtors[1:] {
				if vc.build(work, threshold, gated).Tick(input, prereq) != want {
					return false
				}
			}
			return true
		},
		gen.IntRange(-8, 8),
		gen.IntRange(-100000, 100000),
		gen.IntRange(-200, 200),
		gen.IntRange(-200, 200),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestProperty_TickIsIdempotent validates that Tick has no hidden state:
// repeating a call with the same arguments yields the same result.
func TestProperty_TickIsIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, vc := range variantCtors {
		vc := vc
		properties.Property(vc.name+" repeated tick is stable", prop.ForAll(
			func(input, prereq, threshold int, gated bool) bool {
				task := vc.build(affine(3), threshold, gated)
				first := task.Tick(input, prereq)
				for i := 0; i < 5; i++ {
					if task.Tick(input, prereq) != first {
						return false
					}
				}
				return true
			},
			gen.IntRange(-100000, 100000),
			gen.IntRange(-200, 200),
			gen.IntRange(-200, 200),
			gen.Bool(),
		))
	}

	properties.TestingRun(t)
}
