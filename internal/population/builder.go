// Package population builds the ordered task collections the runner drives.
package population

import (
	"fmt"

	"github.com/gatebench/gatebench/internal/task"
	"github.com/gatebench/gatebench/pkg/types"
)

const (
	// DefaultSize is the number of tasks in a population.
	DefaultSize = 1_000_000

	// DefaultStride selects which indices get a gate: i % stride == 0.
	DefaultStride = 128

	// DefaultThreshold is the gate threshold of the selected indices.
	DefaultThreshold = 32
)

// Rule is the deterministic generation rule shared by every variant.
type Rule struct {
	// Size is the number of tasks to build
	Size int `json:"size" yaml:"size"`

	// Stride gates every index divisible by it
	Stride int `json:"stride" yaml:"stride"`

	// Threshold is the gate threshold for gated indices
	Threshold int `json:"threshold" yaml:"threshold"`
}

// DefaultRule returns the default generation rule.
func DefaultRule() Rule {
	return Rule{
		Size:      DefaultSize,
		Stride:    DefaultStride,
		Threshold: DefaultThreshold,
	}
}

// Validate checks that the rule can build a population.
func (r Rule) Validate() error {
	if r.Size <= 0 {
		return fmt.Errorf("population size must be positive, got %d", r.Size)
	}
	if r.Stride <= 0 {
		return fmt.Errorf("population stride must be positive, got %d", r.Stride)
	}
	return nil
}

// Gated reports whether the task at index i is configured with a gate.
func (r Rule) Gated(i int) bool {
	return i%r.Stride == 0
}

// WorkFor returns the work wrapped by the task at index i.
func (r Rule) WorkFor(i int) task.Work {
	if r.Gated(i) {
		return task.Identity
	}
	return task.Double
}

// GatedCount returns how many tasks of the population carry a gate.
func (r Rule) GatedCount() int {
	if r.Size <= 0 || r.Stride <= 0 {
		return 0
	}
	return (r.Size + r.Stride - 1) / r.Stride
}

// Population is an ordered, read-only collection of tasks of one variant.
type Population[T task.Task] struct {
	Variant types.Variant
	Rule    Rule
	Tasks   []T
}

// Len returns the number of tasks.
func (p *Population[T]) Len() int {
	return len(p.Tasks)
}

// Build applies rule r with the given variant constructor and configure step.
// Every variant goes through this same loop so populations only differ in
// their task representation.
func Build[T task.Task](variant types.Variant, r Rule, newTask func(task.Work) T, withPrereq func(T, int) T) *Population[T] {
	if err := r.Validate(); err != nil {
		panic(fmt.Sprintf("population: %v", err))
	}

	tasks := make([]T, 0, r.Size)
	for i := 0; i < r.Size; i++ {
		t := newTask(r.WorkFor(i))
		if r.Gated(i) {
			t = withPrereq(t, r.Threshold)
		}
		tasks = append(tasks, t)
	}

	return &Population[T]{
		Variant: variant,
		Rule:    r,
		Tasks:   tasks,
	}
}

// BuildV1 builds a population of call-time checked tasks.
func BuildV1(r Rule) *Population[*task.TaskV1] {
	return Build(types.VariantV1, r, task.NewV1, (*task.TaskV1).WithPrereq)
}

// BuildV2 builds a population of configure-time compiled tasks.
func BuildV2(r Rule) *Population[*task.TaskV2] {
	return Build(types.VariantV2, r, task.NewV2, (*task.TaskV2).WithPrereq)
}

// BuildV3 builds a population of inline value tasks.
func BuildV3(r Rule) *Population[task.TaskV3] {
	return Build(types.VariantV3, r, task.NewV3, task.TaskV3.WithPrereq)
}
