// Package bench drives task populations through timed passes and
// aggregates the pass durations.
package bench

import (
	"fmt"
	"time"

	"github.com/gatebench/gatebench/internal/population"
	"github.com/gatebench/gatebench/internal/task"
	"github.com/gatebench/gatebench/pkg/types"
)

// DefaultPasses is the number of full passes per run.
const DefaultPasses = 1000

// Runner performs a fixed number of timed passes over a population.
type Runner struct {
	passes int
	input  int
	now    func() time.Time
}

// NewRunner creates a runner for the given number of passes. Every pass
// ticks each task with input 0 and the task's own position as prereq.
func NewRunner(passes int) *Runner {
	if passes <= 0 {
		panic(fmt.Sprintf("bench: passes must be positive, got %d", passes))
	}
	return &Runner{
		passes: passes,
		now:    time.Now,
	}
}

// WithInput sets the input passed to every Tick.
func (r *Runner) WithInput(input int) *Runner {
	r.input = input
	return r
}

// WithClock replaces the wall clock, for tests.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Passes returns the configured pass count.
func (r *Runner) Passes() int {
	return r.passes
}

// Input returns the configured tick input.
func (r *Runner) Input() int {
	return r.input
}

// Result is the outcome of one run.
type Result struct {
	Variant types.Variant

	// Samples holds one duration per pass, in milliseconds, in pass order.
	Samples []float64

	// Checksum is the sum of every Tick result of a single pass. The gate
	// outcome of each task depends only on its position, so it is the same
	// for every pass.
	Checksum int
}

// Mean returns the mean pass duration in milliseconds.
func (r *Result) Mean() float64 {
	return Mean(r.Samples)
}

// Min returns the fastest pass in milliseconds.
func (r *Result) Min() float64 {
	return Min(r.Samples)
}

// Max returns the slowest pass in milliseconds.
func (r *Result) Max() float64 {
	return Max(r.Samples)
}

// Run drives p through the runner's passes. Only the iteration over the
// tasks is inside the timed bracket.
func Run[T task.Task](r *Runner, p *population.Population[T]) *Result {
	tasks := p.Tasks
	samples := make([]float64, 0, r.passes)
	checksum := 0

	for pass := 0; pass < r.passes; pass++ {
		sum := 0
		start := r.now()
		for i, t := range tasks {
			sum += t.Tick(r.input, i)
		}
		elapsed := r.now().Sub(start)

		samples = append(samples, milliseconds(elapsed))
		checksum = sum
	}

	return &Result{
		Variant:  p.Variant,
		Samples:  samples,
		Checksum: checksum,
	}
}

func milliseconds(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	return float64(d) / float64(time.Millisecond)
}
