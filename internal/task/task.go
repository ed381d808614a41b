// Package task provides units of work guarded by an optional prerequisite gate.
//
// Three representations share the same outward behaviour and differ only in
// how a call reaches the wrapped work:
//   - TaskV1 keeps the work and the gate as separate fields and checks the
//     gate on every Tick.
//   - TaskV2 folds the gate into the stored callable when it is configured,
//     so Tick is a single unconditional call.
//   - TaskV3 is TaskV1 stored by value, so a population of them is one
//     contiguous slice with no per-task heap object.
package task

// Work is the unit of work wrapped by a task.
type Work func(input, prereq int) int

// Identity returns its input unchanged.
func Identity(input, _ int) int {
	return input
}

// Double returns its input doubled.
func Double(input, _ int) int {
	return input * 2
}

// Task is the capability the benchmark runner drives.
type Task interface {
	// Tick invokes the wrapped work if the gate admits prereq, otherwise
	// it returns 0 without invoking the work.
	Tick(input, prereq int) int
}

// Inspectable is a Task whose configured gate can be read back.
type Inspectable interface {
	Task
	Prereq() Gate
}

// Gate is an optional prerequisite threshold. The zero value is "no gate",
// which keeps a threshold of 0 distinct from an unset one.
type Gate struct {
	threshold int
	enabled   bool
}

// NoGate returns a gate that admits every prerequisite value.
func NoGate() Gate {
	return Gate{}
}

// Threshold returns a gate that admits prerequisite values strictly below t.
func Threshold(t int) Gate {
	return Gate{threshold: t, enabled: true}
}

// Enabled reports whether a threshold is configured.
func (g Gate) Enabled() bool {
	return g.enabled
}

// Value returns the threshold and whether one is configured.
func (g Gate) Value() (int, bool) {
	return g.threshold, g.enabled
}

// Admits reports whether work should run for the given prerequisite value.
func (g Gate) Admits(prereq int) bool {
	return !g.enabled || prereq < g.threshold
}

func mustBeUnconfigured(g Gate) {
	if g.enabled {
		panic("task: prerequisite already configured")
	}
}
