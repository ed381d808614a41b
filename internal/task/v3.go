package task

// TaskV3 is a value type with the TaskV1 call shape. A []TaskV3 holds every
// task inline, so iterating a population touches no per-task pointer.
type TaskV3 struct {
	work Work
	gate Gate
}

// NewV3 creates an ungated TaskV3.
func NewV3(work Work) TaskV3 {
	return TaskV3{work: work}
}

// WithPrereq returns a copy of t with the gate threshold set. It must be
// applied at most once.
func (t TaskV3) WithPrereq(threshold int) TaskV3 {
	mustBeUnconfigured(t.gate)
	t.gate = Threshold(threshold)
	return t
}

// Tick implements Task.
func (t TaskV3) Tick(input, prereq int) int {
	if t.gate.Admits(prereq) {
		return t.work(input, prereq)
	}
	return 0
}

// Prereq returns the configured gate.
func (t TaskV3) Prereq() Gate {
	return t.gate
}
