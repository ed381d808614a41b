package task

// TaskV2 stores a single callable. Configuring a gate replaces that callable
// with one that carries the gate check inside it, so Tick never looks at the
// gate.
type TaskV2 struct {
	call Work

	// gate records the configuration for Prereq only; Tick never reads it.
	gate Gate
}

// NewV2 creates an ungated TaskV2.
func NewV2(work Work) *TaskV2 {
	return &TaskV2{call: work}
}

// WithPrereq compiles the gate into the stored callable. It must be called
// at most once, before the first Tick.
func (t *TaskV2) WithPrereq(threshold int) *TaskV2 {
	mustBeUnconfigured(t.gate)
	t.call = gated(t.call, threshold)
	t.gate = Threshold(threshold)
	return t
}

// gated captures work and threshold by value; the returned Work never
// observes later changes to the task.
func gated(work Work, threshold int) Work {
	return func(input, prereq int) int {
		if prereq < threshold {
			return work(input, prereq)
		}
		return 0
	}
}

// Tick implements Task.
func (t *TaskV2) Tick(input, prereq int) int {
	return t.call(input, prereq)
}

// Prereq returns the configured gate.
func (t *TaskV2) Prereq() Gate {
	return t.gate
}
