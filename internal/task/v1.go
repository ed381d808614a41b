package task

// TaskV1 stores the work and its gate separately and checks the gate on
// every call.
type TaskV1 struct {
	work Work
	gate Gate
}

// NewV1 creates an ungated TaskV1.
func NewV1(work Work) *TaskV1 {
	return &TaskV1{work: work}
}

// WithPrereq sets the gate threshold. It must be called at most once,
// before the first Tick.
func (t *TaskV1) WithPrereq(threshold int) *TaskV1 {
	mustBeUnconfigured(t.gate)
	t.gate = Threshold(threshold)
	return t
}

// Tick implements Task.
func (t *TaskV1) Tick(input, prereq int) int {
	if t.gate.Admits(prereq) {
		return t.work(input, prereq)
	}
	return 0
}

// Prereq returns the configured gate.
func (t *TaskV1) Prereq() Gate {
	return t.gate
}
