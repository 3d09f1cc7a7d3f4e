package unit

// Result is the recorded outcome of a test case. A freshly constructed (or
// reset) case is Undefined; every assertion that executes overwrites the
// outcome, so the last assertion of a run decides it.
type Result int

const (
	// Undefined means no assertion has executed: the case has not run yet,
	// or its body ran to completion without asserting anything.
	Undefined Result = iota
	// Pass means the most recent assertion of the run passed.
	Pass
	// Fail means an assertion failed and aborted the body.
	Fail
)

// String returns the label used by the renderers.
func (r Result) String() string {
	switch r {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "invalid"
	}
}
