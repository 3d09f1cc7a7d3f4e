package unit

// Func is a test body. It receives the case under execution and reports
// outcomes through the case's assertion methods.
type Func func(c *Case)

// Case is the smallest executable unit: a named body plus the outcome
// recorded by its most recent run. Cases are built once and may be run any
// number of times; each run starts from a clean Undefined outcome.
type Case struct {
	name string
	loc  Location
	fn   Func
	echo bool

	result  Result
	message string
	msgLoc  Location
}

// NewCase builds a case around fn and captures the call site as the
// declaration location. The runner echoes a one-line result for the case
// after each run; use NewSilentCase to suppress that. A nil body is a setup
// defect and panics immediately.
func NewCase(name string, fn Func) *Case {
	return newCase(name, fn, true)
}

// NewSilentCase is NewCase without the per-run result line.
func NewSilentCase(name string, fn Func) *Case {
	return newCase(name, fn, false)
}

func newCase(name string, fn Func, echo bool) *Case {
	if fn == nil {
		panic("unit: case " + name + " has no body")
	}
	return &Case{
		name: name,
		loc:  caller(1),
		fn:   fn,
		echo: echo,
	}
}

// Name returns the case name shown in reports.
func (c *Case) Name() string { return c.name }

// Location returns the declaration site.
func (c *Case) Location() Location { return c.loc }

// Result returns the outcome of the most recent run.
func (c *Case) Result() Result { return c.result }

// Message returns the diagnostic recorded by the failing assertion, or ""
// when the case did not fail.
func (c *Case) Message() string { return c.message }

// MessageLocation returns the call site of the assertion that recorded the
// diagnostic.
func (c *Case) MessageLocation() Location { return c.msgLoc }

// Echo reports whether the runner prints a result line for this case.
func (c *Case) Echo() bool { return c.echo }

// reset clears the previous run's outcome.
func (c *Case) reset() {
	c.result = Undefined
	c.message = ""
	c.msgLoc = Location{}
}

func (*Case) entity() {}
