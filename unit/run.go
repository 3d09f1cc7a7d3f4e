package unit

import (
	"fmt"
	"io"
	"os"
)

// Observer is notified after each case finishes, successful or not. The
// progress bar in the ui package implements it.
type Observer interface {
	CaseDone(c *Case)
}

// Runner executes cases, groups and modules strictly sequentially. An
// assertion failure aborts only the case that raised it; sibling cases
// still run.
type Runner struct {
	out  io.Writer
	echo bool
	obs  Observer
}

// NewRunner returns a runner that echoes per-case result lines to stdout.
func NewRunner() *Runner {
	return &Runner{out: os.Stdout, echo: true}
}

// SetOutput redirects the per-case result lines to w.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// SetEcho enables or disables result lines for the whole run; individual
// cases opt out via NewSilentCase.
func (r *Runner) SetEcho(on bool) {
	r.echo = on
}

// SetObserver registers obs to be notified after every finished case.
func (r *Runner) SetObserver(obs Observer) {
	r.obs = obs
}

// Run appends e to the registry and executes it. This is the usual way to
// drive a run: everything executed is recorded for reporting.
func (r *Runner) Run(reg *Registry, e Entity) error {
	if err := reg.Append(e); err != nil {
		return err
	}
	r.RunEntity(e)
	return nil
}

// RunEntity executes a case, group or module.
func (r *Runner) RunEntity(e Entity) {
	switch v := e.(type) {
	case *Case:
		r.RunCase(v)
	case *Group:
		r.RunGroup(v)
	case *Module:
		r.RunModule(v)
	default:
		panic("unit: run of nil entity")
	}
}

// RunCase executes one case: the previous outcome is cleared, the body runs
// until it returns or its first assertion fails, and the result line is
// echoed. Running a nil case is a setup defect and panics.
func (r *Runner) RunCase(c *Case) {
	if c == nil {
		panic("unit: run of nil case")
	}
	if c.fn == nil {
		panic("unit: case " + c.name + " has no body")
	}

	c.reset()
	r.invoke(c)

	if r.echo && c.echo {
		r.echoResult(c)
	}
	if r.obs != nil {
		r.obs.CaseDone(c)
	}
}

// RunGroup executes the group's cases in declaration order.
func (r *Runner) RunGroup(g *Group) {
	if g == nil {
		panic("unit: run of nil group")
	}
	for _, c := range g.cases {
		r.RunCase(c)
	}
}

// RunModule executes the module's groups in declaration order.
func (r *Runner) RunModule(m *Module) {
	if m == nil {
		panic("unit: run of nil module")
	}
	for _, g := range m.groups {
		r.RunGroup(g)
	}
}

// invoke establishes the abort boundary around one body. The sentinel panic
// raised by this case's failing assertion is absorbed here; any other panic
// is recorded as a failure so sibling cases keep running.
func (r *Runner) invoke(c *Case) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if a, ok := v.(caseAbort); ok && a.tc == c {
			return
		}
		c.result = Fail
		c.message = clip(fmt.Sprintf("panic: %v", v), MaxMessageLen)
		c.msgLoc = c.loc
	}()
	c.fn(c)
}

// echoResult prints the compiler-style line(s) for a finished case.
func (r *Runner) echoResult(c *Case) {
	switch c.result {
	case Pass:
		fmt.Fprintf(r.out, "%s:%d:0: info: %s passed.\n", c.loc.File, c.loc.Line, c.name)
	case Fail:
		fmt.Fprintf(r.out, "%s:%d:0: error: %s failed.\n", c.loc.File, c.loc.Line, c.name)
		fmt.Fprintf(r.out, "%s:%d:0: error: %s\n", c.msgLoc.File, c.msgLoc.Line, c.message)
	default:
		fmt.Fprintf(r.out, "%s:%d:0: warning: %s not evaluated.\n", c.loc.File, c.loc.Line, c.name)
	}
}
