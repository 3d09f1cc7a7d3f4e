package unit

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGroup(t *testing.T, name string, cases ...*Case) *Group {
	t.Helper()
	g, err := NewGroup(name, cases...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func mustModule(t *testing.T, name string, groups ...*Group) *Module {
	t.Helper()
	m, err := NewModule(name, groups...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func quietRunner() *Runner {
	r := NewRunner()
	r.SetOutput(io.Discard)
	return r
}

func passBody(c *Case) { c.Pass() }

func TestRunGroupContinuesAfterFailure(t *testing.T) {
	fail := func(c *Case) { c.Fail("boom") }
	g := mustGroup(t, "mixed",
		NewSilentCase("a", passBody),
		NewSilentCase("b", fail),
		NewSilentCase("c", passBody),
		NewSilentCase("d", fail),
		NewSilentCase("e", passBody),
	)

	quietRunner().RunGroup(g)

	want := Stats{Total: 5, Passed: 3, Failed: 2}
	if got := g.Stats(); got != want {
		t.Errorf("expected stats %+v, got %+v", want, got)
	}
	cases := g.Cases()
	for i, wantResult := range []Result{Pass, Fail, Pass, Fail, Pass} {
		if cases[i].Result() != wantResult {
			t.Errorf("case %s: expected %v, got %v", cases[i].Name(), wantResult, cases[i].Result())
		}
	}
}

func TestRunModuleExecutesInDeclarationOrder(t *testing.T) {
	var order []string
	mark := func(name string) Func {
		return func(c *Case) {
			order = append(order, name)
			c.Pass()
		}
	}
	m := mustModule(t, "mod",
		mustGroup(t, "g1", NewSilentCase("a", mark("a")), NewSilentCase("b", mark("b"))),
		mustGroup(t, "g2", NewSilentCase("c", mark("c")), NewSilentCase("d", mark("d"))),
	)

	quietRunner().RunModule(m)

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, order); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
	want := Stats{Total: 4, Passed: 4}
	if got := m.Stats(); got != want {
		t.Errorf("expected stats %+v, got %+v", want, got)
	}
}

func TestCaseSharedBetweenGroups(t *testing.T) {
	runs := 0
	shared := NewSilentCase("shared", func(c *Case) {
		runs++
		c.Pass()
	})
	m := mustModule(t, "mod",
		mustGroup(t, "g1", shared),
		mustGroup(t, "g2", shared),
	)

	quietRunner().RunModule(m)

	if runs != 2 {
		t.Errorf("expected the shared case to run once per group, ran %d times", runs)
	}
	want := Stats{Total: 2, Passed: 2}
	if got := m.Stats(); got != want {
		t.Errorf("expected stats %+v, got %+v", want, got)
	}
}

func TestRunCaseResetsPreviousOutcome(t *testing.T) {
	attempt := 0
	c := NewSilentCase("flaky", func(c *Case) {
		attempt++
		if attempt == 1 {
			c.Fail("first run")
		}
		c.Pass()
	})
	r := quietRunner()

	r.RunCase(c)
	if c.Result() != Fail || c.Message() != "first run" {
		t.Fatalf("expected first run to fail with message, got %v %q", c.Result(), c.Message())
	}

	r.RunCase(c)
	if c.Result() != Pass {
		t.Errorf("expected second run to pass, got %v", c.Result())
	}
	if c.Message() != "" {
		t.Errorf("expected cleared message, got %q", c.Message())
	}
	if c.MessageLocation() != (Location{}) {
		t.Errorf("expected cleared message location, got %v", c.MessageLocation())
	}
}

func TestCaseWithoutAssertionsStaysUndefined(t *testing.T) {
	c := runBody(t, func(c *Case) {})
	if c.Result() != Undefined {
		t.Errorf("expected %v, got %v", Undefined, c.Result())
	}
	if got := c.Stats(); got.Invalid() != 1 {
		t.Errorf("expected one invalid case, got %+v", got)
	}
}

func TestEchoLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner()
	r.SetOutput(&buf)

	t.Run("pass", func(t *testing.T) {
		buf.Reset()
		r.RunCase(NewCase("adder", func(c *Case) { c.Pass() }))
		line := buf.String()
		if !strings.Contains(line, "run_test.go:") {
			t.Errorf("expected declaration site in %q", line)
		}
		if !strings.HasSuffix(line, ":0: info: adder passed.\n") {
			t.Errorf("unexpected pass line %q", line)
		}
	})

	t.Run("fail", func(t *testing.T) {
		buf.Reset()
		r.RunCase(NewCase("subber", func(c *Case) { c.AssertIntEquals(5, 6) }))
		lines := strings.SplitAfter(buf.String(), "\n")
		if len(lines) != 3 || lines[2] != "" {
			t.Fatalf("expected two lines, got %q", buf.String())
		}
		if !strings.HasSuffix(lines[0], ":0: error: subber failed.\n") {
			t.Errorf("unexpected verdict line %q", lines[0])
		}
		if !strings.HasSuffix(lines[1], ":0: error: expected <5>, but was <6>\n") {
			t.Errorf("unexpected diagnostic line %q", lines[1])
		}
	})

	t.Run("not evaluated", func(t *testing.T) {
		buf.Reset()
		r.RunCase(NewCase("idler", func(c *Case) {}))
		if !strings.HasSuffix(buf.String(), ":0: warning: idler not evaluated.\n") {
			t.Errorf("unexpected warning line %q", buf.String())
		}
	})

	t.Run("silent case", func(t *testing.T) {
		buf.Reset()
		r.RunCase(NewSilentCase("mute", func(c *Case) { c.Pass() }))
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("echo disabled", func(t *testing.T) {
		buf.Reset()
		r.SetEcho(false)
		defer r.SetEcho(true)
		r.RunCase(NewCase("loud", func(c *Case) { c.Pass() }))
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestForeignPanicFailsOnlyItsCase(t *testing.T) {
	g := mustGroup(t, "g",
		NewSilentCase("boomer", func(c *Case) { panic("kaboom") }),
		NewSilentCase("after", passBody),
	)

	quietRunner().RunGroup(g)

	cases := g.Cases()
	if cases[0].Result() != Fail {
		t.Errorf("expected panicking case to fail, got %v", cases[0].Result())
	}
	if got := cases[0].Message(); got != "panic: kaboom" {
		t.Errorf("expected panic diagnostic, got %q", got)
	}
	if cases[0].MessageLocation() != cases[0].Location() {
		t.Errorf("expected diagnostic at declaration site, got %v", cases[0].MessageLocation())
	}
	if cases[1].Result() != Pass {
		t.Errorf("expected sibling to run, got %v", cases[1].Result())
	}
}

type caseRecorder struct {
	names   []string
	results []Result
}

func (r *caseRecorder) CaseDone(c *Case) {
	r.names = append(r.names, c.Name())
	r.results = append(r.results, c.Result())
}

func TestObserverSeesEveryFinishedCase(t *testing.T) {
	g := mustGroup(t, "g",
		NewSilentCase("a", passBody),
		NewSilentCase("b", func(c *Case) { c.Fail("nope") }),
		NewSilentCase("c", passBody),
	)
	rec := &caseRecorder{}
	r := quietRunner()
	r.SetObserver(rec)

	r.RunGroup(g)

	if diff := cmp.Diff([]string{"a", "b", "c"}, rec.names); diff != "" {
		t.Errorf("observed names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Result{Pass, Fail, Pass}, rec.results); diff != "" {
		t.Errorf("observed results mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerRunRecordsAndExecutes(t *testing.T) {
	reg := NewRegistry("demo")
	c := NewSilentCase("solo", passBody)

	if err := quietRunner().Run(reg, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(reg.Items()); got != 1 {
		t.Fatalf("expected one recorded entity, got %d", got)
	}
	if c.Result() != Pass {
		t.Errorf("expected executed case to pass, got %v", c.Result())
	}
}

func TestRunNilCasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a nil case")
		}
	}()
	quietRunner().RunCase(nil)
}
