package unit

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryCapacity(t *testing.T) {
	reg := NewRegistry("demo")
	for i := 0; i < MaxRootItems; i++ {
		c := NewSilentCase(fmt.Sprintf("case-%d", i), passBody)
		if err := reg.Append(c); err != nil {
			t.Fatalf("append %d: unexpected error: %v", i, err)
		}
	}

	if err := reg.Append(NewSilentCase("overflow", passBody)); err == nil {
		t.Error("expected error when appending past capacity")
	}
	if got := len(reg.Items()); got != MaxRootItems {
		t.Errorf("expected %d items after rejected append, got %d", MaxRootItems, got)
	}
}

func TestRegistryRejectsNilEntity(t *testing.T) {
	reg := NewRegistry("demo")
	if err := reg.Append(nil); err == nil {
		t.Error("expected error for nil entity")
	}
}

func TestGroupCapacity(t *testing.T) {
	cases := make([]*Case, MaxGroupCases+1)
	for i := range cases {
		cases[i] = NewSilentCase(fmt.Sprintf("case-%d", i), passBody)
	}

	if _, err := NewGroup("full", cases[:MaxGroupCases]...); err != nil {
		t.Errorf("expected group at capacity to build, got %v", err)
	}
	if _, err := NewGroup("overflow", cases...); err == nil {
		t.Error("expected error past group capacity")
	}
}

func TestGroupRejectsNilCase(t *testing.T) {
	if _, err := NewGroup("holed", NewSilentCase("ok", passBody), nil); err == nil {
		t.Error("expected error for nil case")
	}
}

func TestModuleCapacity(t *testing.T) {
	groups := make([]*Group, MaxModuleGroups+1)
	for i := range groups {
		groups[i] = mustGroup(t, fmt.Sprintf("group-%d", i))
	}

	if _, err := NewModule("full", groups[:MaxModuleGroups]...); err != nil {
		t.Errorf("expected module at capacity to build, got %v", err)
	}
	if _, err := NewModule("overflow", groups...); err == nil {
		t.Error("expected error past module capacity")
	}
}

func TestModuleRejectsNilGroup(t *testing.T) {
	if _, err := NewModule("holed", mustGroup(t, "ok"), nil); err == nil {
		t.Error("expected error for nil group")
	}
}

func TestRegistryStatsAcrossEntityKinds(t *testing.T) {
	fail := func(c *Case) { c.Fail("boom") }
	idle := func(c *Case) {}

	m := mustModule(t, "mod",
		mustGroup(t, "g1", NewSilentCase("a", passBody), NewSilentCase("b", passBody), NewSilentCase("c", passBody)),
		mustGroup(t, "g2", NewSilentCase("d", passBody), NewSilentCase("e", passBody), NewSilentCase("f", passBody)),
	)
	g := mustGroup(t, "bare-group", NewSilentCase("g", passBody), NewSilentCase("h", idle))
	c := NewSilentCase("bare-case", fail)

	reg := NewRegistry("demo")
	r := quietRunner()
	for _, e := range []Entity{m, g, c} {
		if err := r.Run(reg, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := Stats{Total: 9, Passed: 7, Failed: 1}
	got := reg.Stats()
	if got != want {
		t.Errorf("expected stats %+v, got %+v", want, got)
	}
	if got.Invalid() != 1 {
		t.Errorf("expected one invalid case, got %d", got.Invalid())
	}
	if reg.Result() != Fail {
		t.Errorf("expected overall %v, got %v", Fail, reg.Result())
	}
}

func TestRegistryVerdict(t *testing.T) {
	t.Run("empty registry passes", func(t *testing.T) {
		if got := NewRegistry("demo").Result(); got != Pass {
			t.Errorf("expected %v, got %v", Pass, got)
		}
	})

	t.Run("all passed", func(t *testing.T) {
		reg := NewRegistry("demo")
		r := quietRunner()
		if err := r.Run(reg, mustGroup(t, "g", NewSilentCase("a", passBody), NewSilentCase("b", passBody))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reg.Result(); got != Pass {
			t.Errorf("expected %v, got %v", Pass, got)
		}
	})

	t.Run("undefined case spoils the verdict", func(t *testing.T) {
		reg := NewRegistry("demo")
		r := quietRunner()
		if err := r.Run(reg, NewSilentCase("idle", func(c *Case) {})); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reg.Result(); got != Fail {
			t.Errorf("expected %v, got %v", Fail, got)
		}
	})
}

func TestWalkCasesTraversalOrder(t *testing.T) {
	m := mustModule(t, "mod",
		mustGroup(t, "g1", NewSilentCase("a", passBody), NewSilentCase("b", passBody)),
		mustGroup(t, "g2", NewSilentCase("c", passBody)),
	)
	reg := NewRegistry("demo")
	for _, e := range []Entity{m, NewSilentCase("d", passBody)} {
		if err := reg.Append(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	reg.WalkCases(func(c *Case) { names = append(names, c.Name()) })

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, names); diff != "" {
		t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	reg := NewRegistry("demo")
	if err := reg.Append(NewSilentCase("a", passBody)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := reg.Items()
	items[0] = nil

	if reg.Items()[0] == nil {
		t.Error("mutating the returned slice must not affect the registry")
	}
}
