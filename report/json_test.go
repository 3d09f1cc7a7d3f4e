package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"minitest/unit"
)

func TestSaveAndLoadResults(t *testing.T) {
	reg := unit.NewRegistry("Demo Project")
	g, err := unit.NewGroup("g",
		unit.NewSilentCase("good", passBody),
		unit.NewSilentCase("bad", func(c *unit.Case) { c.AssertStrEquals("want", "got") }),
		unit.NewSilentCase("idle", idleBody),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := quietRunner().Run(reg, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "results.json")
	if err := Save(reg, stamp, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := RunMeta{
		Project:   "Demo Project",
		Version:   unit.Version,
		Timestamp: stamp,
		Total:     3,
		Passed:    1,
		Failed:    1,
		Invalid:   1,
	}
	if res.Meta != want {
		t.Errorf("expected meta %+v, got %+v", want, res.Meta)
	}

	if len(res.Details) != 2 {
		t.Fatalf("expected 2 failure details, got %d", len(res.Details))
	}
	bad := res.Details[0]
	if bad.Name != "bad" || bad.Result != "fail" || bad.Message != "expected <want>, but was <got>" {
		t.Errorf("unexpected failure detail %+v", bad)
	}
	if !strings.HasSuffix(bad.File, "json_test.go") || bad.Line == 0 {
		t.Errorf("expected assertion site in json_test.go, got %s:%d", bad.File, bad.Line)
	}
	idle := res.Details[1]
	if idle.Name != "idle" || idle.Result != "invalid" || idle.Message != "not evaluated" {
		t.Errorf("unexpected invalid detail %+v", idle)
	}
}

func TestSnapshotOfCleanRun(t *testing.T) {
	reg := unit.NewRegistry("Demo Project")
	if err := quietRunner().Run(reg, unit.NewSilentCase("only", passBody)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := Snapshot(reg, stamp)
	want := RunMeta{Project: "Demo Project", Version: unit.Version, Timestamp: stamp, Total: 1, Passed: 1}
	if snap.Meta != want {
		t.Errorf("expected meta %+v, got %+v", want, snap.Meta)
	}
	if diff := cmp.Diff([]FailureDetail(nil), snap.Details); diff != "" {
		t.Errorf("expected no failure details (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for a missing results file")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for a malformed results file")
	}
}
