package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"minitest/unit"
)

// Results is the persisted form of a finished run, written alongside the
// HTML report so failures can be reviewed later without re-running.
type Results struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureDetail `json:"details"`
}

// RunMeta identifies the run and mirrors the aggregate counters with stable
// JSON keys.
type RunMeta struct {
	Project   string `json:"project"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Total     int    `json:"total_cases"`
	Passed    int    `json:"passed_cases"`
	Failed    int    `json:"failed_cases"`
	Invalid   int    `json:"invalid_cases"`
}

// FailureDetail is one case that needs attention: it either failed or never
// evaluated an assertion.
type FailureDetail struct {
	Name    string `json:"name"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Result  string `json:"result"`
	Message string `json:"message"`
}

// Failures collects the cases needing attention in traversal order. Failed
// cases point at the failing assertion, never-evaluated ones at their
// declaration.
func Failures(reg *unit.Registry) []FailureDetail {
	var details []FailureDetail
	reg.WalkCases(func(c *unit.Case) {
		switch c.Result() {
		case unit.Fail:
			details = append(details, FailureDetail{
				Name:    c.Name(),
				File:    c.MessageLocation().File,
				Line:    c.MessageLocation().Line,
				Result:  c.Result().String(),
				Message: c.Message(),
			})
		case unit.Undefined:
			details = append(details, FailureDetail{
				Name:    c.Name(),
				File:    c.Location().File,
				Line:    c.Location().Line,
				Result:  c.Result().String(),
				Message: "not evaluated",
			})
		}
	})
	return details
}

// Snapshot captures reg into a serializable Results value.
func Snapshot(reg *unit.Registry, timestamp string) *Results {
	s := reg.Stats()
	return &Results{
		Meta: RunMeta{
			Project:   reg.Project(),
			Version:   unit.Version,
			Timestamp: timestamp,
			Total:     s.Total,
			Passed:    s.Passed,
			Failed:    s.Failed,
			Invalid:   s.Invalid(),
		},
		Details: Failures(reg),
	}
}

// Save writes the results file at path, creating parent directories as
// needed.
func Save(reg *unit.Registry, timestamp, path string) error {
	data, err := json.MarshalIndent(Snapshot(reg, timestamp), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

// Load reads a results file written by Save.
func Load(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	var res Results
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	return &res, nil
}
