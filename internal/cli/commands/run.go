package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minitest/config"
	"minitest/report"
	"minitest/ui"
	"minitest/unit"
)

// ErrRunFailed reports that at least one case did not pass. The run itself
// completed normally; the sentinel only drives the process exit code.
var ErrRunFailed = errors.New("run finished with failures")

// SuiteSource produces the entities a command operates on.
type SuiteSource func(withFailures bool) ([]unit.Entity, error)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	suites  SuiteSource
	console *report.Console
	viewer  *ui.FailureViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	suites SuiteSource,
	console *report.Console,
	viewer *ui.FailureViewer,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		suites:  suites,
		console: console,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	entities, err := rc.suites(rc.config.Flags.WithFailures)
	if err != nil {
		return err
	}

	// Filter cases
	entities = unit.Match(entities, rc.config.Flags.Filter)

	if len(entities) == 0 {
		color.Yellow("No cases to run")
		return nil
	}

	reg := unit.NewRegistry(rc.config.ProjectName)
	runner := unit.NewRunner()
	runner.SetEcho(rc.config.EchoCaseResults)

	// Create and set progress bar (echo lines would tangle with it)
	var bar *ui.ProgressBar
	if rc.config.Flags.Progress && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = ui.NewProgressBar(countCases(entities))
		runner.SetObserver(bar)
		runner.SetEcho(false)
	}

	// Execute cases
	for _, e := range entities {
		if err := runner.Run(reg, e); err != nil {
			return err
		}
	}
	if bar != nil {
		bar.Finish()
	}

	timestamp := report.Timestamp(time.Now())

	// Print summary
	if rc.config.GenerateSummary {
		rc.console.PrintRunResults(reg, timestamp)
	}

	// Write HTML report; a missing report is not worth failing a finished run
	if rc.config.GenerateReport {
		if err := report.Generate(reg, timestamp, rc.config.GetReportPath()); err != nil {
			color.Yellow("Skipping HTML report: %v", err)
		}
	}

	// Save results
	if err := report.Save(reg, timestamp, rc.config.GetResultsPath()); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	if reg.Result() == unit.Pass {
		return nil
	}

	if rc.config.Flags.Viewer {
		results, err := report.Load(rc.config.GetResultsPath())
		if err != nil {
			return err
		}
		if err := rc.viewer.View(results); err != nil {
			return err
		}
	}

	return ErrRunFailed
}

func countCases(entities []unit.Entity) int {
	total := 0
	for _, e := range entities {
		total += e.Stats().Total
	}
	return total
}
