package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"minitest/unit"
)

// Summary tape characters, one per case.
const (
	tapePassed  = '.'
	tapeFailed  = 'F'
	tapeInvalid = '?'
)

var (
	passMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Console renders the end-of-run summary as a compiler-friendly text block.
type Console struct {
	w io.Writer
}

// NewConsole returns a console renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintRunResults writes the report banner, the one-character-per-case
// summary tape, numbered details for every case that needs attention, the
// overall verdict and the completion timestamp.
func (p *Console) PrintRunResults(reg *unit.Registry, timestamp string) {
	fmt.Fprintf(p.w, "\n")
	fmt.Fprintf(p.w, "=================== Unit Test Report ===================\n")
	fmt.Fprintf(p.w, "Framework version:  %s\n", unit.Version)
	fmt.Fprintf(p.w, "Project:            %s\n\n", reg.Project())
	p.printSummary(reg)
	p.printDetails(reg)
	fmt.Fprintf(p.w, "\n")
	fmt.Fprintf(p.w, "Done.\t %s\n", timestamp)
	fmt.Fprintf(p.w, "========================================================\n")
}

// printSummary writes the tape: one character per case in traversal order.
func (p *Console) printSummary(reg *unit.Registry) {
	fmt.Fprintf(p.w, "Summary (%c=fail, %c=pass, %c=invalid):\n\t", tapeFailed, tapePassed, tapeInvalid)
	reg.WalkCases(func(c *unit.Case) {
		switch c.Result() {
		case unit.Pass:
			fmt.Fprintf(p.w, "%c", tapePassed)
		case unit.Fail:
			fmt.Fprintf(p.w, "%c", tapeFailed)
		default:
			fmt.Fprintf(p.w, "%c", tapeInvalid)
		}
	})
	fmt.Fprintf(p.w, "\n")
}

// printDetails writes numbered lines for failed and never-evaluated cases,
// then the verdict. A clean run skips straight to the verdict.
func (p *Console) printDetails(reg *unit.Registry) {
	stats := reg.Stats()
	if stats.Passed == stats.Total {
		fmt.Fprintf(p.w, "\nResult:\n\t%s", passMark("PASS"))
	} else {
		fmt.Fprintf(p.w, "\nDetails (%d fails, %d invalid):\n", stats.Failed, stats.Invalid())
		num := 0
		reg.WalkCases(func(c *unit.Case) {
			switch c.Result() {
			case unit.Fail:
				num++
				fmt.Fprintf(p.w, "\t%d) %s -- %s: %s\n", num, c.Name(), c.MessageLocation(), c.Message())
			case unit.Undefined:
				num++
				fmt.Fprintf(p.w, "\t%d) %s -- %s: not evaluated\n", num, c.Name(), c.Location())
			}
		})
		fmt.Fprintf(p.w, "\nResult:\n\t%s", failMark("FAIL"))
	}
	fmt.Fprintf(p.w, " (%d runs, %d passes, %d fails)\n", stats.Total, stats.Passed, stats.Failed)
}
