package cli

import "minitest/config"

// Flags holds command-line flags
type Flags struct {
	ProjectName  string
	ReportFile   string
	ResultsFile  string
	Filter       string
	NoSummary    bool
	NoReport     bool
	Quiet        bool
	Progress     bool
	Viewer       bool
	WithFailures bool
	Cases        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectName:  f.ProjectName,
		ReportFile:   f.ReportFile,
		ResultsFile:  f.ResultsFile,
		Filter:       f.Filter,
		NoSummary:    f.NoSummary,
		NoReport:     f.NoReport,
		Quiet:        f.Quiet,
		Progress:     f.Progress,
		Viewer:       f.Viewer,
		WithFailures: f.WithFailures,
		Cases:        f.Cases,
	}
}
