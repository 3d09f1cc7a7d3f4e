package config

const (
	// DefaultProjectName is the project name shown in report headers
	DefaultProjectName = "Unnamed Project"
	// DefaultReportFile is the default HTML report file name
	DefaultReportFile = "report.html"
	// DefaultResultsFile is the default JSON results file name
	DefaultResultsFile = "results.json"
	// DefaultGenerateReport controls HTML report generation
	DefaultGenerateReport = true
	// DefaultGenerateSummary controls the console summary block
	DefaultGenerateSummary = true
	// DefaultEchoCaseResults controls per-case result lines during the run
	DefaultEchoCaseResults = true
)

// Environment variables honored by FromEnv
const (
	EnvProjectName = "MINITEST_PROJECT_NAME"
	EnvReportFile  = "MINITEST_REPORT_FILE"
	EnvResultsFile = "MINITEST_RESULTS_FILE"
	EnvReport      = "MINITEST_REPORT"
	EnvSummary     = "MINITEST_SUMMARY"
	EnvEcho        = "MINITEST_ECHO"
)
