package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a test run
type Config struct {
	// Report settings
	ProjectName string
	ReportFile  string
	ResultsFile string

	// Output toggles
	GenerateReport  bool
	GenerateSummary bool
	EchoCaseResults bool

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectName:     DefaultProjectName,
		ReportFile:      DefaultReportFile,
		ResultsFile:     DefaultResultsFile,
		GenerateReport:  DefaultGenerateReport,
		GenerateSummary: DefaultGenerateSummary,
		EchoCaseResults: DefaultEchoCaseResults,
	}
}

// Load creates a config from defaults, environment and flags, in that order
// of precedence: flags win over environment, environment over defaults.
func Load(flags Flags) *Config {
	cfg := FromEnv()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.ProjectName != "" {
		cfg.ProjectName = flags.ProjectName
	}
	if flags.ReportFile != "" {
		cfg.ReportFile = flags.ReportFile
	}
	if flags.ResultsFile != "" {
		cfg.ResultsFile = flags.ResultsFile
	}
	if flags.NoReport {
		cfg.GenerateReport = false
	}
	if flags.NoSummary {
		cfg.GenerateSummary = false
	}
	if flags.Quiet {
		cfg.EchoCaseResults = false
	}

	return cfg
}

// FromEnv creates a config with environment overrides applied. A .env file
// in the working directory is loaded first when present.
func FromEnv() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	cfg := New()
	if v := os.Getenv(EnvProjectName); v != "" {
		cfg.ProjectName = v
	}
	if v := os.Getenv(EnvReportFile); v != "" {
		cfg.ReportFile = v
	}
	if v := os.Getenv(EnvResultsFile); v != "" {
		cfg.ResultsFile = v
	}
	cfg.GenerateReport = envBool(EnvReport, cfg.GenerateReport)
	cfg.GenerateSummary = envBool(EnvSummary, cfg.GenerateSummary)
	cfg.EchoCaseResults = envBool(EnvEcho, cfg.EchoCaseResults)

	return cfg
}

// envBool reads a boolean variable, keeping fallback when the variable is
// unset or not parseable.
func envBool(name string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}

// GetReportPath returns the report file path resolved to absolute so output
// lands in a predictable place regardless of cwd.
func (c *Config) GetReportPath() string {
	if abs, err := filepath.Abs(c.ReportFile); err == nil {
		return abs
	}
	return c.ReportFile
}

// GetResultsPath returns the results file path resolved to absolute so run
// and faills always read and write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	if abs, err := filepath.Abs(c.ResultsFile); err == nil {
		return abs
	}
	return c.ResultsFile
}
