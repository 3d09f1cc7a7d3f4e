package commands

import (
	"os"

	"github.com/spf13/cobra"

	"minitest/config"
	"minitest/internal/cli"
	"minitest/internal/sample"
	"minitest/report"
	"minitest/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	console := report.NewConsole(os.Stdout)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:    NewRunCommand(cfg, sample.Entities, console, viewer),
		List:   NewListCommand(cfg, sample.Entities),
		Faills: NewFaillsCommand(cfg, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered test cases",
		Long:  "Execute the registered test cases sequentially and report the results",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Rebuild config now that flags are parsed
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.ProjectName, "project", "p", "", "Project name shown on the report")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'frame*' or '*checksum*')")
	runCmd.Flags().StringVar(&flags.ReportFile, "report-file", "", "Path of the HTML report to write")
	runCmd.Flags().StringVar(&flags.ResultsFile, "results-file", "", "Path of the JSON results file to write")
	runCmd.Flags().BoolVar(&flags.NoSummary, "no-summary", false, "Skip the console summary after the run")
	runCmd.Flags().BoolVar(&flags.NoReport, "no-report", false, "Skip writing the HTML report")
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress per-case result lines")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while cases run")
	runCmd.Flags().BoolVar(&flags.Viewer, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.WithFailures, "with-failures", false, "Include the demo cases that fail on purpose")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered test cases",
		Long:  "Show the registered test cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'frame*' or '*checksum*')")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List every case instead of the suite overview")
	listCmd.Flags().BoolVar(&flags.WithFailures, "with-failures", false, "Include the demo cases that fail on purpose")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Faills.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	faillsCmd.Flags().StringVar(&flags.ResultsFile, "results-file", "", "Path of the JSON results file to read")
	rootCmd.AddCommand(faillsCmd)
}
