package commands

import (
	"github.com/spf13/cobra"

	"minitest/config"
	"minitest/report"
	"minitest/ui"
)

// FaillsCommand handles the faills command
type FaillsCommand struct {
	config *config.Config
	viewer *ui.FailureViewer
}

// NewFaillsCommand creates a new FaillsCommand
func NewFaillsCommand(cfg *config.Config, viewer *ui.FailureViewer) *FaillsCommand {
	return &FaillsCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := report.Load(fc.config.GetResultsPath())
	if err != nil {
		return err
	}

	return fc.viewer.View(results)
}
