package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"minitest/config"
	"minitest/ui"
	"minitest/unit"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	suites SuiteSource
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, suites SuiteSource) *ListCommand {
	return &ListCommand{
		config: cfg,
		suites: suites,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	entities, err := lc.suites(lc.config.Flags.WithFailures)
	if err != nil {
		return err
	}

	// Filter cases
	entities = unit.Match(entities, lc.config.Flags.Filter)

	if len(entities) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	ui.PrintEntityList(entities, lc.config.Flags.Cases)
	return nil
}
