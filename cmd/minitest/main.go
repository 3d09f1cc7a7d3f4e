package main

import (
	"errors"
	"fmt"
	"os"

	"minitest/config"
	"minitest/internal/cli"
	"minitest/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "minitest",
		Short:         "Minimal unit test runner with reports",
		Long:          `A minimal test execution and reporting engine. Run the registered test cases sequentially and review failures in console, HTML and JSON reports or an interactive viewer.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		// Failed cases already printed their own report
		if errors.Is(err, commands.ErrRunFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
