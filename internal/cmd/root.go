package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for aoc
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solution runner",
		Long: `aoc runs registered Advent of Code solutions against their case tables.

Every day carries a table of cases: example inputs embedded in the solution
and the personal puzzle input read from the inputs directory. Cases with a
known answer are reported as PASSED or FAILED, the rest just show the answer.

Configuration is loaded from .aoc/config.yaml in the workspace root if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .aoc/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewFetchCommand())
	cmd.AddCommand(NewNewCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
