package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/casefile"
	"github.com/harrison/aoc/internal/harness"
	"github.com/harrison/aoc/internal/inputs"
)

// NewListCommand creates the 'aoc list' command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered solutions",
		Long: `List every registered day with the size of its case table and whether
its puzzle input is present in the inputs directory.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("year", 0, "Only list this year")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := finishConfig(cfg, root, false); err != nil {
		return err
	}

	output := cmd.OutOrStdout()
	store := inputs.NewStore(cfg.InputsDir)

	years := harness.Years()
	if cmd.Flags().Changed("year") {
		years = []int{cfg.Year}
	}

	present := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	bold := color.New(color.Bold)

	for _, year := range years {
		days := harness.Days(year)
		if len(days) == 0 {
			fmt.Fprintf(output, "%d: no solutions registered\n", year)
			continue
		}

		fmt.Fprintf(output, "%s\n", bold.Sprintf("%d (%d days)", year, len(days)))
		for _, day := range days {
			examples := len(day.Examples())
			line := fmt.Sprintf("  %s  %2d cases (%d examples, %d inputs)",
				day.Name(), len(day.Cases), examples, len(day.Cases)-examples)

			if extra, err := casefile.Load(cfg.ExamplesDir, year, day.Day); err == nil && len(extra) > 0 {
				line += fmt.Sprintf(" +%d from %s", len(extra), casefile.Path(cfg.ExamplesDir, year, day.Day))
			}

			if store.Exists(year, day.Day) {
				line += "  " + present.Sprint("input present")
			} else {
				line += "  " + missing.Sprint("input missing")
			}
			fmt.Fprintln(output, line)
		}
	}

	return nil
}
