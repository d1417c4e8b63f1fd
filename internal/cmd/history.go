package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/history"
)

// NewHistoryCommand creates the 'aoc history' command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Long: `Show runs recorded by 'aoc run' when history is enabled
(history.enabled: true in .aoc/config.yaml).

Examples:
  aoc history                  # 20 most recent runs
  aoc history --year 2024 --limit 5
  aoc history --run 3f2a       # cases of one run, by id or id prefix`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().Int("year", 0, "Only show runs of this year")
	cmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	cmd.Flags().String("run", "", "Show the cases of the run with this id (or unique id prefix)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := finishConfig(cfg, root, false); err != nil {
		return err
	}

	output := cmd.OutOrStdout()

	if _, err := os.Stat(cfg.History.DBPath); os.IsNotExist(err) {
		fmt.Fprintf(output, "No runs recorded yet.\n")
		fmt.Fprintf(output, "Database path: %s\n", cfg.History.DBPath)
		return nil
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()

	if id, _ := cmd.Flags().GetString("run"); id != "" {
		run, err := store.GetRun(ctx, id)
		if err != nil {
			return err
		}
		displayRun(output, run)
		return nil
	}

	year := 0
	if cmd.Flags().Changed("year") {
		year = cfg.Year
	}
	limit, _ := cmd.Flags().GetInt("limit")

	runs, err := store.ListRuns(ctx, year, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(output, "No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(output, "%s  %s  %s  %s  %s\n",
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Name(),
			runVerdict(run),
			run.Duration.Round(time.Millisecond))
	}
	return nil
}

func displayRun(w io.Writer, run *history.Run) {
	fmt.Fprintf(w, "Run %s\n", run.ID)
	fmt.Fprintf(w, "  Day: %s\n", run.Name())
	fmt.Fprintf(w, "  Started: %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "  Duration: %s\n", run.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Filter: %s\n", describeFilter(run))
	fmt.Fprintf(w, "  Result: %s\n", runVerdict(run))

	if len(run.Cases) == 0 {
		return
	}
	fmt.Fprintf(w, "\nCases:\n")
	for _, c := range run.Cases {
		tag := "input  "
		if c.Example {
			tag = "example"
		}
		switch c.Status {
		case "FAILED":
			fmt.Fprintf(w, "  #%d %s %s %s: expected %s, got %s\n", c.Index, c.Part, tag, color.RedString(c.Status), c.Expected, c.Actual)
		case "PASSED":
			fmt.Fprintf(w, "  #%d %s %s %s: %s\n", c.Index, c.Part, tag, color.GreenString(c.Status), c.Actual)
		default:
			fmt.Fprintf(w, "  #%d %s %s returned %s\n", c.Index, c.Part, tag, c.Actual)
		}
	}
}

func runVerdict(run *history.Run) string {
	switch {
	case run.Aborted:
		return color.RedString("aborted")
	case run.Selected == 0:
		return "no cases selected"
	}
	verdict := fmt.Sprintf("%d of %d passed", run.Selected-run.Failed, run.Selected)
	if run.OK {
		return color.GreenString(verdict)
	}
	return color.RedString(verdict)
}

func describeFilter(run *history.Run) string {
	f := run.Filter
	desc := "all parts"
	if f.Part != 0 {
		desc = f.Part.String()
	}
	if f.Case != 0 {
		desc += fmt.Sprintf(", case #%d", f.Case)
	}
	if f.SolutionsOnly {
		desc += ", solutions only"
	}
	return desc
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
