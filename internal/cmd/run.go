package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/casefile"
	"github.com/harrison/aoc/internal/config"
	"github.com/harrison/aoc/internal/harness"
	"github.com/harrison/aoc/internal/history"
	"github.com/harrison/aoc/internal/inputs"
	"github.com/harrison/aoc/internal/logger"
)

// ErrDayNotRegistered is returned when no solution is linked in for a day.
var ErrDayNotRegistered = errors.New("no solution registered")

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the case tables of one day or a whole year",
		Long: `Run the registered solutions against their case tables.

For each day the puzzle input is read from <inputs>/<year>-<dd> and every
selected case is reported on its own line followed by "<passed> of <total>
passed". A day with failing cases is logged as a warning; it does not change
the exit status. Only invalid flags or configuration do.

Extra example cases are read from <examples>/<year>-<dd>.md when present.

Examples:
  aoc run --year 2015 --day 1        # every case of 2015 day 1
  aoc run --year 2015                # every registered day of 2015
  aoc run --year 2024 --day 17 --2   # only part 2 cases
  aoc run --year 2015 --day 4 --case 3
  aoc run --year 2025 --only-solutions
  aoc run --year 2015 --day 1 --fetch`,
		Args: cobra.NoArgs,
		RunE: runCommand,
	}

	cmd.Flags().Int("year", 0, "Puzzle year (default: year from config)")
	cmd.Flags().Int("day", 0, "Puzzle day 1-25 (0 = every registered day)")
	cmd.Flags().Bool("1", false, "Run only part 1 cases")
	cmd.Flags().Bool("2", false, "Run only part 2 cases")
	cmd.Flags().Uint32("case", 0, "Run only the case with this 1-based index")
	cmd.Flags().Bool("only-solutions", false, "Skip example cases")
	cmd.Flags().String("inputs", "", "Directory holding puzzle inputs (default: inputs)")
	cmd.Flags().Bool("no-history", false, "Do not record this run in the history database")
	cmd.Flags().Bool("fetch", false, "Download missing inputs before running")

	return cmd
}

// request is the case filter in the primitive form the entrypoint takes.
type request struct {
	part          uint8
	caseIndex     uint32
	solutionsOnly bool
}

func (r request) filter() harness.Filter {
	return harness.Filter{
		Part:          harness.Part(r.part),
		Case:          r.caseIndex,
		SolutionsOnly: r.solutionsOnly,
	}
}

// requestFromFlags encodes --1, --2, --case and --only-solutions.
func requestFromFlags(cmd *cobra.Command) (request, error) {
	part1, _ := cmd.Flags().GetBool("1")
	part2, _ := cmd.Flags().GetBool("2")
	if part1 && part2 {
		return request{}, fmt.Errorf("cannot use both --1 and --2")
	}

	var req request
	switch {
	case part1:
		req.part = uint8(harness.Part1)
	case part2:
		req.part = uint8(harness.Part2)
	}
	req.caseIndex, _ = cmd.Flags().GetUint32("case")
	req.solutionsOnly, _ = cmd.Flags().GetBool("only-solutions")
	return req, nil
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	day, err := dayFlag(cmd)
	if err != nil {
		return err
	}

	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var inputsPtr *string
	if cmd.Flags().Changed("inputs") {
		inputsDir, _ := cmd.Flags().GetString("inputs")
		inputsPtr = &inputsDir
	}
	var historyPtr *bool
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		disabled := false
		historyPtr = &disabled
	}
	cfg.MergeWithFlags(nil, inputsPtr, nil, nil, historyPtr)

	if err := finishConfig(cfg, root, true); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d := newDriver(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	defer d.Close()

	if fetch, _ := cmd.Flags().GetBool("fetch"); fetch {
		d.fetcher = inputs.NewFetcher(cfg.Fetch.BaseURL, cfg.Session, cfg.Fetch.UserAgent, cfg.Fetch.Timeout)
	}

	if day != 0 {
		d.runDay(ctx, cfg.Year, day, req, false)
		return nil
	}
	d.runYear(ctx, cfg.Year, req)
	return nil
}

// driver runs days the way `aoc run` does. Per-day problems are logged and
// never abort the remaining days.
type driver struct {
	cfg     *config.Config
	out     io.Writer
	log     *logger.ConsoleLogger
	inputs  *inputs.Store
	fetcher *inputs.Fetcher
	history *history.Store
}

// newDriver builds a driver reporting cases to out and logging to errOut.
// History is opened when enabled; failing to open it only disables it.
func newDriver(cfg *config.Config, out, errOut io.Writer) *driver {
	d := &driver{
		cfg:    cfg,
		out:    out,
		log:    logger.NewConsoleLogger(errOut, cfg.LogLevel),
		inputs: inputs.NewStore(cfg.InputsDir),
	}

	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History.DBPath)
		if err != nil {
			d.log.LogWarnf("run history disabled: %v", err)
		} else {
			d.history = store
		}
	}
	return d
}

func (d *driver) Close() error {
	if d.history != nil {
		return d.history.Close()
	}
	return nil
}

// runYear runs every registered day of year in order and prints a summary.
func (d *driver) runYear(ctx context.Context, year int, req request) {
	var summary logger.SweepSummary
	summary.Year = year
	start := time.Now()

	for day := 1; day <= 25; day++ {
		if ctx.Err() != nil {
			d.log.LogWarn("interrupted, skipping remaining days")
			break
		}
		status, counted := d.runDay(ctx, year, day, req, true)
		if counted {
			summary.Add(day, status)
		}
	}

	if summary.Total() == 0 {
		d.log.LogWarnf("no solutions registered for %d", year)
		return
	}
	summary.Duration = time.Since(start)
	d.log.LogSweepSummary(summary)
}

// runDay runs one day. counted is false when a sweep skipped the day because
// nothing is registered for it.
func (d *driver) runDay(ctx context.Context, year, day int, req request, sweep bool) (status logger.DayStatus, counted bool) {
	name := fmt.Sprintf("%d-%02d", year, day)

	solution, err := d.load(year, day)
	if err != nil {
		if sweep && errors.Is(err, ErrDayNotRegistered) {
			d.log.LogDebugf("%s: %v, skipping", name, err)
			return logger.DayErrored, false
		}
		d.log.LogErrorf("failed to load solution for %s: %v", name, err)
		return logger.DayErrored, true
	}

	input, err := d.readInput(ctx, year, day)
	if err != nil {
		d.log.LogErrorf("failed to run for %s: %v", name, err)
		return logger.DayErrored, true
	}

	d.log.LogDayStart(name, len(solution.Cases))

	rec := &harness.Recorder{}
	reporter := harness.MultiReporter{harness.NewConsoleReporter(d.out), rec}
	run := solution.Entrypoint(reporter, d.log)

	started := time.Now()
	ok := run([]byte(input), req.part, req.caseIndex, req.solutionsOnly)
	elapsed := time.Since(started)

	if ok {
		d.log.LogInfof("%s: all cases passed", name)
		status = logger.DayPassed
	} else {
		d.log.LogWarnf("%s: some cases failed", name)
		status = logger.DayFailed
	}

	d.record(ctx, year, day, req, rec, ok, started, elapsed)
	return status, true
}

// load looks up the registered day and appends the cases of its example file.
func (d *driver) load(year, day int) (*harness.Day, error) {
	solution, ok := harness.Lookup(year, day)
	if !ok {
		return nil, ErrDayNotRegistered
	}

	extra, err := casefile.Load(d.cfg.ExamplesDir, year, day)
	if err != nil {
		d.log.LogWarnf("ignoring extra examples: %v", err)
		return solution, nil
	}
	if len(extra) > 0 {
		d.log.LogDebugf("%s: %d extra example cases", solution.Name(), len(extra))
		solution = solution.WithCases(extra...)
	}
	return solution, nil
}

// readInput returns the puzzle input, downloading it first when fetching is
// enabled and the file is missing.
func (d *driver) readInput(ctx context.Context, year, day int) (string, error) {
	if d.fetcher != nil {
		downloaded, err := inputs.Ensure(ctx, d.inputs, d.fetcher, year, day, false)
		if err != nil {
			return "", fmt.Errorf("failed to fetch input: %w", err)
		}
		if downloaded {
			d.log.LogInfof("downloaded input to %s", d.inputs.Path(year, day))
		}
	}

	d.log.LogDebugf("reading %s", d.inputs.Path(year, day))
	return d.inputs.Read(year, day)
}

func (d *driver) record(ctx context.Context, year, day int, req request, rec *harness.Recorder, ok bool, started time.Time, elapsed time.Duration) {
	if d.history == nil {
		return
	}

	_, _, summarized := rec.Tally()
	run := history.NewRun(year, day, req.filter(), started)
	run.Finish(rec.Results(), ok, summarized, elapsed)

	if err := d.history.RecordRun(ctx, run); err != nil {
		d.log.LogWarnf("failed to record run: %v", err)
		return
	}
	d.log.LogDebugf("recorded run %s", run.ID)
}
