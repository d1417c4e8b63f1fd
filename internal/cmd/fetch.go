package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/harness"
	"github.com/harrison/aoc/internal/inputs"
	"github.com/harrison/aoc/internal/logger"
)

// NewFetchCommand creates the 'aoc fetch' command
func NewFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download puzzle inputs",
		Long: `Download personal puzzle inputs into the inputs directory.

The session cookie is read from the session key of .aoc/config.yaml or the
AOC_SESSION environment variable. Inputs already present are kept unless
--force is given.

Examples:
  aoc fetch --year 2024 --day 16
  aoc fetch --year 2015            # every registered day of 2015`,
		Args: cobra.NoArgs,
		RunE: runFetch,
	}

	cmd.Flags().Int("year", 0, "Puzzle year (default: year from config)")
	cmd.Flags().Int("day", 0, "Puzzle day 1-25 (0 = every registered day)")
	cmd.Flags().Bool("force", false, "Download even if the input is already present")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	day, err := dayFlag(cmd)
	if err != nil {
		return err
	}

	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := finishConfig(cfg, root, true); err != nil {
		return err
	}
	if cfg.Session == "" {
		return inputs.ErrNoSession
	}

	force, _ := cmd.Flags().GetBool("force")

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	store := inputs.NewStore(cfg.InputsDir)
	fetcher := inputs.NewFetcher(cfg.Fetch.BaseURL, cfg.Session, cfg.Fetch.UserAgent, cfg.Fetch.Timeout)

	days := []int{day}
	if day == 0 {
		days = nil
		for _, d := range harness.Days(cfg.Year) {
			days = append(days, d.Day)
		}
		if len(days) == 0 {
			return fmt.Errorf("%w for %d", ErrDayNotRegistered, cfg.Year)
		}
	}

	failed := 0
	for _, d := range days {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		downloaded, err := inputs.Ensure(ctx, store, fetcher, cfg.Year, d, force)
		switch {
		case err != nil:
			log.LogErrorf("%d-%02d: %v", cfg.Year, d, err)
			failed++
		case downloaded:
			log.LogInfof("downloaded %s", store.Path(cfg.Year, d))
		default:
			log.LogInfof("%s already present", store.Path(cfg.Year, d))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(days))
	}
	return nil
}
