package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/config"
)

// loadConfig reads the file named by --config, or .aoc/config.yaml under the
// workspace root, and applies the persistent flags. It returns the config
// with paths resolved against the root, plus the root itself.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	root := config.FindWorkspaceRoot(wd)

	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(root)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	var yearPtr *int
	if f := cmd.Flags().Lookup("year"); f != nil && f.Changed {
		year, _ := cmd.Flags().GetInt("year")
		yearPtr = &year
	}
	cfg.MergeWithFlags(yearPtr, nil, nil, logLevelPtr, nil)

	return cfg, root, nil
}

// finishConfig resolves paths and validates cfg. requireYear rejects a
// config that names no year.
func finishConfig(cfg *config.Config, root string, requireYear bool) error {
	cfg.ResolvePaths(root)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if requireYear && cfg.Year == 0 {
		return fmt.Errorf("no year given: use --year or set year in .aoc/config.yaml")
	}
	return nil
}

// dayFlag reads --day and checks its range. 0 means every day.
func dayFlag(cmd *cobra.Command) (int, error) {
	day, _ := cmd.Flags().GetInt("day")
	if day < 0 || day > 25 {
		return 0, fmt.Errorf("invalid --day %d: must be between 1 and 25 (0 = all days)", day)
	}
	return day, nil
}
