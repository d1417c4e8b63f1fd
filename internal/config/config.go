package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionEnvVar overrides the session cookie from the config file.
const SessionEnvVar = "AOC_SESSION"

// FetchConfig controls downloading puzzle inputs.
type FetchConfig struct {
	// BaseURL is the puzzle site root
	BaseURL string `yaml:"base_url"`

	// UserAgent is sent with every input request
	UserAgent string `yaml:"user_agent"`

	// Timeout bounds a single download (0 = no timeout)
	Timeout time.Duration `yaml:"-"`
}

// HistoryConfig controls recording of run outcomes.
type HistoryConfig struct {
	// Enabled records every `aoc run` to the history database
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database file
	DBPath string `yaml:"db_path"`
}

// Config represents aoc configuration options
type Config struct {
	// Year is used when --year is not given (0 = must be given)
	Year int `yaml:"year"`

	// InputsDir holds puzzle inputs named <year>-<dd>
	InputsDir string `yaml:"inputs_dir"`

	// ExamplesDir holds optional markdown files with extra example cases
	ExamplesDir string `yaml:"examples_dir"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Session is the puzzle site session cookie used by `aoc fetch`
	Session string `yaml:"session"`

	Fetch   FetchConfig   `yaml:"fetch"`
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Year:        0,
		InputsDir:   "inputs",
		ExamplesDir: "examples",
		LogLevel:    "info",
		Fetch: FetchConfig{
			BaseURL:   "https://adventofcode.com",
			UserAgent: "github.com/harrison/aoc",
			Timeout:   30 * time.Second,
		},
		History: HistoryConfig{
			Enabled: false,
			DBPath:  filepath.Join(".aoc", "history.db"),
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed file is an error.
// The AOC_SESSION environment variable, when set, replaces the session.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are strings in YAML
	type yamlFetch struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
		Timeout   string `yaml:"timeout"`
	}
	type yamlConfig struct {
		Year        int           `yaml:"year"`
		InputsDir   string        `yaml:"inputs_dir"`
		ExamplesDir string        `yaml:"examples_dir"`
		LogLevel    string        `yaml:"log_level"`
		Session     string        `yaml:"session"`
		Fetch       yamlFetch     `yaml:"fetch"`
		History     HistoryConfig `yaml:"history"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Year != 0 {
		cfg.Year = yamlCfg.Year
	}
	if yamlCfg.InputsDir != "" {
		cfg.InputsDir = yamlCfg.InputsDir
	}
	if yamlCfg.ExamplesDir != "" {
		cfg.ExamplesDir = yamlCfg.ExamplesDir
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Session != "" {
		cfg.Session = yamlCfg.Session
	}
	if yamlCfg.Fetch.BaseURL != "" {
		cfg.Fetch.BaseURL = yamlCfg.Fetch.BaseURL
	}
	if yamlCfg.Fetch.UserAgent != "" {
		cfg.Fetch.UserAgent = yamlCfg.Fetch.UserAgent
	}
	if yamlCfg.Fetch.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Fetch.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid fetch.timeout format %q: %w", yamlCfg.Fetch.Timeout, err)
		}
		cfg.Fetch.Timeout = timeout
	}

	// Only keys present in the history section override the defaults, so an
	// explicit "enabled: false" is honored.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, exists := rawMap["history"]; exists && section != nil {
			historyMap, _ := section.(map[string]interface{})
			if _, exists := historyMap["enabled"]; exists {
				cfg.History.Enabled = yamlCfg.History.Enabled
			}
			if _, exists := historyMap["db_path"]; exists {
				cfg.History.DBPath = yamlCfg.History.DBPath
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if session := os.Getenv(SessionEnvVar); session != "" {
		c.Session = session
	}
}

// LoadConfigFromDir loads configuration from .aoc/config.yaml in the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".aoc", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(year *int, inputsDir *string, examplesDir *string, logLevel *string, history *bool) {
	if year != nil {
		c.Year = *year
	}
	if inputsDir != nil {
		c.InputsDir = *inputsDir
	}
	if examplesDir != nil {
		c.ExamplesDir = *examplesDir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if history != nil {
		c.History.Enabled = *history
	}
}

// ResolvePaths makes relative directory and database paths relative to root.
func (c *Config) ResolvePaths(root string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || p == ":memory:" {
			return p
		}
		return filepath.Join(root, p)
	}
	c.InputsDir = resolve(c.InputsDir)
	c.ExamplesDir = resolve(c.ExamplesDir)
	c.History.DBPath = resolve(c.History.DBPath)
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Year != 0 && c.Year < 2015 {
		return fmt.Errorf("year must be 2015 or later, got %d", c.Year)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.InputsDir == "" {
		return fmt.Errorf("inputs_dir cannot be empty")
	}

	if c.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url cannot be empty")
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch.timeout must be >= 0, got %v", c.Fetch.Timeout)
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path cannot be empty when history is enabled")
	}

	return nil
}
