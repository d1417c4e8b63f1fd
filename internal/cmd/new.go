package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/filelock"
	"github.com/harrison/aoc/internal/logger"
)

var dayTemplate = template.Must(template.New("day").Parse(`package y{{.Year}}

import "github.com/harrison/aoc/internal/harness"

const day{{.DD}}Example = ` + "``" + `

func init() {
	harness.Register({{.Year}}, {{.Day}}, harness.SolutionFunc(solveDay{{.DD}}),
		harness.ExampleUnchecked(harness.Part1, day{{.DD}}Example),
		harness.Unchecked(harness.Part1),
		harness.ExampleUnchecked(harness.Part2, day{{.DD}}Example),
		harness.Unchecked(harness.Part2),
	)
}

func solveDay{{.DD}}(input string, part harness.Part) harness.Result {
	return harness.Int(0)
}
`))

var yearTemplate = template.Must(template.New("year").Parse(`// Package y{{.Year}} registers the {{.Year}} solutions with the harness.
package y{{.Year}}
`))

type scaffold struct {
	Year int
	Day  int
	DD   string
}

// NewNewCommand creates the 'aoc new' command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a solution for a day",
		Long: `Create internal/solutions/y<year>/day<dd>.go with an empty solution and a
case table of unchecked cases. An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: runNew,
	}

	cmd.Flags().Int("year", 0, "Puzzle year (default: year from config)")
	cmd.Flags().Int("day", 0, "Puzzle day 1-25")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	day, err := dayFlag(cmd)
	if err != nil {
		return err
	}
	if day == 0 {
		return fmt.Errorf("--day is required")
	}

	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := finishConfig(cfg, root, true); err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	data := scaffold{Year: cfg.Year, Day: day, DD: fmt.Sprintf("%02d", day)}
	dir := filepath.Join(root, "internal", "solutions", fmt.Sprintf("y%d", cfg.Year))

	path := filepath.Join(dir, fmt.Sprintf("day%s.go", data.DD))
	if err := writeTemplate(path, dayTemplate, data); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("refusing to overwrite %s", path)
		}
		return err
	}
	log.LogInfof("created %s", path)

	// A new year package also needs its package file and a blank import.
	docPath := filepath.Join(dir, "doc.go")
	err = writeTemplate(docPath, yearTemplate, data)
	switch {
	case err == nil:
		log.LogInfof("created %s", docPath)
		log.LogWarnf("add _ \"github.com/harrison/aoc/internal/solutions/y%d\" to internal/solutions/solutions.go", cfg.Year)
	case !errors.Is(err, os.ErrExist):
		return err
	}

	return nil
}

func writeTemplate(path string, tmpl *template.Template, data scaffold) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return filelock.CreateExclusive(path, buf.Bytes(), 0644)
}
