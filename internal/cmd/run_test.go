package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/aoc/internal/history"
)

func TestRunDayAllPass(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 1, "((\n")

	stdout, stderr, err := execute(t, "run", "--year", "2099", "--day", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, []string{
		"case #1 for part Part1 example PASSED: 3",
		"case #2 for part Part1 input   PASSED: 2",
		"case #3 for part Part2 example PASSED: 1",
		"case #4 for part Part2 input   returned -1",
		"4 of 4 passed",
	}, lines)
	assert.Contains(t, stderr, "Running 2099-01 (4 cases)")
	assert.Contains(t, stderr, "2099-01: all cases passed")
}

func TestRunDayFailureIsNotAnError(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 1, "(")

	stdout, stderr, err := execute(t, "run", "--year", "2099", "--day", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "case #2 for part Part1 input   FAILED: expected 2, got 1")
	assert.Contains(t, stdout, "case #3 for part Part2 example PASSED: 1", "runs past a failure")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stdout), "3 of 4 passed"))
	assert.Contains(t, stderr, "[WARN] 2099-01: some cases failed")
}

func TestRunFilters(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		lines []string
	}{
		{
			name: "part 2",
			args: []string{"--2"},
			lines: []string{
				"case #3 for part Part2 example PASSED: 1",
				"case #4 for part Part2 input   returned -1",
				"2 of 2 passed",
			},
		},
		{
			name: "part 1 solutions only",
			args: []string{"--1", "--only-solutions"},
			lines: []string{
				"case #2 for part Part1 input   PASSED: 2",
				"1 of 1 passed",
			},
		},
		{
			name: "single case",
			args: []string{"--case", "3"},
			lines: []string{
				"case #3 for part Part2 example PASSED: 1",
				"1 of 1 passed",
			},
		},
		{
			name:  "nothing selected",
			args:  []string{"--case", "3", "--1"},
			lines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newWorkspace(t)
			writeInput(t, root, 1, "((")

			args := append([]string{"run", "--year", "2099", "--day", "1"}, tt.args...)
			stdout, stderr, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.lines, strings.Split(strings.TrimSpace(stdout), "\n"))
			assert.Contains(t, stderr, "all cases passed")
		})
	}
}

func TestRunFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"both parts", []string{"--year", "2099", "--day", "1", "--1", "--2"}, "cannot use both --1 and --2"},
		{"day out of range", []string{"--year", "2099", "--day", "26"}, "invalid --day 26"},
		{"no year", []string{"--day", "1"}, "no year given"},
		{"year too early", []string{"--year", "2014", "--day", "1"}, "year must be 2015 or later"},
		{"bad log level", []string{"--year", "2099", "--log-level", "loud"}, "invalid log_level"},
		{"unknown flag", []string{"--year", "2099", "--3"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newWorkspace(t)
			stdout, _, err := execute(t, append([]string{"run"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotContains(t, stdout, "case #", "no case may run")
		})
	}
}

func TestRunYearFromConfig(t *testing.T) {
	root := newWorkspace(t)
	writeFile(t, filepath.Join(root, ".aoc", "config.yaml"), "year: 2099\ninputs_dir: puzzle\n")
	writeFile(t, filepath.Join(root, "puzzle", "2099-01"), "((")

	stdout, _, err := execute(t, "run", "--day", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "4 of 4 passed")
}

func TestRunDayProblemsAreLogged(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		newWorkspace(t)
		stdout, stderr, err := execute(t, "run", "--year", "2099", "--day", "3")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "failed to run for 2099-03")
		assert.Contains(t, stderr, "input not found")
	})

	t.Run("not registered", func(t *testing.T) {
		newWorkspace(t)
		_, stderr, err := execute(t, "run", "--year", "2099", "--day", "9")
		require.NoError(t, err)
		assert.Contains(t, stderr, "failed to load solution for 2099-09: no solution registered")
	})

	t.Run("panicking solution", func(t *testing.T) {
		root := newWorkspace(t)
		writeInput(t, root, 2, "x")
		_, stderr, err := execute(t, "run", "--year", "2099", "--day", "2")
		require.NoError(t, err)
		assert.Contains(t, stderr, "solution panicked: boom")
		assert.Contains(t, stderr, "2099-02: some cases failed")
	})
}

func TestRunWholeYear(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 1, "((")
	writeInput(t, root, 2, "x")

	stdout, stderr, err := execute(t, "run", "--year", "2099", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stdout, "4 of 4 passed")
	assert.Contains(t, stderr, "2099-04: no solution registered, skipping")
	assert.Contains(t, stderr, "2099 summary:")
	assert.Contains(t, stderr, "Days run: 3")
	assert.Contains(t, stderr, "Passed: 1 (01)")
	assert.Contains(t, stderr, "Failed: 1 (02)")
	assert.Contains(t, stderr, "Not run: 1 (03)")
}

func TestRunAppendsExampleFile(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 1, "((")
	writeFile(t, filepath.Join(root, "examples", "2099-01.md"),
		"# More\n\n```part1 want=-3\n)))\n```\n\n```part2 want=1\n)\n```\n")

	stdout, _, err := execute(t, "run", "--year", "2099", "--day", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "case #5 for part Part1 example PASSED: -3")
	assert.Contains(t, stdout, "case #6 for part Part2 example PASSED: 1")
	assert.Contains(t, stdout, "6 of 6 passed")
}

func TestRunRecordsHistory(t *testing.T) {
	root := newWorkspace(t)
	writeFile(t, filepath.Join(root, ".aoc", "config.yaml"), "history:\n  enabled: true\n")
	writeInput(t, root, 1, "(")

	_, _, err := execute(t, "run", "--year", "2099", "--day", "1", "--2")
	require.NoError(t, err)
	_, _, err = execute(t, "run", "--year", "2099", "--day", "1", "--no-history")
	require.NoError(t, err)

	store, err := history.NewStore(filepath.Join(root, ".aoc", "history.db"))
	require.NoError(t, err)
	runs, err := store.ListRuns(context.Background(), 2099, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "--no-history run is not recorded")

	run, err := store.GetRun(context.Background(), runs[0].ID)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Equal(t, 2, run.Selected)
	assert.True(t, run.OK)
	assert.EqualValues(t, 2, run.Filter.Part)
	require.Len(t, run.Cases, 2)
	assert.Equal(t, 3, run.Cases[0].Index)
	assert.Equal(t, "-1", run.Cases[1].Actual)

	stdout, _, err := execute(t, "history", "--year", "2099")
	require.NoError(t, err)
	assert.Contains(t, stdout, run.ID[:8])
	assert.Contains(t, stdout, "2099-01")
	assert.Contains(t, stdout, "2 of 2 passed")

	stdout, _, err = execute(t, "history", "--run", run.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run "+run.ID)
	assert.Contains(t, stdout, "Filter: Part2")
	assert.Contains(t, stdout, "#4 Part2 input   returned -1")
}
