package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harrison/aoc/internal/config"
	"github.com/harrison/aoc/internal/harness"
)

// testYear holds throwaway days registered only for these tests.
const testYear = 2099

func floorSolution(input string, part harness.Part) harness.Result {
	floor := 0
	for i, r := range input {
		switch r {
		case '(':
			floor++
		case ')':
			floor--
		}
		if part == harness.Part2 && floor < 0 {
			return harness.Int(int64(i + 1))
		}
	}
	if part == harness.Part2 {
		return harness.Int(-1)
	}
	return harness.Int(int64(floor))
}

func init() {
	harness.Register(testYear, 1, harness.SolutionFunc(floorSolution),
		harness.Example(harness.Part1, harness.Int(3), "(()(()("),
		harness.Answer(harness.Part1, harness.Int(2)),
		harness.Example(harness.Part2, harness.Int(1), ")"),
		harness.Unchecked(harness.Part2),
	)
	harness.Register(testYear, 2, harness.SolutionFunc(func(string, harness.Part) harness.Result {
		panic("boom")
	}),
		harness.Answer(harness.Part1, harness.Int(1)),
	)
	harness.Register(testYear, 3, harness.SolutionFunc(floorSolution),
		harness.Answer(harness.Part1, harness.Int(0)),
	)
}

// newWorkspace points the workspace root at a fresh directory and returns it.
func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv(config.HomeEnvVar, root)
	t.Setenv(config.SessionEnvVar, "")
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeInput(t *testing.T, root string, day int, content string) {
	t.Helper()
	writeFile(t, filepath.Join(root, "inputs", fmt.Sprintf("%d-%02d", testYear, day)), content)
}

// execute runs the root command with args and returns what it wrote to
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
