package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/aoc/internal/harness"
)

const sample = "---\nyear: 2015\nday: 1\n---\n" +
	"# Extra floors\n\n" +
	"Going down:\n\n" +
	"```part1 want=-3\n)))\n```\n\n" +
	"Not a case:\n\n" +
	"```go\nfmt.Println(1)\n```\n\n" +
	"```part2 want=1\n)\n```\n\n" +
	"```part1\n((((\n```\n\n" +
	"```part2 want=\"co,de\"\nline one\n\nline three\n```\n"

func TestParse(t *testing.T) {
	cases, err := Parse([]byte(sample), 2015, 1)
	require.NoError(t, err)

	want := []harness.Case{
		harness.Example(harness.Part1, harness.Int(-3), ")))"),
		harness.Example(harness.Part2, harness.Int(1), ")"),
		harness.ExampleUnchecked(harness.Part1, "(((("),
		harness.Example(harness.Part2, harness.Text("co,de"), "line one\n\nline three"),
	}

	if diff := cmp.Diff(want, cases, cmp.Comparer(func(a, b harness.Input) bool {
		return a.IsExample() == b.IsExample() && a.Resolve("") == b.Resolve("")
	}), cmp.Comparer(func(a, b harness.Result) bool {
		return a.Equal(b) && a.IsInt() == b.IsInt()
	})); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFrontmatterMismatch(t *testing.T) {
	_, err := Parse([]byte(sample), 2015, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 1 does not match 2")

	_, err = Parse([]byte(sample), 2016, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year 2015")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	cases, err := Parse([]byte("```part1 want=2\n>\n```\n"), 2024, 5)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, ">", cases[0].Input.Resolve(""))
}

func TestParseUnknownAttribute(t *testing.T) {
	_, err := Parse([]byte("\n```part1 expect=2\n>\n```\n"), 2015, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "expect=2")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cases, err := Load(dir, 2015, 1)
	require.NoError(t, err)
	assert.Nil(t, cases, "missing file is not an error")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2015-01.md"), []byte(sample), 0644))
	cases, err = Load(dir, 2015, 1)
	require.NoError(t, err)
	assert.Len(t, cases, 4)

	assert.Equal(t, filepath.Join(dir, "2015-01.md"), Path(dir, 2015, 1))
}

func TestLoadedCasesRun(t *testing.T) {
	floor := harness.SolutionFunc(func(input string, _ harness.Part) harness.Result {
		n := 0
		for _, r := range input {
			if r == '(' {
				n++
			} else if r == ')' {
				n--
			}
		}
		return harness.Int(int64(n))
	})

	cases, err := Parse([]byte("```part1 want=-3\n)))\n```\n```part1 want=5\n(\n```\n"), 2015, 1)
	require.NoError(t, err)

	out := harness.Run(floor, "", cases, harness.Filter{}, nil)
	assert.Equal(t, 2, out.Selected)
	assert.Equal(t, 1, out.Failed)
}

func TestQuotedWantStaysText(t *testing.T) {
	cases, err := Parse([]byte("```part1 want=\"007\"\nabc\n```\n```part2 want=007\nabc\n```\n"), 2015, 1)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	for _, c := range cases {
		require.NotNil(t, c.Expected)
		assert.False(t, c.Expected.IsInt())
		assert.Equal(t, "007", c.Expected.String())
	}

	code := harness.SolutionFunc(func(string, harness.Part) harness.Result {
		return harness.Text("007")
	})
	out := harness.Run(code, "", cases, harness.Filter{}, nil)
	assert.Equal(t, 2, out.Selected)
	assert.Equal(t, 0, out.Failed)
	assert.True(t, out.OK())
}
