package aocutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	input := `
        "abc"

	  second line  
third`

	want := []string{`"abc"`, "second line", "third"}
	if diff := cmp.Diff(want, Lines(input)); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestRawLinesKeepsBlankLines(t *testing.T) {
	got := RawLines("3-5\n10-14\n\n1\r\n")
	want := []string{"3-5", "10-14", "", "1", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RawLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestMustAtoi(t *testing.T) {
	assert.Equal(t, int64(-42), MustAtoi(" -42 "))
	assert.Panics(t, func() { MustAtoi("x") })
}

func TestAbsAndSum(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, int64(7), Abs(int64(7)))
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Sum([]float64{}))
}

func TestPoint(t *testing.T) {
	p := Point[int]{1, 2}
	q := Point[int]{-3, 5}

	assert.Equal(t, Point[int]{-2, 7}, p.Add(q))
	assert.Equal(t, Point[int]{4, -3}, p.Sub(q))
	assert.Equal(t, 7, p.MDist(q))
}

func TestPermutations(t *testing.T) {
	var got []string
	Permutations([]string{"a", "b", "c"}, func(p []string) bool {
		got = append(got, strings.Join(p, ""))
		return true
	})
	sort.Strings(got)

	want := []string{"abc", "acb", "bac", "bca", "cab", "cba"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Permutations() mismatch (-want +got):\n%s", diff)
	}

	calls := 0
	Permutations([]int{1, 2, 3, 4}, func([]int) bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 2, calls)
}
