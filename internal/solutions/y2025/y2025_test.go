package y2025

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/aoc/internal/harness"
)

func TestExamples(t *testing.T) {
	days := harness.Days(2025)
	require.Len(t, days, 4)

	for _, day := range days {
		t.Run(day.Name(), func(t *testing.T) {
			out := harness.Run(day.Solution, "", day.Examples(), harness.Filter{}, nil)
			assert.Equal(t, 0, out.Failed)
			assert.Equal(t, out.Selected, out.Passed)
		})
	}
}

func TestDialCrossings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part1 string
		part2 string
	}{
		{"full turn right", "R1000", "0", "10"},
		{"lands on zero", "L50", "1", "1"},
		{"from zero left", "L50\nL100", "2", "2"},
		{"passes zero left", "L60", "0", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.part1, solveDay01(tt.input, harness.Part1).String())
			assert.Equal(t, tt.part2, solveDay01(tt.input, harness.Part2).String())
		})
	}
}

func TestRepeated(t *testing.T) {
	assert.True(t, repeated("1212", true))
	assert.False(t, repeated("121212", true))
	assert.True(t, repeated("121212", false))
	assert.True(t, repeated("1111111", false))
	assert.False(t, repeated("7", false))
	assert.False(t, repeated("101", false))
}

func TestMaxJoltage(t *testing.T) {
	assert.EqualValues(t, 98, maxJoltage("987654321111111", 2))
	assert.EqualValues(t, 92, maxJoltage("818181911112111", 2))
	assert.EqualValues(t, 888911112111, maxJoltage("818181911112111", 12))
}

func TestMergeRanges(t *testing.T) {
	merged := mergeRanges([]idRange{{10, 14}, {3, 5}, {16, 20}, {12, 18}, {6, 6}})
	assert.Equal(t, []idRange{{3, 6}, {10, 20}}, merged)
}
