package y2025

import (
	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day03Example = `987654321111111
811111111111119
234234234234278
818181911112111`

func init() {
	harness.Register(2025, 3, harness.SolutionFunc(solveDay03),
		harness.Example(harness.Part1, harness.Int(357), day03Example),
		harness.Answer(harness.Part1, harness.Int(17535)),
		harness.Example(harness.Part2, harness.Int(3121910778619), day03Example),
		harness.Answer(harness.Part2, harness.Int(173577199527257)),
	)
}

func solveDay03(input string, part harness.Part) harness.Result {
	batteries := 2
	if part == harness.Part2 {
		batteries = 12
	}

	var total int64
	for _, bank := range aocutil.Lines(input) {
		total += maxJoltage(bank, batteries)
	}
	return harness.Int(total)
}

// maxJoltage picks k digits of bank, keeping their order, to form the
// largest number. Each pick takes the first maximum among the positions that
// still leave enough digits for the remaining picks.
func maxJoltage(bank string, k int) int64 {
	var joltage int64
	start := 0
	for remaining := k; remaining > 0; remaining-- {
		best := start
		for i := start; i <= len(bank)-remaining; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + int64(bank[best]-'0')
		start = best + 1
	}
	return joltage
}
