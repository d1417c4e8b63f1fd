package y2015

import "github.com/harrison/aoc/internal/harness"

func init() {
	harness.Register(2015, 1, harness.SolutionFunc(solveDay01),
		harness.Answer(harness.Part1, harness.Int(74)),
		harness.Example(harness.Part1, harness.Int(3), "(()(()("),
		harness.Answer(harness.Part2, harness.Int(1795)),
		harness.Example(harness.Part2, harness.Int(5), "()())"),
	)
}

// solveDay01 follows the parentheses: "(" goes up a floor, ")" goes down.
// Part 2 is the 1-based position of the first step into the basement.
func solveDay01(input string, part harness.Part) harness.Result {
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
