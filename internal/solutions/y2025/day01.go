package y2025

import (
	"fmt"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day01Example = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82`

func init() {
	harness.Register(2025, 1, harness.SolutionFunc(solveDay01),
		harness.Example(harness.Part1, harness.Int(3), day01Example),
		harness.Answer(harness.Part1, harness.Int(1132)),
		harness.Example(harness.Part2, harness.Int(6), day01Example),
		harness.Answer(harness.Part2, harness.Int(6623)),
	)
}

const (
	dialSize  = 100
	dialStart = 50
)

// solveDay01 turns a dial of 100 clicks starting at 50. Part 1 counts the
// rotations that end on 0; part 2 counts every click that lands on 0.
func solveDay01(input string, part harness.Part) harness.Result {
	pos := int64(dialStart)
	var zeros int64

	for _, line := range aocutil.Lines(input) {
		n := aocutil.MustAtoi(line[1:])
		switch line[0] {
		case 'R':
			zeros += passesRight(pos, n, part)
			pos = (pos + n) % dialSize
		case 'L':
			zeros += passesLeft(pos, n, part)
			pos = ((pos-n)%dialSize + dialSize) % dialSize
		default:
			panic(fmt.Sprintf("bad rotation %q", line))
		}
	}
	return harness.Int(zeros)
}

func passesRight(pos, n int64, part harness.Part) int64 {
	if part == harness.Part1 {
		if (pos+n)%dialSize == 0 {
			return 1
		}
		return 0
	}
	return (pos + n) / dialSize
}

func passesLeft(pos, n int64, part harness.Part) int64 {
	if part == harness.Part1 {
		if ((pos-n)%dialSize+dialSize)%dialSize == 0 {
			return 1
		}
		return 0
	}
	switch {
	case pos == 0:
		return n / dialSize
	case n >= pos:
		return (n-pos)/dialSize + 1
	default:
		return 0
	}
}
