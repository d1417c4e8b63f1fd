package y2015

import (
	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day08Example = `""
        "abc"
        "aaa\"aaa"
        "\x27"`

func init() {
	harness.Register(2015, 8, harness.SolutionFunc(solveDay08),
		harness.Answer(harness.Part1, harness.Int(1333)),
		harness.Example(harness.Part1, harness.Int(12), day08Example),
		harness.Answer(harness.Part2, harness.Int(2046)),
		harness.Example(harness.Part2, harness.Int(19), day08Example),
	)
}

func solveDay08(input string, part harness.Part) harness.Result {
	var total int64
	for _, line := range aocutil.Lines(input) {
		if part == harness.Part1 {
			total += int64(len(line) - decodedLen(line))
		} else {
			total += int64(encodedLen(line) - len(line))
		}
	}
	return harness.Int(total)
}

// decodedLen is the number of characters a quoted literal holds in memory.
func decodedLen(literal string) int {
	body := literal[1 : len(literal)-1]
	n := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			if i+1 < len(body) && body[i+1] == 'x' {
				i += 3
			} else {
				i++
			}
		}
		n++
	}
	return n
}

// encodedLen is the length of literal re-quoted with escapes.
func encodedLen(literal string) int {
	n := 2
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '"', '\\':
			n += 2
		default:
			n++
		}
	}
	return n
}
