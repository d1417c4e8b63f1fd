package y2015

import (
	"strings"

	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 10, harness.SolutionFunc(solveDay10),
		harness.Answer(harness.Part1, harness.Int(360154)),
		harness.Answer(harness.Part2, harness.Int(5103798)),
	)
}

func solveDay10(input string, part harness.Part) harness.Result {
	rounds := 40
	if part == harness.Part2 {
		rounds = 50
	}

	seq := []byte(strings.TrimSpace(input))
	for i := 0; i < rounds; i++ {
		seq = lookAndSay(seq)
	}
	return harness.Int(int64(len(seq)))
}

// lookAndSay reads runs of equal digits aloud: "111221" becomes "312211".
// Runs never exceed three digits, so a run length is always one digit.
func lookAndSay(seq []byte) []byte {
	out := make([]byte, 0, len(seq)*2)
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		out = append(out, byte('0'+j-i), seq[i])
		i = j
	}
	return out
}
