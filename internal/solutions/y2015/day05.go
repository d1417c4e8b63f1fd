package y2015

import (
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 5, harness.SolutionFunc(solveDay05),
		harness.Answer(harness.Part1, harness.Int(236)),
		harness.Example(harness.Part1, harness.Int(1), "ugknbfddgicrmopn"),
		harness.Example(harness.Part1, harness.Int(1), "aaa"),
		harness.Example(harness.Part1, harness.Int(0), "jchzalrnumimnmhp"),
		harness.Answer(harness.Part2, harness.Int(51)),
		harness.Example(harness.Part2, harness.Int(1), "qjhvhtzxzqqjkmpb"),
		harness.Example(harness.Part2, harness.Int(1), "xxyxx"),
		harness.Example(harness.Part2, harness.Int(0), "uurcxstgmygtbstg"),
		harness.Example(harness.Part2, harness.Int(0), "ieodomkazucvgmuy"),
	)
}

func solveDay05(input string, part harness.Part) harness.Result {
	nice := isNice
	if part == harness.Part2 {
		nice = isNicer
	}

	var count int64
	for _, line := range aocutil.Lines(input) {
		if nice(line) {
			count++
		}
	}
	return harness.Int(count)
}

func isNice(s string) bool {
	for _, bad := range []string{"ab", "cd", "pq", "xy"} {
		if strings.Contains(s, bad) {
			return false
		}
	}

	vowels := 0
	double := false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			vowels++
		}
		if i > 0 && s[i] == s[i-1] {
			double = true
		}
	}
	return vowels >= 3 && double
}

// isNicer wants a pair appearing twice without overlap and a letter that
// repeats with exactly one letter between.
func isNicer(s string) bool {
	pair := false
	for i := 0; i+1 < len(s) && !pair; i++ {
		pair = strings.Contains(s[i+2:], s[i:i+2])
	}

	sandwich := false
	for i := 0; i+2 < len(s) && !sandwich; i++ {
		sandwich = s[i] == s[i+2]
	}
	return pair && sandwich
}
