package y2025

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day02Example = `11-22,95-115,998-1012,1188511880-1188511890,222220-222224,
1698522-1698528,446443-446449,38593856-38593862,565653-565659,
824824821-824824827,2121212118-2121212124`

func init() {
	harness.Register(2025, 2, harness.SolutionFunc(solveDay02),
		harness.Example(harness.Part1, harness.Int(1227775554), day02Example),
		harness.Answer(harness.Part1, harness.Int(5398419778)),
		harness.Example(harness.Part2, harness.Int(4174379265), day02Example),
		harness.Answer(harness.Part2, harness.Int(15704845910)),
	)
}

// solveDay02 sums the invalid product IDs in the ranges. An ID is invalid
// when its digits are one block repeated twice (part 1) or at least twice
// (part 2).
func solveDay02(input string, part harness.Part) harness.Result {
	var sum int64
	for _, r := range strings.Split(input, ",") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		lo, hi, ok := strings.Cut(r, "-")
		if !ok {
			panic(fmt.Sprintf("bad range %q", r))
		}
		last := aocutil.MustAtoi(hi)
		for id := aocutil.MustAtoi(lo); id <= last; id++ {
			if repeated(strconv.FormatInt(id, 10), part == harness.Part1) {
				sum += id
			}
		}
	}
	return harness.Int(sum)
}

// repeated reports whether s is a shorter block repeated. With twiceOnly the
// block must appear exactly two times.
func repeated(s string, twiceOnly bool) bool {
	n := len(s)
	if twiceOnly {
		return n%2 == 0 && s[:n/2] == s[n/2:]
	}
	for size := 1; size <= n/2; size++ {
		if n%size == 0 && strings.Repeat(s[:size], n/size) == s {
			return true
		}
	}
	return false
}
