package y2015

import (
	"slices"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 2, harness.SolutionFunc(solveDay02),
		harness.Answer(harness.Part1, harness.Int(1586300)),
		harness.Example(harness.Part1, harness.Int(58), "2x3x4"),
		harness.Answer(harness.Part2, harness.Int(3737498)),
		harness.Example(harness.Part2, harness.Int(34), "2x3x4"),
		harness.Example(harness.Part2, harness.Int(14), "1x1x10"),
	)
}

func solveDay02(input string, part harness.Part) harness.Result {
	var total int64
	for _, line := range aocutil.Lines(input) {
		dims := parseBox(line)
		l, w, h := dims[0], dims[1], dims[2]
		if part == harness.Part1 {
			// paper: surface area plus the smallest side
			total += 2*l*w + 2*w*h + 2*h*l + l*w
		} else {
			// ribbon: smallest perimeter plus the volume
			total += 2*l + 2*w + l*w*h
		}
	}
	return harness.Int(total)
}

// parseBox parses "LxWxH" into ascending dimensions.
func parseBox(line string) [3]int64 {
	parts := strings.Split(line, "x")
	dims := []int64{aocutil.MustAtoi(parts[0]), aocutil.MustAtoi(parts[1]), aocutil.MustAtoi(parts[2])}
	slices.Sort(dims)
	return [3]int64{dims[0], dims[1], dims[2]}
}
