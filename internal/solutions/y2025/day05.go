package y2025

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day05Example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func init() {
	harness.Register(2025, 5, harness.SolutionFunc(solveDay05),
		harness.Example(harness.Part1, harness.Int(3), day05Example),
		harness.Answer(harness.Part1, harness.Int(509)),
		harness.Example(harness.Part2, harness.Int(14), day05Example),
		harness.Answer(harness.Part2, harness.Int(336790092076620)),
	)
}

type idRange struct {
	lo, hi int64
}

// parseInventory splits the fresh ID ranges from the available IDs.
func parseInventory(input string) ([]idRange, []int64) {
	head, tail, _ := strings.Cut(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")

	var ranges []idRange
	for _, line := range aocutil.Lines(head) {
		lo, hi, ok := strings.Cut(line, "-")
		if !ok {
			panic(fmt.Sprintf("bad range %q", line))
		}
		ranges = append(ranges, idRange{aocutil.MustAtoi(lo), aocutil.MustAtoi(hi)})
	}

	var ids []int64
	for _, line := range aocutil.Lines(tail) {
		ids = append(ids, aocutil.MustAtoi(line))
	}
	return ranges, ids
}

// mergeRanges returns the union of ranges as sorted, disjoint ranges.
func mergeRanges(ranges []idRange) []idRange {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b idRange) int {
		return cmp.Compare(a.lo, b.lo)
	})

	var merged []idRange
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, r.hi)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func solveDay05(input string, part harness.Part) harness.Result {
	ranges, ids := parseInventory(input)
	merged := mergeRanges(ranges)

	var count int64
	if part == harness.Part1 {
		for _, id := range ids {
			for _, r := range merged {
				if id >= r.lo && id <= r.hi {
					count++
					break
				}
			}
		}
		return harness.Int(count)
	}

	for _, r := range merged {
		count += r.hi - r.lo + 1
	}
	return harness.Int(count)
}
