package y2015

import (
	"fmt"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day13Example = `Alice would gain 54 happiness units by sitting next to Bob.
Alice would lose 79 happiness units by sitting next to Carol.
Alice would lose 2 happiness units by sitting next to David.
Bob would gain 83 happiness units by sitting next to Alice.
Bob would lose 7 happiness units by sitting next to Carol.
Bob would lose 63 happiness units by sitting next to David.
Carol would lose 62 happiness units by sitting next to Alice.
Carol would gain 60 happiness units by sitting next to Bob.
Carol would gain 55 happiness units by sitting next to David.
David would gain 46 happiness units by sitting next to Alice.
David would lose 7 happiness units by sitting next to Bob.
David would gain 41 happiness units by sitting next to Carol.`

func init() {
	harness.Register(2015, 13, harness.SolutionFunc(solveDay13),
		harness.Answer(harness.Part1, harness.Int(733)),
		harness.Example(harness.Part1, harness.Int(330), day13Example),
		harness.Answer(harness.Part2, harness.Int(725)),
	)
}

// solveDay13 finds the seating around a round table with the best total
// happiness change. Part 2 adds a neutral guest.
func solveDay13(input string, part harness.Part) harness.Result {
	names, happiness := parseHappiness(input)
	if part == harness.Part2 {
		names = append(names, "me")
	}

	// The first guest stays put; rotations of one table are equivalent.
	first, rest := names[0], names[1:]
	best := int64(-1 << 62)
	aocutil.Permutations(rest, func(order []string) bool {
		seating := append([]string{first}, order...)
		var total int64
		for i, name := range seating {
			next := seating[(i+1)%len(seating)]
			total += happiness[name+"|"+next] + happiness[next+"|"+name]
		}
		best = max(best, total)
		return true
	})
	return harness.Int(best)
}

func parseHappiness(input string) ([]string, map[string]int64) {
	var names []string
	seen := map[string]bool{}
	happiness := map[string]int64{}

	for _, line := range aocutil.Lines(input) {
		var who, verb, other string
		var amount int64
		_, err := fmt.Sscanf(strings.TrimSuffix(line, "."),
			"%s would %s %d happiness units by sitting next to %s", &who, &verb, &amount, &other)
		if err != nil {
			panic(fmt.Sprintf("bad happiness line %q: %v", line, err))
		}
		if verb == "lose" {
			amount = -amount
		}
		happiness[who+"|"+other] = amount
		for _, n := range []string{who, other} {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names, happiness
}
