package y2015

import (
	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 3, harness.SolutionFunc(solveDay03),
		harness.Answer(harness.Part1, harness.Int(2572)),
		harness.Example(harness.Part1, harness.Int(2), ">"),
		harness.Example(harness.Part1, harness.Int(4), "^>v<"),
		harness.Example(harness.Part1, harness.Int(2), "^v^v^v^v^v"),
		harness.Answer(harness.Part2, harness.Int(2631)),
		harness.Example(harness.Part2, harness.Int(3), "^v"),
		harness.Example(harness.Part2, harness.Int(3), "^>v<"),
		harness.Example(harness.Part2, harness.Int(11), "^v^v^v^v^v"),
	)
}

var moves = map[rune]aocutil.Point[int]{
	'^': {X: 0, Y: -1},
	'v': {X: 0, Y: 1},
	'<': {X: -1, Y: 0},
	'>': {X: 1, Y: 0},
}

// solveDay03 counts houses receiving at least one present. In part 2 Santa
// and Robo-Santa take turns following the directions.
func solveDay03(input string, part harness.Part) harness.Result {
	santas := 1
	if part == harness.Part2 {
		santas = 2
	}

	pos := make([]aocutil.Point[int], santas)
	visited := map[aocutil.Point[int]]bool{{}: true}

	turn := 0
	for _, r := range input {
		step, ok := moves[r]
		if !ok {
			continue
		}
		pos[turn] = pos[turn].Add(step)
		visited[pos[turn]] = true
		turn = (turn + 1) % santas
	}
	return harness.Int(int64(len(visited)))
}
