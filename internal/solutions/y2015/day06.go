package y2015

import (
	"fmt"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 6, harness.SolutionFunc(solveDay06),
		harness.Answer(harness.Part1, harness.Int(400410)),
		harness.Example(harness.Part1, harness.Int(998996), "turn on 0,0 through 999,999\ntoggle 0,0 through 999,0\nturn off 499,499 through 500,500"),
		harness.Answer(harness.Part2, harness.Int(15343601)),
		harness.Example(harness.Part2, harness.Int(2000001), "turn on 0,0 through 0,0\ntoggle 0,0 through 999,999"),
	)
}

const gridSize = 1000

type lightOp int

const (
	opOn lightOp = iota
	opOff
	opToggle
)

type lightInstruction struct {
	op             lightOp
	x0, y0, x1, y1 int
}

func parseLightInstruction(line string) lightInstruction {
	var ins lightInstruction
	rest, ok := "", false
	switch {
	case strings.HasPrefix(line, "turn on "):
		ins.op, rest, ok = opOn, line[len("turn on "):], true
	case strings.HasPrefix(line, "turn off "):
		ins.op, rest, ok = opOff, line[len("turn off "):], true
	case strings.HasPrefix(line, "toggle "):
		ins.op, rest, ok = opToggle, line[len("toggle "):], true
	}
	if !ok {
		panic(fmt.Sprintf("unknown instruction %q", line))
	}
	if _, err := fmt.Sscanf(rest, "%d,%d through %d,%d", &ins.x0, &ins.y0, &ins.x1, &ins.y1); err != nil {
		panic(fmt.Sprintf("bad instruction %q: %v", line, err))
	}
	return ins
}

// solveDay06 applies the instructions to a 1000x1000 grid. Part 1 treats
// lights as on/off; part 2 as brightness that never drops below zero.
func solveDay06(input string, part harness.Part) harness.Result {
	grid := make([]int32, gridSize*gridSize)

	for _, line := range aocutil.Lines(input) {
		ins := parseLightInstruction(line)
		for y := ins.y0; y <= ins.y1; y++ {
			row := grid[y*gridSize : (y+1)*gridSize]
			for x := ins.x0; x <= ins.x1; x++ {
				row[x] = applyLight(row[x], ins.op, part)
			}
		}
	}

	var total int64
	for _, v := range grid {
		total += int64(v)
	}
	return harness.Int(total)
}

func applyLight(v int32, op lightOp, part harness.Part) int32 {
	if part == harness.Part1 {
		switch op {
		case opOn:
			return 1
		case opOff:
			return 0
		default:
			return 1 - v
		}
	}

	switch op {
	case opOn:
		return v + 1
	case opOff:
		return max(v-1, 0)
	default:
		return v + 2
	}
}
