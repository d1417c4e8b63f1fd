package y2024

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day13Example = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279`

func init() {
	harness.Register(2024, 13, harness.SolutionFunc(solveDay13),
		harness.Answer(harness.Part1, harness.Int(36758)),
		harness.Example(harness.Part1, harness.Int(480), day13Example),
		harness.Answer(harness.Part2, harness.Int(76358113886726)),
		harness.Example(harness.Part2, harness.Int(875318608908), day13Example),
	)
}

const prizeOffset = 10000000000000

var numberPattern = regexp.MustCompile(`-?\d+`)

type clawMachine struct {
	ax, ay, bx, by, px, py int64
}

func parseClawMachines(input string) []clawMachine {
	var machines []clawMachine
	for _, block := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		nums := numberPattern.FindAllString(block, -1)
		if len(nums) != 6 {
			panic(fmt.Sprintf("bad claw machine %q", block))
		}
		machines = append(machines, clawMachine{
			ax: aocutil.MustAtoi(nums[0]),
			ay: aocutil.MustAtoi(nums[1]),
			bx: aocutil.MustAtoi(nums[2]),
			by: aocutil.MustAtoi(nums[3]),
			px: aocutil.MustAtoi(nums[4]),
			py: aocutil.MustAtoi(nums[5]),
		})
	}
	return machines
}

// presses solves a*A + b*B = P with Cramer's rule. ok is false when there is
// no non-negative integer solution.
func (m clawMachine) presses() (a, b int64, ok bool) {
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0, 0, false
	}
	an := m.px*m.by - m.py*m.bx
	bn := m.ax*m.py - m.ay*m.px
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	return a, b, a >= 0 && b >= 0
}

// solveDay13 sums the tokens (3 per A press, 1 per B press) needed to win
// every winnable prize. Part 1 allows at most 100 presses per button; part 2
// moves every prize by 10^13 on both axes.
func solveDay13(input string, part harness.Part) harness.Result {
	var tokens int64
	for _, m := range parseClawMachines(input) {
		if part == harness.Part2 {
			m.px += prizeOffset
			m.py += prizeOffset
		}
		a, b, ok := m.presses()
		if !ok {
			continue
		}
		if part == harness.Part1 && (a > 100 || b > 100) {
			continue
		}
		tokens += 3*a + b
	}
	return harness.Int(tokens)
}
