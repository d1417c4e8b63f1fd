package y2024

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2024, 17, harness.SolutionFunc(solveDay17),
		harness.Example(harness.Part1, harness.Text("4,6,3,5,6,3,5,2,1,0"), "Register A: 729\nRegister B: 0\nRegister C: 0\n\nProgram: 0,1,5,4,3,0"),
		harness.Example(harness.Part1, harness.Text("0,1,2"), "Register A: 10\nRegister B: 0\nRegister C: 0\nProgram: 5,0,5,1,5,4"),
		harness.Answer(harness.Part1, harness.Text("3,5,0,1,5,1,5,1,0")),
		harness.Example(harness.Part2, harness.Int(117440), "Register A: 2024\nRegister B: 0\nRegister C: 0\n\nProgram: 0,3,5,4,3,0"),
		harness.Answer(harness.Part2, harness.Int(107413700225434)),
	)
}

// computer is the 3-bit machine: three registers and a program of octal
// opcode/operand pairs.
type computer struct {
	a, b, c int64
	program []int64
}

func parseComputer(input string) computer {
	var comp computer
	for _, line := range aocutil.Lines(input) {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			panic(fmt.Sprintf("bad line %q", line))
		}
		switch key {
		case "Register A":
			comp.a = aocutil.MustAtoi(value)
		case "Register B":
			comp.b = aocutil.MustAtoi(value)
		case "Register C":
			comp.c = aocutil.MustAtoi(value)
		case "Program":
			for _, n := range strings.Split(value, ",") {
				comp.program = append(comp.program, aocutil.MustAtoi(n))
			}
		default:
			panic(fmt.Sprintf("unknown key %q", key))
		}
	}
	return comp
}

// run executes the program with register A set to a and returns its output.
func (comp computer) run(a int64) []int64 {
	regA, regB, regC := a, comp.b, comp.c
	combo := func(operand int64) int64 {
		switch operand {
		case 4:
			return regA
		case 5:
			return regB
		case 6:
			return regC
		case 7:
			panic("combo operand 7 is reserved")
		default:
			return operand
		}
	}

	var out []int64
	for ip := 0; ip+1 < len(comp.program); {
		opcode, operand := comp.program[ip], comp.program[ip+1]
		ip += 2
		switch opcode {
		case 0: // adv
			regA >>= combo(operand)
		case 1: // bxl
			regB ^= operand
		case 2: // bst
			regB = combo(operand) % 8
		case 3: // jnz
			if regA != 0 {
				ip = int(operand)
			}
		case 4: // bxc
			regB ^= regC
		case 5: // out
			out = append(out, combo(operand)%8)
		case 6: // bdv
			regB = regA >> combo(operand)
		case 7: // cdv
			regC = regA >> combo(operand)
		}
	}
	return out
}

// quine finds the lowest A that makes the program print itself. The program
// consumes A three bits per output, so candidates are built from the last
// output backwards, three bits at a time.
func (comp computer) quine() (int64, bool) {
	candidates := []int64{0}
	for i := len(comp.program) - 1; i >= 0; i-- {
		want := comp.program[i:]
		var next []int64
		for _, prefix := range candidates {
			for bits := int64(0); bits < 8; bits++ {
				a := prefix<<3 | bits
				if slices.Equal(comp.run(a), want) {
					next = append(next, a)
				}
			}
		}
		candidates = next
	}

	if len(candidates) == 0 {
		return 0, false
	}
	return slices.Min(candidates), true
}

func solveDay17(input string, part harness.Part) harness.Result {
	comp := parseComputer(input)
	if part == harness.Part1 {
		out := comp.run(comp.a)
		parts := make([]string, len(out))
		for i, v := range out {
			parts[i] = strconv.FormatInt(v, 10)
		}
		return harness.Text(strings.Join(parts, ","))
	}

	a, ok := comp.quine()
	if !ok {
		panic("no register value reproduces the program")
	}
	return harness.Int(a)
}
