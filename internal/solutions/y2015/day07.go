package y2015

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 7, harness.SolutionFunc(solveDay07),
		harness.Answer(harness.Part1, harness.Int(46065)),
		harness.Answer(harness.Part2, harness.Int(14134)),
	)
}

// gate is one wire definition: "x AND y -> z", "NOT x -> h", "123 -> x".
type gate struct {
	op   string
	args []string
}

// circuit evaluates 16-bit wire signals lazily with memoization.
type circuit struct {
	gates  map[string]gate
	values map[string]uint16
}

func parseCircuit(input string) *circuit {
	c := &circuit{gates: map[string]gate{}, values: map[string]uint16{}}
	for _, line := range aocutil.Lines(input) {
		expr, wire, ok := strings.Cut(line, " -> ")
		if !ok {
			panic(fmt.Sprintf("bad wire definition %q", line))
		}
		fields := strings.Fields(expr)
		switch len(fields) {
		case 1:
			c.gates[wire] = gate{op: "SET", args: fields}
		case 2:
			c.gates[wire] = gate{op: fields[0], args: fields[1:]}
		case 3:
			c.gates[wire] = gate{op: fields[1], args: []string{fields[0], fields[2]}}
		default:
			panic(fmt.Sprintf("bad wire definition %q", line))
		}
	}
	return c
}

// signal returns the value of a wire name or a numeric literal.
func (c *circuit) signal(name string) uint16 {
	if n, err := strconv.ParseUint(name, 10, 16); err == nil {
		return uint16(n)
	}
	if v, ok := c.values[name]; ok {
		return v
	}

	g, ok := c.gates[name]
	if !ok {
		panic(fmt.Sprintf("wire %q has no source", name))
	}

	var v uint16
	switch g.op {
	case "SET":
		v = c.signal(g.args[0])
	case "NOT":
		v = ^c.signal(g.args[0])
	case "AND":
		v = c.signal(g.args[0]) & c.signal(g.args[1])
	case "OR":
		v = c.signal(g.args[0]) | c.signal(g.args[1])
	case "LSHIFT":
		v = c.signal(g.args[0]) << c.signal(g.args[1])
	case "RSHIFT":
		v = c.signal(g.args[0]) >> c.signal(g.args[1])
	default:
		panic(fmt.Sprintf("unknown gate %q", g.op))
	}
	c.values[name] = v
	return v
}

// solveDay07 reports wire a. Part 2 feeds part 1's a into wire b and
// evaluates the circuit again.
func solveDay07(input string, part harness.Part) harness.Result {
	c := parseCircuit(input)
	a := c.signal("a")
	if part == harness.Part1 {
		return harness.Int(int64(a))
	}

	c = parseCircuit(input)
	c.values["b"] = a
	return harness.Int(int64(c.signal("a")))
}
