// Package aocutil holds small parsing and arithmetic helpers shared by the
// daily solutions.
package aocutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines splits input into lines, trims surrounding whitespace from each and
// drops empty ones. Example texts embedded in case tables are often indented,
// so every solution reads its input through Lines unless blank lines carry
// meaning.
func Lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// RawLines splits input into lines, trimming only trailing whitespace and
// keeping empty lines.
func RawLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines
}

// MustAtoi parses s as a base-10 int64 and panics on failure.
func MustAtoi(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("bad integer %q: %v", s, err))
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sum adds up values.
func Sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Point is a 2D integer coordinate.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// MDist returns the manhattan distance between p and q.
func (p Point[T]) MDist(q Point[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Permutations calls fn with every ordering of items until fn returns false.
// The slice passed to fn is reused between calls.
func Permutations[T any](items []T, fn func([]T) bool) {
	perm := make([]T, len(items))
	copy(perm, items)

	// Heap's algorithm, iterative form.
	c := make([]int, len(perm))
	if !fn(perm) {
		return
	}
	for i := 0; i < len(perm); {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if !fn(perm) {
				return
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
