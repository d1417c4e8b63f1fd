package harness

import (
	"errors"
	"fmt"
)

// Part identifies one of the two sub-problems of a day. The numeric values are
// the encoding used across the Entrypoint boundary.
type Part uint8

const (
	Part1 Part = 1
	Part2 Part = 2
)

// ErrInvalidPart is returned when a part code is neither 0, 1 nor 2.
var ErrInvalidPart = errors.New("invalid part number")

// String returns "Part1" or "Part2", "any" for the zero Part and "Part(n)"
// for any other value.
func (p Part) String() string {
	switch p {
	case Part1:
		return "Part1"
	case Part2:
		return "Part2"
	case 0:
		return "any"
	default:
		return fmt.Sprintf("Part(%d)", uint8(p))
	}
}

// Valid reports whether p is Part1 or Part2.
func (p Part) Valid() bool {
	return p == Part1 || p == Part2
}

// DecodePartFilter decodes a part filter code. 0 means no filter and yields the
// zero Part, which matches every case.
func DecodePartFilter(code uint8) (Part, error) {
	switch code {
	case 0:
		return 0, nil
	case 1:
		return Part1, nil
	case 2:
		return Part2, nil
	default:
		return 0, fmt.Errorf("%w %d", ErrInvalidPart, code)
	}
}
