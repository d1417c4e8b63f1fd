// Package harness runs a day's declared case table against its solution and
// reports PASS, FAIL and INFO outcomes.
//
// A day registers a Solution together with an ordered list of cases. Each case
// names the part it exercises, whether it uses the full puzzle input or an
// embedded example, and optionally the answer it must produce. The runner walks
// the table in order, applies the part/case/solutions-only filters and reports
// every selected case. The Entrypoint adapter wraps the runner behind a
// primitive-only signature and converts solution panics into a false return.
package harness

import "strconv"

type resultKind uint8

const (
	kindInt resultKind = iota
	kindText
)

// Result is a puzzle answer: either a 64-bit integer or a piece of text.
//
// Two results are equal when their textual forms are equal, so Int(42) equals
// Text("42"). Some days compute numbers while others format answers such as
// coordinate pairs or joined lists, and case tables compare both uniformly.
type Result struct {
	kind resultKind
	i    int64
	s    string
}

// Int returns an integer result.
func Int(v int64) Result {
	return Result{kind: kindInt, i: v}
}

// Text returns a text result.
func Text(s string) Result {
	return Result{kind: kindText, s: s}
}

// IsInt reports whether r was constructed from an integer.
func (r Result) IsInt() bool {
	return r.kind == kindInt
}

// String returns the canonical textual form of r.
func (r Result) String() string {
	if r.kind == kindInt {
		return strconv.FormatInt(r.i, 10)
	}
	return r.s
}

// Equal compares the textual forms of r and other.
func (r Result) Equal(other Result) bool {
	return r.String() == other.String()
}

// ParseResult turns a recorded answer back into a Result. Values that are the
// canonical base-10 form of an int64 become integers; everything else, such as
// "007", "+5" or "-0", stays text so its rendering is unchanged.
func ParseResult(s string) Result {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(v, 10) == s {
		return Int(v)
	}
	return Text(s)
}
