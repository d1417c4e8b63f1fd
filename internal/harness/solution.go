package harness

// Solution computes the answer for one part of a day.
//
// Every call must be independent of previous calls: the runner gives no
// ordering guarantees beyond table order, and callers may invoke a solution
// concurrently. Malformed input may panic; the Entrypoint adapter turns such a
// panic into a reported failure.
type Solution interface {
	Solve(input string, part Part) Result
}

// SolutionFunc adapts a plain function to the Solution interface.
type SolutionFunc func(input string, part Part) Result

// Solve calls f(input, part).
func (f SolutionFunc) Solve(input string, part Part) Result {
	return f(input, part)
}
