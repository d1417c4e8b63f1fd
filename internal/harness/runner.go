package harness

import "time"

// Status is the outcome of a single selected case.
type Status int

const (
	// StatusPass means the case had an expectation and the answer matched.
	StatusPass Status = iota
	// StatusFail means the case had an expectation and the answer differed.
	StatusFail
	// StatusInfo means the case had no expectation; the answer is only shown.
	StatusInfo
)

// String returns the report label for s.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASSED"
	case StatusFail:
		return "FAILED"
	case StatusInfo:
		return "INFO"
	default:
		return "unknown"
	}
}

// Filter restricts which cases of a table are run. The zero value selects
// every case; the three fields combine by logical AND.
type Filter struct {
	// Part runs only cases of this part. Zero matches both parts.
	Part Part
	// Case runs only the case with this 1-based index. Zero disables it.
	Case uint32
	// SolutionsOnly skips every case whose input is an example.
	SolutionsOnly bool
}

// Selects reports whether the case at the 1-based index passes the filter.
func (f Filter) Selects(index int, c Case) bool {
	if f.Part != 0 && f.Part != c.Part {
		return false
	}
	if f.Case != 0 && int64(f.Case) != int64(index) {
		return false
	}
	if f.SolutionsOnly && c.Input.IsExample() {
		return false
	}
	return true
}

// CaseResult is what the runner observed for one selected case.
type CaseResult struct {
	Index    int
	Case     Case
	Actual   Result
	Status   Status
	Duration time.Duration
}

// Outcome aggregates the results of one runner pass.
type Outcome struct {
	Selected int
	Passed   int
	Failed   int
	Info     int
	Results  []CaseResult
}

// OK reports whether no selected case failed. An empty run is OK.
func (o Outcome) OK() bool {
	return o.Failed == 0
}

// Run executes the cases of table that pass filter against sol, strictly in
// table order. Every selected case runs even after a failure. A panic inside
// sol is not recovered here; see NewEntrypoint.
//
// The summary is reported only when at least one case was selected. A nil
// reporter discards output.
func Run(sol Solution, input string, table []Case, filter Filter, reporter Reporter) Outcome {
	if reporter == nil {
		reporter = discardReporter{}
	}

	var out Outcome
	for i, c := range table {
		index := i + 1
		if !filter.Selects(index, c) {
			continue
		}
		out.Selected++

		start := time.Now()
		actual := sol.Solve(c.Input.Resolve(input), c.Part)
		res := CaseResult{
			Index:    index,
			Case:     c,
			Actual:   actual,
			Duration: time.Since(start),
		}

		switch {
		case c.Expected == nil:
			res.Status = StatusInfo
			out.Info++
		case c.Expected.Equal(actual):
			res.Status = StatusPass
			out.Passed++
		default:
			res.Status = StatusFail
			out.Failed++
		}

		out.Results = append(out.Results, res)
		reporter.CaseFinished(res)
	}

	if out.Selected > 0 {
		reporter.Summary(out.Selected-out.Failed, out.Selected)
	}

	return out
}
