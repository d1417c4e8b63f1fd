package harness

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter receives case outcomes from Run in table order.
type Reporter interface {
	CaseFinished(res CaseResult)
	Summary(passed, total int)
}

type discardReporter struct{}

func (discardReporter) CaseFinished(CaseResult) {}
func (discardReporter) Summary(int, int)        {}

// ConsoleReporter prints one line per case and a final tally.
//
//	case #2 for part Part1 example PASSED: 3
//	case #3 for part Part2 input   FAILED: expected 100, got 99
//	case #4 for part Part2 input   returned hello
//	2 of 3 passed
//
// Outcome labels are colorized when the writer is a terminal and NO_COLOR is
// not set.
type ConsoleReporter struct {
	writer io.Writer
	mutex  sync.Mutex

	pass  *color.Color
	fail  *color.Color
	info  *color.Color
	label *color.Color
}

// NewConsoleReporter creates a ConsoleReporter writing to w. A nil writer
// discards output.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = io.Discard
	}

	r := &ConsoleReporter{
		writer: w,
		pass:   color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		info:   color.New(color.FgCyan),
		label:  color.New(color.FgWhite, color.Faint),
	}

	useColor := isTerminal(w) && os.Getenv("NO_COLOR") == ""
	for _, c := range []*color.Color{r.pass, r.fail, r.info, r.label} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// CaseFinished prints the line for res.
func (r *ConsoleReporter) CaseFinished(res CaseResult) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	prefix := r.label.Sprintf("case #%d for part %s %s", res.Index, res.Case.Part, res.Case.Input.Tag())

	switch res.Status {
	case StatusPass:
		fmt.Fprintf(r.writer, "%s %s: %s\n", prefix, r.pass.Sprint("PASSED"), res.Actual)
	case StatusFail:
		fmt.Fprintf(r.writer, "%s %s: expected %s, got %s\n",
			prefix, r.fail.Sprint("FAILED"), res.Case.Expected, res.Actual)
	default:
		fmt.Fprintf(r.writer, "%s %s %s\n", prefix, r.info.Sprint("returned"), res.Actual)
	}
}

// Summary prints "<passed> of <total> passed".
func (r *ConsoleReporter) Summary(passed, total int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	tally := fmt.Sprintf("%d of %d passed", passed, total)
	if passed == total {
		fmt.Fprintln(r.writer, r.pass.Sprint(tally))
		return
	}
	fmt.Fprintln(r.writer, r.fail.Sprint(tally))
}

// Recorder keeps every reported result in memory.
type Recorder struct {
	mutex   sync.Mutex
	results []CaseResult
	passed  int
	total   int
	summary bool
}

func (r *Recorder) CaseFinished(res CaseResult) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.results = append(r.results, res)
}

func (r *Recorder) Summary(passed, total int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.passed, r.total, r.summary = passed, total, true
}

// Results returns a copy of the recorded case results.
func (r *Recorder) Results() []CaseResult {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]CaseResult, len(r.results))
	copy(out, r.results)
	return out
}

// Tally returns the reported summary and whether one was reported at all.
func (r *Recorder) Tally() (passed, total int, ok bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.passed, r.total, r.summary
}

// MultiReporter forwards every call to each reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) CaseFinished(res CaseResult) {
	for _, r := range m {
		r.CaseFinished(res)
	}
}

func (m MultiReporter) Summary(passed, total int) {
	for _, r := range m {
		r.Summary(passed, total)
	}
}
