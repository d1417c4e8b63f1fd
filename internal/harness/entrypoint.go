package harness

import (
	"fmt"
	"os"
	"runtime/debug"
	"unicode/utf8"
)

// Logger receives diagnostics from the Entrypoint adapter.
type Logger interface {
	LogError(message string)
}

type stderrLogger struct{}

func (stderrLogger) LogError(message string) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s\n", message)
}

// Entrypoint runs a day's cases using only primitive arguments:
//
//   - input is the full puzzle input as UTF-8 bytes. It is copied before use
//     and never retained after the call returns.
//   - partFilter is 0 for both parts, or 1/2 for a single part.
//   - caseFilter is 0 for every case, or a 1-based case index.
//   - solutionsOnly skips example cases.
//
// It returns true iff no selected case failed. It never panics: a panic in the
// solution or an invalid argument is logged and reported as false.
type Entrypoint func(input []byte, partFilter uint8, caseFilter uint32, solutionsOnly bool) bool

// NewEntrypoint wraps Run behind the Entrypoint signature. A nil logger writes
// diagnostics to stderr.
func NewEntrypoint(sol Solution, table []Case, reporter Reporter, logger Logger) Entrypoint {
	if logger == nil {
		logger = stderrLogger{}
	}

	return func(input []byte, partFilter uint8, caseFilter uint32, solutionsOnly bool) (ok bool) {
		defer func() {
			if r := recover(); r != nil {
				logger.LogError(fmt.Sprintf("solution panicked: %v\n%s", r, debug.Stack()))
				ok = false
			}
		}()

		if !utf8.Valid(input) {
			logger.LogError("input is not valid UTF-8")
			return false
		}

		part, err := DecodePartFilter(partFilter)
		if err != nil {
			logger.LogError(err.Error())
			return false
		}

		filter := Filter{
			Part:          part,
			Case:          caseFilter,
			SolutionsOnly: solutionsOnly,
		}

		return Run(sol, string(input), table, filter, reporter).OK()
	}
}
