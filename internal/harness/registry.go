package harness

import (
	"fmt"
	"sort"
	"sync"
)

// Day is a registered solution with its case table.
type Day struct {
	Year     int
	Day      int
	Solution Solution
	Cases    []Case
}

// Name returns "<year>-<dd>".
func (d *Day) Name() string {
	return fmt.Sprintf("%d-%02d", d.Year, d.Day)
}

// Examples returns the cases that carry an embedded example.
func (d *Day) Examples() []Case {
	var out []Case
	for _, c := range d.Cases {
		if c.Input.IsExample() {
			out = append(out, c)
		}
	}
	return out
}

// WithCases returns a copy of d whose table has extra appended after the
// registered cases, keeping registered case indices stable.
func (d *Day) WithCases(extra ...Case) *Day {
	cases := make([]Case, 0, len(d.Cases)+len(extra))
	cases = append(cases, d.Cases...)
	cases = append(cases, extra...)
	return &Day{Year: d.Year, Day: d.Day, Solution: d.Solution, Cases: cases}
}

// Entrypoint returns the primitive-only adapter for d.
func (d *Day) Entrypoint(reporter Reporter, logger Logger) Entrypoint {
	return NewEntrypoint(d.Solution, d.Cases, reporter, logger)
}

type dayKey struct {
	year, day int
}

var (
	registryMu sync.RWMutex
	registry   = map[dayKey]*Day{}
)

// Register associates sol and its case table with (year, day). It is meant to
// be called from init functions and panics on a duplicate registration, a day
// outside 1..25, or a case with an invalid part.
func Register(year, day int, sol Solution, cases ...Case) {
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("harness: day %d out of range for year %d", day, year))
	}
	if sol == nil {
		panic(fmt.Sprintf("harness: nil solution for %d-%02d", year, day))
	}
	for i, c := range cases {
		if !c.Part.Valid() {
			panic(fmt.Sprintf("harness: case #%d of %d-%02d has invalid part %d", i+1, year, day, c.Part))
		}
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	key := dayKey{year, day}
	if _, dup := registry[key]; dup {
		panic(fmt.Sprintf("harness: %d-%02d registered twice", year, day))
	}
	registry[key] = &Day{Year: year, Day: day, Solution: sol, Cases: cases}
}

// Lookup returns the registered day, if any.
func Lookup(year, day int) (*Day, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[dayKey{year, day}]
	return d, ok
}

// Days returns the registered days of year ordered by day number.
func Days(year int) []*Day {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var out []*Day
	for k, d := range registry {
		if k.year == year {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Years returns every year with at least one registered day, ascending.
func Years() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := map[int]bool{}
	var out []int
	for k := range registry {
		if !seen[k.year] {
			seen[k.year] = true
			out = append(out, k.year)
		}
	}
	sort.Ints(out)
	return out
}

// unregister removes a day; used by tests that register throwaway days.
func unregister(year, day int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, dayKey{year, day})
}
