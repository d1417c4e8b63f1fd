package harness

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *captureLogger) LogError(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, message)
}

func TestEntrypointPassesFilters(t *testing.T) {
	table := []Case{
		Answer(Part1, Int(2)),
		Example(Part1, Int(3), "((("),
		Answer(Part2, Int(-1)),
	}
	rec := &Recorder{}
	run := NewEntrypoint(parens, table, rec, &captureLogger{})

	assert.True(t, run([]byte("(("), 1, 0, false))
	require.Len(t, rec.Results(), 2)

	rec = &Recorder{}
	run = NewEntrypoint(parens, table, rec, &captureLogger{})
	assert.False(t, run([]byte("(("), 2, 0, false), "part 2 expects -1 for ((")
	require.Len(t, rec.Results(), 1)
	assert.Equal(t, 3, rec.Results()[0].Index)

	rec = &Recorder{}
	run = NewEntrypoint(parens, table, rec, &captureLogger{})
	assert.False(t, run([]byte("(("), 0, 0, true))
	assert.Len(t, rec.Results(), 2)
}

func TestEntrypointRecoversPanic(t *testing.T) {
	boom := SolutionFunc(func(input string, _ Part) Result {
		if input == "bad" {
			panic("unexpected input format")
		}
		return Int(1)
	})
	table := []Case{
		Example(Part1, Int(1), "good"),
		Example(Part1, Int(1), "bad"),
	}
	logger := &captureLogger{}
	rec := &Recorder{}

	var ok bool
	assert.NotPanics(t, func() {
		ok = NewEntrypoint(boom, table, rec, logger)(nil, 0, 0, false)
	})

	assert.False(t, ok)
	require.Len(t, logger.messages, 1)
	assert.Contains(t, logger.messages[0], "solution panicked: unexpected input format")
	assert.Len(t, rec.Results(), 1, "the case before the panic was reported")
}

func TestEntrypointRejectsInvalidUTF8(t *testing.T) {
	logger := &captureLogger{}
	sol := &countingSolution{}
	run := NewEntrypoint(sol, []Case{Unchecked(Part1)}, nil, logger)

	assert.False(t, run([]byte{0xff, 0xfe}, 0, 0, false))
	assert.Zero(t, sol.calls.Load())
	require.Len(t, logger.messages, 1)
	assert.Contains(t, logger.messages[0], "UTF-8")
}

func TestEntrypointRejectsInvalidPartCode(t *testing.T) {
	logger := &captureLogger{}
	run := NewEntrypoint(parens, []Case{Unchecked(Part1)}, nil, logger)

	assert.False(t, run([]byte("("), 3, 0, false))
	require.Len(t, logger.messages, 1)
	assert.True(t, strings.Contains(logger.messages[0], "invalid part number 3"))
}

func TestEntrypointDoesNotRetainInput(t *testing.T) {
	var seen string
	sol := SolutionFunc(func(input string, _ Part) Result {
		seen = input
		return Int(0)
	})
	buf := []byte("abc")

	NewEntrypoint(sol, []Case{Unchecked(Part1)}, nil, nil)(buf, 0, 0, false)
	buf[0] = 'z'

	assert.Equal(t, "abc", seen)
}

func TestRegistry(t *testing.T) {
	const year = 1999
	t.Cleanup(func() {
		unregister(year, 2)
		unregister(year, 1)
	})

	Register(year, 2, parens, Example(Part1, Int(1), "("))
	Register(year, 1, parens, Answer(Part1, Int(0)), Example(Part2, Int(2), "(("))

	d, ok := Lookup(year, 1)
	require.True(t, ok)
	assert.Equal(t, "1999-01", d.Name())
	assert.Len(t, d.Cases, 2)
	assert.Len(t, d.Examples(), 1)

	days := Days(year)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Contains(t, Years(), year)

	assert.Panics(t, func() { Register(year, 1, parens) }, "duplicate registration")
	assert.Panics(t, func() { Register(year, 26, parens) }, "day out of range")
	assert.Panics(t, func() { Register(year, 3, parens, Case{Part: 7}) }, "invalid part")

	_, ok = Lookup(year, 3)
	assert.False(t, ok)
}

func TestDayWithCasesKeepsIndices(t *testing.T) {
	d := &Day{Year: 1999, Day: 5, Solution: parens, Cases: []Case{Example(Part1, Int(1), "(")}}
	extended := d.WithCases(Example(Part1, Int(2), "(("))

	assert.Len(t, d.Cases, 1)
	require.Len(t, extended.Cases, 2)

	rec := &Recorder{}
	assert.True(t, extended.Entrypoint(rec, nil)(nil, 0, 2, false))
	require.Len(t, rec.Results(), 1)
	assert.Equal(t, 2, rec.Results()[0].Index)
}
