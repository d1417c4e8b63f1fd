// Package logger provides leveled console logging for the aoc driver.
//
// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines, filters by level and
// colorizes level names when writing to a terminal. It also carries the
// driver's per-day progress lines and the sweep summary printed after running
// several days.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DayStatus is how a single day ended in a driver sweep.
type DayStatus int

const (
	// DayPassed means every selected case passed.
	DayPassed DayStatus = iota
	// DayFailed means at least one case failed or the solution panicked.
	DayFailed
	// DayErrored means the day could not run (missing input, not registered).
	DayErrored
)

// SweepSummary aggregates the per-day outcomes of one `aoc run`.
type SweepSummary struct {
	Year     int
	Passed   []int
	Failed   []int
	Errored  []int
	Duration time.Duration
}

// Add records the status of day.
func (s *SweepSummary) Add(day int, status DayStatus) {
	switch status {
	case DayPassed:
		s.Passed = append(s.Passed, day)
	case DayFailed:
		s.Failed = append(s.Failed, day)
	default:
		s.Errored = append(s.Errored, day)
	}
}

// Total is the number of days attempted.
func (s *SweepSummary) Total() int {
	return len(s.Passed) + len(s.Failed) + len(s.Errored)
}

// ConsoleLogger logs driver progress to a writer with timestamps and thread safety.
// Color output is enabled automatically for os.Stdout/os.Stderr on a TTY.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive); anything
// else falls back to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    NormalizeLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// fatih/color already checked the TTY and NO_COLOR
		return !color.NoColor
	}

	return false
}

// NormalizeLevel lowercases a level name and returns "info" for empty or
// unknown levels.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if ValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// ValidLevel reports whether level is one of the supported level names.
func ValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) LogDebugf(format string, args ...interface{}) {
	cl.LogDebug(fmt.Sprintf(format, args...))
}

func (cl *ConsoleLogger) LogInfof(format string, args ...interface{}) {
	cl.LogInfo(fmt.Sprintf(format, args...))
}

func (cl *ConsoleLogger) LogWarnf(format string, args ...interface{}) {
	cl.LogWarn(fmt.Sprintf(format, args...))
}

func (cl *ConsoleLogger) LogErrorf(format string, args ...interface{}) {
	cl.LogError(fmt.Sprintf(format, args...))
}

// logWithLevel writes message if the configured level lets it through.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch strings.ToUpper(level) {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogDayStart logs the start of a day at INFO level.
// Format: "[HH:MM:SS] Running <year>-<dd> (<n> cases)"
func (cl *ConsoleLogger) LogDayStart(name string, cases int) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if cl.colorOutput {
		name = color.New(color.Bold).Sprint(name)
	}
	fmt.Fprintf(cl.writer, "[%s] Running %s (%d cases)\n", timestamp(), name, cases)
}

// LogSweepSummary prints the outcome of a multi-day run.
func (cl *ConsoleLogger) LogSweepSummary(s SweepSummary) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if !cl.colorOutput {
		green.DisableColor()
		red.DisableColor()
		yellow.DisableColor()
	}

	fmt.Fprintf(cl.writer, "\n%d summary:\n", s.Year)
	fmt.Fprintf(cl.writer, "  Days run: %d\n", s.Total())
	fmt.Fprintf(cl.writer, "  %s\n", green.Sprintf("Passed: %d %s", len(s.Passed), formatDays(s.Passed)))
	if len(s.Failed) > 0 {
		fmt.Fprintf(cl.writer, "  %s\n", red.Sprintf("Failed: %d %s", len(s.Failed), formatDays(s.Failed)))
	}
	if len(s.Errored) > 0 {
		fmt.Fprintf(cl.writer, "  %s\n", yellow.Sprintf("Not run: %d %s", len(s.Errored), formatDays(s.Errored)))
	}
	fmt.Fprintf(cl.writer, "  Total duration: %s\n", formatDuration(s.Duration))
}

func formatDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%02d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders short durations in ms and longer ones rounded to
// the nearest 10ms.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
