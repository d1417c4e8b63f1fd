package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// TestNewConsoleLogger verifies the constructor normalizes the level.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "DEBUG")

		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "debug" {
			t.Errorf("expected log level %q, got %q", "debug", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected no color for a bytes.Buffer")
		}
	})

	t.Run("with invalid level", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "loud")
		if logger.logLevel != "info" {
			t.Errorf("expected fallback level info, got %q", logger.logLevel)
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		logger.LogError("dropped")
		logger.LogDayStart("2015-01", 3)
		logger.LogSweepSummary(SweepSummary{Year: 2015})
	})
}

// TestLevelFiltering verifies messages below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{"trace", []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}, nil},
		{"info", []string{"INFO", "WARN", "ERROR"}, []string{"TRACE", "DEBUG"}},
		{"warn", []string{"WARN", "ERROR"}, []string{"TRACE", "DEBUG", "INFO"}},
		{"error", []string{"ERROR"}, []string{"TRACE", "DEBUG", "INFO", "WARN"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.level)

			logger.LogTrace("t")
			logger.LogDebug("d")
			logger.LogInfo("i")
			logger.LogWarn("w")
			logger.LogError("e")

			out := buf.String()
			for _, lvl := range tt.visible {
				if !strings.Contains(out, "["+lvl+"]") {
					t.Errorf("expected %s in output, got %q", lvl, out)
				}
			}
			for _, lvl := range tt.hidden {
				if strings.Contains(out, "["+lvl+"]") {
					t.Errorf("did not expect %s in output, got %q", lvl, out)
				}
			}
		})
	}
}

func TestFormattedVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	logger.LogDebugf("reading %s", "inputs/2015-01")
	logger.LogInfof("day %02d", 3)
	logger.LogWarnf("%d cases failed", 2)
	logger.LogErrorf("failed to run for day %d: %v", 4, "boom")

	for _, want := range []string{
		"[DEBUG] reading inputs/2015-01",
		"[INFO] day 03",
		"[WARN] 2 cases failed",
		"[ERROR] failed to run for day 4: boom",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in %q", want, buf.String())
		}
	}
}

func TestLogDayStart(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").LogDayStart("2024-17", 5)

	if !strings.Contains(buf.String(), "Running 2024-17 (5 cases)") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	NewConsoleLogger(buf, "warn").LogDayStart("2024-17", 5)
	if buf.Len() != 0 {
		t.Errorf("expected nothing at warn level, got %q", buf.String())
	}
}

func TestLogSweepSummary(t *testing.T) {
	var s SweepSummary
	s.Year = 2015
	s.Add(1, DayPassed)
	s.Add(2, DayPassed)
	s.Add(3, DayFailed)
	s.Add(9, DayErrored)
	s.Duration = 1500 * time.Millisecond

	if s.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", s.Total())
	}

	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").LogSweepSummary(s)
	out := buf.String()

	for _, want := range []string{
		"2015 summary:",
		"Days run: 4",
		"Passed: 2 (01, 02)",
		"Failed: 1 (03)",
		"Not run: 1 (09)",
		"Total duration: 1.5s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{2*time.Second + 344*time.Millisecond, "2.34s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
