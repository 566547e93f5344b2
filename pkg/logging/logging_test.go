package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitForCLI_WritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Pipeline", "solved day %d", 3)
	Error("Input", errors.New("boom"), "upload failed")

	out := buf.String()
	assert.Contains(t, out, "solved day 3")
	assert.Contains(t, out, "subsystem=Pipeline")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Console", "hidden")
	Info("Console", "hidden too")
	Warn("Console", "visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()
	require.NotNil(t, ch)

	Debug("TUI", "filtered")
	Warn("TUI", "page %q not found", "Day 09")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "TUI", entry.Subsystem)
		assert.Equal(t, `page "Day 09" not found`, entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %v", entry)
	default:
	}
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 12, 1, 6, 0, 0, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Engine",
		Message:   "part 2 failed",
		Err:       errors.New("bad format"),
	}
	assert.Equal(t, "[06:00:00] ERROR [Engine] part 2 failed (error: bad format)", entry.String())
}
