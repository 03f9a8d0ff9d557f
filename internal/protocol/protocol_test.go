package protocol

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func newFixedEmitter(buf *bytes.Buffer) *Emitter {
	e := NewEmitter(buf)
	e.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	}
	return e
}

func TestEmitter_LogLine(t *testing.T) {
	var buf bytes.Buffer
	e := newFixedEmitter(&buf)

	e.Info("agent created")

	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasPrefix(line, MarkerLog) {
		t.Fatalf("expected %q prefix, got %q", MarkerLog, line)
	}

	var record LogRecord
	if err := json.Unmarshal([]byte(strings.TrimPrefix(line, MarkerLog)), &record); err != nil {
		t.Fatalf("log payload is not valid JSON: %v", err)
	}

	if record.Timestamp != "09:26:53" {
		t.Errorf("expected HH:MM:SS timestamp, got %q", record.Timestamp)
	}
	if record.Level != LevelInfo {
		t.Errorf("expected info level, got %q", record.Level)
	}
	if record.Message != "agent created" {
		t.Errorf("expected message, got %q", record.Message)
	}
}

func TestEmitter_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	e := newFixedEmitter(&buf)

	e.Error("something broke")

	var record LogRecord
	payload := strings.TrimPrefix(strings.TrimSpace(buf.String()), MarkerLog)
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("log payload is not valid JSON: %v", err)
	}
	if record.Level != LevelError {
		t.Errorf("expected error level, got %q", record.Level)
	}
}

func TestEmitter_ResultAndFatal(t *testing.T) {
	var buf bytes.Buffer
	e := newFixedEmitter(&buf)

	e.Result("all done")
	e.Fatal("it broke")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "TASK_RESULT:all done" {
		t.Errorf("unexpected result line %q", lines[0])
	}
	if lines[1] != "FATAL_ERROR:it broke" {
		t.Errorf("unexpected fatal line %q", lines[1])
	}
}

func TestEmitter_TestOutcome(t *testing.T) {
	var buf bytes.Buffer
	e := newFixedEmitter(&buf)

	e.TestOutcome(true)
	e.TestOutcome(false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != TestSuccessLine {
		t.Errorf("unexpected success line %q", lines[0])
	}
	if lines[1] != TestFailureLine {
		t.Errorf("unexpected failure line %q", lines[1])
	}
}

func TestEmitter_OneRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	e := newFixedEmitter(&buf)

	e.Info("first")
	e.Info("second")
	e.Info("third")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, MarkerLog) {
			t.Errorf("line missing marker: %q", line)
		}
	}
}
