// Package protocol implements the stdout line protocol consumed by the
// parent process. Every record is a single line with a fixed marker prefix
// so the parent can demultiplex worker output from engine noise.
package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Line markers recognized by the parent process.
const (
	MarkerLog   = "BROWSERUSE_LOG:"
	MarkerTask  = "TASK_RESULT:"
	MarkerFatal = "FATAL_ERROR:"

	TestSuccessLine = "SUCCESS: Browser Use is working correctly"
	TestFailureLine = "ERROR: Browser Use test failed"
)

// Log levels
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// LogRecord is a single structured log line
type LogRecord struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Emitter writes protocol lines to a single writer. Writes are unbuffered
// and serialized so each record lands as one intact line.
type Emitter struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewEmitter creates an emitter bound to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w, now: time.Now}
}

// Log emits a BROWSERUSE_LOG line with the given level and message.
func (e *Emitter) Log(level, message string) {
	record := LogRecord{
		Timestamp: e.now().Format("15:04:05"),
		Level:     level,
		Message:   message,
	}

	data, err := json.Marshal(record)
	if err != nil {
		// A log record is three strings; marshaling cannot realistically
		// fail, and a log failure must never fail the task.
		return
	}

	e.writeLine(MarkerLog + string(data))
}

// Info emits an info-level log line.
func (e *Emitter) Info(message string) { e.Log(LevelInfo, message) }

// Error emits an error-level log line.
func (e *Emitter) Error(message string) { e.Log(LevelError, message) }

// Result emits the final TASK_RESULT line.
func (e *Emitter) Result(text string) {
	e.writeLine(MarkerTask + text)
}

// Fatal emits a FATAL_ERROR line.
func (e *Emitter) Fatal(message string) {
	e.writeLine(MarkerFatal + message)
}

// TestOutcome emits the fixed test-mode line for ok.
func (e *Emitter) TestOutcome(ok bool) {
	if ok {
		e.writeLine(TestSuccessLine)
	} else {
		e.writeLine(TestFailureLine)
	}
}

func (e *Emitter) writeLine(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintln(e.w, line)
}
