// Package engine wraps external browser-automation engines. The engine owns
// the browser, the DOM reasoning, and the model calls; this package only
// constructs it, hands it a task, and collects its output.
package engine

import (
	"context"
	"fmt"
	"time"
)

// Agent is a constructed engine instance bound to one task.
type Agent interface {
	// Name returns the engine name
	Name() string

	// Run executes the task end-to-end and returns the engine output
	Run(ctx context.Context) (*Output, error)

	// IsAvailable checks if the engine executable is installed
	IsAvailable() bool
}

// Output contains the result of an engine run
type Output struct {
	Content      string        // Final result payload
	RawOutput    string        // Full captured stdout
	ExitCode     int           // Process exit code
	Duration     time.Duration // Execution time
	ErrorMessage string        // Error detail if the run failed
}

// ErrEngineUnavailable indicates the engine command is not installed
type ErrEngineUnavailable struct {
	Name    string
	Command string
}

func (e ErrEngineUnavailable) Error() string {
	return fmt.Sprintf("engine %s unavailable: command %q not found", e.Name, e.Command)
}

// ErrEngineFailed indicates the engine process exited unsuccessfully
type ErrEngineFailed struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e ErrEngineFailed) Error() string {
	return fmt.Sprintf("engine %s failed with exit code %d: %s", e.Name, e.ExitCode, e.Stderr)
}
