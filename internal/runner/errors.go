package runner

import "fmt"

// ExecutionError wraps a task execution failure, preserving the original
// cause for callers that need more than the message.
type ExecutionError struct {
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("task execution failed (%s): %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ErrEngineNotDefined indicates the configured engine has no definition
type ErrEngineNotDefined struct {
	Name string
}

func (e ErrEngineNotDefined) Error() string {
	return fmt.Sprintf("no engine definition for %q", e.Name)
}
