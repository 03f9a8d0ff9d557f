package tools

import (
	"context"

	"github.com/Echen1246/force.ai/internal/protocol"
	"github.com/Echen1246/force.ai/internal/runner"
)

// TestConnectionTool validates that the engine and provider are usable
type TestConnectionTool struct {
	runner *runner.Runner
}

// NewTestConnectionTool creates a new test_connection tool
func NewTestConnectionTool(r *runner.Runner) *TestConnectionTool {
	return &TestConnectionTool{runner: r}
}

func (t *TestConnectionTool) Name() string {
	return "test_connection"
}

func (t *TestConnectionTool) Description() string {
	return "Verify that the automation engine and model provider are configured correctly, without executing a task."
}

func (t *TestConnectionTool) Execute(ctx context.Context, args map[string]any) (*ToolResult, error) {
	if t.runner.TestConnection(ctx) {
		return NewToolResult(protocol.TestSuccessLine), nil
	}
	return NewToolError(protocol.TestFailureLine), nil
}
