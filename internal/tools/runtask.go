package tools

import (
	"context"

	"github.com/Echen1246/force.ai/internal/runner"
)

// RunTaskTool executes a browser-automation task through the runner
type RunTaskTool struct {
	runner *runner.Runner
}

// NewRunTaskTool creates a new run_task tool
func NewRunTaskTool(r *runner.Runner) *RunTaskTool {
	return &RunTaskTool{runner: r}
}

func (t *RunTaskTool) Name() string {
	return "run_task"
}

func (t *RunTaskTool) Description() string {
	return "Execute a natural-language browser automation task. Optional credentials are injected into the task context."
}

func (t *RunTaskTool) Execute(ctx context.Context, args map[string]any) (*ToolResult, error) {
	parser := NewArgumentParser(args)

	task, err := parser.GetStringRequired("task")
	if err != nil {
		return nil, err
	}

	creds, err := parseCredentialsArg(parser)
	if err != nil {
		return NewToolError(err.Error()), nil
	}

	formatted, err := t.runner.ExecuteTask(ctx, task, creds)
	if err != nil {
		return NewToolError(err.Error()), nil
	}

	return NewToolResult(formatted.Text), nil
}

// parseCredentialsArg accepts credentials either as a JSON string, matching
// the CLI surface, or as an object from clients that send structured args.
func parseCredentialsArg(parser *ArgumentParser) (runner.Credentials, error) {
	if raw := parser.GetString("credentials"); raw != "" {
		return runner.ParseCredentials(raw)
	}

	var creds runner.Credentials
	for key, value := range parser.GetStringMap("credentials") {
		creds = append(creds, runner.Credential{Key: key, Value: value})
	}
	return creds, nil
}
