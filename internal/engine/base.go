package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/Echen1246/force.ai/internal/config"
	"github.com/Echen1246/force.ai/internal/types"
)

const defaultTimeout = 5 * time.Minute

// BaseAgent runs an engine as a subprocess: the task goes in on stdin, the
// result comes back on stdout. Model credentials are passed through the
// child environment only; the worker's own environment is left untouched.
type BaseAgent struct {
	name    string
	command string
	args    []string
	env     map[string]string
	timeout time.Duration
	task    string
	model   types.ModelConfig
	marker  string
}

// New constructs an agent for the given engine definition and task.
// Construction fails when the engine executable cannot be found.
func New(engineCfg config.EngineConfig, task string, model types.ModelConfig) (*BaseAgent, error) {
	a := &BaseAgent{
		name:    engineCfg.Name,
		command: engineCfg.Command,
		args:    append([]string{}, engineCfg.AdditionalArgs...),
		env:     engineCfg.Env,
		timeout: engineCfg.TimeoutOrDefault(defaultTimeout),
		task:    task,
		model:   model,
		marker:  engineCfg.ResultMarker,
	}

	if !a.IsAvailable() {
		return nil, ErrEngineUnavailable{Name: a.name, Command: a.command}
	}

	return a, nil
}

func (a *BaseAgent) Name() string {
	return a.name
}

// IsAvailable checks if the engine executable exists
func (a *BaseAgent) IsAvailable() bool {
	_, err := exec.LookPath(a.command)
	return err == nil
}

// Run executes the engine for the agent's task
func (a *BaseAgent) Run(ctx context.Context) (*Output, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.command, a.args...)
	cmd.Env = a.buildEnv()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdin pipe: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("starting automation engine",
		"name", a.name,
		"command", a.command,
		"args", a.args,
		"model", a.model.ModelName,
	)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting engine process: %w", err)
	}

	go func() {
		defer stdin.Close()
		if _, err := io.WriteString(stdin, a.task); err != nil {
			slog.Warn("failed to write task to engine stdin", "error", err)
		}
	}()

	waitErr := cmd.Wait()
	duration := time.Since(start)

	output := &Output{
		RawOutput: stdout.String(),
		Content:   extractResult(stdout.String(), a.marker),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Duration:  duration,
	}

	if waitErr != nil {
		output.ErrorMessage = fmt.Sprintf("process error: %v\nstderr: %s", waitErr, stderr.String())
		slog.Warn("automation engine error",
			"name", a.name,
			"error", waitErr,
			"stderr", stderr.String(),
			"duration", duration,
		)
		return output, ErrEngineFailed{
			Name:     a.name,
			ExitCode: output.ExitCode,
			Stderr:   stderr.String(),
		}
	}

	slog.Info("automation engine completed",
		"name", a.name,
		"duration", duration,
		"output_length", len(output.Content),
	)

	return output, nil
}

// buildEnv merges the parent environment with engine-specific variables and
// the model credentials the engine needs to reach the provider.
func (a *BaseAgent) buildEnv() []string {
	env := os.Environ()
	for k, v := range a.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	if a.model.APIKey != "" {
		env = append(env, "OPENAI_API_KEY="+a.model.APIKey)
	}
	if a.model.ModelName != "" {
		env = append(env, "BROWSERUSE_MODEL="+a.model.ModelName)
	}
	if a.model.BaseURL != "" {
		env = append(env, "OPENAI_BASE_URL="+a.model.BaseURL)
	}

	return env
}
