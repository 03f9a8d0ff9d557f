// Package runner drives one browser-automation task from text to result.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Echen1246/force.ai/internal/config"
	"github.com/Echen1246/force.ai/internal/engine"
	"github.com/Echen1246/force.ai/internal/protocol"
	"github.com/Echen1246/force.ai/internal/providers"
	"github.com/Echen1246/force.ai/internal/types"
)

// AgentFactory constructs an engine agent for a task. Swappable for tests.
type AgentFactory func(engineCfg config.EngineConfig, task string, model types.ModelConfig) (engine.Agent, error)

// Runner executes browser-automation tasks through an external engine and
// reports progress over the stdout protocol.
type Runner struct {
	cfg      *config.Config
	provider providers.Provider
	emitter  *protocol.Emitter
	newAgent AgentFactory
	runID    string
}

// New creates a task runner. The provider validates model configuration up
// front; the engine agent is constructed per task.
func New(cfg *config.Config, provider providers.Provider, emitter *protocol.Emitter) *Runner {
	r := &Runner{
		cfg:      cfg,
		provider: provider,
		emitter:  emitter,
		newAgent: func(engineCfg config.EngineConfig, task string, model types.ModelConfig) (engine.Agent, error) {
			return engine.New(engineCfg, task, model)
		},
		runID: uuid.New().String(),
	}

	emitter.Info("Browser Use Agent initialized with model: " + cfg.Model)
	slog.Info("runner initialized", "run_id", r.runID, "model", cfg.Model, "engine", cfg.Engine)

	return r
}

// WithAgentFactory overrides agent construction.
func (r *Runner) WithAgentFactory(f AgentFactory) *Runner {
	r.newAgent = f
	return r
}

// ExecuteTask runs one task end-to-end, returning the formatted result.
// Failures come back as *ExecutionError wrapping the original cause.
func (r *Runner) ExecuteTask(ctx context.Context, task string, creds Credentials) (Formatted, error) {
	r.emitter.Info("Starting task execution: " + task)
	slog.Info("executing task", "run_id", r.runID, "task_length", len(task), "credentials", len(creds))

	taskText := task
	if len(creds) > 0 {
		r.emitter.Info(fmt.Sprintf("Formatting %d credentials", len(creds)))
		if block := FormatCredentials(creds); block != "" {
			taskText = task + "\n\nAvailable credentials:\n" + block
		}
	}

	if tokens, err := r.provider.CountTokens(taskText, r.cfg.Model); err == nil {
		slog.Debug("task prompt sized", "run_id", r.runID, "estimated_tokens", tokens)
	}

	agent, err := r.createAgent(taskText)
	if err != nil {
		return Formatted{}, &ExecutionError{Stage: "construction", Err: err}
	}

	r.emitter.Info("Executing browser automation...")

	output, err := agent.Run(ctx)
	if err != nil {
		r.emitter.Error("Task execution failed: " + err.Error())
		if output != nil && output.ErrorMessage != "" {
			r.emitter.Error("Diagnostic: " + output.ErrorMessage)
		}
		slog.Error("task execution failed", "run_id", r.runID, "error", err)
		return Formatted{}, &ExecutionError{Stage: "execution", Err: err}
	}

	formatted := FormatResult(decodeEngineResult(output.Content))
	if formatted.Degraded {
		r.emitter.Error("Result formatting degraded: " + formatted.Cause.Error())
		slog.Warn("result formatting degraded", "run_id", r.runID, "cause", formatted.Cause)
	}

	r.emitter.Info("Task execution completed: " + formatted.Text)
	slog.Info("task completed", "run_id", r.runID, "duration", output.Duration, "exit_code", output.ExitCode)

	return formatted, nil
}

// TestConnection constructs a trivial agent without running it, validating
// that configuration and engine setup succeed. Failures are reported as
// false, never propagated.
func (r *Runner) TestConnection(ctx context.Context) bool {
	r.emitter.Info("Testing Browser Use connection...")

	if !r.provider.IsConfigured() {
		r.emitter.Error("Browser Use connection test failed: provider not configured")
		return false
	}

	if _, err := r.createAgent("test connection - just verify setup"); err != nil {
		r.emitter.Error("Browser Use connection test failed: " + err.Error())
		return false
	}

	r.emitter.Info("Browser Use connection test successful")
	return true
}

func (r *Runner) createAgent(task string) (engine.Agent, error) {
	r.emitter.Info("Creating Browser Use agent...")

	engineCfg, ok := r.cfg.EngineByName(r.cfg.Engine)
	if !ok {
		err := ErrEngineNotDefined{Name: r.cfg.Engine}
		r.emitter.Error("Failed to create agent: " + err.Error())
		return nil, err
	}

	agent, err := r.newAgent(engineCfg, task, r.cfg.ModelConfig())
	if err != nil {
		r.emitter.Error("Failed to create agent: " + err.Error())
		slog.Error("agent construction failed", "run_id", r.runID, "engine", r.cfg.Engine, "error", err)
		return nil, err
	}

	r.emitter.Info("Browser Use agent created successfully")
	return agent, nil
}

// decodeEngineResult turns the engine's textual payload into the value the
// normalization chain runs over: structured JSON when it parses, the raw
// string otherwise, nil when the engine produced nothing.
func decodeEngineResult(content string) any {
	if content == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(content), &decoded); err == nil {
		switch decoded.(type) {
		case map[string]any, []any:
			return decoded
		}
	}

	return content
}
