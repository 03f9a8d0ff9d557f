package tools

import (
	"context"
	"fmt"

	"github.com/Echen1246/force.ai/internal/config"
)

// VersionTool returns worker version information
type VersionTool struct {
	cfg *config.Config
}

// NewVersionTool creates a new version tool
func NewVersionTool(cfg *config.Config) *VersionTool {
	return &VersionTool{cfg: cfg}
}

func (t *VersionTool) Name() string {
	return "version"
}

func (t *VersionTool) Description() string {
	return "Get worker version, build details, and the configured engine and model."
}

func (t *VersionTool) Execute(ctx context.Context, args map[string]any) (*ToolResult, error) {
	content := fmt.Sprintf(`Browser Use Worker
Version: %s
Commit: %s
Build Time: %s
Engine: %s
Model: %s`,
		t.cfg.Version,
		t.cfg.Commit,
		t.cfg.BuildTime,
		t.cfg.Engine,
		t.cfg.Model,
	)

	return NewToolResult(content), nil
}
