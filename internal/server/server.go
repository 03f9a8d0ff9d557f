// Package server exposes the task runner over MCP stdio for parents that
// speak MCP instead of the raw line protocol.
package server

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Echen1246/force.ai/internal/config"
	"github.com/Echen1246/force.ai/internal/runner"
	"github.com/Echen1246/force.ai/internal/tools"
)

// Server is the MCP server
type Server struct {
	cfg    *config.Config
	runner *runner.Runner
	tools  map[string]tools.Tool
	mcp    *server.MCPServer
}

// New creates a new MCP server around an initialized runner
func New(cfg *config.Config, r *runner.Runner) *Server {
	s := &Server{
		cfg:    cfg,
		runner: r,
		tools:  make(map[string]tools.Tool),
	}

	s.mcp = server.NewMCPServer(
		"browseruse-worker",
		cfg.Version,
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.registerTool(tools.NewVersionTool(s.cfg))
	s.registerTool(tools.NewTestConnectionTool(s.runner))
	s.registerTool(tools.NewRunTaskTool(s.runner))
}

// registerTool adds a tool to the server
func (s *Server) registerTool(t tools.Tool) {
	name := t.Name()
	s.tools[name] = t

	s.mcp.AddTool(
		mcp.NewTool(name,
			mcp.WithDescription(t.Description()),
			mcp.WithString("task",
				mcp.Description("Natural-language task to execute"),
			),
			mcp.WithString("credentials",
				mcp.Description("JSON object of credential key/value pairs to inject into the task"),
			),
		),
		s.handleToolCall(t),
	)

	slog.Debug("registered tool", "name", name)
}

// handleToolCall creates a handler for a specific tool
func (s *Server) handleToolCall(t tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slog.Info("tool call", "name", t.Name())

		result, err := t.Execute(ctx, request.Params.Arguments)
		if err != nil {
			slog.Error("tool execution failed", "name", t.Name(), "error", err)
			res := mcp.NewToolResultText(err.Error())
			res.IsError = true
			return res, nil
		}

		res := mcp.NewToolResultText(result.Content)
		res.IsError = result.IsError
		return res, nil
	}
}

// Run starts the MCP server on stdio
func (s *Server) Run(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}
