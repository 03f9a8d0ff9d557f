package tools

import (
	"context"
)

// Tool is the interface all tools must implement
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description
	Description() string

	// Execute runs the tool with the given arguments
	Execute(ctx context.Context, args map[string]any) (*ToolResult, error)
}

// ToolResult is the result of tool execution
type ToolResult struct {
	Content string // Text content to return
	IsError bool   // Whether this is an error result
}

// NewToolResult creates a successful result
func NewToolResult(content string) *ToolResult {
	return &ToolResult{Content: content}
}

// NewToolError creates an error result
func NewToolError(message string) *ToolResult {
	return &ToolResult{
		Content: message,
		IsError: true,
	}
}

// ArgumentParser helps parse tool arguments
type ArgumentParser struct {
	args map[string]any
}

// NewArgumentParser creates a new parser
func NewArgumentParser(args map[string]any) *ArgumentParser {
	return &ArgumentParser{args: args}
}

// GetString returns a string argument
func (p *ArgumentParser) GetString(key string) string {
	if v, ok := p.args[key].(string); ok {
		return v
	}
	return ""
}

// GetStringRequired returns a required string argument
func (p *ArgumentParser) GetStringRequired(key string) (string, error) {
	v := p.GetString(key)
	if v == "" {
		return "", ErrMissingRequired{Field: key}
	}
	return v, nil
}

// GetStringMap returns an object argument of string values
func (p *ArgumentParser) GetStringMap(key string) map[string]string {
	v, ok := p.args[key].(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(v))
	for k, item := range v {
		if s, ok := item.(string); ok {
			result[k] = s
		}
	}
	return result
}

// ErrMissingRequired indicates a required argument was absent
type ErrMissingRequired struct {
	Field string
}

func (e ErrMissingRequired) Error() string {
	return "missing required field: " + e.Field
}
