package providers

import (
	"context"

	"github.com/Echen1246/force.ai/internal/types"
)

// Provider is the interface for AI model providers
type Provider interface {
	// GetProviderType returns the provider type
	GetProviderType() types.ProviderType

	// GenerateContent generates a response from the model
	GenerateContent(ctx context.Context, req *GenerateRequest) (*types.ModelResponse, error)

	// CountTokens estimates token count for text
	CountTokens(text string, modelName string) (int, error)

	// IsConfigured checks if the provider has valid credentials
	IsConfigured() bool
}

// GenerateRequest contains all parameters for generation
type GenerateRequest struct {
	Prompt          string
	SystemPrompt    string
	Model           string
	Temperature     float64
	MaxOutputTokens int
}
