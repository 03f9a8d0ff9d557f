package providers

import (
	"fmt"

	"github.com/Echen1246/force.ai/internal/types"
)

// ErrProviderNotConfigured indicates a provider isn't configured
type ErrProviderNotConfigured struct {
	Provider types.ProviderType
}

func (e ErrProviderNotConfigured) Error() string {
	return fmt.Sprintf("provider %s not configured", e.Provider)
}

// ErrAPIError indicates an API error
type ErrAPIError struct {
	Provider   types.ProviderType
	StatusCode int
	Message    string
}

func (e ErrAPIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
}
