package types

// ProviderType represents an AI provider
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
)

// ModelConfig identifies the model driving the automation engine.
type ModelConfig struct {
	Provider  ProviderType `json:"provider"`
	ModelName string       `json:"model_name"`
	APIKey    string       `json:"-"`
	BaseURL   string       `json:"base_url,omitempty"`
}

// ModelResponse is the unified response from any provider
type ModelResponse struct {
	Content      string       `json:"content"`
	Model        string       `json:"model"`
	Provider     ProviderType `json:"provider"`
	TokensUsed   TokenUsage   `json:"tokens_used"`
	FinishReason string       `json:"finish_reason,omitempty"`
}

// TokenUsage tracks token consumption
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
