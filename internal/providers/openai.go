package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Echen1246/force.ai/internal/types"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider talks to the OpenAI chat completions API. The API key
// lives inside the client; nothing is written to the process environment.
type OpenAIProvider struct {
	model      types.ModelConfig
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIProvider creates a new OpenAI provider from explicit model
// configuration. It fails when no API key is present.
func NewOpenAIProvider(model types.ModelConfig) (*OpenAIProvider, error) {
	if model.APIKey == "" {
		return nil, ErrProviderNotConfigured{Provider: types.ProviderOpenAI}
	}

	baseURL := model.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIProvider{
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

func (p *OpenAIProvider) GetProviderType() types.ProviderType {
	return types.ProviderOpenAI
}

func (p *OpenAIProvider) IsConfigured() bool {
	return p.model.APIKey != ""
}

func (p *OpenAIProvider) CountTokens(text string, modelName string) (int, error) {
	// Rough estimate: 4 chars per token
	return len(text) / 4, nil
}

// GenerateContent calls the chat completions endpoint
func (p *OpenAIProvider) GenerateContent(ctx context.Context, req *GenerateRequest) (*types.ModelResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = p.model.ModelName
	}

	body := map[string]any{
		"model":    modelName,
		"messages": p.buildMessages(req),
	}

	if req.Temperature > 0 {
		body["temperature"] = req.Temperature
	}
	if req.MaxOutputTokens > 0 {
		body["max_tokens"] = req.MaxOutputTokens
	}

	url := p.baseURL + "/chat/completions"

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.model.APIKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ErrAPIError{
			Provider:   types.ProviderOpenAI,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	var oaiResp openAIResponse
	if err := json.Unmarshal(respBody, &oaiResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return p.parseResponse(modelName, &oaiResp)
}

func (p *OpenAIProvider) buildMessages(req *GenerateRequest) []map[string]any {
	var messages []map[string]any

	if req.SystemPrompt != "" {
		messages = append(messages, map[string]any{
			"role":    "system",
			"content": req.SystemPrompt,
		})
	}

	messages = append(messages, map[string]any{
		"role":    "user",
		"content": req.Prompt,
	})

	return messages
}

func (p *OpenAIProvider) parseResponse(model string, resp *openAIResponse) (*types.ModelResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0]

	return &types.ModelResponse{
		Content:      choice.Message.Content,
		Model:        model,
		Provider:     types.ProviderOpenAI,
		FinishReason: choice.FinishReason,
		TokensUsed: types.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// OpenAI API response types
type openAIResponse struct {
	ID      string         `json:"id"`
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
}

type openAIChoice struct {
	Index        int           `json:"index"`
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
