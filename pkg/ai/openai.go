package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

// defaultOpenAIModel is used when the caller's preference names no model
const defaultOpenAIModel = "gpt-3.5-turbo"

// OpenAIClient is a minimal client for OpenAI chat completions
type OpenAIClient struct {
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates an OpenAI client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.AIConfig) *OpenAIClient {
	var base string
	if cfg != nil && cfg.OpenAIBaseURL != "" {
		base = cfg.OpenAIBaseURL
	} else {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}

	return &OpenAIClient{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// chatRequest is the shape for chat completion requests
type chatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// chatResponse is a minimal response shape
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateMOM sends the assembled prompt to OpenAI and returns the
// formatted minutes text
func (o *OpenAIClient) GenerateMOM(ctx context.Context, apiKey, model, userPrompt string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("openai api key not set")
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
