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

// defaultGeminiModel is used when the caller's preference names no model
const defaultGeminiModel = "gemini-pro"

// GeminiClient is a minimal client for the Google Generative Language API
type GeminiClient struct {
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.AIConfig) *GeminiClient {
	var base string
	if cfg != nil && cfg.GeminiBaseURL != "" {
		base = cfg.GeminiBaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	return &GeminiClient{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// geminiRequest is the shape for generateContent requests
type geminiRequest struct {
	Contents         interface{} `json:"contents"`
	GenerationConfig interface{} `json:"generationConfig,omitempty"`
}

// geminiResponse is a minimal response shape
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateMOM sends the assembled prompt to Gemini and returns the
// formatted minutes text. The API key comes from the caller's stored
// preference, not from client state.
func (g *GeminiClient) GenerateMOM(ctx context.Context, apiKey, model, userPrompt string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("gemini api key not set")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	reqBody := geminiRequest{
		Contents: []map[string]interface{}{
			{"parts": []map[string]string{{"text": systemPrompt + "\n\n" + userPrompt}}},
		},
		GenerationConfig: map[string]interface{}{
			"temperature":     0.7,
			"maxOutputTokens": 500,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, model, apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text), nil
}
