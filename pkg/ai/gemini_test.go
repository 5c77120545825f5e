package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

func TestGeminiGenerateMOM_Success(t *testing.T) {
	// Mock Generative Language API server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/v1beta/models/gemini-pro:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatalf("api key not passed as query parameter")
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["contents"] == nil {
			t.Fatalf("contents missing from request")
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "  Minutes of Meeting body  "}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.AIConfig{GeminiBaseURL: ts.URL})

	text, err := client.GenerateMOM(context.Background(), "test-key", "", "elaborate these points")
	if err != nil {
		t.Fatalf("GenerateMOM failed: %v", err)
	}
	if text != "Minutes of Meeting body" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGeminiGenerateMOM_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.AIConfig{GeminiBaseURL: ts.URL})

	if _, err := client.GenerateMOM(context.Background(), "test-key", "", "prompt"); err == nil {
		t.Fatalf("expected error on 429 response")
	}
}

func TestGeminiGenerateMOM_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.AIConfig{GeminiBaseURL: ts.URL})

	if _, err := client.GenerateMOM(context.Background(), "test-key", "", "prompt"); err == nil {
		t.Fatalf("expected error on empty candidates")
	}
}

func TestGeminiGenerateMOM_MissingKey(t *testing.T) {
	client := NewGeminiClient(&config.AIConfig{GeminiBaseURL: "http://unused"})
	if _, err := client.GenerateMOM(context.Background(), "", "", "prompt"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
