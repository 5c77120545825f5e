package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

func TestOpenAIGenerateMOM_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("bearer token missing, got %q", r.Header.Get("Authorization"))
		}
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "gpt-4o" {
			t.Fatalf("model not forwarded, got %q", payload.Model)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Minutes of Meeting body"}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.AIConfig{OpenAIBaseURL: ts.URL})

	text, err := client.GenerateMOM(context.Background(), "test-key", "gpt-4o", "elaborate these points")
	if err != nil {
		t.Fatalf("GenerateMOM failed: %v", err)
	}
	if text != "Minutes of Meeting body" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestOpenAIGenerateMOM_DefaultModel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != defaultOpenAIModel {
			t.Fatalf("expected default model, got %q", payload.Model)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.AIConfig{OpenAIBaseURL: ts.URL})

	if _, err := client.GenerateMOM(context.Background(), "test-key", "", "prompt"); err != nil {
		t.Fatalf("GenerateMOM failed: %v", err)
	}
}

func TestOpenAIGenerateMOM_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.AIConfig{OpenAIBaseURL: ts.URL})

	if _, err := client.GenerateMOM(context.Background(), "bad-key", "", "prompt"); err == nil {
		t.Fatalf("expected error on 401 response")
	}
}
