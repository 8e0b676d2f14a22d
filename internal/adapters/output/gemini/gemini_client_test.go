package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"getcooked/configs"

	"google.golang.org/genai"
)

// TestNewGeminiClientAdapterRequiresKey tests that construction fails without an api key
func TestNewGeminiClientAdapterRequiresKey(t *testing.T) {
	adapter, err := NewGeminiClientAdapter(context.Background(), configs.Gemini{})

	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
	if adapter != nil {
		t.Error("expected adapter to be nil")
	}
}

// TestNewGeminiClientAdapterDefaultModel tests the default model name
func TestNewGeminiClientAdapterDefaultModel(t *testing.T) {
	adapter, err := NewGeminiClientAdapter(context.Background(), configs.Gemini{APIKey: "key"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter.model != "gemini-2.5-flash" {
		t.Errorf("expected default model gemini-2.5-flash, got: %s", adapter.model)
	}
}

// TestGenerateText tests a generateContent round trip against a mock server
func TestGenerateText(t *testing.T) {
	var gotPath string
	var gotPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.Unmarshal(body, &req); err == nil && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"roasts\":[]}"}]}}]}`))
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(context.Background(),
		configs.Gemini{APIKey: "key", Model: "gemini-test"},
		genai.HTTPOptions{BaseURL: server.URL + "/", APIVersion: "v1beta"},
	)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	text, err := adapter.GenerateText(context.Background(), "roast me")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if text != `{"roasts":[]}` {
		t.Errorf("unexpected text: %s", text)
	}
	if !strings.HasSuffix(gotPath, "gemini-test:generateContent") {
		t.Errorf("expected generateContent path for gemini-test, got: %s", gotPath)
	}
	if gotPrompt != "roast me" {
		t.Errorf("expected prompt to be sent as user text, got: %q", gotPrompt)
	}
}

// TestGenerateTextUpstreamError tests that API errors are returned to the caller
func TestGenerateTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(context.Background(),
		configs.Gemini{APIKey: "key"},
		genai.HTTPOptions{BaseURL: server.URL + "/", APIVersion: "v1beta"},
	)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err = adapter.GenerateText(context.Background(), "roast me")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "gemini generate content failed") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}
