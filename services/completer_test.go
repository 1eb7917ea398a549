package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGeminiClient(t *testing.T, h http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient(context.Background(), GeminiOptions{
		APIKey:  "gemini-test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	return c
}

func TestGeminiComplete(t *testing.T) {
	var body string
	c := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("path = %q", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Day 1: "},{"text":"Beach"}]}}]}`))
	})

	out, err := c.Complete(context.Background(), "plan trips", "Goa please")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Day 1: Beach" {
		t.Fatalf("completion = %q", out)
	}
	if !strings.Contains(body, "plan trips") || !strings.Contains(body, "Goa please") {
		t.Fatalf("prompts not sent: %s", body)
	}
}

func TestGeminiEmptyCompletion(t *testing.T) {
	c := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"   "}]}}]}`))
	})

	_, err := c.Complete(context.Background(), "", "hi")
	if PublicMessage(err, "") != "AI response was empty" {
		t.Fatalf("expected empty completion error, got %v", err)
	}
}

func TestGeminiProviderError(t *testing.T) {
	c := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := c.Complete(context.Background(), "", "hi")
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if PublicMessage(err, "") != upstreamFailedText {
		t.Fatalf("public message = %q", PublicMessage(err, ""))
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), GeminiOptions{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}
