package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type chatServer struct {
	status int
	body   map[string]any

	path string
	seen map[string]any
}

func (s *chatServer) start(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&s.seen)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		json.NewEncoder(w).Encode(s.body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func completion(content, finish string) map[string]any {
	return map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 20, "completion_tokens": 8, "total_tokens": 28},
	}
}

func TestOpenAI_Generate(t *testing.T) {
	s := &chatServer{status: http.StatusOK, body: completion("```json\n{\"answer\":\"2x\"}\n```", "stop")}
	p, err := NewOpenAIProvider(Config{APIKey: "k", BaseURL: s.start(t)})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), schemaRequest("Turunan x^2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"2x"}` {
		t.Errorf("fences not stripped: %s", resp.Content)
	}
	if resp.Model != "gpt-4o-mini-2024-07-18" || resp.Usage.Total() != 28 {
		t.Errorf("unexpected response: %+v", resp)
	}

	if !strings.HasSuffix(s.path, "/chat/completions") {
		t.Errorf("unexpected path %q", s.path)
	}
	msgs, _ := s.seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", s.seen["messages"])
	}
	format, _ := s.seen["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("expected json_schema response format, got %v", s.seen["response_format"])
	}
}

func TestOpenAI_Errors(t *testing.T) {
	apiError := map[string]any{"error": map[string]any{"message": "nope", "type": "error"}}
	tests := []struct {
		name   string
		status int
		body   map[string]any
		want   ErrorKind
	}{
		{"rate limit", http.StatusTooManyRequests, apiError, KindRateLimited},
		{"not found", http.StatusNotFound, apiError, KindRejected},
		{"server", http.StatusBadGateway, apiError, KindUnavailable},
		{"length", http.StatusOK, completion(`{"answer":`, "length"), KindTruncated},
		{"filtered", http.StatusOK, completion("", "content_filter"), KindRejected},
		{"schema mismatch", http.StatusOK, completion(`{"result":"2x"}`, "stop"), KindInvalidOutput},
		{"no choices", http.StatusOK, map[string]any{"id": "x", "choices": []any{}}, KindInvalidOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &chatServer{status: tt.status, body: tt.body}
			p, err := NewOpenAIProvider(Config{APIKey: "k", BaseURL: s.start(t)})
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Generate(context.Background(), schemaRequest("q"))
			if KindOf(err) != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOpenRouter(t *testing.T) {
	p, err := NewOpenRouterProvider(Config{APIKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "google/gemini-2.5-flash" || p.name != VendorOpenRouter {
		t.Errorf("unexpected defaults: %q %q", p.ModelID(), p.name)
	}

	s := &chatServer{status: http.StatusTooManyRequests, body: map[string]any{"error": map[string]any{"message": "slow down"}}}
	p, err = NewOpenRouterProvider(Config{APIKey: "k", Model: "anthropic/claude-haiku-4.5", BaseURL: s.start(t)})
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Generate(context.Background(), schemaRequest("q"))
	var e *Error
	if KindOf(err) != KindRateLimited || !errors.As(err, &e) || e.Provider != VendorOpenRouter {
		t.Fatalf("expected openrouter rate limit, got %v", err)
	}
	if s.seen["model"] != "anthropic/claude-haiku-4.5" {
		t.Errorf("gateway model path should pass through, got %v", s.seen["model"])
	}
}

func TestOpenAI_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := NewOpenRouterProvider(Config{}); err == nil || !strings.Contains(err.Error(), "openrouter") {
		t.Errorf("expected openrouter key error, got %v", err)
	}
}
