package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":        "object",
		"description": "solution",
		"properties": map[string]any{
			"latex": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object", "required": []string{"result"}},
			},
			"kind":  map[string]any{"type": "string", "enum": []any{"limit", "integral"}},
			"x":     map[string]any{"type": "number"},
			"count": map[string]any{"type": "integer"},
		},
		"required":             []any{"latex", "steps"},
		"additionalProperties": false,
	})

	if s.Type != genai.TypeObject || s.Description != "solution" {
		t.Fatalf("unexpected root: %+v", s)
	}
	if len(s.Properties) != 5 || strings.Join(s.Required, ",") != "latex,steps" {
		t.Fatalf("unexpected properties or required: %+v", s)
	}
	checks := map[string]genai.Type{
		"latex": genai.TypeString,
		"steps": genai.TypeArray,
		"kind":  genai.TypeString,
		"x":     genai.TypeNumber,
		"count": genai.TypeInteger,
	}
	for name, want := range checks {
		if got := s.Properties[name].Type; got != want {
			t.Errorf("%s: type %s, want %s", name, got, want)
		}
	}
	if items := s.Properties["steps"].Items; items == nil || items.Type != genai.TypeObject || len(items.Required) != 1 {
		t.Errorf("unexpected items: %+v", items)
	}
	if len(s.Properties["kind"].Enum) != 2 {
		t.Errorf("enum lost: %+v", s.Properties["kind"])
	}
}

func geminiServer(t *testing.T, status int, body map[string]any, seen *map[string]any) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), Config{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 7, "totalTokenCount": 19},
		"modelVersion":  "gemini-2.5-flash",
	}
}

func TestGemini_Generate(t *testing.T) {
	var seen map[string]any
	p := geminiServer(t, http.StatusOK, geminiReply(`{"answer":"2x"}`, "STOP"), &seen)
	if p.ModelID() != "gemini-2.5-flash" {
		t.Fatalf("alias not resolved: %q", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), schemaRequest("Turunan x^2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"2x"}` || resp.Usage != (Usage{InputTokens: 12, OutputTokens: 7}) {
		t.Errorf("unexpected response: %+v", resp)
	}

	gen, _ := seen["generationConfig"].(map[string]any)
	if gen["responseMimeType"] != "application/json" {
		t.Errorf("expected JSON mode, got %v", seen["generationConfig"])
	}
	if _, ok := seen["systemInstruction"]; !ok {
		t.Error("system prompt not sent")
	}
}

func TestGemini_Errors(t *testing.T) {
	apiError := func(code int, status string) map[string]any {
		return map[string]any{"error": map[string]any{"code": code, "message": "nope", "status": status}}
	}
	tests := []struct {
		name   string
		status int
		body   map[string]any
		want   ErrorKind
	}{
		{"quota", http.StatusTooManyRequests, apiError(429, "RESOURCE_EXHAUSTED"), KindRateLimited},
		{"bad key", http.StatusBadRequest, apiError(400, "INVALID_ARGUMENT"), KindRejected},
		{"unavailable", http.StatusServiceUnavailable, apiError(503, "UNAVAILABLE"), KindUnavailable},
		{"max tokens", http.StatusOK, geminiReply(`{"answer":"`, "MAX_TOKENS"), KindTruncated},
		{"safety", http.StatusOK, geminiReply("", "SAFETY"), KindRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := geminiServer(t, tt.status, tt.body, nil)
			_, err := p.Generate(context.Background(), schemaRequest("q"))
			if KindOf(err) != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
