package llm

import (
	"context"
	"sync"

	"github.com/cybercalc/cybercalc/internal/store"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

// funcProvider adapts a function to Provider.
type funcProvider func(ctx context.Context, req Request) (*Response, error)

func (f funcProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f funcProvider) ModelID() string { return "stub-model" }

// answerSchema requires {"answer": string}.
var answerSchema = &Schema{
	Name: "answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func schemaRequest(prompt string) Request {
	return Request{
		System:    "Jawab dalam JSON.",
		Prompt:    prompt,
		Schema:    answerSchema,
		MaxTokens: 128,
	}
}
