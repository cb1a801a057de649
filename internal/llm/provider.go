// Package llm talks to the hosted language models that produce worked
// solutions. Every call is a single-turn prompt that asks for one JSON
// document; vendor differences stay behind Provider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the Content is cleaned of markdown fences and validated against
	// it before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model identifier requests are sent to.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	// System sets the model's role and output rules.
	System string

	// Prompt is the user turn.
	Prompt string

	// Schema, when set, selects the vendor's native JSON output mode.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the vendor default.
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "calculus-solution".
	Name string

	Description string

	// Definition is the JSON Schema as decoded JSON values.
	Definition map[string]any
}

// Finish says why generation stopped.
type Finish int

const (
	FinishStop Finish = iota
	FinishLength
	FinishFiltered
)

func (f Finish) String() string {
	switch f {
	case FinishLength:
		return "length"
	case FinishFiltered:
		return "filtered"
	default:
		return "stop"
	}
}

// Response is the model output for one Request.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request. Gateways may
	// report a more specific snapshot than ModelID.
	Model string

	Finish Finish
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
