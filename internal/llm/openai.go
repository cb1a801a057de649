package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider speaks the chat completions API. It also serves
// OpenRouter and other compatible gateways through BaseURL.
type OpenAIProvider struct {
	name   string
	client *openai.Client
	model  string
}

// NewOpenAIProvider targets api.openai.com unless cfg.BaseURL is set.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	return newChatProvider(VendorOpenAI, cfg)
}

// NewOpenRouterProvider targets OpenRouter. Model IDs are gateway paths
// such as "google/gemini-2.5-flash".
func NewOpenRouterProvider(cfg Config) (*OpenAIProvider, error) {
	return newChatProvider(VendorOpenRouter, cfg)
}

func newChatProvider(name string, cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}
	v, _ := lookupVendor(name)
	oc := openai.DefaultConfig(cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		oc.BaseURL = cfg.BaseURL
	case v.defaultBaseURL != "":
		oc.BaseURL = v.defaultBaseURL
	}
	return &OpenAIProvider{
		name:   name,
		client: openai.NewClientWithConfig(oc),
		model:  v.resolveModel(cfg.Model),
	}, nil
}

func (p *OpenAIProvider) ModelID() string { return p.model }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	cr := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		schema, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("encode schema %q: %w", req.Schema.Name, err)
		}
		cr.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, cr)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(p.name, apiErr.HTTPStatusCode, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return nil, classifyStatus(p.name, reqErr.HTTPStatusCode, err)
		}
		return nil, classifyStatus(p.name, 0, err)
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: KindInvalidOutput, Provider: p.name, Err: errors.New("no choices in response")}
	}

	choice := resp.Choices[0]
	finish := FinishStop
	switch choice.FinishReason {
	case openai.FinishReasonLength:
		finish = FinishLength
	case openai.FinishReasonContentFilter:
		return nil, &Error{Kind: KindRejected, Provider: p.name, Err: errors.New("response blocked by content filter")}
	}
	content, err := finishOutput(p.name, req, choice.Message.Content, finish)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		Model:  resp.Model,
		Finish: finish,
	}, nil
}
