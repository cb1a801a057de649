package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply. Err, when set, is returned instead
// of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Finish  Finish
	Err     error
}

// MockProvider replays scripted replies in order and records requests.
// Content is passed through finishOutput like a real vendor, so schema
// validation and truncation behave the same.
type MockProvider struct {
	mu      sync.Mutex
	queue   []MockResponse
	history []Request
}

var errMockExhausted = errors.New("mock: no scripted response left")

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

func (m *MockProvider) ModelID() string { return VendorMock }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.history = append(m.history, req)
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return nil, &Error{Kind: KindUnavailable, Provider: VendorMock, Err: errMockExhausted}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	content, err := finishOutput(VendorMock, req, string(next.Content), next.Finish)
	if err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: next.Usage, Model: VendorMock, Finish: next.Finish}, nil
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// Calls returns a copy of the requests received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.history...)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}
